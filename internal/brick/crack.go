package brick

import (
	"math"

	"github.com/vovakirdan/bricks/internal/core"
)

// Path is an open polyline.
type Path []core.Point

// Crack generates jagged fracture paths across a brick face.
type Crack struct {
	Steps int // Segments per path
	Depth int // Maximum perpendicular jitter of an interior vertex

	// JumpProbability is the chance that a vertex in the middle third of the
	// path is pushed a further 5*Depth at most. Zero, the default, keeps every
	// vertex within Depth of the straight line.
	JumpProbability float64
}

// DefaultCrack returns the generator used by new bricks.
func DefaultCrack() Crack {
	return Crack{Steps: 35, Depth: 1}
}

// Prepare builds a path from impact to a random point on the edge of bounds
// opposite the struck face.
func (c Crack) Prepare(impact core.Point, face core.Direction, bounds core.Rect, rng Rand) Path {
	var from, to core.Point
	switch face.Opposite() {
	case core.DirUp:
		from, to = core.Pt(bounds.X, bounds.Y), core.Pt(bounds.Right(), bounds.Y)
	case core.DirDown:
		from, to = core.Pt(bounds.X, bounds.Bottom()), core.Pt(bounds.Right(), bounds.Bottom())
	case core.DirLeft:
		from, to = core.Pt(bounds.X, bounds.Y), core.Pt(bounds.X, bounds.Bottom())
	case core.DirRight:
		from, to = core.Pt(bounds.Right(), bounds.Y), core.Pt(bounds.Right(), bounds.Bottom())
	default:
		return c.Make(impact, bounds.Center(), rng)
	}

	t := rng.Float64()
	end := core.Pt(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	return c.Make(impact, end, rng)
}

// Make builds a path of Steps segments from start to end. Interior vertices
// sit on the straight line, shifted sideways by a random whole offset.
func (c Crack) Make(start, end core.Point, rng Rand) Path {
	steps := max(c.Steps, 1)
	depth := max(c.Depth, 0)

	dx, dy := end.X-start.X, end.Y-start.Y
	// Unit normal to the direction of travel.
	nx, ny := 0.0, 1.0
	if l := math.Hypot(dx, dy); l > 0 {
		nx, ny = -dy/l, dx/l
	}

	path := make(Path, 0, steps+1)
	path = append(path, start)
	for i := 1; i < steps; i++ {
		off := jitter(rng, depth)
		if c.JumpProbability > 0 && i > steps/3 && i < 2*steps/3 && rng.Float64() < c.JumpProbability {
			off += jitter(rng, 5*depth)
		}
		f := float64(i) / float64(steps)
		path = append(path, core.Pt(
			start.X+dx*f+nx*float64(off),
			start.Y+dy*f+ny*float64(off),
		))
	}
	return append(path, end)
}

// jitter returns a uniform integer in [-bound, bound].
func jitter(rng Rand, bound int) int {
	return rng.IntN(2*bound+1) - bound
}
