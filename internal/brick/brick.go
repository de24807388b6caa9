package brick

import (
	"fmt"

	"github.com/vovakirdan/bricks/internal/core"
)

// Rand is the random source bricks and cracks draw from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Shape is the visible face of a brick.
type Shape struct {
	Bounds   core.Rect
	Fracture []Path // Paths cut out of the face; nil for intact faces
}

// Brick is a stationary, breakable obstacle.
// A brick is broken exactly when its strength is zero.
type Brick struct {
	kind     Kind
	bounds   core.Rect
	strength int
	broken   bool
	cracks   []Path
	crack    Crack
}

// New creates a pristine brick of the given kind occupying rect.
func New(kind Kind, rect core.Rect) (*Brick, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return &Brick{
		kind:     kind,
		bounds:   rect,
		strength: kind.Strength(),
		crack:    DefaultCrack(),
	}, nil
}

// SetCrack replaces the crack generator parameters used on surviving hits.
func (b *Brick) SetCrack(c Crack) {
	b.crack = c
}

// Kind returns the brick variant.
func (b *Brick) Kind() Kind { return b.kind }

// Bounds returns the brick footprint.
func (b *Brick) Bounds() core.Rect { return b.bounds }

// Strength returns the remaining number of registered hits.
func (b *Brick) Strength() int { return b.strength }

// IsBroken reports whether the brick has been destroyed.
func (b *Brick) IsBroken() bool { return b.broken }

// Cracks returns the accumulated fracture paths, oldest first.
func (b *Brick) Cracks() []Path { return b.cracks }

// Colors returns the fill and border colors.
func (b *Brick) Colors() (fill, border core.Color) { return b.kind.Colors() }

// Face returns the visible silhouette. Kinds that merge their cracks into the
// face report the paths as fracture lines of the shape.
func (b *Brick) Face() Shape {
	s := Shape{Bounds: b.bounds}
	if b.kind.MergesFace() && len(b.cracks) > 0 {
		s.Fracture = b.cracks
	}
	return s
}

// FindImpact reports which face of the brick the ball touches, given the
// ball's contact points. Horizontal contacts are tested before vertical ones.
// A broken brick is never hit.
func (b *Brick) FindImpact(c core.Contacts) core.Direction {
	if b.broken {
		return core.DirNone
	}
	switch {
	case b.bounds.Contains(c.Right):
		return core.DirLeft
	case b.bounds.Contains(c.Left):
		return core.DirRight
	case b.bounds.Contains(c.Up):
		return core.DirDown
	case b.bounds.Contains(c.Down):
		return core.DirUp
	}
	return core.DirNone
}

// SetImpact registers a hit at point on the given face. It returns true only
// when this hit destroyed the brick. A surviving brick of a cracking kind
// grows a new fracture path from point toward the opposite edge.
func (b *Brick) SetImpact(point core.Point, face core.Direction, rng Rand) bool {
	if b.broken {
		return false
	}
	b.Impact(rng)
	if b.broken {
		return true
	}
	if b.kind.Cracks() {
		b.cracks = append(b.cracks, b.crack.Prepare(point, face, b.bounds, rng))
	}
	return false
}

// Impact applies one hit. Kinds with a damage probability below one only
// lose strength when the drawn value falls under it.
func (b *Brick) Impact(rng Rand) {
	if b.broken {
		return
	}
	if p := b.kind.Probability(); p < 1 && rng.Float64() >= p {
		return
	}
	b.strength--
	b.broken = b.strength == 0
}

// Repair restores full strength and clears all fracture state.
func (b *Brick) Repair() {
	b.strength = b.kind.Strength()
	b.broken = false
	b.cracks = nil
}
