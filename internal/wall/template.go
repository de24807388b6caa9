// Package wall lays out the bricks of a level. It provides the procedural
// templates (uniform, chain, two-lines and random) and registers them with
// the template registry.
package wall

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/registry"
)

// ErrBadSpec is returned when a wall spec cannot produce a grid.
var ErrBadSpec = errors.New("wall: invalid spec")

func init() {
	registry.Register(uniform{})
	registry.Register(chain{})
	registry.Register(twoLines{})
	registry.Register(random{})

	registry.Alias("chessboard", "chain")
	registry.Alias("sonic", "chain")
}

// grid is the running-bond geometry shared by every template.
type grid struct {
	area     core.Rect
	rows     int
	perRow   int
	brickW   float64
	brickH   float64
	total    int // Main grid plus the trailing half-row
	mainSize int
}

func newGrid(spec registry.WallSpec) (grid, error) {
	if spec.Rows <= 0 {
		return grid{}, fmt.Errorf("%w: rows must be positive, got %d", ErrBadSpec, spec.Rows)
	}
	if spec.Ratio <= 0 {
		return grid{}, fmt.Errorf("%w: ratio must be positive, got %v", ErrBadSpec, spec.Ratio)
	}
	if spec.Area.W <= 0 || spec.Area.H <= 0 {
		return grid{}, fmt.Errorf("%w: empty draw area", ErrBadSpec)
	}
	adjusted := spec.BrickCount - spec.BrickCount%spec.Rows
	if adjusted <= 0 {
		return grid{}, fmt.Errorf("%w: %d bricks cannot fill %d rows", ErrBadSpec, spec.BrickCount, spec.Rows)
	}

	g := grid{
		area:     spec.Area,
		rows:     spec.Rows,
		perRow:   adjusted / spec.Rows,
		mainSize: adjusted,
		total:    adjusted + spec.Rows/2,
	}
	g.brickW = spec.Area.W / float64(g.perRow)
	g.brickH = g.brickW / spec.Ratio
	return g, nil
}

// cell returns the footprint of main-grid brick i. Odd rows are shifted left
// by half a brick.
func (g grid) cell(i int) core.Rect {
	row, col := i/g.perRow, i%g.perRow
	x := float64(col) * g.brickW
	if row%2 != 0 {
		x -= g.brickW / 2
	}
	return core.NewRect(g.area.X+x, g.area.Y+float64(row)*g.brickH, g.brickW, g.brickH)
}

// filler returns the footprint of the k-th brick closing the gap left at the
// end of the odd rows.
func (g grid) filler(k int) core.Rect {
	x := float64(g.perRow)*g.brickW - g.brickW/2
	y := g.brickH + float64(k)*2*g.brickH
	return core.NewRect(g.area.X+x, g.area.Y+y, g.brickW, g.brickH)
}

// inBand reports whether column col lies in the two central columns.
func (g grid) inBand(col int) bool {
	return col > g.perRow/2-1 && col <= g.perRow/2+1
}

// lay builds the wall, asking pick for the kind of each main-grid brick and
// using fill for the trailing bricks.
func (g grid) lay(pick func(i, row, col int) brick.Kind, fill func() brick.Kind) ([]*brick.Brick, error) {
	out := make([]*brick.Brick, 0, g.total)
	for i := 0; i < g.mainSize; i++ {
		b, err := brick.New(pick(i, i/g.perRow, i%g.perRow), g.cell(i))
		if err != nil {
			return nil, fmt.Errorf("wall: brick %d: %w", i, err)
		}
		out = append(out, b)
	}
	for k := 0; k < g.rows/2; k++ {
		b, err := brick.New(fill(), g.filler(k))
		if err != nil {
			return nil, fmt.Errorf("wall: filler %d: %w", k, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// uniform fills the wall with KindA.
type uniform struct{}

func (uniform) ID() string    { return "uniform" }
func (uniform) Title() string { return "Uniform Chain" }

func (uniform) Build(spec registry.WallSpec, _ brick.Rand) ([]*brick.Brick, error) {
	g, err := newGrid(spec)
	if err != nil {
		return nil, err
	}
	a := func() brick.Kind { return spec.KindA }
	return g.lay(func(int, int, int) brick.Kind { return spec.KindA }, a)
}

// chain alternates kinds by brick index on even rows and puts KindB in the
// central band of odd rows.
type chain struct{}

func (chain) ID() string    { return "chain" }
func (chain) Title() string { return "Chessboard" }

func (chain) Build(spec registry.WallSpec, _ brick.Rand) ([]*brick.Brick, error) {
	g, err := newGrid(spec)
	if err != nil {
		return nil, err
	}
	return g.lay(func(i, row, col int) brick.Kind {
		if row%2 == 0 {
			if i%2 == 0 {
				return spec.KindA
			}
			return spec.KindB
		}
		if g.inBand(col) {
			return spec.KindB
		}
		return spec.KindA
	}, func() brick.Kind { return spec.KindA })
}

// twoLines alternates kinds by brick index on every row, with KindB in the
// central band.
type twoLines struct{}

func (twoLines) ID() string    { return "two-lines" }
func (twoLines) Title() string { return "Two Lines" }

func (twoLines) Build(spec registry.WallSpec, _ brick.Rand) ([]*brick.Brick, error) {
	g, err := newGrid(spec)
	if err != nil {
		return nil, err
	}
	return g.lay(func(i, _, col int) brick.Kind {
		if g.inBand(col) || i%2 != 0 {
			return spec.KindB
		}
		return spec.KindA
	}, func() brick.Kind { return spec.KindA })
}

// random draws every brick's kind uniformly from all variants.
type random struct{}

func (random) ID() string    { return "random" }
func (random) Title() string { return "Random" }

func (random) Build(spec registry.WallSpec, rng brick.Rand) ([]*brick.Brick, error) {
	g, err := newGrid(spec)
	if err != nil {
		return nil, err
	}
	kinds := brick.Kinds()
	draw := func() brick.Kind { return kinds[rng.IntN(len(kinds))] }
	return g.lay(func(int, int, int) brick.Kind { return draw() }, draw)
}
