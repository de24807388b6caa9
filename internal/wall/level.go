package wall

import (
	"fmt"

	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/registry"
)

// Def is the declarative description of one level.
type Def struct {
	Name       string
	Template   string // Registered template name or alias
	KindA      brick.Kind
	KindB      brick.Kind
	BrickCount int
	Rows       int
	Ratio      float64
}

// Level is a generated wall.
type Level struct {
	Name   string
	Bricks []*brick.Brick
}

// Build generates the level described by def inside area. Every brick uses
// the crack generator c.
func Build(def Def, area core.Rect, c brick.Crack, rng brick.Rand) (*Level, error) {
	tpl, err := registry.Create(def.Template)
	if err != nil {
		return nil, fmt.Errorf("wall: level %q: %w", def.Name, err)
	}
	bricks, err := tpl.Build(registry.WallSpec{
		Area:       area,
		BrickCount: def.BrickCount,
		Rows:       def.Rows,
		Ratio:      def.Ratio,
		KindA:      def.KindA,
		KindB:      def.KindB,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("wall: level %q: %w", def.Name, err)
	}
	for _, b := range bricks {
		b.SetCrack(c)
	}
	return &Level{Name: def.Name, Bricks: bricks}, nil
}

// BuildAll generates every level in order, stopping at the first failure.
func BuildAll(defs []Def, area core.Rect, c brick.Crack, rng brick.Rand) ([]*Level, error) {
	levels := make([]*Level, 0, len(defs))
	for _, d := range defs {
		l, err := Build(d, area, c, rng)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, nil
}

// Live returns the number of bricks not yet broken.
func (l *Level) Live() int {
	n := 0
	for _, b := range l.Bricks {
		if !b.IsBroken() {
			n++
		}
	}
	return n
}

// Repair restores every brick of the level.
func (l *Level) Repair() {
	for _, b := range l.Bricks {
		b.Repair()
	}
}

// BuiltinDefs returns the stock level sequence: the four classic walls
// followed by two extra layouts.
func BuiltinDefs() []Def {
	def := func(name, tpl string, a, b brick.Kind) Def {
		return Def{Name: name, Template: tpl, KindA: a, KindB: b, BrickCount: 30, Rows: 3, Ratio: 3}
	}
	return []Def{
		def("Clay Wall", "uniform", brick.KindClay, brick.KindClay),
		def("Clay and Cement", "chain", brick.KindClay, brick.KindCement),
		def("Clay and Steel", "chain", brick.KindClay, brick.KindSteel),
		def("Steel and Cement", "chain", brick.KindSteel, brick.KindCement),
		def("Reinforced Lines", "two-lines", brick.KindReinforcedSteel, brick.KindClay),
		def("Scrapyard", "random", brick.KindClay, brick.KindClay),
	}
}
