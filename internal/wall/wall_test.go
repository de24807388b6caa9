package wall

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/registry"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func classicSpec(a, b brick.Kind) registry.WallSpec {
	return registry.WallSpec{
		Area:       core.NewRect(0, 0, 600, 450),
		BrickCount: 30,
		Rows:       3,
		Ratio:      3,
		KindA:      a,
		KindB:      b,
	}
}

func build(t *testing.T, name string, spec registry.WallSpec) []*brick.Brick {
	t.Helper()
	tpl, err := registry.Create(name)
	if err != nil {
		t.Fatalf("registry.Create(%q) failed: %v", name, err)
	}
	bricks, err := tpl.Build(spec, seeded(1))
	if err != nil {
		t.Fatalf("%s: Build failed: %v", name, err)
	}
	return bricks
}

func TestTemplatesRegistered(t *testing.T) {
	for _, name := range []string{"uniform", "chain", "chessboard", "sonic", "two-lines", "random"} {
		if !registry.Exists(name) {
			t.Errorf("Template %q not registered", name)
		}
	}
}

func TestClassicGeometry(t *testing.T) {
	for _, name := range []string{"uniform", "chain", "two-lines", "random"} {
		bricks := build(t, name, classicSpec(brick.KindClay, brick.KindCement))

		// 30 bricks in 3 rows plus one filler for the single odd row.
		if len(bricks) != 31 {
			t.Errorf("%s: len = %d, expected 31", name, len(bricks))
		}
		for i, b := range bricks {
			if b.Bounds().W != 60 || b.Bounds().H != 20 {
				t.Errorf("%s: brick %d is %vx%v, expected 60x20", name, i, b.Bounds().W, b.Bounds().H)
			}
		}
	}
}

func TestRunningBond(t *testing.T) {
	bricks := build(t, "uniform", classicSpec(brick.KindClay, brick.KindClay))

	tests := []struct {
		index int
		x, y  float64
	}{
		{0, 0, 0},
		{9, 540, 0},
		{10, -30, 20}, // odd row shifted half a brick left
		{19, 510, 20},
		{20, 0, 40},
		{30, 570, 20}, // filler closes the odd row
	}
	for _, tt := range tests {
		r := bricks[tt.index].Bounds()
		if r.X != tt.x || r.Y != tt.y {
			t.Errorf("brick %d at (%v, %v), expected (%v, %v)", tt.index, r.X, r.Y, tt.x, tt.y)
		}
	}
}

func TestRoundsDownToRows(t *testing.T) {
	spec := classicSpec(brick.KindClay, brick.KindClay)
	spec.BrickCount = 32
	spec.Rows = 4
	spec.Area = core.NewRect(10, 5, 400, 300)
	bricks := build(t, "uniform", spec)

	if len(bricks) != 32+2 {
		t.Errorf("len = %d, expected 34", len(bricks))
	}
	if w := bricks[0].Bounds().W; w != 50 {
		t.Errorf("width = %v, expected 50", w)
	}
	if r := bricks[0].Bounds(); r.X != 10 || r.Y != 5 {
		t.Errorf("first brick at (%v, %v), expected the area origin", r.X, r.Y)
	}
}

func kinds(bricks []*brick.Brick) []brick.Kind {
	out := make([]brick.Kind, len(bricks))
	for i, b := range bricks {
		out[i] = b.Kind()
	}
	return out
}

func TestChainPattern(t *testing.T) {
	a, b := brick.KindClay, brick.KindSteel
	got := kinds(build(t, "chain", classicSpec(a, b)))

	for i := 0; i < 10; i++ {
		want := a
		if i%2 != 0 {
			want = b
		}
		if got[i] != want {
			t.Errorf("row 0 brick %d = %v, expected %v", i, got[i], want)
		}
	}
	for col := 0; col < 10; col++ {
		want := a
		if col == 5 || col == 6 {
			want = b
		}
		if got[10+col] != want {
			t.Errorf("row 1 col %d = %v, expected %v", col, got[10+col], want)
		}
	}
	if got[30] != a {
		t.Errorf("filler = %v, expected %v", got[30], a)
	}
}

func TestTwoLinesPattern(t *testing.T) {
	a, b := brick.KindReinforcedSteel, brick.KindClay
	got := kinds(build(t, "two-lines", classicSpec(a, b)))

	for i := 0; i < 30; i++ {
		col := i % 10
		want := a
		if col == 5 || col == 6 || i%2 != 0 {
			want = b
		}
		if got[i] != want {
			t.Errorf("brick %d = %v, expected %v", i, got[i], want)
		}
	}
}

func TestRandomTemplate(t *testing.T) {
	tpl, err := registry.Create("random")
	if err != nil {
		t.Fatal(err)
	}
	spec := classicSpec(brick.KindClay, brick.KindClay)
	spec.BrickCount = 300
	spec.Rows = 10

	w1, _ := tpl.Build(spec, seeded(9))
	w2, _ := tpl.Build(spec, seeded(9))
	seen := make(map[brick.Kind]bool)
	for i := range w1 {
		if w1[i].Kind() != w2[i].Kind() {
			t.Fatalf("brick %d differs between runs with the same seed", i)
		}
		seen[w1[i].Kind()] = true
	}
	if len(seen) != 4 {
		t.Errorf("random wall used %d kinds, expected all 4", len(seen))
	}
}

func TestBadSpec(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*registry.WallSpec)
	}{
		{"no rows", func(s *registry.WallSpec) { s.Rows = 0 }},
		{"fewer bricks than rows", func(s *registry.WallSpec) { s.BrickCount = 2 }},
		{"zero ratio", func(s *registry.WallSpec) { s.Ratio = 0 }},
		{"empty area", func(s *registry.WallSpec) { s.Area.W = 0 }},
	}
	tpl, _ := registry.Create("uniform")
	for _, tt := range tests {
		spec := classicSpec(brick.KindClay, brick.KindClay)
		tt.mod(&spec)
		if _, err := tpl.Build(spec, seeded(1)); !errors.Is(err, ErrBadSpec) {
			t.Errorf("%s: error = %v, expected ErrBadSpec", tt.name, err)
		}
	}
}

func TestUnknownKindAborts(t *testing.T) {
	_, err := Build(Def{
		Name: "broken", Template: "chain", KindA: brick.KindClay, KindB: brick.Kind(9),
		BrickCount: 30, Rows: 3, Ratio: 3,
	}, core.NewRect(0, 0, 600, 450), brick.DefaultCrack(), seeded(1))
	if !errors.Is(err, brick.ErrUnknownKind) {
		t.Errorf("error = %v, expected ErrUnknownKind", err)
	}
}

func TestBuildUnknownTemplate(t *testing.T) {
	_, err := Build(Def{Name: "x", Template: "spiral", KindA: brick.KindClay, BrickCount: 3, Rows: 1, Ratio: 1},
		core.NewRect(0, 0, 600, 450), brick.DefaultCrack(), seeded(1))
	if !errors.Is(err, registry.ErrUnknownTemplate) {
		t.Errorf("error = %v, expected ErrUnknownTemplate", err)
	}
}

func TestLevelLiveAndRepair(t *testing.T) {
	levels, err := BuildAll(BuiltinDefs(), core.NewRect(0, 0, 600, 450), brick.DefaultCrack(), seeded(3))
	if err != nil {
		t.Fatalf("BuildAll failed: %v", err)
	}
	if len(levels) != 6 {
		t.Fatalf("len(levels) = %d, expected 6", len(levels))
	}

	l := levels[0]
	if l.Live() != 31 {
		t.Errorf("Live = %d, expected 31", l.Live())
	}
	rng := seeded(4)
	for _, b := range l.Bricks[:4] {
		b.SetImpact(b.Bounds().Center(), core.DirDown, rng)
	}
	if l.Live() != 27 {
		t.Errorf("Live = %d, expected 27", l.Live())
	}
	l.Repair()
	if l.Live() != 31 {
		t.Errorf("Live after repair = %d, expected 31", l.Live())
	}
}
