package brick

import (
	"math"
	"testing"

	"github.com/vovakirdan/bricks/internal/core"
)

func TestMakeDeterministic(t *testing.T) {
	c := DefaultCrack()
	start, end := core.Pt(10, 10), core.Pt(70, 30)

	p1 := c.Make(start, end, seeded(42))
	p2 := c.Make(start, end, seeded(42))

	if len(p1) != len(p2) {
		t.Fatalf("Path lengths differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("Vertex %d = %v, expected %v", i, p2[i], p1[i])
		}
	}
}

func TestMakeShape(t *testing.T) {
	c := Crack{Steps: 35, Depth: 1}
	start, end := core.Pt(0, 0), core.Pt(70, 0)
	p := c.Make(start, end, seeded(1))

	if len(p) != 36 {
		t.Fatalf("len(path) = %d, expected 36", len(p))
	}
	if p[0] != start || p[len(p)-1] != end {
		t.Errorf("Endpoints = %v..%v, expected %v..%v", p[0], p[len(p)-1], start, end)
	}
	for i := 1; i < len(p)-1; i++ {
		// Travel is along X, so jitter is vertical and bounded by depth.
		if want := float64(i) * 2; math.Abs(p[i].X-want) > 1e-9 {
			t.Errorf("Vertex %d X = %v, expected %v", i, p[i].X, want)
		}
		if math.Abs(p[i].Y) > 1 || p[i].Y != math.Trunc(p[i].Y) {
			t.Errorf("Vertex %d Y = %v, expected whole offset in [-1, 1]", i, p[i].Y)
		}
	}
}

func TestMakeJumpsStayBounded(t *testing.T) {
	c := Crack{Steps: 30, Depth: 2, JumpProbability: 1}
	p := c.Make(core.Pt(0, 0), core.Pt(0, 60), seeded(8))
	for i, v := range p {
		// Travel is along Y, so jitter is horizontal.
		if math.Abs(v.X) > 12 {
			t.Errorf("Vertex %d X = %v, expected |x| <= 12", i, v.X)
		}
	}
}

func TestMakeDegenerate(t *testing.T) {
	p := Crack{Steps: 0, Depth: 0}.Make(core.Pt(5, 5), core.Pt(5, 5), seeded(1))
	if len(p) != 2 {
		t.Errorf("len(path) = %d, expected 2", len(p))
	}
}

func TestPrepareEndsOnOppositeEdge(t *testing.T) {
	bounds := core.NewRect(100, 50, 60, 20)
	c := DefaultCrack()

	tests := []struct {
		face  core.Direction
		check func(core.Point) bool
	}{
		{core.DirDown, func(p core.Point) bool { return p.Y == bounds.Y && p.X >= bounds.X && p.X <= bounds.Right() }},
		{core.DirUp, func(p core.Point) bool { return p.Y == bounds.Bottom() && p.X >= bounds.X && p.X <= bounds.Right() }},
		{core.DirLeft, func(p core.Point) bool { return p.X == bounds.Right() && p.Y >= bounds.Y && p.Y <= bounds.Bottom() }},
		{core.DirRight, func(p core.Point) bool { return p.X == bounds.X && p.Y >= bounds.Y && p.Y <= bounds.Bottom() }},
	}
	for _, tt := range tests {
		p := c.Prepare(core.Pt(130, 60), tt.face, bounds, seeded(11))
		if p[0] != core.Pt(130, 60) {
			t.Errorf("%v: start = %v, expected impact point", tt.face, p[0])
		}
		if end := p[len(p)-1]; !tt.check(end) {
			t.Errorf("%v: end = %v, not on the opposite edge", tt.face, end)
		}
	}
}

func TestDefaultCrackStaysWithinDepth(t *testing.T) {
	c := DefaultCrack()
	rng := seeded(5)
	for n := 0; n < 200; n++ {
		// Horizontal travel; every offset is vertical.
		p := c.Make(core.Pt(0, 0), core.Pt(70, 0), rng)
		for i, v := range p {
			if math.Abs(v.Y) > float64(c.Depth) {
				t.Fatalf("path %d vertex %d Y = %v, expected |y| <= %d", n, i, v.Y, c.Depth)
			}
		}
	}
}
