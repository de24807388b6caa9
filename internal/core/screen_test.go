package core

import (
	"strings"
	"testing"
)

// checkCells reports every listed position whose cell differs from want.
func checkCells(t *testing.T, s *Screen, pts [][2]int, want Cell) {
	t.Helper()
	for _, p := range pts {
		if got := s.GetCell(p[0], p[1]); got != want {
			t.Errorf("GetCell(%d, %d) = %+v, expected %+v", p[0], p[1], got, want)
		}
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 12; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		r      rune
		c      Color
		stored bool
	}{
		{"inside", 3, 2, '█', ColorSand, true},
		{"top-left corner", 0, 0, '▓', ColorSilver, true},
		{"bottom-right corner", 7, 4, '●', ColorWhite, true},
		{"left of screen", -1, 2, 'x', ColorRed, false},
		{"below screen", 3, 5, 'x', ColorRed, false},
	}
	for _, tt := range tests {
		s := NewScreen(8, 5)
		s.SetColored(tt.x, tt.y, tt.r, tt.c)

		want := blank
		if tt.stored {
			want = Cell{Rune: tt.r, Color: tt.c}
		}
		if got := s.GetCell(tt.x, tt.y); got != want {
			t.Errorf("%s: GetCell = %+v, expected %+v", tt.name, got, want)
		}
		if tt.stored && s.Get(tt.x, tt.y) != tt.r {
			t.Errorf("%s: Get = %q, expected %q", tt.name, s.Get(tt.x, tt.y), tt.r)
		}
	}
}

func TestScreenSetResetsColor(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetColored(1, 0, '▒', ColorGray)
	s.Set(1, 0, '=')
	if got := s.GetCell(1, 0); got != (Cell{Rune: '=', Color: ColorDefault}) {
		t.Errorf("GetCell after Set = %+v, expected '=' in the default color", got)
	}
}

func TestScreenClearDropsColors(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRect(0, 0, 6, 3, '█', ColorOrange)
	s.Clear()
	checkCells(t, s, [][2]int{{0, 0}, {5, 2}, {3, 1}}, blank)
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(7, 1, "BALL", ColorYellow)

	// Clipped after "BAL"
	for i, r := range "BAL" {
		want := Cell{Rune: r, Color: ColorYellow}
		if got := s.GetCell(7+i, 1); got != want {
			t.Errorf("GetCell(%d, 1) = %+v, expected %+v", 7+i, got, want)
		}
	}
	if s.Row(1) != "       BAL" {
		t.Errorf("Row(1) = %q, expected clipped text", s.Row(1))
	}

	s.DrawText(0, 0, "HUD")
	if c := s.GetCell(1, 0); c.Color != ColorDefault {
		t.Errorf("DrawText color = %v, expected default", c.Color)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		width int
		text  string
		x     int
	}{
		{20, "Hi", 9},
		{21, "PAUSED", 7},
		{10, "Bricks: ╳", 0}, // Runes, not bytes
	}
	for _, tt := range tests {
		s := NewScreen(tt.width, 3)
		s.DrawTextCentered(1, tt.text)
		if got := s.Get(tt.x, 1); got != []rune(tt.text)[0] {
			t.Errorf("%q in %d: Get(%d, 1) = %q, expected %q", tt.text, tt.width, tt.x, got, []rune(tt.text)[0])
		}
	}
}

func TestScreenDrawRectColored(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawRect(2, 1, 4, 2, '▓', ColorSilver)

	checkCells(t, s, [][2]int{{2, 1}, {5, 1}, {2, 2}, {5, 2}}, Cell{Rune: '▓', Color: ColorSilver})
	checkCells(t, s, [][2]int{{1, 1}, {6, 1}, {2, 0}, {2, 3}}, blank)

	// A later rect overwrites both rune and color.
	s.DrawRect(3, 2, 1, 1, '░', ColorDarkGray)
	checkCells(t, s, [][2]int{{3, 2}}, Cell{Rune: '░', Color: ColorDarkGray})
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(0, 1, 8, 4)

	want := []string{
		"        ",
		"┌──────┐",
		"│      │",
		"│      │",
		"└──────┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"horizontal", 1, 2, 4, 2, [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 2}}},
		{"vertical up", 3, 4, 3, 1, [][2]int{{3, 4}, {3, 3}, {3, 2}, {3, 1}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"shallow", 0, 0, 4, 2, [][2]int{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
		{"single cell", 2, 2, 2, 2, [][2]int{{2, 2}}},
	}
	for _, tt := range tests {
		s := NewScreen(6, 6)
		s.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, '╳', ColorGray)

		crack := Cell{Rune: '╳', Color: ColorGray}
		count := 0
		for y := 0; y < 6; y++ {
			for x := 0; x < 6; x++ {
				if s.GetCell(x, y) == crack {
					count++
				}
			}
		}
		if count != len(tt.want) {
			t.Errorf("%s: %d cells drawn, expected %d", tt.name, count, len(tt.want))
		}
		for _, p := range tt.want {
			if got := s.GetCell(p[0], p[1]); got != crack {
				t.Errorf("%s: GetCell(%d, %d) = %+v, expected crack", tt.name, p[0], p[1], got)
			}
		}
	}
}

func TestScreenDrawLineClipped(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawLine(-2, 1, 5, 1, '-', ColorWhite) // Must not panic
	if s.Row(1) != "----" {
		t.Errorf("Row(1) = %q, expected a clipped line", s.Row(1))
	}
}

func TestScreenStringDropsColors(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawRect(0, 0, 5, 1, '█', ColorRed)
	s.DrawTextColored(1, 1, "ab", ColorCyan)

	if got, want := s.String(), "█████\n ab  "; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(6, 4)
	s.SetColored(1, 1, '▒', ColorSand)
	s.SetColored(5, 3, '●', ColorWhite)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	checkCells(t, s, [][2]int{{1, 1}}, Cell{Rune: '▒', Color: ColorSand})

	s.Resize(8, 5)
	checkCells(t, s, [][2]int{{1, 1}}, Cell{Rune: '▒', Color: ColorSand})
	// Cut off by the shrink, blank after growing back.
	checkCells(t, s, [][2]int{{5, 3}, {7, 4}}, blank)
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 2)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, expected blanks", got)
	}
	if got := s.Row(2); !strings.HasPrefix(got, " ") || len(got) != 3 {
		t.Errorf("Row(2) = %q, expected blanks", got)
	}
}
