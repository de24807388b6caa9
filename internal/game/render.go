package game

import (
	"math"

	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '='
	BallChar     = '●'
	FractureChar = '░' // Crack carved into the brick face
	CrackChar    = '╳' // Crack drawn over the brick
)

var brickGlyphs = map[brick.Kind]rune{
	brick.KindClay:            '█',
	brick.KindSteel:           '▓',
	brick.KindCement:          '▒',
	brick.KindReinforcedSteel: '■',
}

// BrickGlyph returns the glyph a brick kind is drawn with.
func BrickGlyph(k brick.Kind) rune {
	if r, ok := brickGlyphs[k]; ok {
		return r
	}
	return '#'
}

// Viewport maps world coordinates of the play area onto a rectangle of
// screen cells.
type Viewport struct {
	Area       core.Rect
	X, Y, W, H int
}

// NewViewport creates a viewport. Cell sizes below 1 are raised to 1.
func NewViewport(area core.Rect, x, y, w, h int) Viewport {
	return Viewport{Area: area, X: x, Y: y, W: max(w, 1), H: max(h, 1)}
}

func (v Viewport) scale() (sx, sy float64) {
	return float64(v.W) / v.Area.W, float64(v.H) / v.Area.H
}

// Cell returns the cell containing p, clamped to the viewport.
func (v Viewport) Cell(p core.Point) (int, int) {
	sx, sy := v.scale()
	cx := int(math.Floor((p.X - v.Area.X) * sx))
	cy := int(math.Floor((p.Y - v.Area.Y) * sy))
	return v.X + core.Clamp(cx, 0, v.W-1), v.Y + core.Clamp(cy, 0, v.H-1)
}

// Span returns the inclusive cell range covered by r. A rect smaller than a
// cell still covers one.
func (v Viewport) Span(r core.Rect) (x0, y0, x1, y1 int) {
	sx, sy := v.scale()
	x0, y0 = v.Cell(core.Pt(r.X, r.Y))
	x1 = v.X + core.Clamp(int(math.Ceil((r.Right()-v.Area.X)*sx))-1, 0, v.W-1)
	y1 = v.Y + core.Clamp(int(math.Ceil((r.Bottom()-v.Area.Y)*sy))-1, 0, v.H-1)
	return x0, y0, max(x1, x0), max(y1, y0)
}

// DrawBricks draws the live bricks with their fracture lines.
func DrawBricks(dst *core.Screen, v Viewport, bricks []*brick.Brick) {
	for _, b := range bricks {
		if b.IsBroken() {
			continue
		}
		fill, border := b.Colors()
		x0, y0, x1, y1 := v.Span(b.Bounds())
		dst.DrawRect(x0, y0, x1-x0+1, y1-y0+1, BrickGlyph(b.Kind()), fill)

		for _, p := range b.Face().Fracture {
			drawPath(dst, v, p, FractureChar, border)
		}
		if !b.Kind().MergesFace() {
			for _, p := range b.Cracks() {
				drawPath(dst, v, p, CrackChar, border)
			}
		}
	}
}

func drawPath(dst *core.Screen, v Viewport, p brick.Path, r rune, c core.Color) {
	for i := 1; i < len(p); i++ {
		ax, ay := v.Cell(p[i-1])
		bx, by := v.Cell(p[i])
		dst.DrawLine(ax, ay, bx, by, r, c)
	}
}

// DrawPaddle draws the paddle bar.
func DrawPaddle(dst *core.Screen, v Viewport, p *Paddle) {
	fill, _ := p.Colors()
	x0, y0, x1, _ := v.Span(p.Rect())
	dst.DrawRect(x0, y0, x1-x0+1, 1, PaddleChar, fill)
}

// DrawBall draws the ball at its center cell.
func DrawBall(dst *core.Screen, v Viewport, b *Ball) {
	fill, _ := b.Colors()
	x, y := v.Cell(b.Center())
	dst.SetColored(x, y, BallChar, fill)
}

// DrawScene draws the session's bricks, paddle and ball.
func DrawScene(dst *core.Screen, v Viewport, s *Session) {
	DrawBricks(dst, v, s.Bricks())
	DrawPaddle(dst, v, s.Paddle())
	DrawBall(dst, v, s.Ball())
}
