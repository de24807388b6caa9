package game

import "github.com/vovakirdan/bricks/internal/core"

// Paddle is the horizontal bar the player steers along a fixed track.
// The anchor is the middle of its top edge.
type Paddle struct {
	anchor     core.Point
	rect       core.Rect
	step       float64
	moveAmount float64
	min, max   float64 // Anchor travel bounds
	fill       core.Color
	border     core.Color
}

// NewPaddle creates a paddle of size w×h anchored at anchor. It moves by step
// per tick and never leaves area horizontally.
func NewPaddle(anchor core.Point, w, h, step float64, area core.Rect) *Paddle {
	p := &Paddle{
		rect:   core.NewRect(0, 0, w, h),
		step:   step,
		min:    area.X + w/2,
		max:    area.Right() - w/2,
		fill:   core.ColorGreen,
		border: core.ColorBrightGreen,
	}
	p.ResetPosition(anchor)
	return p
}

// Move applies the current movement. A move that would leave the track is
// dropped for this tick rather than clamped.
func (p *Paddle) Move() {
	x := p.anchor.X + p.moveAmount
	if x < p.min || x > p.max {
		return
	}
	p.anchor.X = x
	p.rect.X = x - p.rect.W/2
}

func (p *Paddle) MoveLeft()  { p.moveAmount = -p.step }
func (p *Paddle) MoveRight() { p.moveAmount = p.step }
func (p *Paddle) Stop()      { p.moveAmount = 0 }

// Impact reports whether the ball has sunk into the top face: both its
// center and its bottom contact must be inside the bar.
func (p *Paddle) Impact(b *Ball) bool {
	return p.rect.Contains(b.Center()) && p.rect.Contains(b.Contacts().Down)
}

// ResetPosition teleports the paddle so that its anchor is at pt.
func (p *Paddle) ResetPosition(pt core.Point) {
	p.anchor = pt
	p.rect.X = pt.X - p.rect.W/2
	p.rect.Y = pt.Y
}

// Anchor returns the middle of the paddle's top edge.
func (p *Paddle) Anchor() core.Point { return p.anchor }

// Rect returns the paddle's bounding rectangle.
func (p *Paddle) Rect() core.Rect { return p.rect }

// Track returns the leftmost and rightmost anchor positions.
func (p *Paddle) Track() (min, max float64) { return p.min, p.max }

// Colors returns the fill and border colors.
func (p *Paddle) Colors() (fill, border core.Color) { return p.fill, p.border }
