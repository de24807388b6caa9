// Package game implements the breakout simulation: the ball and paddle, the
// collision resolver and the session that moves a player through the levels.
// It contains pure logic; frontends drive it one tick at a time.
package game

import "github.com/vovakirdan/bricks/internal/core"

// Ball is the moving circular entity. Its velocity is whole units per tick.
type Ball struct {
	center   core.Point
	shape    core.Ellipse
	contacts core.Contacts
	speedX   int
	speedY   int
	fill     core.Color
	border   core.Color
}

// NewBall creates a ball of the given diameter centered on center.
func NewBall(center core.Point, diameter float64) *Ball {
	b := &Ball{
		shape:  core.Ellipse{DX: diameter, DY: diameter},
		fill:   core.ColorYellow,
		border: core.ColorOrange,
	}
	b.MoveTo(center)
	return b
}

// Move advances the ball by one tick of velocity. Bounds are the resolver's
// concern.
func (b *Ball) Move() {
	b.MoveTo(b.center.Add(float64(b.speedX), float64(b.speedY)))
}

// MoveTo teleports the ball and refreshes its contact points.
// Velocity is left untouched.
func (b *Ball) MoveTo(p core.Point) {
	b.center = p
	b.shape.Center = p
	b.contacts = core.ContactsOf(b.shape.Bounds())
}

// ReverseX negates the horizontal velocity.
func (b *Ball) ReverseX() { b.speedX = -b.speedX }

// ReverseY negates the vertical velocity.
func (b *Ball) ReverseY() { b.speedY = -b.speedY }

// SetSpeed sets both velocity components.
func (b *Ball) SetSpeed(x, y int) {
	b.speedX, b.speedY = x, y
}

func (b *Ball) SpeedX() int             { return b.speedX }
func (b *Ball) SpeedY() int             { return b.speedY }
func (b *Ball) Center() core.Point      { return b.center }
func (b *Ball) Shape() core.Ellipse     { return b.shape }
func (b *Ball) Contacts() core.Contacts { return b.contacts }

// Colors returns the fill and border colors.
func (b *Ball) Colors() (fill, border core.Color) { return b.fill, b.border }
