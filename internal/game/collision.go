package game

import (
	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
)

// Collision reports what the resolver found during one tick.
type Collision struct {
	Paddle    bool           // Ball bounced off the paddle
	Brick     *brick.Brick   // Brick struck this tick, if any
	Face      core.Direction // Struck face of Brick
	Destroyed bool           // Brick broke on this hit
	Border    core.Direction // Border the ball bounced off, DirNone if none
	Lost      bool           // Ball fell past the bottom
}

// Resolver applies collision responses between the ball, the paddle, the
// live bricks and the play area borders.
type Resolver struct {
	Area     core.Rect
	MaxSpeed int // Largest speed magnitude the random nudge may reach
}

// Resolve runs one tick of collision handling. The paddle is tested first and
// suppresses brick tests on a hit. Only the first brick in order that reports
// an impact is resolved. Borders are always tested.
func (r Resolver) Resolve(ball *Ball, paddle *Paddle, bricks []*brick.Brick, rng brick.Rand) Collision {
	var c Collision

	if paddle.Impact(ball) {
		c.Paddle = true
		// A ball already heading up has been handled on an earlier tick.
		if ball.SpeedY() > 0 {
			ball.ReverseY()
			ball.SetSpeed(ball.SpeedX(), r.nudge(ball.SpeedY(), rng))
		}
	} else {
		r.resolveBricks(ball, bricks, rng, &c)
	}

	r.resolveBorders(ball, rng, &c)
	return c
}

func (r Resolver) resolveBricks(ball *Ball, bricks []*brick.Brick, rng brick.Rand, c *Collision) {
	contacts := ball.Contacts()
	for _, b := range bricks {
		face := b.FindImpact(contacts)
		if face == core.DirNone {
			continue
		}

		var point core.Point
		switch face {
		case core.DirUp:
			ball.ReverseY()
			point = contacts.Down
		case core.DirDown:
			ball.ReverseY()
			point = contacts.Up
		case core.DirLeft:
			ball.ReverseX()
			point = contacts.Right
		case core.DirRight:
			ball.ReverseX()
			point = contacts.Left
		}

		c.Brick = b
		c.Face = face
		c.Destroyed = b.SetImpact(point, face, rng)
		return
	}
}

func (r Resolver) resolveBorders(ball *Ball, rng brick.Rand, c *Collision) {
	contacts := ball.Contacts()

	// Side and top bounces only apply to a ball moving outward, so a ball that
	// overshot the edge cannot flip back and forth.
	switch {
	case contacts.Left.X < r.Area.X && ball.SpeedX() < 0:
		c.Border = core.DirLeft
	case contacts.Right.X > r.Area.Right() && ball.SpeedX() > 0:
		c.Border = core.DirRight
	}
	if c.Border != core.DirNone {
		ball.ReverseX()
		ball.SetSpeed(r.nudge(ball.SpeedX(), rng), ball.SpeedY())
	}

	if contacts.Up.Y < r.Area.Y && ball.SpeedY() < 0 {
		if c.Border == core.DirNone {
			c.Border = core.DirUp
		}
		ball.ReverseY()
		ball.SetSpeed(ball.SpeedX(), r.nudge(ball.SpeedY(), rng))
	} else if ball.Center().Y > r.Area.Bottom() {
		c.Lost = true
	}
}

// nudge performs one step of a bounded random walk on the magnitude of v,
// keeping its sign. The magnitude stays within [1, MaxSpeed].
func (r Resolver) nudge(v int, rng brick.Rand) int {
	sign := core.Sign(v)
	if sign == 0 {
		return v
	}
	m := core.Abs(v)
	if rng.IntN(2) == 0 && m < r.MaxSpeed {
		m++
	} else if rng.IntN(2) == 0 && m > 1 {
		m--
	}
	return sign * m
}
