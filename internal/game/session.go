package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/wall"
)

// State is a step of the level progression.
type State int

const (
	StatePlaying State = iota
	StateBallLost
	StateLevelComplete
	StateGameOver
	StateAllLevelsDone
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateBallLost:
		return "ball-lost"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	case StateAllLevelsDone:
		return "all-levels-done"
	default:
		return "unknown"
	}
}

// Options configures a session.
type Options struct {
	Area         core.Rect  // Play area; also the wall's draw area
	Start        core.Point // Ball start and paddle anchor
	BallDiameter float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleStep   float64
	Balls        int // Balls per level
	MaxSpeed     int
	Crack        brick.Crack
	Levels       []wall.Def
}

// DefaultOptions returns the classic 600×450 board with the stock levels.
func DefaultOptions() Options {
	return Options{
		Area:         core.NewRect(0, 0, 600, 450),
		Start:        core.Pt(300, 430),
		BallDiameter: 10,
		PaddleWidth:  150,
		PaddleHeight: 10,
		PaddleStep:   5,
		Balls:        3,
		MaxSpeed:     4,
		Crack:        brick.DefaultCrack(),
		Levels:       wall.BuiltinDefs(),
	}
}

// ErrNoLevels is returned when a session is created without levels.
var ErrNoLevels = errors.New("game: no levels")

// Session owns the ball, the paddle and the generated levels, and drives
// them through the progression states. It is not safe for concurrent use.
type Session struct {
	opts     Options
	rng      *rand.Rand
	resolver Resolver

	ball   *Ball
	paddle *Paddle
	levels []*wall.Level

	level      int
	liveBricks int
	balls      int
	ballLost   bool
	state      State
	bot        bool

	tick       uint64
	levelTicks int
}

// NewSession generates every level up front and places ball and paddle at
// the start point. A level that cannot be built aborts construction.
func NewSession(opts Options, rng *rand.Rand) (*Session, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	levels, err := wall.BuildAll(opts.Levels, opts.Area, opts.Crack, rng)
	if err != nil {
		return nil, fmt.Errorf("game: build levels: %w", err)
	}

	s := &Session{
		opts:     opts,
		rng:      rng,
		resolver: Resolver{Area: opts.Area, MaxSpeed: opts.MaxSpeed},
		ball:     NewBall(opts.Start, opts.BallDiameter),
		paddle:   NewPaddle(opts.Start, opts.PaddleWidth, opts.PaddleHeight, opts.PaddleStep, opts.Area),
		levels:   levels,
		level:    -1,
	}
	s.NextLevel()
	s.ResetBallCount()
	s.ResetPositions()
	return s, nil
}

// Tick runs one simulation step while playing and returns what happened.
// In any other state it does nothing.
func (s *Session) Tick() []Event {
	if s.state != StatePlaying {
		return nil
	}
	s.tick++
	s.levelTicks++

	s.MovePlayerAndBall()
	c := s.ResolveCollisions()

	events := c.events()
	for i := range events {
		events[i].Level = s.level
	}
	switch {
	case s.ballLost:
		s.state = StateBallLost
	case s.liveBricks == 0:
		s.state = StateLevelComplete
		events = append(events, Event{Kind: EventLevelComplete, Level: s.level})
	}
	return events
}

// MovePlayerAndBall moves the paddle, steering it first when bot assist is
// on, then the ball.
func (s *Session) MovePlayerAndBall() {
	if s.bot {
		s.steer()
	}
	s.paddle.Move()
	s.ball.Move()
}

// ResolveCollisions resolves the current ball position against the paddle,
// the live bricks and the borders, updating brick and ball counts.
func (s *Session) ResolveCollisions() Collision {
	c := s.resolver.Resolve(s.ball, s.paddle, s.current().Bricks, s.rng)
	if c.Destroyed {
		s.liveBricks--
	}
	if c.Lost {
		s.balls--
		s.ballLost = true
	}
	return c
}

// steer moves the paddle toward the ball's horizontal position.
func (s *Session) steer() {
	dx := s.ball.Center().X - s.paddle.Anchor().X
	switch {
	case dx < -s.opts.PaddleStep:
		s.paddle.MoveLeft()
	case dx > s.opts.PaddleStep:
		s.paddle.MoveRight()
	default:
		s.paddle.Stop()
	}
}

// Advance leaves a resting state. A lost ball is replaced or ends the game,
// a cleared level gives way to the next one, and a finished game retries its
// level with a repaired wall. It returns the events of the transition.
func (s *Session) Advance() []Event {
	switch s.state {
	case StateBallLost:
		switch {
		case s.balls <= 0:
			s.state = StateGameOver
			return []Event{{Kind: EventGameOver, Level: s.level}}
		case s.liveBricks == 0:
			s.state = StateLevelComplete
			return []Event{{Kind: EventLevelComplete, Level: s.level}}
		}
		s.ResetPositions()
		s.state = StatePlaying

	case StateLevelComplete:
		if !s.NextLevel() {
			s.state = StateAllLevelsDone
			return []Event{{Kind: EventAllLevelsDone, Level: s.level}}
		}
		s.ResetBallCount()
		s.ResetPositions()
		s.state = StatePlaying
		return []Event{{Kind: EventLevelStart, Level: s.level}}

	case StateGameOver:
		s.ResetWall()
		s.ResetPositions()
		s.levelTicks = 0
		s.state = StatePlaying
		return []Event{{Kind: EventLevelStart, Level: s.level}}
	}
	return nil
}

// Restart repairs every level and starts again from the first one.
func (s *Session) Restart() {
	for _, l := range s.levels {
		l.Repair()
	}
	s.level = -1
	s.NextLevel()
	s.ResetBallCount()
	s.ResetPositions()
}

// NextLevel installs the following level and resets the live brick count.
// It returns false when there is no following level.
func (s *Session) NextLevel() bool {
	if !s.HasMoreLevels() {
		return false
	}
	s.level++
	s.current().Repair()
	s.liveBricks = s.current().Live()
	s.levelTicks = 0
	s.state = StatePlaying
	return true
}

// StartAt jumps to the level with the given index, repairing it and
// restoring the ball allotment.
func (s *Session) StartAt(index int) error {
	if index < 0 || index >= len(s.levels) {
		return fmt.Errorf("game: level %d out of range [0, %d)", index, len(s.levels))
	}
	s.level = index - 1
	s.NextLevel()
	s.ResetBallCount()
	s.ResetPositions()
	return nil
}

// SkipLevel abandons the current level for the next one. On the last level
// it ends the game as if every level was cleared.
func (s *Session) SkipLevel() []Event {
	if !s.NextLevel() {
		s.state = StateAllLevelsDone
		return []Event{{Kind: EventAllLevelsDone, Level: s.level}}
	}
	s.ResetBallCount()
	s.ResetPositions()
	return []Event{{Kind: EventLevelStart, Level: s.level}}
}

// ResetPositions returns ball and paddle to the start point and gives the
// ball a fresh random upward velocity.
func (s *Session) ResetPositions() {
	s.paddle.ResetPosition(s.opts.Start)
	s.paddle.Stop()
	s.ball.MoveTo(s.opts.Start)

	xs := [...]int{-2, -1, 1, 2}
	s.ball.SetSpeed(xs[s.rng.IntN(len(xs))], -(1 + s.rng.IntN(2)))
	s.ballLost = false
}

// ResetWall repairs every brick of the current level and restores the
// ball allotment.
func (s *Session) ResetWall() {
	s.current().Repair()
	s.liveBricks = s.current().Live()
	s.ResetBallCount()
}

// ResetBallCount restores the ball allotment.
func (s *Session) ResetBallCount() {
	s.balls = s.opts.Balls
}

func (s *Session) SetPaddleMoveLeft()  { s.paddle.MoveLeft() }
func (s *Session) SetPaddleMoveRight() { s.paddle.MoveRight() }
func (s *Session) SetPaddleStop()      { s.paddle.Stop() }

// SetBallVelocity overrides the ball velocity.
func (s *Session) SetBallVelocity(x, y int) { s.ball.SetSpeed(x, y) }

// SetMaxSpeed changes the cap of the speed nudge. Values below 1 are
// raised to 1.
func (s *Session) SetMaxSpeed(n int) { s.resolver.MaxSpeed = max(n, 1) }

// MaxSpeed returns the cap of the speed nudge.
func (s *Session) MaxSpeed() int { return s.resolver.MaxSpeed }

// SetBotAssist turns automatic paddle tracking on or off.
func (s *Session) SetBotAssist(on bool) {
	s.bot = on
	if !on {
		s.paddle.Stop()
	}
}

func (s *Session) current() *wall.Level { return s.levels[s.level] }

func (s *Session) IsBallLost() bool      { return s.ballLost }
func (s *Session) IsLevelComplete() bool { return s.liveBricks == 0 }
func (s *Session) IsGameOver() bool      { return s.balls <= 0 }
func (s *Session) HasMoreLevels() bool   { return s.level+1 < len(s.levels) }
func (s *Session) LiveBrickCount() int   { return s.liveBricks }
func (s *Session) RemainingBalls() int   { return s.balls }
func (s *Session) CurrentLevel() int     { return s.level }
func (s *Session) LevelCount() int       { return len(s.levels) }
func (s *Session) State() State          { return s.state }
func (s *Session) BotAssist() bool       { return s.bot }

// LevelTicks returns the ticks played on the current level.
func (s *Session) LevelTicks() int { return s.levelTicks }

// LevelName returns the name of the current level.
func (s *Session) LevelName() string { return s.current().Name }

// Area returns the play area.
func (s *Session) Area() core.Rect { return s.opts.Area }

func (s *Session) Ball() *Ball     { return s.ball }
func (s *Session) Paddle() *Paddle { return s.paddle }

// Bricks returns the bricks of the current level, broken ones included.
func (s *Session) Bricks() []*brick.Brick { return s.current().Bricks }
