package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/wall"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func newSession(t *testing.T, opts Options, seed uint64) *Session {
	t.Helper()
	s, err := NewSession(opts, seeded(seed))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

// slabOptions uses a single full-width clay brick per level so tests can
// clear a level with one hit.
func slabOptions(levels int) Options {
	opts := DefaultOptions()
	opts.Levels = nil
	for range levels {
		opts.Levels = append(opts.Levels, wall.Def{
			Name: "slab", Template: "uniform", KindA: brick.KindClay,
			BrickCount: 1, Rows: 1, Ratio: 3,
		})
	}
	return opts
}

func TestNewSession(t *testing.T) {
	s := newSession(t, DefaultOptions(), 1)

	if s.State() != StatePlaying {
		t.Errorf("State = %v, expected playing", s.State())
	}
	if s.CurrentLevel() != 0 {
		t.Errorf("CurrentLevel = %d, expected 0", s.CurrentLevel())
	}
	if s.LiveBrickCount() != 31 {
		t.Errorf("LiveBrickCount = %d, expected 31", s.LiveBrickCount())
	}
	if s.RemainingBalls() != 3 {
		t.Errorf("RemainingBalls = %d, expected 3", s.RemainingBalls())
	}
	if !s.HasMoreLevels() {
		t.Error("Stock levels should have more than one level")
	}
	if vy := s.Ball().SpeedY(); vy != -1 && vy != -2 {
		t.Errorf("Initial SpeedY = %d, expected -1 or -2", vy)
	}
	if vx := s.Ball().SpeedX(); vx == 0 || core.Abs(vx) > 2 {
		t.Errorf("Initial SpeedX = %d, expected one of -2, -1, 1, 2", vx)
	}
}

func TestNewSessionErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.Levels = nil
	if _, err := NewSession(opts, seeded(1)); !errors.Is(err, ErrNoLevels) {
		t.Errorf("error = %v, expected ErrNoLevels", err)
	}

	opts = DefaultOptions()
	opts.Levels[2].KindB = brick.Kind(42)
	if _, err := NewSession(opts, seeded(1)); !errors.Is(err, brick.ErrUnknownKind) {
		t.Errorf("error = %v, expected ErrUnknownKind", err)
	}
}

func TestBallLostBelowBottom(t *testing.T) {
	s := newSession(t, DefaultOptions(), 2)
	s.Ball().MoveTo(core.Pt(50, 449))
	s.SetBallVelocity(1, 3)

	events := s.Tick()

	if !s.IsBallLost() {
		t.Fatal("Ball should be lost")
	}
	if s.RemainingBalls() != 2 {
		t.Errorf("RemainingBalls = %d, expected 2", s.RemainingBalls())
	}
	if s.Ball().SpeedX() != 1 || s.Ball().SpeedY() != 3 {
		t.Errorf("Speed = (%d, %d), expected (1, 3)", s.Ball().SpeedX(), s.Ball().SpeedY())
	}
	if s.State() != StateBallLost {
		t.Errorf("State = %v, expected ball-lost", s.State())
	}
	if len(events) == 0 || events[len(events)-1].Kind != EventBallLost {
		t.Errorf("Events = %v, expected a ball-lost event", events)
	}

	// Resting states ignore ticks.
	before := s.Snapshot()
	if ev := s.Tick(); ev != nil {
		t.Errorf("Tick in ball-lost returned %v, expected nil", ev)
	}
	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Tick in ball-lost should not change state")
	}

	s.Advance()
	if s.State() != StatePlaying || s.IsBallLost() {
		t.Errorf("State = %v, lost = %v, expected playing", s.State(), s.IsBallLost())
	}
	if s.Ball().Center() != core.Pt(300, 430) {
		t.Errorf("Ball at %v, expected start point", s.Ball().Center())
	}
}

func TestGameOverAndRetry(t *testing.T) {
	opts := DefaultOptions()
	opts.Balls = 1
	s := newSession(t, opts, 3)

	s.Ball().MoveTo(core.Pt(50, 449))
	s.SetBallVelocity(1, 3)
	s.Tick()

	events := s.Advance()
	if s.State() != StateGameOver || !s.IsGameOver() {
		t.Fatalf("State = %v, expected game-over", s.State())
	}
	if len(events) != 1 || events[0].Kind != EventGameOver {
		t.Errorf("Events = %v, expected game-over", events)
	}

	s.Advance()
	if s.State() != StatePlaying {
		t.Errorf("State = %v, expected playing after retry", s.State())
	}
	if s.RemainingBalls() != 1 {
		t.Errorf("RemainingBalls = %d, expected 1", s.RemainingBalls())
	}
	if s.CurrentLevel() != 0 {
		t.Errorf("CurrentLevel = %d, expected 0", s.CurrentLevel())
	}
}

func TestLevelProgression(t *testing.T) {
	s := newSession(t, slabOptions(2), 4)

	clear := func() {
		t.Helper()
		// The slab spans 0..200 vertically.
		s.Ball().MoveTo(core.Pt(300, 212))
		s.SetBallVelocity(0, -4)
		for i := 0; i < 10 && s.State() == StatePlaying; i++ {
			s.Tick()
		}
		if s.State() != StateLevelComplete {
			t.Fatalf("State = %v, expected level-complete", s.State())
		}
		if !s.IsLevelComplete() || s.LiveBrickCount() != 0 {
			t.Fatalf("LiveBrickCount = %d, expected 0", s.LiveBrickCount())
		}
	}

	clear()
	s.balls = 1
	events := s.Advance()
	if s.CurrentLevel() != 1 || s.State() != StatePlaying {
		t.Fatalf("Level = %d, state = %v, expected level 1 playing", s.CurrentLevel(), s.State())
	}
	if len(events) != 1 || events[0].Kind != EventLevelStart {
		t.Errorf("Events = %v, expected level-start", events)
	}
	if s.RemainingBalls() != 3 {
		t.Errorf("RemainingBalls = %d, expected a fresh allotment of 3", s.RemainingBalls())
	}
	if s.LiveBrickCount() != 1 {
		t.Errorf("LiveBrickCount = %d, expected 1", s.LiveBrickCount())
	}

	clear()
	events = s.Advance()
	if s.State() != StateAllLevelsDone {
		t.Errorf("State = %v, expected all-levels-done", s.State())
	}
	if len(events) != 1 || events[0].Kind != EventAllLevelsDone {
		t.Errorf("Events = %v, expected all-levels-done", events)
	}
	if s.HasMoreLevels() {
		t.Error("HasMoreLevels should be false on the last level")
	}

	s.Restart()
	if s.CurrentLevel() != 0 || s.LiveBrickCount() != 1 || s.State() != StatePlaying {
		t.Errorf("After restart: level %d, bricks %d, state %v", s.CurrentLevel(), s.LiveBrickCount(), s.State())
	}
}

func TestResetWall(t *testing.T) {
	s := newSession(t, DefaultOptions(), 5)
	for _, b := range s.Bricks()[:5] {
		for !b.IsBroken() {
			b.Impact(s.rng)
		}
	}
	s.balls = 1

	s.ResetWall()
	if s.LiveBrickCount() != len(s.Bricks()) {
		t.Errorf("LiveBrickCount = %d, expected %d", s.LiveBrickCount(), len(s.Bricks()))
	}
	if s.RemainingBalls() != 3 {
		t.Errorf("RemainingBalls = %d, expected 3", s.RemainingBalls())
	}
}

func TestPaddleStaysOnTrack(t *testing.T) {
	s := newSession(t, DefaultOptions(), 6)
	area := s.Area()
	rng := seeded(60)

	for i := 0; i < 2000; i++ {
		switch rng.IntN(3) {
		case 0:
			s.SetPaddleMoveLeft()
		case 1:
			s.SetPaddleMoveRight()
		default:
			s.SetPaddleStop()
		}
		s.Paddle().Move()

		r := s.Paddle().Rect()
		if r.X < area.X || r.Right() > area.Right() {
			t.Fatalf("Tick %d: paddle %v left the area", i, r)
		}
	}
}

func TestPaddleRejectsMove(t *testing.T) {
	p := NewPaddle(core.Pt(77, 430), 150, 10, 5, core.NewRect(0, 0, 600, 450))
	p.MoveLeft()
	p.Move()
	if p.Anchor().X != 77 {
		t.Errorf("Anchor X = %v, expected the move to be dropped", p.Anchor().X)
	}
	p.MoveRight()
	p.Move()
	if p.Anchor().X != 82 {
		t.Errorf("Anchor X = %v, expected 82", p.Anchor().X)
	}
}

func TestBotAssistTracksBall(t *testing.T) {
	s := newSession(t, DefaultOptions(), 7)
	s.SetBotAssist(true)
	s.Ball().MoveTo(core.Pt(100, 300))
	s.SetBallVelocity(0, -1)

	start := s.Paddle().Anchor().X
	s.Tick()
	if s.Paddle().Anchor().X >= start {
		t.Errorf("Paddle X = %v, expected it to move left of %v", s.Paddle().Anchor().X, start)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newSession(t, DefaultOptions(), 12345)
		s.SetBotAssist(true)
		for i := 0; i < 20000; i++ {
			switch s.State() {
			case StatePlaying:
				s.Tick()
			case StateAllLevelsDone:
				return s.Snapshot()
			default:
				s.Advance()
			}
		}
		return s.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Tick == 0 {
		t.Error("Expected the session to advance")
	}
}

func TestStartAt(t *testing.T) {
	s := newSession(t, DefaultOptions(), 8)

	if err := s.StartAt(3); err != nil {
		t.Fatalf("StartAt(3) failed: %v", err)
	}
	if s.CurrentLevel() != 3 || s.State() != StatePlaying {
		t.Errorf("Level = %d, state = %v, expected level 3 playing", s.CurrentLevel(), s.State())
	}
	if s.LiveBrickCount() != len(s.Bricks()) {
		t.Errorf("LiveBrickCount = %d, expected %d", s.LiveBrickCount(), len(s.Bricks()))
	}

	for _, idx := range []int{-1, s.LevelCount()} {
		if err := s.StartAt(idx); err == nil {
			t.Errorf("StartAt(%d) should fail", idx)
		}
	}
}

func TestSkipLevel(t *testing.T) {
	s := newSession(t, slabOptions(2), 9)
	s.balls = 1

	events := s.SkipLevel()
	if s.CurrentLevel() != 1 || s.State() != StatePlaying {
		t.Fatalf("Level = %d, state = %v, expected level 1 playing", s.CurrentLevel(), s.State())
	}
	if len(events) != 1 || events[0].Kind != EventLevelStart || events[0].Level != 1 {
		t.Errorf("Events = %v, expected level-start for level 1", events)
	}
	if s.RemainingBalls() != 3 {
		t.Errorf("RemainingBalls = %d, expected 3", s.RemainingBalls())
	}

	events = s.SkipLevel()
	if s.State() != StateAllLevelsDone {
		t.Errorf("State = %v, expected all-levels-done", s.State())
	}
	if len(events) != 1 || events[0].Kind != EventAllLevelsDone {
		t.Errorf("Events = %v, expected all-levels-done", events)
	}
}

func TestSetMaxSpeed(t *testing.T) {
	s := newSession(t, DefaultOptions(), 10)

	tests := []struct {
		in       int
		expected int
	}{
		{6, 6},
		{1, 1},
		{0, 1},
		{-3, 1},
	}
	for _, tt := range tests {
		s.SetMaxSpeed(tt.in)
		if got := s.MaxSpeed(); got != tt.expected {
			t.Errorf("SetMaxSpeed(%d): MaxSpeed = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}
