package game

// Snapshot contains the complete session state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	LevelTicks int
	Level      int
	State      int
	Balls      int
	LiveBricks int
	Bot        bool

	BallX, BallY   float64
	SpeedX, SpeedY int
	PaddleX        float64

	// Brick states in wall order, 2 ints each: Strength, Cracks
	BrickData []int
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	bricks := s.Bricks()
	data := make([]int, 0, len(bricks)*2)
	for _, b := range bricks {
		data = append(data, b.Strength(), len(b.Cracks()))
	}

	c := s.ball.Center()
	return Snapshot{
		Tick:       s.tick,
		LevelTicks: s.levelTicks,
		Level:      s.level,
		State:      int(s.state),
		Balls:      s.balls,
		LiveBricks: s.liveBricks,
		Bot:        s.bot,
		BallX:      c.X,
		BallY:      c.Y,
		SpeedX:     s.ball.SpeedX(),
		SpeedY:     s.ball.SpeedY(),
		PaddleX:    s.paddle.Anchor().X,
		BrickData:  data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.LevelTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Balls)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LiveBricks) //#nosec G115 -- hash computation
	if snap.Bot {
		h = h*31 + 1
	}
	h = h*31 + uint64(int64(snap.BallX*1000))   //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.BallY*1000))   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedX)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedY)              //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.PaddleX*1000)) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
