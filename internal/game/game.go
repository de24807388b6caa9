package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/bricks/internal/core"
)

// holdTicks is how long a single key press moves the paddle by default.
// Terminals report held keys as repeats, not as a continuous state.
const holdTicks = 8

// SpeedScaler picks the speed cap for the current level and play time.
type SpeedScaler interface {
	MaxSpeed(base, levelIndex, ticks int) int
}

// Game adapts a Session to the frame-based platform loop: it maps input
// actions onto session commands, holds the serve and pause states and
// renders the board with a HUD.
type Game struct {
	opts       Options
	scaler     SpeedScaler
	startLevel int

	runtime core.RuntimeConfig
	session *Session
	events  []Event

	paused  bool
	serving bool // Waiting for launch after a reset
	moveDir int
	hold    int // Ticks the current press keeps moving the paddle
	keyHold int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// NewGame creates a game for the options. scaler may be nil for a fixed
// speed cap.
func NewGame(opts Options, scaler SpeedScaler) *Game {
	return &Game{
		opts:       opts,
		scaler:     scaler,
		keyHold:    holdTicks,
		minScreenW: 30,
		minScreenH: 12,
	}
}

// SetStartLevel selects the level index the next Reset starts at.
func (g *Game) SetStartLevel(index int) { g.startLevel = index }

// SetKeyHold sets how many ticks one movement press lasts. Frontends that
// report held keys on every tick use 1. Values below 1 become 1.
func (g *Game) SetKeyHold(ticks int) { g.keyHold = max(ticks, 1) }

// Reset builds a fresh session seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	seed := uint64(runtime.Seed) //#nosec G115 -- seed bits are reused as-is
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	s, err := NewSession(g.opts, rng)
	if err != nil {
		return err
	}
	if g.startLevel > 0 {
		if err := s.StartAt(g.startLevel); err != nil {
			return err
		}
	}

	g.session = s
	g.events = g.events[:0]
	g.paused = false
	g.serving = true
	g.moveDir, g.hold = 0, 0
	return nil
}

// Resize adapts to a new screen size.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Session returns the underlying session, or nil before Reset.
func (g *Game) Session() *Session { return g.session }

// Events returns the events of the last Step. The slice is reused.
func (g *Game) Events() []Event { return g.events }

// Serving reports whether the ball waits for launch.
func (g *Game) Serving() bool { return g.serving }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.session == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	s := g.session

	if in.Has(core.ActionRestart) {
		s.Restart()
		g.paused = false
		g.serving = true
		g.events = append(g.events, Event{Kind: EventLevelStart, Level: s.CurrentLevel()})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && s.State() == StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBot) {
		s.SetBotAssist(!s.BotAssist())
	}

	if in.Has(core.ActionSkip) {
		g.events = append(g.events, s.SkipLevel()...)
		g.serving = s.State() == StatePlaying
		return core.StepResult{State: g.State()}
	}

	launch := in.Has(core.ActionLaunch) || in.Has(core.ActionConfirm)
	var result core.StepResult

	switch s.State() {
	case StatePlaying:
		if g.serving {
			if !launch {
				break
			}
			g.serving = false
		}
		g.updatePaddle(in)
		if g.scaler != nil {
			s.SetMaxSpeed(g.scaler.MaxSpeed(g.opts.MaxSpeed, s.CurrentLevel(), s.LevelTicks()))
		}
		g.events = append(g.events, s.Tick()...)

	default:
		if !launch {
			break
		}
		g.events = append(g.events, s.Advance()...)
		if s.State() == StatePlaying {
			g.serving = true
		}
	}

	for _, ev := range g.events {
		if ev.Kind == EventLevelComplete {
			result.Cleared = &core.LevelClear{Level: ev.Level, Ticks: s.LevelTicks()}
		}
	}
	result.State = g.State()
	return result
}

// updatePaddle applies held movement keys. Bot assist overrides them.
func (g *Game) updatePaddle(in core.InputFrame) {
	if g.session.BotAssist() {
		return
	}
	switch {
	case in.Has(core.ActionLeft):
		g.moveDir, g.hold = -1, g.keyHold-1
	case in.Has(core.ActionRight):
		g.moveDir, g.hold = 1, g.keyHold-1
	case g.hold > 0:
		g.hold--
	default:
		g.moveDir = 0
	}

	switch g.moveDir {
	case -1:
		g.session.SetPaddleMoveLeft()
	case 1:
		g.session.SetPaddleMoveRight()
	default:
		g.session.SetPaddleStop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	s := g.session
	return core.GameState{
		Level:    s.CurrentLevel(),
		Bricks:   s.LiveBrickCount(),
		Balls:    s.RemainingBalls(),
		GameOver: s.State() == StateGameOver || s.State() == StateAllLevelsDone,
		Won:      s.State() == StateAllLevelsDone,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || g.session == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	// Field box below the HUD row
	w, h := dst.Width(), dst.Height()
	dst.DrawBox(0, 1, w, h-1)
	v := NewViewport(g.session.Area(), 1, 2, w-2, h-3)
	DrawScene(dst, v, g.session)

	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	left := fmt.Sprintf("Level %d/%d %s", s.CurrentLevel()+1, s.LevelCount(), s.LevelName())
	dst.DrawText(1, 0, left)

	mid := fmt.Sprintf("Bricks: %d  Balls: %d", s.LiveBrickCount(), s.RemainingBalls())
	dst.DrawTextCentered(0, mid)

	right := FormatTicks(s.LevelTicks(), g.runtime.TickRate)
	if s.BotAssist() {
		right = "BOT " + right
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.session
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case s.State() == StatePlaying && g.serving:
		dst.DrawTextCentered(dst.Height()-1, " Press SPACE to launch ")
	case s.State() == StateBallLost:
		g.drawCenteredBox(dst, "BALL LOST", fmt.Sprintf("%d left  |  Press SPACE", s.RemainingBalls()))
	case s.State() == StateLevelComplete:
		sub := fmt.Sprintf("Time %s  |  Press SPACE", FormatTicks(s.LevelTicks(), g.runtime.TickRate))
		g.drawCenteredBox(dst, "LEVEL CLEAR", sub)
	case s.State() == StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", "SPACE to retry  |  R to restart")
	case s.State() == StateAllLevelsDone:
		g.drawCenteredBox(dst, "YOU WIN!", "Press R to restart")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// FormatTicks renders a tick count as MM:SS at the given tick rate.
func FormatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
