//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/bricks/internal/audio"
	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/game"
	"github.com/vovakirdan/bricks/internal/storage"
)

const hudHeight = 20

// Window adapts a game to the ebiten.Game interface. World units map 1:1
// to pixels below a HUD strip.
type Window struct {
	game    *game.Game
	opts    Options
	area    core.Rect
	runtime core.RuntimeConfig
	pixel   *ebiten.Image
}

func newWindow(g *game.Game, runtime core.RuntimeConfig, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Window{
		game:    g,
		opts:    opts,
		area:    g.Session().Area(),
		runtime: runtime,
		pixel:   pixel,
	}
}

// frame collects this tick's input. Movement keys are read as held,
// everything else as just pressed.
func frame() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	pressed := map[ebiten.Key]core.Action{
		ebiten.KeySpace: core.ActionLaunch,
		ebiten.KeyUp:    core.ActionLaunch,
		ebiten.KeyEnter: core.ActionConfirm,
		ebiten.KeyP:     core.ActionPause,
		ebiten.KeyT:     core.ActionBot,
		ebiten.KeyN:     core.ActionSkip,
		ebiten.KeyR:     core.ActionRestart,
	}
	for k, a := range pressed {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(a)
		}
	}
	return in
}

// Update handles per-frame logic and advances the game.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	result := w.game.Step(frame())
	if w.opts.Sound {
		audio.Play(w.game.Events())
	}
	if c := result.Cleared; c != nil {
		d := time.Duration(c.Ticks) * time.Second / time.Duration(w.runtime.TickRate)
		w.opts.Logger.Info("level cleared", "level", c.Level+1, "time", storage.FormatTime(d))
		if w.opts.Store != nil {
			if _, err := w.opts.Store.SaveTime(c.Level+1, w.opts.Player, d); err != nil {
				w.opts.Logger.Error("could not save level time", "level", c.Level+1, "error", err)
			}
		}
	}
	return nil
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// fillRect draws a solid rectangle by scaling the 1x1 pixel image.
func (w *Window) fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(r.X-w.area.X, r.Y-w.area.Y+hudHeight)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(w.pixel, op)
}

func (w *Window) strokePath(dst *ebiten.Image, p brick.Path, c color.Color) {
	for i := 1; i < len(p); i++ {
		a, b := p[i-1], p[i]
		vector.StrokeLine(dst,
			float32(a.X-w.area.X), float32(a.Y-w.area.Y+hudHeight),
			float32(b.X-w.area.X), float32(b.Y-w.area.Y+hudHeight),
			1, c, false)
	}
}

// Draw renders the board and the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s := w.game.Session()

	for _, b := range s.Bricks() {
		if b.IsBroken() {
			continue
		}
		fill, border := b.Colors()
		r := b.Bounds()
		w.fillRect(screen, r, rgba(border))
		w.fillRect(screen, core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), rgba(fill))

		for _, p := range b.Face().Fracture {
			w.strokePath(screen, p, color.Black)
		}
		if !b.Kind().MergesFace() {
			for _, p := range b.Cracks() {
				w.strokePath(screen, p, rgba(border))
			}
		}
	}

	pfill, _ := s.Paddle().Colors()
	w.fillRect(screen, s.Paddle().Rect(), rgba(pfill))

	ball := s.Ball()
	bfill, _ := ball.Colors()
	c := ball.Center()
	r, _ := ball.Shape().Radii()
	vector.DrawFilledCircle(screen,
		float32(c.X-w.area.X), float32(c.Y-w.area.Y+hudHeight),
		float32(r), rgba(bfill), true)

	w.drawHUD(screen)
}

func (w *Window) drawHUD(screen *ebiten.Image) {
	s := w.game.Session()
	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	hud := fmt.Sprintf("Level %d/%d %s   Bricks %d   Balls %d   %s",
		s.CurrentLevel()+1, s.LevelCount(), s.LevelName(),
		s.LiveBrickCount(), s.RemainingBalls(),
		game.FormatTicks(s.LevelTicks(), w.runtime.TickRate))
	if s.BotAssist() {
		hud += "   BOT"
	}
	text.Draw(screen, hud, face, 4, 14, fg)

	var msg string
	switch {
	case w.game.State().Paused:
		msg = "PAUSED - press P"
	case s.State() == game.StatePlaying && w.game.Serving():
		msg = "Press SPACE to launch"
	case s.State() == game.StateBallLost:
		msg = "Ball lost - press SPACE"
	case s.State() == game.StateLevelComplete:
		msg = "Level clear! Press SPACE"
	case s.State() == game.StateGameOver:
		msg = "GAME OVER - SPACE to retry, R to restart"
	case s.State() == game.StateAllLevelsDone:
		msg = "YOU WIN! Press R to restart"
	}
	if msg != "" {
		x := int(w.area.W)/2 - len(msg)*7/2
		y := int(w.area.H)/2 + hudHeight
		text.Draw(screen, msg, face, x, y, fg)
	}
}

// Layout returns the logical screen size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.area.W), int(w.area.H) + hudHeight
}

// Run opens the window and plays until it is closed.
func Run(g *game.Game, runtime core.RuntimeConfig, opts Options) error {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	// The window never reports a too-small screen.
	runtime.ScreenW, runtime.ScreenH = 1<<15, 1<<15
	if err := g.Reset(runtime); err != nil {
		return err
	}

	// Held keys are polled every tick, so a press lasts only its own tick.
	g.SetKeyHold(1)

	w := newWindow(g, runtime, opts)
	scale := max(opts.Scale, 1)
	ebiten.SetWindowTitle("bricks")
	ebiten.SetTPS(runtime.TickRate)
	ebiten.SetWindowSize(int(w.area.W)*scale, (int(w.area.H)+hudHeight)*scale)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
