package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/audio"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/game"
	"github.com/vovakirdan/bricks/internal/storage"
)

// Options carries the collaborators of a game run. All fields are optional.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Player string // Name stored with level times
	Sound  bool
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game. The game
// must already be Reset.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the running session and only adapts the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	events := m.game.Events()
	m.logEvents(events)
	if m.opts.Sound {
		audio.Play(events)
	}

	if result.Cleared != nil {
		m.saveTime(*result.Cleared)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []game.Event) {
	l := m.opts.Logger
	for _, ev := range events {
		switch ev.Kind {
		case game.EventLevelStart:
			l.Info("level start", "level", ev.Level+1, "name", m.game.Session().LevelName())
		case game.EventBallLost:
			l.Info("ball lost", "level", ev.Level+1, "balls", m.game.Session().RemainingBalls())
		case game.EventGameOver, game.EventAllLevelsDone:
			l.Info(ev.Kind.String(), "level", ev.Level+1)
		case game.EventBrickHit, game.EventBrickDestroyed:
			l.Debug(ev.Kind.String(), "level", ev.Level+1, "brick", ev.Brick, "face", ev.Face)
		}
	}
}

// saveTime stores a level clear. Failures are logged; the game continues.
func (m Model) saveTime(c core.LevelClear) {
	rate := m.config.TickRate
	if rate <= 0 {
		rate = 60
	}
	d := time.Duration(c.Ticks) * time.Second / time.Duration(rate)
	m.opts.Logger.Info("level cleared", "level", c.Level+1, "time", storage.FormatTime(d))

	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveTime(c.Level+1, m.opts.Player, d); err != nil {
		m.opts.Logger.Error("could not save level time", "level", c.Level+1, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bricks", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bricks_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// WantsBack returns true if the player left the game for the menu.
func (m Model) WantsBack() bool { return m.back }

// Run resets the game and starts the Bubble Tea program. It returns true
// when the player pressed back rather than quit.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := g.Reset(cfg); err != nil {
		return false, err
	}

	model := NewModel(g, cfg, opts)
	model.logEvents([]game.Event{{Kind: game.EventLevelStart, Level: g.State().Level}})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.WantsBack(), nil
}
