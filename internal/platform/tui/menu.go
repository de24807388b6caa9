package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/storage"
	"github.com/vovakirdan/bricks/internal/wall"
)

// LevelEntry is one row of the level picker.
type LevelEntry struct {
	Name     string
	Template string
	Best     string // Best time as MM:SS, empty if never cleared
}

// LevelEntries builds picker rows for the level definitions, looking up
// best times when a store is available.
func LevelEntries(defs []wall.Def, store *storage.Store) []LevelEntry {
	entries := make([]LevelEntry, len(defs))
	for i, d := range defs {
		entries[i] = LevelEntry{Name: d.Name, Template: d.Template}
		if store == nil {
			continue
		}
		if best, ok, err := store.BestTime(i + 1); err == nil && ok {
			entries[i].Best = storage.FormatTime(best)
		}
	}
	return entries
}

// MenuSelection holds the user's choice from the level picker.
type MenuSelection struct {
	Level      int  // Zero-based starting level
	Scoreboard bool // Open the best-times table instead of playing
}

var menuOptions = []string{
	"Play all levels",
	"Select level...",
	"Best times",
}

// MenuModel lets users start from the first level, pick a level, or open
// the scoreboard.
type MenuModel struct {
	levels        []LevelEntry
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     *MenuSelection
	quitting      bool
}

// NewMenuModel creates a new level picker.
func NewMenuModel(levels []LevelEntry, width, height int) MenuModel {
	return MenuModel{
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuOptions)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		m.selection = &MenuSelection{Scoreboard: true}
		return m, tea.Quit
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.selection = &MenuSelection{}
			return m, tea.Quit
		case 1:
			m.inLevelSelect = true
			m.levelCursor = 0
		case 2:
			m.selection = &MenuSelection{Scoreboard: true}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selection = &MenuSelection{Level: m.levelCursor}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the picker.
func (m MenuModel) View() string {
	if m.quitting || m.selection != nil {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m MenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B R I C K S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%d levels", len(m.levels)), m.width))
	b.WriteString("\n\n")

	for i, opt := range menuOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		best := "--:--"
		if l.Best != "" {
			best = l.Best
		}
		line := fmt.Sprintf("%s%2d. %-24s %-10s %s", cursor, i+1, l.Name, l.Template, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the selection, or nil if the user quit.
func (m MenuModel) Selected() *MenuSelection {
	return m.selection
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunMenu runs the level picker and returns the selection, or nil when the
// user quit.
func RunMenu(levels []LevelEntry, cfg core.RuntimeConfig) (*MenuSelection, error) {
	p := tea.NewProgram(
		NewMenuModel(levels, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := finalModel.(MenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
