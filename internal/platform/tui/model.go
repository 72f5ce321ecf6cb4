package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-othellonia/internal/core"
	"github.com/vovakirdan/tui-othellonia/internal/match"
	"github.com/vovakirdan/tui-othellonia/internal/registry"
)

// resizer is implemented by games that can change their drawing area
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// sessionSource is implemented by games backed by a match session. It
// enables the battle log viewer.
type sessionSource interface {
	Session() *match.Session
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a mode.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	input    core.InputFrame
	state    core.GameState
	keys     *KeyMapper
	help     help.Model
	logView  *LogView
	embedded bool // owned by a SessionModel; back does not end the program
	quitting bool
	back     bool
	shotPath string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:   game,
		config: cfg,
		input:  core.NewInputFrame(),
		keys:   NewKeyMapper(),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// gameHeight is the screen height left for the game below the help footer.
func (m Model) gameHeight() int {
	lines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.Keys.FullHelp() {
			lines = max(lines, len(col))
		}
	}
	return max(0, m.config.ScreenH-lines)
}

// gameConfig is the runtime config as seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// layout resizes the screen buffer and tells the game about it.
func (m *Model) layout() {
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = cfg.ScreenW
	if r, ok := m.game.(resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
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
	if m.logView != nil {
		lv, cmd := m.logView.Update(msg)
		switch {
		case lv.Quitting():
			m.quitting = true
			return m, tea.Quit
		case lv.Closed():
			m.logView = nil
		default:
			m.logView = &lv
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Log):
		if src, ok := m.game.(sessionSource); ok && src.Session() != nil {
			lv := NewLogView(src.Session().State().Log, m.config.ScreenW, m.config.ScreenH)
			m.logView = &lv
		}
		return m, nil
	case key.Matches(msg, m.keys.Keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleResize keeps the match going and only changes the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout()

	if m.logView != nil {
		lv, _ := m.logView.Update(msg)
		m.logView = &lv
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current board as plain text under
// ~/.othellonia/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".othellonia", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err == nil {
		m.shotPath = path
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.logView != nil {
		return m.logView.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// LastScreenshot returns the path of the last saved screenshot, if any.
func (m Model) LastScreenshot() string {
	return m.shotPath
}

// Run starts the Bubble Tea program for game. It returns true when the user
// asked to go back to the menu rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
