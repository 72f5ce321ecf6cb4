package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-othellonia/internal/core"
	"github.com/vovakirdan/tui-othellonia/internal/match"
	"github.com/vovakirdan/tui-othellonia/internal/othello"
	"github.com/vovakirdan/tui-othellonia/internal/registry"
)

// stubGame records what the platform asks of it.
type stubGame struct {
	id       string
	session  *match.Session
	resets   int
	steps    int
	actions  [][]core.Action
	w, h     int
	cpuColor othello.Color
}

var lastCreated *stubGame

func init() {
	for _, id := range []string{"pvp", "cpu"} {
		registry.Register(id, func() registry.Game {
			g := &stubGame{id: id}
			lastCreated = g
			return g
		})
	}
}

func (g *stubGame) ID() string          { return g.id }
func (g *stubGame) Title() string       { return "Stub " + g.id }
func (g *stubGame) Description() string { return "stub mode " + g.id }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
	g.session = match.NewSession(match.SessionConfig{Mode: match.ModeTwoPlayer})
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	var got []core.Action
	for a := range in.Actions {
		got = append(got, a)
	}
	g.actions = append(g.actions, got)
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState       { return core.GameState{Status: "ok"} }
func (g *stubGame) Resize(w, h int)             { g.w, g.h = w, h }
func (g *stubGame) Session() *match.Session     { return g.session }
func (g *stubGame) UseCPUColor(c othello.Color) { g.cpuColor = c }

// keyMsg builds the key message Bubble Tea sends for a key name.
func keyMsg(k string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"up":     tea.KeyUp,
		"down":   tea.KeyDown,
		"left":   tea.KeyLeft,
		"right":  tea.KeyRight,
		"enter":  tea.KeyEnter,
		"esc":    tea.KeyEsc,
		"tab":    tea.KeyTab,
		" ":      tea.KeySpace,
		"ctrl+c": tea.KeyCtrlC,
		"ctrl+s": tea.KeyCtrlS,
	}
	if t, ok := special[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
