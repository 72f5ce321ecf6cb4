// Package othellonia adapts a match session to the platform's Game
// interface: it turns input actions into cursor moves and match intents,
// advances the computer's clock once per tick and draws the board.
package othellonia

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-othellonia/internal/config"
	"github.com/vovakirdan/tui-othellonia/internal/core"
	"github.com/vovakirdan/tui-othellonia/internal/match"
	"github.com/vovakirdan/tui-othellonia/internal/othello"
	"github.com/vovakirdan/tui-othellonia/internal/registry"
)

// messageTTL is how long a feedback message stays on screen.
const messageTTL = 3 * time.Second

// Package-level settings applied on the next Reset.
var (
	configPath  string
	cpuOverride othello.Color
	preset      config.Preset
	logger      = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path. Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetCPUColor overrides the computer's color from the config. othello.None clears it.
func SetCPUColor(c othello.Color) {
	cpuOverride = c
}

// SetPreset selects a match length preset. Empty keeps the configured life.
func SetPreset(p config.Preset) {
	preset = p
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game is one Othellonia mode.
type Game struct {
	mode    match.Mode
	cfg     config.Config
	session *match.Session
	cursor  othello.Pos
	tick    uint64
	dt      time.Duration

	screenW int
	screenH int

	message    string
	messageAge time.Duration
	lastPasses int

	cpuColor othello.Color // per-instance override, wins over SetCPUColor
}

// New creates a game for the given mode.
func New(mode match.Mode) *Game {
	return &Game{mode: mode, cfg: config.Default()}
}

func init() {
	registry.Register(match.ModeTwoPlayer.String(), func() registry.Game {
		return New(match.ModeTwoPlayer)
	})
	registry.Register(match.ModeVsCPU.String(), func() registry.Game {
		return New(match.ModeVsCPU)
	})
	registry.Register(match.ModeDemo.String(), func() registry.Game {
		return New(match.ModeDemo)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.String()
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case match.ModeVsCPU:
		return "Othellonia vs Computer"
	case match.ModeDemo:
		return "Othellonia Demo"
	default:
		return "Othellonia (2 Players)"
	}
}

// Description returns a one-line summary of the mode.
func (g *Game) Description() string {
	switch g.mode {
	case match.ModeVsCPU:
		return "play against a random computer opponent"
	case match.ModeDemo:
		return "watch the computer play both colors"
	default:
		return "two players on one keyboard, with undo and redo"
	}
}

// Reset loads the configuration and starts a new match.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.dt = tickDuration(rc.TickRate)
	g.message = ""
	g.messageAge = 0
	g.lastPasses = 0

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default configuration", "err", err)
		cfg = config.Default()
		g.say("Config error, using defaults")
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	g.cfg = cfg

	cpu := cfg.CPUColor()
	if cpuOverride != othello.None {
		cpu = cpuOverride
	}
	if g.cpuColor != othello.None {
		cpu = g.cpuColor
	}

	g.session = match.NewSession(match.SessionConfig{
		Mode:     g.mode,
		CPUColor: cpu,
		CPUDelay: cfg.CPUDelay(),
		Seed:     rc.Seed,
		Settings: cfg.MatchSettings(),
		Logger:   logger,
	})
	g.cursor = g.homeCursor()
}

// UseCPUColor picks the computer's color for this instance only. It takes
// effect on the next Reset.
func (g *Game) UseCPUColor(c othello.Color) {
	g.cpuColor = c
}

// Resize updates the drawing area without restarting the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

func tickDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// homeCursor puts the cursor on the first legal move, or the board center.
func (g *Game) homeCursor() othello.Pos {
	if moves := g.session.LegalMoves(); len(moves) > 0 {
		return moves[0].Pos
	}
	return othello.Pos{Row: othello.Size / 2, Col: othello.Size / 2}
}

// Step handles one tick of input and advances the computer's clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	changed := false

	g.moveCursor(in)

	switch {
	case in.Has(core.ActionRestart):
		g.session.Reset()
		g.cursor = g.homeCursor()
		g.lastPasses = 0
		g.say("New match")
		changed = true
	case in.Has(core.ActionUndo):
		changed = g.undo()
	case in.Has(core.ActionRedo):
		changed = g.redo()
	case in.Has(core.ActionPlace):
		changed = g.place()
	case in.Has(core.ActionPass):
		changed = g.pass()
	}

	if g.session.Advance(g.dt) {
		changed = true
	}
	if changed {
		g.noticePass()
	}

	if g.message != "" {
		g.messageAge += g.dt
		if g.messageAge >= messageTTL {
			g.message = ""
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	g.cursor = othello.Pos{
		Row: core.Wrap(row, othello.Size),
		Col: core.Wrap(col, othello.Size),
	}
}

func (g *Game) place() bool {
	res, err := g.session.Play(g.cursor)
	if err != nil {
		g.say(describeError(err))
		return false
	}
	msg := fmt.Sprintf("%d damage", res.Entry.Damage)
	if res.Entry.Threat {
		msg = fmt.Sprintf("Threat! %d damage", res.Entry.Damage)
	}
	g.say(msg)
	return true
}

func (g *Game) pass() bool {
	if err := g.session.Pass(); err != nil {
		g.say(describeError(err))
		return false
	}
	return true
}

func (g *Game) undo() bool {
	if !g.session.HistoryEnabled() {
		g.say("Undo is only available in two-player mode")
		return false
	}
	if !g.session.Undo() {
		g.say("Nothing to undo")
		return false
	}
	g.lastPasses = g.session.State().ConsecutivePasses
	g.say("Undone")
	return true
}

func (g *Game) redo() bool {
	if !g.session.HistoryEnabled() {
		g.say("Redo is only available in two-player mode")
		return false
	}
	if !g.session.Redo() {
		g.say("Nothing to redo")
		return false
	}
	g.lastPasses = g.session.State().ConsecutivePasses
	g.say("Redone")
	return true
}

// noticePass announces a pass that just happened.
func (g *Game) noticePass() {
	st := g.session.State()
	if st.ConsecutivePasses > g.lastPasses && !st.Over {
		g.say(fmt.Sprintf("%s passed", title(st.Active.Opponent())))
	}
	g.lastPasses = st.ConsecutivePasses
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageAge = 0
}

func describeError(err error) string {
	switch {
	case errors.Is(err, match.ErrMustPass):
		return "No legal move: press p to pass"
	case errors.Is(err, match.ErrCannotPass):
		return "You still have a legal move"
	case errors.Is(err, match.ErrNotYourTurn):
		return "Wait for the computer"
	case errors.Is(err, match.ErrGameOver):
		return "Game over: press r for a new match"
	case errors.Is(err, match.ErrIllegalMove), errors.Is(err, match.ErrOutOfBounds):
		return "You can't place a stone there"
	default:
		return err.Error()
	}
}

// State reports game-over, whether the computer is thinking and a status line.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		GameOver: st.Over,
		Waiting:  g.session.CPUThinking(),
		Status:   g.status(st),
	}
}

func (g *Game) status(st match.State) string {
	if st.Over {
		return resultText(st.Result)
	}
	who := title(st.Active)
	switch {
	case g.session.Phase() == match.PhasePassed:
		return fmt.Sprintf("%s cannot move and passes", who)
	case g.session.Controls(st.Active):
		return fmt.Sprintf("%s (computer) is thinking", who)
	default:
		return fmt.Sprintf("%s to move", who)
	}
}

func title(c othello.Color) string {
	switch c {
	case othello.Black:
		return "Black"
	case othello.White:
		return "White"
	default:
		return "Nobody"
	}
}

func resultText(r match.Result) string {
	return "Game over: " + r.String()
}
