package match

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

// Errors returned when a request is rejected. A rejected request never
// changes the match state.
var (
	ErrGameOver    = errors.New("match: game is over")
	ErrOutOfBounds = errors.New("match: position out of bounds")
	ErrIllegalMove = errors.New("match: illegal move")
	ErrMustPass    = errors.New("match: no legal move, player must pass")
	ErrCannotPass  = errors.New("match: player has a legal move and cannot pass")
)

// MoveResult describes an applied move.
type MoveResult struct {
	Entry   LogEntry
	Flipped []othello.Pos
}

// Controller owns the match state and applies moves, passes and history
// operations to it. All methods run to completion synchronously; callers on
// more than one goroutine must serialize access themselves.
type Controller struct {
	settings Settings
	state    State
	history  []State
	future   []State
	version  uint64
	undo     bool
	logger   *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithHistory enables or disables undo/redo snapshots.
func WithHistory(enabled bool) Option {
	return func(c *Controller) { c.undo = enabled }
}

// WithLogger sets the logger used for match events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController starts a match with the given settings. History is enabled
// unless turned off with WithHistory(false).
func NewController(settings Settings, opts ...Option) *Controller {
	c := &Controller{
		settings: settings,
		state:    initialState(settings),
		undo:     true,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current match state.
func (c *Controller) State() State {
	return c.state.Clone()
}

// Settings returns the settings the match was created with.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Version increases on every successful state change. Deferred actions use it
// to detect that the state moved on since they were scheduled.
func (c *Controller) Version() uint64 {
	return c.version
}

// HistoryEnabled reports whether undo/redo are available at all.
func (c *Controller) HistoryEnabled() bool {
	return c.undo
}

// Phase derives the state machine position from the current state.
func (c *Controller) Phase() Phase {
	if c.state.Over {
		return PhaseGameOver
	}
	if !c.settings.Rules.HasAnyLegalMove(c.state.Board, c.state.Active) {
		return PhasePassed
	}
	return PhaseAwaitingMove
}

// LegalMoves lists the active player's legal moves with flip and threat data.
// It is empty once the game is over.
func (c *Controller) LegalMoves() []othello.Move {
	if c.state.Over {
		return nil
	}
	return c.settings.Rules.LegalMoves(c.state.Board, c.state.Active)
}

// IsLegal reports whether the active player may play at pos right now.
func (c *Controller) IsLegal(pos othello.Pos) bool {
	return !c.state.Over && c.settings.Rules.IsLegalMove(c.state.Board, pos, c.state.Active)
}

// Play places a stone for the active player at pos.
func (c *Controller) Play(pos othello.Pos) (MoveResult, error) {
	switch {
	case c.state.Over:
		return MoveResult{}, ErrGameOver
	case !pos.InBounds():
		return MoveResult{}, ErrOutOfBounds
	}
	player := c.state.Active
	rules := c.settings.Rules
	if !rules.IsLegalMove(c.state.Board, pos, player) {
		if !rules.HasAnyLegalMove(c.state.Board, player) {
			return MoveResult{}, ErrMustPass
		}
		return MoveResult{}, ErrIllegalMove
	}

	c.snapshot()

	threat := othello.IsThreat(c.state.Board, pos, player)
	board, flipped := othello.Apply(c.state.Board, pos, player)
	damage := c.settings.Damage.Compute(len(flipped), threat)

	entry := LogEntry{
		Player: player,
		Turn:   c.state.Turn,
		Pos:    pos,
		Flips:  len(flipped),
		Threat: threat,
		Damage: damage,
	}

	opponent := player.Opponent()
	c.state.Board = board
	c.state.Log = append(c.state.Log, entry)
	c.state.setLife(opponent, max(0, c.state.Life(opponent)-damage))
	c.state.ConsecutivePasses = 0
	c.state.Turn++
	c.state.Active = opponent

	if c.state.Life(opponent) == 0 {
		c.finish(Result{Kind: ResultLifeDepletion, Winner: player})
	}
	c.version++

	c.logger.Debug("move", "player", player, "pos", pos, "flips", len(flipped), "threat", threat, "damage", damage)
	return MoveResult{Entry: entry, Flipped: flipped}, nil
}

// Pass confirms a forced pass for the active player. It is only accepted
// when that player has no legal move. Passes are not recorded in the undo
// history.
func (c *Controller) Pass() error {
	if c.state.Over {
		return ErrGameOver
	}
	player := c.state.Active
	if c.settings.Rules.HasAnyLegalMove(c.state.Board, player) {
		return ErrCannotPass
	}

	c.state.ConsecutivePasses++
	if c.state.ConsecutivePasses >= 2 {
		c.finish(compareLife(c.state.BlackLife, c.state.WhiteLife))
	} else {
		c.state.Active = player.Opponent()
		c.state.Turn++
	}
	c.version++

	c.logger.Debug("pass", "player", player, "consecutive", c.state.ConsecutivePasses)
	return nil
}

// Undo restores the state from before the most recent move. Passes carry no
// snapshot of their own, so a pass is undone together with the move before
// it. Undo reports false when there is nothing to undo or history is
// disabled.
func (c *Controller) Undo() bool {
	if !c.undo || len(c.history) == 0 {
		return false
	}
	last := len(c.history) - 1
	c.future = append(c.future, c.state)
	c.state = c.history[last]
	c.history = c.history[:last]
	c.version++
	c.logger.Debug("undo", "turn", c.state.Turn)
	return true
}

// Redo reapplies the most recently undone state.
func (c *Controller) Redo() bool {
	if !c.undo || len(c.future) == 0 {
		return false
	}
	last := len(c.future) - 1
	c.history = append(c.history, c.state)
	c.state = c.future[last]
	c.future = c.future[:last]
	c.version++
	c.logger.Debug("redo", "turn", c.state.Turn)
	return true
}

// CanUndo reports whether Undo would do anything.
func (c *Controller) CanUndo() bool { return c.undo && len(c.history) > 0 }

// CanRedo reports whether Redo would do anything.
func (c *Controller) CanRedo() bool { return c.undo && len(c.future) > 0 }

// Reset starts a new match with the same settings and clears all history.
func (c *Controller) Reset() {
	c.state = initialState(c.settings)
	c.history = nil
	c.future = nil
	c.version++
	c.logger.Debug("reset")
}

// snapshot pushes the current state onto the undo stack and drops any redo
// branch. The live log slice is cloned so later appends cannot alias it.
func (c *Controller) snapshot() {
	if !c.undo {
		return
	}
	c.history = append(c.history, c.state.Clone())
	c.future = nil
}

func (c *Controller) finish(r Result) {
	c.state.Over = true
	c.state.Result = r
	c.logger.Info("game over", "result", r.String())
}

func compareLife(black, white int) Result {
	switch {
	case black > white:
		return Result{Kind: ResultDoublePass, Winner: othello.Black}
	case white > black:
		return Result{Kind: ResultDoublePass, Winner: othello.White}
	default:
		return Result{Kind: ResultDraw}
	}
}
