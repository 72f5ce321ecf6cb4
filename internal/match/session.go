package match

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

// DefaultCPUDelay is how long the computer waits before acting, so the
// previous move stays visible for a moment.
const DefaultCPUDelay = 400 * time.Millisecond

// ErrNotYourTurn is returned when a human request arrives while the
// computer-controlled side is to act.
var ErrNotYourTurn = errors.New("match: waiting for the computer")

// Mode selects who controls each color.
type Mode int

const (
	// ModeTwoPlayer is two humans sharing one board, with undo/redo.
	ModeTwoPlayer Mode = iota
	// ModeVsCPU pits a human against the random opponent. No history.
	ModeVsCPU
	// ModeDemo lets the random opponent play both colors.
	ModeDemo
)

func (m Mode) String() string {
	switch m {
	case ModeTwoPlayer:
		return "pvp"
	case ModeVsCPU:
		return "cpu"
	case ModeDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pvp", "two-player":
		return ModeTwoPlayer, nil
	case "cpu", "vs-cpu":
		return ModeVsCPU, nil
	case "demo":
		return ModeDemo, nil
	}
	return 0, fmt.Errorf("match: unknown mode %q", s)
}

// SessionConfig configures a Session.
type SessionConfig struct {
	Mode     Mode
	CPUColor othello.Color // color played by the computer in ModeVsCPU
	CPUDelay time.Duration // zero means DefaultCPUDelay
	Seed     int64
	Settings Settings // zero value means DefaultSettings
	Opponent Opponent // nil means a RandomOpponent seeded with Seed
	Logger   *log.Logger
}

type pendingAction struct {
	due     time.Duration
	version uint64
}

// Session wraps a Controller with the computer-controlled side. Time is
// virtual: the owner calls Advance with the elapsed time and the deferred
// computer action fires from inside that call. Nothing runs in the
// background.
type Session struct {
	id       string
	mode     Mode
	cpuColor othello.Color
	delay    time.Duration
	ctrl     *Controller
	opponent Opponent
	logger   *log.Logger

	clock   time.Duration
	pending *pendingAction
}

// NewSession creates a session and, if the computer moves first, schedules
// its opening move.
func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := uuid.NewString()
	logger = logger.With("session", id[:8])

	delay := cfg.CPUDelay
	if delay <= 0 {
		delay = DefaultCPUDelay
	}
	cpuColor := cfg.CPUColor
	if cpuColor == othello.None {
		cpuColor = othello.White
	}
	settings := cfg.Settings
	if settings == (Settings{}) {
		settings = DefaultSettings()
	}
	opp := cfg.Opponent
	if opp == nil {
		opp = NewRandomOpponent(cfg.Seed)
	}

	s := &Session{
		id:       id,
		mode:     cfg.Mode,
		cpuColor: cpuColor,
		delay:    delay,
		opponent: opp,
		logger:   logger,
	}
	s.ctrl = NewController(settings,
		WithHistory(cfg.Mode == ModeTwoPlayer),
		WithLogger(logger),
	)
	s.schedule()
	logger.Info("session started", "mode", cfg.Mode, "cpu", s.cpuDescription())
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// CPUColor returns the computer's color in ModeVsCPU.
func (s *Session) CPUColor() othello.Color { return s.cpuColor }

// State returns a snapshot of the match state.
func (s *Session) State() State { return s.ctrl.State() }

// Phase returns the controller phase.
func (s *Session) Phase() Phase { return s.ctrl.Phase() }

// LegalMoves returns the active player's legal moves.
func (s *Session) LegalMoves() []othello.Move { return s.ctrl.LegalMoves() }

// IsLegal reports whether the active player may play at pos.
func (s *Session) IsLegal(pos othello.Pos) bool { return s.ctrl.IsLegal(pos) }

// HistoryEnabled reports whether undo and redo are offered.
func (s *Session) HistoryEnabled() bool { return s.ctrl.HistoryEnabled() }

// CanUndo reports whether Undo would succeed.
func (s *Session) CanUndo() bool { return s.ctrl.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (s *Session) CanRedo() bool { return s.ctrl.CanRedo() }

// Controls reports whether the computer plays color c.
func (s *Session) Controls(c othello.Color) bool {
	switch s.mode {
	case ModeVsCPU:
		return c == s.cpuColor
	case ModeDemo:
		return c != othello.None
	default:
		return false
	}
}

// CPUThinking reports whether a computer action is scheduled.
func (s *Session) CPUThinking() bool { return s.pending != nil }

// HumanToAct reports whether the next action belongs to a human.
func (s *Session) HumanToAct() bool {
	st := s.ctrl.State()
	return !st.Over && !s.Controls(st.Active)
}

// Play places a stone for the human whose turn it is.
func (s *Session) Play(pos othello.Pos) (MoveResult, error) {
	if err := s.humanTurn(); err != nil {
		return MoveResult{}, err
	}
	res, err := s.ctrl.Play(pos)
	if err != nil {
		return res, err
	}
	s.schedule()
	return res, nil
}

// Pass confirms a forced pass for the human whose turn it is.
func (s *Session) Pass() error {
	if err := s.humanTurn(); err != nil {
		return err
	}
	if err := s.ctrl.Pass(); err != nil {
		return err
	}
	s.schedule()
	return nil
}

// Undo reverts the last move. It is unavailable outside ModeTwoPlayer.
func (s *Session) Undo() bool {
	if !s.ctrl.Undo() {
		return false
	}
	s.schedule()
	return true
}

// Redo reapplies the last undone move.
func (s *Session) Redo() bool {
	if !s.ctrl.Redo() {
		return false
	}
	s.schedule()
	return true
}

// Reset starts a new match and drops any scheduled computer action.
func (s *Session) Reset() {
	s.ctrl.Reset()
	s.schedule()
	s.logger.Info("session reset")
}

// Advance moves the session clock forward by dt and runs the computer's
// action if it is due. It reports whether the state changed.
func (s *Session) Advance(dt time.Duration) bool {
	s.clock += dt
	if s.pending == nil || s.clock < s.pending.due {
		return false
	}
	return s.fire()
}

// Flush runs a scheduled computer action immediately.
func (s *Session) Flush() bool {
	if s.pending == nil {
		return false
	}
	return s.fire()
}

func (s *Session) fire() bool {
	p := s.pending
	s.pending = nil

	st := s.ctrl.State()
	if p.version != s.ctrl.Version() || st.Over || !s.Controls(st.Active) {
		s.logger.Debug("dropping stale computer action", "scheduled", p.version, "current", s.ctrl.Version())
		s.schedule()
		return false
	}

	if s.ctrl.Phase() == PhasePassed {
		if err := s.ctrl.Pass(); err != nil {
			s.logger.Error("computer pass rejected", "err", err)
			return false
		}
		s.logger.Debug("computer passed", "color", st.Active)
		s.schedule()
		return true
	}

	moves := s.ctrl.LegalMoves()
	move, ok := s.opponent.Choose(moves)
	if !ok || !s.ctrl.IsLegal(move.Pos) {
		s.logger.Warn("opponent gave no usable move, playing the first legal one", "pos", move.Pos, "ok", ok)
		move = moves[0]
	}
	if _, err := s.ctrl.Play(move.Pos); err != nil {
		s.logger.Error("computer move rejected", "pos", move.Pos, "err", err)
		s.schedule()
		return false
	}
	s.schedule()
	return true
}

// schedule replaces any pending action with a fresh one if the computer is
// now to act.
func (s *Session) schedule() {
	s.pending = nil
	st := s.ctrl.State()
	if st.Over || !s.Controls(st.Active) {
		return
	}
	s.pending = &pendingAction{
		due:     s.clock + s.delay,
		version: s.ctrl.Version(),
	}
}

func (s *Session) humanTurn() error {
	st := s.ctrl.State()
	if st.Over {
		return ErrGameOver
	}
	if s.Controls(st.Active) {
		return ErrNotYourTurn
	}
	return nil
}

func (s *Session) cpuDescription() string {
	switch s.mode {
	case ModeVsCPU:
		return s.cpuColor.String()
	case ModeDemo:
		return "both"
	default:
		return "none"
	}
}
