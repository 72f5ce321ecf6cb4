// Package match runs a single Othellonia game: whose turn it is, life totals,
// the damage log, pass and game-end detection, and undo/redo history. A
// Session adds the computer-controlled side on top of a Controller.
package match

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

// DefaultStartingLife is each player's life at the start of a match.
const DefaultStartingLife = 30000

// Phase is the controller's state machine position.
type Phase int

const (
	// PhaseAwaitingMove means the active player has at least one legal move.
	PhaseAwaitingMove Phase = iota
	// PhasePassed means the active player has no legal move and must pass.
	PhasePassed
	// PhaseGameOver is terminal until Reset.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingMove:
		return "awaiting-move"
	case PhasePassed:
		return "passed"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// ResultKind says how a match ended.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultLifeDepletion
	ResultDoublePass
	ResultDraw
)

// Result is the outcome of a finished match. Winner is othello.None for a draw.
type Result struct {
	Kind   ResultKind
	Winner othello.Color
}

func (r Result) String() string {
	switch r.Kind {
	case ResultLifeDepletion:
		return fmt.Sprintf("%s win by life-depletion", r.Winner)
	case ResultDoublePass:
		return fmt.Sprintf("%s win by double-pass score comparison", r.Winner)
	case ResultDraw:
		return "draw"
	default:
		return ""
	}
}

// LogEntry records one applied move. Entries are never modified once appended.
type LogEntry struct {
	Player othello.Color
	Turn   int // match turn number when the move was made
	Pos    othello.Pos
	Flips  int
	Threat bool
	Damage int
}

// PlayerTurn is the acting player's own turn count, ceil(Turn/2).
func (e LogEntry) PlayerTurn() int {
	return int(math.Ceil(float64(e.Turn) / 2))
}

// String renders the entry as shown in the battle log.
func (e LogEntry) String() string {
	return fmt.Sprintf("%s %s%d: %dダメージ！", e.Player.Icon(), e.Player, e.PlayerTurn(), e.Damage)
}

// State is the full match state. The Controller owns the live copy; values
// handed out by Controller.State are independent snapshots.
type State struct {
	Board             othello.Board
	Active            othello.Color
	BlackLife         int
	WhiteLife         int
	Turn              int
	ConsecutivePasses int
	Log               []LogEntry
	Over              bool
	Result            Result
}

// Life returns the given player's life total.
func (s State) Life(c othello.Color) int {
	if c == othello.White {
		return s.WhiteLife
	}
	return s.BlackLife
}

func (s *State) setLife(c othello.Color, life int) {
	if c == othello.White {
		s.WhiteLife = life
		return
	}
	s.BlackLife = life
}

// Clone returns a deep copy. Board is already a value; only the log slice
// needs copying.
func (s State) Clone() State {
	out := s
	if s.Log != nil {
		out.Log = make([]LogEntry, len(s.Log))
		copy(out.Log, s.Log)
	}
	return out
}

// Settings configure a new match.
type Settings struct {
	StartingLife int
	Rules        othello.Rules
	Damage       othello.DamageParams
}

// DefaultSettings returns 30000 life, the black (4,3) opening rule and the
// stock damage constants.
func DefaultSettings() Settings {
	return Settings{
		StartingLife: DefaultStartingLife,
		Rules:        othello.StandardRules(),
		Damage:       othello.DefaultDamageParams(),
	}
}

func initialState(s Settings) State {
	return State{
		Board:     othello.NewBoard(),
		Active:    othello.Black,
		BlackLife: s.StartingLife,
		WhiteLife: s.StartingLife,
		Turn:      1,
	}
}
