package othellonia

import (
	"github.com/vovakirdan/tui-othellonia/internal/match"
	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

// Snapshot captures what the player can see, for tests and headless runs.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Turn      int
	Active    string
	BlackLife int
	WhiteLife int
	Board     string // othello.Board notation
	Cursor    othello.Pos
	Phase     string
	Result    string
	Log       []string // newest first
	Message   string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Mode: g.ID()}
	}
	st := g.session.State()

	log := make([]string, 0, len(st.Log))
	for _, e := range newestFirst(st.Log, len(st.Log)) {
		log = append(log, e.String())
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      g.ID(),
		Turn:      st.Turn,
		Active:    st.Active.String(),
		BlackLife: st.BlackLife,
		WhiteLife: st.WhiteLife,
		Board:     st.Board.String(),
		Cursor:    g.cursor,
		Phase:     g.session.Phase().String(),
		Log:       log,
		Message:   g.message,
	}
	if st.Over {
		snap.Result = st.Result.String()
	}
	return snap
}

// Session exposes the underlying match session.
func (g *Game) Session() *match.Session {
	return g.session
}
