package match

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

func newVsCPU(cpu othello.Color) *Session {
	return NewSession(SessionConfig{
		Mode:     ModeVsCPU,
		CPUColor: cpu,
		Seed:     7,
	})
}

func TestSessionCPURespondsAfterDelay(t *testing.T) {
	s := newVsCPU(othello.White)
	if s.CPUThinking() {
		t.Fatal("computer should not act before the human's first move")
	}

	if _, err := s.Play(othello.Pos{Row: 4, Col: 3}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !s.CPUThinking() {
		t.Fatal("computer move should be scheduled")
	}
	if _, err := s.Play(othello.Pos{Row: 2, Col: 4}); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("Play on computer's turn: %v, want ErrNotYourTurn", err)
	}

	if s.Advance(300 * time.Millisecond) {
		t.Error("computer acted before its delay elapsed")
	}
	if !s.Advance(100 * time.Millisecond) {
		t.Fatal("computer did not act once the delay elapsed")
	}

	st := s.State()
	if st.Active != othello.Black || st.Turn != 3 || len(st.Log) != 2 {
		t.Errorf("after computer move: active=%v turn=%d log=%d", st.Active, st.Turn, len(st.Log))
	}
	if st.Log[1].Player != othello.White {
		t.Errorf("second log entry by %v, want white", st.Log[1].Player)
	}
	if s.CPUThinking() {
		t.Error("nothing should be pending on the human's turn")
	}
}

type fixedOpponent struct {
	move othello.Move
	ok   bool
}

func (f fixedOpponent) Choose([]othello.Move) (othello.Move, bool) { return f.move, f.ok }

func TestSessionCPUFallsBackToLegalMove(t *testing.T) {
	tests := []struct {
		name string
		opp  Opponent
	}{
		{"no move", fixedOpponent{}},
		{"off board", fixedOpponent{move: othello.Move{Pos: othello.Pos{Row: 9, Col: 9}}, ok: true}},
		{"illegal square", fixedOpponent{move: othello.Move{Pos: othello.Pos{Row: 0, Col: 0}}, ok: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(SessionConfig{
				Mode:     ModeVsCPU,
				CPUColor: othello.White,
				Opponent: tt.opp,
			})
			if _, err := s.Play(othello.Pos{Row: 4, Col: 3}); err != nil {
				t.Fatalf("Play: %v", err)
			}
			if !s.Advance(DefaultCPUDelay) {
				t.Fatal("computer did not act")
			}

			st := s.State()
			if st.Active != othello.Black || len(st.Log) != 2 || st.Log[1].Player != othello.White {
				t.Errorf("after computer turn: active=%v log=%v", st.Active, st.Log)
			}
			if !s.HumanToAct() {
				t.Error("the human should be to act again")
			}
		})
	}
}

func TestSessionCPUOpensAsBlack(t *testing.T) {
	s := newVsCPU(othello.Black)
	if !s.CPUThinking() {
		t.Fatal("computer playing black should be scheduled immediately")
	}
	if err := s.Pass(); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("Pass on computer's turn: %v", err)
	}
	if !s.Advance(DefaultCPUDelay) {
		t.Fatal("computer did not open")
	}
	st := s.State()
	if got := st.Log[0].Pos; got != (othello.Pos{Row: 4, Col: 3}) {
		t.Errorf("computer opened at %v, want (4,3)", got)
	}
	if !s.HumanToAct() {
		t.Error("human should be to act")
	}
}

func TestSessionResetCancelsPendingMove(t *testing.T) {
	s := newVsCPU(othello.White)
	if _, err := s.Play(othello.Pos{Row: 4, Col: 3}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	s.Reset()

	if s.CPUThinking() {
		t.Error("Reset should cancel the scheduled move")
	}
	if s.Advance(time.Second) {
		t.Error("cancelled move fired")
	}
	if st := s.State(); st.Turn != 1 || len(st.Log) != 0 {
		t.Errorf("state after reset: turn=%d log=%d", st.Turn, len(st.Log))
	}
}

func TestSessionDropsStaleAction(t *testing.T) {
	s := newVsCPU(othello.White)
	if _, err := s.Play(othello.Pos{Row: 4, Col: 3}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	// Change the state behind the session's back.
	s.ctrl.Reset()

	if s.Advance(time.Second) {
		t.Error("stale computer move was applied")
	}
	if st := s.State(); st.Turn != 1 || len(st.Log) != 0 {
		t.Errorf("stale move touched the board: turn=%d log=%d", st.Turn, len(st.Log))
	}
}

func TestSessionCPUAutoPasses(t *testing.T) {
	s := newVsCPU(othello.White)
	// White to move with nothing to flip; black can answer at (0,2).
	s.ctrl.state.Board = othello.MustParseBoard(
		"BW....",
		"......",
		"......",
		"......",
		"......",
		"......",
	)
	s.ctrl.state.Board[0][0].Provenance = othello.Placed
	s.ctrl.state.Active = othello.White
	s.schedule()

	if s.Phase() != PhasePassed {
		t.Fatalf("Phase = %v, want passed", s.Phase())
	}
	if !s.Advance(DefaultCPUDelay) {
		t.Fatal("computer did not pass")
	}
	st := s.State()
	if st.Active != othello.Black || st.ConsecutivePasses != 1 {
		t.Errorf("after computer pass: active=%v passes=%d", st.Active, st.ConsecutivePasses)
	}
}

func TestSessionHistoryOnlyInTwoPlayer(t *testing.T) {
	cpu := newVsCPU(othello.White)
	if _, err := cpu.Play(othello.Pos{Row: 4, Col: 3}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	cpu.Flush()
	if cpu.HistoryEnabled() || cpu.Undo() || cpu.Redo() {
		t.Error("vs-computer mode must not expose undo/redo")
	}

	pvp := NewSession(SessionConfig{Mode: ModeTwoPlayer})
	if _, err := pvp.Play(othello.Pos{Row: 4, Col: 3}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if pvp.CPUThinking() {
		t.Error("two-player mode never schedules the computer")
	}
	if _, err := pvp.Play(othello.Pos{Row: 4, Col: 4}); err != nil {
		t.Fatalf("white Play: %v", err)
	}
	if !pvp.Undo() || pvp.State().Active != othello.White {
		t.Error("Undo should hand the turn back to white")
	}
	if !pvp.Redo() || pvp.State().Turn != 3 {
		t.Error("Redo should restore turn 3")
	}
}

func TestSessionDemoPlaysToTheEnd(t *testing.T) {
	s := NewSession(SessionConfig{Mode: ModeDemo, Seed: 42, CPUDelay: time.Millisecond})
	for range 500 {
		if s.State().Over {
			break
		}
		s.Advance(time.Millisecond)
	}
	st := s.State()
	if !st.Over {
		t.Fatal("demo match did not finish")
	}
	if st.Result.Kind == ResultNone {
		t.Error("finished match has no result")
	}
	if st.BlackLife < 0 || st.WhiteLife < 0 {
		t.Errorf("negative life %d/%d", st.BlackLife, st.WhiteLife)
	}
	if _, err := s.Play(othello.Pos{Row: 0, Col: 0}); !errors.Is(err, ErrGameOver) {
		t.Errorf("Play after demo end: %v", err)
	}
}

func TestSessionDeterministicWithSeed(t *testing.T) {
	run := func() State {
		s := NewSession(SessionConfig{Mode: ModeDemo, Seed: 99})
		for i := 0; i < 500 && !s.State().Over; i++ {
			s.Flush()
		}
		return s.State()
	}
	a, b := run(), run()
	if a.Board != b.Board || len(a.Log) != len(b.Log) {
		t.Error("same seed produced different games")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"pvp", ModeTwoPlayer, false},
		{"CPU", ModeVsCPU, false},
		{"demo", ModeDemo, false},
		{"online", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}
