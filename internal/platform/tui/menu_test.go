package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-othellonia/internal/core"
	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

var menuConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}

func sendMenu(t *testing.T, m MenuModel, k string) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(k))
	return next.(MenuModel), cmd
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(menuConfig, othello.None)
	if len(m.items) != 2 || m.items[0].GameID != "cpu" || m.items[1].GameID != "pvp" {
		t.Fatalf("items = %+v", m.items)
	}
	if !m.items[0].VsCPU || m.items[1].VsCPU {
		t.Error("only the cpu mode should offer a computer color")
	}
	if m.CPUColor() != othello.White {
		t.Errorf("default computer color = %v", m.CPUColor())
	}
	if !strings.Contains(m.View(), "computer plays white") {
		t.Error("view should show the computer color")
	}
}

func TestMenuChoosesComputerColor(t *testing.T) {
	m := NewMenuModel(menuConfig, othello.White)

	m, _ = sendMenu(t, m, "right")
	if m.CPUColor() != othello.Black {
		t.Errorf("after right: %v", m.CPUColor())
	}

	m, _ = sendMenu(t, m, "down")
	m, _ = sendMenu(t, m, "left")
	if m.CPUColor() != othello.Black {
		t.Error("color should only change on the cpu entry")
	}

	m, cmd := sendMenu(t, m, "enter")
	if !isQuit(cmd) {
		t.Error("selecting should end the menu")
	}
	res := m.result()
	if res.Quit || res.GameID != "pvp" || res.CPUColor != othello.Black {
		t.Errorf("result = %+v", res)
	}
}

func TestMenuCursorClamps(t *testing.T) {
	m := NewMenuModel(menuConfig, othello.None)
	m, _ = sendMenu(t, m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d", m.cursor)
	}
	m, _ = sendMenu(t, m, "down")
	m, _ = sendMenu(t, m, "down")
	if m.cursor != 1 {
		t.Errorf("cursor = %d", m.cursor)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(menuConfig, othello.None)
	m, cmd := sendMenu(t, m, "q")
	if !isQuit(cmd) || !m.result().Quit {
		t.Error("q should quit the menu")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("too wide text should be unchanged, got %q", got)
	}
}

func TestSessionModelFlow(t *testing.T) {
	s := NewSessionModel(menuConfig, "alice")
	if s.ID() == "" {
		t.Fatal("session has no id")
	}

	update := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	update(keyMsg("right")) // computer plays black
	cmd := update(keyMsg("enter"))
	if s.game == nil || cmd == nil {
		t.Fatal("selecting a mode should start it")
	}
	g := lastCreated
	if g.id != "cpu" || g.cpuColor != othello.Black || g.resets != 1 {
		t.Errorf("started game = %+v", g)
	}
	if !strings.Contains(s.View(), "stub board") {
		t.Error("view should show the game")
	}

	if cmd := update(keyMsg("b")); isQuit(cmd) {
		t.Error("back should not end the SSH session")
	}
	if s.game != nil {
		t.Fatal("back should return to the menu")
	}
	if !strings.Contains(s.View(), "computer plays black") {
		t.Error("menu should remember the computer color")
	}

	update(TickMsg{}) // stale tick from the finished match
	if s.game != nil {
		t.Error("a stale tick should not restart the match")
	}

	if cmd := update(keyMsg("q")); !isQuit(cmd) {
		t.Error("q should end the session")
	}
}
