package tui

import (
	"testing"

	"github.com/vovakirdan/tui-othellonia/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"k", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"j", core.ActionDown},
		{"left", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"l", core.ActionRight},
		{"enter", core.ActionPlace},
		{" ", core.ActionPlace},
		{"p", core.ActionPass},
		{"u", core.ActionUndo},
		{"y", core.ActionRedo},
		{"r", core.ActionRestart},
		{"esc", core.ActionBack},
		{"b", core.ActionBack},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"tab", core.ActionNone},
		{"?", core.ActionNone},
		{"x", core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"left", MenuActionLeft},
		{"l", MenuActionRight},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"p", MenuActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	k := DefaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Fatal("short help is empty")
	}
	for _, col := range k.FullHelp() {
		for _, b := range col {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
}
