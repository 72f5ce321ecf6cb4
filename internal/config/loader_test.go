package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// isolate points HOME and the working directory at empty temp dirs so the
// developer's own config files never leak into a test.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "custom.yaml")
	writeFile(t, path, "match:\n  starting_life: 5000\nopponent:\n  color: black\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Match.StartingLife != 5000 {
		t.Errorf("StartingLife = %d, want 5000", cfg.Match.StartingLife)
	}
	if cfg.CPUColor() != othello.Black {
		t.Errorf("CPUColor = %v, want black", cfg.CPUColor())
	}
	// Unset keys keep their defaults.
	if cfg.Damage != Default().Damage {
		t.Errorf("Damage = %+v, want defaults", cfg.Damage)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := Load(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "match: [unterminated\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "cannot parse") {
		t.Errorf("bad yaml error = %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, LocalPath), "match:\n  starting_life: 2000\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Match.StartingLife != 2000 {
		t.Errorf("local config not used: StartingLife = %d", cfg.Match.StartingLife)
	}

	writeFile(t, filepath.Join(home, ".othellonia", "config.yaml"), "match:\n  starting_life: 1000\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Match.StartingLife != 1000 {
		t.Errorf("user config should win over local: StartingLife = %d", cfg.Match.StartingLife)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "neg.yaml")
	writeFile(t, path, "match:\n  starting_life: -1\n")

	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero life", func(c *Config) { c.Match.StartingLife = 0 }, true},
		{"negative base", func(c *Config) { c.Damage.Base = -1 }, true},
		{"negative bonus", func(c *Config) { c.Damage.ThreatBonus = -5 }, true},
		{"shrinking growth", func(c *Config) { c.Damage.Growth = 0.9 }, true},
		{"opening off board", func(c *Config) { c.Match.Opening.Row = 6 }, true},
		{"opening bad color", func(c *Config) { c.Match.Opening.Color = "green" }, true},
		{"opening disabled ignores position", func(c *Config) {
			c.Match.Opening.Enabled = false
			c.Match.Opening.Row = 99
		}, false},
		{"cpu bad color", func(c *Config) { c.Opponent.Color = "" }, true},
		{"negative delay", func(c *Config) { c.Opponent.DelayMS = -1 }, true},
		{"zero delay", func(c *Config) { c.Opponent.DelayMS = 0 }, true},
		{"negative log lines", func(c *Config) { c.UI.LogLines = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatchSettings(t *testing.T) {
	s := Default().MatchSettings()
	if s.StartingLife != 30000 {
		t.Errorf("StartingLife = %d", s.StartingLife)
	}
	if s.Rules != othello.StandardRules() {
		t.Errorf("Rules = %+v, want standard", s.Rules)
	}
	if s.Damage != othello.DefaultDamageParams() {
		t.Errorf("Damage = %+v, want defaults", s.Damage)
	}

	cfg := Default()
	cfg.Match.Opening.Enabled = false
	if cfg.MatchSettings().Rules.Opening.Enabled {
		t.Error("disabled opening rule leaked into settings")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("marshalled default did not parse back to itself")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in   string
		want Preset
		life int
	}{
		{"", PresetStandard, 30000},
		{"quick", PresetQuick, 15000},
		{"long", PresetLong, 60000},
	}
	for _, tt := range tests {
		p, err := ParsePreset(tt.in)
		if err != nil || p != tt.want {
			t.Errorf("ParsePreset(%q) = %v, %v", tt.in, p, err)
			continue
		}
		cfg := Default()
		ApplyPreset(&cfg, p)
		if cfg.Match.StartingLife != tt.life {
			t.Errorf("preset %s life = %d, want %d", p, cfg.Match.StartingLife, tt.life)
		}
	}
	if _, err := ParsePreset("endless"); err == nil {
		t.Error("expected error for unknown preset")
	}
	cfg := Default()
	ApplyPreset(&cfg, PresetQuick)
	if cfg.CPUDelay().Milliseconds() != 250 {
		t.Errorf("quick delay = %v", cfg.CPUDelay())
	}
}
