// Package config provides YAML-based match configuration loading and
// validation for Othellonia.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-othellonia/internal/match"
	"github.com/vovakirdan/tui-othellonia/internal/othello"
)

// Config contains everything that can be tuned without recompiling.
type Config struct {
	Match    MatchConfig    `yaml:"match"`
	Damage   DamageConfig   `yaml:"damage"`
	Opponent OpponentConfig `yaml:"opponent"`
	UI       UIConfig       `yaml:"ui"`
}

// MatchConfig defines starting values and the opening rule.
type MatchConfig struct {
	StartingLife int           `yaml:"starting_life"`
	Opening      OpeningConfig `yaml:"opening"`
}

// OpeningConfig forces one color's first move onto a single square.
type OpeningConfig struct {
	Enabled bool   `yaml:"enabled"`
	Color   string `yaml:"color"`
	Row     int    `yaml:"row"`
	Col     int    `yaml:"col"`
}

// DamageConfig holds the damage formula constants.
type DamageConfig struct {
	Base        float64 `yaml:"base"`
	Growth      float64 `yaml:"growth"`
	Special     float64 `yaml:"special"`
	ThreatBonus float64 `yaml:"threat_bonus"`
}

// OpponentConfig defines the computer-controlled side.
type OpponentConfig struct {
	Color   string `yaml:"color"`    // color the computer plays in vs-cpu mode
	DelayMS int    `yaml:"delay_ms"` // pause before the computer acts
}

// UIConfig defines presentation toggles.
type UIConfig struct {
	ShowHints   bool `yaml:"show_hints"`   // highlight legal moves
	ShowThreats bool `yaml:"show_threats"` // highlight threatening moves separately
	LogLines    int  `yaml:"log_lines"`    // battle log entries shown, newest first
}

// Validate reports the first problem found in the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Match.StartingLife <= 0 {
		errs = append(errs, fmt.Errorf("match.starting_life must be positive, got %d", c.Match.StartingLife))
	}
	if c.Match.Opening.Enabled {
		if _, err := othello.ParseColor(c.Match.Opening.Color); err != nil {
			errs = append(errs, fmt.Errorf("match.opening.color: %w", err))
		}
		pos := othello.Pos{Row: c.Match.Opening.Row, Col: c.Match.Opening.Col}
		if !pos.InBounds() {
			errs = append(errs, fmt.Errorf("match.opening position %v is off the board", pos))
		}
	}
	d := c.Damage
	if d.Base < 0 || d.Special < 0 || d.ThreatBonus < 0 {
		errs = append(errs, errors.New("damage parameters must not be negative"))
	}
	if d.Growth < 1 {
		errs = append(errs, fmt.Errorf("damage.growth must be at least 1, got %g", d.Growth))
	}
	if _, err := othello.ParseColor(c.Opponent.Color); err != nil {
		errs = append(errs, fmt.Errorf("opponent.color: %w", err))
	}
	if c.Opponent.DelayMS <= 0 {
		errs = append(errs, fmt.Errorf("opponent.delay_ms must be positive, got %d", c.Opponent.DelayMS))
	}
	if c.UI.LogLines < 0 {
		errs = append(errs, fmt.Errorf("ui.log_lines must not be negative, got %d", c.UI.LogLines))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}

// MatchSettings converts the configuration into controller settings.
// Call Validate first; invalid colors fall back to black.
func (c Config) MatchSettings() match.Settings {
	rules := othello.Rules{}
	if o := c.Match.Opening; o.Enabled {
		color, err := othello.ParseColor(o.Color)
		if err != nil {
			color = othello.Black
		}
		rules.Opening = othello.OpeningRule{
			Enabled: true,
			Color:   color,
			Pos:     othello.Pos{Row: o.Row, Col: o.Col},
		}
	}
	return match.Settings{
		StartingLife: c.Match.StartingLife,
		Rules:        rules,
		Damage: othello.DamageParams{
			Base:        c.Damage.Base,
			Growth:      c.Damage.Growth,
			Special:     c.Damage.Special,
			ThreatBonus: c.Damage.ThreatBonus,
		},
	}
}

// CPUColor returns the configured computer color, white if unset or invalid.
func (c Config) CPUColor() othello.Color {
	color, err := othello.ParseColor(c.Opponent.Color)
	if err != nil {
		return othello.White
	}
	return color
}

// CPUDelay returns the computer's thinking pause.
func (c Config) CPUDelay() time.Duration {
	return time.Duration(c.Opponent.DelayMS) * time.Millisecond
}
