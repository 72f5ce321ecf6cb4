package config

import "fmt"

// Preset is a named match length.
type Preset string

const (
	PresetQuick    Preset = "quick"
	PresetStandard Preset = "standard"
	PresetLong     Preset = "long"
)

// Presets lists the presets in menu order.
var Presets = []Preset{PresetQuick, PresetStandard, PresetLong}

// ParsePreset validates a preset name. The empty string means standard.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "":
		return PresetStandard, nil
	case PresetQuick, PresetStandard, PresetLong:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown preset %q", s)
}

// LifeForPreset returns the starting life for a preset.
func LifeForPreset(p Preset) int {
	switch p {
	case PresetQuick:
		return 15000
	case PresetLong:
		return 60000
	default:
		return 30000
	}
}

// ApplyPreset modifies the config based on a match length preset.
func ApplyPreset(cfg *Config, p Preset) {
	cfg.Match.StartingLife = LifeForPreset(p)
	if p == PresetQuick {
		cfg.Opponent.DelayMS = min(cfg.Opponent.DelayMS, 250)
	}
}
