package config

import (
	_ "embed"
)

//go:embed defaults/othellonia.yaml
var defaultYAML []byte

// Default returns the built-in configuration: 30000 life, black opens at
// (4,3), the stock damage constants and a white computer that waits 400ms.
func Default() Config {
	return Config{
		Match: MatchConfig{
			StartingLife: 30000,
			Opening: OpeningConfig{
				Enabled: true,
				Color:   "black",
				Row:     4,
				Col:     3,
			},
		},
		Damage: DamageConfig{
			Base:        1500,
			Growth:      1.2,
			Special:     1500,
			ThreatBonus: 2500,
		},
		Opponent: OpponentConfig{
			Color:   "white",
			DelayMS: 400,
		},
		UI: UIConfig{
			ShowHints:   true,
			ShowThreats: true,
			LogLines:    8,
		},
	}
}
