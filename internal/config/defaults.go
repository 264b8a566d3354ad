package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in constants.
// It must stay in sync with defaults/jumper.yaml.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: WorldConfig{
			Width:         800,
			Height:        600,
			ScrollDivisor: 3,
		},
		Player: PlayerConfig{
			Width:     32,
			Height:    48,
			MoveSpeed: 5,
		},
		Physics: PhysicsConfig{
			Gravity:          1,
			JumpForce:        15,
			LandingTolerance: 10,
		},
		Platforms: PlatformConfig{
			Count:        11,
			Height:       16,
			MinWidth:     50,
			MaxWidth:     120,
			SpawnMarginX: 100,
			SpawnTop:     100,
			SpawnBottom:  100,
			StartWidth:   100,
			StartOffsetY: 50,
		},
		Coins: CoinConfig{
			Count:             5,
			Size:              16,
			SpawnBottomMargin: 300,
		},
		Scoring: ScoringConfig{
			CoinReward:     10,
			PlatformReward: 1,
		},
		Input: InputConfig{
			HoldTicks: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
