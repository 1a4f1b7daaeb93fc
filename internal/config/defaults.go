package config

import (
	_ "embed"
)

//go:embed defaults/carto.yaml
var defaultCartoYAML []byte

// DefaultCartoConfig returns the hardcoded configuration used when
// neither a file nor the embedded YAML can be read.
func DefaultCartoConfig() CartoConfig {
	return CartoConfig{
		Stack: StackConfig{
			InitialSize: 10,
			BatchSize:   10,
			LowWarning:  2,
		},
		Tiles: TilesConfig{
			MaxSegments: 3,
		},
		Seed: SeedConfig{
			Tiles:  4,
			Radius: 3,
		},
		Progression: ProgressionConfig{
			InitialTarget: 10,
			GrowthFactor:  1.2,
		},
		Session: SessionConfig{
			UndoLimit:  3,
			BadgeTicks: 45,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Ramp: RampConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				ExtraSegments: 3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "carto", "carto_endless":
		return defaultCartoYAML
	default:
		return nil
	}
}
