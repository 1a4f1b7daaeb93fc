// Package config provides YAML-based game configuration loading and
// difficulty management for cartographist.
package config

// CartoConfig contains all configuration for the tile-placement game.
type CartoConfig struct {
	Stack       StackConfig       `yaml:"stack"`
	Tiles       TilesConfig       `yaml:"tiles"`
	Seed        SeedConfig        `yaml:"seed"`
	Progression ProgressionConfig `yaml:"progression"`
	Session     SessionConfig     `yaml:"session"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// StackConfig controls the draw pile.
type StackConfig struct {
	InitialSize int `yaml:"initial_size"` // Tiles dealt at game start
	BatchSize   int `yaml:"batch_size"`   // Tiles added on level-up or draw
	LowWarning  int `yaml:"low_warning"`  // Stack count shown in red at or below this
}

// TilesConfig controls tile generation.
type TilesConfig struct {
	MaxSegments int      `yaml:"max_segments"` // 1..6 contiguous terrain arcs
	Terrains    []string `yaml:"terrains"`     // Empty means every terrain
}

// SeedConfig controls the tiles placed before the first move.
type SeedConfig struct {
	Tiles  int `yaml:"tiles"`  // 1..MaxSeedTiles
	Radius int `yaml:"radius"` // Max distance of extra seeds from the origin
}

// ProgressionConfig controls score targets.
type ProgressionConfig struct {
	InitialTarget int     `yaml:"initial_target"`
	GrowthFactor  float64 `yaml:"growth_factor"` // Must be > 1
}

// SessionConfig controls per-session conveniences.
type SessionConfig struct {
	UndoLimit  int `yaml:"undo_limit"`  // 0 disables undo
	BadgeTicks int `yaml:"badge_ticks"` // How long "+points" stays on screen
}

// DifficultyConfig defines how tile complexity grows during a run.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Ramp         RampConfig    `yaml:"ramp"`
	Scaling      ScalingConfig `yaml:"scaling"`
}

// RampConfig defines what drives difficulty upwards.
type RampConfig struct {
	Type  string `yaml:"type"`   // "score", "placements", or "none"
	MaxAt int    `yaml:"max_at"` // Score/placements at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraSegments int `yaml:"extra_segments"` // Segments added to max_segments at max difficulty
}

// MaxSeedTiles caps the number of seed tiles.
const MaxSeedTiles = 7

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
