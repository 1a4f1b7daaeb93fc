package config

import "math"

// DifficultyManager calculates tile complexity based on score or placements.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Ramp.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score int, placements int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Ramp.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Ramp.Type {
	case "score":
		progress = float64(score) / maxAt
	case "placements":
		progress = float64(placements) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MaxSegments returns the segment cap for the next batch of tiles.
// It grows from base towards base+ExtraSegments and never exceeds 6.
func (d *DifficultyManager) MaxSegments(base int, score int, placements int) int {
	level := d.Level(score, placements)
	extra := int(math.Round(level * float64(d.cfg.Scaling.ExtraSegments)))
	return max(1, min(6, base+extra))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
