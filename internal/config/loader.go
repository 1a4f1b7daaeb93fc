package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCarto loads the tile-placement game configuration.
// Search order: customPath -> ~/.carto/configs/carto.yaml -> ./configs/carto.yaml -> embedded default
func LoadCarto(customPath string) (CartoConfig, error) {
	cfg := DefaultCartoConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return Normalize(cfg), nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("carto.yaml"), filepath.Join("configs", "carto.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path, cfg); ok {
			return Normalize(loaded), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCartoYAML, &cfg); err != nil {
		return DefaultCartoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return Normalize(cfg), nil
}

// tryLoad overlays the file at path onto base. Unreadable or invalid
// files are skipped so the next search location can be tried.
func tryLoad(path string, base CartoConfig) (CartoConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, false
	}
	return base, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".carto", "configs", filename)
}

// Normalize clamps every field into its playable range. Out-of-range
// values fall back to the hardcoded defaults.
func Normalize(cfg CartoConfig) CartoConfig {
	def := DefaultCartoConfig()

	if cfg.Stack.InitialSize < 1 {
		cfg.Stack.InitialSize = def.Stack.InitialSize
	}
	if cfg.Stack.BatchSize < 1 {
		cfg.Stack.BatchSize = def.Stack.BatchSize
	}
	if cfg.Stack.LowWarning < 0 {
		cfg.Stack.LowWarning = 0
	}

	cfg.Tiles.MaxSegments = max(1, min(6, cfg.Tiles.MaxSegments))

	cfg.Seed.Tiles = max(1, min(MaxSeedTiles, cfg.Seed.Tiles))
	if cfg.Seed.Radius < 1 {
		cfg.Seed.Radius = def.Seed.Radius
	}
	// Each extra seed needs its own cell within the radius
	for cellsWithin(cfg.Seed.Radius) < cfg.Seed.Tiles {
		cfg.Seed.Radius++
	}

	if cfg.Progression.InitialTarget < 1 {
		cfg.Progression.InitialTarget = def.Progression.InitialTarget
	}
	if cfg.Progression.GrowthFactor <= 1 {
		cfg.Progression.GrowthFactor = def.Progression.GrowthFactor
	}

	if cfg.Session.UndoLimit < 0 {
		cfg.Session.UndoLimit = 0
	}
	if cfg.Session.BadgeTicks < 0 {
		cfg.Session.BadgeTicks = 0
	}

	cfg.Difficulty.InitialLevel = clampF(cfg.Difficulty.InitialLevel, 0.0, 1.0)
	return cfg
}

// cellsWithin counts hex cells at distance <= radius from a center.
func cellsWithin(radius int) int {
	return 1 + 3*radius*(radius+1)
}

// ApplyCartoPreset modifies the config based on a difficulty preset.
func ApplyCartoPreset(cfg *CartoConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust tile supply based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Tiles.MaxSegments = 2
		cfg.Stack.BatchSize = 12
		cfg.Progression.GrowthFactor = 1.15
	case DifficultyHard:
		cfg.Tiles.MaxSegments = 6
		cfg.Stack.BatchSize = 8
		cfg.Progression.GrowthFactor = 1.3
	}
}
