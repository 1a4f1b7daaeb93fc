package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giladgray/cartographist/internal/config"
	"github.com/giladgray/cartographist/internal/games/carto"
	"github.com/giladgray/cartographist/internal/platform/tui"
	"github.com/giladgray/cartographist/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start a run in the given mode (default: carto).

Modes:
  carto          - Campaign: the run ends when the stack is empty
  carto_endless  - Endless: press N to draw more tiles

Controls:
  Arrows/WASD   - Move the cursor
  Tab/S-Tab     - Jump between free cells
  Mouse         - Point to move, click to place
  E/Z           - Rotate the next tile
  Space/Enter   - Place
  U             - Undo
  P             - Pause
  R             - Restart (after the map is complete)
  ?             - Key reference
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Fewer terrain segments, bigger batches, gentle targets
  normal - Segments grow slowly with your score
  hard   - Up to six segments, small batches, steep targets
  fixed  - No progression, stays at the config's settings

Examples:
  carto play
  carto play carto_endless
  carto play --difficulty hard
  carto play --config ./my-carto.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "carto"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'carto list' to see available modes)", gameID)
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	if config.IsFixedPreset(preset) {
		logger.Debug("difficulty progression disabled")
	}

	carto.SetConfigPath(flagConfig)
	carto.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Debug("starting run", "mode", gameID, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
