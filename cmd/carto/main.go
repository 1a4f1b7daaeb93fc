// carto is a hex tile-placement puzzle for the terminal.
//
// Usage:
//
//	carto                  - Open the menu (same as carto menu)
//	carto play [mode]      - Play carto or carto_endless directly
//	carto list             - List available modes
//	carto scores [mode]    - Show the best runs
//	carto serve            - Host games over SSH
//
// Global flags:
//
//	--fps <rate>         - Simulation rate (default: 30)
//	--seed <value>       - RNG seed for a reproducible map
//	--db <path>          - Scores database (default: ~/.carto/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/giladgray/cartographist/internal/games/carto"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger writes to stderr so it never mixes with the game screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "carto",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carto",
	Short: "Cartographist - chart a hex map one tile at a time",
	Long: `Cartographist is a terminal puzzle about extending a map of hex tiles.

Place each tile next to the map. Every edge that matches the terrain of
its neighbor scores; more matches on one placement score much more.
Reaching the level target adds fresh tiles to your stack.

Available commands:
  menu     - Pick a mode interactively (default)
  play     - Play a mode directly
  list     - Show all modes
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  carto
  carto play --difficulty hard
  carto play carto_endless --seed 42
  carto serve --ssh :2222
  carto scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.carto/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
