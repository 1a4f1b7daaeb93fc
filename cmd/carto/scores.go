package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/giladgray/cartographist/internal/platform/tui"
	"github.com/giladgray/cartographist/internal/registry"
	"github.com/giladgray/cartographist/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best runs for a mode (default: carto).

Examples:
  carto scores
  carto scores carto_endless --limit 20
  carto scores --tui
  carto scores carto --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "carto"
	if len(args) > 0 {
		gameID = args[0]
	}
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q (run 'carto list' to see available modes)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}
	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("cleared scores", "mode", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", info.Title)
	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'carto play %s' to set the first high score!\n", gameID)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Rank\tScore\tLevel\tTiles\tWhen")
	fmt.Fprintln(w, "  ----\t-----\t-----\t-----\t----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%d\t%s\n", i+1, humanize.Comma(int64(e.Score)), e.Level, e.Tiles, humanize.Time(e.CreatedAt()))
	}
	w.Flush()

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("%s runs, best %s, average %.0f, %s tiles placed\n",
			humanize.Comma(int64(stats.GamesCount)),
			humanize.Comma(int64(stats.HighScore)),
			stats.AvgScore,
			humanize.Comma(stats.TotalTiles),
		)
	}
	return nil
}
