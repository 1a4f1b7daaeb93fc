package main

import (
	"github.com/spf13/cobra"

	"github.com/giladgray/cartographist/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from the menu",
	Long: `Start with the mode menu. Esc in a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	return tui.RunSession(store, runtimeConfig())
}
