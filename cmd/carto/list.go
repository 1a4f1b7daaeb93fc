package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/giladgray/cartographist/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTitle\tControls")
	fmt.Fprintln(w, "  --\t-----\t--------")
	for _, g := range games {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", g.ID, g.Title, g.Controls)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Run 'carto play <id>' to play a mode.")
}
