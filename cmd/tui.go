package cmd

import (
	"github.com/spf13/cobra"

	"github.com/folio-term/folio/internal/ui"
)

// tuiCmd launches the Bubble Tea TUI. Running folio with no command does the same.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the portfolio TUI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run(cfg)
	},
}
