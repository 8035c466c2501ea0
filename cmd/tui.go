package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/dayreport/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Preview the day's entries in an interactive terminal view",
	Long: `Launch an interactive terminal view of the day's collected entries.

The view shows the same entries a generated report would contain, in
the same order. Press r to collect again, q to quit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts, _, ok := resolveOptions(cmd)
		if !ok {
			return
		}
		if err := tui.Run(opts); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to start the interactive view")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: The interactive view requires a terminal")
			deps.Exit(1)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
