package cmd

import (
	"lecturectl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Pick a course and date from a form to create lecture notes, browse and search lectures, or export a calendar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := &tui.App{Registry: registry, Paths: paths, Logger: logger}
		return app.Run()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
