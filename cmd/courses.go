package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Show the registered courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Width(6)
		mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

		out := cmd.OutOrStdout()
		for _, c := range registry.All() {
			fmt.Fprintf(out, "%s%s: %s (%s)\n", idStyle.Render(c.ID), c.Code, c.Name, c.Instructor)
			fmt.Fprintf(out, "      %s\n", mutedStyle.Render(fmt.Sprintf("tab #%s, folder %s/", c.Tab, c.Folder)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
