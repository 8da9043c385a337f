package cmd

import (
	"fmt"

	"lecturectl/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the indexed lectures to an ICS file",
	Long:  `Write one all-day calendar event per lecture linked from index.html.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		var n int
		var err error

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting lectures to %s...", output)).
			Action(func() {
				n, err = tui.ExportCalendar(registry, paths.Index, output)
			}).
			Run()

		if err != nil {
			return err
		}

		if n == 0 {
			return fmt.Errorf("no lectures found in %s", paths.Index)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d lectures to %s\n", n, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "lectures.ics", "Output file path")
}
