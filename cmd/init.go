package cmd

import (
	"fmt"

	"lecturectl/pkg/scaffold"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default lecture template and an empty index",
	Long:  "Create lecture-template.html and index.html in the site root. Existing files are never overwritten.",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")

		written, err := scaffold.Init(registry, paths, title)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(written) == 0 {
			fmt.Fprintf(out, "⚠ Site already initialized in %s\n", paths.Root)
			return nil
		}
		for _, f := range written {
			fmt.Fprintf(out, "✓ Created %s\n", f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("title", "Lecture Notes", "Page title of the generated index")
}
