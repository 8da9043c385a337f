package cmd

import (
	"lecturectl/pkg/site"
	"lecturectl/pkg/tui"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [course]",
	Short: "List the lectures linked from the index",
	Long:  "List lectures per course in index order. --search keeps entries whose text contains the term, ignoring case.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")

		entries, err := site.ReadEntries(paths.Index)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			course, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}
			var inCourse []site.Entry
			for _, e := range entries {
				if e.Tab == course.Tab {
					inCourse = append(inCourse, e)
				}
			}
			entries = inCourse
		}

		tui.PrintEntries(cmd.OutOrStdout(), registry, site.Filter(entries, search))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("search", "s", "", "Only show lectures containing this text")
}
