package cmd

import (
	"fmt"
	"os"

	"lecturectl/pkg/render"
	"lecturectl/pkg/scaffold"
	"lecturectl/pkg/tui"

	"github.com/spf13/cobra"
)

const createUsage = `Usage: lecturectl create <course_number> <date>
Example: lecturectl create 410 2026-01-05`

var createCmd = &cobra.Command{
	Use:   "create <course> <date>",
	Short: "Create the notes page for a lecture and link it from the index",
	Long: `Create <root>/<course folder>/<date>/notes.html from the lecture template and
add a link to it at the top of the course's list on index.html.`,
	Example: "  lecturectl create 410 2026-01-05\n  lecturectl create 436 2026-02-01 --topic \"Threat models\" --notes raw.md",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("%w: expected <course> <date>, got %d argument(s)", ErrUsage, len(args))
		}

		content, err := contentFromFlags(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		s := scaffold.New(registry, paths,
			scaffold.WithLogger(logger),
			scaffold.WithReporter(func(e scaffold.Event) { tui.PrintEvent(out, e) }),
		)

		res, err := s.CreateLecture(args[0], args[1], content)
		if err != nil {
			return err
		}

		tui.PrintSummary(out, res)
		return nil
	},
}

// contentFromFlags builds the optional notes page content from the create flags
func contentFromFlags(cmd *cobra.Command) (render.Content, error) {
	var content render.Content

	notesFile, _ := cmd.Flags().GetString("notes")
	if notesFile != "" {
		data, err := os.ReadFile(notesFile)
		if err != nil {
			return content, fmt.Errorf("failed to read notes file: %w", err)
		}
		content.RawNotes, err = render.MarkdownToHTML(data)
		if err != nil {
			return content, err
		}
	}

	topics, _ := cmd.Flags().GetStringSlice("topic")
	content.Topics = render.ListItems(topics)

	assignments, _ := cmd.Flags().GetStringSlice("assignment")
	content.Assignments = render.ListItems(assignments)

	return content, nil
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringP("notes", "n", "", "Markdown file whose rendered HTML becomes the raw notes section")
	createCmd.Flags().StringSliceP("topic", "t", nil, "Topic to list on the notes page (repeatable)")
	createCmd.Flags().StringSliceP("assignment", "a", nil, "Assignment to list on the notes page (repeatable)")
}
