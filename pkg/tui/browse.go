package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"lecturectl/pkg/courses"
	"lecturectl/pkg/exporter"
	"lecturectl/pkg/site"

	"github.com/charmbracelet/huh"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PrintEntries writes the entries grouped by course section, in index order
func PrintEntries(w io.Writer, registry *courses.Registry, entries []site.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No lectures found."))
		return
	}

	title := cases.Title(language.English)
	currentTab := ""
	for _, e := range entries {
		if e.Tab != currentTab {
			currentTab = e.Tab
			header := e.Tab
			if c, ok := registry.ByTab(e.Tab); ok {
				header = fmt.Sprintf("%s - %s (%s)", c.Code, title.String(c.Name), c.Instructor)
			}
			fmt.Fprintln(w, accentStyle.Bold(true).Render("\n"+header))
		}
		fmt.Fprintf(w, "  • %s  %s %s\n", e.Date, e.Title, mutedStyle.Render(e.Href))
	}
}

// RunBrowse asks for a search term and prints the matching lectures
func (a *App) RunBrowse() error {
	var term string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search lectures").
				Description("Matches date and title, case-insensitive. Leave empty to list everything.").
				Value(&term),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	entries, err := site.ReadEntries(a.Paths.Index)
	if err != nil {
		return err
	}

	PrintEntries(os.Stdout, a.Registry, site.Filter(entries, term))
	return nil
}

// RunExport asks for an output file and writes the lecture calendar
func (a *App) RunExport() error {
	outputFile := "lectures.ics"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	n, err := ExportCalendar(a.Registry, a.Paths.Index, outputFile)
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d lectures to %s", n, outputFile)))
	return nil
}

// ExportCalendar reads the index and writes its lectures to an ICS file
func ExportCalendar(registry *courses.Registry, indexPath, outputFile string) (int, error) {
	entries, err := site.ReadEntries(indexPath)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	n, err := exporter.GenerateICS(entries, registry, file)
	if err != nil {
		return 0, fmt.Errorf("failed to generate ICS: %w", err)
	}
	return n, nil
}
