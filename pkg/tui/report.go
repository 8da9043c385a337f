package tui

import (
	"fmt"
	"io"
	"path/filepath"

	"lecturectl/pkg/scaffold"
)

// FormatEvent renders a progress event as a single status line
func FormatEvent(e scaffold.Event) string {
	switch e.Kind {
	case scaffold.DirCreated:
		return successStyle.Render("✓") + " Created directory: " + e.Path
	case scaffold.DirExists:
		return warnStyle.Render("⚠") + " Directory already exists: " + e.Path
	case scaffold.NotesWritten:
		return successStyle.Render("✓") + " Created lecture notes: " + e.Path
	case scaffold.IndexUpdated:
		return successStyle.Render("✓") + fmt.Sprintf(" Updated %s with new lecture", filepath.Base(e.Path))
	case scaffold.IndexUnchanged:
		return warnStyle.Render("⚠") + fmt.Sprintf(" %s already links this lecture", filepath.Base(e.Path))
	}
	return ""
}

// PrintEvent writes the status line for e to w
func PrintEvent(w io.Writer, e scaffold.Event) {
	fmt.Fprintln(w, FormatEvent(e))
}

// PrintSummary writes the closing summary of a created lecture
func PrintSummary(w io.Writer, res *scaffold.Result) {
	c := res.Lecture.Course
	fmt.Fprintln(w, accentStyle.Bold(true).Render("\n✅ Lecture created successfully!"))
	fmt.Fprintf(w, "   Course: %s - %s\n", c.Code, c.Name)
	fmt.Fprintf(w, "   Date: %s\n", res.Lecture.Date)
	fmt.Fprintf(w, "   Location: %s\n", res.NotesPath)
}
