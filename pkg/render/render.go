package render

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"lecturectl/pkg/lecture"

	"github.com/yuin/goldmark"
)

// Placeholder names understood by the lecture template. Each appears as {{NAME}}.
const (
	CourseCode    = "COURSE_CODE"
	CourseName    = "COURSE_NAME"
	LectureDate   = "LECTURE_DATE"
	Instructor    = "INSTRUCTOR"
	CourseTab     = "COURSE_TAB"
	RawNotes      = "RAW_NOTES"
	ExpandedNotes = "EXPANDED_NOTES"
	Topics        = "TOPICS"
	Assignments   = "ASSIGNMENTS"
)

// Placeholders lists every supported placeholder name in template order
var Placeholders = []string{
	CourseCode, CourseName, LectureDate, Instructor, CourseTab,
	RawNotes, ExpandedNotes, Topics, Assignments,
}

var tokenPattern = regexp.MustCompile(`\{\{([A-Z0-9_]+)\}\}`)

// Content holds the HTML fragments for the body sections of a notes page.
// Empty fields fall back to the boilerplate from DefaultContent.
type Content struct {
	RawNotes      string
	ExpandedNotes string
	Topics        string
	Assignments   string
}

// DefaultContent returns the boilerplate used for a fresh notes page
func DefaultContent() Content {
	return Content{
		RawNotes:      "<p>Add your quick notes here...</p>",
		ExpandedNotes: "<p>Expanded notes will be added here...</p>",
		Topics:        "<li>Topics will be listed here</li>",
		Assignments:   "<li>No assignments yet</li>",
	}
}

func (c Content) withDefaults() Content {
	d := DefaultContent()
	if c.RawNotes == "" {
		c.RawNotes = d.RawNotes
	}
	if c.ExpandedNotes == "" {
		c.ExpandedNotes = d.ExpandedNotes
	}
	if c.Topics == "" {
		c.Topics = d.Topics
	}
	if c.Assignments == "" {
		c.Assignments = d.Assignments
	}
	return c
}

// Values builds the placeholder table for a lecture.
// Course metadata is HTML escaped; content fragments are inserted as-is.
func Values(l lecture.Lecture, content Content) map[string]string {
	content = content.withDefaults()
	return map[string]string{
		CourseCode:    html.EscapeString(l.Course.Code),
		CourseName:    html.EscapeString(l.Course.Name),
		LectureDate:   l.Date.String(),
		Instructor:    html.EscapeString(l.Course.Instructor),
		CourseTab:     html.EscapeString(l.Course.Tab),
		RawNotes:      content.RawNotes,
		ExpandedNotes: content.ExpandedNotes,
		Topics:        content.Topics,
		Assignments:   content.Assignments,
	}
}

// Render replaces every occurrence of each {{NAME}} token found in values.
// Substituted text is never rescanned, so values may safely contain braces.
func Render(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for name, v := range values {
		pairs = append(pairs, "{{"+name+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Unresolved returns the distinct placeholder names still present in doc, in order of first appearance.
func Unresolved(doc string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range tokenPattern.FindAllStringSubmatch(doc, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// MarkdownToHTML converts markdown notes into an HTML fragment
func MarkdownToHTML(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// ListItems renders plain text items as escaped <li> elements.
func ListItems(items []string) string {
	var lines []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		lines = append(lines, "<li>"+html.EscapeString(item)+"</li>")
	}
	return strings.Join(lines, "\n")
}
