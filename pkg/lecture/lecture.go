package lecture

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"lecturectl/pkg/courses"
)

// DateLayout is the only accepted lecture date format
const DateLayout = "2006-01-02"

// NotesFile is the name of the rendered notes page inside a lecture directory
const NotesFile = "notes.html"

// ErrInvalidDate is returned when a date string is not a real YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid lecture date")

// Date is a validated calendar date. Its string form is safe to use as a path segment.
type Date struct {
	t time.Time
}

// ParseDate validates s as a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (expected %s)", ErrInvalidDate, s, DateLayout)
	}
	return Date{t: t}, nil
}

// Today returns the current local date
func Today() Date {
	now := time.Now()
	return Date{t: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Lecture ties a course to a date and the location of its notes page
type Lecture struct {
	Course courses.Course
	Date   Date
}

// New builds a Lecture for the given course and date.
func New(c courses.Course, d Date) Lecture {
	return Lecture{Course: c, Date: d}
}

// Dir returns the lecture directory below root.
func (l Lecture) Dir(root string) string {
	return filepath.Join(root, l.Course.Folder, l.Date.String())
}

// NotesPath returns the notes page path below root.
func (l Lecture) NotesPath(root string) string {
	return filepath.Join(l.Dir(root), NotesFile)
}

// Href is the link to the notes page relative to the index document. Always slash separated.
func (l Lecture) Href() string {
	return path.Join(l.Course.Folder, l.Date.String(), NotesFile)
}
