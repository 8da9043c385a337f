package exporter

import (
	"fmt"
	"io"
	"time"

	"lecturectl/pkg/courses"
	"lecturectl/pkg/lecture"
	"lecturectl/pkg/site"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// GenerateICS writes one all-day event per indexed lecture to w.
// Entries whose section or date cannot be resolved are skipped; the number of exported events is returned.
func GenerateICS(entries []site.Entry, registry *courses.Registry, w io.Writer) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//lecturectl//Lecture Notes//EN")

	count := 0
	for _, e := range entries {
		course, ok := registry.ByTab(e.Tab)
		if !ok {
			continue // Section for a course that is no longer registered
		}

		d, err := lecture.ParseDate(e.Date)
		if err != nil {
			continue
		}

		// Stable across exports so calendar apps update instead of duplicating
		uid := uuid.NewSHA1(uuid.NameSpaceURL, []byte(e.Href)).String()

		event := cal.AddEvent(uid)
		event.SetDtStampTime(time.Now())
		event.SetAllDayStartAt(d.Time())
		event.SetAllDayEndAt(d.Time().AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s %s", course.Code, e.Title))
		event.SetDescription(fmt.Sprintf("%s\nInstructor: %s\nNotes: %s", course.Name, course.Instructor, e.Href))
		count++
	}

	if err := cal.SerializeTo(w); err != nil {
		return 0, fmt.Errorf("failed to serialize calendar: %w", err)
	}
	return count, nil
}
