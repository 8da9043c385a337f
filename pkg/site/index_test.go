package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lecturectl/pkg/courses"
	"lecturectl/pkg/lecture"
)

func mustLecture(t *testing.T, id, date string) lecture.Lecture {
	t.Helper()
	c, err := courses.Default().Lookup(id)
	if err != nil {
		t.Fatalf("lookup %s failed: %v", id, err)
	}
	d, err := lecture.ParseDate(date)
	if err != nil {
		t.Fatalf("parse %s failed: %v", date, err)
	}
	return lecture.New(c, d)
}

func emptyIndex(t *testing.T) string {
	t.Helper()
	doc, err := NewIndex("Lecture Notes", courses.Default().All())
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}
	return doc
}

func entriesFor(t *testing.T, doc, tab string) []Entry {
	t.Helper()
	all, err := Entries(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	var out []Entry
	for _, e := range all {
		if e.Tab == tab {
			out = append(out, e)
		}
	}
	return out
}

func TestNewIndexHasSectionPerCourse(t *testing.T) {
	doc := emptyIndex(t)

	for _, c := range courses.Default().All() {
		if !strings.Contains(doc, `id="`+c.Tab+`"`) {
			t.Errorf("expected section for %s", c.Tab)
		}
		if !strings.Contains(doc, `data-tab="`+c.Tab+`"`) {
			t.Errorf("expected tab button for %s", c.Tab)
		}
	}
	if n := strings.Count(doc, "No lectures yet"); n != 5 {
		t.Errorf("expected 5 placeholders, got %d", n)
	}
}

func TestAddLectureReplacesPlaceholder(t *testing.T) {
	l := mustLecture(t, "410", "2026-01-05")

	doc, added, err := AddLecture(strings.NewReader(emptyIndex(t)), l)
	if err != nil {
		t.Fatalf("AddLecture failed: %v", err)
	}
	if !added {
		t.Fatalf("expected entry to be added")
	}

	entries := entriesFor(t, doc, "cpsc410")
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 entry in cpsc410, got %d", len(entries))
	}
	if entries[0].Href != "CPSC_410_Advanced_Software_Engineering/2026-01-05/notes.html" {
		t.Errorf("unexpected href %s", entries[0].Href)
	}
	if entries[0].Date != "2026-01-05" || entries[0].Title != "Lecture Notes" {
		t.Errorf("unexpected entry %+v", entries[0])
	}

	// Only the 410 placeholder is gone
	if n := strings.Count(doc, "No lectures yet"); n != 4 {
		t.Errorf("expected 4 remaining placeholders, got %d", n)
	}
}

func TestAddLecturePrependsToExistingEntries(t *testing.T) {
	doc := emptyIndex(t)
	dates := []string{"2026-02-01", "2026-02-08", "2026-01-25"}

	for i, date := range dates {
		var err error
		doc, _, err = AddLecture(strings.NewReader(doc), mustLecture(t, "436", date))
		if err != nil {
			t.Fatalf("AddLecture %s failed: %v", date, err)
		}

		entries := entriesFor(t, doc, "cpsc436")
		if len(entries) != i+1 {
			t.Fatalf("after %d insertions expected %d entries, got %d", i+1, i+1, len(entries))
		}
		if entries[0].Date != date {
			t.Errorf("expected newest insertion %s first, got %s", date, entries[0].Date)
		}
	}

	// Insertion order, not date order
	entries := entriesFor(t, doc, "cpsc436")
	got := []string{entries[0].Date, entries[1].Date, entries[2].Date}
	want := []string{"2026-01-25", "2026-02-08", "2026-02-01"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestAddLectureSkipsDuplicateLink(t *testing.T) {
	l := mustLecture(t, "420", "2026-03-03")

	doc, _, err := AddLecture(strings.NewReader(emptyIndex(t)), l)
	if err != nil {
		t.Fatalf("first AddLecture failed: %v", err)
	}
	doc, added, err := AddLecture(strings.NewReader(doc), l)
	if err != nil {
		t.Fatalf("second AddLecture failed: %v", err)
	}
	if added {
		t.Errorf("expected duplicate link to be skipped")
	}
	if n := len(entriesFor(t, doc, "cpsc420")); n != 1 {
		t.Errorf("expected 1 entry, got %d", n)
	}
}

func TestAddLectureMissingSection(t *testing.T) {
	l := mustLecture(t, "440", "2026-01-05")

	tests := map[string]string{
		"no section": `<html><body><div id="cpsc410"><div class="lectures-list"></div></div></body></html>`,
		"no list":    `<html><body><div id="cpsc440"><p>nothing here</p></div></body></html>`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := AddLecture(strings.NewReader(doc), l)
			if !errors.Is(err, ErrSectionNotFound) {
				t.Errorf("expected ErrSectionNotFound, got %v", err)
			}
		})
	}
}

func TestUpdateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(emptyIndex(t)), 0644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}

	added, err := UpdateFile(path, mustLecture(t, "404", "2026-01-07"))
	if err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}
	if !added {
		t.Errorf("expected entry to be added")
	}

	entries, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Tab != "cpsc404" {
		t.Errorf("unexpected entries %+v", entries)
	}

	// No temp files left behind
	files, _ := os.ReadDir(dir)
	if len(files) != 1 {
		t.Errorf("expected only index.html in dir, found %d files", len(files))
	}
}

func TestFilter(t *testing.T) {
	entries := []Entry{
		{Tab: "cpsc410", Date: "2026-01-05", Text: "2026-01-05 Lecture Notes"},
		{Tab: "cpsc410", Date: "2026-01-12", Text: "2026-01-12 Lecture Notes"},
		{Tab: "cpsc420", Date: "2026-02-01", Text: "2026-02-01 Midterm Review"},
	}

	if got := Filter(entries, ""); len(got) != 3 {
		t.Errorf("empty term should keep all entries, got %d", len(got))
	}
	if got := Filter(entries, "LECTURE"); len(got) != 2 {
		t.Errorf("expected case-insensitive match on 2 entries, got %d", len(got))
	}
	if got := Filter(entries, "01-12"); len(got) != 1 || got[0].Date != "2026-01-12" {
		t.Errorf("expected single 2026-01-12 match, got %+v", got)
	}
	if got := Filter(entries, "exam"); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}
