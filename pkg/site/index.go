package site

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lecturectl/pkg/lecture"

	"github.com/PuerkitoBio/goquery"
)

// ErrSectionNotFound is returned when the index has no section (or no list container) for a course tab.
var ErrSectionNotFound = errors.New("course section not found in index")

const (
	listSelector        = "div.lectures-list"
	placeholderSelector = "p.no-lectures"
	itemSelector        = "div.lecture-item"
	entryTitle          = "Lecture Notes"
)

// Entry is a lecture link found in the index document
type Entry struct {
	Tab   string
	Date  string
	Title string
	Href  string
	Text  string // Whitespace-collapsed text of the whole item
}

// entryHTML renders the list item for a lecture. Indentation matches the list container in NewIndex.
func entryHTML(l lecture.Lecture) string {
	return fmt.Sprintf(`
                <div class="lecture-item">
                    <a href="%s">
                        <span class="lecture-date">%s</span>
                        <span class="lecture-title">%s</span>
                    </a>
                </div>`, l.Href(), l.Date.String(), entryTitle)
}

// findSection returns the element whose id equals tab.
// Attribute comparison avoids escaping tab ids into a CSS selector.
func findSection(doc *goquery.Document, tab string) *goquery.Selection {
	return doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return id == tab
	}).First()
}

// AddLecture inserts a link to the lecture into its course section and returns the updated document.
//
// The "no lectures" placeholder is removed and the entry becomes the first child of the
// section's list container, so the newest insertion is always listed first.
// If an entry with the same link already exists the document is returned unchanged with added=false.
func AddLecture(r io.Reader, l lecture.Lecture) (doc string, added bool, err error) {
	d, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse index: %w", err)
	}

	tab := l.Course.Tab
	section := findSection(d, tab)
	if section.Length() == 0 {
		return "", false, fmt.Errorf("%w: no element with id %q", ErrSectionNotFound, tab)
	}

	list := section.Find(listSelector).First()
	if list.Length() == 0 {
		return "", false, fmt.Errorf("%w: section %q has no %s", ErrSectionNotFound, tab, listSelector)
	}

	href := l.Href()
	exists := list.Find(itemSelector + " a").FilterFunction(func(_ int, a *goquery.Selection) bool {
		v, _ := a.Attr("href")
		return v == href
	}).Length() > 0

	if !exists {
		list.ChildrenFiltered(placeholderSelector).Remove()
		list.PrependHtml(entryHTML(l))
	}

	out, err := d.Html()
	if err != nil {
		return "", false, fmt.Errorf("failed to render index: %w", err)
	}
	return out, !exists, nil
}

// UpdateFile adds the lecture to the index document at path.
// The new document is written to a temporary file in the same directory and renamed over the original.
func UpdateFile(path string, l lecture.Lecture) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open index: %w", err)
	}
	doc, added, err := AddLecture(f, l)
	f.Close()
	if err != nil {
		return false, err
	}
	if !added {
		return false, nil
	}

	if err := WriteFileAtomic(path, []byte(doc)); err != nil {
		return false, err
	}
	return true, nil
}

// WriteFileAtomic replaces path with data via a temp file and rename.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Entries lists every lecture item in the index, grouped by section in document order.
func Entries(r io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index: %w", err)
	}

	var entries []Entry
	doc.Find(listSelector).Each(func(i int, list *goquery.Selection) {
		tab, _ := list.Closest("[id]").Attr("id")

		list.Find(itemSelector).Each(func(j int, item *goquery.Selection) {
			href, _ := item.Find("a").Attr("href")
			entries = append(entries, Entry{
				Tab:   tab,
				Date:  strings.TrimSpace(item.Find("span.lecture-date").Text()),
				Title: strings.TrimSpace(item.Find("span.lecture-title").Text()),
				Href:  href,
				Text:  strings.Join(strings.Fields(item.Text()), " "),
			})
		})
	})

	return entries, nil
}

// ReadEntries opens the index at path and lists its entries
func ReadEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	defer f.Close()

	return Entries(f)
}

// Filter keeps entries whose text contains term, ignoring case.
// An empty term keeps everything.
func Filter(entries []Entry, term string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}

	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Text), term) {
			out = append(out, e)
		}
	}
	return out
}
