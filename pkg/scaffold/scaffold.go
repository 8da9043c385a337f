package scaffold

import (
	"fmt"
	"os"

	"lecturectl/pkg/config"
	"lecturectl/pkg/courses"
	"lecturectl/pkg/lecture"
	"lecturectl/pkg/render"
	"lecturectl/pkg/site"

	"go.uber.org/zap"
)

// EventKind identifies a progress step of CreateLecture
type EventKind int

const (
	DirCreated EventKind = iota
	DirExists
	NotesWritten
	IndexUpdated
	IndexUnchanged
)

// Event is emitted after each completed step
type Event struct {
	Kind EventKind
	Path string
}

// Result summarizes a finished CreateLecture call
type Result struct {
	Lecture      lecture.Lecture
	Dir          string
	NotesPath    string
	DirCreated   bool
	IndexUpdated bool
}

// Scaffolder creates lecture folders and links them from the site index.
// It is meant for a single operator: concurrent runs against the same site are not coordinated.
type Scaffolder struct {
	registry *courses.Registry
	paths    config.Paths
	logger   *zap.Logger
	report   func(Event)
}

// Option configures a Scaffolder
type Option func(*Scaffolder)

// WithLogger sets the logger used for debug output
func WithLogger(l *zap.Logger) Option {
	return func(s *Scaffolder) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReporter sets the callback receiving progress events
func WithReporter(fn func(Event)) Option {
	return func(s *Scaffolder) {
		if fn != nil {
			s.report = fn
		}
	}
}

// New creates a Scaffolder for the site described by paths.
func New(registry *courses.Registry, paths config.Paths, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		registry: registry,
		paths:    paths,
		logger:   zap.NewNop(),
		report:   func(Event) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateLecture scaffolds the notes page for courseID on date and links it from the index.
//
// The course and date are validated before anything touches the filesystem. Afterwards the
// steps run in order and the first failure aborts the call; earlier steps are not rolled back.
func (s *Scaffolder) CreateLecture(courseID, date string, content render.Content) (*Result, error) {
	course, err := s.registry.Lookup(courseID)
	if err != nil {
		return nil, err
	}

	d, err := lecture.ParseDate(date)
	if err != nil {
		return nil, err
	}

	l := lecture.New(course, d)
	res := &Result{
		Lecture:   l,
		Dir:       l.Dir(s.paths.Root),
		NotesPath: l.NotesPath(s.paths.Root),
	}

	log := s.logger.With(zap.String("course", course.ID), zap.String("date", d.String()))

	// 1. Lecture directory
	if _, err := os.Stat(res.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(res.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create lecture directory: %w", err)
		}
		res.DirCreated = true
		log.Debug("Created lecture directory", zap.String("path", res.Dir))
		s.report(Event{Kind: DirCreated, Path: res.Dir})
	} else if err != nil {
		return nil, fmt.Errorf("failed to inspect lecture directory: %w", err)
	} else {
		log.Debug("Lecture directory already exists", zap.String("path", res.Dir))
		s.report(Event{Kind: DirExists, Path: res.Dir})
	}

	// 2. Template
	tmpl, err := os.ReadFile(s.paths.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	// 3. Render
	html := render.Render(string(tmpl), render.Values(l, content))
	if left := render.Unresolved(html); len(left) > 0 {
		log.Warn("Template has unknown placeholders", zap.Strings("placeholders", left))
	}

	// 4. Notes page
	if err := os.WriteFile(res.NotesPath, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("failed to write lecture notes: %w", err)
	}
	log.Debug("Wrote lecture notes", zap.String("path", res.NotesPath), zap.Int("bytes", len(html)))
	s.report(Event{Kind: NotesWritten, Path: res.NotesPath})

	// 5. Index
	added, err := site.UpdateFile(s.paths.Index, l)
	if err != nil {
		return nil, fmt.Errorf("failed to update index: %w", err)
	}
	res.IndexUpdated = added
	if added {
		log.Debug("Linked lecture from index", zap.String("href", l.Href()))
		s.report(Event{Kind: IndexUpdated, Path: s.paths.Index})
	} else {
		log.Debug("Index already links lecture", zap.String("href", l.Href()))
		s.report(Event{Kind: IndexUnchanged, Path: s.paths.Index})
	}

	return res, nil
}

// Init writes the default template and an empty index for every registered course.
// Existing files are left untouched; the returned slice lists the files written.
func Init(registry *courses.Registry, paths config.Paths, title string) ([]string, error) {
	if err := os.MkdirAll(paths.Root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create site root: %w", err)
	}

	var written []string

	if _, err := os.Stat(paths.Template); os.IsNotExist(err) {
		if err := os.WriteFile(paths.Template, []byte(render.DefaultTemplate), 0644); err != nil {
			return written, fmt.Errorf("failed to write template: %w", err)
		}
		written = append(written, paths.Template)
	}

	if _, err := os.Stat(paths.Index); os.IsNotExist(err) {
		doc, err := site.NewIndex(title, registry.All())
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(paths.Index, []byte(doc), 0644); err != nil {
			return written, fmt.Errorf("failed to write index: %w", err)
		}
		written = append(written, paths.Index)
	}

	return written, nil
}
