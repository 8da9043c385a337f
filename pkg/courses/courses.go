package courses

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownCourse is returned by Lookup when an identifier is not registered.
	ErrUnknownCourse = errors.New("unknown course")
	// ErrInvalidRegistry is returned when a course table has missing or colliding fields.
	ErrInvalidRegistry = errors.New("invalid course registry")
)

// Course holds the metadata of a single course. Values are never mutated after the registry is built.
type Course struct {
	ID         string `yaml:"id"`
	Code       string `yaml:"code"`
	Name       string `yaml:"name"`
	Instructor string `yaml:"instructor"`
	Tab        string `yaml:"tab"`    // Element id of the course section in index.html
	Folder     string `yaml:"folder"` // Directory holding the course's lecture folders
}

// Registry is a read-only lookup table of courses keyed by their short identifier
type Registry struct {
	byID map[string]Course
	ids  []string
}

// defaultCourses is the built-in course table
var defaultCourses = []Course{
	{
		ID:         "410",
		Code:       "CPSC_410",
		Name:       "Advanced Software Engineering",
		Instructor: "Caroline Lemieux",
		Tab:        "cpsc410",
		Folder:     "CPSC_410_Advanced_Software_Engineering",
	},
	{
		ID:         "420",
		Code:       "CPSC_420",
		Name:       "Advanced Algorithms",
		Instructor: "Bruce Shepherd",
		Tab:        "cpsc420",
		Folder:     "CPSC_420_Advanced_Algorithms",
	},
	{
		ID:         "436",
		Code:       "CPSC_436",
		Name:       "Computer Security",
		Instructor: "Michael Feeley",
		Tab:        "cpsc436",
		Folder:     "CPSC_436_Computer_Security",
	},
	{
		ID:         "440",
		Code:       "CPSC_440",
		Name:       "Advanced Machine Learning",
		Instructor: "Danica Sutherland",
		Tab:        "cpsc440",
		Folder:     "CPSC_440_Advanced_Machine_Learning",
	},
	{
		ID:         "404",
		Code:       "CPSC_404",
		Name:       "Advanced Relational Databases",
		Instructor: "Ed Knorr",
		Tab:        "cpsc404",
		Folder:     "CPSC_404_Advanced_Relational_Databases",
	},
}

// Default returns the built-in registry.
func Default() *Registry {
	r, err := New(defaultCourses)
	if err != nil {
		// The built-in table is validated by tests
		panic(err)
	}
	return r
}

// New builds a registry from the given courses.
// Identifiers, tab ids and folders must be non-empty and unique across the table.
func New(list []Course) (*Registry, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no courses defined", ErrInvalidRegistry)
	}

	r := &Registry{byID: make(map[string]Course, len(list))}
	tabs := make(map[string]bool)
	folders := make(map[string]bool)

	for i, c := range list {
		if c.ID == "" || c.Tab == "" || c.Folder == "" {
			return nil, fmt.Errorf("%w: course #%d needs an id, tab and folder", ErrInvalidRegistry, i+1)
		}
		if _, exists := r.byID[c.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate course id %q", ErrInvalidRegistry, c.ID)
		}
		if tabs[c.Tab] {
			return nil, fmt.Errorf("%w: duplicate tab %q", ErrInvalidRegistry, c.Tab)
		}
		if folders[c.Folder] {
			return nil, fmt.Errorf("%w: duplicate folder %q", ErrInvalidRegistry, c.Folder)
		}

		tabs[c.Tab] = true
		folders[c.Folder] = true
		r.byID[c.ID] = c
		r.ids = append(r.ids, c.ID)
	}

	return r, nil
}

// Load reads a YAML course table from disk.
// The file holds a list of courses using the same keys as the Course struct tags.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course file: %w", err)
	}

	var list []Course
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse course file %s: %w", path, err)
	}

	return New(list)
}

// LoadOrDefault reads the course table at path, falling back to the built-in
// registry when the file does not exist.
func LoadOrDefault(path string) (*Registry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Lookup returns the course registered under id.
func (r *Registry) Lookup(id string) (Course, error) {
	c, ok := r.byID[id]
	if !ok {
		return Course{}, fmt.Errorf("%w: %s", ErrUnknownCourse, id)
	}
	return c, nil
}

// ByTab finds the course owning the given tab id
func (r *Registry) ByTab(tab string) (Course, bool) {
	for _, id := range r.ids {
		if c := r.byID[id]; c.Tab == tab {
			return c, true
		}
	}
	return Course{}, false
}

// IDs returns the registered identifiers in table order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// All returns every course in table order.
func (r *Registry) All() []Course {
	out := make([]Course, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}
