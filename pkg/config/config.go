package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default file names inside the site root
const (
	DefaultTemplateFile = "lecture-template.html"
	DefaultIndexFile    = "index.html"
	DefaultCoursesFile  = "courses.yaml"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	SiteRoot      string `json:"site_root,omitempty"`
	TemplateFile  string `json:"template_file,omitempty"`
	IndexFile     string `json:"index_file,omitempty"`
	CoursesFile   string `json:"courses_file,omitempty"`
	DefaultCourse string `json:"default_course,omitempty"`
	AccentColor   string `json:"accent_color,omitempty"`
}

// Paths are the resolved locations of the site files
type Paths struct {
	Root     string
	Template string
	Index    string
	Courses  string
}

// getConfigPath returns the absolute path to ~/.lecturectl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".lecturectl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Resolve computes the site file locations. rootOverride (usually the --root flag) wins over
// the saved site root, which wins over the working directory. Relative file names are
// resolved against the root; absolute ones are kept.
func (c *AppConfig) Resolve(rootOverride string) (Paths, error) {
	root := rootOverride
	if root == "" {
		root = c.SiteRoot
	}
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, fmt.Errorf("could not resolve site root %s: %w", root, err)
	}

	return Paths{
		Root:     abs,
		Template: inRoot(abs, c.TemplateFile, DefaultTemplateFile),
		Index:    inRoot(abs, c.IndexFile, DefaultIndexFile),
		Courses:  inRoot(abs, c.CoursesFile, DefaultCoursesFile),
	}, nil
}

func inRoot(root, name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(root, name)
}
