package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "lecturectl-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.SiteRoot = "/srv/notes"
	cfg.TemplateFile = "templates/lecture.html"
	cfg.DefaultCourse = "410"
	cfg.AccentColor = "205"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".lecturectl.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "lecturectl-config-err-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".lecturectl.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()

	cfg := &AppConfig{SiteRoot: "/ignored", IndexFile: "public/index.html"}
	paths, err := cfg.Resolve(root)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if paths.Root != root {
		t.Errorf("expected flag root %s to win, got %s", root, paths.Root)
	}
	if paths.Template != filepath.Join(root, DefaultTemplateFile) {
		t.Errorf("unexpected template path %s", paths.Template)
	}
	if paths.Index != filepath.Join(root, "public", "index.html") {
		t.Errorf("unexpected index path %s", paths.Index)
	}
	if paths.Courses != filepath.Join(root, DefaultCoursesFile) {
		t.Errorf("unexpected courses path %s", paths.Courses)
	}

	abs := filepath.Join(root, "elsewhere", "tmpl.html")
	cfg = &AppConfig{SiteRoot: root, TemplateFile: abs}
	paths, err = cfg.Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if paths.Template != abs {
		t.Errorf("expected absolute template path to be kept, got %s", paths.Template)
	}
}
