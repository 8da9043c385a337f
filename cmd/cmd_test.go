package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lecturectl/pkg/courses"
)

// run executes the root command against a fresh HOME and returns its stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func setupSite(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	root := t.TempDir()
	if _, err := run(t, "init", "--root", root); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return root
}

func TestCreateCommand(t *testing.T) {
	root := setupSite(t)

	out, err := run(t, "create", "410", "2026-01-05", "--root", root)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for _, want := range []string{"Created directory", "Created lecture notes", "Updated index.html", "Lecture created successfully"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	notes := filepath.Join(root, "CPSC_410_Advanced_Software_Engineering", "2026-01-05", "notes.html")
	if _, err := os.Stat(notes); err != nil {
		t.Errorf("expected notes file at %s: %v", notes, err)
	}
}

func TestCreateCommandMissingArgs(t *testing.T) {
	root := setupSite(t)

	_, err := run(t, "create", "410", "--root", root)
	if !errors.Is(err, ErrUsage) {
		t.Errorf("expected ErrUsage, got %v", err)
	}
}

func TestCreateCommandUnknownCourse(t *testing.T) {
	root := setupSite(t)

	_, err := run(t, "create", "999", "2026-01-05", "--root", root)
	if !errors.Is(err, courses.ErrUnknownCourse) {
		t.Errorf("expected ErrUnknownCourse, got %v", err)
	}

	files, _ := os.ReadDir(root)
	if len(files) != 2 {
		t.Errorf("expected no new files in site root, found %d entries", len(files))
	}
}

func TestListCommandSearch(t *testing.T) {
	root := setupSite(t)

	for _, date := range []string{"2026-02-01", "2026-02-08"} {
		if _, err := run(t, "create", "436", date, "--root", root); err != nil {
			t.Fatalf("create %s failed: %v", date, err)
		}
	}

	out, err := run(t, "list", "436", "--root", root, "--search", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.Index(out, "2026-02-08") > strings.Index(out, "2026-02-01") {
		t.Errorf("expected newest lecture first, got:\n%s", out)
	}

	out, err = run(t, "list", "--root", root, "--search", "02-08")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "2026-02-08") || strings.Contains(out, "2026-02-01") {
		t.Errorf("expected only the 02-08 lecture, got:\n%s", out)
	}
}

func TestCoursesCommand(t *testing.T) {
	root := setupSite(t)

	out, err := run(t, "courses", "--root", root)
	if err != nil {
		t.Fatalf("courses failed: %v", err)
	}
	for _, id := range courses.Default().IDs() {
		if !strings.Contains(out, id) {
			t.Errorf("expected course %s in output", id)
		}
	}
}

func TestCoursesFileOverridesRegistry(t *testing.T) {
	root := setupSite(t)

	yaml := `- id: "110"
  code: CPSC_110
  name: Computation, Programs, and Programming
  instructor: Gregor Kiczales
  tab: cpsc110
  folder: CPSC_110_Computation
`
	if err := os.WriteFile(filepath.Join(root, "courses.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write courses file: %v", err)
	}

	out, err := run(t, "courses", "--root", root)
	if err != nil {
		t.Fatalf("courses failed: %v", err)
	}
	if !strings.Contains(out, "CPSC_110") || strings.Contains(out, "CPSC_410") {
		t.Errorf("expected only the file's course, got:\n%s", out)
	}
}
