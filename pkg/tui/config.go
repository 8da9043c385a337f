package tui

import (
	"fmt"
	"os"
	"strings"

	"lecturectl/pkg/config"
	"lecturectl/pkg/courses"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI(registry *courses.Registry) error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Course", "course"),
						huh.NewOption("Set Site Root", "root"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "course":
			err = runSetDefaultCourseTUI(cfg, registry)
		case "root":
			err = runSetSiteRootTUI(cfg)
		case "view":
			PrintConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

// PrintConfig shows the saved settings
func PrintConfig(cfg *config.AppConfig) {
	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.lecturectl.json) ---"))
	fmt.Printf("Site Root: %s\n", orUnset(cfg.SiteRoot))
	fmt.Printf("Template File: %s\n", orDefault(cfg.TemplateFile, config.DefaultTemplateFile))
	fmt.Printf("Index File: %s\n", orDefault(cfg.IndexFile, config.DefaultIndexFile))
	fmt.Printf("Courses File: %s\n", orDefault(cfg.CoursesFile, config.DefaultCoursesFile))
	fmt.Printf("Default Course: %s\n", orUnset(cfg.DefaultCourse))
	fmt.Printf("Accent Color: %s\n", orUnset(cfg.AccentColor))
	fmt.Println()
}

func orUnset(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def + " (default)"
	}
	return s
}

func runSetDefaultCourseTUI(cfg *config.AppConfig, registry *courses.Registry) error {
	selected := cfg.DefaultCourse

	var options []huh.Option[string]
	for _, c := range registry.All() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s - %s", c.Code, c.Name), c.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select the course preselected when creating lectures").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultCourse = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default course changed to: %s\n", selected)))
	return nil
}

func runSetSiteRootTUI(cfg *config.AppConfig) error {
	root := cfg.SiteRoot

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Site root directory").
				Description("Folder containing index.html and lecture-template.html").
				Value(&root).
				Validate(func(s string) error {
					info, err := os.Stat(s)
					if err != nil {
						return fmt.Errorf("cannot access %s", s)
					}
					if !info.IsDir() {
						return fmt.Errorf("%s is not a directory", s)
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SiteRoot = root
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Site root saved as: %s\n", root)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// ValidateHexColor accepts #RRGGBB color codes
func ValidateHexColor(s string) error {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	for _, r := range strings.ToLower(s[1:]) {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return fmt.Errorf("must be a valid 6-character hex code starting with #")
		}
	}
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for lecturectl").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Lecture Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(ValidateHexColor),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
