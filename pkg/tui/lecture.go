package tui

import (
	"fmt"
	"os"
	"strings"

	"lecturectl/pkg/config"
	"lecturectl/pkg/lecture"
	"lecturectl/pkg/render"
	"lecturectl/pkg/scaffold"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunCreate asks for a course, date and optional topics, then scaffolds the lecture
func (a *App) RunCreate() error {
	cfg, _ := config.Load()

	var courseID string
	if cfg != nil {
		courseID = cfg.DefaultCourse
	}
	date := lecture.Today().String()
	var topics string
	confirmed := true

	var courseOptions []huh.Option[string]
	for _, c := range a.Registry.All() {
		courseOptions = append(courseOptions, huh.NewOption(fmt.Sprintf("%s - %s", c.Code, c.Name), c.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Course").
				Options(courseOptions...).
				Value(&courseID),

			huh.NewInput().
				Title("Lecture date").
				Description("Format: YYYY-MM-DD").
				Value(&date).
				Validate(func(s string) error {
					_, err := lecture.ParseDate(s)
					return err
				}),

			huh.NewInput().
				Title("Topics (optional)").
				Description("Comma separated, e.g. Threat models, Fuzzing").
				Value(&topics),

			huh.NewConfirm().
				Title("Create lecture notes?").
				Value(&confirmed),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !confirmed {
		fmt.Println(errorStyle.Render("Cancelled."))
		return nil
	}

	var content render.Content
	if strings.TrimSpace(topics) != "" {
		content.Topics = render.ListItems(strings.Split(topics, ","))
	}

	var events []scaffold.Event
	s := scaffold.New(a.Registry, a.Paths,
		scaffold.WithLogger(a.Logger),
		scaffold.WithReporter(func(e scaffold.Event) { events = append(events, e) }),
	)

	var res *scaffold.Result
	var err error

	_ = spinner.New().
		Title("Creating lecture notes...").
		Action(func() {
			res, err = s.CreateLecture(courseID, date, content)
		}).
		Run()

	// Steps that completed before a failure are still reported
	for _, e := range events {
		PrintEvent(os.Stdout, e)
	}
	if err != nil {
		return err
	}

	PrintSummary(os.Stdout, res)
	return nil
}
