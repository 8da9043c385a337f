package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"lecturectl/pkg/config"
	"lecturectl/pkg/courses"
	"lecturectl/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrUsage is returned when a command is invoked with missing arguments
var ErrUsage = errors.New("usage error")

var (
	rootFlag string
	verbose  bool

	logger   = zap.NewNop()
	cfg      *config.AppConfig
	paths    config.Paths
	registry *courses.Registry
)

var rootCmd = &cobra.Command{
	Use:   "lecturectl",
	Short: "Scaffold dated lecture notes for a static course site",
	Long: `lecturectl creates a dated folder and notes page for a lecture from the site's
template and links it from the course's tab on index.html.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return err
		}

		cfg, err = config.Load()
		if err != nil {
			return err
		}

		paths, err = cfg.Resolve(rootFlag)
		if err != nil {
			return err
		}

		registry, err = courses.LoadOrDefault(paths.Courses)
		if err != nil {
			return err
		}

		logger.Debug("Resolved site",
			zap.String("root", paths.Root),
			zap.String("template", paths.Template),
			zap.String("index", paths.Index),
			zap.Int("courses", len(registry.IDs())))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// availableCourses lists the identifiers of the loaded registry, or the built-in one
func availableCourses() string {
	r := registry
	if r == nil {
		r = courses.Default()
	}
	return strings.Join(r.IDs(), ", ")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, ErrUsage):
			fmt.Println(createUsage)
			fmt.Printf("\nAvailable courses: %s\n", availableCourses())
		case errors.Is(err, courses.ErrUnknownCourse):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Available courses: %s\n", availableCourses())
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Site root containing index.html (defaults to the configured root or the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}
