package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"lecturectl/pkg/config"
	"lecturectl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lecturectl configuration",
	Long:  "View or edit your local configuration settings (site root, default course, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		setRoot, _ := cmd.Flags().GetString("set-root")
		setCourse, _ := cmd.Flags().GetString("set-default-course")
		setAccent, _ := cmd.Flags().GetString("set-accent")
		show, _ := cmd.Flags().GetBool("show")

		if show {
			tui.PrintConfig(cfg)
			return nil
		}

		if setRoot == "" && setCourse == "" && setAccent == "" {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI(registry)
		}

		if setRoot != "" {
			info, err := os.Stat(setRoot)
			if err != nil {
				return fmt.Errorf("could not use site root: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("site root %s is not a directory", setRoot)
			}
			abs, err := filepath.Abs(setRoot)
			if err != nil {
				return err
			}
			cfg.SiteRoot = abs
		}

		if setCourse != "" {
			if _, err := registry.Lookup(setCourse); err != nil {
				return err
			}
			cfg.DefaultCourse = setCourse
		}

		if setAccent != "" {
			cfg.AccentColor = setAccent
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Configuration saved.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-root", "", "Save the default site root directory")
	configCmd.Flags().String("set-default-course", "", "Save the course preselected in the interactive flow")
	configCmd.Flags().String("set-accent", "", "Save the accent color (ANSI code or #RRGGBB)")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
