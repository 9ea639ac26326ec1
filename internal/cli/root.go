package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resumeforge/internal/logging"
	"resumeforge/internal/store"
	"resumeforge/internal/tui"
)

type App struct {
	ConfigDir string
	Debug     bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "resumeforge",
		Short:        "Resume editor (TUI) with LaTeX, Word, and PDF export",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor with a blank resume
  resumeforge

  # Open a project file directly
  resumeforge resume.json

  # Headless export
  resumeforge export pdf -f resume.json -o out/resume.pdf

  # Check external tools and data paths
  resumeforge doctor
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", envOr("RESUMEFORGE_CONFIG_DIR", ""), "Config/state directory (default: OS user config dir)")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", false, "Write a debug log under the config dir")

	cmd.AddCommand(newOpenCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newDemoCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newRecentCmd(app))

	return cmd
}

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <project.json>",
		Short: "Open a project file in the editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, args[0])
		},
	}
}

func runTUI(app *App, path string) error {
	st := appStore(app)
	dir, err := st.Dir()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Setup(dir, app.Debug)
	if err != nil {
		return err
	}
	defer closeLog()
	return tui.Run(tui.Config{
		Store:       st,
		ProjectPath: path,
		Logger:      logger,
	})
}

func appStore(app *App) store.Store {
	return store.Store{ConfigDir: app.ConfigDir}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
