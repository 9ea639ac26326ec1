package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"resumeforge/internal/logging"
	"resumeforge/internal/render"
)

type doctorReport struct {
	Tools map[string]doctorTool `json:"tools"`
	Paths map[string]string     `json:"paths"`
}

type doctorTool struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

func newDoctorCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Report optional external tools and data paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := appStore(app)
			dir, err := st.Dir()
			if err != nil {
				return writeErr(cmd, err)
			}
			statePath, err := st.StatePath()
			if err != nil {
				return writeErr(cmd, err)
			}
			renderPath := filepath.Join(dir, render.OptionsFileName)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), doctorReport{
					Tools: map[string]doctorTool{
						"pandoc": lookTool("pandoc"),
						"aspell": lookTool("aspell"),
					},
					Paths: map[string]string{
						"config": dir,
						"state":  statePath,
						"log":    logging.Path(dir),
						"render": renderPath,
					},
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tools:")
			fmt.Fprintf(out, "  pandoc  %s\n", toolStatus("pandoc", "Word export unavailable; install pandoc"))
			fmt.Fprintf(out, "  aspell  %s\n", toolStatus("aspell", "spellcheck disabled; install aspell and a dictionary"))

			fmt.Fprintln(out, "paths:")
			fmt.Fprintf(out, "  config  %s\n", dir)
			fmt.Fprintf(out, "  state   %s\n", statePath)
			fmt.Fprintf(out, "  log     %s\n", logging.Path(dir))
			if _, statErr := os.Stat(renderPath); statErr == nil {
				fmt.Fprintf(out, "  render  %s\n", renderPath)
			} else {
				fmt.Fprintf(out, "  render  %s (not present; built-in defaults)\n", renderPath)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func toolStatus(name, hint string) string {
	path, err := exec.LookPath(name)
	if err != nil {
		return "not found (" + hint + ")"
	}
	return path
}

func lookTool(name string) doctorTool {
	path, err := exec.LookPath(name)
	if err != nil {
		return doctorTool{}
	}
	return doctorTool{Found: true, Path: path}
}
