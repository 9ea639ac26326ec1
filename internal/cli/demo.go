package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resumeforge/internal/model"
	"resumeforge/internal/store"
)

func newDemoCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write the built-in demo project to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(out)
			if path == "" {
				path = "resume-demo.json"
			}
			if err := (store.Store{}).SaveProject(model.DemoProject(), path); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote "+path)
			fmt.Fprintln(cmd.OutOrStdout(), "open it with: resumeforge "+path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default: resume-demo.json)")

	return cmd
}
