package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumeforge/internal/docs"
)

func newDocsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "docs [dir]",
		Short: "Write the built-in help documents to a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "docs"
			if len(args) == 1 {
				dir = args[0]
			}
			written, err := docs.WriteAll(dir)
			if err != nil {
				return writeErr(cmd, err)
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), "wrote "+path)
			}
			return nil
		},
	}
}
