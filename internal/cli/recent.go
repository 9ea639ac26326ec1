package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const recentLimit = 10

type recentRow struct {
	Path     string `json:"path"`
	OpenedAt string `json:"opened_at"`
}

func newRecentCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recents, err := appStore(app).RecentProjects(cmd.Context(), recentLimit)
			if err != nil {
				return writeErr(cmd, err)
			}
			if asJSON {
				rows := make([]recentRow, 0, len(recents))
				for _, r := range recents {
					rows = append(rows, recentRow{
						Path:     r.Path,
						OpenedAt: r.OpenedAt.UTC().Format(time.RFC3339),
					})
				}
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			if len(recents) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recent projects")
				return nil
			}
			for _, r := range recents {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", r.OpenedAt.Local().Format("2006-01-02 15:04"), r.Path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
