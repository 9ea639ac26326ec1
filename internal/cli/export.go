package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resumeforge/internal/logging"
	"resumeforge/internal/model"
	"resumeforge/internal/render"
	"resumeforge/internal/store"
)

func newExportCmd(app *App) *cobra.Command {
	var file string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a project to tex, docx, or pdf without opening the editor",
	}

	run := func(cmd *cobra.Command, target, defaultName string, write func(*model.Project, string, render.Options) error) error {
		dir, err := appStore(app).Dir()
		if err != nil {
			return writeErr(cmd, err)
		}
		logger, closeLog, err := logging.Setup(dir, app.Debug)
		if err != nil {
			return writeErr(cmd, err)
		}
		defer closeLog()
		log := logging.Component(logger, "export")

		projPath := projectFileArg(file)
		opts, err := render.LoadOptionsFor(projPath, dir)
		if err != nil {
			return writeErr(cmd, err)
		}
		p, err := appStore(app).LoadProject(projPath)
		if err != nil {
			return writeErr(cmd, err)
		}
		path := strings.TrimSpace(out)
		if path == "" {
			path = defaultName
		}
		if err := write(p, path, opts); err != nil {
			log.Error().Err(err).Str("target", target).Msg("export failed")
			return writeErr(cmd, err)
		}
		log.Info().Str("target", target).Str("path", path).Msg("export written")
		fmt.Fprintln(cmd.OutOrStdout(), "wrote "+path)
		return nil
	}

	texCmd := &cobra.Command{
		Use:   "tex",
		Short: "Write LaTeX source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "tex", render.DefaultTeXName, render.WriteLaTeX)
		},
	}

	docxCmd := &cobra.Command{
		Use:   "docx",
		Short: "Write a Word document (requires pandoc)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "docx", render.DefaultDOCXName, render.WriteDOCX)
		},
	}

	pdfCmd := &cobra.Command{
		Use:   "pdf",
		Short: "Write a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "pdf", render.DefaultPDFName, render.WritePDF)
		},
	}

	for _, c := range []*cobra.Command{texCmd, docxCmd, pdfCmd} {
		c.Flags().StringVarP(&file, "file", "f", "", "Project .json to render (default: "+store.ProjectFileName+" in the current dir)")
		c.Flags().StringVarP(&out, "out", "o", "", "Output path (default: resume.<ext> in the current dir)")
		cmd.AddCommand(c)
	}

	return cmd
}

// projectFileArg resolves the --file flag; empty falls back to the default
// project file in the working directory, same as the editor started bare.
func projectFileArg(file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return store.DefaultProjectPath()
	}
	return file
}
