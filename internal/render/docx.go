package render

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	"resumeforge/internal/model"
)

// WriteDOCX converts the project to a Word document by rendering LaTeX and
// feeding it through pandoc. pandoc is an optional external dependency;
// when it is missing the returned error names the install step and nothing
// is written.
func WriteDOCX(p *model.Project, path string, opt Options) (err error) {
	err = checkPandocExists()
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(path)
	err = os.MkdirAll(outputDir, 0o750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	tmpDir, err := os.MkdirTemp("", "resumeforge-docx-")
	if err != nil {
		err = errors.Wrap(err, "failed to create temp directory")
		return err
	}
	defer os.RemoveAll(tmpDir)

	texPath := filepath.Join(tmpDir, DefaultTeXName)
	err = WriteLaTeX(p, texPath, opt)
	if err != nil {
		return err
	}

	cmd := exec.Command(
		"pandoc",
		"-f", "latex",
		"-t", "docx",
		"-o", path,
		texPath,
	)

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists() (err error) {
	cmd := exec.Command("pandoc", "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate DOCX files)")
		return err
	}
	return err
}
