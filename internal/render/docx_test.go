package render

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"resumeforge/internal/model"
)

func TestWriteDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultDOCXName)

	if _, lookErr := exec.LookPath("pandoc"); lookErr != nil {
		// Without pandoc the export must fail with the install hint and
		// write nothing.
		err := WriteDOCX(model.DemoProject(), path, DefaultOptions())
		if err == nil {
			t.Fatalf("want error when pandoc is missing")
		}
		if !strings.Contains(err.Error(), "pandoc not found in PATH") {
			t.Fatalf("error should name the missing tool: %v", err)
		}
		if _, statErr := os.Stat(path); statErr == nil {
			t.Fatalf("output written despite missing pandoc")
		}
		return
	}

	if err := WriteDOCX(model.DemoProject(), path, DefaultOptions()); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// DOCX files are zip archives.
	if len(raw) < 4 || raw[0] != 'P' || raw[1] != 'K' {
		t.Fatalf("output is not a zip container")
	}
}

func TestWriteDOCXMissingPandoc(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	path := filepath.Join(t.TempDir(), DefaultDOCXName)
	err := WriteDOCX(model.DemoProject(), path, DefaultOptions())
	if err == nil {
		t.Fatalf("want error when pandoc is missing")
	}
	if got := err.Error(); got != "pandoc not found in PATH (install pandoc to generate DOCX files)" {
		t.Fatalf("install hint changed: %q", got)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Fatalf("output written despite missing pandoc")
	}
}
