package cli

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"resumeforge/internal/model"
	"resumeforge/internal/store"
)

func demoFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	if err := (store.Store{}).SaveProject(model.DemoProject(), path); err != nil {
		t.Fatalf("save demo: %v", err)
	}
	return path
}

func TestExportTex(t *testing.T) {
	proj := demoFile(t)
	out := filepath.Join(t.TempDir(), "resume.tex")

	stdout, err := runCmd(t, "--config-dir", t.TempDir(), "export", "tex", "-f", proj, "-o", out)
	if err != nil {
		t.Fatalf("export tex: %v", err)
	}
	if !strings.Contains(stdout, "wrote "+out) {
		t.Fatalf("output %q missing wrote line", stdout)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read tex: %v", err)
	}
	if !strings.Contains(string(raw), `\documentclass[letterpaper,11pt]{article}`) {
		t.Fatalf("tex output missing preamble")
	}
	if !strings.Contains(string(raw), "Jake Ryan") {
		t.Fatalf("tex output missing header name")
	}
}

func TestExportTexDefaultProjectFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := (store.Store{}).SaveProject(model.DemoProject(), store.ProjectFileName); err != nil {
		t.Fatalf("save default project: %v", err)
	}
	out := filepath.Join(t.TempDir(), "resume.tex")

	if _, err := runCmd(t, "--config-dir", t.TempDir(), "export", "tex", "-o", out); err != nil {
		t.Fatalf("export tex without -f: %v", err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read tex: %v", err)
	}
	if !strings.Contains(string(raw), "Jake Ryan") {
		t.Fatalf("tex output missing header name")
	}
}

func TestExportTexNoProjectFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := runCmd(t, "--config-dir", t.TempDir(), "export", "tex")
	if err == nil || !strings.Contains(err.Error(), store.ProjectFileName) {
		t.Fatalf("error should name the default project file, got %v", err)
	}
}

func TestExportTexBadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := runCmd(t, "--config-dir", t.TempDir(), "export", "tex", "-f", path)
	if err == nil {
		t.Fatalf("want error for malformed project")
	}
}

func TestExportPDF(t *testing.T) {
	proj := demoFile(t)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	if _, err := runCmd(t, "--config-dir", t.TempDir(), "export", "pdf", "-f", proj, "-o", out); err != nil {
		t.Fatalf("export pdf: %v", err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(raw), "%PDF-") {
		t.Fatalf("output is not a PDF")
	}
}

func TestExportDOCX(t *testing.T) {
	cfg := t.TempDir()
	proj := demoFile(t)
	out := filepath.Join(t.TempDir(), "resume.docx")

	if _, lookErr := exec.LookPath("pandoc"); lookErr != nil {
		_, err := runCmd(t, "--config-dir", cfg, "export", "docx", "-f", proj, "-o", out)
		if err == nil || !strings.Contains(err.Error(), "pandoc not found in PATH") {
			t.Fatalf("want pandoc install hint, got %v", err)
		}
		return
	}

	if _, err := runCmd(t, "--config-dir", cfg, "export", "docx", "-f", proj, "-o", out); err != nil {
		t.Fatalf("export docx: %v", err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read docx: %v", err)
	}
	if len(raw) < 4 || raw[0] != 'P' || raw[1] != 'K' {
		t.Fatalf("output is not a zip container")
	}
}

func TestExportPDFHonorsRenderSettings(t *testing.T) {
	cfg := t.TempDir()
	settings := "paper: a4\nbase_font: helvetica\n"
	if err := os.WriteFile(filepath.Join(cfg, "render.yaml"), []byte(settings), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	proj := demoFile(t)
	out := filepath.Join(t.TempDir(), "resume.pdf")
	if _, err := runCmd(t, "--config-dir", cfg, "export", "pdf", "-f", proj, "-o", out); err != nil {
		t.Fatalf("export pdf: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("pdf not written: %v", err)
	}
}

func TestExportTexHonorsRenderSettings(t *testing.T) {
	cfg := t.TempDir()
	settings := "paper: a4\nrule_color: \"#336699\"\n"
	if err := os.WriteFile(filepath.Join(cfg, "render.yaml"), []byte(settings), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	proj := demoFile(t)
	out := filepath.Join(t.TempDir(), "resume.tex")
	if _, err := runCmd(t, "--config-dir", cfg, "export", "tex", "-f", proj, "-o", out); err != nil {
		t.Fatalf("export tex: %v", err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read tex: %v", err)
	}
	if !strings.Contains(string(raw), `\documentclass[a4paper,11pt]{article}`) {
		t.Fatalf("tex output ignores paper setting")
	}
	if !strings.Contains(string(raw), `\color[rgb]{0.200,0.400,0.600}\titlerule`) {
		t.Fatalf("tex output ignores rule color")
	}
}

func TestExportTexProjectSideRenderSettings(t *testing.T) {
	cfg := t.TempDir()
	if err := os.WriteFile(filepath.Join(cfg, "render.yaml"), []byte("paper: letter\n"), 0o644); err != nil {
		t.Fatalf("write config settings: %v", err)
	}

	// render.yaml next to the project wins over the config dir's.
	proj := demoFile(t)
	if err := os.WriteFile(filepath.Join(filepath.Dir(proj), "render.yaml"), []byte("paper: a4\n"), 0o644); err != nil {
		t.Fatalf("write project settings: %v", err)
	}

	out := filepath.Join(t.TempDir(), "resume.tex")
	if _, err := runCmd(t, "--config-dir", cfg, "export", "tex", "-f", proj, "-o", out); err != nil {
		t.Fatalf("export tex: %v", err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read tex: %v", err)
	}
	if !strings.Contains(string(raw), `\documentclass[a4paper,11pt]{article}`) {
		t.Fatalf("project-side settings not applied")
	}
}
