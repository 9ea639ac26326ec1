package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"resumeforge/internal/model"
	"resumeforge/internal/store"
)

// runCmd executes the root command with args and returns combined output.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDemoCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.json")

	out, err := runCmd(t, "demo", "-o", path)
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	if !strings.Contains(out, "wrote "+path) {
		t.Fatalf("output %q missing wrote line", out)
	}

	p, err := store.Store{}.LoadProject(path)
	if err != nil {
		t.Fatalf("load demo: %v", err)
	}
	if p.Header.Name != "Jake Ryan" {
		t.Fatalf("demo header name = %q", p.Header.Name)
	}
	if len(p.Sections) != 4 {
		t.Fatalf("demo has %d sections, want 4", len(p.Sections))
	}
}

func TestDocsCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "helpdocs")

	out, err := runCmd(t, "docs", dir)
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(out, "guide.md") || !strings.Contains(out, "quickstart.md") {
		t.Fatalf("output %q missing doc files", out)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "quickstart.md"))
	if err != nil {
		t.Fatalf("read quickstart: %v", err)
	}
	if !strings.HasPrefix(string(raw), "# Quick Start") {
		t.Fatalf("unexpected quickstart content: %.40q", raw)
	}
}

func TestDoctorCmd(t *testing.T) {
	cfg := t.TempDir()

	out, err := runCmd(t, "--config-dir", cfg, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	for _, want := range []string{"pandoc", "aspell", cfg, "state.sqlite", "resumeforge.log", "render.yaml"} {
		if !strings.Contains(out, want) {
			t.Fatalf("doctor output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorCmdJSON(t *testing.T) {
	cfg := t.TempDir()

	out, err := runCmd(t, "--config-dir", cfg, "doctor", "--json")
	if err != nil {
		t.Fatalf("doctor --json: %v", err)
	}
	var report struct {
		Tools map[string]struct {
			Found bool   `json:"found"`
			Path  string `json:"path"`
		} `json:"tools"`
		Paths map[string]string `json:"paths"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("parse doctor output: %v\n%s", err, out)
	}
	for _, tool := range []string{"pandoc", "aspell"} {
		if _, ok := report.Tools[tool]; !ok {
			t.Fatalf("tools missing %q: %v", tool, report.Tools)
		}
	}
	if report.Paths["config"] != cfg {
		t.Fatalf("config path = %q, want %q", report.Paths["config"], cfg)
	}
	if filepath.Base(report.Paths["render"]) != "render.yaml" {
		t.Fatalf("render path = %q", report.Paths["render"])
	}
}

func TestRecentCmdEmpty(t *testing.T) {
	out, err := runCmd(t, "--config-dir", t.TempDir(), "recent")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if !strings.Contains(out, "no recent projects") {
		t.Fatalf("output %q missing empty notice", out)
	}
}

func TestRecentCmdListsNewestFirst(t *testing.T) {
	cfg := t.TempDir()
	ctx := context.Background()
	st := store.Store{ConfigDir: cfg}

	dir := t.TempDir()
	older := filepath.Join(dir, "older.json")
	newer := filepath.Join(dir, "newer.json")
	for _, path := range []string{older, newer} {
		if err := (store.Store{}).SaveProject(model.DemoProject(), path); err != nil {
			t.Fatalf("save %s: %v", path, err)
		}
	}
	if err := st.TouchRecent(ctx, older); err != nil {
		t.Fatalf("touch older: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := st.TouchRecent(ctx, newer); err != nil {
		t.Fatalf("touch newer: %v", err)
	}

	out, err := runCmd(t, "--config-dir", cfg, "recent")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	newerAt := strings.Index(out, newer)
	olderAt := strings.Index(out, older)
	if newerAt < 0 || olderAt < 0 || newerAt > olderAt {
		t.Fatalf("recent order wrong:\n%s", out)
	}
}

func TestRecentCmdJSON(t *testing.T) {
	cfg := t.TempDir()
	st := store.Store{ConfigDir: cfg}

	path := filepath.Join(t.TempDir(), "resume.json")
	if err := (store.Store{}).SaveProject(model.DemoProject(), path); err != nil {
		t.Fatalf("save project: %v", err)
	}
	if err := st.TouchRecent(context.Background(), path); err != nil {
		t.Fatalf("touch: %v", err)
	}

	out, err := runCmd(t, "--config-dir", cfg, "recent", "--json")
	if err != nil {
		t.Fatalf("recent --json: %v", err)
	}
	var rows []struct {
		Path     string `json:"path"`
		OpenedAt string `json:"opened_at"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("parse recent output: %v\n%s", err, out)
	}
	if len(rows) != 1 || rows[0].Path != path {
		t.Fatalf("rows = %+v, want one row for %s", rows, path)
	}
	if _, err := time.Parse(time.RFC3339, rows[0].OpenedAt); err != nil {
		t.Fatalf("opened_at %q not RFC3339: %v", rows[0].OpenedAt, err)
	}
}

func TestRecentCmdJSONEmpty(t *testing.T) {
	out, err := runCmd(t, "--config-dir", t.TempDir(), "recent", "--json")
	if err != nil {
		t.Fatalf("recent --json: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("empty list should print [], got %q", out)
	}
}
