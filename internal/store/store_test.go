package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"resumeforge/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectFileName)
	s := Store{ConfigDir: dir}

	p := model.DemoProject()
	p.IgnoreWords = []string{"fastapi", "gitlytics"}
	if err := s.SaveProject(p, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadProject(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("round trip mismatch\n got: %+v\nwant: %+v", got, p)
	}
}

func TestSaveKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectFileName)
	s := Store{ConfigDir: dir}

	first := model.DefaultProject()
	first.Header.Name = "First"
	if err := s.SaveProject(first, path); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	firstBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read 1: %v", err)
	}

	second := model.DefaultProject()
	second.Header.Name = "Second"
	if err := s.SaveProject(second, path); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	bak, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("read bak: %v", err)
	}
	if string(bak) != string(firstBytes) {
		t.Fatalf("backup should hold the previous snapshot")
	}
	if strings.Contains(string(bak), "Second") {
		t.Fatalf("backup contains new data")
	}
}

func TestSaveSortsIgnoreWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.json")
	s := Store{ConfigDir: dir}

	p := model.DefaultProject()
	p.IgnoreWords = []string{"Zig", "  api  ", "zig", "Golang"}
	if err := s.SaveProject(p, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadProject(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"api", "golang", "zig"}
	if !reflect.DeepEqual(got.IgnoreWords, want) {
		t.Fatalf("ignore words = %v, want %v", got.IgnoreWords, want)
	}
}

func TestIgnoreWordSurvivesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.json")
	s := Store{ConfigDir: dir}

	p := model.DemoProject()
	p.IgnoreWords = append(p.IgnoreWords, "Gitlytics")
	if err := s.SaveProject(p, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadProject(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	found := false
	for _, w := range got.IgnoreWords {
		if w == "gitlytics" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ignored word lost: %v", got.IgnoreWords)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	s := Store{ConfigDir: t.TempDir()}
	p, err := s.LoadProject(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("want error")
	}
	if p != nil {
		t.Fatalf("project should be nil on failure")
	}
}

func TestLoadMalformedFails(t *testing.T) {
	dir := t.TempDir()
	s := Store{ConfigDir: dir}

	for name, body := range map[string]string{
		"truncated.json": `{"header": {"name": "A"`,
		"array.json":     `[1, 2, 3]`,
		"scalar.json":    `"resume"`,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		p, err := s.LoadProject(path)
		if err == nil {
			t.Fatalf("%s: want error", name)
		}
		if p != nil {
			t.Fatalf("%s: project should be nil on failure", name)
		}
	}
}

func TestSaveNilProject(t *testing.T) {
	s := Store{ConfigDir: t.TempDir()}
	if err := s.SaveProject(nil, filepath.Join(t.TempDir(), "x.json")); err == nil {
		t.Fatalf("want error")
	}
}

func TestNormalizeIgnoreWords(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{"", "  "}, nil},
		{[]string{"B", "a", "b"}, []string{"a", "b"}},
		{[]string{"Word"}, []string{"word"}},
	}
	for _, tt := range tests {
		if got := NormalizeIgnoreWords(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("NormalizeIgnoreWords(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
