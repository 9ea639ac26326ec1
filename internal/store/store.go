// Package store reads and writes the project file (a single JSON document:
// header, sections, spellcheck ignore-list) and owns app-level state that is
// not part of any project: the recent-projects list and settings in a small
// per-user SQLite database, plus a watcher for external edits to an open
// project file.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"resumeforge/internal/model"
)

// ProjectFileName is the default project file name in the working directory.
const ProjectFileName = "resume_data.json"

// Store locates app files. The zero value uses the per-user config dir;
// tests point ConfigDir at a temp dir.
type Store struct {
	ConfigDir string
}

// DefaultProjectPath is the project file in the current directory.
func DefaultProjectPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ProjectFileName
	}
	return filepath.Join(cwd, ProjectFileName)
}

// LoadProject reads and normalizes a project file. On any error the returned
// project is nil so callers keep their in-memory state.
func (s Store) LoadProject(path string) (*model.Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read project %s", path)
	}
	p, err := normalizeProject(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse project %s", path)
	}
	return p, nil
}

// SaveProject writes a complete snapshot atomically (temp file + rename) and
// keeps the previous contents as <path>.bak. The ignore-set is lowercased,
// deduplicated, and sorted on the way out.
func (s Store) SaveProject(p *model.Project, path string) error {
	if p == nil {
		return errors.New("nil project")
	}
	out := p.Clone()
	out.IgnoreWords = NormalizeIgnoreWords(out.IgnoreWords)
	for i := range out.Sections {
		if out.Sections[i].Entries == nil {
			out.Sections[i].Entries = []model.Entry{}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "encode project")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create dir for %s", path)
	}
	if _, err := os.Stat(path); err == nil {
		if err := CopyFile(path, path+".bak"); err != nil {
			return errors.Wrap(err, "write backup")
		}
	}
	if err := atomicWriteFile(path, buf.Bytes()); err != nil {
		return errors.Wrapf(err, "write project %s", path)
	}
	return nil
}

// NormalizeIgnoreWords lowercases, trims, deduplicates, and sorts the
// spellcheck ignore-set.
func NormalizeIgnoreWords(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
