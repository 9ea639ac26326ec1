// Package docs holds the built-in help topics. The TUI renders them in the
// help viewer and the docs command writes them out as files.
package docs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed content/*.md
var contentFS embed.FS

// Topics lists the available help topics, sorted.
func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	var topics []string
	for _, path := range entries {
		base := filepath.Base(path)
		topic := strings.TrimSuffix(base, filepath.Ext(base))
		if topic != "" {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

// Get returns a topic's markdown body.
func Get(topic string) (string, bool) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", false
	}
	topic = strings.ToLower(topic)
	path := filepath.Join("content", topic+".md")
	b, err := contentFS.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// WriteAll writes every topic into dir as <topic>.md, creating dir if
// needed. Existing copies are overwritten so they track the app version.
func WriteAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create docs dir %s", dir)
	}
	var written []string
	for _, topic := range Topics() {
		body, ok := Get(topic)
		if !ok {
			continue
		}
		path := filepath.Join(dir, topic+".md")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return written, errors.Wrapf(err, "write %s", path)
		}
		written = append(written, path)
	}
	return written, nil
}
