package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

const stateFileName = "state.sqlite"

// RecentProject is one row of the recent-projects list, newest first.
type RecentProject struct {
	Path     string
	OpenedAt time.Time
}

// Settings are app-level preferences, independent of any project file.
type Settings struct {
	SpellcheckEnabled bool
	// GlamourStyle overrides the help viewer style ("" means auto).
	GlamourStyle string
}

func defaultSettings() Settings {
	return Settings{SpellcheckEnabled: true}
}

func (s Store) configDir() (string, error) {
	if strings.TrimSpace(s.ConfigDir) != "" {
		return s.ConfigDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}
	return filepath.Join(base, "resumeforge"), nil
}

// Dir is the resolved config directory, shared by app state, the log
// file, and render settings.
func (s Store) Dir() (string, error) {
	return s.configDir()
}

// StatePath is the app-state SQLite file path (created on first open).
func (s Store) StatePath() (string, error) {
	dir, err := s.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

func (s Store) openState(ctx context.Context) (*sql.DB, error) {
	dir, err := s.configDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create config dir %s", dir)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, stateFileName))
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when two instances run.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateState(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateState(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS recent_projects (
			path TEXT PRIMARY KEY,
			opened_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_recent_opened ON recent_projects(opened_at_unixms);`,
		`CREATE TABLE IF NOT EXISTS settings (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// TouchRecent records that a project file was opened or saved now.
func (s Store) TouchRecent(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	db, err := s.openState(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO recent_projects(path, opened_at_unixms) VALUES(?, ?)`,
		abs, time.Now().UnixMilli())
	return err
}

// RecentProjects returns up to limit entries, newest first. Entries whose
// file no longer exists are pruned as they are seen.
func (s Store) RecentProjects(ctx context.Context, limit int) ([]RecentProject, error) {
	db, err := s.openState(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT path, opened_at_unixms FROM recent_projects ORDER BY opened_at_unixms DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentProject
	var gone []string
	for rows.Next() {
		var path string
		var ms int64
		if err := rows.Scan(&path, &ms); err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			gone = append(gone, path)
			continue
		}
		out = append(out, RecentProject{Path: path, OpenedAt: time.UnixMilli(ms).UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, path := range gone {
		_, _ = db.ExecContext(ctx, `DELETE FROM recent_projects WHERE path = ?`, path)
	}
	return out, nil
}

// RemoveRecent drops one entry from the recent list.
func (s Store) RemoveRecent(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	db, err := s.openState(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `DELETE FROM recent_projects WHERE path = ?`, abs)
	return err
}

// LoadSettings returns stored settings, with defaults for anything unset.
func (s Store) LoadSettings(ctx context.Context) (Settings, error) {
	out := defaultSettings()
	db, err := s.openState(ctx)
	if err != nil {
		return out, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT k, v FROM settings`)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return out, err
		}
		switch k {
		case "spellcheck_enabled":
			out.SpellcheckEnabled = v == "1"
		case "glamour_style":
			out.GlamourStyle = v
		}
	}
	return out, rows.Err()
}

func (s Store) SaveSettings(ctx context.Context, st Settings) error {
	db, err := s.openState(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	spell := "0"
	if st.SpellcheckEnabled {
		spell = "1"
	}
	kv := [][2]string{
		{"spellcheck_enabled", spell},
		{"glamour_style", st.GlamourStyle},
	}
	for _, pair := range kv {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO settings(k, v) VALUES(?, ?)`, pair[0], pair[1]); err != nil {
			return err
		}
	}
	return tx.Commit()
}
