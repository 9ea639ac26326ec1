// Package tui is the interactive resume editor: two panes over the section
// tree, modal editors for the header, entries, and bullets, and overlays for
// spellcheck, export, and help.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"resumeforge/internal/store"
)

// Config carries everything Run needs; the CLI layer owns flag parsing and
// logger setup.
type Config struct {
	Store       store.Store
	ProjectPath string
	Logger      zerolog.Logger
}

func Run(cfg Config) error {
	applyColorProfilePreference()
	applyThemePreference()

	m, err := newAppModel(cfg)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if fm, ok := final.(appModel); ok {
		fm.stopWatch()
	}
	return err
}
