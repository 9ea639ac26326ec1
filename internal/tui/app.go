package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"resumeforge/internal/edit"
	"resumeforge/internal/model"
	"resumeforge/internal/render"
	"resumeforge/internal/spell"
	"resumeforge/internal/store"
)

const flashDuration = 3 * time.Second

func newAppModel(cfg Config) (appModel, error) {
	m := appModel{
		store:   cfg.Store,
		log:     cfg.Logger,
		history: edit.NewHistory(),
	}

	path := cfg.ProjectPath
	if path == "" {
		// Bare start: open the working directory's project if it exists,
		// otherwise begin a fresh resume aimed at that path.
		path = store.DefaultProjectPath()
		p, err := m.store.LoadProject(path)
		switch {
		case err == nil:
			m.project = p
		case errors.Is(err, os.ErrNotExist):
			m.project = model.DefaultProject()
		default:
			return appModel{}, err
		}
	} else {
		p, err := m.store.LoadProject(path)
		if err != nil {
			return appModel{}, err
		}
		m.project = p
	}
	m.path = path

	st, err := m.store.LoadSettings(context.Background())
	if err != nil {
		m.log.Warn().Err(err).Msg("load settings")
	}
	m.settings = st

	m.loadRenderOptions()

	if c, err := spell.NewAspell(); err != nil {
		m.checkerErr = err.Error()
	} else {
		m.checker = c
	}

	m.startWatch()
	if _, err := os.Stat(m.path); err == nil {
		_ = m.store.TouchRecent(context.Background(), m.path)
	}

	return m, nil
}

func (m appModel) Init() tea.Cmd {
	return waitFileChange(m.watch)
}

// loadRenderOptions caches the export settings for the preview's LaTeX
// view. Runs on open and save-as; exports re-read the file themselves.
func (m *appModel) loadRenderOptions() {
	dir, _ := m.store.Dir()
	opt, err := render.LoadOptionsFor(m.path, dir)
	if err != nil {
		m.log.Warn().Err(err).Msg("render options")
	}
	m.renderOpt = opt
}

// startWatch (re)arms the file watcher for the current path. Watching is
// best-effort; editing continues without it.
func (m *appModel) startWatch() {
	gen := 0
	if m.watch != nil {
		gen = m.watch.gen
	}
	m.stopWatch()
	if m.path == "" {
		return
	}
	if _, err := os.Stat(m.path); err != nil {
		return
	}
	w, err := store.WatchProject(m.path)
	if err != nil {
		m.log.Warn().Err(err).Str("path", m.path).Msg("watch project")
		return
	}
	m.watch = &projectWatch{w: w, stop: make(chan struct{}), gen: gen + 1}
}

func (m *appModel) stopWatch() {
	if m.watch == nil {
		return
	}
	m.watch.close()
	m.watch = nil
}

func waitFileChange(pw *projectWatch) tea.Cmd {
	if pw == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-pw.w.Events:
			if !ok {
				return nil
			}
			return fileChangedMsg{gen: pw.gen}
		case <-pw.stop:
			return nil
		}
	}
}

func (m *appModel) flashInfo(s string) tea.Cmd {
	return m.setFlash(s, false)
}

func (m *appModel) flashError(s string) tea.Cmd {
	return m.setFlash(s, true)
}

func (m *appModel) setFlash(s string, isErr bool) tea.Cmd {
	m.flash = s
	m.flashErr = isErr
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

// apply runs one edit through the undo log and marks the project dirty.
func (m *appModel) apply(c edit.Command) tea.Cmd {
	if err := m.history.Do(m.project, c); err != nil {
		return m.flashError(err.Error())
	}
	m.dirty = true
	return nil
}

// save writes the project in place, or opens Save As when no path is set.
func (m *appModel) save() tea.Cmd {
	if m.path == "" {
		return m.openSaveAs()
	}
	m.muteWatch = m.watch != nil
	if err := m.store.SaveProject(m.project, m.path); err != nil {
		m.muteWatch = false
		m.log.Error().Err(err).Str("path", m.path).Msg("save project")
		return m.flashError("save failed: " + err.Error())
	}
	m.dirty = false
	m.history.Break()
	m.log.Info().Str("path", m.path).Msg("saved project")
	_ = m.store.TouchRecent(context.Background(), m.path)

	var rearm tea.Cmd
	if m.watch == nil {
		// First save creates the file; start watching it now.
		m.startWatch()
		rearm = waitFileChange(m.watch)
	}
	if m.quitAfterSave {
		return tea.Quit
	}
	return tea.Batch(m.flashInfo("saved "+filepath.Base(m.path)), rearm)
}

func (m *appModel) openSaveAs() tea.Cmd {
	m.modal = modalSaveAs
	m.input = newFormInput(m.path, m.width)
	m.input.CursorEnd()
	return m.input.Focus()
}

// openProject replaces the working project with the file at path. The undo
// log does not survive a load.
func (m *appModel) openProject(path string) tea.Cmd {
	p, err := m.store.LoadProject(path)
	if err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("open project")
		return m.flashError(err.Error())
	}
	m.project = p
	m.path = path
	m.history.Reset()
	m.dirty = false
	m.focus = paneSections
	m.sectionIdx = 0
	m.entryIdx = 0
	m.previewOff = 0
	m.loadRenderOptions()
	m.startWatch()
	_ = m.store.TouchRecent(context.Background(), path)
	m.log.Info().Str("path", path).Msg("opened project")
	return tea.Batch(m.flashInfo("opened "+filepath.Base(path)), waitFileChange(m.watch))
}

// reloadProject re-reads the current path after an external change.
func (m *appModel) reloadProject() tea.Cmd {
	p, err := m.store.LoadProject(m.path)
	if err != nil {
		return m.flashError("reload failed: " + err.Error())
	}
	m.project = p
	m.history.Reset()
	m.dirty = false
	m.clampCursors()
	return m.flashInfo("reloaded from disk")
}

func (m *appModel) spellScanCmd() tea.Cmd {
	m.spellBusy = true
	m.spellSeq++
	seq := m.spellSeq
	p := m.project.Clone()
	c := m.checker
	return func() tea.Msg {
		findings, err := spell.Scan(context.Background(), p, c)
		if err != nil {
			return spellScanMsg{seq: seq, err: err.Error()}
		}
		return spellScanMsg{seq: seq, findings: findings}
	}
}

// exportBase is the output path stem: the project file minus its extension,
// or "resume" in the working directory before the first save.
func (m *appModel) exportBase() string {
	if m.path == "" {
		return "resume"
	}
	return m.path[:len(m.path)-len(filepath.Ext(m.path))]
}

func (m *appModel) exportCmd(format string) tea.Cmd {
	p := m.project.Clone()
	base := m.exportBase()
	projPath := m.path
	st := m.store
	return func() tea.Msg {
		// render.yaml is re-read per export so edits to it apply without
		// restarting the app.
		dir, _ := st.Dir()
		opt, err := render.LoadOptionsFor(projPath, dir)

		var path string
		if err == nil {
			switch format {
			case "tex":
				path = base + ".tex"
				err = render.WriteLaTeX(p, path, opt)
			case "docx":
				path = base + ".docx"
				err = render.WriteDOCX(p, path, opt)
			case "pdf":
				path = base + ".pdf"
				err = render.WritePDF(p, path, opt)
			}
		}
		if err != nil {
			return exportDoneMsg{err: err.Error()}
		}
		return exportDoneMsg{path: path}
	}
}

// previewText is the content of the preview pane: the styled text
// projection, or the LaTeX source when toggled.
func (m *appModel) previewText() string {
	if m.previewSrc {
		return render.LaTeX(m.project, m.renderOpt)
	}
	return render.Text(m.project)
}

// clampCursors keeps the pane cursors valid after any structural change.
func (m *appModel) clampCursors() {
	if m.sectionIdx >= len(m.project.Sections) {
		m.sectionIdx = len(m.project.Sections) - 1
	}
	if m.sectionIdx < 0 {
		m.sectionIdx = 0
	}
	n := 0
	if s := m.currentSection(); s != nil {
		n = len(s.Entries)
	}
	if m.entryIdx >= n {
		m.entryIdx = n - 1
	}
	if m.entryIdx < 0 {
		m.entryIdx = 0
	}
}

func (m *appModel) currentSection() *model.Section {
	if m.sectionIdx < 0 || m.sectionIdx >= len(m.project.Sections) {
		return nil
	}
	return &m.project.Sections[m.sectionIdx]
}

func (m *appModel) currentEntry() *model.Entry {
	s := m.currentSection()
	if s == nil || m.entryIdx < 0 || m.entryIdx >= len(s.Entries) {
		return nil
	}
	return &s.Entries[m.entryIdx]
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.form = nil
	m.bullets = nil
	m.confirm = confirmNone
	m.confirmID = ""
	m.confirmPath = ""
	m.helpBody = ""
	m.helpOff = 0
}
