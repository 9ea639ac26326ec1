package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"

	"resumeforge/internal/edit"
	"resumeforge/internal/model"
	"resumeforge/internal/render"
	"resumeforge/internal/spell"
	"resumeforge/internal/store"
)

type pane int

const (
	paneSections pane = iota
	paneEntries
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHeader
	modalEntry
	modalBullets
	modalSectionTitle
	modalAddSection
	modalAddSectionTitle
	modalConfirm
	modalSaveAs
	modalOpen
	modalExport
	modalSpell
	modalIgnoreWords
	modalSettings
	modalHelp
	modalReload
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteSection
	confirmDeleteEntry
	confirmDeleteAll
	confirmLoadDemo
	confirmQuit
	confirmOpenDiscard
	confirmOverwrite
)

// flashDoneMsg clears the status flash; seq guards against a stale timer
// wiping a newer flash.
type flashDoneMsg struct{ seq int }

type spellScanMsg struct {
	seq      int
	findings []spell.Finding
	err      string
}

type exportDoneMsg struct {
	path string
	err  string
}

// fileChangedMsg reports an external change to the project file. gen guards
// against events from a watcher that has since been swapped out.
type fileChangedMsg struct{ gen int }

// projectWatch pairs a file watcher with a stop channel so the pending
// waitFileChange command unblocks when the watch is replaced. Model copies
// share the pointer, so close must be idempotent.
type projectWatch struct {
	w    *store.Watcher
	stop chan struct{}
	gen  int
	once sync.Once
}

func (pw *projectWatch) close() {
	pw.once.Do(func() {
		close(pw.stop)
		_ = pw.w.Close()
	})
}

type appModel struct {
	store store.Store
	log   zerolog.Logger

	project *model.Project
	history *edit.History
	path    string
	dirty   bool

	settings store.Settings

	// checker is nil when aspell is missing; checkerErr then holds the
	// install hint shown in the spellcheck panel.
	checker    spell.Checker
	checkerErr string

	width  int
	height int

	focus      pane
	sectionIdx int
	entryIdx   int

	showPreview bool
	// previewSrc switches the preview pane to the LaTeX source.
	previewSrc bool
	previewOff int
	renderOpt  render.Options

	modal modalKind

	form    *entryForm
	bullets *bulletEditor

	// input is shared by the single-line prompt modals (save as, open,
	// section title, ignore words).
	input   textinput.Model
	kindIdx int

	confirm     confirmKind
	confirmID   string
	confirmPath string

	exportIdx   int
	settingsIdx int

	findings  []spell.Finding
	spellIdx  int
	spellSeq  int
	spellBusy bool
	spellErr  string

	ignoreIdx int

	recent         []store.RecentProject
	recentIdx      int
	openFocusInput bool

	helpIdx   int
	helpBody  string
	helpOff   int
	helpWrote bool

	watch *projectWatch
	// muteWatch marks the next watcher event as our own save.
	muteWatch bool

	flash    string
	flashErr bool
	flashSeq int

	quitAfterSave bool
}
