package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resumeforge/internal/docs"
	"resumeforge/internal/edit"
	"resumeforge/internal/model"
	"resumeforge/internal/richtext"
	"resumeforge/internal/store"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
			m.flashErr = false
		}
		return m, nil

	case spellScanMsg:
		if msg.seq != m.spellSeq {
			return m, nil
		}
		m.spellBusy = false
		m.spellErr = msg.err
		m.findings = msg.findings
		m.spellIdx = 0
		return m, nil

	case exportDoneMsg:
		if msg.err != "" {
			m.log.Error().Str("error", msg.err).Msg("export failed")
			return m, m.flashError(msg.err)
		}
		m.log.Info().Str("path", msg.path).Msg("exported")
		return m, m.flashInfo("wrote " + msg.path)

	case fileChangedMsg:
		if m.watch == nil || msg.gen != m.watch.gen {
			return m, nil
		}
		rearm := waitFileChange(m.watch)
		if m.muteWatch {
			m.muteWatch = false
			return m, rearm
		}
		if m.modal == modalNone {
			m.modal = modalReload
			return m, rearm
		}
		if m.modal == modalReload {
			return m, rearm
		}
		return m, tea.Batch(rearm, m.flashError("project file changed on disk"))

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.requestQuit()
	}

	switch m.modal {
	case modalNone:
		return m.updateMain(msg)
	case modalHeader, modalEntry:
		return m.updateForm(msg)
	case modalBullets:
		return m.updateBullets(msg)
	case modalSectionTitle, modalAddSectionTitle, modalSaveAs:
		return m.updateInputModal(msg)
	case modalAddSection:
		return m.updateAddSection(msg)
	case modalConfirm:
		return m.updateConfirm(msg)
	case modalOpen:
		return m.updateOpen(msg)
	case modalExport:
		return m.updateExport(msg)
	case modalSpell:
		return m.updateSpell(msg)
	case modalIgnoreWords:
		return m.updateIgnoreWords(msg)
	case modalSettings:
		return m.updateSettings(msg)
	case modalHelp:
		return m.updateHelp(msg)
	case modalReload:
		return m.updateReload(msg)
	}
	return m, nil
}

func (m appModel) requestQuit() (tea.Model, tea.Cmd) {
	if !m.dirty {
		m.stopWatch()
		return m, tea.Quit
	}
	m.closeModal()
	m.modal = modalConfirm
	m.confirm = confirmQuit
	return m, nil
}

func (m appModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.requestQuit()

	case "tab":
		if m.focus == paneSections {
			m.focus = paneEntries
		} else {
			m.focus = paneSections
		}
		m.clampCursors()
		return m, nil
	case "left":
		m.focus = paneSections
		return m, nil
	case "right":
		m.focus = paneEntries
		m.clampCursors()
		return m, nil

	case "up", "k":
		if m.focus == paneSections {
			if m.sectionIdx > 0 {
				m.sectionIdx--
				m.entryIdx = 0
			}
		} else if m.entryIdx > 0 {
			m.entryIdx--
		}
		return m, nil
	case "down", "j":
		if m.focus == paneSections {
			if m.sectionIdx < len(m.project.Sections)-1 {
				m.sectionIdx++
				m.entryIdx = 0
			}
		} else if s := m.currentSection(); s != nil && m.entryIdx < len(s.Entries)-1 {
			m.entryIdx++
		}
		return m, nil

	case "enter":
		if m.focus == paneSections {
			if m.currentSection() == nil {
				return m, m.flashInfo("no sections (a to add)")
			}
			m.focus = paneEntries
			m.clampCursors()
			return m, nil
		}
		s := m.currentSection()
		e := m.currentEntry()
		if s == nil || e == nil {
			return m, m.flashInfo("no entries (a to add)")
		}
		m.form = newEntryForm(s, e, 0, m.width)
		m.modal = modalEntry
		return m, textinput.Blink

	case "h":
		m.form = newHeaderForm(m.project.Header, m.width)
		m.modal = modalHeader
		return m, textinput.Blink

	case "a":
		if m.focus == paneSections {
			m.kindIdx = 0
			m.modal = modalAddSection
			return m, nil
		}
		s := m.currentSection()
		if s == nil {
			return m, m.flashInfo("no sections (a to add)")
		}
		at := 0
		if len(s.Entries) > 0 {
			at = m.entryIdx + 1
		}
		m.form = newEntryForm(s, nil, at, m.width)
		m.modal = modalEntry
		return m, textinput.Blink

	case "d":
		if m.focus == paneSections {
			s := m.currentSection()
			if s == nil {
				return m, nil
			}
			m.modal = modalConfirm
			m.confirm = confirmDeleteSection
			m.confirmID = s.ID
			return m, nil
		}
		e := m.currentEntry()
		if e == nil {
			return m, nil
		}
		m.modal = modalConfirm
		m.confirm = confirmDeleteEntry
		m.confirmID = e.ID
		return m, nil

	case "J":
		if m.focus == paneSections {
			s := m.currentSection()
			if s == nil || m.sectionIdx >= len(m.project.Sections)-1 {
				return m, nil
			}
			cmd := m.apply(edit.MoveSection{SectionID: s.ID, To: m.sectionIdx + 1})
			m.sectionIdx++
			return m, cmd
		}
		s, e := m.currentSection(), m.currentEntry()
		if s == nil || e == nil || m.entryIdx >= len(s.Entries)-1 {
			return m, nil
		}
		cmd := m.apply(edit.MoveEntry{SectionID: s.ID, EntryID: e.ID, To: m.entryIdx + 1})
		m.entryIdx++
		return m, cmd
	case "K":
		if m.focus == paneSections {
			s := m.currentSection()
			if s == nil || m.sectionIdx == 0 {
				return m, nil
			}
			cmd := m.apply(edit.MoveSection{SectionID: s.ID, To: m.sectionIdx - 1})
			m.sectionIdx--
			return m, cmd
		}
		s, e := m.currentSection(), m.currentEntry()
		if s == nil || e == nil || m.entryIdx == 0 {
			return m, nil
		}
		cmd := m.apply(edit.MoveEntry{SectionID: s.ID, EntryID: e.ID, To: m.entryIdx - 1})
		m.entryIdx--
		return m, cmd

	case "t":
		s := m.currentSection()
		if s == nil {
			return m, nil
		}
		markup := s.Title
		if len(s.TitleRuns) > 0 {
			markup = richtext.Render(s.TitleRuns)
		}
		m.confirmID = s.ID
		m.input = newFormInput(markup, m.width)
		m.input.CursorEnd()
		m.modal = modalSectionTitle
		return m, m.input.Focus()

	case "b":
		s, e := m.currentSection(), m.currentEntry()
		if s == nil || e == nil {
			return m, m.flashInfo("no entry selected")
		}
		if !s.Kind.HasBullets() {
			return m, m.flashInfo("this section kind has no bullets")
		}
		m.bullets = newBulletEditor(s.ID, e.ID, m.width)
		m.modal = modalBullets
		return m, nil

	case "u":
		name, err := m.history.Undo(m.project)
		if err != nil {
			return m, m.flashError(err.Error())
		}
		if name == "" {
			return m, m.flashInfo("nothing to undo")
		}
		m.dirty = true
		m.clampCursors()
		return m, m.flashInfo("undid " + name)
	case "ctrl+r":
		name, err := m.history.Redo(m.project)
		if err != nil {
			return m, m.flashError(err.Error())
		}
		if name == "" {
			return m, m.flashInfo("nothing to redo")
		}
		m.dirty = true
		m.clampCursors()
		return m, m.flashInfo("redid " + name)

	case "ctrl+s":
		return m, m.save()
	case "S":
		return m, m.openSaveAs()

	case "o":
		recent, err := m.store.RecentProjects(context.Background(), 10)
		if err != nil {
			m.log.Warn().Err(err).Msg("recent projects")
		}
		m.recent = recent
		m.recentIdx = 0
		m.openFocusInput = len(recent) == 0
		m.input = newFormInput("", m.width)
		m.modal = modalOpen
		if m.openFocusInput {
			return m, m.input.Focus()
		}
		return m, nil

	case "e":
		m.exportIdx = 0
		m.modal = modalExport
		return m, nil

	case "p":
		m.showPreview = !m.showPreview
		m.previewSrc = false
		m.previewOff = 0
		return m, nil

	case "v":
		if !m.showPreview {
			return m, nil
		}
		m.previewSrc = !m.previewSrc
		m.previewOff = 0
		return m, nil

	case "y":
		what := "text preview"
		if m.showPreview && m.previewSrc {
			what = "latex source"
		}
		if err := copyToClipboard(m.previewText()); err != nil {
			return m, m.flashError("copy failed: " + err.Error())
		}
		return m, m.flashInfo("copied " + what)

	case "pgdown", "ctrl+d":
		if m.showPreview {
			m.scrollPreview(m.previewPageSize())
		}
		return m, nil
	case "pgup", "ctrl+u":
		if m.showPreview {
			m.scrollPreview(-m.previewPageSize())
		}
		return m, nil
	case "home":
		m.previewOff = 0
		return m, nil

	case "ctrl+k":
		if !m.settings.SpellcheckEnabled {
			return m, m.flashInfo("spellcheck is off (s to open settings)")
		}
		m.modal = modalSpell
		m.findings = nil
		m.spellErr = ""
		if m.checker == nil {
			m.spellErr = m.checkerErr
			return m, nil
		}
		return m, m.spellScanCmd()

	case "w":
		m.ignoreIdx = 0
		m.input = newFormInput("", m.width)
		m.modal = modalIgnoreWords
		return m, m.input.Focus()

	case "s":
		m.settingsIdx = 0
		m.modal = modalSettings
		return m, nil

	case "D":
		m.modal = modalConfirm
		m.confirm = confirmLoadDemo
		return m, nil
	case "ctrl+n":
		m.modal = modalConfirm
		m.confirm = confirmDeleteAll
		return m, nil

	case "?":
		m.helpIdx = 0
		m.helpBody = ""
		m.modal = modalHelp
		return m, m.writeHelpDocs()
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	act, cmd := m.form.update(msg)
	switch act {
	case formCancel:
		m.closeModal()
		return m, nil
	case formCommit:
		cmds := m.form.commands(m.project)
		creating := m.form.creating
		insertAt := m.form.insertAt
		var flash tea.Cmd
		for _, c := range cmds {
			if f := m.apply(c); f != nil {
				flash = f
				break
			}
		}
		m.history.Break()
		m.closeModal()
		if creating && flash == nil {
			if s := m.currentSection(); s != nil && len(s.Entries) > 0 {
				m.focus = paneEntries
				m.entryIdx = min(insertAt, len(s.Entries)-1)
			}
		}
		return m, flash
	}
	return m, cmd
}

func (m appModel) updateBullets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.bullets
	sec := m.project.FindSection(b.sectionID)
	if sec == nil {
		m.closeModal()
		return m, nil
	}
	e := sec.FindEntry(b.entryID)
	if e == nil {
		m.closeModal()
		return m, nil
	}

	if b.editing {
		switch msg.String() {
		case "esc":
			b.stopEdit()
			return m, nil
		case "enter":
			runs := richtext.Parse(b.input.Value())
			cmd := m.apply(edit.SetBullet{
				SectionID: b.sectionID, EntryID: b.entryID,
				Index: b.idx, Runs: runs,
			})
			b.stopEdit()
			return m, cmd
		}
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "q":
		m.closeModal()
		return m, nil
	case "up", "k":
		if b.idx > 0 {
			b.idx--
		}
		return m, nil
	case "down", "j":
		if b.idx < len(e.Bullets)-1 {
			b.idx++
		}
		return m, nil
	case "a":
		at := 0
		if len(e.Bullets) > 0 {
			at = b.idx + 1
		}
		cmd := m.apply(edit.AddBullet{
			SectionID: b.sectionID, EntryID: b.entryID,
			Index: at, Runs: []model.Run{},
		})
		if cmd != nil {
			return m, cmd
		}
		b.idx = at
		return m, b.startEdit("")
	case "d":
		if len(e.Bullets) == 0 {
			return m, nil
		}
		cmd := m.apply(edit.RemoveBullet{
			SectionID: b.sectionID, EntryID: b.entryID, Index: b.idx,
		})
		if b.idx >= len(e.Bullets) && b.idx > 0 {
			b.idx--
		}
		return m, cmd
	case "J":
		if b.idx >= len(e.Bullets)-1 {
			return m, nil
		}
		cmd := m.apply(edit.MoveBullet{
			SectionID: b.sectionID, EntryID: b.entryID,
			From: b.idx, To: b.idx + 1,
		})
		b.idx++
		return m, cmd
	case "K":
		if b.idx == 0 || len(e.Bullets) == 0 {
			return m, nil
		}
		cmd := m.apply(edit.MoveBullet{
			SectionID: b.sectionID, EntryID: b.entryID,
			From: b.idx, To: b.idx - 1,
		})
		b.idx--
		return m, cmd
	case "enter":
		if b.idx < 0 || b.idx >= len(e.Bullets) {
			return m, nil
		}
		return m, b.startEdit(richtext.Render(e.Bullets[b.idx]))
	}
	return m, nil
}

func (m appModel) updateInputModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "enter":
		switch m.modal {
		case modalSaveAs:
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				return m, m.flashError("path required")
			}
			if path != m.path {
				if _, err := os.Stat(path); err == nil {
					m.closeModal()
					m.modal = modalConfirm
					m.confirm = confirmOverwrite
					m.confirmPath = path
					return m, nil
				}
			}
			m.stopWatch()
			m.path = path
			m.loadRenderOptions()
			m.closeModal()
			return m, m.save()

		case modalSectionTitle:
			id := m.confirmID
			title, runs, ok := parseTitleMarkup(m.input.Value())
			if !ok {
				return m, m.flashError("title required")
			}
			m.closeModal()
			return m, m.apply(edit.SetSectionTitle{SectionID: id, Title: title, TitleRuns: runs})

		case modalAddSectionTitle:
			title, runs, ok := parseTitleMarkup(m.input.Value())
			if !ok {
				return m, m.flashError("title required")
			}
			kinds := model.Kinds()
			kind := kinds[min(m.kindIdx, len(kinds)-1)]
			at := 0
			if len(m.project.Sections) > 0 {
				at = m.sectionIdx + 1
			}
			sec := model.Section{
				ID:        m.project.NewSectionID(),
				Kind:      kind,
				Title:     title,
				TitleRuns: runs,
				Entries:   []model.Entry{},
			}
			m.closeModal()
			cmd := m.apply(edit.AddSection{Section: sec, Index: at})
			if cmd == nil {
				m.focus = paneSections
				m.sectionIdx = min(at, len(m.project.Sections)-1)
				m.entryIdx = 0
			}
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseTitleMarkup turns a styled-title markup line into the stored pair:
// plain text always, runs only when styling is present.
func parseTitleMarkup(s string) (title string, runs []model.Run, ok bool) {
	parsed := richtext.Parse(s)
	title = strings.TrimSpace(model.PlainText(parsed))
	if title == "" {
		return "", nil, false
	}
	if len(parsed) == 1 && parsed[0] == (model.Run{Text: parsed[0].Text}) {
		return parsed[0].Text, nil, true
	}
	return title, parsed, true
}

func (m appModel) updateAddSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kinds := model.Kinds()
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "up", "k":
		if m.kindIdx > 0 {
			m.kindIdx--
		}
		return m, nil
	case "down", "j":
		if m.kindIdx < len(kinds)-1 {
			m.kindIdx++
		}
		return m, nil
	case "enter":
		m.modal = modalAddSectionTitle
		m.input = newFormInput("", m.width)
		return m, m.input.Focus()
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm == confirmQuit {
		switch msg.String() {
		case "y":
			m.stopWatch()
			return m, tea.Quit
		case "s":
			m.quitAfterSave = true
			m.closeModal()
			return m, m.save()
		case "n", "esc":
			m.closeModal()
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "y", "enter":
		kind := m.confirm
		id := m.confirmID
		path := m.confirmPath
		m.closeModal()
		switch kind {
		case confirmDeleteSection:
			cmd := m.apply(edit.RemoveSection{SectionID: id})
			m.clampCursors()
			return m, cmd
		case confirmDeleteEntry:
			s := m.currentSection()
			if s == nil {
				return m, nil
			}
			cmd := m.apply(edit.RemoveEntry{SectionID: s.ID, EntryID: id})
			m.clampCursors()
			return m, cmd
		case confirmDeleteAll:
			cmd := m.apply(edit.ReplaceProject{Project: model.DefaultProject(), What: "delete all"})
			m.sectionIdx = 0
			m.entryIdx = 0
			m.focus = paneSections
			return m, cmd
		case confirmLoadDemo:
			cmd := m.apply(edit.ReplaceProject{Project: model.DemoProject(), What: "load demo"})
			m.sectionIdx = 0
			m.entryIdx = 0
			m.focus = paneSections
			return m, cmd
		case confirmOpenDiscard:
			return m, m.openProject(path)
		case confirmOverwrite:
			m.stopWatch()
			m.path = path
			m.loadRenderOptions()
			return m, m.save()
		}
		return m, nil
	case "n", "esc":
		m.closeModal()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab":
		m.openFocusInput = !m.openFocusInput
		if m.openFocusInput {
			return m, m.input.Focus()
		}
		m.input.Blur()
		return m, nil
	case "enter":
		var path string
		if m.openFocusInput {
			path = strings.TrimSpace(m.input.Value())
		} else if m.recentIdx < len(m.recent) {
			path = m.recent[m.recentIdx].Path
		}
		if path == "" {
			return m, m.flashError("pick a recent project or type a path")
		}
		if m.dirty {
			m.closeModal()
			m.modal = modalConfirm
			m.confirm = confirmOpenDiscard
			m.confirmPath = path
			return m, nil
		}
		m.closeModal()
		return m, m.openProject(path)
	}

	if !m.openFocusInput {
		switch msg.String() {
		case "up", "k":
			if m.recentIdx > 0 {
				m.recentIdx--
			}
			return m, nil
		case "down", "j":
			if m.recentIdx < len(m.recent)-1 {
				m.recentIdx++
			}
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

var exportFormats = []struct {
	format string
	label  string
}{
	{"tex", "LaTeX (.tex)"},
	{"docx", "Word (.docx)"},
	{"pdf", "PDF (.pdf)"},
}

func (m appModel) updateExport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "up", "k":
		if m.exportIdx > 0 {
			m.exportIdx--
		}
		return m, nil
	case "down", "j":
		if m.exportIdx < len(exportFormats)-1 {
			m.exportIdx++
		}
		return m, nil
	case "enter":
		f := exportFormats[m.exportIdx]
		m.closeModal()
		return m, tea.Batch(
			m.flashInfo("writing "+f.label+"…"),
			m.exportCmd(f.format),
		)
	}
	return m, nil
}

func (m appModel) updateSpell(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.closeModal()
		return m, nil
	case "up", "k":
		if m.spellIdx > 0 {
			m.spellIdx--
		}
		return m, nil
	case "down", "j":
		if m.spellIdx < len(m.findings)-1 {
			m.spellIdx++
		}
		return m, nil
	case "r":
		if m.checker == nil {
			return m, nil
		}
		return m, m.spellScanCmd()
	case "i":
		if m.spellIdx >= len(m.findings) {
			return m, nil
		}
		word := m.findings[m.spellIdx].Word
		next := store.NormalizeIgnoreWords(append(
			append([]string(nil), m.project.IgnoreWords...), word,
		))
		cmd := m.apply(edit.SetIgnoreWords{Words: next})
		if cmd != nil {
			return m, cmd
		}
		kept := m.findings[:0:0]
		for _, f := range m.findings {
			if !strings.EqualFold(f.Word, word) {
				kept = append(kept, f)
			}
		}
		m.findings = kept
		if m.spellIdx >= len(kept) && m.spellIdx > 0 {
			m.spellIdx = len(kept) - 1
		}
		return m, m.flashInfo("ignoring \"" + word + "\" everywhere")
	case "w":
		m.closeModal()
		m.ignoreIdx = 0
		m.input = newFormInput("", m.width)
		m.modal = modalIgnoreWords
		return m, m.input.Focus()
	}
	return m, nil
}

func (m appModel) updateIgnoreWords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "up":
		if m.ignoreIdx > 0 {
			m.ignoreIdx--
		}
		return m, nil
	case "down":
		if m.ignoreIdx < len(m.project.IgnoreWords)-1 {
			m.ignoreIdx++
		}
		return m, nil
	case "ctrl+d":
		words := m.project.IgnoreWords
		if m.ignoreIdx >= len(words) {
			return m, nil
		}
		next := append([]string(nil), words[:m.ignoreIdx]...)
		next = append(next, words[m.ignoreIdx+1:]...)
		cmd := m.apply(edit.SetIgnoreWords{Words: next})
		if m.ignoreIdx >= len(next) && m.ignoreIdx > 0 {
			m.ignoreIdx--
		}
		return m, cmd
	case "enter":
		added := strings.Fields(m.input.Value())
		if len(added) == 0 {
			return m, nil
		}
		next := store.NormalizeIgnoreWords(append(
			append([]string(nil), m.project.IgnoreWords...), added...,
		))
		cmd := m.apply(edit.SetIgnoreWords{Words: next})
		m.input.SetValue("")
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.closeModal()
		return m, nil
	case "up", "k":
		if m.settingsIdx > 0 {
			m.settingsIdx--
		}
		return m, nil
	case "down", "j":
		if m.settingsIdx < 1 {
			m.settingsIdx++
		}
		return m, nil
	case "enter", " ", "left", "right":
		switch m.settingsIdx {
		case 0:
			m.settings.SpellcheckEnabled = !m.settings.SpellcheckEnabled
		case 1:
			switch m.settings.GlamourStyle {
			case "":
				m.settings.GlamourStyle = "light"
			case "light":
				m.settings.GlamourStyle = "dark"
			default:
				m.settings.GlamourStyle = ""
			}
		}
		if err := m.store.SaveSettings(context.Background(), m.settings); err != nil {
			m.log.Warn().Err(err).Msg("save settings")
			return m, m.flashError("settings not saved: " + err.Error())
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	topics := docs.Topics()

	if m.helpBody == "" {
		switch msg.String() {
		case "esc", "q":
			m.closeModal()
			return m, nil
		case "up", "k":
			if m.helpIdx > 0 {
				m.helpIdx--
			}
			return m, nil
		case "down", "j":
			if m.helpIdx < len(topics)-1 {
				m.helpIdx++
			}
			return m, nil
		case "enter":
			if m.helpIdx >= len(topics) {
				return m, nil
			}
			body, ok := docs.Get(topics[m.helpIdx])
			if !ok {
				return m, m.flashError("help topic missing: " + topics[m.helpIdx])
			}
			m.helpBody = renderMarkdown(body, modalBodyWidth(m.width)-2, m.settings.GlamourStyle)
			m.helpOff = 0
			return m, nil
		}
		return m, nil
	}

	lines := strings.Count(m.helpBody, "\n") + 1
	page := m.helpPageSize()
	switch msg.String() {
	case "esc":
		m.helpBody = ""
		m.helpOff = 0
		return m, nil
	case "q":
		m.closeModal()
		return m, nil
	case "up", "k":
		m.helpOff = max(0, m.helpOff-1)
	case "down", "j":
		m.helpOff = min(max(0, lines-page), m.helpOff+1)
	case "pgup", "ctrl+u":
		m.helpOff = max(0, m.helpOff-page)
	case "pgdown", "ctrl+d", " ":
		m.helpOff = min(max(0, lines-page), m.helpOff+page)
	case "home":
		m.helpOff = 0
	}
	return m, nil
}

func (m appModel) updateReload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "enter", "y":
		m.closeModal()
		return m, m.reloadProject()
	case "esc", "n":
		m.closeModal()
		return m, m.flashInfo("keeping in-memory version")
	}
	return m, nil
}

// writeHelpDocs drops the help topics as markdown files under the config
// dir, once per run, so they are readable outside the TUI too.
func (m *appModel) writeHelpDocs() tea.Cmd {
	if m.helpWrote {
		return nil
	}
	m.helpWrote = true
	dir, err := m.store.Dir()
	if err != nil {
		return nil
	}
	if _, err := docs.WriteAll(filepath.Join(dir, "docs")); err != nil {
		m.log.Warn().Err(err).Msg("write help docs")
	}
	return nil
}

func (m *appModel) scrollPreview(delta int) {
	lines := strings.Count(m.previewText(), "\n") + 1
	m.previewOff = min(max(0, lines-1), max(0, m.previewOff+delta))
}

func (m appModel) previewPageSize() int {
	h := m.height - 4
	if h < 1 {
		return 1
	}
	return h
}

func (m appModel) helpPageSize() int {
	h := m.height - 8
	if h < 1 {
		return 1
	}
	return h
}
