package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"resumeforge/internal/docs"
	"resumeforge/internal/model"
)

const markupHint = "markup: **bold** *italic* __underline__ ~~strike~~ [fg=#rrggbb]..[/fg] [bg=#rrggbb]..[/bg]"

func (m appModel) renderModal() string {
	switch m.modal {
	case modalHeader, modalEntry:
		return m.form.view(m.width)
	case modalBullets:
		return m.renderBulletsModal()
	case modalSectionTitle:
		return m.renderInputModal("Rename section", markupHint)
	case modalAddSection:
		return m.renderAddSectionModal()
	case modalAddSectionTitle:
		return m.renderInputModal("Section title", markupHint)
	case modalConfirm:
		return m.renderConfirmModal()
	case modalSaveAs:
		return m.renderInputModal("Save as", "path for the project .json")
	case modalOpen:
		return m.renderOpenModal()
	case modalExport:
		return m.renderExportModal()
	case modalSpell:
		return m.renderSpellModal()
	case modalIgnoreWords:
		return m.renderIgnoreModal()
	case modalSettings:
		return m.renderSettingsModal()
	case modalHelp:
		return m.renderHelpModal()
	case modalReload:
		return m.renderReloadModal()
	}
	return ""
}

func modalHints(s string) string {
	return styleMuted().Render(s)
}

func (f *entryForm) view(width int) string {
	var b strings.Builder
	for i := range f.fields {
		focused := i == f.focus && !f.bodyFocused()
		marker := "  "
		if focused {
			marker = "▸ "
		}
		label := padRight(f.fields[i].def.Label, 16)

		var val string
		if f.fields[i].options != nil {
			val = "◂ " + f.fields[i].value() + " ▸"
			if focused {
				val = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(val)
			}
		} else {
			val = f.fields[i].input.View()
		}
		b.WriteString(marker + styleMuted().Render(label) + val + "\n")
	}

	if f.hasBody {
		focused := f.bodyFocused()
		marker := "  "
		if focused {
			marker = "▸ "
		}
		label := f.kind.BodyLabel()
		b.WriteString("\n" + marker + styleMuted().Render(label) + "\n")
		b.WriteString(f.body.View() + "\n")
		b.WriteString(modalHints(markupHint) + "\n")
	}

	hints := "enter save · tab next · esc cancel"
	if f.hasBody {
		hints = "ctrl+s save · tab next · esc cancel"
	}
	if !f.bodyFocused() && f.fields[f.focus].options != nil {
		hints = "←/→ choose · " + hints
	}
	b.WriteString("\n" + modalHints(hints))

	return renderModalBox(width, f.title, b.String())
}

func (m appModel) renderInputModal(title, note string) string {
	var b strings.Builder
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(modalHints(note) + "\n")
	b.WriteString(modalHints("enter ok · esc cancel"))
	return renderModalBox(m.width, title, b.String())
}

var kindBlurbs = map[model.SectionKind]string{
	model.KindEducation:  "school, degree, dates",
	model.KindExperience: "role, organization, bullet points",
	model.KindProjects:   "title, tech stack, bullet points",
	model.KindSkills:     "label: value lines",
	model.KindCustom:     "title, dates, free-form body",
}

func (m appModel) renderAddSectionModal() string {
	kinds := model.Kinds()
	var b strings.Builder
	for i, k := range kinds {
		label := padRight(string(k), 12)
		blurb := styleMuted().Render(kindBlurbs[k])
		if i == m.kindIdx {
			b.WriteString("▸ " + m.selectedRowStyle(true).Render(label) + " " + blurb)
		} else {
			b.WriteString("  " + label + " " + blurb)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + modalHints("enter choose · esc cancel"))
	return renderModalBox(m.width, "Add section", b.String())
}

func (m appModel) renderBulletsModal() string {
	b := m.bullets
	sec := m.project.FindSection(b.sectionID)
	if sec == nil {
		return ""
	}
	e := sec.FindEntry(b.entryID)
	if e == nil {
		return ""
	}

	title := "Bullets · " + sec.Kind.EntrySummary(*e)
	var out strings.Builder
	if len(e.Bullets) == 0 {
		out.WriteString(styleMuted().Render("(no bullets · a to add)") + "\n")
	} else {
		start, end := listWindow(len(e.Bullets), b.idx, 10)
		for i := start; i < end; i++ {
			text := model.PlainText(e.Bullets[i])
			if strings.TrimSpace(text) == "" {
				text = "(empty)"
			}
			if i == b.idx {
				out.WriteString("▸ • " + m.selectedRowStyle(!b.editing).Render(text) + "\n")
			} else {
				out.WriteString("  • " + text + "\n")
			}
		}
	}

	if b.editing {
		out.WriteString("\n" + b.input.View() + "\n")
		out.WriteString(modalHints(markupHint) + "\n")
		out.WriteString("\n" + modalHints("enter save bullet · esc stop editing"))
	} else {
		out.WriteString("\n" + modalHints("enter edit · a add · d delete · J/K move · esc close"))
	}
	return renderModalBox(m.width, title, out.String())
}

func (m appModel) renderConfirmModal() string {
	var title, body, hints string
	switch m.confirm {
	case confirmDeleteSection:
		title = "Delete section"
		label := m.confirmID
		if s := m.project.FindSection(m.confirmID); s != nil {
			label = s.DisplayTitle()
		}
		body = "Delete \"" + label + "\" and all of its entries?"
		hints = "y delete · esc cancel"
	case confirmDeleteEntry:
		title = "Delete entry"
		label := ""
		if s := m.currentSection(); s != nil {
			if e := s.FindEntry(m.confirmID); e != nil {
				label = s.Kind.EntrySummary(*e)
			}
		}
		if strings.TrimSpace(label) == "" {
			label = "this entry"
		}
		body = "Delete \"" + label + "\"?"
		hints = "y delete · esc cancel"
	case confirmDeleteAll:
		title = "Start over"
		body = "Replace everything with a blank resume? Undo can bring it back."
		hints = "y replace · esc cancel"
	case confirmLoadDemo:
		title = "Load demo"
		body = "Replace the current resume with the demo content? Undo can bring it back."
		hints = "y load · esc cancel"
	case confirmQuit:
		title = "Unsaved changes"
		body = "The project has unsaved edits."
		hints = "s save and quit · y quit without saving · esc stay"
	case confirmOpenDiscard:
		title = "Unsaved changes"
		body = "Open " + m.confirmPath + " and discard the current edits?"
		hints = "y open · esc cancel"
	case confirmOverwrite:
		title = "Overwrite file"
		body = m.confirmPath + " already exists.\nReplace it with the current project?"
		hints = "y overwrite · esc cancel"
	}
	return renderModalBox(m.width, title, body+"\n\n"+modalHints(hints))
}

func (m appModel) renderOpenModal() string {
	var b strings.Builder
	if len(m.recent) == 0 {
		b.WriteString(styleMuted().Render("(no recent projects)") + "\n")
	} else {
		for i, r := range m.recent {
			label := r.Path
			when := styleMuted().Render("  " + r.OpenedAt.Local().Format("2006-01-02 15:04"))
			if i == m.recentIdx && !m.openFocusInput {
				b.WriteString("▸ " + m.selectedRowStyle(true).Render(label) + when + "\n")
			} else {
				b.WriteString("  " + label + when + "\n")
			}
		}
	}
	b.WriteString("\n" + styleMuted().Render("path: ") + m.input.View() + "\n")
	b.WriteString("\n" + modalHints("enter open · tab list/path · esc cancel"))
	return renderModalBox(m.width, "Open project", b.String())
}

func (m appModel) renderExportModal() string {
	var b strings.Builder
	for i, f := range exportFormats {
		if i == m.exportIdx {
			b.WriteString("▸ " + m.selectedRowStyle(true).Render(f.label) + "\n")
		} else {
			b.WriteString("  " + f.label + "\n")
		}
	}
	b.WriteString("\n" + styleMuted().Render("writes "+m.exportBase()+".<ext>") + "\n")
	b.WriteString("\n" + modalHints("enter export · esc cancel"))
	return renderModalBox(m.width, "Export", b.String())
}

func (m appModel) renderSpellModal() string {
	var b strings.Builder
	switch {
	case m.spellErr != "":
		b.WriteString(m.spellErr + "\n")
		b.WriteString("\n" + modalHints("esc close"))
	case m.spellBusy:
		b.WriteString("checking…\n")
		b.WriteString("\n" + modalHints("esc close"))
	case len(m.findings) == 0:
		b.WriteString("no misspellings found\n")
		b.WriteString("\n" + modalHints("r recheck · w ignore list · esc close"))
	default:
		b.WriteString(strconv.Itoa(len(m.findings)) + " flagged\n\n")
		start, end := listWindow(len(m.findings), m.spellIdx, 10)
		for i := start; i < end; i++ {
			f := m.findings[i]
			loc := styleMuted().Render(f.Loc + ": ")
			sugg := ""
			if len(f.Suggestions) > 0 {
				sugg = styleMuted().Render(" → " + strings.Join(f.Suggestions, ", "))
			}
			if i == m.spellIdx {
				b.WriteString("▸ " + loc + m.selectedRowStyle(true).Render(f.Word) + sugg + "\n")
			} else {
				b.WriteString("  " + loc + f.Word + sugg + "\n")
			}
		}
		b.WriteString("\n" + modalHints("i ignore everywhere · w ignore list · r recheck · esc close"))
	}
	return renderModalBox(m.width, "Spellcheck", b.String())
}

func (m appModel) renderIgnoreModal() string {
	words := m.project.IgnoreWords
	var b strings.Builder
	if len(words) == 0 {
		b.WriteString(styleMuted().Render("(no ignored words)") + "\n")
	} else {
		start, end := listWindow(len(words), m.ignoreIdx, 10)
		for i := start; i < end; i++ {
			if i == m.ignoreIdx {
				b.WriteString("▸ " + m.selectedRowStyle(true).Render(words[i]) + "\n")
			} else {
				b.WriteString("  " + words[i] + "\n")
			}
		}
	}
	b.WriteString("\n" + styleMuted().Render("add: ") + m.input.View() + "\n")
	b.WriteString(modalHints("space-separated, stored lowercase with the project") + "\n")
	b.WriteString("\n" + modalHints("enter add · ctrl+d remove selected · ↑/↓ select · esc close"))
	return renderModalBox(m.width, "Ignored words", b.String())
}

func (m appModel) renderSettingsModal() string {
	spellVal := "off"
	if m.settings.SpellcheckEnabled {
		spellVal = "on"
	}
	styleVal := m.settings.GlamourStyle
	if styleVal == "" {
		styleVal = "auto"
	}
	rows := []struct{ label, val string }{
		{"Spellcheck", spellVal},
		{"Help style", styleVal},
	}

	var b strings.Builder
	for i, r := range rows {
		label := padRight(r.label, 14)
		if i == m.settingsIdx {
			b.WriteString("▸ " + m.selectedRowStyle(true).Render(label) + " " + r.val + "\n")
		} else {
			b.WriteString("  " + label + " " + r.val + "\n")
		}
	}
	b.WriteString("\n" + modalHints("enter toggle · esc close"))
	return renderModalBox(m.width, "Settings", b.String())
}

func (m appModel) renderHelpModal() string {
	if m.helpBody == "" {
		topics := docs.Topics()
		var b strings.Builder
		for i, t := range topics {
			if i == m.helpIdx {
				b.WriteString("▸ " + m.selectedRowStyle(true).Render(t) + "\n")
			} else {
				b.WriteString("  " + t + "\n")
			}
		}
		b.WriteString("\n" + modalHints("enter read · esc close"))
		return renderModalBox(m.width, "Help", b.String())
	}

	lines := strings.Split(m.helpBody, "\n")
	page := m.helpPageSize()
	off := m.helpOff
	if off > len(lines)-1 {
		off = len(lines) - 1
	}
	if off < 0 {
		off = 0
	}
	end := off + page
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines[off:end], "\n"))
	b.WriteString("\n\n" + modalHints("j/k scroll · esc back · q close"))
	return renderModalBox(m.width, "Help", b.String())
}

func (m appModel) renderReloadModal() string {
	body := m.path + " changed on disk.\nReload it and drop any unsaved edits?"
	return renderModalBox(m.width, "File changed", body+"\n\n"+modalHints("r reload · esc keep editing"))
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
