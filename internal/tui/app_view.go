package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading…"
	}

	top := m.titleBar()
	status := m.statusBar()
	bodyH := m.height - lipgloss.Height(top) - lipgloss.Height(status)
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	if m.modal != modalNone {
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.renderModal())
	} else {
		body = m.renderPanes(bodyH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, body, status)
}

func (m appModel) titleBar() string {
	name := strings.TrimSpace(m.project.Header.Name)
	if name == "" {
		name = "untitled resume"
	}
	path := m.path
	if path == "" {
		path = "(unsaved)"
	}
	dirty := ""
	if m.dirty {
		dirty = " *"
	}

	app := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(" resumeforge ")
	rest := styleMuted().Render(name + "  " + path + dirty)
	return normalizePane(app+rest, m.width, 1)
}

func (m appModel) statusBar() string {
	if m.flash != "" {
		st := lipgloss.NewStyle().Padding(0, 1)
		if m.flashErr {
			st = st.Background(colorFlashErrorBg).Foreground(colorFlashErrorFg).Bold(true)
		} else {
			st = st.Foreground(colorAccent)
		}
		return normalizePane(st.Render(m.flash), m.width, 1)
	}

	hints := "tab panes · enter edit · a add · d delete · J/K move · h header · b bullets · " +
		"u undo · ctrl+s save · e export · p preview · ctrl+k spell · ? help · q quit"
	return normalizePane(" "+styleMuted().Render(hints), m.width, 1)
}

func (m appModel) renderPanes(h int) string {
	w := m.width

	// Narrow terminals get a single pane.
	if w < 60 {
		if m.showPreview {
			return m.previewPane(w, h)
		}
		if m.focus == paneSections {
			return m.sectionsPane(w, h)
		}
		return m.entriesPane(w, h)
	}

	secW := w / 4
	if secW < 20 {
		secW = 20
	}
	if secW > 30 {
		secW = 30
	}
	rest := w - secW

	if m.showPreview {
		entW := rest / 2
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.sectionsPane(secW, h),
			m.entriesPane(entW, h),
			m.previewPane(rest-entW, h),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.sectionsPane(secW, h),
		m.entriesPane(rest, h),
	)
}

// pane wraps content in a bordered box of exactly w x h cells. The border
// brightens on the focused pane.
func (m appModel) renderPane(title, content string, w, h int, active bool) string {
	border := colorPaneBorder
	if active {
		border = colorActiveBorder
	}
	innerW := w - 2
	innerH := h - 2
	head := lipgloss.NewStyle().Bold(true).Render(title)
	body := normalizePane(head+"\n"+content, innerW, innerH)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(body)
}

func (m appModel) selectedRowStyle(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().
			Background(colorSelectedBg).
			Foreground(colorSelectedFg).
			Bold(true)
	}
	return lipgloss.NewStyle().Bold(true)
}

func (m appModel) sectionsPane(w, h int) string {
	active := m.focus == paneSections
	rows := len(m.project.Sections)
	var b strings.Builder

	if rows == 0 {
		b.WriteString(styleMuted().Render("(no sections · a to add)"))
	} else {
		start, end := listWindow(rows, m.sectionIdx, h-3)
		for i := start; i < end; i++ {
			s := m.project.Sections[i]
			label := s.DisplayTitle()
			if label == "" {
				label = "(untitled)"
			}
			count := styleMuted().Render(" " + strconv.Itoa(len(s.Entries)))
			if i == m.sectionIdx {
				b.WriteString("▸ " + m.selectedRowStyle(active).Render(label) + count)
			} else {
				b.WriteString("  " + label + count)
			}
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}
	return m.renderPane("Sections", b.String(), w, h, active)
}

func (m appModel) entriesPane(w, h int) string {
	active := m.focus == paneEntries
	s := m.currentSection()
	if s == nil {
		return m.renderPane("Entries", styleMuted().Render("(no section selected)"), w, h, active)
	}

	title := "Entries · " + s.DisplayTitle()
	var b strings.Builder
	if len(s.Entries) == 0 {
		b.WriteString(styleMuted().Render("(no entries · a to add)"))
	} else {
		start, end := listWindow(len(s.Entries), m.entryIdx, h-3)
		for i := start; i < end; i++ {
			e := s.Entries[i]
			label := s.Kind.EntrySummary(e)
			if strings.TrimSpace(label) == "" {
				label = "(untitled)"
			}
			extra := ""
			if s.Kind.HasBullets() {
				extra = styleMuted().Render(" · " + strconv.Itoa(len(e.Bullets)) + " bullets")
			}
			if i == m.entryIdx {
				b.WriteString("▸ " + m.selectedRowStyle(active).Render(label) + extra)
			} else {
				b.WriteString("  " + label + extra)
			}
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}
	return m.renderPane(title, b.String(), w, h, active)
}

func (m appModel) previewPane(w, h int) string {
	lines := strings.Split(m.previewText(), "\n")
	innerH := h - 3
	if innerH < 1 {
		innerH = 1
	}

	off := m.previewOff
	if off > len(lines)-1 {
		off = len(lines) - 1
	}
	if off < 0 {
		off = 0
	}
	end := off + innerH
	if end > len(lines) {
		end = len(lines)
	}

	title := "Preview"
	if m.previewSrc {
		title = "LaTeX Source"
	}
	if off > 0 {
		title += " · line " + strconv.Itoa(off+1)
	}
	return m.renderPane(title, strings.Join(lines[off:end], "\n"), w, h, false)
}

// listWindow picks the visible slice of a cursor-driven list.
func listWindow(n, idx, size int) (start, end int) {
	if size < 1 {
		size = 1
	}
	if n <= size {
		return 0, n
	}
	start = idx - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}
