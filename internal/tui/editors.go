package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resumeforge/internal/edit"
	"resumeforge/internal/model"
	"resumeforge/internal/richtext"
)

// formField is one line of an entry/header form: either a free-text input or
// an option spinner (link kinds).
type formField struct {
	def     model.Field
	input   textinput.Model
	options []string
	optIdx  int
}

func (f *formField) value() string {
	if f.options != nil {
		return f.options[f.optIdx]
	}
	return f.input.Value()
}

func (f *formField) cycle(delta int) {
	if f.options == nil {
		return
	}
	n := len(f.options)
	f.optIdx = ((f.optIdx+delta)%n + n) % n
}

type formAction int

const (
	formNone formAction = iota
	formCommit
	formCancel
)

// entryForm edits the header's plain fields or one entry's fields, plus the
// body line for kinds that carry one. Styled-text fields (bullets) have their
// own editor.
type entryForm struct {
	title     string
	isHeader  bool
	creating  bool
	sectionID string
	insertAt  int
	entryID   string
	kind      model.SectionKind

	fields   []formField
	seeds    []string
	body     textarea.Model
	hasBody  bool
	seedBody string

	// focus indexes fields; len(fields) is the body when hasBody.
	focus int
}

func newFormInput(v string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	ti.SetValue(v)
	if w := modalBodyWidth(width) - 18; w > 10 {
		ti.Width = w
	}
	return ti
}

func indexOfFold(opts []string, v string) int {
	for i, o := range opts {
		if strings.EqualFold(o, v) {
			return i
		}
	}
	return -1
}

func newHeaderForm(h model.Header, width int) *entryForm {
	f := &entryForm{title: "Header", isHeader: true}
	for _, fd := range model.HeaderFields() {
		ff := formField{def: fd}
		v := h.HeaderField(fd.Key)
		switch fd.Key {
		case "linkedin_kind", "github_kind":
			slot := 1
			if fd.Key == "github_kind" {
				slot = 2
			}
			opts := model.LinkKindOptions(slot)
			if i := indexOfFold(opts, v); i >= 0 {
				ff.options = opts
				ff.optIdx = i
			} else {
				// Preserve a value the picker doesn't know rather than
				// silently rewriting it.
				ff.options = append([]string{v}, opts...)
			}
		default:
			ff.input = newFormInput(v, width)
		}
		f.fields = append(f.fields, ff)
		f.seeds = append(f.seeds, ff.value())
	}
	f.focusField(0)
	return f
}

// newEntryForm builds the form for one entry. e == nil starts a create form;
// the entry is only added on commit.
func newEntryForm(s *model.Section, e *model.Entry, insertAt, width int) *entryForm {
	f := &entryForm{
		sectionID: s.ID,
		insertAt:  insertAt,
		kind:      s.Kind,
	}
	if e == nil {
		f.creating = true
		f.title = "Add entry · " + s.DisplayTitle()
	} else {
		f.entryID = e.ID
		f.title = "Edit entry · " + s.DisplayTitle()
	}

	for _, fd := range s.Kind.Fields() {
		v := ""
		if e != nil {
			v = e.Field(fd.Key)
		}
		f.fields = append(f.fields, formField{def: fd, input: newFormInput(v, width)})
		f.seeds = append(f.seeds, v)
	}

	if s.Kind.HasBody() {
		f.hasBody = true
		ta := textarea.New()
		ta.Prompt = ""
		ta.ShowLineNumbers = false
		ta.SetHeight(4)
		if w := modalBodyWidth(width) - 4; w > 10 {
			ta.SetWidth(w)
		}
		if e != nil {
			f.seedBody = richtext.Render(e.Body)
		}
		ta.SetValue(f.seedBody)
		f.body = ta
	}

	f.focusField(0)
	return f
}

func (f *entryForm) fieldCount() int {
	n := len(f.fields)
	if f.hasBody {
		n++
	}
	return n
}

func (f *entryForm) bodyFocused() bool {
	return f.hasBody && f.focus == len(f.fields)
}

func (f *entryForm) focusField(i int) tea.Cmd {
	n := f.fieldCount()
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	if f.hasBody {
		f.body.Blur()
	}
	f.focus = i
	if f.bodyFocused() {
		return f.body.Focus()
	}
	if f.fields[i].options == nil {
		return f.fields[i].input.Focus()
	}
	return nil
}

// update routes one key to the form. The returned action tells the app to
// commit, cancel, or keep going.
func (f *entryForm) update(msg tea.KeyMsg) (formAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return formCancel, nil
	case "ctrl+s":
		return formCommit, nil
	case "tab":
		return formNone, f.focusField(f.focus + 1)
	case "shift+tab":
		return formNone, f.focusField(f.focus - 1)
	case "enter":
		if f.bodyFocused() {
			break // newline
		}
		return formCommit, nil
	case "up":
		if !f.bodyFocused() {
			return formNone, f.focusField(f.focus - 1)
		}
	case "down":
		if !f.bodyFocused() {
			return formNone, f.focusField(f.focus + 1)
		}
	case "left", "right", " ":
		if !f.bodyFocused() && f.fields[f.focus].options != nil {
			d := 1
			if msg.String() == "left" {
				d = -1
			}
			f.fields[f.focus].cycle(d)
			return formNone, nil
		}
	}

	var cmd tea.Cmd
	if f.bodyFocused() {
		f.body, cmd = f.body.Update(msg)
	} else if f.fields[f.focus].options == nil {
		f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	}
	return formNone, cmd
}

// commands diffs the form against its seeds and returns the edits to apply,
// in field order. A create form yields a single AddEntry.
func (f *entryForm) commands(p *model.Project) []edit.Command {
	if f.creating {
		sec := p.FindSection(f.sectionID)
		if sec == nil {
			return nil
		}
		e := model.Entry{ID: sec.NewEntryID()}
		for i := range f.fields {
			if v := f.fields[i].value(); v != "" {
				e.SetField(f.fields[i].def.Key, v)
			}
		}
		if f.hasBody {
			if v := collapseNewlines(f.body.Value()); v != "" {
				e.Body = richtext.Parse(v)
			}
		}
		return []edit.Command{edit.AddEntry{SectionID: f.sectionID, Entry: e, Index: f.insertAt}}
	}

	var cmds []edit.Command
	for i := range f.fields {
		v := f.fields[i].value()
		if v == f.seeds[i] {
			continue
		}
		if f.isHeader {
			cmds = append(cmds, edit.SetHeaderField{Field: f.fields[i].def.Key, Value: v})
		} else {
			cmds = append(cmds, edit.SetEntryField{
				SectionID: f.sectionID,
				EntryID:   f.entryID,
				Field:     f.fields[i].def.Key,
				Value:     v,
			})
		}
	}
	if f.hasBody {
		if v := collapseNewlines(f.body.Value()); v != f.seedBody {
			cmds = append(cmds, edit.SetEntryBody{
				SectionID: f.sectionID,
				EntryID:   f.entryID,
				Runs:      richtext.Parse(v),
			})
		}
	}
	return cmds
}

// collapseNewlines folds textarea line breaks into spaces; body values are a
// single styled line in the document model.
func collapseNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// bulletEditor drives the bullet list modal for one entry.
type bulletEditor struct {
	sectionID string
	entryID   string
	idx       int
	editing   bool
	input     textinput.Model
}

func newBulletEditor(sectionID, entryID string, width int) *bulletEditor {
	return &bulletEditor{
		sectionID: sectionID,
		entryID:   entryID,
		input:     newFormInput("", width),
	}
}

func (b *bulletEditor) startEdit(markup string) tea.Cmd {
	b.editing = true
	b.input.SetValue(markup)
	b.input.CursorEnd()
	return b.input.Focus()
}

func (b *bulletEditor) stopEdit() {
	b.editing = false
	b.input.Blur()
	b.input.SetValue("")
}
