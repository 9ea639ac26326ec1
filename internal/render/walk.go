// Package render projects a resume project into its output forms: a plain
// text preview, LaTeX source, and DOCX/PDF artifacts. Every form iterates
// sections, entries, and bullets in stored order, so reordering in the
// editor is reflected identically everywhere.
package render

import (
	"strconv"

	"resumeforge/internal/model"
)

// Default artifact names, next to the project file unless overridden.
const (
	DefaultTeXName  = "resume.tex"
	DefaultDOCXName = "resume.docx"
	DefaultPDFName  = "resume.pdf"
)

// Visitor receives document nodes in render order. Nil funcs are skipped.
type Visitor struct {
	Header       func(h *model.Header)
	BeginSection func(s *model.Section)
	Entry        func(s *model.Section, e *model.Entry)
	Bullet       func(s *model.Section, e *model.Entry, idx int, b model.Bullet)
	EndSection   func(s *model.Section)
}

// Walk drives a Visitor over the project in stored order.
func Walk(p *model.Project, v Visitor) {
	if v.Header != nil {
		v.Header(&p.Header)
	}
	for i := range p.Sections {
		s := &p.Sections[i]
		if v.BeginSection != nil {
			v.BeginSection(s)
		}
		for j := range s.Entries {
			e := &s.Entries[j]
			if v.Entry != nil {
				v.Entry(s, e)
			}
			if v.Bullet != nil {
				for k := range e.Bullets {
					v.Bullet(s, e, k, e.Bullets[k])
				}
			}
		}
		if v.EndSection != nil {
			v.EndSection(s)
		}
	}
}

// FieldText is one user-visible text value with a location label, used by
// spellcheck to walk everything a user typed.
type FieldText struct {
	Loc  string
	Text string
}

// TextFields flattens the project into (location, text) pairs in render
// order: header fields, then per section the title, entry fields, bodies,
// and bullets.
func TextFields(p *model.Project) []FieldText {
	var out []FieldText
	add := func(loc, text string) {
		if text != "" {
			out = append(out, FieldText{Loc: loc, Text: text})
		}
	}

	Walk(p, Visitor{
		Header: func(h *model.Header) {
			for _, f := range model.HeaderFields() {
				add("Header / "+f.Label, h.HeaderField(f.Key))
			}
		},
		BeginSection: func(s *model.Section) {
			add(s.DisplayTitle()+" / title", s.DisplayTitle())
		},
		Entry: func(s *model.Section, e *model.Entry) {
			base := s.DisplayTitle() + " / " + s.Kind.EntrySummary(*e)
			for _, f := range s.Kind.Fields() {
				add(base+" / "+f.Label, e.Field(f.Key))
			}
			add(base+" / "+s.Kind.BodyLabel(), model.PlainText(e.Body))
		},
		Bullet: func(s *model.Section, e *model.Entry, idx int, b model.Bullet) {
			base := s.DisplayTitle() + " / " + s.Kind.EntrySummary(*e)
			add(base+" / bullet "+strconv.Itoa(idx+1), model.PlainText(b))
		},
	})
	return out
}
