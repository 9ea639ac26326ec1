package render

import (
	"strings"

	"resumeforge/internal/model"
)

const sectionRule = "―"

// Text renders the project as a plain preview: the same layout the exports
// use, without markup. Styled runs flatten to their text.
func Text(p *model.Project) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(p.Header.Name)
	if contact := previewContact(&p.Header); len(contact) > 0 {
		line(strings.Join(contact, " | "))
	}
	line("")

	Walk(p, Visitor{
		BeginSection: func(s *model.Section) {
			line(s.DisplayTitle())
			line(strings.Repeat(sectionRule, 60))
		},
		Entry: func(s *model.Section, e *model.Entry) {
			switch s.Kind {
			case model.KindEducation:
				line(joinCols(e.School, e.Location))
				line(joinCols(e.Degree, e.Dates))
				if len(e.Body) > 0 {
					line("  • " + model.PlainText(e.Body))
				}
				line("")
			case model.KindExperience:
				line(joinCols(e.Role, e.Dates))
				line(joinCols(e.Org, e.Location))
				for _, bl := range e.Bullets {
					line("  • " + model.PlainText(bl))
				}
				line("")
			case model.KindProjects:
				head := e.Title
				if e.Stack != "" {
					head += " | " + e.Stack
				}
				line(joinCols(head, e.Dates))
				for _, bl := range e.Bullets {
					line("  • " + model.PlainText(bl))
				}
				line("")
			case model.KindSkills:
				line(e.Label + ": " + model.PlainText(e.Body))
			default:
				if e.Title != "" {
					line(e.Title)
				}
				if len(e.Body) > 0 {
					line(model.PlainText(e.Body))
				}
				line("")
			}
		},
		EndSection: func(s *model.Section) {
			if s.Kind == model.KindSkills {
				line("")
			}
		},
	})

	return b.String()
}

// previewContact shows display text as typed; unlike the exports it does
// not rewrite URLs into links.
func previewContact(h *model.Header) []string {
	var parts []string
	if h.Phone != "" {
		parts = append(parts, h.Phone)
	}
	if h.Email != "" {
		parts = append(parts, h.Email)
	}
	if model.LinkEnabled(h.LinkedinKind) {
		if t := firstNonEmpty(h.LinkedinDisplay, h.Linkedin); t != "" {
			parts = append(parts, t)
		}
	}
	if model.LinkEnabled(h.GithubKind) {
		if t := firstNonEmpty(h.GithubDisplay, h.Github); t != "" {
			parts = append(parts, t)
		}
	}
	return parts
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func joinCols(left, right string) string {
	if right == "" {
		return left
	}
	return left + "    " + right
}
