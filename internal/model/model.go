package model

import "strings"

// Run is a styled span of text inside a bullet, body, or title.
// Tag names match the project wire format (short keys, absent when unset).
type Run struct {
	Text      string `json:"text"`
	Bold      bool   `json:"b,omitempty"`
	Italic    bool   `json:"i,omitempty"`
	Underline bool   `json:"u,omitempty"`
	Strike    bool   `json:"s,omitempty"`
	Color     string `json:"fg,omitempty"` // #rrggbb
	Highlight string `json:"bg,omitempty"` // #rrggbb
}

// Bullet is one bulleted line: an ordered sequence of runs.
type Bullet []Run

type Header struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`

	// Two link slots. Kind is a platform label ("LinkedIn", "GitHub",
	// "Portfolio", ...); "None" disables the slot. Display overrides the
	// URL in rendered output.
	Linkedin        string `json:"linkedin,omitempty"`
	LinkedinDisplay string `json:"linkedin_display,omitempty"`
	LinkedinKind    string `json:"linkedin_kind,omitempty"`
	Github          string `json:"github,omitempty"`
	GithubDisplay   string `json:"github_display,omitempty"`
	GithubKind      string `json:"github_kind,omitempty"`
}

type Entry struct {
	ID string `json:"id"`

	// Plain fields; which ones are meaningful depends on the section kind
	// (see SectionKind.Fields).
	School   string `json:"school,omitempty"`
	Location string `json:"location,omitempty"`
	Degree   string `json:"degree,omitempty"`
	Dates    string `json:"dates,omitempty"`
	Role     string `json:"role,omitempty"`
	Org      string `json:"org,omitempty"`
	Title    string `json:"title,omitempty"`
	Stack    string `json:"stack,omitempty"`
	Label    string `json:"label,omitempty"`

	Body    []Run    `json:"body,omitempty"`
	Bullets []Bullet `json:"bullets,omitempty"`
}

type Section struct {
	ID        string      `json:"id"`
	Kind      SectionKind `json:"kind"`
	Title     string      `json:"title"`
	TitleRuns []Run       `json:"title_runs,omitempty"`
	Entries   []Entry     `json:"entries"`
}

// Project is the unit of save/load: the full resume plus the spellcheck
// ignore-set. IgnoreWords is stored lowercase and sorted on save.
type Project struct {
	Header      Header    `json:"header"`
	Sections    []Section `json:"sections"`
	IgnoreWords []string  `json:"spellcheck_ignore_all,omitempty"`
}

// LinkEnabled reports whether a link slot participates in rendered output.
func LinkEnabled(kind string) bool {
	return !strings.EqualFold(strings.TrimSpace(kind), "none")
}

// PlainText concatenates run text without styling.
func PlainText(runs []Run) string {
	if len(runs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

func CloneRuns(runs []Run) []Run {
	if runs == nil {
		return nil
	}
	out := make([]Run, len(runs))
	copy(out, runs)
	return out
}

func CloneBullets(bullets []Bullet) []Bullet {
	if bullets == nil {
		return nil
	}
	out := make([]Bullet, len(bullets))
	for i, b := range bullets {
		out[i] = Bullet(CloneRuns(b))
	}
	return out
}

func (e Entry) Clone() Entry {
	c := e
	c.Body = CloneRuns(e.Body)
	c.Bullets = CloneBullets(e.Bullets)
	return c
}

func (s Section) Clone() Section {
	c := s
	c.TitleRuns = CloneRuns(s.TitleRuns)
	c.Entries = make([]Entry, len(s.Entries))
	for i, e := range s.Entries {
		c.Entries[i] = e.Clone()
	}
	return c
}

func (p *Project) Clone() *Project {
	c := &Project{Header: p.Header}
	c.Sections = make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		c.Sections[i] = s.Clone()
	}
	if p.IgnoreWords != nil {
		c.IgnoreWords = append([]string(nil), p.IgnoreWords...)
	}
	return c
}

// FindSection returns the section with the given id, or nil.
func (p *Project) FindSection(id string) *Section {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i]
		}
	}
	return nil
}

// SectionIndex returns the position of the section with the given id, or -1.
func (p *Project) SectionIndex(id string) int {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

// FindEntry returns the entry with the given id, or nil.
func (s *Section) FindEntry(id string) *Entry {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			return &s.Entries[i]
		}
	}
	return nil
}

// EntryIndex returns the position of the entry with the given id, or -1.
func (s *Section) EntryIndex(id string) int {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

// DisplayTitle is the section title as shown in lists and rendered output.
func (s *Section) DisplayTitle() string {
	if len(s.TitleRuns) > 0 {
		return PlainText(s.TitleRuns)
	}
	return s.Title
}
