package edit

import "resumeforge/internal/model"

// AddSection inserts a section at Index (clamped to the end).
type AddSection struct {
	Section model.Section
	Index   int
}

func (c AddSection) Name() string { return "add section" }

func (c AddSection) Apply(p *model.Project) (Command, error) {
	idx := clampIndex(c.Index, len(p.Sections))
	sec := c.Section.Clone()
	if sec.Entries == nil {
		sec.Entries = []model.Entry{}
	}
	p.Sections = append(p.Sections, model.Section{})
	copy(p.Sections[idx+1:], p.Sections[idx:])
	p.Sections[idx] = sec
	return RemoveSection{SectionID: sec.ID}, nil
}

// RemoveSection deletes a section and, by ownership, all of its entries and
// their bullets.
type RemoveSection struct {
	SectionID string
}

func (c RemoveSection) Name() string { return "delete section" }

func (c RemoveSection) Apply(p *model.Project) (Command, error) {
	idx := p.SectionIndex(c.SectionID)
	if idx < 0 {
		return nil, NotFoundError{Kind: "section", ID: c.SectionID}
	}
	removed := p.Sections[idx].Clone()
	p.Sections = append(p.Sections[:idx], p.Sections[idx+1:]...)
	return AddSection{Section: removed, Index: idx}, nil
}

// MoveSection moves a section so it ends up at index To (clamped).
type MoveSection struct {
	SectionID string
	To        int
}

func (c MoveSection) Name() string { return "move section" }

func (c MoveSection) Apply(p *model.Project) (Command, error) {
	from := p.SectionIndex(c.SectionID)
	if from < 0 {
		return nil, NotFoundError{Kind: "section", ID: c.SectionID}
	}
	to := clampIndex(c.To, len(p.Sections)-1)
	if to == from {
		return MoveSection{SectionID: c.SectionID, To: from}, nil
	}
	sec := p.Sections[from]
	rest := append(p.Sections[:from], p.Sections[from+1:]...)
	rest = append(rest, model.Section{})
	copy(rest[to+1:], rest[to:])
	rest[to] = sec
	p.Sections = rest
	return MoveSection{SectionID: c.SectionID, To: from}, nil
}

// SetSectionTitle renames a section (plain title plus optional rich runs).
type SetSectionTitle struct {
	SectionID string
	Title     string
	TitleRuns []model.Run
}

func (c SetSectionTitle) Name() string { return "rename section" }

func (c SetSectionTitle) coalesceKey() string { return "title/" + c.SectionID }

func (c SetSectionTitle) Apply(p *model.Project) (Command, error) {
	sec := p.FindSection(c.SectionID)
	if sec == nil {
		return nil, NotFoundError{Kind: "section", ID: c.SectionID}
	}
	inv := SetSectionTitle{SectionID: c.SectionID, Title: sec.Title, TitleRuns: sec.TitleRuns}
	sec.Title = c.Title
	sec.TitleRuns = model.CloneRuns(c.TitleRuns)
	return inv, nil
}
