package edit

import "resumeforge/internal/model"

// AddEntry inserts an entry into a section at Index (clamped to the end).
type AddEntry struct {
	SectionID string
	Entry     model.Entry
	Index     int
}

func (c AddEntry) Name() string { return "add entry" }

func (c AddEntry) Apply(p *model.Project) (Command, error) {
	sec := p.FindSection(c.SectionID)
	if sec == nil {
		return nil, NotFoundError{Kind: "section", ID: c.SectionID}
	}
	idx := clampIndex(c.Index, len(sec.Entries))
	e := c.Entry.Clone()
	sec.Entries = append(sec.Entries, model.Entry{})
	copy(sec.Entries[idx+1:], sec.Entries[idx:])
	sec.Entries[idx] = e
	return RemoveEntry{SectionID: c.SectionID, EntryID: e.ID}, nil
}

// RemoveEntry deletes an entry (and its bullets, which it owns).
type RemoveEntry struct {
	SectionID string
	EntryID   string
}

func (c RemoveEntry) Name() string { return "delete entry" }

func (c RemoveEntry) Apply(p *model.Project) (Command, error) {
	sec := p.FindSection(c.SectionID)
	if sec == nil {
		return nil, NotFoundError{Kind: "section", ID: c.SectionID}
	}
	idx := sec.EntryIndex(c.EntryID)
	if idx < 0 {
		return nil, NotFoundError{Kind: "entry", ID: c.EntryID}
	}
	removed := sec.Entries[idx].Clone()
	sec.Entries = append(sec.Entries[:idx], sec.Entries[idx+1:]...)
	return AddEntry{SectionID: c.SectionID, Entry: removed, Index: idx}, nil
}

// MoveEntry moves an entry so it ends up at index To (clamped).
type MoveEntry struct {
	SectionID string
	EntryID   string
	To        int
}

func (c MoveEntry) Name() string { return "move entry" }

func (c MoveEntry) Apply(p *model.Project) (Command, error) {
	sec := p.FindSection(c.SectionID)
	if sec == nil {
		return nil, NotFoundError{Kind: "section", ID: c.SectionID}
	}
	from := sec.EntryIndex(c.EntryID)
	if from < 0 {
		return nil, NotFoundError{Kind: "entry", ID: c.EntryID}
	}
	to := clampIndex(c.To, len(sec.Entries)-1)
	if to != from {
		e := sec.Entries[from]
		rest := append(sec.Entries[:from], sec.Entries[from+1:]...)
		rest = append(rest, model.Entry{})
		copy(rest[to+1:], rest[to:])
		rest[to] = e
		sec.Entries = rest
	}
	return MoveEntry{SectionID: c.SectionID, EntryID: c.EntryID, To: from}, nil
}

// SetEntryField sets one plain field of an entry by key.
type SetEntryField struct {
	SectionID string
	EntryID   string
	Field     string
	Value     string
}

func (c SetEntryField) Name() string { return "edit entry" }

func (c SetEntryField) coalesceKey() string {
	return "field/" + c.SectionID + "/" + c.EntryID + "/" + c.Field
}

func (c SetEntryField) Apply(p *model.Project) (Command, error) {
	sec := p.FindSection(c.SectionID)
	if sec == nil {
		return nil, NotFoundError{Kind: "section", ID: c.SectionID}
	}
	e := sec.FindEntry(c.EntryID)
	if e == nil {
		return nil, NotFoundError{Kind: "entry", ID: c.EntryID}
	}
	inv := SetEntryField{SectionID: c.SectionID, EntryID: c.EntryID, Field: c.Field, Value: e.Field(c.Field)}
	e.SetField(c.Field, c.Value)
	return inv, nil
}

// SetEntryBody replaces an entry's rich body line.
type SetEntryBody struct {
	SectionID string
	EntryID   string
	Runs      []model.Run
}

func (c SetEntryBody) Name() string { return "edit entry" }

func (c SetEntryBody) coalesceKey() string {
	return "body/" + c.SectionID + "/" + c.EntryID
}

func (c SetEntryBody) Apply(p *model.Project) (Command, error) {
	sec := p.FindSection(c.SectionID)
	if sec == nil {
		return nil, NotFoundError{Kind: "section", ID: c.SectionID}
	}
	e := sec.FindEntry(c.EntryID)
	if e == nil {
		return nil, NotFoundError{Kind: "entry", ID: c.EntryID}
	}
	inv := SetEntryBody{SectionID: c.SectionID, EntryID: c.EntryID, Runs: e.Body}
	e.Body = model.CloneRuns(c.Runs)
	return inv, nil
}
