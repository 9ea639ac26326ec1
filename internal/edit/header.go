package edit

import "resumeforge/internal/model"

// SetHeaderField sets one contact field by key.
type SetHeaderField struct {
	Field string
	Value string
}

func (c SetHeaderField) Name() string { return "edit header" }

func (c SetHeaderField) coalesceKey() string { return "header/" + c.Field }

func (c SetHeaderField) Apply(p *model.Project) (Command, error) {
	prev := p.Header.HeaderField(c.Field)
	p.Header.SetHeaderField(c.Field, c.Value)
	return SetHeaderField{Field: c.Field, Value: prev}, nil
}
