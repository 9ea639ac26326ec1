package edit

import "resumeforge/internal/model"

// SetIgnoreWords replaces the spellcheck ignore-set. Callers pass the full
// next list (normalized by the store on save); Ignore All and the manager
// dialog both funnel through this so the list edits are undoable.
type SetIgnoreWords struct {
	Words []string
}

func (c SetIgnoreWords) Name() string { return "edit ignored words" }

func (c SetIgnoreWords) Apply(p *model.Project) (Command, error) {
	prev := append([]string(nil), p.IgnoreWords...)
	p.IgnoreWords = append([]string(nil), c.Words...)
	return SetIgnoreWords{Words: prev}, nil
}
