// Package edit mutates the resume tree through reversible commands and keeps
// the undo/redo history. Commands return their inverse when performed; the
// history stores inverses only, never the command log itself.
package edit

import "resumeforge/internal/model"

// Command is one reversible edit. Apply mutates the project in place and
// returns the command that undoes it. Commands validate their targets and
// return a typed error without mutating anything when the target is gone.
type Command interface {
	Name() string
	Apply(p *model.Project) (Command, error)
}

// coalescer is implemented by field-level commands whose consecutive
// applications to the same target collapse into one undo step.
type coalescer interface {
	coalesceKey() string
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
