package edit

import "resumeforge/internal/model"

// ReplaceProject swaps the whole resume tree (delete-all, demo load). The
// ignore-set is part of the replacement: restoring "everything as it was"
// includes it.
type ReplaceProject struct {
	Project *model.Project
	// What is the undo label: "delete all", "load demo".
	What string
}

func (c ReplaceProject) Name() string {
	if c.What != "" {
		return c.What
	}
	return "replace resume"
}

func (c ReplaceProject) Apply(p *model.Project) (Command, error) {
	prev := p.Clone()
	next := c.Project.Clone()
	*p = *next
	return ReplaceProject{Project: prev, What: c.What}, nil
}
