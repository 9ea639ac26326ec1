package edit

import "resumeforge/internal/model"

// historyLimit caps the undo depth; oldest steps fall off.
const historyLimit = 100

// History is the undo/redo log. Do applies a command and pushes its inverse;
// Undo/Redo pop an inverse, apply it, and push the returned command onto the
// opposite stack. Consecutive commands with the same coalesce key share one
// undo step, so rapid typing into a field undoes as a unit.
type History struct {
	undo []step
	redo []step

	// lastKey is the coalesce key of the most recent Do, reset by
	// Undo/Redo/Break.
	lastKey string
}

type step struct {
	inverse Command
	name    string
}

func NewHistory() *History {
	return &History{}
}

// Do applies cmd and records its inverse. The redo stack is cleared.
func (h *History) Do(p *model.Project, cmd Command) error {
	key := ""
	if c, ok := cmd.(coalescer); ok {
		key = c.coalesceKey()
	}

	inv, err := cmd.Apply(p)
	if err != nil {
		return err
	}
	h.redo = nil

	if key != "" && key == h.lastKey && len(h.undo) > 0 {
		// Same field as the previous edit: keep the older inverse so one
		// undo restores the value from before the whole burst.
		return nil
	}
	h.lastKey = key

	h.undo = append(h.undo, step{inverse: inv, name: cmd.Name()})
	if len(h.undo) > historyLimit {
		h.undo = h.undo[len(h.undo)-historyLimit:]
	}
	return nil
}

// Break ends the current coalescing burst; the next Do starts a new undo
// step even if it targets the same field.
func (h *History) Break() {
	h.lastKey = ""
}

// Undo reverts the newest step and returns its name.
func (h *History) Undo(p *model.Project) (string, error) {
	if len(h.undo) == 0 {
		return "", nil
	}
	h.lastKey = ""
	s := h.undo[len(h.undo)-1]
	inv, err := s.inverse.Apply(p)
	if err != nil {
		return "", err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, step{inverse: inv, name: s.name})
	return s.name, nil
}

// Redo re-applies the newest undone step and returns its name.
func (h *History) Redo(p *model.Project) (string, error) {
	if len(h.redo) == 0 {
		return "", nil
	}
	h.lastKey = ""
	s := h.redo[len(h.redo)-1]
	inv, err := s.inverse.Apply(p)
	if err != nil {
		return "", err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, step{inverse: inv, name: s.name})
	return s.name, nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoName is the name of the step Undo would revert ("" when empty).
func (h *History) UndoName() string {
	if len(h.undo) == 0 {
		return ""
	}
	return h.undo[len(h.undo)-1].name
}

// RedoName is the name of the step Redo would re-apply ("" when empty).
func (h *History) RedoName() string {
	if len(h.redo) == 0 {
		return ""
	}
	return h.redo[len(h.redo)-1].name
}

// Reset drops both stacks (project load, delete-all confirm).
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
	h.lastKey = ""
}
