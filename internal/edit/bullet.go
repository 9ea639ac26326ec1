package edit

import (
	"strconv"

	"resumeforge/internal/model"
)

func findBulletOwner(p *model.Project, sectionID, entryID string) (*model.Entry, error) {
	sec := p.FindSection(sectionID)
	if sec == nil {
		return nil, NotFoundError{Kind: "section", ID: sectionID}
	}
	e := sec.FindEntry(entryID)
	if e == nil {
		return nil, NotFoundError{Kind: "entry", ID: entryID}
	}
	return e, nil
}

// AddBullet inserts a bullet line at Index (clamped to the end).
type AddBullet struct {
	SectionID string
	EntryID   string
	Index     int
	Runs      []model.Run
}

func (c AddBullet) Name() string { return "add bullet" }

func (c AddBullet) Apply(p *model.Project) (Command, error) {
	e, err := findBulletOwner(p, c.SectionID, c.EntryID)
	if err != nil {
		return nil, err
	}
	idx := clampIndex(c.Index, len(e.Bullets))
	e.Bullets = append(e.Bullets, nil)
	copy(e.Bullets[idx+1:], e.Bullets[idx:])
	e.Bullets[idx] = model.Bullet(model.CloneRuns(c.Runs))
	return RemoveBullet{SectionID: c.SectionID, EntryID: c.EntryID, Index: idx}, nil
}

// RemoveBullet deletes the bullet line at Index.
type RemoveBullet struct {
	SectionID string
	EntryID   string
	Index     int
}

func (c RemoveBullet) Name() string { return "delete bullet" }

func (c RemoveBullet) Apply(p *model.Project) (Command, error) {
	e, err := findBulletOwner(p, c.SectionID, c.EntryID)
	if err != nil {
		return nil, err
	}
	if c.Index < 0 || c.Index >= len(e.Bullets) {
		return nil, BadIndexError{Kind: "bullet", Index: c.Index, Len: len(e.Bullets)}
	}
	removed := model.CloneRuns(e.Bullets[c.Index])
	e.Bullets = append(e.Bullets[:c.Index], e.Bullets[c.Index+1:]...)
	return AddBullet{SectionID: c.SectionID, EntryID: c.EntryID, Index: c.Index, Runs: removed}, nil
}

// MoveBullet moves the bullet at From so it ends up at index To (clamped).
type MoveBullet struct {
	SectionID string
	EntryID   string
	From      int
	To        int
}

func (c MoveBullet) Name() string { return "move bullet" }

func (c MoveBullet) Apply(p *model.Project) (Command, error) {
	e, err := findBulletOwner(p, c.SectionID, c.EntryID)
	if err != nil {
		return nil, err
	}
	if c.From < 0 || c.From >= len(e.Bullets) {
		return nil, BadIndexError{Kind: "bullet", Index: c.From, Len: len(e.Bullets)}
	}
	to := clampIndex(c.To, len(e.Bullets)-1)
	if to != c.From {
		b := e.Bullets[c.From]
		rest := append(e.Bullets[:c.From], e.Bullets[c.From+1:]...)
		rest = append(rest, nil)
		copy(rest[to+1:], rest[to:])
		rest[to] = b
		e.Bullets = rest
	}
	return MoveBullet{SectionID: c.SectionID, EntryID: c.EntryID, From: to, To: c.From}, nil
}

// SetBullet replaces the runs of the bullet line at Index.
type SetBullet struct {
	SectionID string
	EntryID   string
	Index     int
	Runs      []model.Run
}

func (c SetBullet) Name() string { return "edit bullet" }

func (c SetBullet) coalesceKey() string {
	return "bullet/" + c.SectionID + "/" + c.EntryID + "/" + strconv.Itoa(c.Index)
}

func (c SetBullet) Apply(p *model.Project) (Command, error) {
	e, err := findBulletOwner(p, c.SectionID, c.EntryID)
	if err != nil {
		return nil, err
	}
	if c.Index < 0 || c.Index >= len(e.Bullets) {
		return nil, BadIndexError{Kind: "bullet", Index: c.Index, Len: len(e.Bullets)}
	}
	inv := SetBullet{SectionID: c.SectionID, EntryID: c.EntryID, Index: c.Index, Runs: e.Bullets[c.Index]}
	e.Bullets[c.Index] = model.Bullet(model.CloneRuns(c.Runs))
	return inv, nil
}
