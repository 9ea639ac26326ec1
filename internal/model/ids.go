package model

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// randomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func randomID(prefix string) string {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// a fixed suffix so callers still get a usable id.
		return prefix + "-00000000"
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:]))
}

// NewSectionID returns a section id unique within the project.
func (p *Project) NewSectionID() string {
	for {
		id := randomID("sec")
		if p.FindSection(id) == nil {
			return id
		}
	}
}

// NewEntryID returns an entry id unique within the section.
func (s *Section) NewEntryID() string {
	for {
		id := randomID("ent")
		if s.FindEntry(id) == nil {
			return id
		}
	}
}
