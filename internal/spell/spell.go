// Package spell flags misspelled words in a project's editable text. It
// tokenizes the same fields the preview renders, filters out tokens that
// are not dictionary material (URLs, acronyms, version strings), and asks
// a Checker for the rest. Words on the project's ignore list are never
// reported.
package spell

import (
	"context"
	"strings"

	"resumeforge/internal/model"
	"resumeforge/internal/render"
)

// Checker looks up words in a dictionary. Unknown returns an entry for
// every queried word that is NOT in the dictionary, keyed by the word as
// queried, with replacement suggestions as the value. Words the dictionary
// knows are absent from the result.
type Checker interface {
	Unknown(ctx context.Context, words []string) (map[string][]string, error)
}

// Finding is one misspelled word occurrence.
type Finding struct {
	// Loc names the field the word was found in, as produced by the
	// renderer's field walk ("Experience / Data Science Intern / bullet 2").
	Loc string
	// Word is the token as it appears in the document, with surrounding
	// punctuation stripped.
	Word string
	// Suggestions holds up to eight replacement candidates.
	Suggestions []string
}

const maxSuggestions = 8

type occurrence struct {
	loc   string
	word  string
	lower string
}

// Scan checks every editable text field of p and returns the misspelled
// words in document order. Repeated misspellings within one field are
// reported once. A nil checker or an empty project yields no findings.
func Scan(ctx context.Context, p *model.Project, c Checker) ([]Finding, error) {
	if p == nil || c == nil {
		return nil, nil
	}

	ignored := make(map[string]bool, len(p.IgnoreWords))
	for _, w := range p.IgnoreWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			ignored[w] = true
		}
	}

	var occs []occurrence
	var query []string
	queried := make(map[string]bool)
	for _, f := range render.TextFields(p) {
		for _, tok := range Tokens(f.Text) {
			w := NormalizeWord(tok.Text)
			if !IsCandidate(w) {
				continue
			}
			lower := strings.ToLower(w)
			if ignored[lower] {
				continue
			}
			occs = append(occs, occurrence{loc: f.Loc, word: w, lower: lower})
			if !queried[lower] {
				queried[lower] = true
				query = append(query, lower)
			}
		}
	}
	if len(query) == 0 {
		return nil, nil
	}

	unknown, err := c.Unknown(ctx, query)
	if err != nil {
		return nil, err
	}

	var out []Finding
	seen := make(map[string]bool)
	for _, o := range occs {
		sugg, miss := unknown[o.lower]
		if !miss {
			continue
		}
		key := o.loc + "\x00" + o.lower
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Finding{
			Loc:         o.loc,
			Word:        o.word,
			Suggestions: capSuggestions(o.word, sugg),
		})
	}
	return out, nil
}

// capSuggestions drops blanks, the misspelled word itself, and duplicates,
// keeping at most maxSuggestions entries.
func capSuggestions(word string, sugg []string) []string {
	var out []string
	for _, s := range sugg {
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, word) {
			continue
		}
		dup := false
		for _, have := range out {
			if have == s {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		out = append(out, s)
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}
