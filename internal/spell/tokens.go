package spell

import (
	"regexp"
	"strings"
	"unicode"
)

var wordRe = regexp.MustCompile(`[A-Za-z][A-Za-z']*`)

// Token is a word occurrence inside a larger text, with byte offsets into
// the source string.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokens splits s into word tokens. Only runs of letters (with embedded
// apostrophes) count as words; everything else is separator text.
func Tokens(s string) []Token {
	idx := wordRe.FindAllStringIndex(s, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([]Token, 0, len(idx))
	for _, pair := range idx {
		out = append(out, Token{
			Text:  s[pair[0]:pair[1]],
			Start: pair[0],
			End:   pair[1],
		})
	}
	return out
}

const surroundingPunct = `'"-–—()[]{}.,;:!?/\`

// NormalizeWord strips surrounding punctuation and whitespace so that
// quoted or parenthesized words compare like their bare forms.
func NormalizeWord(w string) string {
	return strings.TrimSpace(strings.Trim(w, surroundingPunct))
}

// IsCandidate reports whether w is worth looking up in a dictionary.
// Email addresses, URLs, version strings, and short acronyms are skipped
// so that resume jargon does not drown real typos.
func IsCandidate(w string) bool {
	if w == "" {
		return false
	}
	if strings.Contains(w, "@") {
		return false
	}
	if strings.HasPrefix(w, "http") || strings.HasPrefix(w, "www") {
		return false
	}
	hasAlpha := false
	upperOnly := true
	for _, r := range w {
		if unicode.IsDigit(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasAlpha = true
			if !unicode.IsUpper(r) {
				upperOnly = false
			}
		}
	}
	if upperOnly && hasAlpha && len([]rune(w)) <= 4 {
		return false
	}
	return hasAlpha
}
