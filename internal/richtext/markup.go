// Package richtext converts between styled runs and the inline markup the
// editors use: **bold**, *italic*, __underline__, ~~strike~~, and
// [fg=#rrggbb]...[/fg] / [bg=#rrggbb]...[/bg] color spans. Backslash escapes
// the next character.
package richtext

import (
	"regexp"
	"strings"

	"resumeforge/internal/model"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Parse converts markup into runs. Markers toggle styles; unterminated
// markers style the rest of the line. Output runs are normalized (no empty
// runs, adjacent same-style runs merged).
func Parse(s string) []model.Run {
	var (
		out  []model.Run
		buf  strings.Builder
		cur  model.Run
		i    int
		size = len(s)
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		r := cur
		r.Text = buf.String()
		out = append(out, r)
		buf.Reset()
	}

	for i < size {
		c := s[i]

		if c == '\\' && i+1 < size {
			buf.WriteByte(s[i+1])
			i += 2
			continue
		}

		if strings.HasPrefix(s[i:], "**") {
			flush()
			cur.Bold = !cur.Bold
			i += 2
			continue
		}
		if strings.HasPrefix(s[i:], "__") {
			flush()
			cur.Underline = !cur.Underline
			i += 2
			continue
		}
		if strings.HasPrefix(s[i:], "~~") {
			flush()
			cur.Strike = !cur.Strike
			i += 2
			continue
		}
		if c == '*' {
			flush()
			cur.Italic = !cur.Italic
			i++
			continue
		}

		if c == '[' {
			if color, n, ok := parseColorOpen(s[i:], "fg"); ok {
				flush()
				cur.Color = color
				i += n
				continue
			}
			if color, n, ok := parseColorOpen(s[i:], "bg"); ok {
				flush()
				cur.Highlight = color
				i += n
				continue
			}
			if strings.HasPrefix(s[i:], "[/fg]") {
				flush()
				cur.Color = ""
				i += 5
				continue
			}
			if strings.HasPrefix(s[i:], "[/bg]") {
				flush()
				cur.Highlight = ""
				i += 5
				continue
			}
		}

		buf.WriteByte(c)
		i++
	}
	flush()
	return Normalize(out)
}

// parseColorOpen matches "[fg=#rrggbb]" (or bg) at the start of s and
// returns the color and consumed length.
func parseColorOpen(s, key string) (string, int, bool) {
	prefix := "[" + key + "="
	if !strings.HasPrefix(s, prefix) {
		return "", 0, false
	}
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return "", 0, false
	}
	color := s[len(prefix):end]
	if !hexColorRe.MatchString(color) {
		return "", 0, false
	}
	return strings.ToLower(color), end + 1, true
}

// Render converts runs back into markup. Each run opens its markers, writes
// escaped text, and closes them, so Parse(Render(runs)) equals
// Normalize(runs).
func Render(runs []model.Run) string {
	var b strings.Builder
	for _, r := range Normalize(runs) {
		var open, closing string
		// Colors that are not #rrggbb cannot be expressed in markup; the
		// text is kept and the color dropped.
		if hexColorRe.MatchString(r.Color) {
			open += "[fg=" + strings.ToLower(r.Color) + "]"
			closing = "[/fg]" + closing
		}
		if hexColorRe.MatchString(r.Highlight) {
			open += "[bg=" + strings.ToLower(r.Highlight) + "]"
			closing = "[/bg]" + closing
		}
		if r.Bold {
			open += "**"
			closing = "**" + closing
		}
		if r.Underline {
			open += "__"
			closing = "__" + closing
		}
		if r.Strike {
			open += "~~"
			closing = "~~" + closing
		}
		if r.Italic {
			open += "*"
			closing = "*" + closing
		}
		b.WriteString(open)
		b.WriteString(escape(r.Text))
		b.WriteString(closing)
	}
	return b.String()
}

func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '*', '~', '[':
			b.WriteByte('\\')
			b.WriteByte(s[i])
		case '_':
			// Only doubled underscores are markup.
			if i+1 < len(s) && s[i+1] == '_' {
				b.WriteByte('\\')
			}
			b.WriteByte('_')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Normalize drops empty runs and merges adjacent runs with equal styling.
func Normalize(runs []model.Run) []model.Run {
	var out []model.Run
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && sameStyle(out[n-1], r) {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

func sameStyle(a, b model.Run) bool {
	return a.Bold == b.Bold &&
		a.Italic == b.Italic &&
		a.Underline == b.Underline &&
		a.Strike == b.Strike &&
		strings.EqualFold(a.Color, b.Color) &&
		strings.EqualFold(a.Highlight, b.Highlight)
}
