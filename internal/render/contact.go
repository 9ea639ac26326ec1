package render

import (
	"regexp"
	"strings"

	"resumeforge/internal/model"
)

// ContactLink is one item on the contact line. Href is empty for plain
// items like the phone number.
type ContactLink struct {
	Text string
	Href string
}

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// NormalizeHref prefixes https:// onto bare host links, leaving anything
// that already carries a scheme alone.
func NormalizeHref(url string) string {
	u := strings.TrimSpace(url)
	if u == "" {
		return ""
	}
	if schemeRe.MatchString(u) {
		return u
	}
	return "https://" + u
}

// ContactItems builds the contact line in fixed order: phone, email, then
// each link slot unless its kind is "none" or its URL is empty. Display
// text falls back to the URL with the scheme stripped.
func ContactItems(h *model.Header) []ContactLink {
	var out []ContactLink

	if phone := strings.TrimSpace(h.Phone); phone != "" {
		out = append(out, ContactLink{Text: phone})
	}
	if email := strings.TrimSpace(h.Email); email != "" {
		out = append(out, ContactLink{Text: email, Href: "mailto:" + email})
	}
	if model.LinkEnabled(h.LinkedinKind) {
		if href := NormalizeHref(h.Linkedin); href != "" {
			out = append(out, ContactLink{Text: displayURL(href, h.LinkedinDisplay), Href: href})
		}
	}
	if model.LinkEnabled(h.GithubKind) {
		if href := NormalizeHref(h.Github); href != "" {
			out = append(out, ContactLink{Text: displayURL(href, h.GithubDisplay), Href: href})
		}
	}
	return out
}

func displayURL(href, override string) string {
	if o := strings.TrimSpace(override); o != "" {
		return o
	}
	s := strings.ReplaceAll(href, "https://", "")
	return strings.ReplaceAll(s, "http://", "")
}
