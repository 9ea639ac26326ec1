package store

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"resumeforge/internal/model"
)

// normalizeProject turns raw project JSON into a clean model. Loading is
// deliberately lenient: unknown keys are ignored and a number of legacy
// shapes (string bullets, bare run objects, header key aliases, sections as
// an object, a "data" wrapper) are folded into the current model. Only a
// non-object top level or broken JSON is an error.
func normalizeProject(raw []byte) (*model.Project, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, errors.New("expected a JSON object at the top level")
	}

	p := model.DefaultProject()

	applyHeader(&p.Header, root.Get("header"))
	applyHeader(&p.Header, root.Get("data.header"))
	applyHeader(&p.Header, root)

	var sections []model.Section
	if secs := collectSections(root); len(secs) > 0 {
		for _, res := range secs {
			if sec, ok := normalizeSection(res); ok {
				sections = append(sections, sec)
			}
		}
	} else {
		sections = inferStockSections(root)
	}
	if len(sections) > 0 {
		p.Sections = sections
	}

	if v := root.Get("spellcheck_ignore_all"); v.IsArray() {
		var words []string
		v.ForEach(func(_, item gjson.Result) bool {
			if item.Type == gjson.String {
				words = append(words, item.String())
			}
			return true
		})
		p.IgnoreWords = NormalizeIgnoreWords(words)
	}

	assignMissingIDs(p)
	return p, nil
}

var spaceRe = regexp.MustCompile(`\s+`)

// normHeaderKey folds case, underscores, and repeated whitespace so legacy
// header spellings ("LinkedIn URL", "linkedin_display") land on one key.
func normHeaderKey(k string) string {
	s := strings.ToLower(strings.TrimSpace(k))
	s = strings.ReplaceAll(s, "_", " ")
	return spaceRe.ReplaceAllString(s, " ")
}

var headerKeyAliases = map[string]string{
	"name":  "name",
	"phone": "phone",
	"email": "email",

	"linkedin kind":         "linkedin_kind",
	"linkedin type":         "linkedin_kind",
	"linkedin":              "linkedin",
	"linked in":             "linkedin",
	"li":                    "linkedin",
	"li url":                "linkedin",
	"li link":               "linkedin",
	"linkedin url":          "linkedin",
	"linkedin link":         "linkedin",
	"li text":               "linkedin_display",
	"linkedin text":         "linkedin_display",
	"linkedin display":      "linkedin_display",
	"linkedin display text": "linkedin_display",

	"github kind":         "github_kind",
	"github type":         "github_kind",
	"github":              "github",
	"git hub":             "github",
	"gh":                  "github",
	"gh url":              "github",
	"gh link":             "github",
	"github url":          "github",
	"github link":         "github",
	"gh text":             "github_display",
	"github text":         "github_display",
	"github display":      "github_display",
	"github display text": "github_display",
}

func applyHeader(h *model.Header, src gjson.Result) {
	if !src.IsObject() {
		return
	}
	src.ForEach(func(key, value gjson.Result) bool {
		dest, ok := headerKeyAliases[normHeaderKey(key.String())]
		if !ok {
			return true
		}
		switch value.Type {
		case gjson.String, gjson.Number, gjson.True, gjson.False:
			h.SetHeaderField(dest, value.String())
		case gjson.Null:
			h.SetHeaderField(dest, "")
		}
		return true
	})
}

// collectSections finds the section list in its historical homes:
// "sections" (array, or object whose values are sections) and
// "data.sections".
func collectSections(root gjson.Result) []gjson.Result {
	for _, path := range []string{"sections", "data.sections"} {
		v := root.Get(path)
		var out []gjson.Result
		if v.IsArray() {
			out = v.Array()
		} else if v.IsObject() {
			v.ForEach(func(_, item gjson.Result) bool {
				out = append(out, item)
				return true
			})
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// inferStockSections handles files that store sections as top-level keys
// named after the stock ids, either as full section objects or as bare
// entry arrays.
func inferStockSections(root gjson.Result) []model.Section {
	var out []model.Section
	for _, def := range model.DefaultProject().Sections {
		v := root.Get(def.ID)
		switch {
		case v.IsObject():
			if sec, ok := normalizeSection(v); ok {
				out = append(out, sec)
			}
		case v.IsArray():
			sec := def.Clone()
			v.ForEach(func(_, e gjson.Result) bool {
				if entry, ok := normalizeEntry(e, sec.Kind); ok {
					sec.Entries = append(sec.Entries, entry)
				}
				return true
			})
			out = append(out, sec)
		}
	}
	return out
}

func normalizeSection(res gjson.Result) (model.Section, bool) {
	if !res.IsObject() {
		return model.Section{}, false
	}

	sec := model.Section{
		ID:      strings.TrimSpace(res.Get("id").String()),
		Kind:    model.SectionKind(strings.TrimSpace(res.Get("kind").String())),
		Entries: []model.Entry{},
	}

	if title := res.Get("title"); title.IsArray() {
		sec.TitleRuns = coerceRuns(title)
		sec.Title = model.PlainText(sec.TitleRuns)
	} else {
		sec.Title = title.String()
	}
	if tr := res.Get("title_runs"); tr.IsArray() {
		sec.TitleRuns = coerceRuns(tr)
		if sec.Title == "" {
			sec.Title = model.PlainText(sec.TitleRuns)
		}
	}

	// Stock sections may arrive with title or kind stripped; refill from
	// the defaults keyed by id.
	for _, def := range model.DefaultProject().Sections {
		if sec.ID == def.ID {
			if sec.Title == "" {
				sec.Title = def.Title
			}
			if sec.Kind == "" {
				sec.Kind = def.Kind
			}
		}
	}
	if !sec.Kind.Valid() {
		sec.Kind = model.KindCustom
	}

	if entries := res.Get("entries"); entries.IsArray() {
		entries.ForEach(func(_, e gjson.Result) bool {
			if entry, ok := normalizeEntry(e, sec.Kind); ok {
				sec.Entries = append(sec.Entries, entry)
			}
			return true
		})
	}
	return sec, true
}

func normalizeEntry(res gjson.Result, kind model.SectionKind) (model.Entry, bool) {
	if !res.IsObject() {
		return model.Entry{}, false
	}

	e := model.Entry{ID: strings.TrimSpace(res.Get("id").String())}
	for _, key := range []string{"school", "location", "degree", "dates", "role", "org", "title", "stack", "label"} {
		v := res.Get(key)
		switch v.Type {
		case gjson.String, gjson.Number, gjson.True, gjson.False:
			e.SetField(key, v.String())
		}
	}

	switch kind {
	case model.KindEducation:
		e.Body = coerceRuns(res.Get("body"))
	case model.KindExperience, model.KindProjects:
		if b := res.Get("bullets"); b.Exists() {
			e.Bullets = coerceBullets(b)
		} else if body := coerceRuns(res.Get("body")); len(body) > 0 {
			e.Bullets = []model.Bullet{model.Bullet(body)}
		}
	case model.KindSkills:
		// Skills rows historically stored their rich text under "value".
		e.Body = coerceRuns(res.Get("value"))
		if len(e.Body) == 0 {
			e.Body = coerceRuns(res.Get("body"))
		}
	default:
		e.Body = coerceRuns(res.Get("body"))
	}
	return e, true
}

// coerceRuns accepts a run list, a bare run object, a plain string, or a
// list of strings (joined with newlines), per the legacy file shapes.
func coerceRuns(v gjson.Result) []model.Run {
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return nil
	case v.Type == gjson.String:
		return []model.Run{{Text: v.String()}}
	case v.IsObject():
		if v.Get("text").Exists() {
			return []model.Run{runFromObject(v)}
		}
		return nil
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return nil
		}
		allRuns, allStrings := true, true
		for _, item := range items {
			if !(item.IsObject() && item.Get("text").Exists()) {
				allRuns = false
			}
			if item.Type != gjson.String {
				allStrings = false
			}
		}
		if allRuns {
			out := make([]model.Run, 0, len(items))
			for _, item := range items {
				out = append(out, runFromObject(item))
			}
			return out
		}
		if allStrings {
			parts := make([]string, 0, len(items))
			for _, item := range items {
				parts = append(parts, item.String())
			}
			return []model.Run{{Text: strings.Join(parts, "\n")}}
		}
	}
	return nil
}

func coerceBullets(v gjson.Result) []model.Bullet {
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return nil
	case v.Type == gjson.String:
		return []model.Bullet{{model.Run{Text: v.String()}}}
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return nil
		}
		allArrays, allStrings, allObjects := true, true, true
		for _, item := range items {
			if !item.IsArray() {
				allArrays = false
			}
			if item.Type != gjson.String {
				allStrings = false
			}
			if !item.IsObject() {
				allObjects = false
			}
		}
		switch {
		case allArrays:
			out := make([]model.Bullet, 0, len(items))
			for _, item := range items {
				runs := coerceRuns(item)
				if len(runs) == 0 {
					// Keep the line so bullet counts survive.
					runs = []model.Run{{Text: ""}}
				}
				out = append(out, model.Bullet(runs))
			}
			return out
		case allStrings:
			out := make([]model.Bullet, 0, len(items))
			for _, item := range items {
				out = append(out, model.Bullet{model.Run{Text: item.String()}})
			}
			return out
		case allObjects:
			if runs := coerceRuns(v); len(runs) > 0 {
				return []model.Bullet{model.Bullet(runs)}
			}
		}
	}
	return nil
}

func runFromObject(v gjson.Result) model.Run {
	return model.Run{
		Text:      v.Get("text").String(),
		Bold:      v.Get("b").Bool(),
		Italic:    v.Get("i").Bool(),
		Underline: v.Get("u").Bool(),
		Strike:    v.Get("s").Bool(),
		Color:     strings.TrimSpace(v.Get("fg").String()),
		Highlight: strings.TrimSpace(v.Get("bg").String()),
	}
}

// assignMissingIDs fills in absent ids and regenerates duplicates so the
// uniqueness invariant holds after a lenient load.
func assignMissingIDs(p *model.Project) {
	seenSec := map[string]bool{}
	for i := range p.Sections {
		sec := &p.Sections[i]
		if sec.ID == "" || seenSec[sec.ID] {
			sec.ID = p.NewSectionID()
		}
		seenSec[sec.ID] = true

		seenEnt := map[string]bool{}
		for j := range sec.Entries {
			e := &sec.Entries[j]
			if e.ID == "" || seenEnt[e.ID] {
				e.ID = sec.NewEntryID()
			}
			seenEnt[e.ID] = true
		}
	}
}
