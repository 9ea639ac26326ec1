package spell

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"resumeforge/internal/model"
)

// fakeChecker marks exactly the words in unknown as misspelled and records
// every query it receives.
type fakeChecker struct {
	unknown map[string][]string
	queried [][]string
	err     error
}

func (f *fakeChecker) Unknown(_ context.Context, words []string) (map[string][]string, error) {
	f.queried = append(f.queried, append([]string(nil), words...))
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string][]string)
	for _, w := range words {
		if sugg, ok := f.unknown[w]; ok {
			out[w] = sugg
		}
	}
	return out, nil
}

func spellProject() *model.Project {
	return &model.Project{
		Header: model.Header{Name: "Jake Ryan"},
		Sections: []model.Section{
			{
				ID:    "sec_exp",
				Kind:  model.KindExperience,
				Title: "Experience",
				Entries: []model.Entry{
					{
						ID:   "ent_1",
						Role: "Engineer",
						Org:  "Acme",
						Bullets: []model.Bullet{
							{{Text: "Recieved an award for shiping on time"}},
						},
					},
				},
			},
			{
				ID:    "sec_sk",
				Kind:  model.KindSkills,
				Title: "Technical Skills",
				Entries: []model.Entry{
					{
						ID:    "ent_2",
						Label: "Languages",
						Body:  []model.Run{{Text: "Golang, Pyhton"}},
					},
				},
			},
		},
	}
}

func TestScanFindsMisspellings(t *testing.T) {
	fc := &fakeChecker{unknown: map[string][]string{
		"recieved": {"received"},
		"shiping":  {"shipping", "shining"},
		"pyhton":   {"Python"},
	}}

	got, err := Scan(context.Background(), spellProject(), fc)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []Finding{
		{Loc: "Experience / Engineer / bullet 1", Word: "Recieved", Suggestions: []string{"received"}},
		{Loc: "Experience / Engineer / bullet 1", Word: "shiping", Suggestions: []string{"shipping", "shining"}},
		{Loc: "Technical Skills / Languages / Value", Word: "Pyhton", Suggestions: []string{"Python"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("findings = %#v, want %#v", got, want)
	}
	if len(fc.queried) != 1 {
		t.Fatalf("checker called %d times, want 1", len(fc.queried))
	}
}

func TestScanHonorsIgnoreList(t *testing.T) {
	p := spellProject()
	p.IgnoreWords = []string{"pyhton", "golang"}
	fc := &fakeChecker{unknown: map[string][]string{
		"pyhton": {"Python"},
	}}

	got, err := Scan(context.Background(), p, fc)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	for _, f := range got {
		if strings.EqualFold(f.Word, "Pyhton") {
			t.Fatalf("ignored word reported: %#v", f)
		}
	}
	for _, q := range fc.queried[0] {
		if q == "pyhton" || q == "golang" {
			t.Fatalf("ignored word %q sent to checker", q)
		}
	}
}

func TestScanSkipsNonCandidates(t *testing.T) {
	p := &model.Project{
		Sections: []model.Section{
			{
				ID:    "sec_c",
				Kind:  model.KindCustom,
				Title: "Notes",
				Entries: []model.Entry{
					{
						ID:   "ent_1",
						Body: []model.Run{{Text: "Deployed on AWS via https://acme.dev and NASA www tooling v9"}},
					},
				},
			},
		},
	}
	fc := &fakeChecker{}
	if _, err := Scan(context.Background(), p, fc); err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []string{"notes", "deployed", "on", "via", "acme", "dev", "and", "tooling", "v"}
	if !reflect.DeepEqual(fc.queried[0], want) {
		t.Fatalf("queried %v, want %v", fc.queried[0], want)
	}
}

func TestScanDedupesWithinField(t *testing.T) {
	p := &model.Project{
		Sections: []model.Section{
			{
				ID:    "sec_exp",
				Kind:  model.KindExperience,
				Title: "Experience",
				Entries: []model.Entry{
					{
						ID:   "ent_1",
						Role: "Engineer",
						Bullets: []model.Bullet{
							{{Text: "Teh cat chased teh dog"}},
							{{Text: "teh bird watched"}},
						},
					},
				},
			},
		},
	}
	fc := &fakeChecker{unknown: map[string][]string{"teh": {"the"}}}

	got, err := Scan(context.Background(), p, fc)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []Finding{
		{Loc: "Experience / Engineer / bullet 1", Word: "Teh", Suggestions: []string{"the"}},
		{Loc: "Experience / Engineer / bullet 2", Word: "teh", Suggestions: []string{"the"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("findings = %#v, want %#v", got, want)
	}
}

func TestScanCapsSuggestions(t *testing.T) {
	p := &model.Project{Header: model.Header{Name: "blargh"}}
	fc := &fakeChecker{unknown: map[string][]string{
		"blargh": {"Blargh", "blah", "blah", "bog", "bag", "big", "bug", "beg", "bygone", "borough", "burrow"},
	}}

	got, err := Scan(context.Background(), p, fc)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("findings = %#v, want one", got)
	}
	want := []string{"blah", "bog", "bag", "big", "bug", "beg", "bygone", "borough"}
	if !reflect.DeepEqual(got[0].Suggestions, want) {
		t.Fatalf("suggestions = %v, want %v", got[0].Suggestions, want)
	}
}

func TestScanNoCandidatesSkipsChecker(t *testing.T) {
	fc := &fakeChecker{}

	got, err := Scan(context.Background(), &model.Project{}, fc)
	if err != nil || got != nil {
		t.Fatalf("scan empty project = %#v, %v", got, err)
	}

	got, err = Scan(context.Background(), &model.Project{Header: model.Header{Name: "NASA"}}, fc)
	if err != nil || got != nil {
		t.Fatalf("scan acronym-only project = %#v, %v", got, err)
	}
	if len(fc.queried) != 0 {
		t.Fatalf("checker called %d times, want 0", len(fc.queried))
	}
}

func TestScanCheckerError(t *testing.T) {
	fc := &fakeChecker{err: errors.New("dictionary exploded")}

	got, err := Scan(context.Background(), spellProject(), fc)
	if err == nil || !strings.Contains(err.Error(), "dictionary exploded") {
		t.Fatalf("want checker error, got %v", err)
	}
	if got != nil {
		t.Fatalf("findings on error = %#v, want nil", got)
	}
}

func TestScanNilInputs(t *testing.T) {
	if got, err := Scan(context.Background(), nil, &fakeChecker{}); got != nil || err != nil {
		t.Fatalf("nil project = %#v, %v", got, err)
	}
	if got, err := Scan(context.Background(), spellProject(), nil); got != nil || err != nil {
		t.Fatalf("nil checker = %#v, %v", got, err)
	}
}
