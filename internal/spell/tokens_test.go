package spell

import (
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	got := Tokens("don't v2.0 C")
	want := []Token{
		{Text: "don't", Start: 0, End: 5},
		{Text: "v", Start: 6, End: 7},
		{Text: "C", Start: 11, End: 12},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %#v, want %#v", got, want)
	}

	if got := Tokens(""); got != nil {
		t.Fatalf("tokens of empty string = %#v, want nil", got)
	}
	if got := Tokens("123 !?"); got != nil {
		t.Fatalf("tokens without letters = %#v, want nil", got)
	}
}

func TestNormalizeWord(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"(Go)", "Go"},
		{`"quoted"`, "quoted"},
		{"'tis'", "tis"},
		{"don't", "don't"},
		{"—dash—", "dash"},
		{"[bracket].", "bracket"},
		{"trail,;", "trail"},
		{"  pad  ", "pad"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeWord(c.in); got != c.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsCandidate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"jake@su.edu", false},
		{"http", false},
		{"https", false},
		{"httpserver", false},
		{"www", false},
		{"wwwdev", false},
		{"Hypertext", true},
		{"v2", false},
		{"B2B", false},
		{"AWS", false},
		{"NASA", false},
		{"I", false},
		{"NOSQL", true},
		{"IOs", true},
		{"Go", true},
		{"don't", true},
		{"''", false},
		{"--", false},
	}
	for _, c := range cases {
		if got := IsCandidate(c.in); got != c.want {
			t.Errorf("IsCandidate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
