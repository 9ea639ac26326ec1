package richtext

import (
	"reflect"
	"testing"

	"resumeforge/internal/model"
)

func TestParseBasic(t *testing.T) {
	tests := []struct {
		in   string
		want []model.Run
	}{
		{"plain", []model.Run{{Text: "plain"}}},
		{"**bold**", []model.Run{{Text: "bold", Bold: true}}},
		{"*it*", []model.Run{{Text: "it", Italic: true}}},
		{"__u__", []model.Run{{Text: "u", Underline: true}}},
		{"~~s~~", []model.Run{{Text: "s", Strike: true}}},
		{
			"a **b** c",
			[]model.Run{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}},
		},
		{
			"**bold *both***",
			[]model.Run{{Text: "bold ", Bold: true}, {Text: "both", Bold: true, Italic: true}},
		},
		{
			"[fg=#ff0000]red[/fg] plain",
			[]model.Run{{Text: "red", Color: "#ff0000"}, {Text: " plain"}},
		},
		{
			"[bg=#FFFF00]hi[/bg]",
			[]model.Run{{Text: "hi", Highlight: "#ffff00"}},
		},
		// Unterminated markers style to end of line.
		{"**runs on", []model.Run{{Text: "runs on", Bold: true}}},
		// Escapes.
		{`\*literal\*`, []model.Run{{Text: "*literal*"}}},
		{`2 \*\* 3`, []model.Run{{Text: "2 ** 3"}}},
		// Bad color tag is literal text.
		{"[fg=red]x", []model.Run{{Text: "[fg=red]x"}}},
		{"", nil},
	}
	for _, tt := range tests {
		got := Parse(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	tests := [][]model.Run{
		{{Text: "plain"}},
		{{Text: "bold", Bold: true}},
		{{Text: "a "}, {Text: "b", Bold: true, Italic: true}, {Text: " c", Underline: true}},
		{{Text: "strike", Strike: true}, {Text: " after"}},
		{{Text: "red", Color: "#ff0000"}, {Text: "on yellow", Highlight: "#ffff00"}},
		{{Text: "snake_case and star * here"}},
		{{Text: `back\slash`}},
		{{Text: "every", Bold: true, Italic: true, Underline: true, Strike: true, Color: "#123abc", Highlight: "#abc123"}},
	}
	for _, runs := range tests {
		m := Render(runs)
		got := Parse(m)
		if !reflect.DeepEqual(got, Normalize(runs)) {
			t.Fatalf("round trip %+v -> %q -> %+v", runs, m, got)
		}
	}
}

func TestRenderDropsInvalidColor(t *testing.T) {
	runs := []model.Run{{Text: "x", Color: "tomato"}}
	if got := Render(runs); got != "x" {
		t.Fatalf("Render = %q, want %q", got, "x")
	}
}

func TestNormalizeMergesAdjacent(t *testing.T) {
	runs := []model.Run{
		{Text: "a", Bold: true},
		{Text: "b", Bold: true},
		{Text: ""},
		{Text: "c"},
	}
	want := []model.Run{{Text: "ab", Bold: true}, {Text: "c"}}
	if got := Normalize(runs); !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %+v", got)
	}
}
