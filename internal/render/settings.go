package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OptionsFileName is looked up next to the project file.
const OptionsFileName = "render.yaml"

// Options tune the exporters. The LaTeX writer (and so the Word document
// produced from it) honors paper, margins, base size, and rule color; the
// PDF writer honors all fields. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// Paper is "letter" or "a4".
	Paper string `yaml:"paper"`
	// MarginPt is the page margin on all four sides, in points.
	MarginPt float64 `yaml:"margin_pt"`
	// BaseFont is "times", "helvetica", or "courier". LaTeX keeps the
	// template's font regardless.
	BaseFont string `yaml:"base_font"`
	// BaseSizePt is the body text size; headings scale from it.
	BaseSizePt float64 `yaml:"base_size_pt"`
	// NameSizePt is the header name size.
	NameSizePt float64 `yaml:"name_size_pt"`
	// RuleColor is the section underline color, hex "#rrggbb".
	RuleColor string `yaml:"rule_color"`
}

func DefaultOptions() Options {
	return Options{
		Paper:      "letter",
		MarginPt:   36,
		BaseFont:   "times",
		BaseSizePt: 10.5,
		NameSizePt: 22,
		RuleColor:  "#000000",
	}
}

// LoadOptions reads render.yaml from dir, returning defaults when the file
// does not exist. Unset fields fall back to their defaults.
func LoadOptions(dir string) (Options, error) {
	return loadOptionsFile(filepath.Join(dir, OptionsFileName))
}

// LoadOptionsFor resolves settings for one project: a render.yaml next to
// the project file wins over the one in the config dir.
func LoadOptionsFor(projectPath, configDir string) (Options, error) {
	if p := strings.TrimSpace(projectPath); p != "" {
		side := filepath.Join(filepath.Dir(p), OptionsFileName)
		if _, err := os.Stat(side); err == nil {
			return loadOptionsFile(side)
		}
	}
	if configDir != "" {
		return LoadOptions(configDir)
	}
	return DefaultOptions(), nil
}

func loadOptionsFile(path string) (Options, error) {
	opt := DefaultOptions()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opt, nil
	}
	if err != nil {
		return opt, errors.Wrapf(err, "read %s", OptionsFileName)
	}
	var in Options
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return opt, errors.Wrapf(err, "parse %s", OptionsFileName)
	}
	if v := strings.ToLower(strings.TrimSpace(in.Paper)); v != "" {
		opt.Paper = v
	}
	if in.MarginPt > 0 {
		opt.MarginPt = in.MarginPt
	}
	if v := strings.ToLower(strings.TrimSpace(in.BaseFont)); v != "" {
		opt.BaseFont = v
	}
	if in.BaseSizePt > 0 {
		opt.BaseSizePt = in.BaseSizePt
	}
	if in.NameSizePt > 0 {
		opt.NameSizePt = in.NameSizePt
	}
	if _, _, _, ok := hexToRGB(in.RuleColor); ok {
		opt.RuleColor = in.RuleColor
	}
	return opt, nil
}

// fontFamily maps a configured face onto the PDF core font families the
// way the exports have always done it: anything mono goes to Courier,
// anything sans to Helvetica, everything else to Times.
func fontFamily(face string) string {
	f := strings.ToLower(strings.TrimSpace(face))
	switch {
	case strings.Contains(f, "courier") || strings.Contains(f, "mono"):
		return "Courier"
	case strings.Contains(f, "arial") || strings.Contains(f, "helvetica") || strings.Contains(f, "sans"):
		return "Helvetica"
	default:
		return "Times"
	}
}

func paperSize(paper string) string {
	if strings.EqualFold(strings.TrimSpace(paper), "a4") {
		return "A4"
	}
	return "Letter"
}
