package spell

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Aspell is a Checker backed by the system aspell binary, driven through
// its line-oriented pipe protocol (`aspell -a`). aspell is an optional
// external dependency; when it is missing the app keeps running with
// spellcheck disabled.
type Aspell struct {
	path string
}

// NewAspell locates aspell in PATH.
func NewAspell() (*Aspell, error) {
	path, err := exec.LookPath("aspell")
	if err != nil {
		return nil, errors.New("aspell not found in PATH (install aspell and an aspell dictionary to enable spellcheck)")
	}
	return &Aspell{path: path}, nil
}

// Unknown feeds one word per line through `aspell -a` and collects the
// misspelling reports. The first input line enables terse mode so correct
// words produce no output; each word is prefixed with "^" so aspell never
// mistakes it for a pipe command.
func (a *Aspell) Unknown(ctx context.Context, words []string) (map[string][]string, error) {
	out := make(map[string][]string, len(words))
	if len(words) == 0 {
		return out, nil
	}

	var input strings.Builder
	input.WriteString("!\n")
	for _, w := range words {
		input.WriteString("^")
		input.WriteString(w)
		input.WriteString("\n")
	}

	cmd := exec.CommandContext(ctx, a.path, "-a", "--lang=en")
	cmd.Stdin = strings.NewReader(input.String())
	raw, err := cmd.Output()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) && len(exit.Stderr) > 0 {
			return nil, errors.Wrapf(err, "aspell failed: %s", strings.TrimSpace(string(exit.Stderr)))
		}
		return nil, errors.Wrap(err, "aspell failed")
	}

	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		word, sugg, miss := parseAspellLine(sc.Text())
		if !miss {
			continue
		}
		if _, have := out[word]; !have {
			out[word] = sugg
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read aspell output")
	}
	return out, nil
}

// parseAspellLine decodes one protocol line. Misspellings arrive as
// "& original count offset: sugg, sugg, ..." when aspell has suggestions
// and "# original offset" when it has none; everything else (the version
// banner, blank separators, found-word markers) is ignored.
func parseAspellLine(line string) (word string, suggestions []string, misspelled bool) {
	switch {
	case strings.HasPrefix(line, "& "):
		head, tail, hasSugg := strings.Cut(line[2:], ":")
		fields := strings.Fields(head)
		if len(fields) == 0 {
			return "", nil, false
		}
		word = fields[0]
		if hasSugg {
			for _, s := range strings.Split(tail, ",") {
				s = strings.TrimSpace(s)
				if s != "" {
					suggestions = append(suggestions, s)
				}
			}
		}
		return word, suggestions, true
	case strings.HasPrefix(line, "# "):
		fields := strings.Fields(line[2:])
		if len(fields) == 0 {
			return "", nil, false
		}
		return fields[0], nil, true
	}
	return "", nil, false
}
