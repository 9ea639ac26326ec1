package main

import (
	"os"
	"strings"

	"resumeforge/internal/cli"
)

var subcommands = map[string]bool{
	"open":       true,
	"export":     true,
	"demo":       true,
	"docs":       true,
	"doctor":     true,
	"recent":     true,
	"help":       true,
	"completion": true,
}

func looksLikeProjectPath(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.HasSuffix(strings.ToLower(s), ".json") {
		return true
	}
	return strings.ContainsAny(s, `/\`)
}

func rewriteDirectOpenArgs(argv []string) []string {
	// Convenience: `resumeforge resume.json` works like `resumeforge open resume.json`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
	// Users may pass persistent flags first (e.g. `resumeforge --debug resume.json`), so we must
	// find the first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config-dir": true,
	}
	boolFlags := map[string]bool{
		"--debug": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Stop flag parsing; next token (if any) is the first positional.
			if i+1 < len(argv) && looksLikeProjectPath(argv[i+1]) && !subcommands[argv[i+1]] {
				out := make([]string, 0, len(argv)+1)
				out = append(out, argv[:i+1]...)
				out = append(out, "open")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			// --flag=value form carries its value with it.
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if subcommands[a] {
			return argv
		}
		if looksLikeProjectPath(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "open")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectOpenArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
