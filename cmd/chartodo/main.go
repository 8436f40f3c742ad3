package main

import (
	"os"
	"strings"

	"chartodo/internal/cli"
)

var kindPrefixes = []struct{ prefix, cmd string }{
	{"deadline-", "deadline"},
	{"dl-", "deadline"},
	{"repeating-", "repeating"},
	{"rp-", "repeating"},
}

// splitKindVerb maps `dl-a` to ("deadline", "a").
func splitKindVerb(s string) (string, string, bool) {
	for _, p := range kindPrefixes {
		if verb, ok := strings.CutPrefix(s, p.prefix); ok && verb != "" {
			return p.cmd, verb, true
		}
	}
	return "", "", false
}

func rewriteKindShorthandArgs(argv []string) []string {
	// Convenience: `chartodo dl-a ...` works like `chartodo deadline a ...`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
	// Persistent flags may come first, so look for the first positional token.
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":     true,
		"--backend": true,
		"--format":  true,
		"--color":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		kind, verb, ok := splitKindVerb(a)
		if !ok {
			return argv
		}
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, kind, verb)
		out = append(out, argv[i+1:]...)
		return out
	}

	return argv
}

func main() {
	os.Args = rewriteKindShorthandArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
