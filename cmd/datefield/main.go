package main

import (
	"os"
	"strings"

	"datefield/internal/cli"
	"datefield/internal/model"
)

var subcommands = map[string]bool{
	"pattern":    true,
	"bounds":     true,
	"decompose":  true,
	"compose":    true,
	"locales":    true,
	"docs":       true,
	"help":       true,
	"completion": true,
}

func isBareValue(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || subcommands[s] {
		return false
	}
	_, err := model.ParseValue(s)
	return err == nil
}

// rewriteBareValueArgs lets `datefield 2017-09-30` mean
// `datefield --value 2017-09-30`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first, so the first positional
// token is searched for, not just argv[1].
func rewriteBareValueArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	// Flags we don't recognize are skipped without skipping a value, so an
	// unknown boolean flag cannot swallow the date.
	valueFlags := map[string]bool{
		"--config":     true,
		"--locale":     true,
		"--pattern":    true,
		"--max-detail": true,
		"--return":     true,
		"--min":        true,
		"--max":        true,
		"--value":      true,
		"--output":     true,
		"-o":           true,
		"--log-file":   true,
	}

	rewrite := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "--value")
		out = append(out, argv[i:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isBareValue(argv[i+1]) {
				out := append([]string{}, argv[:i]...)
				return append(out, "--value", argv[i+1])
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		// First positional token.
		if isBareValue(a) {
			return rewrite(i)
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteBareValueArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
