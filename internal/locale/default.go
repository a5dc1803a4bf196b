package locale

import (
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// Default returns the environment's locale, or en-US when it cannot be read.
func Default() language.Tag {
	if s, err := golocale.GetLocale(); err == nil {
		if tag, err := language.Parse(normalize(s)); err == nil {
			return tag
		}
	}
	return language.AmericanEnglish
}

// Parse reads a BCP-47 tag. POSIX-style names ("de_DE.UTF-8") are accepted;
// an empty string means the environment default.
func Parse(s string) (language.Tag, error) {
	s = normalize(s)
	if s == "" {
		return Default(), nil
	}
	return language.Parse(s)
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}
