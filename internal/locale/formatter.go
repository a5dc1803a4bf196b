// Package locale provides the locale facilities a segmented date input probes:
// numeric date formatting, month names and the environment default locale.
package locale

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Fields selects the date components a formatter prints.
type Fields struct {
	Year  bool
	Month bool
	Day   bool
}

// Formatter formats dates numerically for one locale.
type Formatter interface {
	Format(t time.Time, f Fields) string
}

// numericLayout holds the medium numeric patterns of a locale. Patterns use
// y/yy for the year, M/MM for the month and d/dd for the day; anything else is
// literal.
type numericLayout struct {
	ymd string
	ym  string
}

var layouts = []struct {
	tag    language.Tag
	layout numericLayout
}{
	// First entry is the matcher's fallback.
	{language.AmericanEnglish, numericLayout{ymd: "M/d/y", ym: "M/y"}},
	{language.BritishEnglish, numericLayout{ymd: "dd/MM/y", ym: "MM/y"}},
	{language.MustParse("en-CA"), numericLayout{ymd: "y-MM-dd", ym: "y-MM"}},
	{language.German, numericLayout{ymd: "d.M.y", ym: "M.y"}},
	{language.French, numericLayout{ymd: "dd/MM/y", ym: "MM/y"}},
	{language.Spanish, numericLayout{ymd: "d/M/y", ym: "M/y"}},
	{language.Italian, numericLayout{ymd: "d/M/y", ym: "M/y"}},
	{language.Dutch, numericLayout{ymd: "d-M-y", ym: "M-y"}},
	{language.Polish, numericLayout{ymd: "d.MM.y", ym: "MM.y"}},
	{language.BrazilianPortuguese, numericLayout{ymd: "dd/MM/y", ym: "MM/y"}},
	{language.Swedish, numericLayout{ymd: "y-MM-dd", ym: "y-MM"}},
	{language.Finnish, numericLayout{ymd: "d.M.y", ym: "M.y"}},
	{language.Russian, numericLayout{ymd: "dd.MM.y", ym: "MM.y"}},
	{language.Hungarian, numericLayout{ymd: "y. MM. dd.", ym: "y. MM."}},
	{language.Japanese, numericLayout{ymd: "y/M/d", ym: "y/M"}},
	{language.Chinese, numericLayout{ymd: "y/M/d", ym: "y/M"}},
	{language.Korean, numericLayout{ymd: "y. M. d.", ym: "y. M."}},
}

var layoutMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(layouts))
	for i, l := range layouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// Numeric returns the numeric date formatter best matching tag. Unknown
// locales get the first (en-US) layout.
func Numeric(tag language.Tag) Formatter {
	_, idx, _ := layoutMatcher.Match(tag)
	return patternFormatter{layout: layouts[idx].layout}
}

// PatternFormatter formats with fixed patterns; callers supplying their own
// layout use it to stand in for a locale.
func PatternFormatter(ymd, ym string) Formatter {
	return patternFormatter{layout: numericLayout{ymd: ymd, ym: ym}}
}

type patternFormatter struct {
	layout numericLayout
}

func (p patternFormatter) Format(t time.Time, f Fields) string {
	var pattern string
	switch {
	case f.Year && f.Month && f.Day:
		pattern = p.layout.ymd
	case f.Year && f.Month:
		pattern = p.layout.ym
	case f.Year:
		pattern = "y"
	case f.Month:
		pattern = "M"
	case f.Day:
		pattern = "d"
	default:
		return ""
	}
	return render(pattern, t)
}

func render(pattern string, t time.Time) string {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r != 'y' && r != 'M' && r != 'd' {
			b.WriteRune(r)
			i++
			continue
		}
		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		i += n
		switch r {
		case 'y':
			if n == 2 {
				b.WriteString(pad2(t.Year() % 100))
			} else {
				b.WriteString(strconv.Itoa(t.Year()))
			}
		case 'M':
			b.WriteString(padTo(int(t.Month()), n))
		case 'd':
			b.WriteString(padTo(t.Day(), n))
		}
	}
	return b.String()
}

func padTo(v, n int) string {
	if n >= 2 {
		return pad2(v)
	}
	return strconv.Itoa(v)
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
