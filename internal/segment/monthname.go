package segment

import (
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"

	"datefield/internal/bounds"
)

// MonthName is the month selector rendered for MMM and MMMM tokens. Its text
// is the selected month number.
type MonthName struct {
	token    string
	names    []string
	text     string
	rng      bounds.Range
	required bool
}

func NewMonthName(token string, names []string, required bool) MonthName {
	if len(names) != 12 {
		names = make([]string, 12)
		for i := range names {
			names[i] = time.Month(i + 1).String()
		}
	}
	return MonthName{token: token, names: names, rng: bounds.Range{Min: 1, Max: 12}, required: required}
}

func (MonthName) Kind() Kind             { return KindMonthName }
func (m MonthName) Token() string        { return m.token }
func (m MonthName) Text() string         { return m.text }
func (m MonthName) Bounds() bounds.Range { return m.rng }
func (m MonthName) MaxLength() int       { return 0 }

func (m MonthName) WithText(text string) Segment      { m.text = text; return m }
func (m MonthName) WithBounds(r bounds.Range) Segment { m.rng = r; return m }

func (m MonthName) month() (int, bool) {
	n, err := strconv.Atoi(m.text)
	return n, err == nil && n >= 1 && n <= 12
}

func (m MonthName) Valid() bool {
	if m.text == "" {
		return !m.required
	}
	n, ok := m.month()
	return ok && m.rng.Contains(n)
}

func (m MonthName) Display() string {
	if n, ok := m.month(); ok {
		return m.names[n-1]
	}
	return ""
}

// Option is one entry of the selector.
type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// Options lists all twelve months; those outside bounds are disabled.
func (m MonthName) Options() []Option {
	out := make([]Option, 12)
	for i, name := range m.names {
		out[i] = Option{Value: strconv.Itoa(i + 1), Label: name, Disabled: !m.rng.Contains(i + 1)}
	}
	return out
}

// Accept maps typed text to a month number: a numeric month, a prefix of a
// localized name, or an English month name. Unknown text selects nothing.
func (m MonthName) Accept(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if n, err := datetime.ParseNumericMonth(text); err == nil {
		return strconv.Itoa(int(n))
	}
	lc := strings.ToLower(text)
	for i, name := range m.names {
		if strings.HasPrefix(strings.ToLower(name), lc) {
			return strconv.Itoa(i + 1)
		}
	}
	if n, err := datetime.ParseMonth(text); err == nil {
		return strconv.Itoa(int(n))
	}
	return ""
}

// Step cycles through the months allowed by bounds.
func (m MonthName) Step(delta int) Segment {
	n, ok := m.month()
	switch {
	case !ok && delta >= 0:
		n = m.rng.Min
	case !ok:
		n = m.rng.Max
	case m.rng.Max < m.rng.Min:
		n = m.rng.Min
	default:
		span := m.rng.Max - m.rng.Min + 1
		n = m.rng.Min + ((n-m.rng.Min+delta)%span+span)%span
	}
	m.text = strconv.Itoa(n)
	return m
}
