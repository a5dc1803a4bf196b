// Package pattern turns a locale or an explicit format string into the
// ordered layout of segments and dividers a date input renders.
package pattern

import (
	"fmt"
	"strings"
)

// Field is the date component a token run stands for.
type Field rune

const (
	FieldNone  Field = 0
	FieldYear  Field = 'y'
	FieldMonth Field = 'M'
	FieldDay   Field = 'd'
)

// Maximum run lengths; y is unbounded.
const (
	maxDayToken   = 2
	maxMonthToken = 4
)

// FormatError reports a token the renderer cannot honor.
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported token: %s", e.Token)
}

// Element is one run of a layout: either literal text or a segment token.
type Element struct {
	Literal string `json:"literal,omitempty"`
	Token   string `json:"token,omitempty"`
	Field   Field  `json:"-"`
}

func (e Element) IsSegment() bool { return e.Field != FieldNone }

// MonthName reports whether a month token asks for a name selector (MMM/MMMM).
func (e Element) MonthName() bool { return e.Field == FieldMonth && len(e.Token) > 2 }

// ShortMonthName reports the MMM form.
func (e Element) ShortMonthName() bool { return e.Field == FieldMonth && len(e.Token) == 3 }

// ZeroPadded reports a two-letter day or month token.
func (e Element) ZeroPadded() bool {
	return (e.Field == FieldDay || e.Field == FieldMonth) && len(e.Token) == 2
}

// Parse splits a pattern into literal and token runs. Token runs are maximal
// runs of one of y, M or d. Unless allowRepeat is set, a second run of an
// already used field is kept as literal text.
func Parse(pattern string, allowRepeat bool) ([]Element, error) {
	var out []Element
	used := map[Field]bool{}
	var lit strings.Builder

	flushLiteral := func() {
		if lit.Len() == 0 {
			return
		}
		// Merge with a preceding literal (a demoted duplicate token).
		if n := len(out); n > 0 && !out[n-1].IsSegment() {
			out[n-1].Literal += lit.String()
		} else {
			out = append(out, Element{Literal: lit.String()})
		}
		lit.Reset()
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		f := Field(runes[i])
		if f != FieldYear && f != FieldMonth && f != FieldDay {
			lit.WriteRune(runes[i])
			i++
			continue
		}
		n := 1
		for i+n < len(runes) && runes[i+n] == runes[i] {
			n++
		}
		token := string(runes[i : i+n])
		i += n

		if !allowRepeat && used[f] {
			lit.WriteString(token)
			continue
		}
		switch {
		case f == FieldDay && n > maxDayToken:
			return nil, &FormatError{Token: token}
		case f == FieldMonth && n > maxMonthToken:
			return nil, &FormatError{Token: token}
		}
		flushLiteral()
		out = append(out, Element{Token: token, Field: f})
		used[f] = true
	}
	flushLiteral()
	return out, nil
}

// Divider returns the first character of pattern that is not an ASCII letter
// or digit.
func Divider(pattern string) (string, bool) {
	for _, r := range pattern {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			continue
		default:
			return string(r), true
		}
	}
	return "", false
}
