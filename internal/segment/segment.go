// Package segment models the independently editable fields of a date input:
// numeric day, month and year inputs, a month name selector, and the hidden
// control mirroring the canonical value.
//
// Segments are values; every mutator returns an updated copy.
package segment

import (
	"datefield/internal/bounds"
	"datefield/internal/pattern"
)

type Kind string

const (
	KindYear      Kind = "year"
	KindMonth     Kind = "month"
	KindMonthName Kind = "month-name"
	KindDay       Kind = "day"
)

// Segment is one editable field.
type Segment interface {
	Kind() Kind
	Token() string
	// Text is the raw edited text; "" means unset. Month name selectors hold
	// the month number.
	Text() string
	WithText(text string) Segment
	Bounds() bounds.Range
	WithBounds(r bounds.Range) Segment
	// Valid reports whether the text satisfies the segment's own
	// constraints (required, numeric, within bounds).
	Valid() bool
	// Display is what the view shows, with padding or the month name applied.
	Display() string
	// Accept filters typed text down to what the control would let through.
	Accept(text string) string
	// Step moves the value by delta within bounds.
	Step(delta int) Segment
	// MaxLength is the digit count of the current max, 0 for selectors.
	MaxLength() int
}

// Options configure segments built from a layout.
type Options struct {
	ShowLeadingZeros bool
	Required         bool
	// MonthNames returns the twelve month names, January first.
	MonthNames func(short bool) []string
}

// FromElement builds the segment a layout token asks for. It returns false for
// literal elements.
func FromElement(e pattern.Element, opts Options) (Segment, bool) {
	pad := opts.ShowLeadingZeros || e.ZeroPadded()
	switch e.Field {
	case pattern.FieldDay:
		return NewDay(e.Token, pad, opts.Required), true
	case pattern.FieldMonth:
		if e.MonthName() {
			var names []string
			if opts.MonthNames != nil {
				names = opts.MonthNames(e.ShortMonthName())
			}
			return NewMonthName(e.Token, names, opts.Required), true
		}
		return NewMonth(e.Token, pad, opts.Required), true
	case pattern.FieldYear:
		return NewYear(e.Token, opts.Required), true
	default:
		return nil, false
	}
}
