// Package bounds computes the numeric range each date segment may hold, given
// the values of its sibling segments and the caller's min/max dates.
//
// A limit only narrows a segment when it falls in the exact period currently
// selected: a max date in a later month never constrains the day of an
// earlier month.
package bounds

import (
	"time"

	"cloudeng.io/datetime"

	"datefield/internal/model"
)

// Range is an inclusive numeric range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Contains(n int) bool { return n >= r.Min && n <= r.Max }

// Clamp pulls n into the range.
func (r Range) Clamp(n int) int {
	if n < r.Min {
		return r.Min
	}
	if n > r.Max {
		return r.Max
	}
	return n
}

// Day bounds the day of month. month and year are the currently selected
// values, nil when not (yet) known. An unknown month allows 31 days; a known
// month with an unknown year is measured in a leap year so Feb 29 stays typeable.
func Day(minDate, maxDate *time.Time, month, year *int) Range {
	r := Range{Min: 1, Max: 31}
	if month != nil && *month >= 1 && *month <= 12 {
		y := 2000
		if year != nil {
			y = *year
		}
		r.Max = int(datetime.DaysInMonth(y, datetime.Month(*month)))
	}
	if sameMonth(maxDate, month, year) && maxDate.Day() < r.Max {
		r.Max = maxDate.Day()
	}
	if sameMonth(minDate, month, year) && minDate.Day() > r.Min {
		r.Min = minDate.Day()
	}
	return r
}

// Month bounds the month number given the selected year.
func Month(minDate, maxDate *time.Time, year *int) Range {
	r := Range{Min: 1, Max: 12}
	if sameYear(maxDate, year) && int(maxDate.Month()) < r.Max {
		r.Max = int(maxDate.Month())
	}
	if sameYear(minDate, year) && int(minDate.Month()) > r.Min {
		r.Min = int(minDate.Month())
	}
	return r
}

// Year bounds the year.
func Year(minDate, maxDate *time.Time) Range {
	r := Range{Min: 1, Max: model.MaxYear}
	if maxDate != nil {
		r.Max = maxDate.Year()
	}
	if minDate != nil && minDate.Year() > r.Min {
		r.Min = minDate.Year()
	}
	return r
}

func sameYear(limit *time.Time, year *int) bool {
	return limit != nil && year != nil && limit.Year() == *year
}

func sameMonth(limit *time.Time, month, year *int) bool {
	return sameYear(limit, year) && month != nil && int(limit.Month()) == *month
}
