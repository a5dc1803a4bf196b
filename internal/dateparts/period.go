// Package dateparts converts between a canonical date and the per-segment
// strings a segmented date input edits.
package dateparts

import (
	"time"

	"datefield/internal/model"
)

// Floor returns the first instant of the unit period containing t.
func Floor(t time.Time, unit model.Granularity) time.Time {
	loc := t.Location()
	y := t.Year()
	switch unit {
	case model.Century:
		return time.Date(centuryStart(y), time.January, 1, 0, 0, 0, 0, loc)
	case model.Decade:
		return time.Date(decadeStart(y), time.January, 1, 0, 0, 0, 0, loc)
	case model.Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case model.Month:
		return time.Date(y, t.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

// Ceiling returns the last instant (1ms before the next period) of the unit
// period containing t.
func Ceiling(t time.Time, unit model.Granularity) time.Time {
	start := Floor(t, unit)
	var next time.Time
	switch unit {
	case model.Century:
		next = start.AddDate(100, 0, 0)
	case model.Decade:
		next = start.AddDate(10, 0, 0)
	case model.Year:
		next = start.AddDate(1, 0, 0)
	case model.Month:
		next = start.AddDate(0, 1, 0)
	default:
		next = start.AddDate(0, 0, 1)
	}
	return next.Add(-time.Millisecond)
}

// Clamp raises t to lo when below it and lowers it to hi when above.
func Clamp(t, lo, hi time.Time) time.Time {
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}

// Decades run 2011-2020, centuries 2001-2100.
func decadeStart(y int) int  { return y + (1-y)%10 }
func centuryStart(y int) int { return y + (1-y)%100 }
