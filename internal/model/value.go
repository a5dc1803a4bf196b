package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MaxYear is the last year a date input accepts when no max date is given.
const MaxYear = 275760

// MinDate is the floor used when no min date is supplied.
func MinDate() time.Time { return time.Date(1, time.January, 1, 0, 0, 0, 0, time.Local) }

// MaxDate is the ceiling used when no max date is supplied.
func MaxDate() time.Time { return time.Date(MaxYear, time.September, 13, 0, 0, 0, 0, time.Local) }

// Value is a date handed in by a collaborator. A range-capable caller sets
// both ends; only From is ever decomposed into segments.
type Value struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to,omitempty"`
}

// Single wraps one date.
func Single(t time.Time) Value { return Value{From: &t} }

// Pair wraps a two-ended value.
func Pair(from, to time.Time) Value { return Value{From: &from, To: &to} }

func (v Value) IsZero() bool { return v.From == nil }

// InvalidValueError reports an external value that is not a date.
type InvalidValueError struct {
	Input string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid date: %q", e.Input)
}

var (
	reYearOnly  = regexp.MustCompile(`^(\d{1,6})$`)
	reYearMonth = regexp.MustCompile(`^(\d{1,6})-(\d{2})$`)
	reDateOnly  = regexp.MustCompile(`^(\d{1,6})-(\d{2})-(\d{2})$`)
	reLocalTime = regexp.MustCompile(`^(\d{1,6})-(\d{2})-(\d{2})[ T](\d{2}):(\d{2})(?::(\d{2}))?$`)
)

// ParseDate parses a date-like string:
// - YYYY, YYYY-MM, YYYY-MM-DD (local midnight)
// - YYYY-MM-DDTHH:MM[:SS] (local wall clock)
// - RFC3339 / RFC3339Nano (absolute)
func ParseDate(s string) (time.Time, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &InvalidValueError{Input: raw}
	}

	atoi := func(parts []string) []int {
		out := make([]int, len(parts))
		for i, p := range parts {
			out[i], _ = strconv.Atoi(p)
		}
		return out
	}
	local := func(y, mo, d, h, mi, sec int) (time.Time, error) {
		if mo < 1 || mo > 12 || d < 1 || d > 31 || h > 23 || mi > 59 || sec > 59 {
			return time.Time{}, &InvalidValueError{Input: raw}
		}
		t := time.Date(y, time.Month(mo), d, h, mi, sec, 0, time.Local)
		if t.Day() != d {
			// Rolled over (e.g. Feb 30).
			return time.Time{}, &InvalidValueError{Input: raw}
		}
		return t, nil
	}

	if m := reYearOnly.FindStringSubmatch(s); m != nil {
		n := atoi(m[1:])
		return local(n[0], 1, 1, 0, 0, 0)
	}
	if m := reYearMonth.FindStringSubmatch(s); m != nil {
		n := atoi(m[1:])
		return local(n[0], n[1], 1, 0, 0, 0)
	}
	if m := reDateOnly.FindStringSubmatch(s); m != nil {
		n := atoi(m[1:])
		return local(n[0], n[1], n[2], 0, 0, 0)
	}
	if m := reLocalTime.FindStringSubmatch(s); m != nil {
		n := atoi(m[1:])
		return local(n[0], n[1], n[2], n[3], n[4], n[5])
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts.Local(), nil
	}
	return time.Time{}, &InvalidValueError{Input: raw}
}

// ParseValue parses a single date or a "from..to" pair. An empty string is the
// absent value.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, nil
	}
	if from, to, ok := strings.Cut(s, ".."); ok {
		f, err := ParseDate(from)
		if err != nil {
			return Value{}, err
		}
		t, err := ParseDate(to)
		if err != nil {
			return Value{}, err
		}
		return Pair(f, t), nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return Value{}, err
	}
	return Single(t), nil
}
