package model

import (
	"fmt"
	"strings"
)

// Granularity orders the calendar units, coarsest first.
//
// As a max detail it names the most detailed calendar view a caller exposes
// (century, decade, year or month); Day only ever appears as a value unit.
type Granularity string

const (
	Century Granularity = "century"
	Decade  Granularity = "decade"
	Year    Granularity = "year"
	Month   Granularity = "month"
	Day     Granularity = "day"
)

var granularityOrder = []Granularity{Century, Decade, Year, Month, Day}

func (g Granularity) rank() int {
	for i, v := range granularityOrder {
		if v == g {
			return i
		}
	}
	return -1
}

// Valid reports whether g is one of the known granularities.
func (g Granularity) Valid() bool { return g.rank() >= 0 }

// Finer reports whether g is strictly more detailed than other.
func (g Granularity) Finer(other Granularity) bool { return g.rank() > other.rank() }

// ValueUnit is the period floors and ceilings are computed in for a max detail:
// one step finer than the view itself.
func (g Granularity) ValueUnit() Granularity {
	r := g.rank()
	if r < 0 || r >= len(granularityOrder)-1 {
		return Day
	}
	return granularityOrder[r+1]
}

// ShowsMonth reports whether a month segment is rendered at this max detail.
func (g Granularity) ShowsMonth() bool { return g.rank() >= Year.rank() }

// ShowsDay reports whether a day segment is rendered at this max detail.
func (g Granularity) ShowsDay() bool { return g.rank() >= Month.rank() }

// ParseMaxDetail parses a max detail name. Day is rejected: there is no
// calendar view finer than a month.
func ParseMaxDetail(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if g == "" {
		return Month, nil
	}
	if !g.Valid() || g == Day {
		return "", fmt.Errorf("invalid max detail %q (expected century|decade|year|month)", s)
	}
	return g, nil
}

// ReturnMode selects which end of the edited period is reported.
type ReturnMode string

const (
	ReturnStart ReturnMode = "start"
	ReturnEnd   ReturnMode = "end"
	ReturnRange ReturnMode = "range"
)

func ParseReturnMode(s string) (ReturnMode, error) {
	switch r := ReturnMode(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return ReturnStart, nil
	case ReturnStart, ReturnEnd, ReturnRange:
		return r, nil
	default:
		return "", fmt.Errorf("invalid return mode %q (expected start|end|range)", s)
	}
}
