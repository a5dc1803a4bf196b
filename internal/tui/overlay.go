package tui

import (
	"strconv"
	"time"

	"datefield/internal/dateparts"
	"datefield/internal/model"
)

// calendar is the picker shown while the overlay is open. It moves a cursor
// by the value unit of the field and hands the cursor back as a pick.
// Left/right move one unit; up/down move a week, a quarter or a decade.
type calendar struct {
	unit   model.Granularity
	limits model.Limits
	cursor time.Time
}

func newCalendar(maxDetail model.Granularity, lim model.Limits, start *time.Time, now time.Time) calendar {
	c := calendar{unit: maxDetail.ValueUnit(), limits: lim, cursor: now}
	if start != nil {
		c.cursor = *start
	}
	c.cursor = dateparts.Floor(dateparts.Clamp(c.cursor, lim.Lower(), lim.Upper()), c.unit)
	return c
}

// move shifts the cursor by n small (left/right) or large (up/down) steps.
func (c calendar) move(n int, large bool) calendar {
	var next time.Time
	switch c.unit {
	case model.Day:
		if large {
			n *= 7
		}
		next = c.cursor.AddDate(0, 0, n)
	case model.Month:
		if large {
			n *= 3
		}
		next = c.cursor.AddDate(0, n, 0)
	case model.Year:
		if large {
			n *= 10
		}
		next = c.cursor.AddDate(n, 0, 0)
	default:
		if large {
			n *= 10
		}
		next = c.cursor.AddDate(10*n, 0, 0)
	}
	if next.Before(dateparts.Floor(c.limits.Lower(), c.unit)) || next.After(c.limits.Upper()) {
		return c
	}
	c.cursor = next
	return c
}

// pick is the value the cursor stands for.
func (c calendar) pick() model.Value {
	return model.Single(dateparts.Clamp(c.cursor, c.limits.Lower(), c.limits.Upper()))
}

// view is a single line; the overlay steps through periods instead of
// drawing a grid.
func (c calendar) view(monthNames []string) string {
	return styleMuted().Render("‹ ") + styleSegmentFocused().Render(" "+c.label(monthNames)+" ") + styleMuted().Render(" ›")
}

func (c calendar) label(monthNames []string) string {
	year := strconv.Itoa(c.cursor.Year())
	switch c.unit {
	case model.Day, model.Month:
		name := c.cursor.Month().String()
		if len(monthNames) == 12 {
			name = monthNames[c.cursor.Month()-1]
		}
		if c.unit == model.Day {
			return strconv.Itoa(c.cursor.Day()) + " " + name + " " + year
		}
		return name + " " + year
	case model.Year:
		return year
	default:
		end := dateparts.Ceiling(c.cursor, model.Decade)
		return year + "–" + strconv.Itoa(end.Year())
	}
}
