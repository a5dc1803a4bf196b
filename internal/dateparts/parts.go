package dateparts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"datefield/internal/model"
)

// Parts are the segment strings of a date; "" means unset.
type Parts struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

func (p Parts) Empty() bool { return p.Year == "" && p.Month == "" && p.Day == "" }

// Start returns the clamped floor of v.From at the value unit of maxDetail, or
// nil when v is absent.
func Start(v model.Value, maxDetail model.Granularity, lim model.Limits) *time.Time {
	if v.From == nil {
		return nil
	}
	t := Clamp(Floor(*v.From, maxDetail.ValueUnit()), lim.Lower(), lim.Upper())
	return &t
}

// End returns the clamped ceiling of v's second element (or of v.From for a
// single value), or nil when v is absent.
func End(v model.Value, maxDetail model.Granularity, lim model.Limits) *time.Time {
	src := v.To
	if src == nil {
		src = v.From
	}
	if src == nil {
		return nil
	}
	t := Clamp(Ceiling(*src, maxDetail.ValueUnit()), lim.Lower(), lim.Upper())
	return &t
}

// Decompose splits the start of v into segment strings. All three parts are
// filled whenever v is present; which of them get rendered is up to the caller.
func Decompose(v model.Value, maxDetail model.Granularity, lim model.Limits) Parts {
	t := Start(v, maxDetail, lim)
	if t == nil {
		return Parts{}
	}
	return Parts{
		Year:  strconv.Itoa(t.Year()),
		Month: strconv.Itoa(int(t.Month())),
		Day:   strconv.Itoa(t.Day()),
	}
}

// Compose builds a date from segment strings. A missing year defaults to the
// year of now, a missing month to January and a missing day to the 1st. The
// result is floored/ceiled at the value unit of maxDetail and clamped into lim
// according to mode.
func Compose(p Parts, maxDetail model.Granularity, mode model.ReturnMode, lim model.Limits, now time.Time) (model.Value, error) {
	year, err := partOr(p.Year, now.Year(), "year")
	if err != nil {
		return model.Value{}, err
	}
	month, err := partOr(p.Month, 1, "month")
	if err != nil {
		return model.Value{}, err
	}
	day, err := partOr(p.Day, 1, "day")
	if err != nil {
		return model.Value{}, err
	}

	proposed := model.Single(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local))
	switch mode {
	case model.ReturnEnd:
		return model.Value{From: End(proposed, maxDetail, lim)}, nil
	case model.ReturnRange:
		return model.Value{
			From: Start(proposed, maxDetail, lim),
			To:   End(proposed, maxDetail, lim),
		}, nil
	default:
		return model.Value{From: Start(proposed, maxDetail, lim)}, nil
	}
}

func partOr(s string, def int, name string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return n, nil
}
