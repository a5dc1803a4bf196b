package segment

import (
	"strconv"
	"strings"

	"datefield/internal/bounds"
	"datefield/internal/model"
)

// numeric is the shared base of the day, month and year inputs.
type numeric struct {
	token    string
	text     string
	rng      bounds.Range
	pad      bool
	required bool
}

func (n numeric) Token() string        { return n.token }
func (n numeric) Text() string         { return n.text }
func (n numeric) Bounds() bounds.Range { return n.rng }
func (n numeric) MaxLength() int       { return len(strconv.Itoa(n.rng.Max)) }

func (n numeric) Valid() bool {
	if n.text == "" {
		return !n.required
	}
	v, err := strconv.Atoi(n.text)
	if err != nil {
		return false
	}
	return n.rng.Contains(v)
}

// Display prefixes a single-digit value with 0 when padding is on, unless the
// user already typed the leading zero.
func (n numeric) Display() string {
	if !n.pad || n.text == "" {
		return n.text
	}
	v, err := strconv.Atoi(n.text)
	if err != nil || v >= 10 {
		return n.text
	}
	if n.text == "0" || !strings.HasPrefix(n.text, "0") {
		return "0" + n.text
	}
	return n.text
}

func (n numeric) Accept(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if max := n.MaxLength(); len(out) > max {
		out = out[:max]
	}
	return out
}

// stepped mirrors a native number input: an empty field steps to min, a set
// one moves by delta and is clamped into bounds.
func (n numeric) stepped(delta int) string {
	v, err := strconv.Atoi(n.text)
	if n.text == "" || err != nil {
		return strconv.Itoa(n.rng.Min)
	}
	return strconv.Itoa(n.rng.Clamp(v + delta))
}

// Day is the day-of-month input.
type Day struct{ numeric }

func NewDay(token string, pad, required bool) Day {
	return Day{numeric{token: token, rng: bounds.Range{Min: 1, Max: 31}, pad: pad, required: required}}
}

func (Day) Kind() Kind                          { return KindDay }
func (d Day) WithText(text string) Segment      { d.text = text; return d }
func (d Day) WithBounds(r bounds.Range) Segment { d.rng = r; return d }
func (d Day) Step(delta int) Segment            { d.text = d.stepped(delta); return d }

// Month is the numeric month input.
type Month struct{ numeric }

func NewMonth(token string, pad, required bool) Month {
	return Month{numeric{token: token, rng: bounds.Range{Min: 1, Max: 12}, pad: pad, required: required}}
}

func (Month) Kind() Kind                          { return KindMonth }
func (m Month) WithText(text string) Segment      { m.text = text; return m }
func (m Month) WithBounds(r bounds.Range) Segment { m.rng = r; return m }
func (m Month) Step(delta int) Segment            { m.text = m.stepped(delta); return m }

// Year is the numeric year input. It is never zero padded.
type Year struct{ numeric }

func NewYear(token string, required bool) Year {
	return Year{numeric{token: token, rng: bounds.Range{Min: 1, Max: model.MaxYear}, required: required}}
}

func (Year) Kind() Kind                          { return KindYear }
func (y Year) WithText(text string) Segment      { y.text = text; return y }
func (y Year) WithBounds(r bounds.Range) Segment { y.rng = r; return y }
func (y Year) Step(delta int) Segment            { y.text = y.stepped(delta); return y }
