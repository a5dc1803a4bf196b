package segment

import (
	"time"

	"datefield/internal/dateparts"
	"datefield/internal/model"
)

// Native is the hidden control that mirrors the canonical value for assistive
// and native semantics. It holds ISO-like text, not segment strings.
type Native struct {
	maxDetail model.Granularity
	limits    model.Limits
	text      string
}

func NewNative(maxDetail model.Granularity, lim model.Limits) Native {
	return Native{maxDetail: maxDetail, limits: lim}
}

// InputType names the native control kind: date, month or number.
func (n Native) InputType() string {
	switch {
	case n.maxDetail.ShowsDay():
		return "date"
	case n.maxDetail.ShowsMonth():
		return "month"
	default:
		return "number"
	}
}

func (n Native) Text() string { return n.text }

// WithValue mirrors the canonical value.
func (n Native) WithValue(t *time.Time) Native {
	n.text = dateparts.NativeText(t, n.maxDetail)
	return n
}

// WithText stores raw text typed into the native control.
func (n Native) WithText(text string) Native {
	n.text = text
	return n
}

// Min and Max are the native control's limit attributes.
func (n Native) Min() string {
	t := n.limits.Lower()
	return dateparts.NativeText(&t, n.maxDetail)
}

func (n Native) Max() string {
	t := n.limits.Upper()
	return dateparts.NativeText(&t, n.maxDetail)
}
