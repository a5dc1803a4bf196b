package cli

import (
	"time"

	"datefield/internal/dateparts"
	"datefield/internal/model"
)

// valueOut is how dates leave the CLI: the instant (RFC 3339, which EDN
// prints as #inst) and the calendar text at the field's granularity.
type valueOut struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Date string `json:"date,omitempty"`
}

type resultOut struct {
	Value   *valueOut `json:"value"`
	Invalid bool      `json:"invalid"`
}

func encodeValue(v model.Value, maxDetail model.Granularity) *valueOut {
	if v.From == nil {
		return nil
	}
	out := &valueOut{
		From: v.From.Format(time.RFC3339Nano),
		Date: dateparts.NativeText(v.From, maxDetail),
	}
	if v.To != nil {
		out.To = v.To.Format(time.RFC3339Nano)
	}
	return out
}
