package model

import "time"

// Limits are the optional min/max dates a caller imposes.
type Limits struct {
	Min *time.Time `json:"min,omitempty"`
	Max *time.Time `json:"max,omitempty"`
}

// Lower returns Min or the unbounded floor.
func (l Limits) Lower() time.Time {
	if l.Min != nil {
		return *l.Min
	}
	return MinDate()
}

// Upper returns Max or the unbounded ceiling.
func (l Limits) Upper() time.Time {
	if l.Max != nil {
		return *l.Max
	}
	return MaxDate()
}
