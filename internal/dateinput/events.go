package dateinput

import "datefield/internal/model"

// Event is an input to Update.
type Event interface{ event() }

// SetValue replaces the external value and re-initializes every segment.
type SetValue struct{ Value model.Value }

// SetLimits replaces the caller's min/max.
type SetLimits struct{ Limits model.Limits }

// SetMaxDetail changes the granularity; the layout is re-resolved.
type SetMaxDetail struct{ MaxDetail model.Granularity }

// SetOverlayOpen reports the calendar overlay opening or closing.
type SetOverlayOpen struct{ Open bool }

// Pick is a value chosen outside the segments, e.g. from a calendar or a
// "today" shortcut. Close is passed through as the change's close hint.
type Pick struct {
	Value model.Value
	Close bool
}

// KeyDown is a key pressed while segment Index has focus. Key uses the
// host's key names ("left", "right", "up", "down") or the typed text.
type KeyDown struct {
	Index int
	Key   string
}

// KeyUp ends the keystroke started by the matching KeyDown.
type KeyUp struct {
	Index int
	Key   string
}

// Input is the new raw text of segment Index.
type Input struct {
	Index int
	Text  string
}

// Step moves segment Index by Delta within its bounds.
type Step struct {
	Index int
	Delta int
}

// NativeInput is new text in the hidden native date control.
type NativeInput struct{ Text string }

// ClickContainer is a click on the input's empty area.
type ClickContainer struct{}

// FocusSegment is a click (or host focus) landing on segment Index.
type FocusSegment struct{ Index int }

// Blur clears focus.
type Blur struct{}

func (SetValue) event()       {}
func (SetLimits) event()      {}
func (SetMaxDetail) event()   {}
func (SetOverlayOpen) event() {}
func (Pick) event()           {}
func (KeyDown) event()        {}
func (KeyUp) event()          {}
func (Input) event()          {}
func (Step) event()           {}
func (NativeInput) event()    {}
func (ClickContainer) event() {}
func (FocusSegment) event()   {}
func (Blur) event()           {}

// Output is something the host must act on.
type Output interface{ output() }

// Change reports a new value; an empty Value means cleared. CloseHint asks the
// host to close its overlay and is only set for picks.
type Change struct {
	Value     model.Value
	CloseHint bool
}

// Invalid reports that the segments no longer describe a complete, in-range
// date. The canonical value is unchanged.
type Invalid struct{}

// FocusMoved asks the host to focus segment Index.
type FocusMoved struct{ Index int }

func (Change) output()     {}
func (Invalid) output()    {}
func (FocusMoved) output() {}
