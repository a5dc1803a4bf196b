package dateinput

import (
	"strings"

	"datefield/internal/dateparts"
	"datefield/internal/model"
	"datefield/internal/segment"
)

// Update applies ev and returns the next state with the outputs it produced.
// A disabled input only accepts value, limit, granularity and overlay updates.
// A granularity the layout cannot be resolved for leaves the state unchanged.
func Update(s State, ev Event) (State, []Output) {
	switch ev := ev.(type) {
	case SetValue:
		return s.reset(ev.Value), nil
	case SetLimits:
		s.cfg.Limits = ev.Limits
		s.native = segment.NewNative(s.cfg.MaxDetail, ev.Limits)
		return s.reset(s.value), nil
	case SetMaxDetail:
		cfg := s.cfg
		cfg.MaxDetail = ev.MaxDetail
		next, err := s.Reconfigure(cfg, s.value)
		if err != nil {
			return s, nil
		}
		return next, nil
	case SetOverlayOpen:
		if ev.Open == s.overlayOpen {
			return s, nil
		}
		s.overlayOpen = ev.Open
		return s.reset(s.value), nil
	}

	if s.cfg.Disabled {
		return s, nil
	}

	switch ev := ev.(type) {
	case Pick:
		s = s.reset(ev.Value)
		return s, []Output{Change{Value: ev.Value, CloseHint: ev.Close}}
	case KeyDown:
		return s.keyDown(ev)
	case KeyUp:
		return s.keyUp(ev)
	case Input:
		if !s.valid(ev.Index) {
			return s, nil
		}
		seg := s.segments[ev.Index]
		text := seg.Accept(ev.Text)
		if text == "" && seg.Kind() == segment.KindMonthName && strings.TrimSpace(ev.Text) != "" {
			// Unmatched name text keeps the selected month.
			return s, nil
		}
		return s.edit(seg.Kind(), text)
	case Step:
		if !s.valid(ev.Index) {
			return s, nil
		}
		seg := s.segments[ev.Index]
		return s.edit(seg.Kind(), seg.Step(ev.Delta).Text())
	case NativeInput:
		return s.nativeInput(ev.Text)
	case ClickContainer:
		return s.focusOn(0)
	case FocusSegment:
		return s.focusOn(ev.Index)
	case Blur:
		s.focus = -1
		s.pending = nil
		return s, nil
	}
	return s, nil
}

func (s State) valid(i int) bool { return i >= 0 && i < len(s.segments) }

// edit stores text for the field behind kind, mirrors it into every segment
// of that field and runs the composition pipeline.
func (s State) edit(kind segment.Kind, text string) (State, []Output) {
	switch kind {
	case segment.KindYear:
		s.parts.Year = text
	case segment.KindMonth, segment.KindMonthName:
		s.parts.Month = text
	case segment.KindDay:
		s.parts.Day = text
	}
	s = s.sync()
	return s.commit()
}

// commit turns the current segments into an output. All empty clears the
// value; all filled and valid reports the composed date; anything else is
// invalid and leaves the canonical value alone.
func (s State) commit() (State, []Output) {
	var p dateparts.Parts
	filled, empty, valid := true, true, true
	for _, seg := range s.segments {
		text := seg.Text()
		if text == "" {
			filled = false
		} else {
			empty = false
		}
		if !seg.Valid() {
			valid = false
		}
		switch seg.Kind() {
		case segment.KindYear:
			p.Year = text
		case segment.KindMonth, segment.KindMonthName:
			p.Month = text
		case segment.KindDay:
			p.Day = text
		}
	}

	switch {
	case empty:
		s.canonical = nil
		s.value = model.Value{}
		s.native = s.native.WithValue(nil)
		s.invalid = false
		return s, []Output{Change{}}
	case filled && valid:
		v, err := dateparts.Compose(p, s.cfg.MaxDetail, s.cfg.ReturnMode, s.cfg.Limits, s.env.Now())
		if err != nil {
			s.invalid = true
			return s, []Output{Invalid{}}
		}
		s.value = v
		s.canonical = dateparts.Start(v, s.cfg.MaxDetail, s.cfg.Limits)
		s.native = s.native.WithValue(s.canonical)
		s.invalid = false
		return s, []Output{Change{Value: v}}
	default:
		s.invalid = true
		return s, []Output{Invalid{}}
	}
}

// nativeInput handles the hidden native control. Its text is parsed as a
// whole; segments are then re-initialized from the result.
func (s State) nativeInput(text string) (State, []Output) {
	t, ok := dateparts.ParseNative(text)
	if !ok {
		s.native = s.native.WithText(text)
		s.invalid = true
		return s, []Output{Invalid{}}
	}
	var v model.Value
	if t != nil {
		v = model.Single(*t)
	}
	s = s.reset(v)
	return s, []Output{Change{Value: v}}
}
