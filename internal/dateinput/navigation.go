package dateinput

import "strconv"

// Key names the engine interprets itself.
const (
	KeyLeft  = "left"
	KeyRight = "right"
)

// IsNavigationKey reports whether key moves focus between segments. The host
// should swallow such keys even when focus cannot move.
func (s State) IsNavigationKey(key string) bool {
	return key == KeyLeft || key == KeyRight || (s.resolved.Divider != "" && key == s.resolved.Divider)
}

func (s State) keyDown(ev KeyDown) (State, []Output) {
	if !s.valid(ev.Index) {
		return s, nil
	}
	s.focus = ev.Index
	s.pending = &keystroke{index: ev.Index, key: ev.Key}
	switch {
	case ev.Key == KeyLeft:
		return s.focusOn(ev.Index - 1)
	case ev.Key == KeyRight, s.resolved.Divider != "" && ev.Key == s.resolved.Divider:
		return s.focusOn(ev.Index + 1)
	}
	return s, nil
}

// keyUp advances focus after a digit once the segment cannot take another
// digit without exceeding its max. Only the release matching the last press
// counts, so one keystroke advances at most once.
func (s State) keyUp(ev KeyUp) (State, []Output) {
	if s.pending == nil || s.pending.index != ev.Index || s.pending.key != ev.Key {
		return s, nil
	}
	s.pending = nil
	if !isDigit(ev.Key) || !s.valid(ev.Index) {
		return s, nil
	}
	seg := s.segments[ev.Index]
	if seg.MaxLength() == 0 {
		return s, nil
	}
	text := seg.Text()
	n, _ := strconv.Atoi(text)
	max := seg.Bounds().Max
	if n*10 > max || len(text) >= len(strconv.Itoa(max)) {
		return s.focusOn(ev.Index + 1)
	}
	return s, nil
}

func (s State) focusOn(i int) (State, []Output) {
	if !s.valid(i) || i == s.focus {
		return s, nil
	}
	s.focus = i
	return s, []Output{FocusMoved{Index: i}}
}

func isDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
