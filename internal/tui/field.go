package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"datefield/internal/segment"
)

// span is the column range [start, end) a segment occupies inside the field,
// not counting the input line's leading pad.
type span struct {
	index      int
	start, end int
}

func placeholderFor(seg segment.Segment) string {
	switch seg.Kind() {
	case segment.KindYear:
		return "yyyy"
	case segment.KindDay:
		return "dd"
	case segment.KindMonth:
		return "mm"
	default:
		return "---"
	}
}

// segmentWidth is the number of columns segment i renders in. The focused
// numeric segment reserves one column for the cursor.
func (m inputModel) segmentWidth(i int) int {
	seg := m.state.Segment(i)
	w := max(xansi.StringWidth(seg.Display()), xansi.StringWidth(placeholderFor(seg)))
	if i == m.state.Focus() && seg.Kind() != segment.KindMonthName {
		w = max(w, xansi.StringWidth(seg.Text())+1)
	}
	return w
}

// spans lays the field out in columns; renderField uses the same widths.
func (m inputModel) spans() []span {
	var out []span
	col := 0
	for _, el := range m.state.Layout() {
		if !el.IsSegment() {
			col += xansi.StringWidth(el.Literal)
			continue
		}
		w := m.segmentWidth(el.Segment)
		out = append(out, span{index: el.Segment, start: col, end: col + w})
		col += w
	}
	return out
}

func (m inputModel) contentWidth() int {
	w := 0
	for _, el := range m.state.Layout() {
		if el.IsSegment() {
			w += m.segmentWidth(el.Segment)
		} else {
			w += xansi.StringWidth(el.Literal)
		}
	}
	return w
}

// fieldWidth is the input line width: the field plus one pad column on each
// side, at least 10 columns and no wider than the window.
func (m inputModel) fieldWidth() int {
	w := max(m.contentWidth()+2, 10)
	if m.width > 0 {
		w = min(w, m.width)
	}
	return w
}

// hitSegment maps a screen column on the field row to a segment. Segments
// clipped off the line cannot be hit.
func (m inputModel) hitSegment(x int) (int, bool) {
	x-- // left pad
	limit := m.fieldWidth() - 2
	for _, sp := range m.spans() {
		if sp.end > limit {
			break
		}
		if x >= sp.start && x < sp.end {
			return sp.index, true
		}
	}
	return -1, false
}

// renderLine draws the field on the input background, padded to fieldWidth.
// An element that would overflow is dropped with everything after it, so a
// segment is never shown cut.
func (m inputModel) renderLine() string {
	width := m.fieldWidth()
	field := m.renderField(width - 2)
	fill := max(width-2-xansi.StringWidth(field), 0)
	bg := lipgloss.NewStyle().Background(colorInputBg)
	return bg.Render(" ") + field + bg.Render(strings.Repeat(" ", fill+1))
}

func (m inputModel) renderField(limit int) string {
	var b strings.Builder
	focus := m.state.Focus()
	col := 0
	for _, el := range m.state.Layout() {
		if !el.IsSegment() {
			w := xansi.StringWidth(el.Literal)
			if col+w > limit {
				break
			}
			col += w
			b.WriteString(styleDivider().Render(el.Literal))
			continue
		}
		i := el.Segment
		seg := m.state.Segment(i)
		w := m.segmentWidth(i)
		if col+w > limit {
			break
		}
		col += w

		var st lipgloss.Style
		switch {
		case i == focus && !m.nativeMode && !m.state.OverlayOpen():
			st = styleSegmentFocused()
		case !seg.Valid():
			st = styleSegmentInvalid()
		default:
			st = styleSegment()
		}

		var content string
		switch {
		case i == focus && seg.Kind() != segment.KindMonthName && m.inputs[i].Focused():
			content = m.inputs[i].View()
		case seg.Text() == "":
			content = styleMuted().Render(placeholderFor(seg))
		default:
			content = seg.Display()
		}
		b.WriteString(st.Width(w).MaxWidth(w).Render(content))
	}
	return b.String()
}
