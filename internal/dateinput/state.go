// Package dateinput is the segmented date input engine: it keeps per-segment
// text consistent with a canonical date, bounds each segment by its siblings
// and the caller's limits, drives keyboard navigation between segments and
// composes edits back into a reported value.
//
// The engine is a value. Update takes an event and returns the next state
// plus the outputs the host must act on; focus calls, terminal reads and
// callbacks stay with the host.
package dateinput

import (
	"strconv"
	"time"

	"golang.org/x/text/language"

	"datefield/internal/bounds"
	"datefield/internal/dateparts"
	"datefield/internal/locale"
	"datefield/internal/model"
	"datefield/internal/pattern"
	"datefield/internal/segment"
)

// Config is the caller-supplied configuration of one input.
type Config struct {
	Locale           language.Tag
	MaxDetail        model.Granularity
	Format           string
	ReturnMode       model.ReturnMode
	Limits           model.Limits
	ShowLeadingZeros bool
	Required         bool
	Disabled         bool
}

// Env carries the shared collaborators. Zero fields get defaults.
type Env struct {
	Resolver *pattern.Resolver
	Catalog  *locale.Catalog
	Now      func() time.Time
}

// Element is one slot of the rendered layout: a literal divider run or a
// segment, referenced by its index in Segments.
type Element struct {
	Literal string
	Segment int
}

func (e Element) IsSegment() bool { return e.Segment >= 0 }

type keystroke struct {
	index int
	key   string
}

// State is one engine instance.
type State struct {
	cfg Config
	env Env

	resolved pattern.Resolved
	layout   []Element
	segments []segment.Segment
	native   segment.Native

	parts       dateparts.Parts
	value       model.Value
	canonical   *time.Time
	focus       int
	pending     *keystroke
	overlayOpen bool
	invalid     bool
}

// New resolves the layout for cfg and initializes segments from value. Format
// errors and unusable configuration surface here.
func New(cfg Config, value model.Value, env Env) (State, error) {
	if env.Resolver == nil {
		env.Resolver = pattern.NewResolver(nil)
	}
	if env.Now == nil {
		env.Now = time.Now
	}
	if cfg.MaxDetail == "" {
		cfg.MaxDetail = model.Month
	}
	if cfg.ReturnMode == "" {
		cfg.ReturnMode = model.ReturnStart
	}
	s := State{env: env, focus: -1}
	return s.Reconfigure(cfg, value)
}

// Reconfigure re-resolves the layout (locale, format or max detail changed)
// and re-initializes every segment from value.
func (s State) Reconfigure(cfg Config, value model.Value) (State, error) {
	resolved, err := s.env.Resolver.Resolve(pattern.Options{
		Locale:    cfg.Locale,
		MaxDetail: cfg.MaxDetail,
		Format:    cfg.Format,
	})
	if err != nil {
		return State{}, err
	}

	opts := segment.Options{
		ShowLeadingZeros: cfg.ShowLeadingZeros,
		Required:         cfg.Required,
		MonthNames:       s.monthNames(cfg.Locale),
	}
	var layout []Element
	var segs []segment.Segment
	for _, e := range resolved.Elements {
		if seg, ok := segment.FromElement(e, opts); ok {
			layout = append(layout, Element{Segment: len(segs)})
			segs = append(segs, seg)
			continue
		}
		layout = append(layout, Element{Literal: e.Literal, Segment: -1})
	}

	s.cfg = cfg
	s.resolved = resolved
	s.layout = layout
	s.segments = segs
	s.native = segment.NewNative(cfg.MaxDetail, cfg.Limits)
	if s.focus >= len(segs) {
		s.focus = len(segs) - 1
	}
	return s.reset(value), nil
}

func (s State) monthNames(tag language.Tag) func(short bool) []string {
	if s.env.Catalog == nil {
		return nil
	}
	return func(short bool) []string { return s.env.Catalog.MonthNames(tag, short) }
}

// reset re-initializes segment texts from an external value and discards any
// partial typing.
func (s State) reset(value model.Value) State {
	s.value = value
	s.parts = dateparts.Decompose(value, s.cfg.MaxDetail, s.cfg.Limits)
	s.canonical = dateparts.Start(value, s.cfg.MaxDetail, s.cfg.Limits)
	s.native = s.native.WithValue(s.canonical)
	s.pending = nil
	s.invalid = false
	return s.sync()
}

// sync copies the field strings into every segment and recomputes bounds.
// Repeated segments of one field always mirror each other.
func (s State) sync() State {
	segs := make([]segment.Segment, len(s.segments))
	yearPtr, monthPtr := s.boundYear(), optionalInt(s.parts.Month)
	lim := s.cfg.Limits
	for i, seg := range s.segments {
		switch seg.Kind() {
		case segment.KindYear:
			seg = seg.WithText(s.parts.Year).WithBounds(bounds.Year(lim.Min, lim.Max))
		case segment.KindMonth, segment.KindMonthName:
			seg = seg.WithText(s.parts.Month).WithBounds(bounds.Month(lim.Min, lim.Max, yearPtr))
		case segment.KindDay:
			seg = seg.WithText(s.parts.Day).WithBounds(bounds.Day(lim.Min, lim.Max, monthPtr, yearPtr))
		}
		segs[i] = seg
	}
	s.segments = segs
	return s
}

// boundYear is the year sibling bounds are computed against. Without a year
// segment it is the current year, matching what composition will use.
func (s State) boundYear() *int {
	if !s.has(segment.KindYear) {
		y := s.env.Now().Year()
		return &y
	}
	return optionalInt(s.parts.Year)
}

func (s State) has(kinds ...segment.Kind) bool {
	for _, seg := range s.segments {
		for _, k := range kinds {
			if seg.Kind() == k {
				return true
			}
		}
	}
	return false
}

func optionalInt(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// Accessors.

func (s State) Config() Config                { return s.cfg }
func (s State) Placeholder() string           { return s.resolved.Placeholder }
func (s State) Divider() string               { return s.resolved.Divider }
func (s State) Layout() []Element             { return append([]Element(nil), s.layout...) }
func (s State) Segments() []segment.Segment   { return append([]segment.Segment(nil), s.segments...) }
func (s State) Segment(i int) segment.Segment { return s.segments[i] }
func (s State) Native() segment.Native        { return s.native }
func (s State) Parts() dateparts.Parts        { return s.parts }
func (s State) Value() model.Value            { return s.value }
func (s State) Focus() int                    { return s.focus }
func (s State) OverlayOpen() bool             { return s.overlayOpen }

// Canonical is the last value confirmed complete and valid (its start).
func (s State) Canonical() *time.Time { return s.canonical }

// Invalid reports whether the last edit left the segments incomplete or out
// of bounds.
func (s State) Invalid() bool { return s.invalid }
