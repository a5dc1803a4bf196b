package dateinput_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"datefield/internal/dateinput"
	"datefield/internal/model"
	"datefield/internal/pattern"
	"datefield/internal/segment"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

var fixedNow = func() time.Time { return time.Date(2026, time.October, 17, 9, 30, 0, 0, time.Local) }

func newState(t *testing.T, cfg dateinput.Config, v model.Value) dateinput.State {
	t.Helper()
	if cfg.Locale == language.Und {
		cfg.Locale = language.AmericanEnglish
	}
	s, err := dateinput.New(cfg, v, dateinput.Env{Now: fixedNow})
	require.NoError(t, err)
	return s
}

func texts(s dateinput.State) []string {
	var out []string
	for _, seg := range s.Segments() {
		out = append(out, seg.Text())
	}
	return out
}

func TestNewLayout(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Single(date(2017, 9, 30)))

	assert.Equal(t, "/", s.Divider())
	assert.Equal(t, "M/d/y", s.Placeholder())
	assert.Equal(t, []string{"9", "30", "2017"}, texts(s))
	assert.Equal(t, -1, s.Focus())
	assert.Equal(t, "2017-09-30", s.Native().Text())

	var kinds []segment.Kind
	for _, seg := range s.Segments() {
		kinds = append(kinds, seg.Kind())
	}
	assert.Equal(t, []segment.Kind{segment.KindMonth, segment.KindDay, segment.KindYear}, kinds)

	layout := s.Layout()
	require.Len(t, layout, 5)
	assert.Equal(t, "/", layout[1].Literal)
	assert.False(t, layout[1].IsSegment())
	assert.Equal(t, 2, layout[4].Segment)
}

func TestNewRejectsBadFormat(t *testing.T) {
	t.Parallel()
	_, err := dateinput.New(dateinput.Config{Format: "ddd.MM.y"}, model.Value{}, dateinput.Env{})
	var fe *pattern.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "ddd", fe.Token)
}

func TestEditPipeline(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Single(date(2017, 9, 30)))

	s, out := dateinput.Update(s, dateinput.Input{Index: 1, Text: "20"})
	require.Len(t, out, 1)
	change, ok := out[0].(dateinput.Change)
	require.True(t, ok)
	assert.Equal(t, date(2017, 9, 20), *change.Value.From)
	assert.False(t, change.CloseHint)
	assert.Equal(t, date(2017, 9, 20), *s.Canonical())
	assert.Equal(t, "2017-09-20", s.Native().Text())

	s, out = dateinput.Update(s, dateinput.Input{Index: 1, Text: ""})
	assert.Equal(t, []dateinput.Output{dateinput.Invalid{}}, out)
	assert.True(t, s.Invalid())
	assert.Equal(t, date(2017, 9, 20), *s.Canonical())

	s, out = dateinput.Update(s, dateinput.Input{Index: 0, Text: ""})
	assert.Equal(t, []dateinput.Output{dateinput.Invalid{}}, out)

	s, out = dateinput.Update(s, dateinput.Input{Index: 2, Text: ""})
	assert.Equal(t, []dateinput.Output{dateinput.Change{}}, out)
	assert.Nil(t, s.Canonical())
	assert.False(t, s.Invalid())
	assert.Equal(t, "", s.Native().Text())
}

func TestEditOutOfBounds(t *testing.T) {
	t.Parallel()
	lim := model.Limits{Min: ptr(date(2017, 9, 10))}
	s := newState(t, dateinput.Config{MaxDetail: model.Month, Limits: lim}, model.Single(date(2017, 9, 30)))

	assert.Equal(t, 10, s.Segment(1).Bounds().Min)
	_, out := dateinput.Update(s, dateinput.Input{Index: 1, Text: "5"})
	assert.Equal(t, []dateinput.Output{dateinput.Invalid{}}, out)

	// February of a leap year allows the 29th.
	s, _ = dateinput.Update(s, dateinput.Input{Index: 0, Text: "2"})
	s, _ = dateinput.Update(s, dateinput.Input{Index: 2, Text: "2020"})
	assert.Equal(t, 29, s.Segment(1).Bounds().Max)
	_, out = dateinput.Update(s, dateinput.Input{Index: 1, Text: "29"})
	require.IsType(t, dateinput.Change{}, out[0])
}

func TestInputFiltersText(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Value{})
	s, _ = dateinput.Update(s, dateinput.Input{Index: 1, Text: "1a23"})
	assert.Equal(t, "12", s.Segment(1).Text())
}

func TestFormatWithoutYearUsesCurrentYear(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month, Format: "dd.MM"}, model.Value{})
	require.Len(t, s.Segments(), 2)

	s, out := dateinput.Update(s, dateinput.Input{Index: 0, Text: "5"})
	assert.Equal(t, []dateinput.Output{dateinput.Invalid{}}, out)
	_, out = dateinput.Update(s, dateinput.Input{Index: 1, Text: "3"})
	require.Len(t, out, 1)
	assert.Equal(t, date(2026, 3, 5), *out[0].(dateinput.Change).Value.From)
}

func TestFormatWithoutYearIgnoresValueYear(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month, Format: "dd.MM"}, model.Single(date(2017, 9, 30)))
	require.Equal(t, []string{"30", "9"}, texts(s))

	s, out := dateinput.Update(s, dateinput.Input{Index: 0, Text: "20"})
	require.Len(t, out, 1)
	assert.Equal(t, date(2026, 9, 20), *out[0].(dateinput.Change).Value.From)
	assert.Equal(t, date(2026, 9, 20), *s.Canonical())
}

func TestMonthNameKeepsSelectionOnUnknownText(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month, Format: "MMMM d, y"}, model.Value{})
	s, _ = dateinput.Update(s, dateinput.Input{Index: 0, Text: "jun"})
	require.Equal(t, "6", s.Segment(0).Text())

	s, out := dateinput.Update(s, dateinput.Input{Index: 0, Text: "junx"})
	assert.Empty(t, out)
	assert.Equal(t, "6", s.Segment(0).Text())

	s, _ = dateinput.Update(s, dateinput.Input{Index: 0, Text: ""})
	assert.Equal(t, "", s.Segment(0).Text())
}

func TestRepeatedSegmentsMirror(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month, Format: "d.M.y (d)"}, model.Value{})
	require.Len(t, s.Segments(), 4)
	s, _ = dateinput.Update(s, dateinput.Input{Index: 0, Text: "7"})
	assert.Equal(t, "7", s.Segment(3).Text())
}

func TestReturnModes(t *testing.T) {
	t.Parallel()
	v := model.Single(date(2017, 9, 1))

	s := newState(t, dateinput.Config{MaxDetail: model.Year, ReturnMode: model.ReturnEnd}, v)
	require.Len(t, s.Segments(), 2)
	_, out := dateinput.Update(s, dateinput.Input{Index: 0, Text: "10"})
	end := out[0].(dateinput.Change).Value
	assert.Equal(t, date(2017, 11, 1).Add(-time.Millisecond), *end.From)
	assert.Nil(t, end.To)

	s = newState(t, dateinput.Config{MaxDetail: model.Year, ReturnMode: model.ReturnRange}, v)
	_, out = dateinput.Update(s, dateinput.Input{Index: 0, Text: "10"})
	rng := out[0].(dateinput.Change).Value
	assert.Equal(t, date(2017, 10, 1), *rng.From)
	assert.Equal(t, date(2017, 11, 1).Add(-time.Millisecond), *rng.To)
}

func TestStep(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Single(date(2017, 12, 31)))

	s, out := dateinput.Update(s, dateinput.Input{Index: 0, Text: "12"})
	require.IsType(t, dateinput.Change{}, out[0])
	s, _ = dateinput.Update(s, dateinput.Step{Index: 0, Delta: 1})
	assert.Equal(t, "12", s.Segment(0).Text())

	s, out = dateinput.Update(s, dateinput.Step{Index: 1, Delta: -1})
	assert.Equal(t, "30", s.Segment(1).Text())
	assert.Equal(t, date(2017, 12, 30), *out[0].(dateinput.Change).Value.From)

	s, _ = dateinput.Update(s, dateinput.Input{Index: 1, Text: ""})
	s, _ = dateinput.Update(s, dateinput.Step{Index: 1, Delta: 1})
	assert.Equal(t, "1", s.Segment(1).Text())
}

func TestAutoAdvance(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Value{})

	type1 := func(s dateinput.State, idx int, key, text string) (dateinput.State, []dateinput.Output) {
		s, _ = dateinput.Update(s, dateinput.KeyDown{Index: idx, Key: key})
		s, _ = dateinput.Update(s, dateinput.Input{Index: idx, Text: text})
		return dateinput.Update(s, dateinput.KeyUp{Index: idx, Key: key})
	}

	s, out := type1(s, 0, "1", "1")
	assert.Empty(t, out)
	assert.Equal(t, 0, s.Focus())

	s, out = type1(s, 0, "2", "12")
	assert.Equal(t, []dateinput.Output{dateinput.FocusMoved{Index: 1}}, out)

	s, out = type1(s, 1, "4", "4")
	assert.Equal(t, []dateinput.Output{dateinput.FocusMoved{Index: 2}}, out)

	s, out = type1(s, 2, "2", "2")
	assert.Empty(t, out)
	assert.Equal(t, 2, s.Focus())
}

func TestAutoAdvanceOnce(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Value{})

	s, _ = dateinput.Update(s, dateinput.KeyDown{Index: 0, Key: "4"})
	s, _ = dateinput.Update(s, dateinput.Input{Index: 0, Text: "4"})
	s, out := dateinput.Update(s, dateinput.KeyUp{Index: 0, Key: "4"})
	assert.Equal(t, []dateinput.Output{dateinput.FocusMoved{Index: 1}}, out)

	s, out = dateinput.Update(s, dateinput.KeyUp{Index: 0, Key: "4"})
	assert.Empty(t, out)
	assert.Equal(t, 1, s.Focus())

	// A release that does not match the press is ignored.
	s, _ = dateinput.Update(s, dateinput.KeyDown{Index: 1, Key: "5"})
	s, _ = dateinput.Update(s, dateinput.Input{Index: 1, Text: "5"})
	_, out = dateinput.Update(s, dateinput.KeyUp{Index: 1, Key: "6"})
	assert.Empty(t, out)
}

func TestAutoAdvanceSkipsMonthNames(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month, Format: "MMM d, y"}, model.Value{})
	require.Equal(t, segment.KindMonthName, s.Segment(0).Kind())
	s, _ = dateinput.Update(s, dateinput.KeyDown{Index: 0, Key: "9"})
	s, _ = dateinput.Update(s, dateinput.Input{Index: 0, Text: "9"})
	_, out := dateinput.Update(s, dateinput.KeyUp{Index: 0, Key: "9"})
	assert.Empty(t, out)
}

func TestNavigation(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Value{})

	assert.True(t, s.IsNavigationKey("/"))
	assert.True(t, s.IsNavigationKey("left"))
	assert.False(t, s.IsNavigationKey("."))

	s, out := dateinput.Update(s, dateinput.KeyDown{Index: 0, Key: "/"})
	assert.Equal(t, []dateinput.Output{dateinput.FocusMoved{Index: 1}}, out)
	s, out = dateinput.Update(s, dateinput.KeyDown{Index: 1, Key: "right"})
	assert.Equal(t, []dateinput.Output{dateinput.FocusMoved{Index: 2}}, out)
	s, out = dateinput.Update(s, dateinput.KeyDown{Index: 2, Key: "right"})
	assert.Empty(t, out)
	s, out = dateinput.Update(s, dateinput.KeyDown{Index: 2, Key: "left"})
	assert.Equal(t, []dateinput.Output{dateinput.FocusMoved{Index: 1}}, out)
	s, _ = dateinput.Update(s, dateinput.FocusSegment{Index: 0})
	_, out = dateinput.Update(s, dateinput.KeyDown{Index: 0, Key: "left"})
	assert.Empty(t, out)
}

func TestSingleSegmentHasNoDivider(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Decade}, model.Single(date(2017, 5, 5)))
	require.Len(t, s.Segments(), 1)
	assert.Equal(t, "", s.Divider())
	assert.False(t, s.IsNavigationKey("/"))
	assert.Equal(t, "2017", s.Segment(0).Text())
	assert.Equal(t, "2017", s.Native().Text())
}

func TestClickContainer(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Value{})
	s, out := dateinput.Update(s, dateinput.ClickContainer{})
	assert.Equal(t, []dateinput.Output{dateinput.FocusMoved{Index: 0}}, out)
	s, _ = dateinput.Update(s, dateinput.Blur{})
	assert.Equal(t, -1, s.Focus())
}

func TestNativeInput(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Value{})

	s, out := dateinput.Update(s, dateinput.NativeInput{Text: "2020-02-29"})
	require.Len(t, out, 1)
	assert.Equal(t, date(2020, 2, 29), *out[0].(dateinput.Change).Value.From)
	assert.Equal(t, []string{"2", "29", "2020"}, texts(s))

	s, out = dateinput.Update(s, dateinput.NativeInput{Text: "20x0-01-01"})
	assert.Equal(t, []dateinput.Output{dateinput.Invalid{}}, out)
	assert.Equal(t, date(2020, 2, 29), *s.Canonical())

	_, out = dateinput.Update(s, dateinput.NativeInput{Text: ""})
	assert.Equal(t, []dateinput.Output{dateinput.Change{}}, out)
}

func TestExternalUpdatesReinitialize(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Single(date(2017, 9, 30)))
	s, _ = dateinput.Update(s, dateinput.Input{Index: 1, Text: ""})
	require.True(t, s.Invalid())

	reopened, out := dateinput.Update(s, dateinput.SetOverlayOpen{Open: true})
	assert.Empty(t, out)
	assert.Equal(t, []string{"9", "30", "2017"}, texts(reopened))
	assert.False(t, reopened.Invalid())

	s, _ = dateinput.Update(s, dateinput.SetValue{Value: model.Single(date(2001, 1, 2))})
	assert.Equal(t, []string{"1", "2", "2001"}, texts(s))

	s, _ = dateinput.Update(s, dateinput.SetLimits{Limits: model.Limits{Min: ptr(date(2005, 1, 1))}})
	assert.Equal(t, []string{"1", "1", "2005"}, texts(s))
	assert.Equal(t, "2005-01-01", s.Native().Min())
}

func TestPick(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Value{})
	today := model.Single(date(2026, 10, 17))
	s, out := dateinput.Update(s, dateinput.Pick{Value: today, Close: true})
	assert.Equal(t, []dateinput.Output{dateinput.Change{Value: today, CloseHint: true}}, out)
	assert.Equal(t, []string{"10", "17", "2026"}, texts(s))
}

func TestDisabled(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month, Disabled: true}, model.Single(date(2017, 9, 30)))
	for _, ev := range []dateinput.Event{
		dateinput.Input{Index: 1, Text: "1"},
		dateinput.KeyDown{Index: 0, Key: "/"},
		dateinput.ClickContainer{},
		dateinput.NativeInput{Text: "2020-01-01"},
	} {
		next, out := dateinput.Update(s, ev)
		assert.Empty(t, out)
		assert.Equal(t, texts(s), texts(next))
	}
}

func TestReconfigure(t *testing.T) {
	t.Parallel()
	v := model.Single(date(2017, 9, 30))
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, v)
	s, err := s.Reconfigure(dateinput.Config{Locale: language.German, MaxDetail: model.Month}, v)
	require.NoError(t, err)
	assert.Equal(t, ".", s.Divider())
	assert.Equal(t, []string{"30", "9", "2017"}, texts(s))

	_, err = s.Reconfigure(dateinput.Config{Format: "MMMMM"}, v)
	assert.Error(t, err)
}

func TestSetMaxDetail(t *testing.T) {
	t.Parallel()
	s := newState(t, dateinput.Config{MaxDetail: model.Month}, model.Single(date(2017, 9, 30)))
	s, out := dateinput.Update(s, dateinput.SetMaxDetail{MaxDetail: model.Year})
	assert.Empty(t, out)
	assert.Equal(t, "M/y", s.Placeholder())
	assert.Equal(t, []string{"9", "2017"}, texts(s))
	assert.Equal(t, "2017-09", s.Native().Text())

	_, out = dateinput.Update(s, dateinput.Input{Index: 0, Text: "11"})
	assert.Equal(t, date(2017, 11, 1), *out[0].(dateinput.Change).Value.From)
}

func ptr(t time.Time) *time.Time { return &t }
