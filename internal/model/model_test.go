package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datefield/internal/model"
)

func TestParseDate(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		in   string
		want time.Time
	}{
		{"2017", time.Date(2017, 1, 1, 0, 0, 0, 0, time.Local)},
		{"2017-09", time.Date(2017, 9, 1, 0, 0, 0, 0, time.Local)},
		{" 2017-09-30 ", time.Date(2017, 9, 30, 0, 0, 0, 0, time.Local)},
		{"2017-09-30T08:15", time.Date(2017, 9, 30, 8, 15, 0, 0, time.Local)},
		{"2017-09-30 08:15:42", time.Date(2017, 9, 30, 8, 15, 42, 0, time.Local)},
	} {
		got, err := model.ParseDate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	got, err := model.ParseDate("2017-09-30T10:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2017, 9, 30, 10, 0, 0, 0, time.UTC)))
}

func TestParseDateRejects(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "abc", "2017-13", "2017-02-30", "2017-09-30T25:00", "30.09.2017"} {
		_, err := model.ParseDate(in)
		var ive *model.InvalidValueError
		require.True(t, errors.As(err, &ive), "input %q: %v", in, err)
		assert.Equal(t, in, ive.Input)
	}
}

func TestParseValue(t *testing.T) {
	t.Parallel()
	v, err := model.ParseValue("")
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = model.ParseValue("2017-09-30")
	require.NoError(t, err)
	require.NotNil(t, v.From)
	assert.Nil(t, v.To)

	v, err = model.ParseValue("2017-09-30..2018-01-01")
	require.NoError(t, err)
	require.NotNil(t, v.To)
	assert.Equal(t, 2018, v.To.Year())

	_, err = model.ParseValue("2017-09-30..nope")
	assert.Error(t, err)
}

func TestGranularity(t *testing.T) {
	t.Parallel()
	assert.Equal(t, model.Decade, model.Century.ValueUnit())
	assert.Equal(t, model.Year, model.Decade.ValueUnit())
	assert.Equal(t, model.Month, model.Year.ValueUnit())
	assert.Equal(t, model.Day, model.Month.ValueUnit())

	assert.False(t, model.Decade.ShowsMonth())
	assert.True(t, model.Year.ShowsMonth())
	assert.False(t, model.Year.ShowsDay())
	assert.True(t, model.Month.ShowsDay())
	assert.True(t, model.Month.Finer(model.Year))

	g, err := model.ParseMaxDetail("")
	require.NoError(t, err)
	assert.Equal(t, model.Month, g)
	g, err = model.ParseMaxDetail(" Decade ")
	require.NoError(t, err)
	assert.Equal(t, model.Decade, g)
	_, err = model.ParseMaxDetail("day")
	assert.Error(t, err)

	r, err := model.ParseReturnMode("RANGE")
	require.NoError(t, err)
	assert.Equal(t, model.ReturnRange, r)
	_, err = model.ParseReturnMode("middle")
	assert.Error(t, err)
}

func TestLimitsDefaults(t *testing.T) {
	t.Parallel()
	var lim model.Limits
	assert.Equal(t, model.MinDate(), lim.Lower())
	assert.Equal(t, model.MaxYear, lim.Upper().Year())

	lo := time.Date(2017, 1, 1, 0, 0, 0, 0, time.Local)
	lim.Min = &lo
	assert.Equal(t, lo, lim.Lower())
}
