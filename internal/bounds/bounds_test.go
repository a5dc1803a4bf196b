package bounds_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"datefield/internal/bounds"
	"datefield/internal/model"
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func TestDay(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name      string
		min, max  *time.Time
		month, yr *int
		want      bounds.Range
	}{
		{"unknown month", nil, nil, nil, nil, bounds.Range{Min: 1, Max: 31}},
		{"february leap", nil, nil, ptr(2), ptr(2024), bounds.Range{Min: 1, Max: 29}},
		{"february common", nil, nil, ptr(2), ptr(2023), bounds.Range{Min: 1, Max: 28}},
		{"february unknown year", nil, nil, ptr(2), nil, bounds.Range{Min: 1, Max: 29}},
		{"april", nil, nil, ptr(4), ptr(2017), bounds.Range{Min: 1, Max: 30}},
		{"max same month", nil, date(2017, 9, 15), ptr(9), ptr(2017), bounds.Range{Min: 1, Max: 15}},
		{"max later month", nil, date(2017, 10, 15), ptr(9), ptr(2017), bounds.Range{Min: 1, Max: 30}},
		{"max same month other year", nil, date(2018, 9, 15), ptr(9), ptr(2017), bounds.Range{Min: 1, Max: 30}},
		{"min same month", date(2017, 9, 10), nil, ptr(9), ptr(2017), bounds.Range{Min: 10, Max: 30}},
		{"min earlier month", date(2017, 8, 10), nil, ptr(9), ptr(2017), bounds.Range{Min: 1, Max: 30}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bounds.Day(tc.min, tc.max, tc.month, tc.yr))
		})
	}
}

func TestMonth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, bounds.Range{Min: 1, Max: 12}, bounds.Month(nil, nil, ptr(2017)))
	assert.Equal(t, bounds.Range{Min: 1, Max: 9}, bounds.Month(nil, date(2017, 9, 15), ptr(2017)))
	assert.Equal(t, bounds.Range{Min: 1, Max: 12}, bounds.Month(nil, date(2018, 9, 15), ptr(2017)))
	assert.Equal(t, bounds.Range{Min: 3, Max: 12}, bounds.Month(date(2017, 3, 1), nil, ptr(2017)))
	assert.Equal(t, bounds.Range{Min: 1, Max: 12}, bounds.Month(date(2017, 3, 1), nil, nil))
}

func TestYear(t *testing.T) {
	t.Parallel()
	assert.Equal(t, bounds.Range{Min: 1, Max: model.MaxYear}, bounds.Year(nil, nil))
	assert.Equal(t, bounds.Range{Min: 2000, Max: 2030}, bounds.Year(date(2000, 5, 5), date(2030, 1, 1)))
}

func TestSingleAllowedDayCollapses(t *testing.T) {
	t.Parallel()
	only := date(2017, 9, 30)
	assert.Equal(t, bounds.Range{Min: 2017, Max: 2017}, bounds.Year(only, only))
	assert.Equal(t, bounds.Range{Min: 9, Max: 9}, bounds.Month(only, only, ptr(2017)))
	assert.Equal(t, bounds.Range{Min: 30, Max: 30}, bounds.Day(only, only, ptr(9), ptr(2017)))
}

func TestRange(t *testing.T) {
	t.Parallel()
	r := bounds.Range{Min: 3, Max: 9}
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(10))
	assert.Equal(t, 3, r.Clamp(0))
	assert.Equal(t, 9, r.Clamp(12))
}
