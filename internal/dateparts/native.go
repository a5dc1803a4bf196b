package dateparts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"datefield/internal/model"
)

// NativeText renders t the way the hidden canonical control holds it:
// YYYY-MM-DD for a month view, YYYY-MM for a year view, YYYY otherwise.
func NativeText(t *time.Time, maxDetail model.Granularity) string {
	if t == nil {
		return ""
	}
	switch {
	case maxDetail.ShowsDay():
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	case maxDetail.ShowsMonth():
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	default:
		return strconv.Itoa(t.Year())
	}
}

// ParseNative reads the raw text of the hidden canonical control into a local
// midnight date. It returns nil for empty text and ok=false when the year is
// not a number. A missing or unreadable month means January; month 00 rolls
// back to December of the previous year. A missing, unreadable or zero day
// means the 1st.
func ParseNative(raw string) (t *time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	pieces := strings.Split(raw, "-")
	year, err := strconv.Atoi(pieces[0])
	if err != nil {
		return nil, false
	}
	month, day := 1, 1
	if len(pieces) > 1 {
		if n, err := strconv.Atoi(pieces[1]); err == nil {
			month = n
		}
	}
	if len(pieces) > 2 {
		if n, err := strconv.Atoi(pieces[2]); err == nil && n != 0 {
			day = n
		}
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	return &d, true
}
