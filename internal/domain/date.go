package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage and flag format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as the start of that day in loc.
// Date-only strings must never go through a general datetime parser: doing
// so lands them at UTC midnight, which is the previous day west of UTC.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	civil, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: use YYYY-MM-DD", ErrInvalidDate, s)
	}
	y, m, d := civil.Date()
	return DayStart(y, m, d, loc), nil
}

// FormatDate renders the calendar day of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns the first instant of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return DayStart(y, m, d, t.Location())
}

// AddDays moves t by n calendar days and returns the start of that day.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return DayStart(y, m, d+n, t.Location())
}

// DayStart returns the first instant of the given calendar day in loc.
// Out-of-range days are normalized as time.Date does. In zones where clocks
// jump forward at midnight that instant is the transition, not 00:00.
func DayStart(y int, m time.Month, d int, loc *time.Location) time.Time {
	y, m, d = time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if ty, tm, td := t.Date(); ty == y && tm == m && td == d {
		return t
	}
	if _, end := t.ZoneBounds(); !end.IsZero() {
		return end
	}
	return t
}

// SameDay reports whether a and b fall on the same calendar day, each read
// in its own location.
func SameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// CompareDays orders a and b by calendar day only: -1, 0 or 1.
func CompareDays(a, b time.Time) int {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	switch {
	case ya != yb:
		return sign(ya - yb)
	case ma != mb:
		return sign(int(ma) - int(mb))
	default:
		return sign(da - db)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
