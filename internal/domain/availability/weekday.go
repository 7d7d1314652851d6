package availability

import "time"

// Weekday uses 0 = Sunday through 6 = Saturday, the same numbering as
// time.Weekday.
type Weekday int16

func NewWeekday(v int) (Weekday, error) {
	if v < 0 || v > 6 {
		return 0, ErrInvalidWeekday
	}
	return Weekday(v), nil
}

func WeekdayOf(date time.Time) Weekday {
	return Weekday(date.Weekday())
}

func (w Weekday) Int() int { return int(w) }

func (w Weekday) String() string {
	return time.Weekday(w).String()
}

const DateLayout = "2006-01-02"

// ParseDate reads a calendar date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// CalendarDay drops the clock and zone of t, keeping the date as read in
// t's own location. The result is midnight UTC, the same shape pgtype.Date
// scans into.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameOrAfter(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad >= bd
}
