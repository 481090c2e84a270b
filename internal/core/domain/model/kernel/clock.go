package kernel

import "time"

// Clock is the time source of the lifecycle engine. History timestamps, createdAt and
// the "today" window of the daily summaries are all read from it.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock in a fixed location. The location decides where
// the calendar day starts for daily summaries.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock reporting time in loc; a nil loc means time.Local.
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return SystemClock{loc: loc}
}

// Now returns the current time in the clock's location.
func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// DayBounds returns the half-open calendar day [start, end) containing t, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// WithinDay reports whether at falls inside the calendar day containing now.
func WithinDay(at, now time.Time) bool {
	start, end := DayBounds(now)
	return !at.Before(start) && at.Before(end)
}
