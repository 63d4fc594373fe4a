package clock

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Clock abstracts wall-clock access so date-sensitive logic can be tested
// deterministically.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock in server-local time.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// DateString renders t as a local-calendar YYYY-MM-DD string.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// NextMidnight returns the first instant of the calendar day after t, plus
// offset, in t's location.
func NextMidnight(t time.Time, offset time.Duration) time.Time {
	next := time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
	return next.Add(offset)
}
