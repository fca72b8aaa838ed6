package roster

import (
	"time"
)

// =============================================================================
// DATE - Immutable calendar-day value (no wall-clock component)
// =============================================================================

// Date is a calendar day in UTC. All arithmetic returns new values; a Date
// is never mutated in place.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

// NewDate constructs a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string. Malformed input yields a FormatError.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &FormatError{Input: s, Want: "YYYY-MM-DD"}
	}
	return Date{t: t.UTC()}, nil
}

// MustDate is ParseDate for literals; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysUntil returns the number of calendar days from d to other
// (positive when other is later).
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// Properties
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) String() string        { return d.t.Format(dateLayout) }

// =============================================================================
// WEEK WINDOW - Monday-start week containing a date
// =============================================================================

// WeekWindow is the inclusive Monday..Sunday range used for weekly hour
// aggregation.
type WeekWindow struct {
	Start Date // Monday
	End   Date // Sunday
}

// WeekOf returns the Monday-start week containing d. Sunday belongs to the
// week that started six days earlier, not the one starting the next day.
func WeekOf(d Date) WeekWindow {
	back := int(d.Weekday()) - int(time.Monday)
	if d.Weekday() == time.Sunday {
		back = 6
	}
	start := d.AddDays(-back)
	return WeekWindow{Start: start, End: start.AddDays(6)}
}

// Contains reports whether day falls inside the window, inclusive on both ends.
func (w WeekWindow) Contains(day Date) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}
