package roster

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CLOCK ARITHMETIC - HH:MM wall-clock strings as minutes since midnight
// =============================================================================

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

var sixty = decimal.NewFromInt(60)

// ParseClock converts "HH:MM" to minutes since midnight (0..1439).
// Anything outside the 24-hour clock yields a FormatError.
func ParseClock(s string) (int, error) {
	if !clockPattern.MatchString(s) {
		return 0, &FormatError{Input: s, Want: "HH:MM"}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h*60 + m, nil
}

// DurationHours returns the absolute clock difference between two times in
// hours. It is deliberately not midnight-aware: "22:00","06:00" yields 16.
// Use ShiftDuration when end-before-start means the interval wraps.
func DurationHours(a, b string) (decimal.Decimal, error) {
	ma, err := ParseClock(a)
	if err != nil {
		return decimal.Zero, err
	}
	mb, err := ParseClock(b)
	if err != nil {
		return decimal.Zero, err
	}
	diff := mb - ma
	if diff < 0 {
		diff = -diff
	}
	return minutesToHours(diff), nil
}

// ShiftDuration returns the worked hours between a shift's start and end.
// An end time before the start time always means the shift crosses
// midnight, so "22:00","06:00" yields 8, not 16.
func ShiftDuration(start, end string) (decimal.Decimal, error) {
	ms, err := ParseClock(start)
	if err != nil {
		return decimal.Zero, err
	}
	me, err := ParseClock(end)
	if err != nil {
		return decimal.Zero, err
	}
	minutes := me - ms
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return minutesToHours(minutes), nil
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}
