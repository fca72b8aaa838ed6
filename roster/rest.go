/*
rest.go - Rest period between shifts on consecutive days

PURPOSE:
  Enforces the minimum consecutive rest between the end of the most recent
  prior shift and the start of the candidate shift. Only adjacent-day
  transitions are checked; with a gap of two or more calendar days the rest
  is trivially sufficient.

WRAPAROUND:
  restMinutes = candidateStart + 1440 - priorEnd. A prior shift that runs
  past midnight relative to its own nominal day makes this negative, in
  which case another 1440 is added. The modular arithmetic covers every
  overnight combination without case analysis.
*/
package roster

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// checkRest evaluates the rest rule for a candidate entry whose employee
// and shift have already been resolved. Returns nil when the rule passes
// or does not apply.
func (v *Validator) checkRest(entry ScheduleEntry, shift Shift, snap Snapshot) (*ValidationError, error) {
	prior, ok := latestPriorEntry(entry, snap.Entries)
	if !ok {
		return nil, nil
	}
	if prior.Date.DaysUntil(entry.Date) != 1 {
		return nil, nil
	}

	priorShift, ok := snap.ShiftByID(prior.ShiftID)
	if !ok {
		// Dangling shift reference on a stored entry; the rest rule
		// cannot be evaluated against it.
		return nil, nil
	}

	priorEnd, err := ParseClock(priorShift.EndTime)
	if err != nil {
		return nil, err
	}
	start, err := ParseClock(shift.StartTime)
	if err != nil {
		return nil, err
	}

	restMinutes := start + minutesPerDay - priorEnd
	if restMinutes < 0 {
		restMinutes += minutesPerDay
	}
	restHours := minutesToHours(restMinutes)

	if restHours.LessThan(v.Policy.MinRestHours) {
		return &ValidationError{
			Severity: SeverityCritical,
			Message: fmt.Sprintf(
				"%s-hour rest between shifts not met (only %sh). Previous shift: %s %s, next shift: %s %s",
				minRest(v.Policy.MinRestHours), restHours.StringFixed(1),
				prior.Date, priorShift.EndTime,
				entry.Date, shift.StartTime),
			Field: "date",
		}, nil
	}
	return nil, nil
}

// latestPriorEntry returns the same employee's most recent entry strictly
// before the candidate date, excluding the candidate's own persisted row.
func latestPriorEntry(entry ScheduleEntry, entries []ScheduleEntry) (ScheduleEntry, bool) {
	var latest ScheduleEntry
	found := false
	for _, e := range entries {
		if e.EmployeeID != entry.EmployeeID {
			continue
		}
		if entry.ID != 0 && e.ID == entry.ID {
			continue
		}
		if !e.Date.Before(entry.Date) {
			continue
		}
		if !found || e.Date.After(latest.Date) {
			latest = e
			found = true
		}
	}
	return latest, found
}

// minRest renders the floor without trailing zeros ("11", not "11.000").
func minRest(d decimal.Decimal) string {
	return d.String()
}
