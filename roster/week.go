/*
week.go - Weekly hour aggregation against the employment-fraction ceiling

PURPOSE:
  Sums worked hours for an employee inside the Monday..Sunday week
  containing a candidate date, including the candidate shift itself, and
  compares the total against the ceiling for the employee's employment
  type. Overage is advisory only: schedulers routinely overbook a week on
  purpose, so the finding is a warning and never blocks.

DURATION:
  Hours come from ShiftDuration, so overnight templates contribute their
  true worked time (22:00-06:00 counts 8 hours toward the week the entry's
  date falls in, not 16).
*/
package roster

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// checkWeeklyHours evaluates the weekly ceiling for a candidate entry whose
// employee and shift have already been resolved. Returns nil when the week
// stays within the limit.
func (v *Validator) checkWeeklyHours(entry ScheduleEntry, employee Employee, shift Shift, snap Snapshot) (*ValidationError, error) {
	week := WeekOf(entry.Date)

	total := decimal.Zero
	for _, e := range snap.Entries {
		if e.EmployeeID != entry.EmployeeID {
			continue
		}
		if entry.ID != 0 && e.ID == entry.ID {
			continue
		}
		if !week.Contains(e.Date) {
			continue
		}
		weekShift, ok := snap.ShiftByID(e.ShiftID)
		if !ok {
			continue
		}
		hours, err := weekShift.Duration()
		if err != nil {
			return nil, err
		}
		total = total.Add(hours)
	}

	candidateHours, err := shift.Duration()
	if err != nil {
		return nil, err
	}
	total = total.Add(candidateHours)

	limit := v.Policy.WeeklyLimitFor(employee.EmploymentType)
	if total.GreaterThan(limit) {
		return &ValidationError{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("weekly hour limit exceeded (%sh / %sh for %s)",
				total.StringFixed(1), limit, employee.EmploymentType),
			Field: "date",
		}, nil
	}
	return nil, nil
}
