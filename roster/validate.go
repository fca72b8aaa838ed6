/*
validate.go - Entry validation orchestrator

PURPOSE:
  Composes the individual rules into one ordered evaluation of a candidate
  schedule entry. The ordering is part of the contract:

    1. resolve employee     missing -> single critical, stop
    2. resolve shift        missing -> single critical, stop
    3. absence overlaps     each hit is critical
    4. rest period          possible critical
    5. same-day duplicate   warning
    6. weekly hour ceiling  possible warning

  Only unresolvable references short-circuit; every other rule runs so the
  caller sees all findings at once. Valid is true iff nothing critical was
  found - warnings are surfaced but never block.

PURITY:
  The orchestrator reads only its arguments. Calling it twice with the same
  inputs returns identical results; callers fetch a fresh Snapshot
  immediately before validating and serialize writes themselves.
*/
package roster

import (
	"fmt"
)

// ValidateScheduleEntry evaluates a candidate assignment against the
// current state. A non-nil error means structurally malformed stored data
// (unparseable shift times), not a rule violation; rule violations are the
// ValidationResult's job.
func (v *Validator) ValidateScheduleEntry(entry ScheduleEntry, snap Snapshot) (ValidationResult, error) {
	var errs []ValidationError

	employee, ok := snap.EmployeeByID(entry.EmployeeID)
	if !ok {
		errs = append(errs, ValidationError{
			Severity: SeverityCritical,
			Message:  "employee not found",
			Field:    "employee_id",
		})
		return newResult(errs), nil
	}

	shift, ok := snap.ShiftByID(entry.ShiftID)
	if !ok {
		errs = append(errs, ValidationError{
			Severity: SeverityCritical,
			Message:  "shift definition not found",
			Field:    "shift_id",
		})
		return newResult(errs), nil
	}

	for _, absence := range snap.AbsencesFor(entry.EmployeeID) {
		if DateInRange(entry.Date, absence) {
			errs = append(errs, ValidationError{
				Severity: SeverityCritical,
				Message: fmt.Sprintf("employee is absent (%s) on this day (%s - %s)",
					absence.Type, absence.StartDate, absence.EndDate),
				Field: "date",
			})
		}
	}

	restErr, err := v.checkRest(entry, shift, snap)
	if err != nil {
		return ValidationResult{}, err
	}
	if restErr != nil {
		errs = append(errs, *restErr)
	}

	if hasSameDayEntry(entry, snap.Entries) {
		errs = append(errs, ValidationError{
			Severity: SeverityWarning,
			Message:  "employee already has a shift assigned on this day",
			Field:    "date",
		})
	}

	weekErr, err := v.checkWeeklyHours(entry, employee, shift, snap)
	if err != nil {
		return ValidationResult{}, err
	}
	if weekErr != nil {
		errs = append(errs, *weekErr)
	}

	return newResult(errs), nil
}

// hasSameDayEntry reports whether the employee already has another entry on
// the candidate date. Multiple shifts on one day are suspicious, not
// forbidden, so the caller turns this into a warning.
func hasSameDayEntry(entry ScheduleEntry, entries []ScheduleEntry) bool {
	for _, e := range entries {
		if e.EmployeeID != entry.EmployeeID {
			continue
		}
		if entry.ID != 0 && e.ID == entry.ID {
			continue
		}
		if e.Date.Equal(entry.Date) {
			return true
		}
	}
	return false
}
