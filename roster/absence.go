/*
absence.go - Absence interval rules

PURPOSE:
  Closed-interval date logic for absences: membership of a single day in an
  absence, overlap between a candidate absence and the employee's existing
  ones, and the absence validation orchestrator.

OVERLAP RULE:
  Two closed intervals [s1,e1] and [s2,e2] overlap iff s1 <= e2 and s2 <= e1.
  OverlappingAbsences reports every overlap in input order; ValidateAbsence
  deliberately cites only the first one found (documented truncation - the
  user fixes overlaps one at a time anyway).
*/
package roster

import (
	"fmt"
)

// DateInRange reports whether date falls inside the absence interval,
// inclusive on both ends.
func DateInRange(date Date, absence Absence) bool {
	return !date.Before(absence.StartDate) && !date.After(absence.EndDate)
}

// OverlappingAbsences returns every existing absence of the same employee
// whose interval intersects the candidate's, in input order. Absences of
// other employees never overlap by definition.
func OverlappingAbsences(candidate Absence, existing []Absence) []Absence {
	var out []Absence
	for _, a := range existing {
		if a.EmployeeID != candidate.EmployeeID {
			continue
		}
		if !candidate.StartDate.After(a.EndDate) && !a.StartDate.After(candidate.EndDate) {
			out = append(out, a)
		}
	}
	return out
}

// ValidateAbsence checks a candidate absence record:
//  1. end date before start date is critical
//  2. overlap with an existing absence of the same employee is a warning
//     citing the first overlap only
//
// The candidate carries no ID; it has not been persisted yet.
func (v *Validator) ValidateAbsence(candidate Absence, existing []Absence) ValidationResult {
	var errs []ValidationError

	if candidate.EndDate.Before(candidate.StartDate) {
		errs = append(errs, ValidationError{
			Severity: SeverityCritical,
			Message:  "end date must not be before start date",
			Field:    "end_date",
		})
	}

	if overlaps := OverlappingAbsences(candidate, existing); len(overlaps) > 0 {
		first := overlaps[0]
		errs = append(errs, ValidationError{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("overlapping absence: %s - %s (%s)",
				first.StartDate, first.EndDate, first.Type),
			Field: "start_date",
		})
	}

	return newResult(errs)
}
