/*
Package roster provides the shift-assignment validation engine.

PURPOSE:
  This package contains the domain model and pure rule evaluation for a
  workforce schedule: deciding whether a proposed roster entry (an employee
  assigned to a shift template on a date) or a proposed absence is admissible
  given current assignments, recorded absences, and policy limits on rest
  time and weekly workload.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee, Shift, Absence, ScheduleEntry: the scheduling entities
  - Severity: a closed two-value enum (critical blocks, warning advises)
  - ValidationError / ValidationResult: rule outcomes as data, not panics
  - Snapshot: a read-only view of current state passed in per call

DESIGN PRINCIPLES:
  1. Purity: every validation is a function of its inputs, no I/O, no
     shared state, no clock reads
  2. Precision: worked-hour totals use decimal.Decimal, never float64
  3. Type Safety: distinct ID types prevent mixing employee/shift/entry IDs
  4. Outcomes as data: business-rule violations are ValidationErrors;
     only structurally malformed input (bad HH:MM or date strings)
     surfaces as a Go error

USAGE:
  v := roster.NewValidator(roster.DefaultRulePolicy())
  result, err := v.ValidateScheduleEntry(entry, snapshot)
  if err != nil {
      // malformed input, nothing was evaluated
  }
  if result.Valid {
      // persist; surface result.Errors (warnings) to the user
  }

SEE ALSO:
  - validate.go: the entry validation orchestrator
  - absence.go: absence overlap rules
  - calendar.go: grid grouping and reassignment
*/
package roster

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// IDs are database-assigned. Zero means "not yet persisted"; candidate
// records carry zero IDs until saved.
type (
	EmployeeID int64
	ShiftID    int64
	AbsenceID  int64
	EntryID    int64
)

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is a scheduled worker. EmploymentType is a policy key mapping to
// a weekly-hour ceiling (see RulePolicy).
type Employee struct {
	ID             EmployeeID
	FirstName      string
	LastName       string
	Role           string
	EmploymentType string
	Status         string
}

// DisplayName is the name shown in schedule grids and used for ordering
// entries within a shift cell.
func (e Employee) DisplayName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// Employment fraction keys. These are the values the policy table knows;
// any other EmploymentType falls back to the full-time ceiling.
const (
	FullTime         = "Pełny etat"
	ThreeQuarterTime = "3/4 etatu"
	HalfTime         = "Pół etatu"
	QuarterTime      = "1/4 etatu"
)

// =============================================================================
// SHIFT - Recurring weekly template, not a dated occurrence
// =============================================================================

// Shift is a weekly recurring template. An end time earlier than the start
// time is a valid state meaning the shift crosses midnight.
type Shift struct {
	ID            ShiftID
	DayOfWeek     int // 0=Sunday .. 6=Saturday
	StartTime     string
	EndTime       string
	RequiredStaff int
}

// Duration returns the worked hours of one occurrence of the shift.
// Overnight shifts (end before start) wrap past midnight.
func (s Shift) Duration() (decimal.Decimal, error) {
	return ShiftDuration(s.StartTime, s.EndTime)
}

// =============================================================================
// ABSENCE - Inclusive closed date interval of unavailability
// =============================================================================

type Absence struct {
	ID         AbsenceID
	EmployeeID EmployeeID
	StartDate  Date
	EndDate    Date
	Type       string
}

// =============================================================================
// SCHEDULE ENTRY - One employee working one shift template on one date
// =============================================================================

type ScheduleEntry struct {
	ID         EntryID
	EmployeeID EmployeeID
	Date       Date
	ShiftID    ShiftID
}

// =============================================================================
// VALIDATION OUTCOMES
// =============================================================================

// Severity is a closed enum. Anything other than the two constants below is
// a programming error; ValidationResult only inspects SeverityCritical.
type Severity string

const (
	SeverityCritical Severity = "critical" // blocks persistence
	SeverityWarning  Severity = "warning"  // surfaced, never blocks
)

// ValidationError is advisory/blocking metadata about one rule finding.
// It carries no remediation.
type ValidationError struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
}

// ValidationResult is the outcome of one orchestrated evaluation.
// Valid is true iff no error has SeverityCritical.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors"`
}

// HasCritical reports whether any finding blocks persistence.
func (r ValidationResult) HasCritical() bool {
	for _, e := range r.Errors {
		if e.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// newResult derives Valid from the findings. All orchestrators return
// through here so the Valid invariant cannot drift.
func newResult(errs []ValidationError) ValidationResult {
	r := ValidationResult{Errors: errs}
	r.Valid = !r.HasCritical()
	if r.Errors == nil {
		r.Errors = []ValidationError{}
	}
	return r
}

// =============================================================================
// SNAPSHOT - Read-only state the engine validates against
// =============================================================================

// Snapshot is the full current state a validation call runs against.
// The engine borrows it read-only; callers fetch a fresh one immediately
// before validating. No transaction isolation is provided here - the
// validate-then-persist race is serialized by the persistence layer.
type Snapshot struct {
	Employees []Employee
	Shifts    []Shift
	Absences  []Absence
	Entries   []ScheduleEntry
}

// EmployeeByID resolves an employee reference.
func (s Snapshot) EmployeeByID(id EmployeeID) (Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// ShiftByID resolves a shift template reference.
func (s Snapshot) ShiftByID(id ShiftID) (Shift, bool) {
	for _, sh := range s.Shifts {
		if sh.ID == id {
			return sh, true
		}
	}
	return Shift{}, false
}

// AbsencesFor returns the absences recorded for one employee, in input order.
func (s Snapshot) AbsencesFor(id EmployeeID) []Absence {
	var out []Absence
	for _, a := range s.Absences {
		if a.EmployeeID == id {
			out = append(out, a)
		}
	}
	return out
}
