/*
store.go - Read-only snapshot provider contract

PURPOSE:
  The engine has zero dependency on any storage technology; it validates
  against a Snapshot value. Reader is the minimal interface a persistence
  layer must expose for callers to assemble one. Implementations live in
  roster/store (in-memory) and store/sqlite (production).

SNAPSHOT FRESHNESS:
  Callers fetch a snapshot immediately before validating. The engine trusts
  its inputs to be current at call time; serializing the validate-then-
  persist window is the store's job (the SQLite layer does it with a
  uniqueness constraint and a single-writer mutex).
*/
package roster

import "context"

// Reader lists the current scheduling state. All four lists are full
// scans; the data set is small (one organization's roster).
type Reader interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	ListShifts(ctx context.Context) ([]Shift, error)
	ListAbsences(ctx context.Context) ([]Absence, error)
	ListEntries(ctx context.Context) ([]ScheduleEntry, error)
}

// LoadSnapshot assembles a validation snapshot from a Reader.
func LoadSnapshot(ctx context.Context, r Reader) (Snapshot, error) {
	employees, err := r.ListEmployees(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	shifts, err := r.ListShifts(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	absences, err := r.ListAbsences(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	entries, err := r.ListEntries(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Employees: employees,
		Shifts:    shifts,
		Absences:  absences,
		Entries:   entries,
	}, nil
}
