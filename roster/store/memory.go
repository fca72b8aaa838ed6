// Package store provides an in-memory implementation of the scheduling
// store (for testing/dev).
package store

import (
	"context"
	"sync"

	"github.com/warp/roster-engine/roster"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory holds the full scheduling state in maps. IDs are assigned from a
// per-entity counter on first save, mirroring database autoincrement.
type Memory struct {
	mu sync.RWMutex

	employees map[roster.EmployeeID]roster.Employee
	shifts    map[roster.ShiftID]roster.Shift
	absences  map[roster.AbsenceID]roster.Absence
	entries   map[roster.EntryID]roster.ScheduleEntry

	nextID int64
	policy *roster.RulePolicy
}

func NewMemory() *Memory {
	return &Memory{
		employees: make(map[roster.EmployeeID]roster.Employee),
		shifts:    make(map[roster.ShiftID]roster.Shift),
		absences:  make(map[roster.AbsenceID]roster.Absence),
		entries:   make(map[roster.EntryID]roster.ScheduleEntry),
	}
}

func (m *Memory) allocate() int64 {
	m.nextID++
	return m.nextID
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// SaveEmployee inserts (zero ID) or replaces (existing ID) an employee and
// returns its ID.
func (m *Memory) SaveEmployee(_ context.Context, e roster.Employee) (roster.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == 0 {
		e.ID = roster.EmployeeID(m.allocate())
	}
	m.employees[e.ID] = e
	return e, nil
}

func (m *Memory) DeleteEmployee(_ context.Context, id roster.EmployeeID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.employees, id)
	return nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]roster.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]roster.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	return out, nil
}

// =============================================================================
// SHIFTS
// =============================================================================

func (m *Memory) SaveShift(_ context.Context, s roster.Shift) (roster.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == 0 {
		s.ID = roster.ShiftID(m.allocate())
	}
	m.shifts[s.ID] = s
	return s, nil
}

func (m *Memory) DeleteShift(_ context.Context, id roster.ShiftID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.shifts, id)
	return nil
}

func (m *Memory) ListShifts(_ context.Context) ([]roster.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]roster.Shift, 0, len(m.shifts))
	for _, s := range m.shifts {
		out = append(out, s)
	}
	return out, nil
}

// =============================================================================
// ABSENCES
// =============================================================================

func (m *Memory) SaveAbsence(_ context.Context, a roster.Absence) (roster.Absence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == 0 {
		a.ID = roster.AbsenceID(m.allocate())
	}
	m.absences[a.ID] = a
	return a, nil
}

func (m *Memory) DeleteAbsence(_ context.Context, id roster.AbsenceID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.absences, id)
	return nil
}

func (m *Memory) ListAbsences(_ context.Context) ([]roster.Absence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]roster.Absence, 0, len(m.absences))
	for _, a := range m.absences {
		out = append(out, a)
	}
	return out, nil
}

// =============================================================================
// SCHEDULE ENTRIES
// =============================================================================

func (m *Memory) SaveEntry(_ context.Context, e roster.ScheduleEntry) (roster.ScheduleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == 0 {
		e.ID = roster.EntryID(m.allocate())
	}
	m.entries[e.ID] = e
	return e, nil
}

func (m *Memory) DeleteEntry(_ context.Context, id roster.EntryID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *Memory) ListEntries(_ context.Context) ([]roster.ScheduleEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]roster.ScheduleEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

// =============================================================================
// RULE POLICY
// =============================================================================

// LoadRulePolicy returns the saved policy, or base when nothing was saved
// yet.
func (m *Memory) LoadRulePolicy(_ context.Context, base roster.RulePolicy) (roster.RulePolicy, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.policy == nil {
		return base, nil
	}
	return *m.policy, nil
}

func (m *Memory) SaveRulePolicy(_ context.Context, p roster.RulePolicy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.policy = &p
	return nil
}

// Snapshot returns a consistent read snapshot under one lock acquisition.
func (m *Memory) Snapshot(ctx context.Context) (roster.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := roster.Snapshot{}
	for _, e := range m.employees {
		snap.Employees = append(snap.Employees, e)
	}
	for _, s := range m.shifts {
		snap.Shifts = append(snap.Shifts, s)
	}
	for _, a := range m.absences {
		snap.Absences = append(snap.Absences, a)
	}
	for _, e := range m.entries {
		snap.Entries = append(snap.Entries, e)
	}
	return snap, nil
}
