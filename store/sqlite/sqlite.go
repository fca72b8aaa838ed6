/*
Package sqlite provides the SQLite-backed scheduling store.

PURPOSE:
  Persists employees, shift templates, absences, schedule entries and the
  active rule policy. In production, the same patterns apply to
  PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  employees:        workers and their employment fraction
  shifts:           weekly recurring shift templates
  absences:         inclusive closed date intervals of unavailability
  schedule_entries: dated assignments of employees to shift templates
  rule_limits:      weekly hour ceiling per employment type
  settings:         scalar policy values (minimum rest hours)

SERIALIZATION:
  Validation runs against a snapshot outside any transaction, so two
  callers can both validate the same assignment and both pass. The unique
  index on (employee_id, date, shift_id) makes the second insert fail
  instead of silently duplicating; a sync.RWMutex serializes writers
  within the process.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/roster.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  snap, _ := store.Snapshot(ctx)
  result, _ := validator.ValidateScheduleEntry(entry, snap)

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - roster/store.go: the Reader contract this store satisfies
  - roster/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/roster-engine/roster"
)

// ErrConflict is returned when an insert collides with the uniqueness
// constraint on (employee_id, date, shift_id).
var ErrConflict = errors.New("entry already exists for employee, date and shift")

// Store implements the scheduling persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps ":memory:" databases coherent (each pooled
	// connection would otherwise see its own empty database) and matches
	// the single-writer model.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		employment_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active'
	);

	CREATE TABLE IF NOT EXISTS shifts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day_of_week INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		required_staff INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS absences (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		type TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_absences_employee
		ON absences(employee_id);

	CREATE TABLE IF NOT EXISTS schedule_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		shift_id INTEGER NOT NULL REFERENCES shifts(id) ON DELETE CASCADE
	);

	-- Serializes the validate-then-persist race: a concurrent duplicate
	-- insert fails here instead of creating a second identical entry.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_unique_entry
		ON schedule_entries(employee_id, date, shift_id);

	CREATE INDEX IF NOT EXISTS idx_entries_employee_date
		ON schedule_entries(employee_id, date);
	CREATE INDEX IF NOT EXISTS idx_entries_date
		ON schedule_entries(date);

	CREATE TABLE IF NOT EXISTS rule_limits (
		employment_type TEXT PRIMARY KEY,
		weekly_hours TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// SaveEmployee inserts (zero ID) or updates (existing ID) an employee and
// returns the stored record.
func (s *Store) SaveEmployee(ctx context.Context, e roster.Employee) (roster.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO employees (first_name, last_name, role, employment_type, status)
			 VALUES (?, ?, ?, ?, ?)`,
			e.FirstName, e.LastName, e.Role, e.EmploymentType, e.Status)
		if err != nil {
			return roster.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return roster.Employee{}, err
		}
		e.ID = roster.EmployeeID(id)
		return e, nil
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE employees SET first_name = ?, last_name = ?, role = ?, employment_type = ?, status = ?
		 WHERE id = ?`,
		e.FirstName, e.LastName, e.Role, e.EmploymentType, e.Status, int64(e.ID))
	if err != nil {
		return roster.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return e, nil
}

// GetEmployee returns a single employee, or nil when not found.
func (s *Store) GetEmployee(ctx context.Context, id roster.EmployeeID) (*roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, role, employment_type, status
		 FROM employees WHERE id = ?`, int64(id))

	var e roster.Employee
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Role, &e.EmploymentType, &e.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id roster.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, int64(id))
	return err
}

func (s *Store) ListEmployees(ctx context.Context) ([]roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listEmployees(ctx)
}

func (s *Store) listEmployees(ctx context.Context) ([]roster.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, role, employment_type, status
		 FROM employees ORDER BY last_name, first_name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []roster.Employee
	for rows.Next() {
		var e roster.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Role, &e.EmploymentType, &e.Status); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// =============================================================================
// SHIFTS
// =============================================================================

func (s *Store) SaveShift(ctx context.Context, sh roster.Shift) (roster.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sh.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO shifts (day_of_week, start_time, end_time, required_staff)
			 VALUES (?, ?, ?, ?)`,
			sh.DayOfWeek, sh.StartTime, sh.EndTime, sh.RequiredStaff)
		if err != nil {
			return roster.Shift{}, fmt.Errorf("failed to insert shift: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return roster.Shift{}, err
		}
		sh.ID = roster.ShiftID(id)
		return sh, nil
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE shifts SET day_of_week = ?, start_time = ?, end_time = ?, required_staff = ?
		 WHERE id = ?`,
		sh.DayOfWeek, sh.StartTime, sh.EndTime, sh.RequiredStaff, int64(sh.ID))
	if err != nil {
		return roster.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return sh, nil
}

func (s *Store) DeleteShift(ctx context.Context, id roster.ShiftID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, int64(id))
	return err
}

func (s *Store) ListShifts(ctx context.Context) ([]roster.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listShifts(ctx)
}

func (s *Store) listShifts(ctx context.Context) ([]roster.Shift, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, day_of_week, start_time, end_time, required_staff
		 FROM shifts ORDER BY start_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []roster.Shift
	for rows.Next() {
		var sh roster.Shift
		if err := rows.Scan(&sh.ID, &sh.DayOfWeek, &sh.StartTime, &sh.EndTime, &sh.RequiredStaff); err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

// =============================================================================
// ABSENCES
// =============================================================================

func (s *Store) SaveAbsence(ctx context.Context, a roster.Absence) (roster.Absence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO absences (employee_id, start_date, end_date, type)
			 VALUES (?, ?, ?, ?)`,
			int64(a.EmployeeID), a.StartDate.String(), a.EndDate.String(), a.Type)
		if err != nil {
			return roster.Absence{}, fmt.Errorf("failed to insert absence: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return roster.Absence{}, err
		}
		a.ID = roster.AbsenceID(id)
		return a, nil
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE absences SET employee_id = ?, start_date = ?, end_date = ?, type = ?
		 WHERE id = ?`,
		int64(a.EmployeeID), a.StartDate.String(), a.EndDate.String(), a.Type, int64(a.ID))
	if err != nil {
		return roster.Absence{}, fmt.Errorf("failed to update absence: %w", err)
	}
	return a, nil
}

func (s *Store) DeleteAbsence(ctx context.Context, id roster.AbsenceID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM absences WHERE id = ?`, int64(id))
	return err
}

func (s *Store) ListAbsences(ctx context.Context) ([]roster.Absence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listAbsences(ctx)
}

func (s *Store) listAbsences(ctx context.Context) ([]roster.Absence, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, start_date, end_date, type
		 FROM absences ORDER BY start_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []roster.Absence
	for rows.Next() {
		var a roster.Absence
		var start, end string
		if err := rows.Scan(&a.ID, &a.EmployeeID, &start, &end, &a.Type); err != nil {
			return nil, err
		}
		if a.StartDate, err = roster.ParseDate(start); err != nil {
			return nil, err
		}
		if a.EndDate, err = roster.ParseDate(end); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// =============================================================================
// SCHEDULE ENTRIES
// =============================================================================

// SaveEntry inserts (zero ID) or updates (existing ID) a schedule entry.
// A duplicate (employee, date, shift) insert returns ErrConflict.
func (s *Store) SaveEntry(ctx context.Context, e roster.ScheduleEntry) (roster.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO schedule_entries (employee_id, date, shift_id)
			 VALUES (?, ?, ?)`,
			int64(e.EmployeeID), e.Date.String(), int64(e.ShiftID))
		if err != nil {
			if isUniqueViolation(err) {
				return roster.ScheduleEntry{}, ErrConflict
			}
			return roster.ScheduleEntry{}, fmt.Errorf("failed to insert entry: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return roster.ScheduleEntry{}, err
		}
		e.ID = roster.EntryID(id)
		return e, nil
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE schedule_entries SET employee_id = ?, date = ?, shift_id = ?
		 WHERE id = ?`,
		int64(e.EmployeeID), e.Date.String(), int64(e.ShiftID), int64(e.ID))
	if err != nil {
		if isUniqueViolation(err) {
			return roster.ScheduleEntry{}, ErrConflict
		}
		return roster.ScheduleEntry{}, fmt.Errorf("failed to update entry: %w", err)
	}
	return e, nil
}

// GetEntry returns a single entry, or nil when not found.
func (s *Store) GetEntry(ctx context.Context, id roster.EntryID) (*roster.ScheduleEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, employee_id, date, shift_id FROM schedule_entries WHERE id = ?`, int64(id))

	var e roster.ScheduleEntry
	var date string
	err := row.Scan(&e.ID, &e.EmployeeID, &date, &e.ShiftID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if e.Date, err = roster.ParseDate(date); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) DeleteEntry(ctx context.Context, id roster.EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM schedule_entries WHERE id = ?`, int64(id))
	return err
}

func (s *Store) ListEntries(ctx context.Context) ([]roster.ScheduleEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listEntries(ctx)
}

func (s *Store) listEntries(ctx context.Context) ([]roster.ScheduleEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, date, shift_id
		 FROM schedule_entries ORDER BY date, shift_id, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []roster.ScheduleEntry
	for rows.Next() {
		var e roster.ScheduleEntry
		var date string
		if err := rows.Scan(&e.ID, &e.EmployeeID, &date, &e.ShiftID); err != nil {
			return nil, err
		}
		if e.Date, err = roster.ParseDate(date); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Snapshot returns a consistent view of the full scheduling state under a
// single read lock.
func (s *Store) Snapshot(ctx context.Context) (roster.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees, err := s.listEmployees(ctx)
	if err != nil {
		return roster.Snapshot{}, err
	}
	shifts, err := s.listShifts(ctx)
	if err != nil {
		return roster.Snapshot{}, err
	}
	absences, err := s.listAbsences(ctx)
	if err != nil {
		return roster.Snapshot{}, err
	}
	entries, err := s.listEntries(ctx)
	if err != nil {
		return roster.Snapshot{}, err
	}
	return roster.Snapshot{
		Employees: employees,
		Shifts:    shifts,
		Absences:  absences,
		Entries:   entries,
	}, nil
}

// =============================================================================
// RULE POLICY
// =============================================================================

const settingMinRestHours = "min_rest_hours"

// LoadRulePolicy applies persisted rule overrides on top of base. Limits
// never stored keep their base values, so configuration-supplied limits
// survive a fresh database.
func (s *Store) LoadRulePolicy(ctx context.Context, base roster.RulePolicy) (roster.RulePolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	policy := base
	limits := make(map[string]decimal.Decimal, len(base.WeeklyLimits))
	for etat, hours := range base.WeeklyLimits {
		limits[etat] = hours
	}
	policy.WeeklyLimits = limits

	rows, err := s.db.QueryContext(ctx, `SELECT employment_type, weekly_hours FROM rule_limits`)
	if err != nil {
		return roster.RulePolicy{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var etat, hours string
		if err := rows.Scan(&etat, &hours); err != nil {
			return roster.RulePolicy{}, err
		}
		limit, err := decimal.NewFromString(hours)
		if err != nil {
			return roster.RulePolicy{}, fmt.Errorf("corrupt weekly limit for %q: %w", etat, err)
		}
		policy.WeeklyLimits[etat] = limit
	}
	if err := rows.Err(); err != nil {
		return roster.RulePolicy{}, err
	}

	var rest string
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingMinRestHours).Scan(&rest)
	if err == nil {
		floor, perr := decimal.NewFromString(rest)
		if perr != nil {
			return roster.RulePolicy{}, fmt.Errorf("corrupt min rest hours: %w", perr)
		}
		policy.MinRestHours = floor
	} else if !errors.Is(err, sql.ErrNoRows) {
		return roster.RulePolicy{}, err
	}

	return policy, nil
}

// SaveRulePolicy persists the full rule policy, replacing stored limits.
func (s *Store) SaveRulePolicy(ctx context.Context, policy roster.RulePolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rule_limits`); err != nil {
		return err
	}
	for etat, hours := range policy.WeeklyLimits {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rule_limits (employment_type, weekly_hours) VALUES (?, ?)`,
			etat, hours.String()); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		settingMinRestHours, policy.MinRestHours.String()); err != nil {
		return err
	}

	return tx.Commit()
}

// isUniqueViolation matches SQLite's unique-constraint failures without
// depending on driver error codes.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
