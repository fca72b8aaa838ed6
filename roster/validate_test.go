package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/roster-engine/roster"
	"github.com/warp/roster-engine/roster/store"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

func employee(id int64, first, last, etat string) roster.Employee {
	return roster.Employee{
		ID:             roster.EmployeeID(id),
		FirstName:      first,
		LastName:       last,
		EmploymentType: etat,
		Status:         "active",
	}
}

func shift(id int64, start, end string) roster.Shift {
	return roster.Shift{
		ID:            roster.ShiftID(id),
		DayOfWeek:     1,
		StartTime:     start,
		EndTime:       end,
		RequiredStaff: 1,
	}
}

func entry(id, employeeID int64, date string, shiftID int64) roster.ScheduleEntry {
	return roster.ScheduleEntry{
		ID:         roster.EntryID(id),
		EmployeeID: roster.EmployeeID(employeeID),
		Date:       roster.MustDate(date),
		ShiftID:    roster.ShiftID(shiftID),
	}
}

func baseSnapshot() roster.Snapshot {
	return roster.Snapshot{
		Employees: []roster.Employee{
			employee(1, "Anna", "Kowalska", roster.FullTime),
			employee(2, "Jan", "Nowak", roster.HalfTime),
		},
		Shifts: []roster.Shift{
			shift(1, "08:00", "16:00"), // day shift, 8h
			shift(2, "22:00", "06:00"), // night shift, 8h overnight
			shift(3, "08:00", "18:00"), // long shift, 10h
		},
	}
}

func criticalCount(r roster.ValidationResult) int {
	n := 0
	for _, e := range r.Errors {
		if e.Severity == roster.SeverityCritical {
			n++
		}
	}
	return n
}

// =============================================================================
// REFERENCE RESOLUTION
// =============================================================================

func TestValidateScheduleEntry_MissingEmployeeShortCircuits(t *testing.T) {
	// GIVEN: a candidate referencing an unknown employee
	// THEN: exactly one critical error, nothing else attempted
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()

	result, err := v.ValidateScheduleEntry(entry(0, 99, "2024-05-06", 1), snap)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, roster.SeverityCritical, result.Errors[0].Severity)
	assert.Equal(t, "employee_id", result.Errors[0].Field)
}

func TestValidateScheduleEntry_MissingShiftShortCircuits(t *testing.T) {
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()

	result, err := v.ValidateScheduleEntry(entry(0, 1, "2024-05-06", 99), snap)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "shift_id", result.Errors[0].Field)
}

// =============================================================================
// ABSENCE CONFLICTS
// =============================================================================

func TestValidateScheduleEntry_DateInsideAbsenceIsCritical(t *testing.T) {
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Absences = []roster.Absence{
		absence(1, 1, "2024-01-10", "2024-01-15", "urlop"),
	}

	result, err := v.ValidateScheduleEntry(entry(0, 1, "2024-01-12", 1), snap)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Equal(t, 1, criticalCount(result))
	assert.Contains(t, result.Errors[0].Message, "urlop")
	assert.Contains(t, result.Errors[0].Message, "2024-01-10 - 2024-01-15")
}

func TestValidateScheduleEntry_EveryOverlappingAbsenceReported(t *testing.T) {
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Absences = []roster.Absence{
		absence(1, 1, "2024-01-12", "2024-01-12", "urlop"),
		absence(2, 1, "2024-01-10", "2024-01-14", "zwolnienie"),
		absence(3, 2, "2024-01-12", "2024-01-12", "urlop"), // other employee
	}

	result, err := v.ValidateScheduleEntry(entry(0, 1, "2024-01-12", 1), snap)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, 2, criticalCount(result), "both overlapping absences are cited")
}

// =============================================================================
// REST PERIOD
// =============================================================================

func TestValidateScheduleEntry_RestJustUnderFloorIsCritical(t *testing.T) {
	// Prior shift ends 22:00; a start of 08:54 the next day leaves 10.9h.
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Shifts = append(snap.Shifts,
		shift(10, "14:00", "22:00"),
		shift(11, "08:54", "16:00"),
	)
	snap.Entries = []roster.ScheduleEntry{entry(1, 1, "2024-05-06", 10)}

	result, err := v.ValidateScheduleEntry(entry(0, 1, "2024-05-07", 11), snap)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Equal(t, 1, criticalCount(result))
	assert.Contains(t, result.Errors[0].Message, "10.9")
	assert.Contains(t, result.Errors[0].Message, "2024-05-06")
	assert.Contains(t, result.Errors[0].Message, "2024-05-07")
}

func TestValidateScheduleEntry_RestExactlyAtFloorPasses(t *testing.T) {
	// Prior shift ends 22:00; a start of 09:00 the next day is exactly 11h.
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Shifts = append(snap.Shifts,
		shift(10, "14:00", "22:00"),
		shift(11, "09:00", "17:00"),
	)
	snap.Entries = []roster.ScheduleEntry{entry(1, 1, "2024-05-06", 10)}

	result, err := v.ValidateScheduleEntry(entry(0, 1, "2024-05-07", 11), snap)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateScheduleEntry_RestSkippedAcrossGapDays(t *testing.T) {
	// Same tight times, but two calendar days apart: no rest check.
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Shifts = append(snap.Shifts,
		shift(10, "14:00", "22:00"),
		shift(11, "08:54", "16:00"),
	)
	snap.Entries = []roster.ScheduleEntry{entry(1, 1, "2024-05-06", 10)}

	result, err := v.ValidateScheduleEntry(entry(0, 1, "2024-05-08", 11), snap)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateScheduleEntry_RestUsesMostRecentPriorEntry(t *testing.T) {
	// An old comfortable entry must not mask yesterday's tight one.
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Shifts = append(snap.Shifts,
		shift(10, "14:00", "22:00"),
		shift(11, "08:54", "16:00"),
	)
	snap.Entries = []roster.ScheduleEntry{
		entry(1, 1, "2024-05-01", 1),
		entry(2, 1, "2024-05-06", 10),
	}

	result, err := v.ValidateScheduleEntry(entry(0, 1, "2024-05-07", 11), snap)
	require.NoError(t, err)

	assert.False(t, result.Valid)
}

// =============================================================================
// SAME-DAY DUPLICATES
// =============================================================================

func TestValidateScheduleEntry_SecondShiftSameDayIsWarningOnly(t *testing.T) {
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Entries = []roster.ScheduleEntry{entry(1, 1, "2024-05-06", 1)}

	result, err := v.ValidateScheduleEntry(entry(0, 1, "2024-05-06", 3), snap)
	require.NoError(t, err)

	assert.True(t, result.Valid, "flagged, not forbidden")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, roster.SeverityWarning, result.Errors[0].Severity)
}

func TestValidateScheduleEntry_OwnPersistedRowIsNotADuplicate(t *testing.T) {
	// Re-validating an already saved entry must exclude its own row.
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Entries = []roster.ScheduleEntry{entry(7, 1, "2024-05-06", 1)}

	result, err := v.ValidateScheduleEntry(entry(7, 1, "2024-05-06", 1), snap)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

// =============================================================================
// WEEKLY HOURS
// =============================================================================

func TestValidateScheduleEntry_WeeklyOverageIsWarningOnly(t *testing.T) {
	// GIVEN: a half-time employee (20h ceiling) with four 10h entries in
	//        the week and a fifth 10h candidate
	// THEN: a warning citing 50h / 20h, but the result stays valid
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Entries = []roster.ScheduleEntry{
		entry(1, 2, "2024-05-06", 3), // Monday
		entry(2, 2, "2024-05-07", 3),
		entry(3, 2, "2024-05-08", 3),
		entry(4, 2, "2024-05-09", 3),
	}

	result, err := v.ValidateScheduleEntry(entry(0, 2, "2024-05-10", 3), snap)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, roster.SeverityWarning, result.Errors[0].Severity)
	assert.Contains(t, result.Errors[0].Message, "50.0")
	assert.Contains(t, result.Errors[0].Message, "20")
	assert.Contains(t, result.Errors[0].Message, roster.HalfTime)
}

func TestValidateScheduleEntry_EntriesOutsideWeekIgnored(t *testing.T) {
	// Sunday 2024-05-05 belongs to the previous week; Monday's candidate
	// week starts fresh.
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Entries = []roster.ScheduleEntry{
		entry(1, 2, "2024-05-05", 3), // previous week's Sunday
		entry(2, 2, "2024-05-13", 3), // next week's Monday
	}

	result, err := v.ValidateScheduleEntry(entry(0, 2, "2024-05-08", 1), snap)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors, "8h alone stays under the 20h ceiling")
}

func TestValidateScheduleEntry_UnknownEmploymentTypeDefaultsTo40(t *testing.T) {
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Employees = append(snap.Employees, employee(3, "Ewa", "Lis", "kontrakt B2B"))
	snap.Entries = []roster.ScheduleEntry{
		entry(1, 3, "2024-05-06", 3),
		entry(2, 3, "2024-05-07", 3),
		entry(3, 3, "2024-05-08", 3),
	}

	// 30h worked + 10h candidate = 40h: at the default ceiling, no warning.
	result, err := v.ValidateScheduleEntry(entry(0, 3, "2024-05-09", 3), snap)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)

	// One more pushes past it.
	snap.Entries = append(snap.Entries, entry(4, 3, "2024-05-09", 3))
	result, err = v.ValidateScheduleEntry(entry(0, 3, "2024-05-10", 3), snap)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, roster.SeverityWarning, result.Errors[0].Severity)
}

func TestValidateScheduleEntry_OvernightShiftCountsTrueHours(t *testing.T) {
	// Five 8h night shifts are 40h, not 5x16h: no warning for full time.
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Entries = []roster.ScheduleEntry{
		entry(1, 1, "2024-05-06", 2),
		entry(2, 1, "2024-05-08", 2),
		entry(3, 1, "2024-05-10", 2),
		entry(4, 1, "2024-05-12", 2),
	}

	result, err := v.ValidateScheduleEntry(entry(0, 1, "2024-05-11", 2), snap)
	require.NoError(t, err)

	for _, e := range result.Errors {
		assert.NotEqual(t, roster.SeverityWarning, e.Severity,
			"overnight durations must not be doubled: %s", e.Message)
	}
}

// =============================================================================
// PURITY
// =============================================================================

func TestValidateScheduleEntry_Idempotent(t *testing.T) {
	v := roster.NewValidator(roster.DefaultRulePolicy())
	snap := baseSnapshot()
	snap.Absences = []roster.Absence{absence(1, 1, "2024-01-10", "2024-01-15", "urlop")}
	snap.Entries = []roster.ScheduleEntry{entry(1, 1, "2024-01-11", 1)}

	candidate := entry(0, 1, "2024-01-12", 1)

	first, err := v.ValidateScheduleEntry(candidate, snap)
	require.NoError(t, err)
	second, err := v.ValidateScheduleEntry(candidate, snap)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// =============================================================================
// SNAPSHOT FROM A STORE
// =============================================================================

func TestValidateScheduleEntry_AgainstMemoryStoreSnapshot(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	emp, err := mem.SaveEmployee(ctx, roster.Employee{
		FirstName: "Anna", LastName: "Kowalska",
		EmploymentType: roster.FullTime, Status: "active",
	})
	require.NoError(t, err)
	sh, err := mem.SaveShift(ctx, roster.Shift{
		DayOfWeek: 1, StartTime: "08:00", EndTime: "16:00", RequiredStaff: 2,
	})
	require.NoError(t, err)
	_, err = mem.SaveAbsence(ctx, roster.Absence{
		EmployeeID: emp.ID,
		StartDate:  roster.MustDate("2024-01-10"),
		EndDate:    roster.MustDate("2024-01-15"),
		Type:       "urlop",
	})
	require.NoError(t, err)

	snap, err := roster.LoadSnapshot(ctx, mem)
	require.NoError(t, err)

	v := roster.NewValidator(roster.DefaultRulePolicy())
	result, err := v.ValidateScheduleEntry(roster.ScheduleEntry{
		EmployeeID: emp.ID,
		Date:       roster.MustDate("2024-01-12"),
		ShiftID:    sh.ID,
	}, snap)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, 1, criticalCount(result))
}
