/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract. Field names
  use snake_case matching the stored schema (first_name, shift_id, ...).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Structural validation (parseable dates, clock strings) happens in the
  handlers when converting a request into domain types. Business-rule
  validation is the roster package's job and its ValidationResult is
  serialized as-is.

SEE ALSO:
  - handlers.go: Uses these types
  - roster/types.go: The domain model behind them
*/
package api

import (
	"fmt"

	"github.com/warp/roster-engine/roster"
)

// =============================================================================
// EMPLOYEES
// =============================================================================

type EmployeeDTO struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Role           string `json:"role,omitempty"`
	EmploymentType string `json:"employment_type"`
	Status         string `json:"status"`
}

type EmployeeRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Role           string `json:"role"`
	EmploymentType string `json:"employment_type"`
	Status         string `json:"status"`
}

func toEmployeeDTO(e roster.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:             int64(e.ID),
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Role:           e.Role,
		EmploymentType: e.EmploymentType,
		Status:         e.Status,
	}
}

func (r EmployeeRequest) toDomain(id roster.EmployeeID) (roster.Employee, error) {
	if r.FirstName == "" && r.LastName == "" {
		return roster.Employee{}, fmt.Errorf("employee name must not be empty")
	}
	if r.EmploymentType == "" {
		return roster.Employee{}, fmt.Errorf("employment_type must be set")
	}
	status := r.Status
	if status == "" {
		status = "active"
	}
	return roster.Employee{
		ID:             id,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Role:           r.Role,
		EmploymentType: r.EmploymentType,
		Status:         status,
	}, nil
}

// =============================================================================
// SHIFTS
// =============================================================================

type ShiftDTO struct {
	ID            int64  `json:"id"`
	DayOfWeek     int    `json:"day_of_week"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	RequiredStaff int    `json:"required_staff"`
}

type ShiftRequest struct {
	DayOfWeek     int    `json:"day_of_week"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	RequiredStaff int    `json:"required_staff"`
}

func toShiftDTO(s roster.Shift) ShiftDTO {
	return ShiftDTO{
		ID:            int64(s.ID),
		DayOfWeek:     s.DayOfWeek,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		RequiredStaff: s.RequiredStaff,
	}
}

func (r ShiftRequest) toDomain(id roster.ShiftID) (roster.Shift, error) {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return roster.Shift{}, fmt.Errorf("day_of_week must be 0..6")
	}
	if _, err := roster.ParseClock(r.StartTime); err != nil {
		return roster.Shift{}, err
	}
	if _, err := roster.ParseClock(r.EndTime); err != nil {
		return roster.Shift{}, err
	}
	staff := r.RequiredStaff
	if staff <= 0 {
		staff = 1
	}
	return roster.Shift{
		ID:            id,
		DayOfWeek:     r.DayOfWeek,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		RequiredStaff: staff,
	}, nil
}

// =============================================================================
// ABSENCES
// =============================================================================

type AbsenceDTO struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Type       string `json:"type"`
}

type AbsenceRequest struct {
	EmployeeID int64  `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Type       string `json:"type"`
}

func toAbsenceDTO(a roster.Absence) AbsenceDTO {
	return AbsenceDTO{
		ID:         int64(a.ID),
		EmployeeID: int64(a.EmployeeID),
		StartDate:  a.StartDate.String(),
		EndDate:    a.EndDate.String(),
		Type:       a.Type,
	}
}

func (r AbsenceRequest) toDomain() (roster.Absence, error) {
	start, err := roster.ParseDate(r.StartDate)
	if err != nil {
		return roster.Absence{}, err
	}
	end, err := roster.ParseDate(r.EndDate)
	if err != nil {
		return roster.Absence{}, err
	}
	return roster.Absence{
		EmployeeID: roster.EmployeeID(r.EmployeeID),
		StartDate:  start,
		EndDate:    end,
		Type:       r.Type,
	}, nil
}

// SaveAbsenceResponse pairs the stored absence with the validation findings
// that accompanied it (warnings survive a successful save).
type SaveAbsenceResponse struct {
	Absence *AbsenceDTO             `json:"absence,omitempty"`
	Result  roster.ValidationResult `json:"result"`
}

// =============================================================================
// SCHEDULE ENTRIES
// =============================================================================

type EntryDTO struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	ShiftID    int64  `json:"shift_id"`
}

type EntryRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	ShiftID    int64  `json:"shift_id"`
}

func toEntryDTO(e roster.ScheduleEntry) EntryDTO {
	return EntryDTO{
		ID:         int64(e.ID),
		EmployeeID: int64(e.EmployeeID),
		Date:       e.Date.String(),
		ShiftID:    int64(e.ShiftID),
	}
}

func (r EntryRequest) toDomain() (roster.ScheduleEntry, error) {
	date, err := roster.ParseDate(r.Date)
	if err != nil {
		return roster.ScheduleEntry{}, err
	}
	return roster.ScheduleEntry{
		EmployeeID: roster.EmployeeID(r.EmployeeID),
		Date:       date,
		ShiftID:    roster.ShiftID(r.ShiftID),
	}, nil
}

// SaveEntryResponse pairs the stored entry with its validation findings.
// Entry is absent when critical findings blocked the save.
type SaveEntryResponse struct {
	Entry  *EntryDTO               `json:"entry,omitempty"`
	Result roster.ValidationResult `json:"result"`
}

// ReassignRequest moves an existing entry to a new date and shift.
type ReassignRequest struct {
	Date    string `json:"date"`
	ShiftID int64  `json:"shift_id"`
}

// BulkEntriesRequest carries solver output: entries to be individually
// validated and saved.
type BulkEntriesRequest struct {
	Entries []EntryRequest `json:"entries"`
}

// BulkEntryResult reports the outcome for one entry of a bulk request.
type BulkEntryResult struct {
	Index  int                     `json:"index"`
	Saved  bool                    `json:"saved"`
	Entry  *EntryDTO               `json:"entry,omitempty"`
	Result roster.ValidationResult `json:"result"`
}

type BulkEntriesResponse struct {
	Saved    int               `json:"saved"`
	Rejected int               `json:"rejected"`
	Results  []BulkEntryResult `json:"results"`
}

// =============================================================================
// SCHEDULE GRID
// =============================================================================

// ScheduleCellEntryDTO is one assignment inside a grid cell, carrying the
// resolved employee name for direct rendering.
type ScheduleCellEntryDTO struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
}

type ScheduleShiftDTO struct {
	Shift   ShiftDTO               `json:"shift"`
	Entries []ScheduleCellEntryDTO `json:"entries"`
}

type ScheduleDayDTO struct {
	Date   string             `json:"date"`
	Shifts []ScheduleShiftDTO `json:"shifts"`
}

// =============================================================================
// RULES
// =============================================================================

// RulesDTO exposes the active rule policy. Hour values are plain numbers
// on the wire; the engine stores them as decimals.
type RulesDTO struct {
	MinRestHours       float64            `json:"min_rest_hours"`
	DefaultWeeklyLimit float64            `json:"default_weekly_limit"`
	WeeklyLimits       map[string]float64 `json:"weekly_limits"`
}

func toRulesDTO(p roster.RulePolicy) RulesDTO {
	dto := RulesDTO{
		MinRestHours:       p.MinRestHours.InexactFloat64(),
		DefaultWeeklyLimit: p.DefaultWeeklyLimit.InexactFloat64(),
		WeeklyLimits:       make(map[string]float64, len(p.WeeklyLimits)),
	}
	for etat, hours := range p.WeeklyLimits {
		dto.WeeklyLimits[etat] = hours.InexactFloat64()
	}
	return dto
}

// =============================================================================
// ERRORS
// =============================================================================

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
