/*
handlers.go - HTTP handlers for the scheduling API

PURPOSE:
  Implements the request/response handling for every endpoint. Handlers
  follow a consistent pattern:
  1. Parse and structurally validate input (dates, clock strings)
  2. Fetch a fresh snapshot from the store
  3. Run the validation engine
  4. Persist only when nothing critical was found
  5. Serialize the ValidationResult either way

ERROR HANDLING:
  - 400: malformed input (bad JSON, bad date/clock strings, bad IDs)
  - 404: missing resource on delete/reassign
  - 409: uniqueness conflict in the store (lost validate-then-persist race)
  - 422: validation produced critical findings; body carries the result
  - 500: store failures

SECURITY NOTE:
  No authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - roster/validate.go: The rules these handlers invoke
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/warp/roster-engine/roster"
	"github.com/warp/roster-engine/store/sqlite"
)

// =============================================================================
// STORE CONTRACT
// =============================================================================

// Store is everything the handlers need from persistence. Both the SQLite
// store and the in-memory store satisfy it.
type Store interface {
	roster.Reader
	Snapshot(ctx context.Context) (roster.Snapshot, error)

	SaveEmployee(ctx context.Context, e roster.Employee) (roster.Employee, error)
	DeleteEmployee(ctx context.Context, id roster.EmployeeID) error

	SaveShift(ctx context.Context, s roster.Shift) (roster.Shift, error)
	DeleteShift(ctx context.Context, id roster.ShiftID) error

	SaveAbsence(ctx context.Context, a roster.Absence) (roster.Absence, error)
	DeleteAbsence(ctx context.Context, id roster.AbsenceID) error

	SaveEntry(ctx context.Context, e roster.ScheduleEntry) (roster.ScheduleEntry, error)
	DeleteEntry(ctx context.Context, id roster.EntryID) error

	LoadRulePolicy(ctx context.Context, base roster.RulePolicy) (roster.RulePolicy, error)
	SaveRulePolicy(ctx context.Context, p roster.RulePolicy) error
}

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store Store

	mu        sync.RWMutex
	validator *roster.Validator
}

// NewHandler creates a handler bound to a store, validating with the given
// policy until LoadRules or UpdateRules replaces it.
func NewHandler(store Store, policy roster.RulePolicy) *Handler {
	return &Handler{
		Store:     store,
		validator: roster.NewValidator(policy),
	}
}

// LoadRules layers persisted rule overrides onto the active policy.
func (h *Handler) LoadRules(ctx context.Context) error {
	policy, err := h.Store.LoadRulePolicy(ctx, h.currentValidator().Policy)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.validator = roster.NewValidator(policy)
	h.mu.Unlock()
	return nil
}

func (h *Handler) currentValidator() *roster.Validator {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.validator
}

// =============================================================================
// EMPLOYEE ENDPOINTS
// =============================================================================

// ListEmployees returns all employees.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}
	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee creates an employee.
// POST /api/employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	emp, err := req.toDomain(0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee", err)
		return
	}
	saved, err := h.Store.SaveEmployee(r.Context(), emp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(saved))
}

// UpdateEmployee replaces an employee record.
// PUT /api/employees/{id}
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id", err)
		return
	}
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	emp, err := req.toDomain(roster.EmployeeID(id))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee", err)
		return
	}
	saved, err := h.Store.SaveEmployee(r.Context(), emp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(saved))
}

// DeleteEmployee removes an employee.
// DELETE /api/employees/{id}
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id", err)
		return
	}
	if err := h.Store.DeleteEmployee(r.Context(), roster.EmployeeID(id)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SHIFT ENDPOINTS
// =============================================================================

// ListShifts returns all shift templates.
// GET /api/shifts
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Store.ListShifts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}
	dtos := make([]ShiftDTO, len(shifts))
	for i, s := range shifts {
		dtos[i] = toShiftDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateShift creates a shift template.
// POST /api/shifts
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req ShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	shift, err := req.toDomain(0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift", err)
		return
	}
	saved, err := h.Store.SaveShift(r.Context(), shift)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save shift", err)
		return
	}
	writeJSON(w, http.StatusCreated, toShiftDTO(saved))
}

// UpdateShift replaces a shift template.
// PUT /api/shifts/{id}
func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id", err)
		return
	}
	var req ShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	shift, err := req.toDomain(roster.ShiftID(id))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift", err)
		return
	}
	saved, err := h.Store.SaveShift(r.Context(), shift)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save shift", err)
		return
	}
	writeJSON(w, http.StatusOK, toShiftDTO(saved))
}

// DeleteShift removes a shift template.
// DELETE /api/shifts/{id}
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id", err)
		return
	}
	if err := h.Store.DeleteShift(r.Context(), roster.ShiftID(id)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete shift", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// ABSENCE ENDPOINTS
// =============================================================================

// ListAbsences returns all absences.
// GET /api/absences
func (h *Handler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := h.Store.ListAbsences(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list absences", err)
		return
	}
	dtos := make([]AbsenceDTO, len(absences))
	for i, a := range absences {
		dtos[i] = toAbsenceDTO(a)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateAbsence validates and stores an absence. Critical findings block
// the save (422); warnings are stored alongside the saved record.
// POST /api/absences
func (h *Handler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req AbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	candidate, err := req.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid absence", err)
		return
	}

	existing, err := h.Store.ListAbsences(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load absences", err)
		return
	}

	result := h.currentValidator().ValidateAbsence(candidate, existing)
	if !result.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, SaveAbsenceResponse{Result: result})
		return
	}

	saved, err := h.Store.SaveAbsence(r.Context(), candidate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save absence", err)
		return
	}
	dto := toAbsenceDTO(saved)
	writeJSON(w, http.StatusCreated, SaveAbsenceResponse{Absence: &dto, Result: result})
}

// DeleteAbsence removes an absence.
// DELETE /api/absences/{id}
func (h *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id", err)
		return
	}
	if err := h.Store.DeleteAbsence(r.Context(), roster.AbsenceID(id)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete absence", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SCHEDULE ENTRY ENDPOINTS
// =============================================================================

// ListEntries returns all schedule entries.
// GET /api/entries
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.ListEntries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list entries", err)
		return
	}
	dtos := make([]EntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEntry validates a candidate assignment against a fresh snapshot and
// persists it when nothing critical was found. The validation result is
// returned either way so warnings reach the user.
// POST /api/entries
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	candidate, err := req.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry", err)
		return
	}
	h.validateAndSave(w, r.Context(), candidate)
}

// validateAndSave runs the engine over a fresh snapshot and persists the
// candidate unless a critical finding (or a store conflict) stops it.
func (h *Handler) validateAndSave(w http.ResponseWriter, ctx context.Context, candidate roster.ScheduleEntry) {
	snap, err := h.Store.Snapshot(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load snapshot", err)
		return
	}

	result, err := h.currentValidator().ValidateScheduleEntry(candidate, snap)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Stored data is malformed", err)
		return
	}
	if !result.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, SaveEntryResponse{Result: result})
		return
	}

	saved, err := h.Store.SaveEntry(ctx, candidate)
	if errors.Is(err, sqlite.ErrConflict) {
		writeError(w, http.StatusConflict, "Entry already exists for this employee, date and shift", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save entry", err)
		return
	}

	dto := toEntryDTO(saved)
	status := http.StatusCreated
	if candidate.ID != 0 {
		status = http.StatusOK
	}
	writeJSON(w, status, SaveEntryResponse{Entry: &dto, Result: result})
}

// DeleteEntry removes a schedule entry.
// DELETE /api/entries/{id}
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id", err)
		return
	}
	if err := h.Store.DeleteEntry(r.Context(), roster.EntryID(id)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReassignEntry moves an existing entry to a new date/shift: the move is
// staged in memory, the staged state is re-validated, and only a clean
// result is persisted. This backs drag-and-drop in the schedule grid.
// POST /api/entries/{id}/reassign
func (h *Handler) ReassignEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id", err)
		return
	}
	var req ReassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	newDate, err := roster.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	ctx := r.Context()
	snap, err := h.Store.Snapshot(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load snapshot", err)
		return
	}

	staged, err := roster.Reassign(snap.Entries, roster.EntryID(id), newDate, roster.ShiftID(req.ShiftID))
	if errors.Is(err, roster.ErrEntryNotFound) {
		writeError(w, http.StatusNotFound, "Entry not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to stage reassignment", err)
		return
	}

	var moved roster.ScheduleEntry
	for _, e := range staged {
		if e.ID == roster.EntryID(id) {
			moved = e
			break
		}
	}

	stagedSnap := snap
	stagedSnap.Entries = staged

	result, err := h.currentValidator().ValidateScheduleEntry(moved, stagedSnap)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Stored data is malformed", err)
		return
	}
	if !result.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, SaveEntryResponse{Result: result})
		return
	}

	saved, err := h.Store.SaveEntry(ctx, moved)
	if errors.Is(err, sqlite.ErrConflict) {
		writeError(w, http.StatusConflict, "Entry already exists for this employee, date and shift", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save entry", err)
		return
	}

	dto := toEntryDTO(saved)
	writeJSON(w, http.StatusOK, SaveEntryResponse{Entry: &dto, Result: result})
}

// BulkCreateEntries applies externally generated assignments (solver
// output). Each entry is validated against a snapshot that includes the
// entries already accepted earlier in the batch, so an infeasible pair
// inside one batch is still caught.
// POST /api/entries/bulk
func (h *Handler) BulkCreateEntries(w http.ResponseWriter, r *http.Request) {
	var req BulkEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	snap, err := h.Store.Snapshot(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load snapshot", err)
		return
	}
	validator := h.currentValidator()

	resp := BulkEntriesResponse{Results: make([]BulkEntryResult, 0, len(req.Entries))}
	for i, entryReq := range req.Entries {
		candidate, err := entryReq.toDomain()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid entry at index %d", i), err)
			return
		}

		result, err := validator.ValidateScheduleEntry(candidate, snap)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Stored data is malformed", err)
			return
		}
		item := BulkEntryResult{Index: i, Result: result}

		if result.Valid {
			saved, err := h.Store.SaveEntry(ctx, candidate)
			switch {
			case errors.Is(err, sqlite.ErrConflict):
				item.Result.Errors = append(item.Result.Errors, roster.ValidationError{
					Severity: roster.SeverityCritical,
					Message:  "entry already exists for this employee, date and shift",
				})
				item.Result.Valid = false
				resp.Rejected++
			case err != nil:
				writeError(w, http.StatusInternalServerError, "Failed to save entry", err)
				return
			default:
				dto := toEntryDTO(saved)
				item.Entry = &dto
				item.Saved = true
				resp.Saved++
				snap.Entries = append(snap.Entries, saved)
			}
		} else {
			resp.Rejected++
		}
		resp.Results = append(resp.Results, item)
	}

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// VALIDATION-ONLY ENDPOINTS
// =============================================================================

// ValidateEntry runs the engine without persisting anything.
// POST /api/validate/entry
func (h *Handler) ValidateEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	candidate, err := req.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry", err)
		return
	}

	snap, err := h.Store.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load snapshot", err)
		return
	}
	result, err := h.currentValidator().ValidateScheduleEntry(candidate, snap)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Stored data is malformed", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ValidateAbsence checks a candidate absence without persisting it.
// POST /api/validate/absence
func (h *Handler) ValidateAbsence(w http.ResponseWriter, r *http.Request) {
	var req AbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	candidate, err := req.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid absence", err)
		return
	}
	existing, err := h.Store.ListAbsences(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load absences", err)
		return
	}
	writeJSON(w, http.StatusOK, h.currentValidator().ValidateAbsence(candidate, existing))
}

// =============================================================================
// SCHEDULE GRID ENDPOINT
// =============================================================================

// ScheduleGrid returns the grouped calendar view for a date range.
// GET /api/schedule?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) ScheduleGrid(w http.ResponseWriter, r *http.Request) {
	from, err := roster.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid 'from' date", err)
		return
	}
	to, err := roster.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid 'to' date", err)
		return
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "'to' must not be before 'from'", nil)
		return
	}

	snap, err := h.Store.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load snapshot", err)
		return
	}

	var inRange []roster.ScheduleEntry
	for _, e := range snap.Entries {
		if !e.Date.Before(from) && !e.Date.After(to) {
			inRange = append(inRange, e)
		}
	}

	names := make(map[roster.EmployeeID]string, len(snap.Employees))
	for _, e := range snap.Employees {
		names[e.ID] = e.DisplayName()
	}

	rows := roster.GroupByDateAndShift(inRange, snap.Shifts, snap.Employees)
	dtos := make([]ScheduleDayDTO, len(rows))
	for i, row := range rows {
		day := ScheduleDayDTO{Date: row.Date.String(), Shifts: make([]ScheduleShiftDTO, len(row.Shifts))}
		for j, cell := range row.Shifts {
			shiftDTO := ScheduleShiftDTO{
				Shift:   toShiftDTO(cell.Shift),
				Entries: make([]ScheduleCellEntryDTO, len(cell.Entries)),
			}
			for k, entry := range cell.Entries {
				shiftDTO.Entries[k] = ScheduleCellEntryDTO{
					ID:           int64(entry.ID),
					EmployeeID:   int64(entry.EmployeeID),
					EmployeeName: names[entry.EmployeeID],
				}
			}
			day.Shifts[j] = shiftDTO
		}
		dtos[i] = day
	}

	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// RULE POLICY ENDPOINTS
// =============================================================================

// GetRules returns the active validation rule limits.
// GET /api/rules
func (h *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toRulesDTO(h.currentValidator().Policy))
}

// UpdateRules persists new rule limits and swaps the active validator.
// PUT /api/rules
func (h *Handler) UpdateRules(w http.ResponseWriter, r *http.Request) {
	var req RulesDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.MinRestHours < 0 {
		writeError(w, http.StatusBadRequest, "min_rest_hours must not be negative", nil)
		return
	}

	policy := roster.DefaultRulePolicy()
	if req.MinRestHours > 0 {
		policy.MinRestHours = decimal.NewFromFloat(req.MinRestHours)
	}
	if req.DefaultWeeklyLimit > 0 {
		policy.DefaultWeeklyLimit = decimal.NewFromFloat(req.DefaultWeeklyLimit)
	}
	for etat, hours := range req.WeeklyLimits {
		if hours <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("weekly limit for %q must be positive", etat), nil)
			return
		}
		policy.WeeklyLimits[etat] = decimal.NewFromFloat(hours)
	}

	if err := h.Store.SaveRulePolicy(r.Context(), policy); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save rules", err)
		return
	}

	h.mu.Lock()
	h.validator = roster.NewValidator(policy)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, toRulesDTO(policy))
}

// =============================================================================
// HELPERS
// =============================================================================

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
