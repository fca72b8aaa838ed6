/*
calendar.go - Grid grouping and drag-and-drop reassignment

PURPOSE:
  Turns a flat entry list into the nested structure a schedule grid
  renders: one row per distinct date (ascending), each row holding every
  known shift template (including empty ones, so the grid keeps its shape)
  with that cell's entries ordered by employee display name.

  Reassign is the staging half of drag-and-drop: a pure transform that
  moves one entry to a new date/shift without touching the input slice. It
  runs no validation on purpose - the caller re-validates the staged list
  and only then persists.
*/
package roster

import (
	"sort"
)

// ShiftGroup is one grid cell: a shift template and the entries assigned to
// it on the row's date.
type ShiftGroup struct {
	Shift   Shift
	Entries []ScheduleEntry
}

// DayGroup is one grid row.
type DayGroup struct {
	Date   Date
	Shifts []ShiftGroup
}

// GroupByDateAndShift builds grid rows from a flat entry list. Rows appear
// for exactly the dates present in entries, ascending. Every shift template
// appears in every row, in the given template order, so columns line up
// across rows. Entries within a cell are sorted by employee display name;
// entries whose employee is unknown sort by raw employee ID at the end.
func GroupByDateAndShift(entries []ScheduleEntry, shifts []Shift, employees []Employee) []DayGroup {
	names := make(map[EmployeeID]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.DisplayName()
	}

	byDate := make(map[string][]ScheduleEntry)
	var dates []Date
	for _, e := range entries {
		key := e.Date.String()
		if _, seen := byDate[key]; !seen {
			dates = append(dates, e.Date)
		}
		byDate[key] = append(byDate[key], e)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	rows := make([]DayGroup, 0, len(dates))
	for _, date := range dates {
		row := DayGroup{Date: date, Shifts: make([]ShiftGroup, 0, len(shifts))}
		for _, shift := range shifts {
			cell := ShiftGroup{Shift: shift}
			for _, e := range byDate[date.String()] {
				if e.ShiftID == shift.ID {
					cell.Entries = append(cell.Entries, e)
				}
			}
			sortByDisplayName(cell.Entries, names)
			row.Shifts = append(row.Shifts, cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func sortByDisplayName(entries []ScheduleEntry, names map[EmployeeID]string) {
	sort.SliceStable(entries, func(i, j int) bool {
		ni, iOK := names[entries[i].EmployeeID]
		nj, jOK := names[entries[j].EmployeeID]
		switch {
		case iOK && jOK:
			if ni != nj {
				return ni < nj
			}
			return entries[i].EmployeeID < entries[j].EmployeeID
		case iOK:
			return true
		case jOK:
			return false
		default:
			return entries[i].EmployeeID < entries[j].EmployeeID
		}
	})
}

// Reassign returns a copy of entries with the matching entry moved to
// newDate/newShiftID, preserving its identity and employee. The input
// slice is never mutated. Returns ErrEntryNotFound when no entry carries
// id. No validation runs here; callers must re-validate before committing.
func Reassign(entries []ScheduleEntry, id EntryID, newDate Date, newShiftID ShiftID) ([]ScheduleEntry, error) {
	out := make([]ScheduleEntry, len(entries))
	copy(out, entries)

	for i := range out {
		if out[i].ID == id {
			out[i].Date = newDate
			out[i].ShiftID = newShiftID
			return out, nil
		}
	}
	return nil, ErrEntryNotFound
}
