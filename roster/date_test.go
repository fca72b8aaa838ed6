package roster_test

import (
	"testing"
	"time"

	"github.com/warp/roster-engine/roster"
)

func TestParseDate(t *testing.T) {
	d, err := roster.ParseDate("2024-05-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-05-10" {
		t.Errorf("round trip = %s, want 2024-05-10", d)
	}
	if d.Weekday() != time.Friday {
		t.Errorf("2024-05-10 should be a Friday, got %v", d.Weekday())
	}

	for _, bad := range []string{"2024-5-10", "10-05-2024", "2024-13-01", "yesterday", ""} {
		if _, err := roster.ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestDate_ArithmeticIsImmutable(t *testing.T) {
	d := roster.MustDate("2024-01-31")
	next := d.AddDays(1)

	if d.String() != "2024-01-31" {
		t.Errorf("AddDays mutated the receiver: %s", d)
	}
	if next.String() != "2024-02-01" {
		t.Errorf("AddDays(1) = %s, want 2024-02-01", next)
	}
	if d.DaysUntil(next) != 1 {
		t.Errorf("DaysUntil = %d, want 1", d.DaysUntil(next))
	}
}

// =============================================================================
// WEEK WINDOWS
// =============================================================================

func TestWeekOf(t *testing.T) {
	tests := []struct {
		date  string
		start string
		end   string
	}{
		{"2024-05-08", "2024-05-06", "2024-05-12"}, // Wednesday
		{"2024-05-06", "2024-05-06", "2024-05-12"}, // Monday is its own start
		{"2024-05-12", "2024-05-06", "2024-05-12"}, // Sunday ends the prior Monday-week
		{"2024-05-11", "2024-05-06", "2024-05-12"}, // Saturday
		{"2024-01-01", "2024-01-01", "2024-01-07"}, // year boundary, Monday
	}

	for _, tt := range tests {
		w := roster.WeekOf(roster.MustDate(tt.date))
		if w.Start.String() != tt.start || w.End.String() != tt.end {
			t.Errorf("WeekOf(%s) = [%s, %s], want [%s, %s]",
				tt.date, w.Start, w.End, tt.start, tt.end)
		}
	}
}

func TestWeekWindow_ContainsIsInclusive(t *testing.T) {
	w := roster.WeekOf(roster.MustDate("2024-05-08"))

	if !w.Contains(roster.MustDate("2024-05-06")) {
		t.Error("window should contain its Monday start")
	}
	if !w.Contains(roster.MustDate("2024-05-12")) {
		t.Error("window should contain its Sunday end")
	}
	if w.Contains(roster.MustDate("2024-05-05")) {
		t.Error("window should not contain the previous Sunday")
	}
	if w.Contains(roster.MustDate("2024-05-13")) {
		t.Error("window should not contain the next Monday")
	}
}
