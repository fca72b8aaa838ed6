package roster_test

import (
	"errors"
	"testing"

	"github.com/warp/roster-engine/roster"
)

// =============================================================================
// CLOCK PARSING
// =============================================================================

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:30", 390, false},
		{"12:00", 720, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"7:30", 0, true},
		{"07:60", 0, true},
		{"07-30", 0, true},
		{"", 0, true},
		{"aa:bb", 0, true},
	}

	for _, tt := range tests {
		got, err := roster.ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tt.in, got)
				continue
			}
			var fe *roster.FormatError
			if !errors.As(err, &fe) {
				t.Errorf("ParseClock(%q): expected FormatError, got %T", tt.in, err)
			}
			if !errors.Is(err, roster.ErrMalformedInput) {
				t.Errorf("ParseClock(%q): error should wrap ErrMalformedInput", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.minutes {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.minutes)
		}
	}
}

// =============================================================================
// DURATIONS
// =============================================================================

func TestDurationHours_AbsoluteDifference(t *testing.T) {
	tests := []struct {
		a, b  string
		hours string
	}{
		{"08:00", "16:00", "8"},
		{"16:00", "08:00", "8"}, // symmetric
		{"22:00", "06:00", "16"}, // deliberately not midnight-aware
		{"09:15", "09:15", "0"},
		{"10:00", "10:30", "0.5"},
	}

	for _, tt := range tests {
		got, err := roster.DurationHours(tt.a, tt.b)
		if err != nil {
			t.Fatalf("DurationHours(%q, %q): %v", tt.a, tt.b, err)
		}
		if got.String() != tt.hours {
			t.Errorf("DurationHours(%q, %q) = %s, want %s", tt.a, tt.b, got, tt.hours)
		}
	}
}

func TestShiftDuration_WrapsPastMidnight(t *testing.T) {
	tests := []struct {
		start, end string
		hours      string
	}{
		{"08:00", "16:00", "8"},
		{"22:00", "06:00", "8"}, // overnight
		{"23:30", "00:15", "0.75"},
		{"00:00", "00:00", "0"},
		{"14:00", "22:30", "8.5"},
	}

	for _, tt := range tests {
		got, err := roster.ShiftDuration(tt.start, tt.end)
		if err != nil {
			t.Fatalf("ShiftDuration(%q, %q): %v", tt.start, tt.end, err)
		}
		if got.String() != tt.hours {
			t.Errorf("ShiftDuration(%q, %q) = %s, want %s", tt.start, tt.end, got, tt.hours)
		}
	}
}

func TestShiftDuration_MalformedInput(t *testing.T) {
	if _, err := roster.ShiftDuration("25:00", "06:00"); err == nil {
		t.Fatal("expected error for malformed start time")
	}
	if _, err := roster.ShiftDuration("06:00", "6pm"); err == nil {
		t.Fatal("expected error for malformed end time")
	}
}
