package planner

import (
	"strings"
	"testing"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"17:00", 1020},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := TimeToMinutes(tt.input)
		if err != nil {
			t.Errorf("TimeToMinutes(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTimeToMinutes_Malformed(t *testing.T) {
	inputs := []string{"", "9:00", "09:0", "09-00", "09:00:00", "ab:cd", "24:00", "12:60", "-1:30"}

	for _, input := range inputs {
		if _, err := TimeToMinutes(input); err == nil {
			t.Errorf("TimeToMinutes(%q): expected error, got nil", input)
		}
	}
}

func TestBlockTimeToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"09:00", 540},
		{"23:59", 1439},
		{"24:00", 1440}, // overflowed end times stay countable
		{"24:30", 1470},
		{"26:15", 1575},
	}

	for _, tt := range tests {
		got, err := blockTimeToMinutes(tt.input)
		if err != nil {
			t.Errorf("blockTimeToMinutes(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("blockTimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestBlockTimeToMinutes_Malformed(t *testing.T) {
	inputs := []string{"", "09-00", "09:00:00", "ab:cd", "12:60", "-1:30"}

	for _, input := range inputs {
		if _, err := blockTimeToMinutes(input); err == nil {
			t.Errorf("blockTimeToMinutes(%q): expected error, got nil", input)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{1439, "23:59"},
	}

	for _, tt := range tests {
		if got := MinutesToTime(tt.input); got != tt.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMinutesToTime_DoesNotWrapPastMidnight(t *testing.T) {
	// Values past the end of the day keep growing the hour component
	// instead of wrapping, so callers can spot overflowing blocks.
	if got := MinutesToTime(1440); got != "24:00" {
		t.Errorf("MinutesToTime(1440) = %q, want %q", got, "24:00")
	}
	if got := MinutesToTime(1470); got != "24:30" {
		t.Errorf("MinutesToTime(1470) = %q, want %q", got, "24:30")
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"monday maps to itself", "2025-01-06", "2025-01-06"},
		{"midweek maps back to monday", "2025-01-08", "2025-01-06"},
		{"sunday maps six days back", "2025-01-12", "2025-01-06"},
		{"year boundary", "2025-01-01", "2024-12-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeekStart(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("WeekStart(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeekStart_InvalidDate(t *testing.T) {
	for _, input := range []string{"", "06-01-2025", "2025-13-01", "not-a-date"} {
		if _, err := WeekStart(input); err == nil {
			t.Errorf("WeekStart(%q): expected error, got nil", input)
		}
	}
}

func TestWeekWindowDates(t *testing.T) {
	dates, err := WeekWindowDates("2025-01-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09",
		"2025-01-10", "2025-01-11", "2025-01-12",
	}
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}

func TestWeekWindowDates_InvalidStart(t *testing.T) {
	_, err := WeekWindowDates("garbage")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid week start") {
		t.Errorf("unexpected error message: %v", err)
	}
}
