package planner

import (
	"strings"
	"testing"
)

func testCapacity() CapacitySettings {
	return CapacitySettings{
		WorkStart:             "09:00",
		WorkEnd:               "17:00",
		MaxDeepBlocksPerDay:   3,
		MaxPlannedHoursPerDay: 6,
		BufferPercent:         25,
	}
}

func block(date, start, end string, buffer int, energy, status string) ScheduledBlock {
	return ScheduledBlock{
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		BufferMinutes: buffer,
		Energy:        energy,
		Status:        status,
	}
}

func TestPlannedMinutes(t *testing.T) {
	blocks := []ScheduledBlock{
		block("2025-01-06", "09:00", "10:00", 15, EnergyDeep, BlockStatusPending),
		block("2025-01-06", "10:00", "10:30", 5, EnergyLight, BlockStatusInProgress),
		block("2025-01-07", "09:00", "11:00", 20, EnergyDeep, BlockStatusPending),
	}

	if got := PlannedMinutes(blocks, "2025-01-06", true); got != 110 {
		t.Errorf("with buffer: got %d, want 110", got)
	}
	if got := PlannedMinutes(blocks, "2025-01-06", false); got != 90 {
		t.Errorf("without buffer: got %d, want 90", got)
	}
	if got := PlannedMinutes(blocks, "2025-01-08", true); got != 0 {
		t.Errorf("empty day: got %d, want 0", got)
	}
}

func TestPlannedMinutes_CountsPastMidnightEndTimes(t *testing.T) {
	// A late fixed event can end past 23:59 (see MinutesToTime); its span must
	// still count toward planned time, not silently drop to zero.
	blocks := []ScheduledBlock{
		block("2025-01-10", "23:30", "24:30", 12, EnergyAdmin, BlockStatusPending),
	}

	if got := PlannedMinutes(blocks, "2025-01-10", true); got != 72 {
		t.Errorf("with buffer: got %d, want 72", got)
	}
	if got := PlannedMinutes(blocks, "2025-01-10", false); got != 60 {
		t.Errorf("without buffer: got %d, want 60", got)
	}
}

func TestPlannedMinutes_IgnoresCompletedAndSkipped(t *testing.T) {
	// Finished work frees its capacity so the user can keep adding.
	blocks := []ScheduledBlock{
		block("2025-01-06", "09:00", "10:00", 15, EnergyDeep, BlockStatusCompleted),
		block("2025-01-06", "10:00", "11:00", 15, EnergyDeep, BlockStatusSkipped),
		block("2025-01-06", "11:00", "12:00", 15, EnergyDeep, BlockStatusPending),
	}

	if got := PlannedMinutes(blocks, "2025-01-06", true); got != 75 {
		t.Errorf("got %d, want 75", got)
	}
}

func TestDeepBlockCount(t *testing.T) {
	blocks := []ScheduledBlock{
		block("2025-01-06", "09:00", "10:00", 0, EnergyDeep, BlockStatusPending),
		block("2025-01-06", "10:00", "11:00", 0, EnergyDeep, BlockStatusInProgress),
		block("2025-01-06", "11:00", "12:00", 0, EnergyDeep, BlockStatusCompleted),
		block("2025-01-06", "12:00", "13:00", 0, EnergyLight, BlockStatusPending),
		block("2025-01-07", "09:00", "10:00", 0, EnergyDeep, BlockStatusPending),
	}

	if got := DeepBlockCount(blocks, "2025-01-06"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestWouldExceedLimits_OK(t *testing.T) {
	check := WouldExceedLimits(testCapacity(), nil, "2025-01-06", 120, EnergyDeep)
	if !check.OK {
		t.Errorf("expected OK, got reason %q", check.Reason)
	}
}

func TestWouldExceedLimits_TotalTime(t *testing.T) {
	blocks := []ScheduledBlock{
		block("2025-01-06", "09:00", "14:00", 0, EnergyLight, BlockStatusPending), // 300 min
	}

	check := WouldExceedLimits(testCapacity(), blocks, "2025-01-06", 61, EnergyLight)
	if check.OK {
		t.Fatal("expected failure")
	}
	if !strings.Contains(check.Reason, "daily cap") {
		t.Errorf("unexpected reason: %q", check.Reason)
	}

	// Exactly at the cap is fine.
	check = WouldExceedLimits(testCapacity(), blocks, "2025-01-06", 60, EnergyLight)
	if !check.OK {
		t.Errorf("expected OK at exact cap, got reason %q", check.Reason)
	}
}

func TestWouldExceedLimits_DeepBlocks(t *testing.T) {
	blocks := []ScheduledBlock{
		block("2025-01-06", "09:00", "10:00", 0, EnergyDeep, BlockStatusPending),
		block("2025-01-06", "10:00", "11:00", 0, EnergyDeep, BlockStatusPending),
		block("2025-01-06", "11:00", "12:00", 0, EnergyDeep, BlockStatusPending),
	}

	check := WouldExceedLimits(testCapacity(), blocks, "2025-01-06", 30, EnergyDeep)
	if check.OK {
		t.Fatal("expected failure")
	}
	if !strings.Contains(check.Reason, "deep blocks") {
		t.Errorf("unexpected reason: %q", check.Reason)
	}

	// A non-deep candidate is unaffected by the deep cap.
	check = WouldExceedLimits(testCapacity(), blocks, "2025-01-06", 30, EnergyLight)
	if !check.OK {
		t.Errorf("expected OK for light candidate, got reason %q", check.Reason)
	}
}

func TestWouldExceedLimits_TotalTimeCheckedFirst(t *testing.T) {
	// Both limits would fail; the total-time reason must win.
	blocks := []ScheduledBlock{
		block("2025-01-06", "09:00", "12:00", 0, EnergyDeep, BlockStatusPending),
		block("2025-01-06", "12:00", "14:00", 0, EnergyDeep, BlockStatusPending),
		block("2025-01-06", "14:00", "15:00", 0, EnergyDeep, BlockStatusPending),
	}

	check := WouldExceedLimits(testCapacity(), blocks, "2025-01-06", 120, EnergyDeep)
	if check.OK {
		t.Fatal("expected failure")
	}
	if !strings.Contains(check.Reason, "daily cap") {
		t.Errorf("expected the total-time reason first, got %q", check.Reason)
	}
}

func TestWeeklyPlannedMinutes(t *testing.T) {
	blocks := []ScheduledBlock{
		block("2025-01-06", "09:00", "10:00", 15, EnergyDeep, BlockStatusPending),
		block("2025-01-09", "09:00", "10:30", 10, EnergyLight, BlockStatusPending),
		block("2025-01-12", "09:00", "09:30", 0, EnergyAdmin, BlockStatusPending),
		block("2025-01-13", "09:00", "12:00", 0, EnergyDeep, BlockStatusPending), // next week
	}

	got, err := WeeklyPlannedMinutes(blocks, "2025-01-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 205 {
		t.Errorf("got %d, want 205", got)
	}
}

func TestWeeklyPlannedMinutes_InvalidWeekStart(t *testing.T) {
	if _, err := WeeklyPlannedMinutes(nil, "bad"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestBufferedMinutes(t *testing.T) {
	tests := []struct {
		estimate int
		percent  int
		want     int
	}{
		{60, 25, 75},
		{60, 15, 69},
		{50, 15, 58}, // 57.5 rounds up
		{10, 40, 14},
		{0, 25, 0},
	}

	for _, tt := range tests {
		c := CapacitySettings{BufferPercent: tt.percent}
		if got := c.BufferedMinutes(tt.estimate); got != tt.want {
			t.Errorf("BufferedMinutes(%d) at %d%% = %d, want %d", tt.estimate, tt.percent, got, tt.want)
		}
	}
}
