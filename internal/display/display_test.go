package display

import (
	"strings"
	"testing"

	"github.com/pwnd-u/life-planner/internal/planner"
)

func testData() ([]planner.ScheduledBlock, []planner.Task, planner.CapacitySettings) {
	blocks := []planner.ScheduledBlock{
		{ID: "b01", TaskID: "t1", Date: "2025-01-06", StartTime: "09:00", EndTime: "10:15", BufferMinutes: 15, Energy: planner.EnergyDeep, Status: planner.BlockStatusPending, SortOrder: planner.SortOrderGoal},
		{ID: "b02", TaskID: "t2", Date: "2025-01-06", StartTime: "10:30", EndTime: "10:50", BufferMinutes: 5, Energy: planner.EnergyLight, Status: planner.BlockStatusSkipped, SkipReason: "low energy", SortOrder: planner.SortOrderMicro},
	}
	tasks := []planner.Task{
		{ID: "t1", Title: "Draft the quarterly report"},
		{ID: "t2", Title: "Water plants"},
	}
	capacity := planner.CapacitySettings{
		WorkStart:             "09:00",
		WorkEnd:               "17:00",
		MaxDeepBlocksPerDay:   3,
		MaxPlannedHoursPerDay: 6,
		BufferPercent:         25,
	}
	return blocks, tasks, capacity
}

func TestRenderDay(t *testing.T) {
	blocks, tasks, capacity := testData()

	out := RenderDay("2025-01-06", blocks, tasks, capacity)

	for _, want := range []string{
		"Monday 2025-01-06",
		"09:00-10:15",
		"Draft the quarterly report",
		"pending",
		"skipped (low energy)",
		"90/360 min planned",
		"1/3 deep blocks",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDay_Empty(t *testing.T) {
	_, tasks, capacity := testData()

	out := RenderDay("2025-01-07", nil, tasks, capacity)
	if !strings.Contains(out, "nothing planned") {
		t.Errorf("output missing empty-day message:\n%s", out)
	}
	if !strings.Contains(out, "0/360 min planned") {
		t.Errorf("output missing zero summary:\n%s", out)
	}
}

func TestRenderWeek(t *testing.T) {
	blocks, tasks, capacity := testData()

	out, err := RenderWeek("2025-01-06", blocks, tasks, capacity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every day of the window gets a header.
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		if !strings.Contains(out, day) {
			t.Errorf("output missing %s header", day)
		}
	}
}

func TestRenderWeek_InvalidWeekStart(t *testing.T) {
	if _, err := RenderWeek("bad", nil, nil, planner.CapacitySettings{}); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRenderUnscheduled(t *testing.T) {
	_, tasks, _ := testData()

	if out := RenderUnscheduled(nil, tasks); out != "" {
		t.Errorf("expected empty output for no unscheduled tasks, got %q", out)
	}

	out := RenderUnscheduled([]string{"t1", "unknown"}, tasks)
	if !strings.Contains(out, "Draft the quarterly report") {
		t.Errorf("output missing task title:\n%s", out)
	}
	if !strings.Contains(out, "unknown") {
		t.Errorf("output should fall back to the task ID:\n%s", out)
	}
}
