package planner

import "fmt"

// LimitCheck is the result of a capacity probe. A failed check is a value,
// never an error: the manual-add path is interactive and must degrade to a
// user-facing message.
type LimitCheck struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// consumesCapacity reports whether a block still counts against daily limits.
// Completed and skipped blocks free their capacity so more work can be added.
func consumesCapacity(b ScheduledBlock) bool {
	return b.Status == BlockStatusPending || b.Status == BlockStatusInProgress
}

// blockMinutes returns a block's end−start span. End times past midnight
// count their true minutes; blocks with unparseable times contribute nothing.
func blockMinutes(b ScheduledBlock) int {
	start, err := blockTimeToMinutes(b.StartTime)
	if err != nil {
		return 0
	}
	end, err := blockTimeToMinutes(b.EndTime)
	if err != nil {
		return 0
	}
	return end - start
}

// PlannedMinutes sums the spans of pending and in-progress blocks on date,
// plus their buffer minutes when includeBuffer is set.
func PlannedMinutes(blocks []ScheduledBlock, date string, includeBuffer bool) int {
	total := 0
	for _, b := range blocks {
		if b.Date != date || !consumesCapacity(b) {
			continue
		}
		total += blockMinutes(b)
		if includeBuffer {
			total += b.BufferMinutes
		}
	}
	return total
}

// DeepBlockCount counts pending and in-progress Deep blocks on date.
func DeepBlockCount(blocks []ScheduledBlock, date string) int {
	count := 0
	for _, b := range blocks {
		if b.Date == date && b.Energy == EnergyDeep && consumesCapacity(b) {
			count++
		}
	}
	return count
}

// WouldExceedLimits tests whether adding candidateMinutes of candidateEnergy
// work on date would breach the daily caps. The total-time check runs first,
// the deep-block check second; the first failing check's reason is returned.
func WouldExceedLimits(capacity CapacitySettings, blocks []ScheduledBlock, date string, candidateMinutes int, candidateEnergy string) LimitCheck {
	dailyCap := capacity.DailyCapMinutes()
	if PlannedMinutes(blocks, date, true)+candidateMinutes > dailyCap {
		return LimitCheck{
			Reason: fmt.Sprintf("adding %d min would exceed the daily cap of %d hours", candidateMinutes, capacity.MaxPlannedHoursPerDay),
		}
	}

	if candidateEnergy == EnergyDeep {
		if deep := DeepBlockCount(blocks, date); deep >= capacity.MaxDeepBlocksPerDay {
			return LimitCheck{
				Reason: fmt.Sprintf("day already has %d deep blocks (max %d)", deep, capacity.MaxDeepBlocksPerDay),
			}
		}
	}

	return LimitCheck{OK: true}
}

// WeeklyPlannedMinutes sums PlannedMinutes over the seven window dates
// starting at weekStart.
func WeeklyPlannedMinutes(blocks []ScheduledBlock, weekStart string) (int, error) {
	dates, err := WeekWindowDates(weekStart)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, date := range dates {
		total += PlannedMinutes(blocks, date, true)
	}
	return total, nil
}
