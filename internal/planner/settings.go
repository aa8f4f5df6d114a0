package planner

import "math"

// CapacitySettings is the user's availability envelope. There is one per
// user; it is edited directly and never owned by the scheduler.
type CapacitySettings struct {
	WeeklyHours           int    `json:"weeklyHours"`
	SleepStart            string `json:"sleepStart"`
	SleepEnd              string `json:"sleepEnd"`
	WorkStart             string `json:"workStart"`
	WorkEnd               string `json:"workEnd"`
	WorkDays              int    `json:"workDays"`
	MaxDeepBlocksPerDay   int    `json:"maxDeepBlocksPerDay"`
	MaxPlannedHoursPerDay int    `json:"maxPlannedHoursPerDay"`
	BufferPercent         int    `json:"bufferPercent"` // 15-40
}

// DefaultSettings returns the capacity envelope a fresh planner starts with.
func DefaultSettings() CapacitySettings {
	return CapacitySettings{
		WeeklyHours:           20,
		SleepStart:            "23:00",
		SleepEnd:              "07:00",
		WorkStart:             "09:00",
		WorkEnd:               "17:00",
		WorkDays:              5,
		MaxDeepBlocksPerDay:   3,
		MaxPlannedHoursPerDay: 6,
		BufferPercent:         25,
	}
}

// BufferedMinutes pads a raw estimate by the buffer percentage:
// ceil(estimate × (1 + bufferPercent/100)).
func (c CapacitySettings) BufferedMinutes(estimate int) int {
	return int(math.Ceil(float64(estimate) * (1 + float64(c.BufferPercent)/100)))
}

// DailyCapMinutes returns the total planned-minutes cap for a single day.
func (c CapacitySettings) DailyCapMinutes() int {
	return c.MaxPlannedHoursPerDay * 60
}
