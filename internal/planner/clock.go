package planner

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used throughout the planner.
const DateLayout = "2006-01-02"

// TimeToMinutes converts an "HH:mm" clock string into minutes since midnight.
func TimeToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: must be HH:mm", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: must be HH:mm", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: must be HH:mm", clock)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock time %q: must be HH:mm", clock)
	}

	return hours*60 + minutes, nil
}

// blockTimeToMinutes converts a block boundary to minutes since midnight.
// Unlike TimeToMinutes it accepts hour components past 23, which
// MinutesToTime produces for blocks that run off the end of the day; those
// minutes still count toward planned time.
func blockTimeToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid block time %q: must be HH:mm", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid block time %q: must be HH:mm", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid block time %q: must be HH:mm", clock)
	}

	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid block time %q: must be HH:mm", clock)
	}

	return hours*60 + minutes, nil
}

// MinutesToTime formats minutes since midnight as "HH:mm". It never wraps:
// inputs of 1440 or more produce an hour component past 23, which lets
// callers detect blocks that ran off the end of the day.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekStart returns the Monday of the ISO week containing date. A Sunday maps
// six days back.
func WeekStart(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: must be YYYY-MM-DD", date)
	}

	offset := int(t.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday
	}

	return t.AddDate(0, 0, -offset).Format(DateLayout), nil
}

// WeekWindowDates returns the seven dates Monday through Sunday starting at
// weekStart. The sequence is computed fresh on every call.
func WeekWindowDates(weekStart string) ([]string, error) {
	t, err := time.Parse(DateLayout, weekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid week start %q: must be YYYY-MM-DD", weekStart)
	}

	dates := make([]string, 7)
	for i := range dates {
		dates[i] = t.AddDate(0, 0, i).Format(DateLayout)
	}

	return dates, nil
}
