package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pwnd-u/life-planner/internal/planner"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for warnings

	dayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtleStyle    = lipgloss.NewStyle().Foreground(secondaryColor)
	warnStyle      = lipgloss.NewStyle().Foreground(errorColor)
)

// RenderWeek renders the full seven-day schedule starting at weekStart.
func RenderWeek(weekStart string, blocks []planner.ScheduledBlock, tasks []planner.Task, capacity planner.CapacitySettings) (string, error) {
	dates, err := planner.WeekWindowDates(weekStart)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, date := range dates {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderDay(date, blocks, tasks, capacity))
	}
	return b.String(), nil
}

// RenderDay renders one date's blocks with a capacity summary line.
func RenderDay(date string, blocks []planner.ScheduledBlock, tasks []planner.Task, capacity planner.CapacitySettings) string {
	titles := taskTitles(tasks)

	var b strings.Builder
	b.WriteString(dayHeaderStyle.Render(dayHeader(date)))
	b.WriteString("\n")

	count := 0
	for _, block := range blocks {
		if block.Date != date {
			continue
		}
		b.WriteString(formatBlockLine(block, titles))
		b.WriteString("\n")
		count++
	}
	if count == 0 {
		b.WriteString(subtleStyle.Render("  nothing planned"))
		b.WriteString("\n")
	}

	planned := planner.PlannedMinutes(blocks, date, true)
	deep := planner.DeepBlockCount(blocks, date)
	summary := fmt.Sprintf("  %d/%d min planned · %d/%d deep blocks",
		planned, capacity.DailyCapMinutes(), deep, capacity.MaxDeepBlocksPerDay)
	b.WriteString(subtleStyle.Render(summary))
	b.WriteString("\n")

	return b.String()
}

// RenderUnscheduled lists tasks the scheduler could not place. An empty list
// renders nothing; a full schedule with every task placed is the normal case.
func RenderUnscheduled(ids []string, tasks []planner.Task) string {
	if len(ids) == 0 {
		return ""
	}

	titles := taskTitles(tasks)

	var b strings.Builder
	b.WriteString(warnStyle.Render("Did not fit this week:"))
	b.WriteString("\n")
	for _, id := range ids {
		title := titles[id]
		if title == "" {
			title = id
		}
		b.WriteString(fmt.Sprintf("  %s: %s\n", id, title))
	}
	return b.String()
}

// formatBlockLine formats a single block for display.
func formatBlockLine(block planner.ScheduledBlock, titles map[string]string) string {
	title := titles[block.TaskID]
	if title == "" {
		title = block.TaskID
	}

	line := fmt.Sprintf("  %s-%s  %-30s %-6s %s",
		block.StartTime, block.EndTime, truncate(title, 30), block.Energy, block.Status)
	if block.Status == planner.BlockStatusSkipped && block.SkipReason != "" {
		line += fmt.Sprintf(" (%s)", block.SkipReason)
	}

	if block.Status == planner.BlockStatusCompleted || block.Status == planner.BlockStatusSkipped {
		return subtleStyle.Render(line)
	}
	return line
}

// dayHeader formats a date as "Monday 2006-01-02". Unparseable dates render
// bare.
func dayHeader(date string) string {
	t, err := time.Parse(planner.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %s", t.Weekday(), date)
}

func taskTitles(tasks []planner.Task) map[string]string {
	titles := make(map[string]string, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}
	return titles
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
