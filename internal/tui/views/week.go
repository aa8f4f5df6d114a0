package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pwnd-u/life-planner/internal/planner"
	"github.com/pwnd-u/life-planner/internal/tui/components"
	"github.com/pwnd-u/life-planner/internal/tui/styles"
)

// WeekModel shows one week's schedule a day at a time.
type WeekModel struct {
	weekStart string
	dates     []string
	cursor    int // selected day, 0=Monday
	blocks    []planner.ScheduledBlock
	tasks     map[string]planner.Task
	capacity  planner.CapacitySettings
	width     int
	height    int
}

// NewWeekModel creates a WeekModel over an already loaded schedule.
func NewWeekModel(weekStart string, blocks []planner.ScheduledBlock, tasks []planner.Task, capacity planner.CapacitySettings) WeekModel {
	dates, err := planner.WeekWindowDates(weekStart)
	if err != nil {
		dates = nil
	}

	byID := make(map[string]planner.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	return WeekModel{
		weekStart: weekStart,
		dates:     dates,
		blocks:    blocks,
		tasks:     byID,
		capacity:  capacity,
	}
}

// Init implements tea.Model.
func (m WeekModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WeekModel) Update(msg tea.Msg) (WeekModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return GoToHomeMsg{} }
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.dates)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m WeekModel) View() string {
	if m.width == 0 || m.height == 0 || len(m.dates) == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Week of " + m.weekStart)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	// Day tabs
	var tabs []string
	for i, date := range m.dates {
		label := weekdayLabel(date)
		if i == m.cursor {
			label = styles.SelectedStyle.Render(label)
		} else {
			label = styles.SubtleStyle.Render(label)
		}
		tabs = append(tabs, label)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(tabs, "  ")))
	b.WriteString("\n\n")

	date := m.dates[m.cursor]
	dayLines := m.renderDay(date)
	b.WriteString(dayLines)

	// Fill to push the status bar to the bottom
	used := strings.Count(b.String(), "\n") + 1
	padding := m.height - used - 1
	if padding > 0 {
		b.WriteString(strings.Repeat("\n", padding))
	}

	b.WriteString(components.NewStatusBar().Render(m.width,
		[]string{"←→ Day", "Esc Back"}, date))

	return b.String()
}

// renderDay renders the selected day's blocks and capacity summary.
func (m WeekModel) renderDay(date string) string {
	var b strings.Builder

	count := 0
	for _, block := range m.blocks {
		if block.Date != date {
			continue
		}
		b.WriteString(m.formatBlockLine(block))
		b.WriteString("\n")
		count++
	}
	if count == 0 {
		b.WriteString(styles.SubtleStyle.Render("  nothing planned"))
		b.WriteString("\n")
	}

	planned := planner.PlannedMinutes(m.blocks, date, true)
	deep := planner.DeepBlockCount(m.blocks, date)
	summary := fmt.Sprintf("  %d/%d min · %d/%d deep",
		planned, m.capacity.DailyCapMinutes(), deep, m.capacity.MaxDeepBlocksPerDay)
	if planned > m.capacity.DailyCapMinutes() {
		b.WriteString(styles.WarnStyle.Render(summary))
	} else {
		b.WriteString(styles.SubtleStyle.Render(summary))
	}
	b.WriteString("\n")

	return b.String()
}

func (m WeekModel) formatBlockLine(block planner.ScheduledBlock) string {
	title := block.TaskID
	if t, ok := m.tasks[block.TaskID]; ok {
		title = t.Title
	}
	if len(title) > 32 {
		title = title[:29] + "..."
	}

	line := fmt.Sprintf("  %s %s-%s  %-32s %s",
		statusGlyph(block.Status), block.StartTime, block.EndTime, title, block.Status)

	switch {
	case block.Status == planner.BlockStatusCompleted || block.Status == planner.BlockStatusSkipped:
		return styles.SubtleStyle.Render(line)
	case block.Energy == planner.EnergyDeep:
		return styles.DeepStyle.Render(line)
	}
	return line
}

func statusGlyph(status string) string {
	switch status {
	case planner.BlockStatusCompleted:
		return "✓"
	case planner.BlockStatusSkipped:
		return "–"
	case planner.BlockStatusInProgress:
		return "●"
	default:
		return "○"
	}
}

func weekdayLabel(date string) string {
	t, err := time.Parse(planner.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Weekday().String()[:3]
}

// SetSize updates the model dimensions.
func (m *WeekModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the selected day index.
func (m WeekModel) Cursor() int {
	return m.cursor
}

// SelectedDate returns the date under the cursor.
func (m WeekModel) SelectedDate() string {
	if len(m.dates) == 0 {
		return ""
	}
	return m.dates[m.cursor]
}
