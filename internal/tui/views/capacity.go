package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pwnd-u/life-planner/internal/planner"
	"github.com/pwnd-u/life-planner/internal/tui/components"
	"github.com/pwnd-u/life-planner/internal/tui/styles"
)

// CapacityModel shows per-day planned minutes against the daily cap.
type CapacityModel struct {
	weekStart string
	dates     []string
	blocks    []planner.ScheduledBlock
	capacity  planner.CapacitySettings
	bar       progress.Model
	width     int
	height    int
}

// NewCapacityModel creates a CapacityModel over an already loaded schedule.
func NewCapacityModel(weekStart string, blocks []planner.ScheduledBlock, capacity planner.CapacitySettings) CapacityModel {
	dates, err := planner.WeekWindowDates(weekStart)
	if err != nil {
		dates = nil
	}

	bar := progress.New(progress.WithSolidFill("#5FAFAF"), progress.WithoutPercentage())
	bar.Width = 30

	return CapacityModel{
		weekStart: weekStart,
		dates:     dates,
		blocks:    blocks,
		capacity:  capacity,
		bar:       bar,
	}
}

// Init implements tea.Model.
func (m CapacityModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m CapacityModel) Update(msg tea.Msg) (CapacityModel, tea.Cmd) {
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
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m CapacityModel) View() string {
	if m.width == 0 || m.height == 0 || len(m.dates) == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Capacity · week of " + m.weekStart)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	dailyCap := m.capacity.DailyCapMinutes()
	var lines []string
	for _, date := range m.dates {
		planned := planner.PlannedMinutes(m.blocks, date, true)
		deep := planner.DeepBlockCount(m.blocks, date)

		ratio := 0.0
		if dailyCap > 0 {
			ratio = float64(planned) / float64(dailyCap)
			if ratio > 1 {
				ratio = 1
			}
		}

		detail := fmt.Sprintf("%3d/%d min · deep %d/%d", planned, dailyCap, deep, m.capacity.MaxDeepBlocksPerDay)
		if planned > dailyCap {
			detail = styles.WarnStyle.Render(detail)
		} else {
			detail = styles.SubtleStyle.Render(detail)
		}

		lines = append(lines, fmt.Sprintf("%s  %s  %s", dayLabel(date), m.bar.ViewAs(ratio), detail))
	}
	content := strings.Join(lines, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content))

	used := strings.Count(b.String(), "\n") + 1
	padding := m.height - used - 1
	if padding > 0 {
		b.WriteString(strings.Repeat("\n", padding))
	}

	weekly, err := planner.WeeklyPlannedMinutes(m.blocks, m.weekStart)
	context := ""
	if err == nil {
		context = fmt.Sprintf("week total %d min", weekly)
	}
	b.WriteString(components.NewStatusBar().Render(m.width, []string{"Esc Back"}, context))

	return b.String()
}

func dayLabel(date string) string {
	t, err := time.Parse(planner.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %s", t.Weekday().String()[:3], date[5:])
}

// SetSize updates the model dimensions.
func (m *CapacityModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
