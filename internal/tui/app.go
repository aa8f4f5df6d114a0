package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pwnd-u/life-planner/internal/planner"
	"github.com/pwnd-u/life-planner/internal/store"
	"github.com/pwnd-u/life-planner/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewHome View = iota
	ViewWeek
	ViewCapacity
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	home     views.HomeModel
	week     views.WeekModel
	capacity views.CapacityModel
}

// Run starts the TUI application over the current week's stored data.
func Run() error {
	m, err := initialModel()
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func initialModel() (Model, error) {
	weekStart, err := planner.WeekStart(time.Now().Format(planner.DateLayout))
	if err != nil {
		return Model{}, err
	}

	capacity, err := store.LoadSettings()
	if err != nil {
		return Model{}, err
	}
	tasks, err := store.LoadTasks()
	if err != nil {
		return Model{}, err
	}
	blocks, err := store.LoadSchedule(weekStart)
	if err != nil {
		return Model{}, err
	}

	return Model{
		currentView: ViewHome,
		home:        views.NewHomeModel(),
		week:        views.NewWeekModel(weekStart, blocks, tasks, capacity),
		capacity:    views.NewCapacityModel(weekStart, blocks, capacity),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.SetSize(msg.Width, msg.Height)
		m.week.SetSize(msg.Width, msg.Height)
		m.capacity.SetSize(msg.Width, msg.Height)
		return m, nil

	case views.GoToHomeMsg:
		m.currentView = ViewHome
		return m, nil
	case views.GoToWeekMsg:
		m.currentView = ViewWeek
		return m, nil
	case views.GoToCapacityMsg:
		m.currentView = ViewCapacity
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.home, cmd = m.home.Update(msg)
	case ViewWeek:
		m.week, cmd = m.week.Update(msg)
	case ViewCapacity:
		m.capacity, cmd = m.capacity.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewWeek:
		return m.week.View()
	case ViewCapacity:
		return m.capacity.View()
	default:
		return m.home.View()
	}
}
