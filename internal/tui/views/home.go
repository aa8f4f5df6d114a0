package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pwnd-u/life-planner/internal/tui/components"
	"github.com/pwnd-u/life-planner/internal/tui/styles"
)

var homeItems = []string{
	"Week schedule",
	"Capacity",
	"Quit",
}

// HomeModel is the model for the home menu.
type HomeModel struct {
	cursor int
	width  int
	height int
}

// NewHomeModel creates a new HomeModel.
func NewHomeModel() HomeModel {
	return HomeModel{}
}

// Init implements tea.Model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(homeItems)-1 {
				m.cursor++
			}
		case "enter":
			switch m.cursor {
			case 0:
				return m, func() tea.Msg { return GoToWeekMsg{} }
			case 1:
				return m, func() tea.Msg { return GoToCapacityMsg{} }
			case 2:
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m HomeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Planner")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	var lines []string
	for i, item := range homeItems {
		indicator := "○"
		line := item
		if i == m.cursor {
			indicator = "●"
			line = styles.SelectedStyle.Render(line)
		}
		lines = append(lines, indicator+" "+line)
	}
	menu := strings.Join(lines, "\n")

	statusBarHeight := 1
	contentHeight := 2 + len(homeItems)
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menu))

	bottomPadding := availableHeight - topPadding - contentHeight
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	b.WriteString(components.NewStatusBar().Render(m.width, []string{"↑↓ Navigate", "Enter Select", "q Quit"}, ""))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the current cursor position.
func (m HomeModel) Cursor() int {
	return m.cursor
}
