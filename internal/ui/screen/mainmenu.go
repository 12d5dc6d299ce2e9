package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumos-ai/turnkey-tui/internal/session"
	"github.com/quantumos-ai/turnkey-tui/internal/ui"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/component"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/router"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/style"
)

// MenuItem represents a menu item
type MenuItem struct {
	Label       string
	Description string
	Route       ui.Route
}

// MainMenuScreen represents the main menu screen
type MainMenuScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	sessions session.Store

	// UI components
	helpBar *component.HelpBar

	// State
	selectedIndex int
	menuItems     []MenuItem
	lastUpdate    time.Time

	// Styling
	titleStyle       lipgloss.Style
	menuItemStyle    lipgloss.Style
	selectedStyle    lipgloss.Style
	descriptionStyle lipgloss.Style
	headerStyle      lipgloss.Style
}

// NewMainMenuScreen creates a new main menu screen
func NewMainMenuScreen(sessions session.Store) *MainMenuScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	menuItems := []MenuItem{
		{
			Label:       "📈 Investment Calculator",
			Description: "Project returns for a turnkey rental property",
			Route:       ui.RouteCalculator,
		},
		{
			Label:       "📋 Investor Questionnaire",
			Description: "Tell us about your investment goals",
			Route:       ui.RouteQuestionnaire,
		},
		{
			Label:       "🎬 Video Library",
			Description: "Watch our series and share your feedback",
			Route:       ui.RouteVideos,
		},
		{
			Label:       "🏘 Top Properties",
			Description: "Browse this month's featured listings",
			Route:       ui.RouteProperties,
		},
	}

	helpBar := component.NewHelpBar().
		SetKeyBindings(keyMap.ContextualHelp(ui.RouteMainMenu))

	return &MainMenuScreen{
		keyMap:        keyMap,
		sessions:      sessions,
		selectedIndex: 0,
		menuItems:     menuItems,
		helpBar:       helpBar,
		lastUpdate:    time.Now(),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0).
			Align(lipgloss.Center),

		menuItemStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 2).
			Margin(0, 0, 1, 0),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Padding(0, 2).
			Margin(0, 0, 1, 0).
			Bold(true),

		descriptionStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 4).
			Margin(0, 0, 1, 0).
			Italic(true),

		headerStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Padding(0, 2),
	}
}

// Init initializes the main menu screen
func (m *MainMenuScreen) Init() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tea.Msg(t) // For updating the clock
	})
}

// Update handles screen updates
func (m *MainMenuScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Up):
			m.moveUp()

		case key.Matches(msg, m.keyMap.Down):
			m.moveDown()

		case key.Matches(msg, m.keyMap.Enter):
			if m.selectedIndex < len(m.menuItems) {
				route := m.menuItems[m.selectedIndex].Route
				cmds = append(cmds, func() tea.Msg {
					return ui.RouterMsg{To: route}
				})
			}

		// Direct shortcuts
		case key.Matches(msg, m.keyMap.Calculator):
			cmds = append(cmds, func() tea.Msg {
				return ui.RouterMsg{To: ui.RouteCalculator}
			})

		case key.Matches(msg, m.keyMap.Questionnaire):
			cmds = append(cmds, func() tea.Msg {
				return ui.RouterMsg{To: ui.RouteQuestionnaire}
			})

		case key.Matches(msg, m.keyMap.Videos):
			cmds = append(cmds, func() tea.Msg {
				return ui.RouterMsg{To: ui.RouteVideos}
			})

		case key.Matches(msg, m.keyMap.Properties):
			cmds = append(cmds, func() tea.Msg {
				return ui.RouterMsg{To: ui.RouteProperties}
			})
		}

	case time.Time:
		m.lastUpdate = msg
		cmds = append(cmds, tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return tea.Msg(t)
		}))
	}

	return m, tea.Batch(cmds...)
}

// View renders the main menu screen
func (m *MainMenuScreen) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n\n")
	content.WriteString(m.renderMenu())
	content.WriteString("\n")
	content.WriteString(m.helpBar.SetWidth(m.width).View())

	result := content.String()
	if m.width > 80 {
		result = lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			result)
	}

	return result
}

// SetSize sets the screen dimensions
func (m *MainMenuScreen) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.helpBar.SetWidth(width)
}

// renderHeader renders the screen header
func (m *MainMenuScreen) renderHeader() string {
	title := "🏠 Turnkey Investment Calculator"
	styledTitle := m.titleStyle.Width(m.width).Render(title)

	name := "Investor"
	if sess, ok := m.sessions.Get(); ok && sess.Name != "" {
		name = sess.Name
	}

	timeStr := m.lastUpdate.Format("15:04:05")
	statusLine := fmt.Sprintf("Welcome, %s • %s", name, timeStr)
	styledStatus := m.headerStyle.Width(m.width).Align(lipgloss.Center).Render(statusLine)

	return lipgloss.JoinVertical(lipgloss.Center, styledTitle, styledStatus)
}

// renderMenu renders the menu items
func (m *MainMenuScreen) renderMenu() string {
	var menuItems []string

	for i, item := range m.menuItems {
		var itemStyle lipgloss.Style
		if i == m.selectedIndex {
			itemStyle = m.selectedStyle
		} else {
			itemStyle = m.menuItemStyle
		}

		styledItem := itemStyle.Render(item.Label)
		menuItems = append(menuItems, styledItem)

		// Add description for selected item
		if i == m.selectedIndex {
			description := m.descriptionStyle.Render(item.Description)
			menuItems = append(menuItems, description)
		}
	}

	menu := strings.Join(menuItems, "\n")

	menuStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.DefaultPalette().Primary).
		Padding(2, 4).
		Margin(1, 0)

	return menuStyle.Render(menu)
}

// moveUp moves selection up
func (m *MainMenuScreen) moveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	} else {
		m.selectedIndex = len(m.menuItems) - 1
	}
}

// moveDown moves selection down
func (m *MainMenuScreen) moveDown() {
	if m.selectedIndex < len(m.menuItems)-1 {
		m.selectedIndex++
	} else {
		m.selectedIndex = 0
	}
}
