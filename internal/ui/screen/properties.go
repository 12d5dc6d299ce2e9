package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumos-ai/turnkey-tui/internal/format"
	"github.com/quantumos-ai/turnkey-tui/internal/listing"
	"github.com/quantumos-ai/turnkey-tui/internal/ui"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/component"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/router"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/style"
)

// PropertiesScreen shows the curated top properties list.
type PropertiesScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	// UI components
	table   *component.Table
	helpBar *component.HelpBar

	properties []listing.Property

	// Styling
	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
}

// NewPropertiesScreen creates a new top properties screen
func NewPropertiesScreen() *PropertiesScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()
	properties := listing.TopProperties()

	table := component.NewTable().
		AddColumn("Property", 30, lipgloss.Left).
		AddColumn("Location", 18, lipgloss.Left).
		AddColumn("Price", 12, lipgloss.Right).
		AddColumn("Rent/mo", 10, lipgloss.Right).
		AddColumn("Cap Rate", 10, lipgloss.Right)

	for _, p := range properties {
		table.AddRow([]string{
			p.Title,
			p.Location,
			format.Currency(float64(p.Price)),
			format.Currency(float64(p.MonthlyRent)),
			format.Percent(p.CapRate),
		})
	}

	helpBar := component.NewHelpBar().
		SetKeyBindings(keyMap.ContextualHelp(ui.RouteProperties))

	return &PropertiesScreen{
		keyMap:     keyMap,
		table:      table,
		helpBar:    helpBar,
		properties: properties,

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0),

		detailStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Margin(1, 0, 0, 1),
	}
}

// Init initializes the properties screen
func (p *PropertiesScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (p *PropertiesScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return p, tea.Quit

		case key.Matches(msg, p.keyMap.Up):
			p.table.MoveUp()

		case key.Matches(msg, p.keyMap.Down):
			p.table.MoveDown()
		}
	}

	return p, nil
}

// View renders the properties screen
func (p *PropertiesScreen) View() string {
	if p.width == 0 || p.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(p.titleStyle.Render("🏘 Top Properties This Month"))
	content.WriteString("\n")
	content.WriteString(p.table.View())
	content.WriteString("\n")
	content.WriteString(p.renderDetail())
	content.WriteString("\n")
	content.WriteString(p.helpBar.SetWidth(p.width).View())

	result := content.String()
	if p.width > 100 {
		result = lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, result)
	}
	return result
}

// renderDetail shows extra numbers for the highlighted listing.
func (p *PropertiesScreen) renderDetail() string {
	idx := p.table.GetSelectedRow()
	if idx < 0 || idx >= len(p.properties) {
		return ""
	}

	prop := p.properties[idx]
	detail := fmt.Sprintf("%s • %d sq ft • built %d • gross yield %s",
		prop.PropertyType, prop.SquareFt, prop.BuiltYear, format.Percent(prop.GrossYield()))
	return p.detailStyle.Render(detail)
}

// SetSize sets the screen dimensions
func (p *PropertiesScreen) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.table.SetSize(width-4, height)
	p.helpBar.SetWidth(width)
}
