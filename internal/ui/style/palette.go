package style

import "github.com/charmbracelet/lipgloss"

// Color palette for the investor TUI
var (
	// Primary colors
	Blue   = lipgloss.Color("#2563EB") // Primary highlight / buttons
	Navy   = lipgloss.Color("#1E3A8A") // Secondary accent
	Green  = lipgloss.Color("#2AFFAA") // Positive cash flow / success
	Red    = lipgloss.Color("#FF5555") // Negative cash flow / errors
	Yellow = lipgloss.Color("#FFB500") // Warnings
	Cyan   = lipgloss.Color("#00E5FF") // Info

	// Base colors
	Base03 = lipgloss.Color("#1B1D23") // Background
	Base02 = lipgloss.Color("#262831") // Darker background
	Base01 = lipgloss.Color("#6C7280") // Muted text
	Base2  = lipgloss.Color("#ECEFF4") // Primary text
	Base1  = lipgloss.Color("#B4BCC8") // Secondary text
)

// Palette provides a centralized color management
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color

	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextSecondary lipgloss.Color

	Gain lipgloss.Color
	Loss lipgloss.Color
}

// DefaultPalette returns the default color palette
func DefaultPalette() Palette {
	return Palette{
		Primary:   Blue,
		Secondary: Navy,
		Success:   Green,
		Error:     Red,
		Warning:   Yellow,
		Info:      Cyan,

		Background:    Base03,
		BackgroundAlt: Base02,
		Text:          Base2,
		TextMuted:     Base01,
		TextSecondary: Base1,

		Gain: Green,
		Loss: Red,
	}
}
