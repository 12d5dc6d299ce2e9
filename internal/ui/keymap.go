package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the application
type KeyMap struct {
	// Global navigation
	Quit key.Binding
	Back key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Toggle   key.Binding

	// Application specific
	Calculator    key.Binding
	Questionnaire key.Binding
	Videos        key.Binding
	Properties    key.Binding

	// Runs the projection on the calculator screen
	Calculate key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "increase"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),

		Calculator: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "calculator"),
		),
		Questionnaire: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "investor questions"),
		),
		Videos: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "videos"),
		),
		Properties: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "top properties"),
		),

		Calculate: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "calculate"),
		),
	}
}

// ShortHelp returns key help text for the current context
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// ContextualHelp returns help text based on the current route
func (k KeyMap) ContextualHelp(route Route) []key.Binding {
	switch route {
	case RouteLogin:
		return []key.Binding{k.Tab, k.Enter}
	case RouteMainMenu:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
	case RouteCalculator:
		return []key.Binding{k.Tab, k.Left, k.Right, k.Calculate, k.Enter, k.Back}
	case RouteQuestionnaire:
		return []key.Binding{k.Up, k.Down, k.Toggle, k.Enter, k.Back}
	case RouteVideos:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Back}
	case RouteProperties:
		return []key.Binding{k.Back, k.Quit}
	default:
		return k.ShortHelp()
	}
}
