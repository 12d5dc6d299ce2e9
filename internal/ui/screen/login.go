package screen

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumos-ai/turnkey-tui/internal/api"
	"github.com/quantumos-ai/turnkey-tui/internal/format"
	"github.com/quantumos-ai/turnkey-tui/internal/session"
	"github.com/quantumos-ai/turnkey-tui/internal/ui"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/component"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/router"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/style"
	"go.uber.org/zap"
)

// LoginScreen collects a phone number and PIN and authenticates against
// the backend.
type LoginScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	client   *api.Client
	sessions session.Store
	logger   *zap.Logger

	// UI components
	form    *component.Form
	helpBar *component.HelpBar

	// State
	busy    bool
	authErr string

	// Styling
	titleStyle     lipgloss.Style
	subtitleStyle  lipgloss.Style
	errorStyle     lipgloss.Style
	busyStyle      lipgloss.Style
	containerStyle lipgloss.Style
}

// NewLoginScreen creates a new login screen
func NewLoginScreen(client *api.Client, sessions session.Store, logger *zap.Logger) *LoginScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	form := component.NewForm().
		AddField("phone", component.FieldTypeText, "Phone Number", true, "555-123-4567").
		AddField("pin", component.FieldTypePassword, "PIN", true, "4-digit PIN")

	form.SetFieldValidation("phone", func(v string) error {
		if len(format.Digits(v)) < 10 {
			return fmt.Errorf("enter a 10-digit phone number")
		}
		return nil
	})
	form.SetFieldValidation("pin", func(v string) error {
		digits := format.Digits(v)
		if len(digits) != 4 || digits != v {
			return fmt.Errorf("PIN must be exactly 4 digits")
		}
		return nil
	})

	helpBar := component.NewHelpBar().
		SetKeyBindings(keyMap.ContextualHelp(ui.RouteLogin))

	return &LoginScreen{
		keyMap:   keyMap,
		client:   client,
		sessions: sessions,
		logger:   logger,
		form:     form,
		helpBar:  helpBar,

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0).
			Align(lipgloss.Center),

		subtitleStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Align(lipgloss.Center),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true).
			Margin(1, 0),

		busyStyle: lipgloss.NewStyle().
			Foreground(palette.Info).
			Margin(1, 0),

		containerStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(2, 4).
			Margin(1, 0),
	}
}

// Init initializes the login screen
func (l *LoginScreen) Init() tea.Cmd {
	return l.form.Init()
}

// Update handles screen updates
func (l *LoginScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}

		switch {
		case msg.String() == "ctrl+c":
			return l, tea.Quit

		case key.Matches(msg, l.keyMap.Enter) && l.form.FocusedField() == "pin":
			if l.form.Validate() {
				return l, l.authenticate()
			}

		default:
			var cmd tea.Cmd
			l.form, cmd = l.form.Update(msg)
			cmds = append(cmds, cmd)
			l.authErr = ""

			// Keep the phone field formatted as the user types.
			formatted := format.PhoneNumber(l.form.GetValue("phone"))
			if formatted != l.form.GetValue("phone") {
				l.form.SetFieldValue("phone", formatted)
			}
		}

	case ui.AuthResultMsg:
		l.busy = false
		if msg.Err != nil {
			l.authErr = "Invalid phone number or PIN. Please try again."
			l.logger.Warn("authentication failed", zap.Error(msg.Err))
			return l, nil
		}

		if err := l.sessions.Set(session.Session{
			Authenticated: true,
			ContactID:     msg.Contact.ID,
			PhoneNumber:   msg.Contact.PhoneNumber,
			Name:          msg.Contact.Name,
		}); err != nil {
			l.logger.Warn("failed to persist session", zap.Error(err))
		}

		cmds = append(cmds, func() tea.Msg {
			return ui.RouterMsg{To: ui.RouteMainMenu}
		})
	}

	return l, tea.Batch(cmds...)
}

// authenticate posts the credentials and reports the result as a message.
func (l *LoginScreen) authenticate() tea.Cmd {
	phone := format.Digits(l.form.GetValue("phone"))
	pin := l.form.GetValue("pin")
	l.busy = true
	l.authErr = ""

	return func() tea.Msg {
		contact, err := l.client.Authenticate(context.Background(), phone, pin)
		if err != nil {
			return ui.AuthResultMsg{Err: err}
		}
		if !contact.Authenticated {
			return ui.AuthResultMsg{Err: api.ErrNotAuthenticated}
		}
		return ui.AuthResultMsg{Contact: contact}
	}
}

// View renders the login screen
func (l *LoginScreen) View() string {
	if l.width == 0 || l.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	content.WriteString(l.titleStyle.Width(60).Render("🏠 Turnkey Investment Calculator"))
	content.WriteString("\n")
	content.WriteString(l.subtitleStyle.Width(60).Render("Sign in with your phone number and PIN"))
	content.WriteString("\n\n")
	content.WriteString(l.form.View())

	if l.busy {
		content.WriteString("\n")
		content.WriteString(l.busyStyle.Render("Signing in..."))
	}
	if l.authErr != "" {
		content.WriteString("\n")
		content.WriteString(l.errorStyle.Render("⚠ " + l.authErr))
	}

	content.WriteString("\n")
	content.WriteString(l.helpBar.SetWidth(56).View())

	boxed := l.containerStyle.Render(content.String())
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, boxed)
}

// SetSize sets the screen dimensions
func (l *LoginScreen) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.form.SetSize(56, height)
}
