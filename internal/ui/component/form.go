package component

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/style"
)

// FieldType represents the type of form field
type FieldType int

const (
	FieldTypeText FieldType = iota
	FieldTypePassword
	FieldTypeSelect
	FieldTypeSlider
)

// FormField represents a single form field
type FormField struct {
	Name        string
	Label       string
	Type        FieldType
	Value       string
	Options     []string // For select fields
	Placeholder string
	Required    bool
	Validation  func(string) error
	Error       string

	// Slider configuration
	Min     float64
	Max     float64
	Step    float64
	Display func(float64) string

	// Internal state
	textInput   textinput.Model
	number      float64 // For slider fields
	focused     bool
	selectedIdx int // For select fields
}

// Form represents a form component with multiple fields
type Form struct {
	fields     []FormField
	focusIndex int
	width      int
	height     int

	labelStyle   lipgloss.Style
	inputStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	errorStyle   lipgloss.Style
	trackStyle   lipgloss.Style
	fillStyle    lipgloss.Style
}

// NewForm creates a new form component
func NewForm() *Form {
	palette := style.DefaultPalette()

	return &Form{
		fields:     make([]FormField, 0),
		focusIndex: 0,

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			MarginRight(1),

		inputStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.BackgroundAlt).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.BackgroundAlt).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			MarginTop(1),

		trackStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		fillStyle: lipgloss.NewStyle().
			Foreground(palette.Primary),
	}
}

// AddField adds a field to the form
func (f *Form) AddField(name string, fieldType FieldType, label string, required bool, placeholder string) *Form {
	ti := textinput.New()
	ti.Width = 40
	ti.Placeholder = placeholder

	if fieldType == FieldTypePassword {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	field := FormField{
		Name:        name,
		Label:       label,
		Type:        fieldType,
		Value:       "",
		Options:     make([]string, 0),
		Placeholder: placeholder,
		Required:    required,
		textInput:   ti,
		focused:     false,
	}

	f.fields = append(f.fields, field)

	// Focus first field
	if len(f.fields) == 1 {
		f.fields[0].focused = true
		f.fields[0].textInput.Focus()
	}

	return f
}

// AddSlider adds a slider field bounded to [min, max] moving by step.
// display formats the current value for rendering; nil falls back to %g.
func (f *Form) AddSlider(name, label string, min, max, step, initial float64, display func(float64) string) *Form {
	field := FormField{
		Name:    name,
		Label:   label,
		Type:    FieldTypeSlider,
		Min:     min,
		Max:     max,
		Step:    step,
		Display: display,
		number:  clamp(initial, min, max),
	}
	field.Value = strconv.FormatFloat(field.number, 'f', -1, 64)

	f.fields = append(f.fields, field)
	if len(f.fields) == 1 {
		f.fields[0].focused = true
	}
	return f
}

// SetFieldValue sets the value of a field
func (f *Form) SetFieldValue(name, value string) *Form {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Value = value
			f.fields[i].textInput.SetValue(value)
			if f.fields[i].Type == FieldTypeSlider {
				if n, err := strconv.ParseFloat(value, 64); err == nil {
					f.fields[i].number = clamp(n, f.fields[i].Min, f.fields[i].Max)
				}
			}
			break
		}
	}
	return f
}

// SetFieldOptions sets options for select fields
func (f *Form) SetFieldOptions(name string, options []string) *Form {
	for i := range f.fields {
		if f.fields[i].Name == name && f.fields[i].Type == FieldTypeSelect {
			f.fields[i].Options = options
			if len(options) > 0 {
				f.fields[i].Value = options[0]
			}
			break
		}
	}
	return f
}

// SetFieldValidation sets a validation function for a field
func (f *Form) SetFieldValidation(name string, validation func(string) error) *Form {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Validation = validation
			break
		}
	}
	return f
}

// Init initializes the form (for compatibility with tea.Model interface)
func (f *Form) Init() tea.Cmd {
	return nil
}

// Update handles form input and updates
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			f.nextField()
		case "shift+tab":
			f.prevField()
		case "enter":
			if f.fields[f.focusIndex].Type == FieldTypeSelect {
				// For select fields, Enter cycles through options
				f.nextSelectOption()
			} else {
				f.nextField()
			}
		case "up":
			if f.fields[f.focusIndex].Type == FieldTypeSelect {
				f.prevSelectOption()
			}
		case "down":
			if f.fields[f.focusIndex].Type == FieldTypeSelect {
				f.nextSelectOption()
			}
		case "left":
			f.adjustSlider(-1)
		case "right":
			f.adjustSlider(+1)
		}
	}

	// Update the focused field
	if f.focusIndex < len(f.fields) {
		field := &f.fields[f.focusIndex]

		switch field.Type {
		case FieldTypeText, FieldTypePassword:
			var cmd tea.Cmd
			field.textInput, cmd = field.textInput.Update(msg)
			field.Value = field.textInput.Value()
			cmds = append(cmds, cmd)

			// Clear error when user types
			if field.Error != "" {
				field.Error = ""
			}
		}
	}

	return f, tea.Batch(cmds...)
}

// View renders the form
func (f *Form) View() string {
	if len(f.fields) == 0 {
		return "No fields defined"
	}

	var content strings.Builder

	for i, field := range f.fields {
		label := field.Label
		if field.Required {
			label += " *"
		}
		content.WriteString(f.labelStyle.Render(label))
		content.WriteString("\n")

		var fieldView string
		fieldStyle := f.inputStyle
		if i == f.focusIndex {
			fieldStyle = f.focusedStyle
		}

		switch field.Type {
		case FieldTypeText, FieldTypePassword:
			fieldView = fieldStyle.Render(field.textInput.View())

		case FieldTypeSelect:
			selectedValue := ""
			if len(field.Options) > 0 && field.selectedIdx < len(field.Options) {
				selectedValue = field.Options[field.selectedIdx]
			}

			selectText := selectedValue
			if i == f.focusIndex {
				selectText += " ▼"
			}
			fieldView = fieldStyle.Render(selectText)

		case FieldTypeSlider:
			fieldView = fieldStyle.Render(f.renderSlider(field))
		}

		content.WriteString(fieldView)
		content.WriteString("\n")

		if field.Error != "" {
			content.WriteString(f.errorStyle.Render("⚠ " + field.Error))
			content.WriteString("\n")
		}

		if i < len(f.fields)-1 {
			content.WriteString("\n")
		}
	}

	return content.String()
}

// renderSlider draws a horizontal track with the current value alongside.
func (f *Form) renderSlider(field FormField) string {
	trackWidth := 24
	if f.width > 0 && f.width-20 < trackWidth {
		trackWidth = f.width - 20
	}
	if trackWidth < 8 {
		trackWidth = 8
	}

	ratio := 0.0
	if field.Max > field.Min {
		ratio = (field.number - field.Min) / (field.Max - field.Min)
	}
	filled := int(ratio*float64(trackWidth) + 0.5)
	if filled > trackWidth {
		filled = trackWidth
	}

	track := f.fillStyle.Render(strings.Repeat("█", filled)) +
		f.trackStyle.Render(strings.Repeat("░", trackWidth-filled))

	display := field.Display
	if display == nil {
		display = func(v float64) string { return fmt.Sprintf("%g", v) }
	}

	return "◄ " + track + " ► " + display(field.number)
}

// adjustSlider moves the focused slider by direction steps.
func (f *Form) adjustSlider(direction float64) {
	field := &f.fields[f.focusIndex]
	if field.Type != FieldTypeSlider {
		return
	}

	field.number = clamp(field.number+direction*field.Step, field.Min, field.Max)
	field.Value = strconv.FormatFloat(field.number, 'f', -1, 64)
	field.Error = ""
}

// nextField moves focus to the next field
func (f *Form) nextField() {
	if len(f.fields) == 0 {
		return
	}

	f.fields[f.focusIndex].focused = false
	f.fields[f.focusIndex].textInput.Blur()

	f.focusIndex = (f.focusIndex + 1) % len(f.fields)

	f.fields[f.focusIndex].focused = true
	if isTextual(f.fields[f.focusIndex].Type) {
		f.fields[f.focusIndex].textInput.Focus()
	}
}

// prevField moves focus to the previous field
func (f *Form) prevField() {
	if len(f.fields) == 0 {
		return
	}

	f.fields[f.focusIndex].focused = false
	f.fields[f.focusIndex].textInput.Blur()

	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}

	f.fields[f.focusIndex].focused = true
	if isTextual(f.fields[f.focusIndex].Type) {
		f.fields[f.focusIndex].textInput.Focus()
	}
}

func isTextual(t FieldType) bool {
	return t == FieldTypeText || t == FieldTypePassword
}

// nextSelectOption moves to the next option in a select field
func (f *Form) nextSelectOption() {
	field := &f.fields[f.focusIndex]
	if field.Type != FieldTypeSelect || len(field.Options) == 0 {
		return
	}

	field.selectedIdx = (field.selectedIdx + 1) % len(field.Options)
	field.Value = field.Options[field.selectedIdx]
}

// prevSelectOption moves to the previous option in a select field
func (f *Form) prevSelectOption() {
	field := &f.fields[f.focusIndex]
	if field.Type != FieldTypeSelect || len(field.Options) == 0 {
		return
	}

	field.selectedIdx--
	if field.selectedIdx < 0 {
		field.selectedIdx = len(field.Options) - 1
	}
	field.Value = field.Options[field.selectedIdx]
}

// Validate validates all form fields
func (f *Form) Validate() bool {
	valid := true

	for i := range f.fields {
		field := &f.fields[i]

		field.Error = ""

		if field.Required && strings.TrimSpace(field.Value) == "" {
			field.Error = "This field is required"
			valid = false
			continue
		}

		if field.Validation != nil {
			if err := field.Validation(field.Value); err != nil {
				field.Error = err.Error()
				valid = false
			}
		}
	}

	return valid
}

// GetValue returns the value of a specific field
func (f *Form) GetValue(name string) string {
	for _, field := range f.fields {
		if field.Name == name {
			return field.Value
		}
	}
	return ""
}

// GetNumber returns the numeric value of a slider field, or the parsed
// value of a textual field.
func (f *Form) GetNumber(name string) float64 {
	for _, field := range f.fields {
		if field.Name != name {
			continue
		}
		if field.Type == FieldTypeSlider {
			return field.number
		}
		n, _ := strconv.ParseFloat(strings.TrimSpace(field.Value), 64)
		return n
	}
	return 0
}

// FocusedField returns the name of the currently focused field.
func (f *Form) FocusedField() string {
	if f.focusIndex < len(f.fields) {
		return f.fields[f.focusIndex].Name
	}
	return ""
}

// SetSize sets the form dimensions
func (f *Form) SetSize(width, height int) *Form {
	f.width = width
	f.height = height

	inputWidth := width - 4 // Account for padding and borders
	if inputWidth > 10 {
		for i := range f.fields {
			f.fields[i].textInput.Width = inputWidth
		}
	}

	return f
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
