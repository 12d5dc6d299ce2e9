package screen

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumos-ai/turnkey-tui/internal/api"
	"github.com/quantumos-ai/turnkey-tui/internal/session"
	"github.com/quantumos-ai/turnkey-tui/internal/survey"
	"github.com/quantumos-ai/turnkey-tui/internal/ui"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/component"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/router"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/style"
	"go.uber.org/zap"
)

// questionnaireQuestion is one step of the wizard.
type questionnaireQuestion struct {
	Prompt      string
	Options     []string
	MultiSelect bool
}

const reviewStep = 10

// QuestionnaireScreen walks the investor through the qualifying
// questionnaire one question at a time, ending with a review step.
type QuestionnaireScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	client   *api.Client
	sessions session.Store
	logger   *zap.Logger

	// UI components
	helpBar     *component.HelpBar
	reviewTable *component.Table

	// State
	questions   []questionnaireQuestion
	answers     survey.Questionnaire
	currentStep int
	cursor      int
	busy        bool
	submitted   bool
	errText     string

	// Styling
	titleStyle     lipgloss.Style
	stepStyle      lipgloss.Style
	promptStyle    lipgloss.Style
	optionStyle    lipgloss.Style
	selectedStyle  lipgloss.Style
	checkedStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	successStyle   lipgloss.Style
	containerStyle lipgloss.Style
}

// NewQuestionnaireScreen creates a new questionnaire wizard
func NewQuestionnaireScreen(client *api.Client, sessions session.Store, logger *zap.Logger) *QuestionnaireScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	questions := []questionnaireQuestion{
		{Prompt: "Are you an accredited investor?", Options: []string{survey.AnswerYes, survey.AnswerNo}},
		{Prompt: "Have you invested in real estate before?", Options: []string{survey.AnswerYes, survey.AnswerNo}},
		{Prompt: "How long have you been looking to invest?", Options: survey.LookingTimeframes},
		{Prompt: "What is your primary investment goal?", Options: survey.PrimaryGoals},
		{Prompt: "What is your investment timeline?", Options: survey.InvestmentTimelines},
		{Prompt: "How much capital do you have to invest?", Options: survey.CapitalBands},
		{Prompt: "Will you use financing?", Options: survey.FinancingAnswers},
		{Prompt: "Which markets are you interested in?", Options: survey.MarketOptions(), MultiSelect: true},
		{Prompt: "Which property types interest you?", Options: survey.PropertyTypeOptions, MultiSelect: true},
		{Prompt: "When do you plan to invest?", Options: survey.InvestmentTimings},
	}

	reviewTable := component.NewTable().
		AddColumn("Question", 34, lipgloss.Left).
		AddColumn("Answer", 30, lipgloss.Left).
		SetSelectable(false)

	helpBar := component.NewHelpBar().
		SetKeyBindings(keyMap.ContextualHelp(ui.RouteQuestionnaire))

	return &QuestionnaireScreen{
		keyMap:      keyMap,
		client:      client,
		sessions:    sessions,
		logger:      logger,
		helpBar:     helpBar,
		reviewTable: reviewTable,
		questions:   questions,

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0),

		stepStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Margin(0, 0, 1, 0),

		promptStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Margin(0, 0, 1, 0),

		optionStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 2),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Padding(0, 2).
			Bold(true),

		checkedStyle: lipgloss.NewStyle().
			Foreground(palette.Success).
			Padding(0, 2),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true).
			Margin(1, 0),

		successStyle: lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true).
			Margin(1, 0),

		containerStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(1, 3).
			Margin(1, 0),
	}
}

// Init initializes the questionnaire screen
func (q *QuestionnaireScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (q *QuestionnaireScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if q.busy {
			return q, nil
		}

		if q.submitted {
			if key.Matches(msg, q.keyMap.Enter) {
				cmds = append(cmds, func() tea.Msg {
					return ui.RouterMsg{To: ui.RouteMainMenu}
				})
			}
			return q, tea.Batch(cmds...)
		}

		switch {
		case msg.String() == "ctrl+c":
			return q, tea.Quit

		case key.Matches(msg, q.keyMap.Up):
			if q.currentStep < reviewStep && q.cursor > 0 {
				q.cursor--
			}

		case key.Matches(msg, q.keyMap.Down):
			if q.currentStep < reviewStep && q.cursor < len(q.questions[q.currentStep].Options)-1 {
				q.cursor++
			}

		case key.Matches(msg, q.keyMap.Toggle):
			if q.currentStep < reviewStep && q.questions[q.currentStep].MultiSelect {
				q.toggleCurrent()
			}

		case key.Matches(msg, q.keyMap.Enter):
			if q.currentStep == reviewStep {
				return q, q.submit()
			}
			q.advance()
		}

	case ui.QuestionnaireSubmittedMsg:
		q.busy = false
		if msg.Err != nil {
			q.errText = "Submission failed. Press enter to try again."
			q.logger.Warn("questionnaire submission failed", zap.Error(msg.Err))
		} else {
			q.submitted = true
			q.errText = ""
		}
	}

	return q, tea.Batch(cmds...)
}

// toggleCurrent flips the highlighted option of a multi-select question.
func (q *QuestionnaireScreen) toggleCurrent() {
	option := q.questions[q.currentStep].Options[q.cursor]
	switch q.currentStep {
	case 7:
		q.answers.InterestedMarkets = survey.Toggle(q.answers.InterestedMarkets, option)
	case 8:
		q.answers.PropertyTypes = survey.Toggle(q.answers.PropertyTypes, option)
	}
}

// advance records the answer for the current step and moves forward.
func (q *QuestionnaireScreen) advance() {
	question := q.questions[q.currentStep]

	if !question.MultiSelect {
		option := question.Options[q.cursor]
		switch q.currentStep {
		case 0:
			q.answers.AccreditedInvestor = option
		case 1:
			q.answers.InvestedBefore = option
		case 2:
			q.answers.LookingToInvest = option
		case 3:
			q.answers.PrimaryGoal = option
		case 4:
			q.answers.InvestmentTimeline = option
		case 5:
			q.answers.InvestmentCapital = option
		case 6:
			q.answers.UseFinancing = option
		case 9:
			q.answers.InvestmentTiming = option
		}
	}

	q.currentStep++
	q.cursor = 0
	q.errText = ""

	if q.currentStep == reviewStep {
		q.refreshReviewTable()
	}
}

// submit posts the completed questionnaire for the signed-in contact.
func (q *QuestionnaireScreen) submit() tea.Cmd {
	if !q.answers.Complete() {
		q.errText = "Some questions are unanswered."
		return nil
	}

	sess, ok := q.sessions.Get()
	if !ok || sess.ContactID == "" {
		q.errText = "No active session; sign in again to submit."
		return nil
	}

	submission := q.answers.ToSubmission(sess.ContactID)
	q.busy = true
	q.errText = ""

	return func() tea.Msg {
		err := q.client.CreateQuestionnaire(context.Background(), submission)
		return ui.QuestionnaireSubmittedMsg{Err: err}
	}
}

// refreshReviewTable fills the review table with the recorded answers.
func (q *QuestionnaireScreen) refreshReviewTable() {
	multi := func(values []string) string {
		if len(values) == 0 {
			return "None selected"
		}
		return strings.Join(values, ", ")
	}

	q.reviewTable.Clear()
	q.reviewTable.AddRow([]string{"Accredited investor", q.answers.AccreditedInvestor})
	q.reviewTable.AddRow([]string{"Invested before", q.answers.InvestedBefore})
	q.reviewTable.AddRow([]string{"Looking to invest", q.answers.LookingToInvest})
	q.reviewTable.AddRow([]string{"Primary goal", q.answers.PrimaryGoal})
	q.reviewTable.AddRow([]string{"Investment timeline", q.answers.InvestmentTimeline})
	q.reviewTable.AddRow([]string{"Capital to invest", q.answers.InvestmentCapital})
	q.reviewTable.AddRow([]string{"Use financing", q.answers.UseFinancing})
	q.reviewTable.AddRow([]string{"Markets", multi(q.answers.InterestedMarkets)})
	q.reviewTable.AddRow([]string{"Property types", multi(q.answers.PropertyTypes)})
	q.reviewTable.AddRow([]string{"Timing", q.answers.InvestmentTiming})
}

// View renders the questionnaire screen
func (q *QuestionnaireScreen) View() string {
	if q.width == 0 || q.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(q.titleStyle.Render("📋 Investor Questionnaire"))
	content.WriteString("\n")

	switch {
	case q.submitted:
		content.WriteString(q.successStyle.Render("✓ Questionnaire submitted. Thank you!"))
		content.WriteString("\n")
		content.WriteString(q.stepStyle.Render("Press enter to return to the main menu."))

	case q.currentStep == reviewStep:
		content.WriteString(q.promptStyle.Render("Review your answers"))
		content.WriteString("\n")
		content.WriteString(q.reviewTable.View())
		content.WriteString("\n")
		content.WriteString(q.stepStyle.Render("enter submit • esc back"))
		if q.busy {
			content.WriteString("\n")
			content.WriteString(q.stepStyle.Render("Submitting..."))
		}

	default:
		question := q.questions[q.currentStep]
		content.WriteString(q.stepStyle.Render(fmt.Sprintf("Question %d of %d", q.currentStep+1, len(q.questions))))
		content.WriteString("\n")
		content.WriteString(q.promptStyle.Render(question.Prompt))
		content.WriteString("\n")
		content.WriteString(q.renderOptions(question))
		content.WriteString("\n")
		if question.MultiSelect {
			content.WriteString(q.stepStyle.Render("space toggle • enter next"))
		} else {
			content.WriteString(q.stepStyle.Render("enter select"))
		}
	}

	if q.errText != "" {
		content.WriteString("\n")
		content.WriteString(q.errorStyle.Render("⚠ " + q.errText))
	}

	boxed := q.containerStyle.Render(content.String())
	result := boxed + "\n" + q.helpBar.SetWidth(q.width).View()

	if q.width > 80 {
		result = lipgloss.Place(q.width, q.height, lipgloss.Center, lipgloss.Center, result)
	}
	return result
}

// renderOptions renders the option list for the current question.
func (q *QuestionnaireScreen) renderOptions(question questionnaireQuestion) string {
	var lines []string

	for i, option := range question.Options {
		label := option
		if question.MultiSelect {
			mark := "☐"
			if q.isChecked(option) {
				mark = "☑"
			}
			label = mark + " " + option
		}

		if i == q.cursor {
			lines = append(lines, q.selectedStyle.Render(label))
		} else if question.MultiSelect && q.isChecked(option) {
			lines = append(lines, q.checkedStyle.Render(label))
		} else {
			lines = append(lines, q.optionStyle.Render(label))
		}
	}

	return strings.Join(lines, "\n")
}

// isChecked reports whether option is selected on the current multi-select.
func (q *QuestionnaireScreen) isChecked(option string) bool {
	switch q.currentStep {
	case 7:
		return survey.Contains(q.answers.InterestedMarkets, option)
	case 8:
		return survey.Contains(q.answers.PropertyTypes, option)
	}
	return false
}

// SetSize sets the screen dimensions
func (q *QuestionnaireScreen) SetSize(width, height int) {
	q.width = width
	q.height = height
	q.helpBar.SetWidth(width)
}
