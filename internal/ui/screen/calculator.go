package screen

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumos-ai/turnkey-tui/internal/api"
	"github.com/quantumos-ai/turnkey-tui/internal/calc"
	"github.com/quantumos-ai/turnkey-tui/internal/format"
	"github.com/quantumos-ai/turnkey-tui/internal/session"
	"github.com/quantumos-ai/turnkey-tui/internal/ui"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/component"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/router"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/style"
	"go.uber.org/zap"
)

// CalculatorScreen lets the investor tune projection inputs and review
// the resulting numbers before sharing them with the backend.
type CalculatorScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	client   *api.Client
	sessions session.Store
	logger   *zap.Logger

	// UI components
	form         *component.Form
	resultsTable *component.Table
	helpBar      *component.HelpBar

	// State
	params       calc.ParameterSet
	result       calc.Result
	hasResult    bool
	roiUndefined bool
	busy         bool
	status       string
	statusIsErr  bool

	// Styling
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	statusStyle  lipgloss.Style
	errorStyle   lipgloss.Style
	targetStyle  lipgloss.Style
	missedStyle  lipgloss.Style
}

// NewCalculatorScreen creates a new calculator screen
func NewCalculatorScreen(client *api.Client, sessions session.Store, logger *zap.Logger) *CalculatorScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()
	defaults := calc.DefaultParameters()

	form := component.NewForm().
		AddField("property_type", component.FieldTypeSelect, "Property Type", true, "").
		AddField("market_area", component.FieldTypeSelect, "Market Area", true, "").
		AddSlider("investment", "Investment Amount",
			calc.MinInvestmentAmount, calc.MaxInvestmentAmount, calc.InvestmentAmountStep,
			float64(defaults.InvestmentAmount), format.Currency).
		AddSlider("hold_period", "Hold Period (years)",
			calc.MinHoldPeriod, calc.MaxHoldPeriod, 1,
			float64(defaults.HoldPeriod), nil).
		AddSlider("return_rate", "Target Annual Return",
			calc.MinAnnualReturnRate, calc.MaxAnnualReturnRate, 0.5,
			defaults.AnnualReturnRate, format.Percent).
		AddSlider("management_fee", "Property Management Fee",
			calc.MinPropertyManagementFee, calc.MaxPropertyManagementFee, 0.5,
			defaults.PropertyManagementFee, format.Percent).
		AddSlider("vacancy_rate", "Vacancy Rate",
			calc.MinVacancyRate, calc.MaxVacancyRate, 0.5,
			defaults.VacancyRate, format.Percent)

	form.SetFieldOptions("property_type", calc.PropertyTypes())
	form.SetFieldOptions("market_area", calc.MarketAreas())

	resultsTable := component.NewTable().
		AddColumn("Metric", 26, lipgloss.Left).
		AddColumn("Value", 18, lipgloss.Right).
		SetSelectable(false)

	helpBar := component.NewHelpBar().
		SetKeyBindings(keyMap.ContextualHelp(ui.RouteCalculator))

	return &CalculatorScreen{
		keyMap:       keyMap,
		client:       client,
		sessions:     sessions,
		logger:       logger,
		form:         form,
		resultsTable: resultsTable,
		helpBar:      helpBar,
		params:       defaults,

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0),

		sectionStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Margin(1, 0, 0, 0),

		statusStyle: lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true).
			Margin(1, 0),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true).
			Margin(1, 0),

		targetStyle: lipgloss.NewStyle().
			Foreground(palette.Gain).
			Bold(true),

		missedStyle: lipgloss.NewStyle().
			Foreground(palette.Loss).
			Bold(true),
	}
}

// Init initializes the calculator screen
func (c *CalculatorScreen) Init() tea.Cmd {
	return c.form.Init()
}

// Update handles screen updates
func (c *CalculatorScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if c.busy {
			return c, nil
		}

		switch {
		case msg.String() == "ctrl+c":
			return c, tea.Quit

		case key.Matches(msg, c.keyMap.Calculate):
			c.calculate()

		case key.Matches(msg, c.keyMap.Enter) && c.hasResult:
			if c.roiUndefined {
				c.status = "ROI is undefined for these inputs; nothing was submitted."
				c.statusIsErr = true
				return c, nil
			}
			return c, c.submit()

		default:
			var cmd tea.Cmd
			c.form, cmd = c.form.Update(msg)
			cmds = append(cmds, cmd)
			// Stale numbers are worse than no numbers.
			if c.hasResult {
				c.hasResult = false
				c.status = ""
			}
		}

	case ui.CalculationSubmittedMsg:
		c.busy = false
		if msg.Err != nil {
			// Keep the local projection on failure so the numbers stay visible.
			c.status = "Submission failed. Your projection is still shown above."
			c.statusIsErr = true
			c.logger.Warn("calculation submission failed", zap.Error(msg.Err))
		} else {
			c.status = "Calculation saved to your profile."
			c.statusIsErr = false
		}
	}

	return c, tea.Batch(cmds...)
}

// calculate reads the form into a ParameterSet and runs the projection.
func (c *CalculatorScreen) calculate() {
	c.params = calc.ParameterSet{
		PropertyType:          c.form.GetValue("property_type"),
		MarketArea:            c.form.GetValue("market_area"),
		InvestmentAmount:      int(c.form.GetNumber("investment")),
		HoldPeriod:            int(c.form.GetNumber("hold_period")),
		AnnualReturnRate:      c.form.GetNumber("return_rate"),
		PropertyManagementFee: c.form.GetNumber("management_fee"),
		VacancyRate:           c.form.GetNumber("vacancy_rate"),
	}

	result, err := calc.ProjectParameters(c.params)
	c.roiUndefined = errors.Is(err, calc.ErrUndefinedROI)
	if err != nil && !c.roiUndefined {
		c.status = err.Error()
		c.statusIsErr = true
		c.hasResult = false
		return
	}

	c.result = result
	c.hasResult = true
	c.status = ""
	c.refreshResultsTable()
}

// submit posts the current projection keyed by the signed-in contact.
func (c *CalculatorScreen) submit() tea.Cmd {
	sess, ok := c.sessions.Get()
	if !ok || sess.ContactID == "" {
		c.status = "No active session; sign in again to submit."
		c.statusIsErr = true
		return nil
	}

	submission := api.NewCalculationSubmission(c.params, c.result, sess.ContactID)
	c.busy = true
	c.status = "Submitting..."
	c.statusIsErr = false

	return func() tea.Msg {
		err := c.client.CreateCalculation(context.Background(), submission)
		return ui.CalculationSubmittedMsg{Err: err}
	}
}

// refreshResultsTable rebuilds the table rows from the latest projection.
func (c *CalculatorScreen) refreshResultsTable() {
	c.resultsTable.Clear()
	c.resultsTable.AddRow([]string{"Purchase Price", format.Currency(c.result.PurchasePrice)})
	c.resultsTable.AddRow([]string{"Monthly Cash Flow", format.Currency(c.result.MonthlyCashFlow)})
	c.resultsTable.AddRow([]string{"Annual Cash Flow", format.Currency(c.result.AnnualCashFlow)})
	c.resultsTable.AddRow([]string{"Total Cash Flow", format.Currency(c.result.TotalCashFlow)})
	c.resultsTable.AddRow([]string{"Future Property Value", format.Currency(c.result.FuturePropertyValue)})
	c.resultsTable.AddRow([]string{"Equity Gain", format.Currency(c.result.EquityGain)})
	c.resultsTable.AddRow([]string{"Principal Reduction", format.Currency(c.result.PrincipalReduction)})
	c.resultsTable.AddRow([]string{"Total Return", format.Currency(c.result.TotalReturn)})
	c.resultsTable.AddRow([]string{"Annualized ROI", format.Percent(c.result.ROI)})
	c.resultsTable.AddRow([]string{"Cap Rate", format.Percent(c.result.CapRate)})
	c.resultsTable.AddRow([]string{"Cash-on-Cash Return", format.Percent(c.result.CashOnCashReturn)})
	c.resultsTable.AddRow([]string{"Target Monthly Income", format.Currency(c.result.TargetMonthlyIncome)})
	c.resultsTable.AddRow([]string{"Target Total Return", format.Currency(c.result.TargetTotalReturn)})

	palette := style.DefaultPalette()
	lossStyle := lipgloss.NewStyle().Foreground(palette.Loss).Padding(0, 1)
	if c.result.MonthlyCashFlow < 0 {
		c.resultsTable.SetRowStyle(1, lossStyle)
	}
	if c.result.AnnualCashFlow < 0 {
		c.resultsTable.SetRowStyle(2, lossStyle)
	}
}

// View renders the calculator screen
func (c *CalculatorScreen) View() string {
	if c.width == 0 || c.height == 0 {
		return "Loading..."
	}

	var left strings.Builder
	left.WriteString(c.titleStyle.Render("📈 Investment Calculator"))
	left.WriteString("\n")
	left.WriteString(c.form.View())

	var right strings.Builder
	if c.hasResult {
		right.WriteString(c.sectionStyle.Render("Projection"))
		right.WriteString("\n")
		right.WriteString(c.resultsTable.View())
		right.WriteString("\n")

		if c.roiUndefined {
			right.WriteString(c.errorStyle.Render("ROI is undefined for these inputs."))
		} else if c.result.MeetsTarget {
			right.WriteString(c.targetStyle.Render("✓ Meets your target return"))
		} else {
			right.WriteString(c.missedStyle.Render("✗ Below your target return"))
		}
		right.WriteString("\n")
	}

	if c.status != "" {
		statusStyle := c.statusStyle
		if c.statusIsErr {
			statusStyle = c.errorStyle
		}
		right.WriteString(statusStyle.Render(c.status))
		right.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(52).Render(left.String()),
		lipgloss.NewStyle().MarginLeft(2).Render(right.String()),
	)

	return body + "\n" + c.helpBar.SetWidth(c.width).View()
}

// SetSize sets the screen dimensions
func (c *CalculatorScreen) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.form.SetSize(48, height)
	c.helpBar.SetWidth(width)
}
