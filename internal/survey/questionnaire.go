// internal/survey/questionnaire.go
package survey

import (
	"github.com/quantumos-ai/turnkey-tui/internal/api"
	"github.com/quantumos-ai/turnkey-tui/internal/calc"
)

// Yes/no answers are carried as the literal strings the backend expects.
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// Option lists for the single-select questions, in display order.
var (
	LookingTimeframes = []string{
		"Less than 1 month",
		"1-3 months",
		"3-6 months",
		"6-12 months",
		"More than 1 year",
	}

	PrimaryGoals = []string{
		"Cash flow",
		"Capital appreciation",
		"Tax benefits",
		"Portfolio diversification",
		"Long-term wealth building",
	}

	InvestmentTimelines = []string{
		"Less than 1 year",
		"1-3 years",
		"3-5 years",
		"5-10 years",
		"10+ years",
	}

	CapitalBands = []string{
		"Less than $50,000",
		"$50,000 - $100,000",
		"$100,000 - $250,000",
		"$250,000 - $500,000",
		"$500,000 - $1,000,000",
		"More than $1,000,000",
	}

	FinancingAnswers = []string{
		"Yes",
		"No (Cash Purchase)",
		"Undecided",
	}

	InvestmentTimings = []string{
		"As soon as possible",
		"Within 1-3 months",
		"Within 3-6 months",
		"Within 6-12 months",
		"More than 12 months",
	}

	// PropertyTypeOptions uses the marketing plurals from the questionnaire,
	// not the calculator's enum names.
	PropertyTypeOptions = []string{
		"Single Family Homes",
		"Duplexes",
		"Triplexes",
		"Fourplexes",
	}
)

// MarketOptions returns the markets the questionnaire offers, which are the
// same seven areas the calculator projects.
func MarketOptions() []string {
	return calc.MarketAreas()
}

// Questionnaire holds the ten qualifying answers as entered.
type Questionnaire struct {
	AccreditedInvestor string   // Yes/No
	InvestedBefore     string   // Yes/No
	LookingToInvest    string   // one of LookingTimeframes
	PrimaryGoal        string   // one of PrimaryGoals
	InvestmentTimeline string   // one of InvestmentTimelines
	InvestmentCapital  string   // one of CapitalBands
	UseFinancing       string   // one of FinancingAnswers
	InterestedMarkets  []string // subset of MarketOptions
	PropertyTypes      []string // subset of PropertyTypeOptions
	InvestmentTiming   string   // one of InvestmentTimings
}

// Complete reports whether every question has an answer. The two
// multi-selects may legitimately be empty.
func (q Questionnaire) Complete() bool {
	return q.AccreditedInvestor != "" &&
		q.InvestedBefore != "" &&
		q.LookingToInvest != "" &&
		q.PrimaryGoal != "" &&
		q.InvestmentTimeline != "" &&
		q.InvestmentCapital != "" &&
		q.UseFinancing != "" &&
		q.InvestmentTiming != ""
}

// ToSubmission maps the answers to the backend's field names. The two
// leading yes/no answers become booleans on the wire.
func (q Questionnaire) ToSubmission(contactID string) api.QuestionnaireSubmission {
	return api.QuestionnaireSubmission{
		IsAccreditedInvestor:    q.AccreditedInvestor == AnswerYes,
		HasInvestedBefore:       q.InvestedBefore == AnswerYes,
		LookingTimeframe:        q.LookingToInvest,
		PrimaryInvestmentGoal:   q.PrimaryGoal,
		InvestmentTimeline:      q.InvestmentTimeline,
		CapitalToInvest:         q.InvestmentCapital,
		UseFinancing:            q.UseFinancing,
		MarketsInterested:       q.InterestedMarkets,
		PropertyTypesInterested: q.PropertyTypes,
		InvestmentTimeframe:     q.InvestmentTiming,
		ContactID:               contactID,
	}
}

// Toggle adds value to the slice if absent, otherwise removes it. Used by
// the checkbox questions.
func Toggle(values []string, value string) []string {
	for i, v := range values {
		if v == value {
			return append(values[:i], values[i+1:]...)
		}
	}
	return append(values, value)
}

// Contains reports membership in a multi-select answer.
func Contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
