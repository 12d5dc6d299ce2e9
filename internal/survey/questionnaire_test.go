package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeQuestionnaire() Questionnaire {
	return Questionnaire{
		AccreditedInvestor: AnswerYes,
		InvestedBefore:     AnswerNo,
		LookingToInvest:    "1-3 months",
		PrimaryGoal:        "Cash flow",
		InvestmentTimeline: "3-5 years",
		InvestmentCapital:  "$100,000 - $250,000",
		UseFinancing:       "Undecided",
		InterestedMarkets:  []string{"Indianapolis, IN", "Memphis, TN"},
		PropertyTypes:      []string{"Duplexes"},
		InvestmentTiming:   "Within 3-6 months",
	}
}

func TestComplete(t *testing.T) {
	q := completeQuestionnaire()
	assert.True(t, q.Complete())

	q.PrimaryGoal = ""
	assert.False(t, q.Complete())

	// Multi-selects may be empty; completeness only gates the single-answer
	// questions.
	q = completeQuestionnaire()
	q.InterestedMarkets = nil
	q.PropertyTypes = nil
	assert.True(t, q.Complete())
}

func TestToSubmission(t *testing.T) {
	q := completeQuestionnaire()
	sub := q.ToSubmission("contact-7")

	assert.True(t, sub.IsAccreditedInvestor)
	assert.False(t, sub.HasInvestedBefore)
	assert.Equal(t, "1-3 months", sub.LookingTimeframe)
	assert.Equal(t, "Cash flow", sub.PrimaryInvestmentGoal)
	assert.Equal(t, "3-5 years", sub.InvestmentTimeline)
	assert.Equal(t, "$100,000 - $250,000", sub.CapitalToInvest)
	assert.Equal(t, "Undecided", sub.UseFinancing)
	assert.Equal(t, []string{"Indianapolis, IN", "Memphis, TN"}, sub.MarketsInterested)
	assert.Equal(t, []string{"Duplexes"}, sub.PropertyTypesInterested)
	assert.Equal(t, "Within 3-6 months", sub.InvestmentTimeframe)
	assert.Equal(t, "contact-7", sub.ContactID)
}

func TestToggle(t *testing.T) {
	var markets []string
	markets = Toggle(markets, "Tampa, FL")
	assert.Equal(t, []string{"Tampa, FL"}, markets)

	markets = Toggle(markets, "Atlanta, GA")
	assert.True(t, Contains(markets, "Tampa, FL"))
	assert.True(t, Contains(markets, "Atlanta, GA"))

	markets = Toggle(markets, "Tampa, FL")
	assert.False(t, Contains(markets, "Tampa, FL"))
	assert.Equal(t, []string{"Atlanta, GA"}, markets)
}

func TestMarketOptionsMatchCalculator(t *testing.T) {
	assert.Len(t, MarketOptions(), 7)
	assert.Contains(t, MarketOptions(), "Birmingham, AL")
}
