package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDefaultScenario(t *testing.T) {
	params := DefaultParameters()
	result, err := ProjectParameters(params)
	require.NoError(t, err)

	// Hand-computed expectations for the default inputs:
	// purchasePrice = 100000 / 0.20 = 500000
	// grossMonthlyRent = 500000 * 0.008 = 4000
	// annualGrossIncome = 48000
	// annualExpenses = 19200 + 6250 + 2500 + 4800 + 7500 = 40250
	// annualNOI = 7750
	// loanAmount = 400000, monthlyRate = 0.005, n = 360
	// monthlyPayment ~ 2398.20, annualMortgagePayment ~ 28778.41
	// annualCashFlow ~ -21028.41
	assert.Equal(t, 500000.0, result.PurchasePrice)
	assert.InDelta(t, -21028.41, result.AnnualCashFlow, 0.01)
	assert.InDelta(t, result.AnnualCashFlow/12, result.MonthlyCashFlow, 1e-9)
	assert.InDelta(t, 1.55, result.CapRate, 1e-9)
	assert.InDelta(t, -21.02841, result.CashOnCashReturn, 0.0001)

	// Appreciation side: 500000 * 1.03^5
	assert.InDelta(t, 579637.04, result.FuturePropertyValue, 0.01)
	assert.InDelta(t, result.FuturePropertyValue-result.PurchasePrice, result.EquityGain, 1e-9)

	// Month-1 principal (~398.20) scaled over 60 months.
	assert.InDelta(t, 23892.07, result.PrincipalReduction, 0.01)
	assert.InDelta(t, result.AnnualCashFlow*5, result.TotalCashFlow, 1e-9)
	assert.InDelta(t, result.EquityGain+result.PrincipalReduction+result.TotalCashFlow, result.TotalReturn, 1e-9)

	// Target side.
	assert.Equal(t, 10000.0, result.TargetYearlyReturn)
	assert.Equal(t, 50000.0, result.TargetTotalReturn)
	assert.InDelta(t, 10000.0/12, result.TargetMonthlyIncome, 1e-9)
	assert.False(t, result.MeetsTarget)

	t.Logf("annual cash flow: %.2f", result.AnnualCashFlow)
	t.Logf("total return: %.2f", result.TotalReturn)
	t.Logf("annualized ROI: %.4f%%", result.ROI)
}

func TestProjectIsDeterministic(t *testing.T) {
	params := ParameterSet{
		PropertyType:          PropertyTriplex,
		MarketArea:            MarketAtlanta,
		InvestmentAmount:      250000,
		HoldPeriod:            12,
		AnnualReturnRate:      8,
		PropertyManagementFee: 7,
		VacancyRate:           3,
	}

	first, err1 := ProjectParameters(params)
	second, err2 := ProjectParameters(params)
	require.NoError(t, err1)
	require.NoError(t, err2)

	// Same inputs, same floating-point operations, bit-identical output.
	assert.Equal(t, first, second)
}

func TestPurchasePriceIsFiveTimesInvestment(t *testing.T) {
	params := DefaultParameters()
	for amount := MinInvestmentAmount; amount <= MaxInvestmentAmount; amount += InvestmentAmountStep * 10 {
		params.InvestmentAmount = amount
		result, err := ProjectParameters(params)
		require.NoError(t, err)
		assert.Equal(t, 5*float64(amount), result.PurchasePrice, "amount %d", amount)
	}
}

func TestAllCashPurchaseHasNoDebtService(t *testing.T) {
	// 100% down is impossible through the UI but the engine must handle a
	// zero loan if the financing terms ever change.
	params := DefaultParameters()
	property, err := PropertyProfileFor(params.PropertyType)
	require.NoError(t, err)
	market, err := MarketProfileFor(params.MarketArea)
	require.NoError(t, err)

	financing := Financing{DownPaymentPercentage: 100, AnnualInterestRate: 6, LoanTermYears: 30}
	result, err := Project(params, property, market, financing)
	require.NoError(t, err)

	assert.Zero(t, result.PrincipalReduction)
	// purchasePrice == investment, so cash flow is exactly NOI.
	assert.InDelta(t, result.CapRate/100*result.PurchasePrice, result.AnnualCashFlow, 1e-6)
	assert.Positive(t, result.AnnualCashFlow)
}

func TestMeetsTargetMatchesROIComparison(t *testing.T) {
	params := DefaultParameters()
	for _, rate := range []float64{5, 8, 10, 15, 20} {
		for _, market := range MarketAreas() {
			params.AnnualReturnRate = rate
			params.MarketArea = market
			result, err := ProjectParameters(params)
			require.NoError(t, err)
			assert.Equal(t, result.ROI >= rate, result.MeetsTarget,
				"rate %.0f market %s roi %.4f", rate, market, result.ROI)
		}
	}
}

func TestMarketChangeOnlyMovesMarketTerms(t *testing.T) {
	params := DefaultParameters()
	indy, err := ProjectParameters(params)
	require.NoError(t, err)

	params.MarketArea = MarketTampa
	tampa, err := ProjectParameters(params)
	require.NoError(t, err)

	// Rent side is driven by the property profile and must not move.
	assert.Equal(t, indy.PurchasePrice, tampa.PurchasePrice)
	assert.Equal(t, indy.PrincipalReduction, tampa.PrincipalReduction)
	assert.Equal(t, indy.TargetYearlyReturn, tampa.TargetYearlyReturn)
	assert.Equal(t, indy.TargetTotalReturn, tampa.TargetTotalReturn)
	assert.Equal(t, indy.TargetMonthlyIncome, tampa.TargetMonthlyIncome)

	// Tax, insurance and appreciation differ, so these must move.
	assert.NotEqual(t, indy.FuturePropertyValue, tampa.FuturePropertyValue)
	assert.NotEqual(t, indy.CapRate, tampa.CapRate)
	assert.NotEqual(t, indy.AnnualCashFlow, tampa.AnnualCashFlow)
}

func TestVacancyRateDoesNotAffectProjection(t *testing.T) {
	// Known discrepancy: vacancy is collected and submitted but no formula
	// discounts gross income by it. This pins the shipped behavior; if the
	// product ever wires vacancy in, this test is the tripwire.
	params := DefaultParameters()
	params.VacancyRate = MinVacancyRate
	low, err := ProjectParameters(params)
	require.NoError(t, err)

	params.VacancyRate = MaxVacancyRate
	high, err := ProjectParameters(params)
	require.NoError(t, err)

	assert.Equal(t, low, high)
}

func TestNegativeCashFlowIsNotClamped(t *testing.T) {
	result, err := ProjectParameters(DefaultParameters())
	require.NoError(t, err)
	assert.Negative(t, result.AnnualCashFlow)
	assert.Negative(t, result.MonthlyCashFlow)
	assert.Negative(t, result.TotalCashFlow)
}

func TestUndefinedROI(t *testing.T) {
	// A money pit: almost no rent, brutal expenses, flat appreciation.
	// Total return wipes out more than the invested capital, so the
	// fractional exponent in the ROI formula is undefined.
	params := DefaultParameters()
	property := PropertyProfile{RentMultiplier: 0.001, ExpenseRatio: 0.9, MaintenanceCostPercentage: 3}
	market := MarketProfile{AppreciationRate: 0.1, TaxRate: 0.03, InsuranceRate: 0.01}

	result, err := Project(params, property, market, DefaultFinancing())
	assert.ErrorIs(t, err, ErrUndefinedROI)

	// The rest of the bundle is still populated and usable.
	assert.True(t, math.IsNaN(result.ROI))
	assert.False(t, result.MeetsTarget)
	assert.Less(t, result.TotalReturn, -float64(params.InvestmentAmount))
	assert.Negative(t, result.AnnualCashFlow)
}

func TestProjectParametersUnknownKeys(t *testing.T) {
	params := DefaultParameters()
	params.PropertyType = "Castle"
	_, err := ProjectParameters(params)
	assert.ErrorIs(t, err, ErrUnknownPropertyType)

	params = DefaultParameters()
	params.MarketArea = "Gotham, NJ"
	_, err = ProjectParameters(params)
	assert.ErrorIs(t, err, ErrUnknownMarketArea)
}
