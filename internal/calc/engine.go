// internal/calc/engine.go
package calc

import (
	"errors"
	"math"
)

var (
	// ErrUnknownPropertyType is returned when a property type has no profile.
	ErrUnknownPropertyType = errors.New("unknown property type")

	// ErrUnknownMarketArea is returned when a market area has no profile.
	ErrUnknownMarketArea = errors.New("unknown market area")

	// ErrUndefinedROI is returned when the annualized ROI cannot be computed
	// because total return wiped out more than the invested capital. The
	// accompanying Result is still populated, with ROI set to NaN.
	ErrUndefinedROI = errors.New("annualized ROI undefined for total loss")
)

// Result holds every derived metric of a projection. It is recomputed
// wholesale on each calculation; nothing is ever patched in place.
type Result struct {
	PurchasePrice       float64
	MonthlyCashFlow     float64
	AnnualCashFlow      float64
	TotalReturn         float64
	ROI                 float64
	CapRate             float64
	CashOnCashReturn    float64
	FuturePropertyValue float64
	EquityGain          float64
	PrincipalReduction  float64
	TotalCashFlow       float64
	TargetYearlyReturn  float64
	TargetTotalReturn   float64
	TargetMonthlyIncome float64
	MeetsTarget         bool
}

// Project derives the full metric set from the inputs. It is a pure
// function: same inputs, bit-identical output. The formula order below is
// load-bearing, later steps consume earlier results.
//
// Principal reduction uses the month-1 principal/interest split scaled
// linearly over the hold period rather than a true amortization schedule.
// It understates paydown on long holds. Keep it: the submitted numbers must
// match what the product has always reported.
func Project(params ParameterSet, property PropertyProfile, market MarketProfile, financing Financing) (Result, error) {
	// 1. Purchase price and loan principal.
	purchasePrice := float64(params.InvestmentAmount) / (financing.DownPaymentPercentage / 100)
	totalInvestment := float64(params.InvestmentAmount)
	loanAmount := purchasePrice - totalInvestment

	// 2. Gross rent.
	grossMonthlyRent := purchasePrice * property.RentMultiplier
	annualGrossIncome := grossMonthlyRent * 12

	// 3. Annual operating expenses.
	annualExpenses := annualGrossIncome*property.ExpenseRatio +
		purchasePrice*market.TaxRate +
		purchasePrice*market.InsuranceRate +
		annualGrossIncome*(params.PropertyManagementFee/100) +
		purchasePrice*(property.MaintenanceCostPercentage/100)

	// 4. NOI.
	annualNOI := annualGrossIncome - annualExpenses

	// 5. Mortgage. All-cash purchases carry no debt service.
	var annualMortgagePayment, principalReduction float64
	if loanAmount > 0 {
		monthlyRate := financing.AnnualInterestRate / 12 / 100
		n := float64(financing.LoanTermYears * 12)
		monthlyPayment := loanAmount * monthlyRate * math.Pow(1+monthlyRate, n) /
			(math.Pow(1+monthlyRate, n) - 1)
		annualMortgagePayment = monthlyPayment * 12

		monthlyPrincipal := monthlyPayment - loanAmount*monthlyRate
		principalReduction = monthlyPrincipal * 12 * float64(params.HoldPeriod)
	}

	// 6. Cash flow. Negative values flow through unclamped.
	annualCashFlow := annualNOI - annualMortgagePayment
	monthlyCashFlow := annualCashFlow / 12

	// 7. Cap rate.
	capRate := annualNOI / purchasePrice * 100

	// 8. Cash-on-cash.
	cashOnCashReturn := annualCashFlow / totalInvestment * 100

	// 9. Appreciation and total return over the hold period.
	futurePropertyValue := purchasePrice * math.Pow(1+market.AppreciationRate/100, float64(params.HoldPeriod))
	equityGain := futurePropertyValue - purchasePrice
	totalCashFlow := annualCashFlow * float64(params.HoldPeriod)
	totalReturn := equityGain + principalReduction + totalCashFlow

	// 10. Annualized ROI. A ratio at or below -1 makes the fractional
	// exponent undefined; report NaN rather than inventing a number.
	var roi float64
	var roiErr error
	if ratio := totalReturn / totalInvestment; ratio <= -1 {
		roi = math.NaN()
		roiErr = ErrUndefinedROI
	} else {
		roi = (math.Pow(1+ratio, 1/float64(params.HoldPeriod)) - 1) * 100
	}

	// 11. Target comparison. NaN >= x is false, so an undefined ROI never
	// meets the target.
	targetYearlyReturn := float64(params.InvestmentAmount) * params.AnnualReturnRate / 100
	targetTotalReturn := targetYearlyReturn * float64(params.HoldPeriod)
	targetMonthlyIncome := targetYearlyReturn / 12
	meetsTarget := roi >= params.AnnualReturnRate

	return Result{
		PurchasePrice:       purchasePrice,
		MonthlyCashFlow:     monthlyCashFlow,
		AnnualCashFlow:      annualCashFlow,
		TotalReturn:         totalReturn,
		ROI:                 roi,
		CapRate:             capRate,
		CashOnCashReturn:    cashOnCashReturn,
		FuturePropertyValue: futurePropertyValue,
		EquityGain:          equityGain,
		PrincipalReduction:  principalReduction,
		TotalCashFlow:       totalCashFlow,
		TargetYearlyReturn:  targetYearlyReturn,
		TargetTotalReturn:   targetTotalReturn,
		TargetMonthlyIncome: targetMonthlyIncome,
		MeetsTarget:         meetsTarget,
	}, roiErr
}

// ProjectParameters resolves the lookup tables for the parameter set and
// runs Project with the default financing terms. A missing lookup key fails
// the whole computation; there are no partial results.
func ProjectParameters(params ParameterSet) (Result, error) {
	property, err := PropertyProfileFor(params.PropertyType)
	if err != nil {
		return Result{}, err
	}
	market, err := MarketProfileFor(params.MarketArea)
	if err != nil {
		return Result{}, err
	}
	return Project(params, property, market, DefaultFinancing())
}
