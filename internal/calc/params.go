// internal/calc/params.go
package calc

import "fmt"

// Slider bounds for the user-adjustable inputs. The UI clamps values to
// these ranges, so the engine only ever sees in-domain numbers.
const (
	MinInvestmentAmount  = 50000
	MaxInvestmentAmount  = 1000000
	InvestmentAmountStep = 10000

	MinHoldPeriod = 1
	MaxHoldPeriod = 30

	MinAnnualReturnRate = 5
	MaxAnnualReturnRate = 20

	MinPropertyManagementFee = 5
	MaxPropertyManagementFee = 15

	MinVacancyRate = 0
	MaxVacancyRate = 15
)

// ParameterSet is the full set of user-adjustable calculator inputs.
//
// VacancyRate is collected and submitted with every calculation but is not
// consumed by any formula. That matches the shipped behavior; see the
// known-discrepancy test in engine_test.go.
type ParameterSet struct {
	PropertyType          string
	MarketArea            string
	InvestmentAmount      int
	HoldPeriod            int
	AnnualReturnRate      float64
	PropertyManagementFee float64
	VacancyRate           float64
}

// DefaultParameters returns the calculator's initial state.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		PropertyType:          PropertySingleFamily,
		MarketArea:            MarketIndianapolis,
		InvestmentAmount:      100000,
		HoldPeriod:            5,
		AnnualReturnRate:      10,
		PropertyManagementFee: 10,
		VacancyRate:           5,
	}
}

// Validate checks every field against its domain. The sliders and selects
// keep interactive input in range; this guards programmatic callers.
func (p ParameterSet) Validate() error {
	if _, err := PropertyProfileFor(p.PropertyType); err != nil {
		return err
	}
	if _, err := MarketProfileFor(p.MarketArea); err != nil {
		return err
	}
	if p.InvestmentAmount < MinInvestmentAmount || p.InvestmentAmount > MaxInvestmentAmount {
		return fmt.Errorf("investment amount %d outside [%d, %d]", p.InvestmentAmount, MinInvestmentAmount, MaxInvestmentAmount)
	}
	if p.HoldPeriod < MinHoldPeriod || p.HoldPeriod > MaxHoldPeriod {
		return fmt.Errorf("hold period %d outside [%d, %d]", p.HoldPeriod, MinHoldPeriod, MaxHoldPeriod)
	}
	if p.AnnualReturnRate < MinAnnualReturnRate || p.AnnualReturnRate > MaxAnnualReturnRate {
		return fmt.Errorf("annual return rate %.1f outside [%d, %d]", p.AnnualReturnRate, MinAnnualReturnRate, MaxAnnualReturnRate)
	}
	if p.PropertyManagementFee < MinPropertyManagementFee || p.PropertyManagementFee > MaxPropertyManagementFee {
		return fmt.Errorf("property management fee %.1f outside [%d, %d]", p.PropertyManagementFee, MinPropertyManagementFee, MaxPropertyManagementFee)
	}
	if p.VacancyRate < MinVacancyRate || p.VacancyRate > MaxVacancyRate {
		return fmt.Errorf("vacancy rate %.1f outside [%d, %d]", p.VacancyRate, MinVacancyRate, MaxVacancyRate)
	}
	return nil
}
