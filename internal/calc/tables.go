// internal/calc/tables.go
package calc

import "fmt"

// PropertyProfile holds the per-property-type constants used by the
// projection engine. RentMultiplier is the fraction of the purchase price
// expected as monthly rent; ExpenseRatio is the fraction of gross income
// consumed by operating expenses; MaintenanceCostPercentage is the yearly
// maintenance budget as a percent of the purchase price.
type PropertyProfile struct {
	RentMultiplier            float64
	ExpenseRatio              float64
	MaintenanceCostPercentage float64
}

// MarketProfile holds the per-market constants. AppreciationRate is %/year;
// TaxRate and InsuranceRate are fractions of the purchase price per year.
type MarketProfile struct {
	AppreciationRate float64
	TaxRate          float64
	InsuranceRate    float64
}

// Financing holds the loan terms. These are engine-fixed and not exposed in
// the UI.
type Financing struct {
	DownPaymentPercentage float64
	AnnualInterestRate    float64
	LoanTermYears         int
}

// DefaultFinancing returns the fixed financing terms: 20% down, 6% APR,
// 30-year loan.
func DefaultFinancing() Financing {
	return Financing{
		DownPaymentPercentage: 20,
		AnnualInterestRate:    6,
		LoanTermYears:         30,
	}
}

// Property type names as they appear in the UI and in API payloads.
const (
	PropertySingleFamily = "Single Family Residence"
	PropertyDuplex       = "Duplex"
	PropertyTriplex      = "Triplex"
	PropertyFourplex     = "Fourplex"
)

// Market area names as they appear in the UI and in API payloads.
const (
	MarketIndianapolis = "Indianapolis, IN"
	MarketCleveland    = "Cleveland, OH"
	MarketMemphis      = "Memphis, TN"
	MarketTampa        = "Tampa, FL"
	MarketJacksonville = "Jacksonville, FL"
	MarketAtlanta      = "Atlanta, GA"
	MarketBirmingham   = "Birmingham, AL"
)

var propertyProfiles = map[string]PropertyProfile{
	PropertySingleFamily: {RentMultiplier: 0.008, ExpenseRatio: 0.40, MaintenanceCostPercentage: 1.5},
	PropertyDuplex:       {RentMultiplier: 0.009, ExpenseRatio: 0.42, MaintenanceCostPercentage: 1.6},
	PropertyTriplex:      {RentMultiplier: 0.010, ExpenseRatio: 0.45, MaintenanceCostPercentage: 1.7},
	PropertyFourplex:     {RentMultiplier: 0.011, ExpenseRatio: 0.48, MaintenanceCostPercentage: 1.8},
}

var marketProfiles = map[string]MarketProfile{
	MarketIndianapolis: {AppreciationRate: 3, TaxRate: 0.0125, InsuranceRate: 0.005},
	MarketCleveland:    {AppreciationRate: 2.5, TaxRate: 0.015, InsuranceRate: 0.0055},
	MarketMemphis:      {AppreciationRate: 2.2, TaxRate: 0.014, InsuranceRate: 0.006},
	MarketTampa:        {AppreciationRate: 4, TaxRate: 0.018, InsuranceRate: 0.007},
	MarketJacksonville: {AppreciationRate: 3.8, TaxRate: 0.017, InsuranceRate: 0.007},
	MarketAtlanta:      {AppreciationRate: 4.2, TaxRate: 0.02, InsuranceRate: 0.0065},
	MarketBirmingham:   {AppreciationRate: 3.1, TaxRate: 0.013, InsuranceRate: 0.0055},
}

// PropertyTypes returns the property type names in menu order.
func PropertyTypes() []string {
	return []string{PropertySingleFamily, PropertyDuplex, PropertyTriplex, PropertyFourplex}
}

// MarketAreas returns the market area names in menu order.
func MarketAreas() []string {
	return []string{
		MarketIndianapolis,
		MarketCleveland,
		MarketMemphis,
		MarketTampa,
		MarketJacksonville,
		MarketAtlanta,
		MarketBirmingham,
	}
}

// PropertyProfileFor looks up the profile for the given property type. An
// unknown key is a configuration error, never silently defaulted.
func PropertyProfileFor(propertyType string) (PropertyProfile, error) {
	profile, ok := propertyProfiles[propertyType]
	if !ok {
		return PropertyProfile{}, fmt.Errorf("%w: %q", ErrUnknownPropertyType, propertyType)
	}
	return profile, nil
}

// MarketProfileFor looks up the profile for the given market area.
func MarketProfileFor(marketArea string) (MarketProfile, error) {
	profile, ok := marketProfiles[marketArea]
	if !ok {
		return MarketProfile{}, fmt.Errorf("%w: %q", ErrUnknownMarketArea, marketArea)
	}
	return profile, nil
}

// ValidateTables checks the lookup tables at startup so a broken table is a
// boot failure instead of a NaN deep in the formula chain.
func ValidateTables() error {
	for _, name := range PropertyTypes() {
		p, err := PropertyProfileFor(name)
		if err != nil {
			return err
		}
		if p.RentMultiplier <= 0 || p.ExpenseRatio <= 0 || p.MaintenanceCostPercentage <= 0 {
			return fmt.Errorf("property profile %q has a non-positive rate", name)
		}
	}
	for _, name := range MarketAreas() {
		m, err := MarketProfileFor(name)
		if err != nil {
			return err
		}
		if m.AppreciationRate <= 0 || m.TaxRate <= 0 || m.InsuranceRate <= 0 {
			return fmt.Errorf("market profile %q has a non-positive rate", name)
		}
	}
	return nil
}
