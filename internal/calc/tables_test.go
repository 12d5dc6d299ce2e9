package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTables(t *testing.T) {
	require.NoError(t, ValidateTables())
}

func TestLookupTablesCoverEveryEnum(t *testing.T) {
	assert.Len(t, PropertyTypes(), 4)
	assert.Len(t, MarketAreas(), 7)

	for _, name := range PropertyTypes() {
		_, err := PropertyProfileFor(name)
		assert.NoError(t, err, name)
	}
	for _, name := range MarketAreas() {
		_, err := MarketProfileFor(name)
		assert.NoError(t, err, name)
	}
}

func TestParameterSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ParameterSet)
		wantErr bool
	}{
		{"defaults", func(p *ParameterSet) {}, false},
		{"min bounds", func(p *ParameterSet) {
			p.InvestmentAmount = MinInvestmentAmount
			p.HoldPeriod = MinHoldPeriod
			p.AnnualReturnRate = MinAnnualReturnRate
			p.PropertyManagementFee = MinPropertyManagementFee
			p.VacancyRate = MinVacancyRate
		}, false},
		{"max bounds", func(p *ParameterSet) {
			p.InvestmentAmount = MaxInvestmentAmount
			p.HoldPeriod = MaxHoldPeriod
			p.AnnualReturnRate = MaxAnnualReturnRate
			p.PropertyManagementFee = MaxPropertyManagementFee
			p.VacancyRate = MaxVacancyRate
		}, false},
		{"unknown property type", func(p *ParameterSet) { p.PropertyType = "Yurt" }, true},
		{"unknown market", func(p *ParameterSet) { p.MarketArea = "Springfield" }, true},
		{"investment too small", func(p *ParameterSet) { p.InvestmentAmount = 40000 }, true},
		{"investment too large", func(p *ParameterSet) { p.InvestmentAmount = 1010000 }, true},
		{"hold period zero", func(p *ParameterSet) { p.HoldPeriod = 0 }, true},
		{"return rate too high", func(p *ParameterSet) { p.AnnualReturnRate = 25 }, true},
		{"management fee too low", func(p *ParameterSet) { p.PropertyManagementFee = 2 }, true},
		{"vacancy negative", func(p *ParameterSet) { p.VacancyRate = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultParameters()
			tt.mutate(&params)
			err := params.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
