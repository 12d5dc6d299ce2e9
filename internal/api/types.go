// internal/api/types.go
package api

import (
	"errors"
	"fmt"

	"github.com/quantumos-ai/turnkey-tui/internal/calc"
)

// ErrNotAuthenticated means the backend answered but rejected the
// phone/PIN pair.
var ErrNotAuthenticated = errors.New("api: contact not authenticated")

// AuthRequest is the body of POST /contacts/authenticate.
type AuthRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	PIN         string `json:"pin"`
}

// Contact is the authenticated contact record inside an auth response.
type Contact struct {
	Authenticated bool   `json:"authenticated"`
	ID            string `json:"id"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Name          string `json:"name,omitempty"`
}

// AuthResponse wraps the contact record the way the backend does.
type AuthResponse struct {
	Data Contact `json:"data"`
}

// CalculationSubmission is the body of POST /calculations: the user's inputs
// plus the headline metrics exactly as computed, never re-rounded.
type CalculationSubmission struct {
	PropertyType          string  `json:"propertyType"`
	MarketArea            string  `json:"marketArea"`
	InvestmentAmount      int     `json:"investmentAmount"`
	HoldPeriod            int     `json:"holdPeriod"`
	AnnualReturnRate      float64 `json:"annualReturnRate"`
	PropertyManagementFee float64 `json:"propertyManagementFee"`
	VacancyRate           float64 `json:"vacancyRate"`
	MonthlyCashFlow       float64 `json:"monthlyCashFlow"`
	AnnualCashFlow        float64 `json:"annualCashFlow"`
	TotalReturn           float64 `json:"totalReturn"`
	ROI                   float64 `json:"roi"`
	ContactID             string  `json:"contactId"`
}

// NewCalculationSubmission packages a parameter set and its projection for
// the backend. The metric values are the same float64s shown to the user;
// rounding happens only in the presentation layer.
func NewCalculationSubmission(params calc.ParameterSet, result calc.Result, contactID string) CalculationSubmission {
	return CalculationSubmission{
		PropertyType:          params.PropertyType,
		MarketArea:            params.MarketArea,
		InvestmentAmount:      params.InvestmentAmount,
		HoldPeriod:            params.HoldPeriod,
		AnnualReturnRate:      params.AnnualReturnRate,
		PropertyManagementFee: params.PropertyManagementFee,
		VacancyRate:           params.VacancyRate,
		MonthlyCashFlow:       result.MonthlyCashFlow,
		AnnualCashFlow:        result.AnnualCashFlow,
		TotalReturn:           result.TotalReturn,
		ROI:                   result.ROI,
		ContactID:             contactID,
	}
}

// QuestionnaireSubmission is the body of POST /questionnaires.
type QuestionnaireSubmission struct {
	IsAccreditedInvestor    bool     `json:"isAccreditedInvestor"`
	HasInvestedBefore       bool     `json:"hasInvestedBefore"`
	LookingTimeframe        string   `json:"lookingTimeframe"`
	PrimaryInvestmentGoal   string   `json:"primaryInvestmentGoal"`
	InvestmentTimeline      string   `json:"investmentTimeline"`
	CapitalToInvest         string   `json:"capitalToInvest"`
	UseFinancing            string   `json:"useFinancing"`
	MarketsInterested       []string `json:"marketsInterested"`
	PropertyTypesInterested []string `json:"propertyTypesInterested"`
	InvestmentTimeframe     string   `json:"investmentTimeframe"`
	ContactID               string   `json:"contactId"`
}

// FeedbackSubmission is the body of POST /feedbacks.
type FeedbackSubmission struct {
	VideoID   string            `json:"videoId"`
	Responses map[string]string `json:"responses"`
	ContactID string            `json:"contactId"`
}

// APIError is a non-2xx response from the backend. It is a distinct type so
// callers can tell a backend rejection apart from an engine failure.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Body)
}
