package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quantumos-ai/turnkey-tui/internal/calc"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/api", 2*time.Second, zap.NewNop()), server
}

func TestAuthenticate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contacts/authenticate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req AuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "3175550142", req.PhoneNumber)
		assert.Equal(t, "1234", req.PIN)

		_ = json.NewEncoder(w).Encode(AuthResponse{Data: Contact{
			Authenticated: true,
			ID:            "contact-7",
			Name:          "Test Investor",
		}})
	}))

	contact, err := client.Authenticate(context.Background(), "3175550142", "1234")
	require.NoError(t, err)
	assert.True(t, contact.Authenticated)
	assert.Equal(t, "contact-7", contact.ID)
}

func TestAuthenticateRejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(AuthResponse{Data: Contact{Authenticated: false}})
	}))

	contact, err := client.Authenticate(context.Background(), "3175550142", "0000")
	require.NoError(t, err)
	assert.False(t, contact.Authenticated)
}

func TestCreateCalculationPayload(t *testing.T) {
	var received map[string]interface{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calculations", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))

	params := calc.DefaultParameters()
	result, err := calc.ProjectParameters(params)
	require.NoError(t, err)

	sub := NewCalculationSubmission(params, result, "contact-7")
	require.NoError(t, client.CreateCalculation(context.Background(), sub))

	// The wire values must be the exact computed floats, not re-rounded.
	assert.Equal(t, "Single Family Residence", received["propertyType"])
	assert.Equal(t, "Indianapolis, IN", received["marketArea"])
	assert.Equal(t, float64(100000), received["investmentAmount"])
	assert.Equal(t, float64(5), received["holdPeriod"])
	assert.Equal(t, result.MonthlyCashFlow, received["monthlyCashFlow"])
	assert.Equal(t, result.AnnualCashFlow, received["annualCashFlow"])
	assert.Equal(t, result.TotalReturn, received["totalReturn"])
	assert.Equal(t, result.ROI, received["roi"])
	assert.Equal(t, float64(5), received["vacancyRate"])
	assert.Equal(t, "contact-7", received["contactId"])
}

func TestCreateQuestionnaire(t *testing.T) {
	var received QuestionnaireSubmission
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/questionnaires", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))

	sub := QuestionnaireSubmission{
		IsAccreditedInvestor:    true,
		HasInvestedBefore:       false,
		LookingTimeframe:        "1-3 months",
		PrimaryInvestmentGoal:   "Cash flow",
		InvestmentTimeline:      "3-5 years",
		CapitalToInvest:         "$100,000 - $250,000",
		UseFinancing:            "Yes",
		MarketsInterested:       []string{"Indianapolis, IN", "Tampa, FL"},
		PropertyTypesInterested: []string{"Duplexes"},
		InvestmentTimeframe:     "Within 3-6 months",
		ContactID:               "contact-7",
	}
	require.NoError(t, client.CreateQuestionnaire(context.Background(), sub))
	assert.Equal(t, sub, received)
}

func TestCreateFeedback(t *testing.T) {
	var received FeedbackSubmission
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/feedbacks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))

	sub := FeedbackSubmission{
		VideoID:   "video2",
		Responses: map[string]string{"q1": "Indianapolis", "q2": "Cash flow"},
		ContactID: "contact-7",
	}
	require.NoError(t, client.CreateFeedback(context.Background(), sub))
	assert.Equal(t, sub, received)
}

func TestServerErrorBecomesAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "contact not found", http.StatusNotFound)
	}))

	err := client.CreateCalculation(context.Background(), CalculationSubmission{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Body, "contact not found")
}

func TestPing(t *testing.T) {
	hits := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.Ping(context.Background(), 3))
	assert.Equal(t, 1, hits, "healthy backend should be probed once")
}

func TestPingUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // Nothing is listening anymore.

	client := NewClient(server.URL+"/api", 500*time.Millisecond, zap.NewNop())
	err := client.Ping(context.Background(), 2)
	assert.Error(t, err)
}
