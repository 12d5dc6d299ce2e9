package screen

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quantumos-ai/turnkey-tui/internal/api"
	"github.com/quantumos-ai/turnkey-tui/internal/session"
	"github.com/quantumos-ai/turnkey-tui/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCalculatorForTest(t *testing.T, handler http.Handler) *CalculatorScreen {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, time.Second, zap.NewNop())
	sessions := session.NewMemoryStore()
	require.NoError(t, sessions.Set(session.Session{
		Authenticated: true,
		ContactID:     "contact-1",
		Name:          "Jordan",
	}))

	s := NewCalculatorScreen(client, sessions, zap.NewNop())
	s.SetSize(140, 50)
	return s
}

func TestCalculatorSubmitsOnceWhileInFlight(t *testing.T) {
	var calls int64
	s := newCalculatorForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))

	_, _ = s.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, s.hasResult, "default inputs must produce a projection")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, s.busy)

	// A second enter while the first submission is in flight must be a
	// no-op.
	_, second := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, second)
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls))

	msg := cmd()
	submitted, ok := msg.(ui.CalculationSubmittedMsg)
	require.True(t, ok)
	require.NoError(t, submitted.Err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	_, _ = s.Update(submitted)
	assert.False(t, s.busy)
	assert.Contains(t, s.View(), "saved")
}

func TestCalculatorKeepsResultWhenSubmissionFails(t *testing.T) {
	s := newCalculatorForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	}))

	_, _ = s.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, s.hasResult)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	submitted, ok := msg.(ui.CalculationSubmittedMsg)
	require.True(t, ok)
	require.Error(t, submitted.Err)

	_, _ = s.Update(submitted)
	assert.False(t, s.busy)
	assert.True(t, s.hasResult, "a failed submission must not discard the projection")
	assert.Contains(t, s.View(), "Purchase Price")
	assert.Contains(t, s.View(), "Submission failed")
}
