package ui

import "github.com/quantumos-ai/turnkey-tui/internal/api"

// Tea message types for UI communication

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To Route
}

// AuthResultMsg carries the outcome of a login attempt.
type AuthResultMsg struct {
	Contact api.Contact
	Err     error
}

// CalculationSubmittedMsg carries the outcome of posting a calculation.
type CalculationSubmittedMsg struct {
	Err error
}

// QuestionnaireSubmittedMsg carries the outcome of posting the
// questionnaire.
type QuestionnaireSubmittedMsg struct {
	Err error
}

// FeedbackSubmittedMsg carries the outcome of posting one video's feedback.
type FeedbackSubmittedMsg struct {
	VideoID string
	Err     error
}

// Route represents different screens in the application
type Route int

const (
	RouteLogin Route = iota
	RouteMainMenu
	RouteCalculator
	RouteQuestionnaire
	RouteVideos
	RouteProperties
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteMainMenu:
		return "main_menu"
	case RouteCalculator:
		return "calculator"
	case RouteQuestionnaire:
		return "questionnaire"
	case RouteVideos:
		return "videos"
	case RouteProperties:
		return "properties"
	default:
		return "unknown"
	}
}
