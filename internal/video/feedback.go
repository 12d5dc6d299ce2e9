// internal/video/feedback.go
package video

import (
	"strings"

	"github.com/quantumos-ai/turnkey-tui/internal/api"
)

// FeedbackSheet accumulates survey answers across the series. Videos unlock
// sequentially: the feedback button for video N is live only once the first
// N-1 videos have been submitted.
type FeedbackSheet struct {
	answers   map[string]string // "<videoID>/<questionID>" -> answer
	completed []string          // video IDs in submission order
}

// NewFeedbackSheet creates an empty sheet.
func NewFeedbackSheet() *FeedbackSheet {
	return &FeedbackSheet{answers: make(map[string]string)}
}

func answerKey(videoID, questionID string) string {
	return videoID + "/" + questionID
}

// SetAnswer records an answer for one question.
func (s *FeedbackSheet) SetAnswer(videoID, questionID, answer string) {
	s.answers[answerKey(videoID, questionID)] = answer
}

// Answer returns the recorded answer, if any.
func (s *FeedbackSheet) Answer(videoID, questionID string) string {
	return s.answers[answerKey(videoID, questionID)]
}

// Complete reports whether every question of the video has a non-blank
// answer.
func (s *FeedbackSheet) Complete(v Video) bool {
	for _, q := range v.Questions {
		if strings.TrimSpace(s.Answer(v.ID, q.ID)) == "" {
			return false
		}
	}
	return true
}

// Current returns the index of the video whose feedback is up next.
func (s *FeedbackSheet) Current() int {
	return len(s.completed)
}

// Submitted reports whether the video's feedback has already been sent.
func (s *FeedbackSheet) Submitted(videoID string) bool {
	for _, id := range s.completed {
		if id == videoID {
			return true
		}
	}
	return false
}

// AllSubmitted reports whether the whole series is done.
func (s *FeedbackSheet) AllSubmitted() bool {
	return len(s.completed) == len(catalog)
}

// MarkSubmitted records a successful submission.
func (s *FeedbackSheet) MarkSubmitted(videoID string) {
	if !s.Submitted(videoID) {
		s.completed = append(s.completed, videoID)
	}
}

// ToSubmission builds the wire payload for one video's answers.
func (s *FeedbackSheet) ToSubmission(v Video, contactID string) api.FeedbackSubmission {
	responses := make(map[string]string, len(v.Questions))
	for _, q := range v.Questions {
		if answer := s.Answer(v.ID, q.ID); answer != "" {
			responses[q.ID] = answer
		}
	}
	return api.FeedbackSubmission{
		VideoID:   v.ID,
		Responses: responses,
		ContactID: contactID,
	}
}
