package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	videos := Catalog()
	require.Len(t, videos, 3)

	// Every video carries exactly two questions; free-text questions have
	// no options, select questions have four.
	for _, v := range videos {
		require.Len(t, v.Questions, 2, v.ID)
		for _, q := range v.Questions {
			if q.FreeText() {
				assert.Empty(t, q.Options)
			} else {
				assert.Len(t, q.Options, 4)
			}
		}
	}

	v, ok := ByID("video2")
	require.True(t, ok)
	assert.Equal(t, "Market Selection for Maximum ROI", v.Title)

	_, ok = ByID("video9")
	assert.False(t, ok)
}

func TestFeedbackCompletion(t *testing.T) {
	sheet := NewFeedbackSheet()
	v, _ := ByID("video1")

	assert.False(t, sheet.Complete(v))

	sheet.SetAnswer("video1", "q1", "Somewhat familiar")
	assert.False(t, sheet.Complete(v), "one of two answers")

	sheet.SetAnswer("video1", "q2", "   ")
	assert.False(t, sheet.Complete(v), "blank answers do not count")

	sheet.SetAnswer("video1", "q2", "How are tenants vetted?")
	assert.True(t, sheet.Complete(v))
}

func TestSequentialUnlock(t *testing.T) {
	sheet := NewFeedbackSheet()
	assert.Equal(t, 0, sheet.Current())
	assert.False(t, sheet.AllSubmitted())

	sheet.MarkSubmitted("video1")
	assert.Equal(t, 1, sheet.Current())
	assert.True(t, sheet.Submitted("video1"))
	assert.False(t, sheet.Submitted("video2"))

	// Double submission does not advance the series.
	sheet.MarkSubmitted("video1")
	assert.Equal(t, 1, sheet.Current())

	sheet.MarkSubmitted("video2")
	sheet.MarkSubmitted("video3")
	assert.True(t, sheet.AllSubmitted())
}

func TestToSubmission(t *testing.T) {
	sheet := NewFeedbackSheet()
	v, _ := ByID("video2")
	sheet.SetAnswer("video2", "q1", "Indianapolis")
	sheet.SetAnswer("video2", "q2", "Cash flow")
	// An answer for another video must not leak in.
	sheet.SetAnswer("video1", "q1", "Expert")

	sub := sheet.ToSubmission(v, "contact-7")
	assert.Equal(t, "video2", sub.VideoID)
	assert.Equal(t, "contact-7", sub.ContactID)
	assert.Equal(t, map[string]string{"q1": "Indianapolis", "q2": "Cash flow"}, sub.Responses)
}
