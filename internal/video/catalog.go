// internal/video/catalog.go
package video

// Question is one survey prompt attached to a video. Questions either offer
// a fixed option list or accept free text, never both.
type Question struct {
	ID      string
	Text    string
	Options []string // nil for free-text questions
}

// FreeText reports whether the question takes a typed answer.
func (q Question) FreeText() bool {
	return len(q.Options) == 0
}

// Video is one entry in the educational series.
type Video struct {
	ID        string
	Title     string
	Questions []Question
}

var catalog = []Video{
	{
		ID:    "video1",
		Title: "Introduction to Turnkey Property Investing",
		Questions: []Question{
			{
				ID:      "q1",
				Text:    "How familiar were you with turnkey property investing before watching?",
				Options: []string{"Not familiar", "Somewhat familiar", "Very familiar", "Expert"},
			},
			{
				ID:   "q2",
				Text: "What's your biggest question about turnkey investing?",
			},
		},
	},
	{
		ID:    "video2",
		Title: "Market Selection for Maximum ROI",
		Questions: []Question{
			{
				ID:      "q1",
				Text:    "Which market mentioned in the video interests you the most?",
				Options: []string{"Atlanta", "Dallas", "Indianapolis", "Cleveland"},
			},
			{
				ID:      "q2",
				Text:    "What factors are most important to you when selecting a market?",
				Options: []string{"Cash flow", "Appreciation", "Low vacancy", "Strong job market"},
			},
		},
	},
	{
		ID:    "video3",
		Title: "Property Management & Maximizing Returns",
		Questions: []Question{
			{
				ID:      "q1",
				Text:    "How important is professional property management to you?",
				Options: []string{"Not important", "Somewhat important", "Very important", "Essential"},
			},
			{
				ID:   "q2",
				Text: "What concerns do you have about remote property ownership?",
			},
		},
	},
}

// Catalog returns the video series in watch order.
func Catalog() []Video {
	return catalog
}

// ByID finds a video in the catalog.
func ByID(id string) (Video, bool) {
	for _, v := range catalog {
		if v.ID == id {
			return v, true
		}
	}
	return Video{}, false
}
