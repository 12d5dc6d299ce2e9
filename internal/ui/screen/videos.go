package screen

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quantumos-ai/turnkey-tui/internal/api"
	"github.com/quantumos-ai/turnkey-tui/internal/session"
	"github.com/quantumos-ai/turnkey-tui/internal/ui"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/component"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/router"
	"github.com/quantumos-ai/turnkey-tui/internal/ui/style"
	"github.com/quantumos-ai/turnkey-tui/internal/video"
	"go.uber.org/zap"
)

// VideosScreen shows the educational series. Each video carries a short
// feedback survey; videos unlock in order as feedback is submitted.
type VideosScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	client   *api.Client
	sessions session.Store
	logger   *zap.Logger

	// UI components
	helpBar   *component.HelpBar
	textInput textinput.Model

	// State
	videos      []video.Video
	sheet       *video.FeedbackSheet
	cursor      int // list mode: video index (len(videos) = Book Now)
	answering   bool
	activeVideo int
	questionIdx int
	optionIdx   int
	busy        bool
	status      string
	statusIsErr bool
	booked      bool

	// Styling
	titleStyle    lipgloss.Style
	itemStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	lockedStyle   lipgloss.Style
	doneStyle     lipgloss.Style
	promptStyle   lipgloss.Style
	hintStyle     lipgloss.Style
	errorStyle    lipgloss.Style
	successStyle  lipgloss.Style
}

// NewVideosScreen creates a new video library screen
func NewVideosScreen(client *api.Client, sessions session.Store, logger *zap.Logger) *VideosScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	ti := textinput.New()
	ti.Width = 50
	ti.Placeholder = "Type your answer"

	helpBar := component.NewHelpBar().
		SetKeyBindings(keyMap.ContextualHelp(ui.RouteVideos))

	return &VideosScreen{
		keyMap:    keyMap,
		client:    client,
		sessions:  sessions,
		logger:    logger,
		helpBar:   helpBar,
		textInput: ti,
		videos:    video.Catalog(),
		sheet:     video.NewFeedbackSheet(),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0),

		itemStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 2),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Padding(0, 2).
			Bold(true),

		lockedStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 2),

		doneStyle: lipgloss.NewStyle().
			Foreground(palette.Success).
			Padding(0, 2),

		promptStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Margin(0, 0, 1, 0),

		hintStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Margin(1, 0, 0, 0),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true).
			Margin(1, 0),

		successStyle: lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true).
			Margin(1, 0),
	}
}

// Init initializes the videos screen
func (v *VideosScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (v *VideosScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.busy {
			return v, nil
		}
		if msg.String() == "ctrl+c" {
			return v, tea.Quit
		}

		if v.answering {
			return v.updateAnswering(msg)
		}
		return v.updateList(msg)

	case ui.FeedbackSubmittedMsg:
		v.busy = false
		if msg.Err != nil {
			v.status = "Submission failed. Your answers are kept; try again."
			v.statusIsErr = true
			v.logger.Warn("feedback submission failed",
				zap.String("video_id", msg.VideoID), zap.Error(msg.Err))
			return v, nil
		}

		v.sheet.MarkSubmitted(msg.VideoID)
		v.answering = false
		v.status = "Feedback submitted. The next video is unlocked!"
		if v.sheet.AllSubmitted() {
			v.status = "Feedback submitted. You can now book a call!"
		}
		v.statusIsErr = false
	}

	return v, tea.Batch(cmds...)
}

// updateList handles keys in the video list.
func (v *VideosScreen) updateList(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	maxCursor := len(v.videos) - 1
	if v.sheet.AllSubmitted() {
		maxCursor++ // Book Now entry
	}

	switch {
	case key.Matches(msg, v.keyMap.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case key.Matches(msg, v.keyMap.Down):
		if v.cursor < maxCursor {
			v.cursor++
		}

	case key.Matches(msg, v.keyMap.Enter):
		if v.cursor == len(v.videos) {
			v.booked = true
			v.status = "Thanks! Our team will reach out to schedule your call."
			v.statusIsErr = false
			return v, nil
		}

		switch {
		case v.sheet.Submitted(v.videos[v.cursor].ID):
			v.status = "Feedback for this video was already submitted."
			v.statusIsErr = false
		case v.cursor != v.sheet.Current():
			v.status = "Watch the earlier videos first; this one is still locked."
			v.statusIsErr = true
		default:
			v.startAnswering(v.cursor)
		}
	}

	return v, nil
}

// startAnswering enters feedback mode for the video at index.
func (v *VideosScreen) startAnswering(index int) {
	v.answering = true
	v.activeVideo = index
	v.questionIdx = 0
	v.optionIdx = 0
	v.status = ""
	v.prepareQuestion()
}

// prepareQuestion resets per-question input state.
func (v *VideosScreen) prepareQuestion() {
	question := v.videos[v.activeVideo].Questions[v.questionIdx]
	if question.FreeText() {
		v.textInput.SetValue(v.sheet.Answer(v.videos[v.activeVideo].ID, question.ID))
		v.textInput.CursorEnd()
		v.textInput.Focus()
		return
	}

	v.textInput.Blur()
	v.optionIdx = 0
	if prev := v.sheet.Answer(v.videos[v.activeVideo].ID, question.ID); prev != "" {
		for i, option := range question.Options {
			if option == prev {
				v.optionIdx = i
				break
			}
		}
	}
}

// updateAnswering handles keys while answering a video's questions.
func (v *VideosScreen) updateAnswering(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	current := v.videos[v.activeVideo]
	question := current.Questions[v.questionIdx]

	switch {
	case key.Matches(msg, v.keyMap.Up) && !question.FreeText():
		if v.optionIdx > 0 {
			v.optionIdx--
		}
		return v, nil

	case key.Matches(msg, v.keyMap.Down) && !question.FreeText():
		if v.optionIdx < len(question.Options)-1 {
			v.optionIdx++
		}
		return v, nil

	case key.Matches(msg, v.keyMap.Enter):
		if question.FreeText() {
			answer := strings.TrimSpace(v.textInput.Value())
			if answer == "" {
				v.status = "Please answer before continuing."
				v.statusIsErr = true
				return v, nil
			}
			v.sheet.SetAnswer(current.ID, question.ID, answer)
		} else {
			v.sheet.SetAnswer(current.ID, question.ID, question.Options[v.optionIdx])
		}
		v.status = ""

		if v.questionIdx < len(current.Questions)-1 {
			v.questionIdx++
			v.prepareQuestion()
			return v, nil
		}
		return v, v.submit(current)
	}

	if question.FreeText() {
		var cmd tea.Cmd
		v.textInput, cmd = v.textInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

// submit posts one video's feedback for the signed-in contact.
func (v *VideosScreen) submit(current video.Video) tea.Cmd {
	if !v.sheet.Complete(current) {
		v.status = "Answer every question before submitting."
		v.statusIsErr = true
		return nil
	}

	sess, ok := v.sessions.Get()
	if !ok || sess.ContactID == "" {
		v.status = "No active session; sign in again to submit."
		v.statusIsErr = true
		return nil
	}

	submission := v.sheet.ToSubmission(current, sess.ContactID)
	v.busy = true
	v.status = "Submitting feedback..."
	v.statusIsErr = false

	return func() tea.Msg {
		err := v.client.CreateFeedback(context.Background(), submission)
		return ui.FeedbackSubmittedMsg{VideoID: current.ID, Err: err}
	}
}

// View renders the videos screen
func (v *VideosScreen) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(v.titleStyle.Render("🎬 Video Library"))
	content.WriteString("\n")

	if v.answering {
		content.WriteString(v.renderFeedback())
	} else {
		content.WriteString(v.renderList())
	}

	if v.status != "" {
		statusStyle := v.successStyle
		if v.statusIsErr {
			statusStyle = v.errorStyle
		}
		content.WriteString("\n")
		content.WriteString(statusStyle.Render(v.status))
	}

	content.WriteString("\n")
	content.WriteString(v.helpBar.SetWidth(v.width).View())

	result := content.String()
	if v.width > 90 {
		result = lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, result)
	}
	return result
}

// renderList renders the video list with lock/done markers.
func (v *VideosScreen) renderList() string {
	var lines []string

	for i, item := range v.videos {
		var marker string
		var lineStyle lipgloss.Style

		switch {
		case v.sheet.Submitted(item.ID):
			marker = "✓"
			lineStyle = v.doneStyle
		case i == v.sheet.Current():
			marker = "▶"
			lineStyle = v.itemStyle
		default:
			marker = "🔒"
			lineStyle = v.lockedStyle
		}

		label := fmt.Sprintf("%s Video %d: %s", marker, i+1, item.Title)
		if i == v.cursor {
			lineStyle = v.selectedStyle
		}
		lines = append(lines, lineStyle.Render(label))
	}

	if v.sheet.AllSubmitted() {
		label := "📅 Book Now — schedule a call with our team"
		if v.booked {
			label = "📅 Call requested"
		}
		if v.cursor == len(v.videos) {
			lines = append(lines, v.selectedStyle.Render(label))
		} else {
			lines = append(lines, v.itemStyle.Render(label))
		}
	}

	list := strings.Join(lines, "\n")
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.DefaultPalette().Primary).
		Padding(1, 3).
		Margin(1, 0)

	hint := v.hintStyle.Render("Submit feedback after each video to unlock the next one.")
	return boxStyle.Render(list) + "\n" + hint
}

// renderFeedback renders the question flow for the active video.
func (v *VideosScreen) renderFeedback() string {
	current := v.videos[v.activeVideo]
	question := current.Questions[v.questionIdx]

	var content strings.Builder
	content.WriteString(v.promptStyle.Render(current.Title))
	content.WriteString("\n")
	content.WriteString(v.hintStyle.Render(
		fmt.Sprintf("Question %d of %d", v.questionIdx+1, len(current.Questions))))
	content.WriteString("\n\n")
	content.WriteString(v.itemStyle.Render(question.Text))
	content.WriteString("\n\n")

	if question.FreeText() {
		content.WriteString(v.textInput.View())
		content.WriteString("\n")
		content.WriteString(v.hintStyle.Render("enter continue"))
	} else {
		for i, option := range question.Options {
			if i == v.optionIdx {
				content.WriteString(v.selectedStyle.Render(option))
			} else {
				content.WriteString(v.itemStyle.Render(option))
			}
			content.WriteString("\n")
		}
		content.WriteString(v.hintStyle.Render("↑/↓ choose • enter continue"))
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.DefaultPalette().Primary).
		Padding(1, 3).
		Margin(1, 0)

	return boxStyle.Render(content.String())
}

// SetSize sets the screen dimensions
func (v *VideosScreen) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.helpBar.SetWidth(width)
}
