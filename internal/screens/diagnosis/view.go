package diagnosis

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shiseikan/internal/screens/welcome"
	"github.com/abhisek/shiseikan/internal/session"
	"github.com/abhisek/shiseikan/internal/ui/components"
	"github.com/abhisek/shiseikan/internal/ui/layout"
	"github.com/abhisek/shiseikan/internal/ui/theme"
)

// resultChromeHeight is the number of lines around the result viewport:
// intro, type code, title, blank lines and the button.
const resultChromeHeight = 9

const intro = "A few questions to explore how you see life and death. " +
	"Listen to the voice deep inside and answer on instinct."

func (s *DiagnosisScreen) View(width, height int) string {
	s.resize(width, height)

	var body string
	switch st := s.ctrl.State().(type) {
	case session.Start:
		switch {
		case st.Fetching:
			body = s.renderSpinner("Preparing your questions...")
		case st.Err != "":
			body = s.renderError(st.Err, "[r] Retry")
		default:
			body = s.renderStart()
		}
	case session.Quiz:
		body = s.renderQuiz(st)
	case session.Loading:
		body = s.renderSpinner(loadingMessages[s.loadingIdx])
	case session.Result:
		body = s.renderResult(st)
	case session.Failed:
		body = s.renderError(st.Message, "[r] Start over")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *DiagnosisScreen) renderSpinner(msg string) string {
	return s.spinner.View() + " " + theme.Subtitle.Render(msg)
}

func (s *DiagnosisScreen) renderError(msg, action string) string {
	cw := components.ContentWidth(s.width)
	return lipgloss.JoinVertical(lipgloss.Center,
		components.ErrorCard(msg, cw),
		"",
		components.NewButton(action, true, nil).View(),
	)
}

func (s *DiagnosisScreen) renderStart() string {
	cw := components.ContentWidth(s.width)

	var sections []string
	if !layout.IsCompactHeight(s.height) {
		sections = append(sections, welcome.RenderBanner(s.width), "")
	}
	sections = append(sections,
		theme.Title.Render("Explore your view of life and death"),
		"",
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.TextDim).Render(intro),
		"",
		s.menu.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (s *DiagnosisScreen) renderQuiz(st session.Quiz) string {
	q, ok := s.ctrl.Current()
	if !ok {
		return ""
	}
	cw := components.ContentWidth(s.width)
	_, total := s.ctrl.Progress()

	var b strings.Builder
	b.WriteString(components.NewStepProgress("Question", st.Index+1, total, cw).View())
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	if s.likert.Disabled {
		questionStyle = questionStyle.Foreground(theme.TextDim)
	}
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(questionLabel(q.Pair)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.likert.View()))

	if s.answerErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.answerErr))
	}

	return b.String()
}

func (s *DiagnosisScreen) renderResult(st session.Result) string {
	res := st.Result
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render("Your worldview type is"),
		"",
		theme.TypeCode.Render(strings.Join(strings.Split(string(res.Type), ""), " ")),
		theme.Title.Render(res.Title),
		"",
		s.viewport.View(),
		"",
		components.NewButton("[r] Take it again", true, nil).View(),
	)
}
