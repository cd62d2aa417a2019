package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shiseikan/internal/router"
	"github.com/abhisek/shiseikan/internal/screen"
	"github.com/abhisek/shiseikan/internal/ui/layout"
	"github.com/abhisek/shiseikan/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const hourglassArt = `  ┌─────────┐
   \ ░░░░░ /
    \ ░░░ /
     \ ░ /
      ) (
     / . \
    /  .  \
   / ▒▒▒▒▒ \
  └─────────┘`

// ember frames flicker beside the hourglass
var emberFrames = []string{"·", "∘", "°"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before handing over to the next
// screen. Any key skips ahead.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that is replaced by the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		next: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	glassStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	// Phase 1+: hourglass
	lines := strings.Split(hourglassArt, "\n")
	for i, l := range lines {
		lines[i] = glassStyle.Render(fmt.Sprintf("%-13s", l))
	}

	// Phase 2+: embers drifting beside the glass
	if w.elapsed >= phase1End {
		ember := emberFrames[w.tickCount%len(emberFrames)]
		accent := lipgloss.NewStyle().Foreground(theme.Accent).Render(ember)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim).Render(ember)

		for i := range lines {
			switch i % 3 {
			case 1:
				lines[i] = accent + "  " + lines[i] + "   "
			case 2:
				lines[i] = "   " + lines[i] + "  " + dim
			default:
				lines[i] = "   " + lines[i] + "   "
			}
		}
	}

	// Short terminals only get the banner.
	if !layout.IsCompactHeight(height) {
		sections = append(sections, strings.Join(lines, "\n"))
	}

	// Phase 3+: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("How do you see life and death?")
		sections = append(sections, tagline)
	}

	// "press any key" hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
