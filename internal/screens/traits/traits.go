// Package traits shows the four worldview dimensions and their poles.
package traits

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shiseikan/internal/screen"
	"github.com/abhisek/shiseikan/internal/trait"
	"github.com/abhisek/shiseikan/internal/ui/components"
	"github.com/abhisek/shiseikan/internal/ui/layout"
	"github.com/abhisek/shiseikan/internal/ui/theme"
)

// TraitsScreen is a read-only reference of the dimensions.
type TraitsScreen struct {
	viewport      viewport.Model
	width, height int
}

var _ screen.Screen = (*TraitsScreen)(nil)
var _ screen.KeyHintProvider = (*TraitsScreen)(nil)

// New creates a TraitsScreen.
func New() *TraitsScreen {
	return &TraitsScreen{viewport: viewport.New()}
}

func (s *TraitsScreen) Init() tea.Cmd { return nil }

func (s *TraitsScreen) Title() string { return "The Four Dimensions" }

func (s *TraitsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *TraitsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *TraitsScreen) View(width, height int) string {
	if width != s.width || height != s.height {
		s.width, s.height = width, height
		cw := components.ContentWidth(width)
		s.viewport.SetWidth(cw)
		s.viewport.SetHeight(max(1, height-2))
		s.viewport.SetContent(Render(cw))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.viewport.View())
}

// Render lays out every dimension as a card of the given width.
func Render(width int) string {
	dims := trait.Dimensions()
	cards := make([]string, 0, len(dims))
	for _, d := range dims {
		cards = append(cards, components.Card(renderDimension(d, width-8), width))
	}
	return strings.Join(cards, "\n")
}

func renderDimension(d trait.Dimension, width int) string {
	low, high := d.Pair.Low(), d.Pair.High()

	var b strings.Builder
	b.WriteString(theme.Title.Render(d.Name))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s ↔ %s", low, high)))
	b.WriteString("\n")
	for i, t := range []trait.Trait{low, high} {
		end := "1"
		if i == 1 {
			end = "10"
		}
		head := theme.TypeCode.Render(t.String()) + " " +
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(t.Label()) +
			theme.Hint.Render(" (toward "+end+")")
		b.WriteString("\n")
		b.WriteString(head)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(t.Summary()))
	}
	return b.String()
}
