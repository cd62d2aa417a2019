package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shiseikan/internal/ui/theme"
)

// Likert scale bounds.
const (
	LikertMin = 1
	LikertMax = 10
)

// Likert is a 1-10 scale selector. Left and right label the two ends.
type Likert struct {
	Left     string
	Right    string
	Selected int
	Disabled bool

	// Chosen is set by Update when a value is submitted and cleared by Take.
	Chosen int
}

// NewLikert creates a selector with the cursor in the middle of the scale.
func NewLikert(left, right string) Likert {
	return Likert{
		Left:     left,
		Right:    right,
		Selected: (LikertMin + LikertMax) / 2,
	}
}

// Update handles ←/→ (or h/l) to move, Enter to submit, and digits 1-9
// with 0 meaning 10 to submit directly.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	if l.Disabled {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if l.Selected > LikertMin {
			l.Selected--
		}
	case "right", "l":
		if l.Selected < LikertMax {
			l.Selected++
		}
	case "enter", "space":
		l.Chosen = l.Selected
	case "0":
		l.Selected = LikertMax
		l.Chosen = LikertMax
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		l.Selected = int(key[0] - '0')
		l.Chosen = l.Selected
	}

	return l, nil
}

// Take returns the submitted value, if any, and clears it.
func (l *Likert) Take() (int, bool) {
	if l.Chosen == 0 {
		return 0, false
	}
	v := l.Chosen
	l.Chosen = 0
	return v, true
}

// Reset moves the cursor back to the middle and clears any submission.
func (l *Likert) Reset() {
	l.Selected = (LikertMin + LikertMax) / 2
	l.Chosen = 0
}

// View renders the scale with the pole labels underneath.
func (l Likert) View() string {
	cells := make([]string, 0, LikertMax)
	for v := LikertMin; v <= LikertMax; v++ {
		cell := fmt.Sprintf(" %d ", v)
		switch {
		case l.Disabled && v == l.Selected:
			cell = theme.Dimmed.Bold(true).Render("[" + cell + "]")
		case l.Disabled:
			cell = theme.Dimmed.Render(" " + cell + " ")
		case v == l.Selected:
			cell = theme.Selected.Render("[" + cell + "]")
		default:
			cell = theme.Unselected.Render(" " + cell + " ")
		}
		cells = append(cells, cell)
	}
	scale := strings.Join(cells, "")

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if !l.Disabled {
		labelStyle = labelStyle.Foreground(theme.Secondary)
	}
	left := labelStyle.Render("◀ " + l.Left)
	right := labelStyle.Render(l.Right + " ▶")

	gap := lipgloss.Width(scale) - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	labels := left + strings.Repeat(" ", gap) + right

	return scale + "\n" + labels
}
