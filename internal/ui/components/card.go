package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shiseikan/internal/ui/theme"
)

// ContentWidth returns the inner width used for prose blocks so that long
// questions and results stay readable on wide terminals.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// ErrorCard renders msg in the error style at the given content width.
func ErrorCard(msg string, cw int) string {
	return theme.ErrorBox.
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(msg)
}
