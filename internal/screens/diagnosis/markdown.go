package diagnosis

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/abhisek/shiseikan/internal/content"
)

// renderDescription renders a result description as word-wrapped markdown.
// On renderer failure the plain paragraphs are returned.
func renderDescription(description, style string, width int) string {
	md := content.Markdown(description)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// DefaultMarkdownStyle is the glamour style used for result descriptions.
const DefaultMarkdownStyle = styles.DarkStyle
