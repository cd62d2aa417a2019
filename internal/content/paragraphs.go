package content

import "strings"

// Paragraphs splits a description on newlines and drops blank lines.
func Paragraphs(description string) []string {
	var out []string
	for _, line := range strings.Split(description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Markdown joins the paragraphs of description with blank lines so that a
// markdown renderer treats each as its own block.
func Markdown(description string) string {
	return strings.Join(Paragraphs(description), "\n\n")
}
