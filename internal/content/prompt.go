package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/shiseikan/internal/trait"
)

const systemPrompt = `You write a reflective personality quiz about how people see life and death.

Rules:
- Write in plain, warm English. No markdown headings, no numbering inside question text.
- Questions are philosophical and personal, never clinical, and never ask about self-harm.
- Every question is answered on a scale from 1 to 10.
- Each question measures exactly one pair of opposing traits from the list you are given.
- Do not repeat a question or ask the same thing twice in different words.`

// dimensionList renders the dimensions as "- Fatalism (D) vs Free Will (W)".
func dimensionList() string {
	var b strings.Builder
	for _, d := range trait.Dimensions() {
		fmt.Fprintf(&b, "- %s (%s) vs %s (%s)\n",
			d.Pair.Low().Label(), d.Pair.Low(), d.Pair.High().Label(), d.Pair.High())
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildQuestionsPrompt(total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a 16-type worldview quiz. Write %d unique, philosophical questions in total that measure the following four dimensions:\n", total)
	b.WriteString(dimensionList())
	b.WriteString("\n\n")
	b.WriteString("The user answers each question on a scale from 1 to 10. ")
	b.WriteString("A 1 means the first trait of the question's trait_pair applies strongly, a 10 means the second trait applies strongly. ")
	b.WriteString("Spread the questions evenly across the four dimensions")
	if per := total / len(trait.Pairs()); per > 0 {
		fmt.Fprintf(&b, " (about %d each)", per)
	}
	b.WriteString(".")

	return b.String()
}

func buildResultPrompt(code trait.TypeCode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Provide a detailed analysis of the worldview type %q.\n", string(code))
	b.WriteString("The letters stand for:\n")
	for _, t := range code.Traits() {
		fmt.Fprintf(&b, "- %s: %s\n", t, t.Label())
	}
	b.WriteString("\nAlso come up with a title that describes this type poetically and precisely. ")
	b.WriteString("The description should cover the strengths this outlook brings, how it approaches life and how it sees the world, written as insightful prose split into paragraphs.")

	return b.String()
}
