package content

import (
	"github.com/abhisek/shiseikan/internal/llm"
	"github.com/abhisek/shiseikan/internal/trait"
)

func traitEnum() []any {
	out := make([]any, len(trait.All))
	for i, t := range trait.All {
		out[i] = t.String()
	}
	return out
}

// QuestionsSchema is the structured output requested for the question set.
var QuestionsSchema = &llm.Schema{
	Name:        "shiseikan-questions",
	Description: "A set of Likert-scale questions about one's view of life and death",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "A philosophical question about life and death that the user answers on a scale from 1 to 10",
						},
						"trait_pair": map[string]any{
							"type":        "array",
							"description": "The trait pair this question measures. The first element is the 1 end of the scale, the second the 10 end. Example: [\"D\", \"W\"]",
							"items": map[string]any{
								"type": "string",
								"enum": traitEnum(),
							},
							"minItems": 2,
							"maxItems": 2,
						},
					},
					"required":             []any{"question", "trait_pair"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// ResultSchema is the structured output requested for a type narrative.
var ResultSchema = &llm.Schema{
	Name:        "shiseikan-result",
	Description: "A titled narrative describing one worldview type",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"description": "The four-letter worldview type, e.g. 'DSAC'",
			},
			"title": map[string]any{
				"type":        "string",
				"description": "A poetic yet precise title for this type, e.g. 'The Contemplative Navigator'",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "An insightful multi-paragraph analysis covering the strengths this outlook brings, how it approaches life and how it sees the world. Separate paragraphs with newlines.",
			},
		},
		"required":             []any{"type", "title", "description"},
		"additionalProperties": false,
	},
}

// questionsOutput is the raw response before validation.
type questionsOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question  string   `json:"question"`
	TraitPair []string `json:"trait_pair"`
}

type resultOutput struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
