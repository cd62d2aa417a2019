package content

// Config controls the LLM-backed provider.
type Config struct {
	// Total is the number of questions requested per play-through.
	Total int

	// QuestionTokens and ResultTokens are the response token budgets.
	QuestionTokens int
	ResultTokens   int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultTotal is the number of questions in a quiz.
const DefaultTotal = 12

// DefaultConfig returns the recommended provider settings.
func DefaultConfig() Config {
	return Config{
		Total:          DefaultTotal,
		QuestionTokens: 4096,
		ResultTokens:   4096,
		Temperature:    0.9,
	}
}
