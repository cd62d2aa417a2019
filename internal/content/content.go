// Package content fetches quiz questions and personality narratives from a
// generative text service.
package content

import (
	"context"

	"github.com/abhisek/shiseikan/internal/trait"
)

// Question is a single Likert item. A score of 1 leans fully toward
// Pair.Low(), a score of 10 fully toward Pair.High().
type Question struct {
	Text string
	Pair trait.Pair
}

// Result is the narrative for a derived type code.
type Result struct {
	Type        trait.TypeCode
	Title       string
	Description string
}

// Provider supplies questions and results. Each call is independent and
// single-shot; failures are returned as *Error.
type Provider interface {
	// FetchQuestions returns the quiz questions for one play-through.
	FetchQuestions(ctx context.Context) ([]Question, error)

	// FetchResult returns the narrative for the given type code.
	FetchResult(ctx context.Context, code trait.TypeCode) (*Result, error)
}
