package session

import (
	"time"

	"github.com/abhisek/shiseikan/internal/trait"
)

// Effect is work the controller asks its caller to perform. The outcome is
// reported back through the matching resolution method.
type Effect interface {
	isEffect()
}

// FetchQuestions requests the question set. Resolve with QuestionsLoaded.
type FetchQuestions struct{}

// FetchResult requests the narrative for Type. Resolve with ResultLoaded.
type FetchResult struct {
	Type trait.TypeCode
}

// Advance asks the caller to call Controller.Advance after Delay.
type Advance struct {
	Delay time.Duration
}

func (FetchQuestions) isEffect() {}
func (FetchResult) isEffect()    {}
func (Advance) isEffect()        {}
