// Package session holds the quiz controller: the state machine that walks a
// user from fetching questions through answering them to a derived type.
package session

import (
	"github.com/abhisek/shiseikan/internal/content"
	"github.com/abhisek/shiseikan/internal/trait"
)

// Phase identifies which State variant is active.
type Phase int

const (
	PhaseStart   Phase = iota // Start screen, possibly fetching questions
	PhaseQuiz                 // Answering questions
	PhaseLoading              // Waiting for the result narrative
	PhaseResult               // Showing the result
	PhaseError                // Result fetch failed
)

var phaseNames = [...]string{"start", "quiz", "loading", "result", "error"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// State is one of Start, Quiz, Loading, Result or Failed.
type State interface {
	Phase() Phase
	isState()
}

// Start is the entry state. Fetching is set while questions are being
// requested; Err holds the message of a failed question fetch.
type Start struct {
	Fetching bool
	Err      string
}

// Quiz shows the question at Index.
type Quiz struct {
	Index int
}

// Loading waits for the narrative of Type.
type Loading struct {
	Type trait.TypeCode
}

// Result shows the narrative for the derived type.
type Result struct {
	Result content.Result
}

// Failed is the terminal error state of a result fetch.
type Failed struct {
	Message string
}

func (Start) Phase() Phase   { return PhaseStart }
func (Quiz) Phase() Phase    { return PhaseQuiz }
func (Loading) Phase() Phase { return PhaseLoading }
func (Result) Phase() Phase  { return PhaseResult }
func (Failed) Phase() Phase  { return PhaseError }

func (Start) isState()   {}
func (Quiz) isState()    {}
func (Loading) isState() {}
func (Result) isState()  {}
func (Failed) isState()  {}
