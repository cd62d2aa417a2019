package diagnosis

import (
	"github.com/abhisek/shiseikan/internal/content"
)

// questionsLoadedMsg carries the outcome of a question fetch.
type questionsLoadedMsg struct {
	Questions []content.Question
	Err       error
}

// resultLoadedMsg carries the outcome of a result fetch.
type resultLoadedMsg struct {
	Result *content.Result
	Err    error
}

// advanceMsg fires once the pause after an answer has elapsed.
type advanceMsg struct{}

// beginMsg is sent by the start menu.
type beginMsg struct{}

// loadingTickMsg rotates the loading message. Gen ties it to one loading
// phase so that ticks from an earlier phase stop.
type loadingTickMsg struct {
	Gen int
}
