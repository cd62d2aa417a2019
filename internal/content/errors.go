package content

import (
	"errors"
	"fmt"
)

// Operation names used in Error.Op.
const (
	OpQuestions = "questions"
	OpResult    = "result"
)

const (
	msgQuestions = "Could not generate the quiz questions. Please try again."
	msgResult    = "Could not generate your result. Please try again."
)

// ErrMalformed marks a response that parsed as JSON but violates the
// content rules (empty list, blank text, unknown trait pair).
var ErrMalformed = errors.New("malformed content")

// Error is a content failure with a message fit for display.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Detail returns the message together with the underlying cause, for logs.
func (e *Error) Detail() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func questionsError(err error) *Error {
	return &Error{Op: OpQuestions, Message: msgQuestions, Err: err}
}

func resultError(err error) *Error {
	return &Error{Op: OpResult, Message: msgResult, Err: err}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// Message extracts a displayable message from err. Errors that are not
// *Error fall back to the generic message for op.
func Message(op string, err error) string {
	var ce *Error
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	if op == OpResult {
		return msgResult
	}
	return msgQuestions
}
