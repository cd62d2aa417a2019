package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/shiseikan/internal/content"
	"github.com/abhisek/shiseikan/internal/llm/llmctx"
	"github.com/abhisek/shiseikan/internal/scoring"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Likert scale bounds.
const (
	MinScore = 1
	MaxScore = 10
)

// DefaultAdvanceDelay is the pause between an answer and the next question.
const DefaultAdvanceDelay = 400 * time.Millisecond

// Config tunes the controller.
type Config struct {
	// AdvanceDelay is carried by every Advance effect.
	AdvanceDelay time.Duration

	// CallTimeout bounds each provider call made through CallContext.
	// Zero means no timeout.
	CallTimeout time.Duration
}

// DefaultConfig returns the default controller settings.
func DefaultConfig() Config {
	return Config{
		AdvanceDelay: DefaultAdvanceDelay,
		CallTimeout:  60 * time.Second,
	}
}

// Controller is the quiz state machine. It performs no I/O: intents return
// effects for the caller to run, and their outcomes come back through
// QuestionsLoaded and ResultLoaded. It is not safe for concurrent use.
type Controller struct {
	cfg    Config
	logger *zap.Logger

	state     State
	questions []content.Question
	answers   []scoring.Answer
	advancing bool
	runID     string
}

// New returns a controller in the Start state. Call Init to begin fetching.
func New(cfg Config, logger *zap.Logger) *Controller {
	if cfg.AdvanceDelay < 0 {
		cfg.AdvanceDelay = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		cfg:    cfg,
		logger: logger,
		state:  Start{},
		runID:  uuid.NewString(),
	}
}

// Init starts the question fetch.
func (c *Controller) Init() []Effect {
	return c.fetchQuestions()
}

func (c *Controller) fetchQuestions() []Effect {
	c.state = Start{Fetching: true}
	c.logger.Debug("fetching questions", zap.String("run_id", c.runID))
	return []Effect{FetchQuestions{}}
}

// QuestionsLoaded resolves a FetchQuestions effect. It is ignored unless a
// question fetch is in flight.
func (c *Controller) QuestionsLoaded(qs []content.Question, err error) []Effect {
	s, ok := c.state.(Start)
	if !ok || !s.Fetching {
		c.logger.Debug("ignoring stale question set", zap.Stringer("phase", c.Phase()))
		return nil
	}

	if err != nil {
		c.logger.Warn("question fetch failed",
			zap.String("run_id", c.runID),
			zap.Error(err))
		c.state = Start{Err: content.Message(content.OpQuestions, err)}
		return nil
	}

	c.questions = append([]content.Question(nil), qs...)
	c.state = Start{}
	c.logger.Info("questions loaded",
		zap.String("run_id", c.runID),
		zap.Int("count", len(qs)))
	return nil
}

// CanBegin reports whether the quiz can start: questions are loaded and no
// fetch or error is pending.
func (c *Controller) CanBegin() bool {
	s, ok := c.state.(Start)
	return ok && !s.Fetching && s.Err == "" && len(c.questions) > 0
}

// Begin moves to the first question with a fresh run id.
func (c *Controller) Begin() []Effect {
	if !c.CanBegin() {
		c.logger.Warn("cannot begin quiz",
			zap.Stringer("phase", c.Phase()),
			zap.Int("questions", len(c.questions)))
		return nil
	}

	c.answers = c.answers[:0]
	c.advancing = false
	c.runID = uuid.NewString()
	c.state = Quiz{Index: 0}
	c.logger.Info("quiz started",
		zap.String("run_id", c.runID),
		zap.Int("questions", len(c.questions)))
	return nil
}

// Answer records score for the current question and schedules the advance.
// Answers outside the quiz or while an advance is pending are ignored.
func (c *Controller) Answer(score int) ([]Effect, error) {
	q, ok := c.state.(Quiz)
	if !ok {
		return nil, nil
	}
	if c.advancing {
		c.logger.Debug("answer ignored while advancing", zap.Int("index", q.Index))
		return nil, nil
	}
	if score < MinScore || score > MaxScore {
		return nil, fmt.Errorf("score %d out of range %d-%d", score, MinScore, MaxScore)
	}

	c.answers = append(c.answers, scoring.Answer{
		Score: float64(score),
		Pair:  c.questions[q.Index].Pair,
	})
	c.advancing = true
	return []Effect{Advance{Delay: c.cfg.AdvanceDelay}}, nil
}

// Advance completes a pending advance. After the last question the type is
// derived and a single FetchResult is emitted.
func (c *Controller) Advance() []Effect {
	if !c.advancing {
		return nil
	}
	c.advancing = false

	q, ok := c.state.(Quiz)
	if !ok {
		return nil
	}
	if q.Index+1 < len(c.questions) {
		c.state = Quiz{Index: q.Index + 1}
		return nil
	}

	code := scoring.DeriveType(c.answers)
	c.state = Loading{Type: code}
	c.logger.Info("type derived",
		zap.String("run_id", c.runID),
		zap.String("type", string(code)),
		zap.Int("answers", len(c.answers)))
	return []Effect{FetchResult{Type: code}}
}

// ResultLoaded resolves a FetchResult effect. It is ignored unless the
// controller is loading.
func (c *Controller) ResultLoaded(res *content.Result, err error) []Effect {
	if _, ok := c.state.(Loading); !ok {
		c.logger.Debug("ignoring stale result", zap.Stringer("phase", c.Phase()))
		return nil
	}

	if err == nil && res == nil {
		err = fmt.Errorf("provider returned no result")
	}
	if err != nil {
		c.logger.Warn("result fetch failed",
			zap.String("run_id", c.runID),
			zap.Error(err))
		c.state = Failed{Message: content.Message(content.OpResult, err)}
		return nil
	}

	c.state = Result{Result: *res}
	return nil
}

// Restart returns to the start screen from a result or error. Questions
// already loaded are reused; otherwise they are fetched again. On a start
// screen showing a fetch error it behaves like Retry.
func (c *Controller) Restart() []Effect {
	switch s := c.state.(type) {
	case Result, Failed:
		c.answers = c.answers[:0]
		c.advancing = false
		if len(c.questions) == 0 {
			return c.fetchQuestions()
		}
		c.state = Start{}
		return nil
	case Start:
		if s.Err != "" {
			return c.fetchQuestions()
		}
	}
	return nil
}

// Retry re-fetches questions after a failed fetch.
func (c *Controller) Retry() []Effect {
	if s, ok := c.state.(Start); ok && s.Err != "" {
		return c.fetchQuestions()
	}
	return nil
}

// CallContext derives the context for a provider call: the run id is
// attached and the configured timeout applied.
func (c *Controller) CallContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = llmctx.WithRunID(ctx, c.runID)
	if c.cfg.CallTimeout > 0 {
		return context.WithTimeout(ctx, c.cfg.CallTimeout)
	}
	return context.WithCancel(ctx)
}

// State returns the active state.
func (c *Controller) State() State { return c.state }

// Phase returns the phase of the active state.
func (c *Controller) Phase() Phase { return c.state.Phase() }

// Questions returns a copy of the loaded questions.
func (c *Controller) Questions() []content.Question {
	return append([]content.Question(nil), c.questions...)
}

// Answers returns a copy of the recorded answers.
func (c *Controller) Answers() []scoring.Answer {
	return append([]scoring.Answer(nil), c.answers...)
}

// Current returns the question being shown, if in the quiz.
func (c *Controller) Current() (content.Question, bool) {
	q, ok := c.state.(Quiz)
	if !ok || q.Index >= len(c.questions) {
		return content.Question{}, false
	}
	return c.questions[q.Index], true
}

// Progress returns the number of answered questions and the total.
func (c *Controller) Progress() (answered, total int) {
	return len(c.answers), len(c.questions)
}

// RunID identifies the current play-through.
func (c *Controller) RunID() string { return c.runID }

// Advancing reports whether an answer is waiting for its Advance.
func (c *Controller) Advancing() bool { return c.advancing }

// InFlight reports whether a provider call is outstanding.
func (c *Controller) InFlight() bool {
	switch s := c.state.(type) {
	case Start:
		return s.Fetching
	case Loading:
		return true
	}
	return false
}

