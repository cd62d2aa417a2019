package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/shiseikan/internal/llm"
	"github.com/abhisek/shiseikan/internal/trait"
)

// StaticProvider serves fixed content. It backs the offline "mock" mode and
// tests, where errors can be injected per call.
type StaticProvider struct {
	mu sync.Mutex

	questions []Question
	results   map[trait.TypeCode]Result

	questionErrs []error
	resultErrs   []error

	questionCalls int
	resultCalls   int
	lastCode      trait.TypeCode
}

// NewStaticProvider returns a provider serving qs. Results not registered
// with SetResult are composed from the trait labels.
func NewStaticProvider(qs []Question) *StaticProvider {
	return &StaticProvider{
		questions: qs,
		results:   make(map[trait.TypeCode]Result),
	}
}

// SetResult registers the narrative returned for code.
func (s *StaticProvider) SetResult(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[r.Type] = r
}

// FailQuestions queues errors returned by the next FetchQuestions calls, in
// order. A nil entry lets that call succeed.
func (s *StaticProvider) FailQuestions(errs ...error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questionErrs = append(s.questionErrs, errs...)
}

// FailResults queues errors for the next FetchResult calls.
func (s *StaticProvider) FailResults(errs ...error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resultErrs = append(s.resultErrs, errs...)
}

func (s *StaticProvider) FetchQuestions(ctx context.Context) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questionCalls++
	if err := ctx.Err(); err != nil {
		return nil, questionsError(err)
	}
	if err := pop(&s.questionErrs); err != nil {
		return nil, questionsError(err)
	}
	if len(s.questions) == 0 {
		return nil, questionsError(malformed("no questions configured"))
	}

	out, err := checkQuestions(s.questions)
	if err != nil {
		return nil, questionsError(fmt.Errorf("static questions: %w", err))
	}
	return out, nil
}

func (s *StaticProvider) FetchResult(ctx context.Context, code trait.TypeCode) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resultCalls++
	s.lastCode = code
	if err := ctx.Err(); err != nil {
		return nil, resultError(err)
	}
	if err := pop(&s.resultErrs); err != nil {
		return nil, resultError(err)
	}

	r, ok := s.results[code]
	if !ok {
		r = composeResult(code)
	}
	res, err := checkResult(r)
	if err != nil {
		return nil, resultError(fmt.Errorf("static result: %w", err))
	}
	return res, nil
}

// checkQuestions encodes qs as a model response and runs it through the
// schema check and parser used for model output. The returned slice is
// fresh.
func checkQuestions(qs []Question) ([]Question, error) {
	out := questionsOutput{Questions: make([]questionOutput, 0, len(qs))}
	for _, q := range qs {
		out.Questions = append(out.Questions, questionOutput{
			Question:  q.Text,
			TraitPair: []string{q.Pair[0].String(), q.Pair[1].String()},
		})
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	if err := llm.ValidateJSON(QuestionsSchema, raw); err != nil {
		return nil, err
	}
	return ParseQuestions(raw)
}

func checkResult(r Result) (*Result, error) {
	raw, err := json.Marshal(resultOutput{
		Type:        string(r.Type),
		Title:       r.Title,
		Description: r.Description,
	})
	if err != nil {
		return nil, err
	}
	if err := llm.ValidateJSON(ResultSchema, raw); err != nil {
		return nil, err
	}
	res, _, err := ParseResult(raw)
	return res, err
}

// QuestionCalls returns how many times FetchQuestions was called.
func (s *StaticProvider) QuestionCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questionCalls
}

// ResultCalls returns how many times FetchResult was called.
func (s *StaticProvider) ResultCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resultCalls
}

// LastCode returns the code passed to the most recent FetchResult.
func (s *StaticProvider) LastCode() trait.TypeCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCode
}

func pop(errs *[]error) error {
	if len(*errs) == 0 {
		return nil
	}
	err := (*errs)[0]
	*errs = (*errs)[1:]
	return err
}

func composeResult(code trait.TypeCode) Result {
	ts := code.Traits()
	words := make([]string, 0, len(ts))
	for _, t := range ts {
		words = append(words, titleWords[t])
	}

	var b strings.Builder
	for i, d := range trait.Dimensions() {
		if i >= len(ts) {
			break
		}
		fmt.Fprintf(&b, "On %s you lean toward %s. %s\n\n", strings.ToLower(d.Name), ts[i].Label(), ts[i].Summary())
	}
	return Result{
		Type:        code,
		Title:       "The " + strings.Join(words, " "),
		Description: strings.TrimSpace(b.String()),
	}
}

var titleWords = map[trait.Trait]string{
	trait.Fatalism:      "Steadfast",
	trait.FreeWill:      "Self-Made",
	trait.Spiritualism:  "Mystic",
	trait.Materialism:   "Grounded",
	trait.Acceptance:    "Serene",
	trait.Resistance:    "Defiant",
	trait.Individualism: "Wanderer",
	trait.Communalism:   "Keeper",
}
