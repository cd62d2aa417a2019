package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/shiseikan/internal/llm"
	"github.com/abhisek/shiseikan/internal/llm/llmctx"
	"github.com/abhisek/shiseikan/internal/trait"
	"go.uber.org/zap"
)

// Purpose labels attached to LLM calls.
const (
	PurposeQuestions = "questions"
	PurposeResult    = "result"
)

// LLMProvider implements Provider on top of an llm.Provider.
type LLMProvider struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates an LLMProvider.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *LLMProvider {
	if cfg.Total <= 0 {
		cfg.Total = DefaultTotal
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMProvider{provider: provider, config: cfg, logger: logger}
}

// FetchQuestions asks the model for the configured number of questions.
func (p *LLMProvider) FetchQuestions(ctx context.Context) ([]Question, error) {
	ctx = llmctx.WithPurpose(ctx, PurposeQuestions)

	resp, err := p.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildQuestionsPrompt(p.config.Total)}},
		Schema:      QuestionsSchema,
		MaxTokens:   p.config.QuestionTokens,
		Temperature: p.config.Temperature,
	})
	if err != nil {
		return nil, questionsError(fmt.Errorf("generate questions: %w", err))
	}

	qs, err := ParseQuestions(resp.Content)
	if err != nil {
		return nil, questionsError(err)
	}

	if len(qs) != p.config.Total {
		p.logger.Warn("question count differs from request",
			zap.Int("requested", p.config.Total),
			zap.Int("received", len(qs)))
	}
	return qs, nil
}

// FetchResult asks the model for the narrative of code. The returned
// Result always carries code, whatever type the model echoes back.
func (p *LLMProvider) FetchResult(ctx context.Context, code trait.TypeCode) (*Result, error) {
	ctx = llmctx.WithPurpose(ctx, PurposeResult)

	resp, err := p.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildResultPrompt(code)}},
		Schema:      ResultSchema,
		MaxTokens:   p.config.ResultTokens,
		Temperature: p.config.Temperature,
	})
	if err != nil {
		return nil, resultError(fmt.Errorf("generate result: %w", err))
	}

	res, echoed, err := ParseResult(resp.Content)
	if err != nil {
		return nil, resultError(err)
	}
	if !strings.EqualFold(echoed, string(code)) {
		p.logger.Warn("model echoed a different type code",
			zap.String("requested", string(code)),
			zap.String("echoed", echoed))
	}
	res.Type = code
	return res, nil
}

// ParseQuestions decodes a questions response. Pairs must name the two
// traits of a canonical pair; their order is kept.
func ParseQuestions(raw json.RawMessage) ([]Question, error) {
	var out questionsOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, malformed("no questions in response")
	}

	qs := make([]Question, 0, len(out.Questions))
	for i, q := range out.Questions {
		text := strings.TrimSpace(q.Question)
		if text == "" {
			return nil, malformed("question %d has no text", i+1)
		}
		if len(q.TraitPair) != 2 {
			return nil, malformed("question %d has %d traits, want 2", i+1, len(q.TraitPair))
		}
		a, errA := trait.ParseTrait(q.TraitPair[0])
		b, errB := trait.ParseTrait(q.TraitPair[1])
		if errA != nil || errB != nil {
			return nil, malformed("question %d has unknown traits %v", i+1, q.TraitPair)
		}
		pair := trait.Pair{a, b}
		if !pair.Valid() {
			return nil, malformed("question %d pairs %s, which is not a dimension", i+1, pair)
		}
		qs = append(qs, Question{Text: text, Pair: pair})
	}
	return qs, nil
}

// ParseResult decodes a result response and returns the type code the
// model echoed alongside it.
func ParseResult(raw json.RawMessage) (*Result, string, error) {
	var out resultOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, "", fmt.Errorf("parse result: %w", err)
	}

	title := strings.TrimSpace(out.Title)
	desc := strings.TrimSpace(out.Description)
	if title == "" {
		return nil, out.Type, malformed("result has no title")
	}
	if desc == "" {
		return nil, out.Type, malformed("result has no description")
	}

	return &Result{
		Type:        trait.TypeCode(strings.ToUpper(strings.TrimSpace(out.Type))),
		Title:       title,
		Description: desc,
	}, strings.TrimSpace(out.Type), nil
}
