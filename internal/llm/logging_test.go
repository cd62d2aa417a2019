package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/shiseikan/internal/llm/llmctx"
	"github.com/abhisek/shiseikan/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// recordingRepo is an in-memory store.EventRepo.
type recordingRepo struct {
	store.EventRepo
	mu      sync.Mutex
	events  []store.LLMRequestEventData
	failErr error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.events = append(r.events, data)
	return nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})

	p := WithLogging(mock, "gemini", zap.New(core), repo)
	ctx := llmctx.WithRunID(llmctx.WithPurpose(context.Background(), "questions"), "run-9")

	if _, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "gemini" || e.Purpose != "questions" || e.RunID != "run-9" {
		t.Errorf("unexpected event identity: %+v", e)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("unexpected event usage: %+v", e)
	}
	if !strings.Contains(e.RequestBody, "[system]\nsys") || !strings.Contains(e.RequestBody, "[user]\nhi") {
		t.Errorf("request body not serialized: %q", e.RequestBody)
	}

	entries := logs.FilterMessage("llm request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 debug log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["run_id"] != "run-9" {
		t.Errorf("expected run_id field, got %v", entries[0].ContextMap())
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})

	p := WithLogging(mock, "openai", zap.New(core), repo)
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 || repo.events[0].Success {
		t.Fatalf("expected one failed event, got %+v", repo.events)
	}
	if repo.events[0].ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
	if logs.FilterMessage("llm request failed").Len() != 1 {
		t.Errorf("expected a warn entry, got %v", logs.All())
	}
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected model id to delegate, got %q", p.ModelID())
	}
}

func TestLoggingProvider_RepoFailureDoesNotFailRequest(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := &recordingRepo{failErr: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	p := WithLogging(mock, "mock", zap.New(core), repo)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs.FilterMessage("failed to record llm request event").Len() != 1 {
		t.Errorf("expected audit failure to be logged, got %v", logs.All())
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		_, err := NewProvider(context.Background(), DefaultConfig(), nil, nil)
		if !errors.Is(err, ErrMissingCredential) {
			t.Fatalf("expected ErrMissingCredential, got %v", err)
		}
	})

	t.Run("mock", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = ProviderMock
		p, err := NewProvider(context.Background(), cfg, zap.NewNop(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "mock" {
			t.Fatalf("expected mock model, got %q", p.ModelID())
		}
		if _, ok := p.(*RetryProvider); !ok {
			t.Fatalf("expected retry decorator on the outside, got %T", p)
		}
	})

	t.Run("openrouter", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = ProviderOpenRouter
		cfg.APIKey = "sk-or-test"
		p, err := NewProvider(context.Background(), cfg, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.5-flash" {
			t.Fatalf("unexpected model %q", p.ModelID())
		}
	})
}
