package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls()[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls()[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"name":1}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: testSchema()})
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestMockProvider_AddJSON(t *testing.T) {
	mock := NewMockProvider()
	if err := mock.AddJSON(map[string]any{"type": "DSAI"}); err != nil {
		t.Fatalf("AddJSON: %v", err)
	}
	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"type":"DSAI"}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestConfig_Validate(t *testing.T) {
	base := DefaultConfig()
	with := func(f func(*Config)) Config {
		c := base
		f(&c)
		return c
	}

	tests := []struct {
		name        string
		cfg         Config
		wantErr     bool
		wantMissing bool
	}{
		{"default without key", base, true, true},
		{"gemini with key", with(func(c *Config) { c.APIKey = "k" }), false, false},
		{"anthropic without key", with(func(c *Config) { c.Provider = ProviderAnthropic }), true, true},
		{"openrouter with key", with(func(c *Config) { c.Provider = ProviderOpenRouter; c.APIKey = "k" }), false, false},
		{"mock needs no key", with(func(c *Config) { c.Provider = ProviderMock }), false, false},
		{"unknown provider", with(func(c *Config) { c.Provider = "unknown"; c.APIKey = "k" }), true, false},
		{"negative timeout", with(func(c *Config) { c.APIKey = "k"; c.Timeout = -1 }), true, false},
		{"zero attempts", with(func(c *Config) { c.APIKey = "k"; c.Retry.MaxAttempts = 0 }), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := errors.Is(err, ErrMissingCredential); got != tt.wantMissing {
				t.Fatalf("errors.Is(ErrMissingCredential) = %v, want %v", got, tt.wantMissing)
			}
		})
	}
}

func TestConfig_ResolvedModel(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ResolvedModel(); got != "gemini-2.5-flash" {
		t.Fatalf("default model = %q, want gemini-2.5-flash", got)
	}
	cfg.Provider = ProviderAnthropic
	if got := cfg.ResolvedModel(); got != "claude-haiku" {
		t.Fatalf("anthropic default = %q, want claude-haiku", got)
	}
	cfg.Model = "claude-sonnet"
	if got := cfg.Client().Model; got != "claude-sonnet" {
		t.Fatalf("explicit model = %q, want claude-sonnet", got)
	}
}

func TestIsTransient(t *testing.T) {
	if !IsTransient(&ErrRateLimit{}) {
		t.Error("rate limit should be transient")
	}
	if !IsTransient(fmt.Errorf("wrapped: %w", &ErrProviderUnavailable{})) {
		t.Error("wrapped outage should be transient")
	}
	if IsTransient(&ErrInvalidResponse{Err: errors.New("bad")}) {
		t.Error("invalid response should not be transient")
	}
}
