package llm

import (
	"fmt"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds LLM provider configuration. A single API key is used for
// whichever provider is selected.
type Config struct {
	// Provider selects the backend: anthropic, openai, gemini, openrouter
	// or mock. Default: gemini.
	Provider string `yaml:"provider"`

	// Model is a friendly name or a provider model ID. Empty selects the
	// provider's default model.
	Model string `yaml:"model"`

	// APIKey is never read from the config file.
	APIKey string `yaml:"-"`

	// BaseURL optionally overrides the provider endpoint.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds a single content request including retries.
	Timeout time.Duration `yaml:"timeout"`

	Retry RetryConfig `yaml:"retry"`
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// ClientConfig is what a concrete provider constructor needs.
type ClientConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-2.5-flash",
	ProviderOpenRouter: "google/gemini-2.5-flash",
	ProviderMock:       "mock",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// DefaultModel returns the model used for provider when none is configured.
func DefaultModel(provider string) string {
	return defaultModels[provider]
}

// ResolvedModel returns the configured model or the provider default.
func (c Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel(c.Provider)
}

// Client returns the constructor configuration for the selected provider.
func (c Config) Client() ClientConfig {
	return ClientConfig{
		APIKey:  c.APIKey,
		Model:   c.ResolvedModel(),
		BaseURL: c.BaseURL,
	}
}

// Validate checks the provider name and that a credential is present when
// the provider needs one.
func (c Config) Validate() error {
	if _, ok := defaultModels[c.Provider]; !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Provider != ProviderMock && c.APIKey == "" {
		return fmt.Errorf("%w: API_KEY is required for the %s provider", ErrMissingCredential, c.Provider)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("LLM timeout must not be negative, got %s", c.Timeout)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
