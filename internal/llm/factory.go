package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/shiseikan/internal/store"
	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// logging middleware. eventRepo may be nil when auditing is disabled.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	cc := cfg.Client()
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cc)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cc)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cc)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cc)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, logger, eventRepo)
	return WithRetry(logged, cfg.Retry, logger), nil
}
