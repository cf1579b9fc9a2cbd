package llm

import (
	"context"
	"fmt"
	"os"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware. The recorder may be nil, in which case
// request events are not persisted.
func NewProvider(ctx context.Context, cfg Config, rec EventRecorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base.
	logged := WithLogging(base, rec)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a provider from the environment: explicit
// INTERVUE_ configuration when INTERVUE_LLM_PROVIDER is set, otherwise
// autodiscovery from the standard API key variables.
func NewProviderFromEnv(ctx context.Context, rec EventRecorder) (Provider, error) {
	var cfg Config
	if os.Getenv("INTERVUE_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else {
		discovered, ok := DiscoverConfig()
		if !ok {
			// Fall back to explicit config so key errors name the
			// INTERVUE_ variables.
			discovered = ConfigFromEnv()
		}
		cfg = discovered
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, rec)
}
