package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// NewProvider selects a vendor client by name. A missing API key returns a
// nil provider so callers can take their deterministic fallback path.
func NewProvider(name, baseURL, apiKey, model string, logger *zap.Logger) (Provider, error) {
	if apiKey == "" {
		return nil, nil
	}

	switch name {
	case "anthropic":
		return NewAnthropicClient(baseURL, apiKey, model, logger), nil
	case "openai":
		return NewOpenAIClient(baseURL, apiKey, model, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", name)
	}
}
