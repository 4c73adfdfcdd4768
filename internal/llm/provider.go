package llm

import "context"

// Message is a single conversation turn sent to a provider.
type Message struct {
	Role    string
	Content string
}

// Request is a provider-agnostic completion request.
type Request struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Provider generates a reply from a hosted completion API.
type Provider interface {
	GenerateReply(ctx context.Context, req Request) (string, error)
}
