package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"counselling-site/internal/config"
	"counselling-site/internal/domain"
	"counselling-site/internal/llm"
)

const (
	chatMaxTokens   = 500
	chatTemperature = 0.7
)

// ChatService answers visitor questions about the practice. It is a thin
// façade over the provider: no retries, no state between requests.
type ChatService struct {
	provider llm.Provider
	site     config.Site
	logger   *zap.Logger
}

// NewChatService builds a ChatService. A nil provider enables demo mode.
func NewChatService(provider llm.Provider, site config.Site, logger *zap.Logger) *ChatService {
	return &ChatService{
		provider: provider,
		site:     site,
		logger:   logger,
	}
}

// Reply produces the assistant's answer given the conversation so far.
// Every failure is converted into a safe reply; the caller never sees a raw
// provider error.
func (s *ChatService) Reply(ctx context.Context, messages []domain.ChatMessage) domain.ChatReply {
	if s.provider == nil {
		return domain.ChatReply{Content: s.demoReply()}
	}

	history := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	content, err := s.provider.GenerateReply(ctx, llm.Request{
		System:      BuildChatSystemPrompt(s.site),
		Messages:    history,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		s.logger.Error("chat provider failed", zap.Error(err))
		return domain.ChatReply{Content: s.apologyReply()}
	}
	if content == "" {
		return domain.ChatReply{Content: "I apologise, I was unable to generate a response."}
	}

	return domain.ChatReply{Content: content}
}

// demoReply is the deterministic answer used when no credential is configured.
func (s *ChatService) demoReply() string {
	return fmt.Sprintf(`Thank you for your message! I'm currently in demo mode. To learn more about our services or book a consultation, please contact us directly:

Email: %s
Phone: %s

Our %s-based practice offers specialist support for ADHD, trauma, anxiety, depression, and relationship issues. Sessions start from %s%d.`,
		s.site.Contact.Email,
		s.site.Contact.Phone,
		s.site.Location.Area,
		currencySymbol(s.site.Fees.Currency),
		s.site.Fees.Concession,
	)
}

func (s *ChatService) apologyReply() string {
	return fmt.Sprintf("I apologise, something went wrong. Please contact us directly at %s or %s.",
		s.site.Contact.Email, s.site.Contact.Phone)
}
