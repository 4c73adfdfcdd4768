package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"counselling-site/internal/domain"
	"counselling-site/internal/llm"
)

func TestChatService_DemoModeWithoutProvider(t *testing.T) {
	svc := NewChatService(nil, testSite(), zap.NewNop())

	reply := svc.Reply(context.Background(), []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "Do you offer ADHD support?"},
	})

	if !strings.Contains(reply.Content, "hello@harbour.example") {
		t.Fatalf("demo reply missing contact email: %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "01234 567890") {
		t.Fatalf("demo reply missing contact phone: %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "£35") {
		t.Fatalf("demo reply missing concession lead-in: %q", reply.Content)
	}
}

func TestChatService_ForwardsHistoryAndSystemPrompt(t *testing.T) {
	mock := &llm.MockProvider{Response: "We are based in Gosport."}
	svc := NewChatService(mock, testSite(), zap.NewNop())

	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "Where are you based?"},
		{Role: domain.RoleAssistant, Content: "In Gosport."},
		{Role: domain.RoleUser, Content: "What are your fees?"},
	}
	reply := svc.Reply(context.Background(), history)

	if reply.Content != "We are based in Gosport." {
		t.Fatalf("unexpected reply: %q", reply.Content)
	}
	if len(mock.Requests) != 1 {
		t.Fatalf("expected one provider call, got %d", len(mock.Requests))
	}

	req := mock.Requests[0]
	if req.MaxTokens != 500 {
		t.Fatalf("expected max tokens 500, got %d", req.MaxTokens)
	}
	if req.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", req.Temperature)
	}
	if !strings.Contains(req.System, "Harbour Counselling") {
		t.Fatalf("system prompt missing practice name")
	}
	if len(req.Messages) != 3 {
		t.Fatalf("expected full history replayed, got %d messages", len(req.Messages))
	}
	if req.Messages[1].Role != domain.RoleAssistant || req.Messages[1].Content != "In Gosport." {
		t.Fatalf("history order not preserved: %+v", req.Messages)
	}
}

func TestChatService_ProviderErrorYieldsApology(t *testing.T) {
	mock := &llm.MockProvider{Err: errors.New("status=429")}
	svc := NewChatService(mock, testSite(), zap.NewNop())

	reply := svc.Reply(context.Background(), []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "hi"},
	})

	if !strings.Contains(reply.Content, "hello@harbour.example") || !strings.Contains(reply.Content, "01234 567890") {
		t.Fatalf("apology missing contact details: %q", reply.Content)
	}
	if strings.Contains(reply.Content, "429") {
		t.Fatalf("raw provider error leaked: %q", reply.Content)
	}
}

func TestChatService_EmptyProviderTextYieldsApology(t *testing.T) {
	mock := &llm.MockProvider{Response: ""}
	svc := NewChatService(mock, testSite(), zap.NewNop())

	reply := svc.Reply(context.Background(), nil)
	if reply.Content != "I apologise, I was unable to generate a response." {
		t.Fatalf("unexpected reply: %q", reply.Content)
	}
}
