package llm

import "context"

// MockProvider allows tests without calling a real provider. It records every
// request it receives.
type MockProvider struct {
	Response string
	Err      error
	Requests []Request
}

func (m *MockProvider) GenerateReply(_ context.Context, req Request) (string, error) {
	m.Requests = append(m.Requests, req)
	return m.Response, m.Err
}
