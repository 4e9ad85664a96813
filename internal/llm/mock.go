package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// errMockExhausted is returned once every scripted reply has been used.
var errMockExhausted = errors.New("mock: no scripted reply left")

// MockResponse is one scripted reply. Content is the raw model output:
// plain text for explanations, JSON for a case-study analysis.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockText scripts a plain text reply such as a tutor explanation.
func MockText(s string) MockResponse {
	return MockResponse{Content: json.RawMessage(s)}
}

// MockProvider replays scripted replies in order and keeps every request
// it saw. LLM_PROVIDER=mock selects it; with nothing scripted each call
// is unavailable, so the tutor shows its offline texts.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockResponse
	Calls   []Request
}

func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.replies) == 0 {
		return nil, &ErrProviderUnavailable{Err: errMockExhausted}
	}

	next := m.replies[0]
	m.replies = m.replies[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      m.ModelID(),
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount returns how many requests reached the provider.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, if any.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}
