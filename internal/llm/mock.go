package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned reply for the MockProvider. Text, when set, is
// used instead of Content as the raw model output, e.g. to simulate a
// fenced reply. Stop defaults to StopEnd.
type MockResponse struct {
	Content json.RawMessage
	Text    string
	Stop    string
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for tests and `llm.provider:
// mock`. It replays canned replies in FIFO order, records every request
// and applies the same schema handling as the real providers.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned reply, or ErrProviderUnavailable once
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.responses[0]
	m.responses = m.responses[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	text := next.Text
	if text == "" {
		text = string(next.Content)
	}
	return finish(req, text, next.Stop, next.Usage, "mock")
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

func (m *MockProvider) Name() string {
	return ProviderMock
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
