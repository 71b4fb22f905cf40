package enrich

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Enrichment *Enrichment
	Err        error
}

// MockProvider is a deterministic Provider for testing. It returns canned
// responses in FIFO order and records all requested words.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []string
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Enrich returns the next canned response or ErrProviderUnavailable if the
// queue is empty.
func (m *MockProvider) Enrich(_ context.Context, text, _ string) (*Enrichment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, text)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Enrichment, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}
