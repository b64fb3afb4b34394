package provider

import (
	"context"
	"fmt"

	"github.com/PolyglotLabs/mjtrans"
)

// MockClient is a mock completion backend for testing.
type MockClient struct {
	Response    string             // Fixed response returned by Complete
	Err         error              // Error returned instead, if set
	CallCount   int                // Number of times Complete was called
	LastRequest *CompletionRequest // Last request received
}

// NewMockClient creates a mock client returning a fixed response.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

// Complete returns the configured response or error.
func (m *MockClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	// Bracketed echo for unconfigured responses
	return fmt.Sprintf("[%s]", req.User), nil
}

// Reset resets the call count and last request.
func (m *MockClient) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// FailingMockClient returns a mock that always fails with the given
// provider error code.
func FailingMockClient(p mjtrans.Provider, code mjtrans.FailureCode) *MockClient {
	return &MockClient{
		Err: &mjtrans.ProviderError{
			Provider: p,
			Code:     code,
			Message:  "mock failure",
		},
	}
}

// Verify MockClient implements Client
var _ Client = (*MockClient)(nil)
