package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/PolyglotLabs/mjtrans"
)

func TestMockClient_FixedResponse(t *testing.T) {
	m := NewMockClient("固定响应")

	out, err := m.Complete(context.Background(), CompletionRequest{User: "hello"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != "固定响应" {
		t.Errorf("Unexpected output: %q", out)
	}
	if m.CallCount != 1 {
		t.Errorf("Expected 1 call, got %d", m.CallCount)
	}
	if m.LastRequest == nil || m.LastRequest.User != "hello" {
		t.Errorf("Unexpected last request: %+v", m.LastRequest)
	}
}

func TestMockClient_EchoWhenUnset(t *testing.T) {
	m := &MockClient{}

	out, err := m.Complete(context.Background(), CompletionRequest{User: "hello"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != "[hello]" {
		t.Errorf("Expected bracketed echo, got %q", out)
	}
}

func TestMockClient_Error(t *testing.T) {
	m := FailingMockClient(mjtrans.ProviderDeepSeek, mjtrans.CodeRateLimited)

	_, err := m.Complete(context.Background(), CompletionRequest{User: "hello"})
	var provErr *mjtrans.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %T", err)
	}
	if provErr.Code != mjtrans.CodeRateLimited {
		t.Errorf("Expected CodeRateLimited, got %q", provErr.Code)
	}
}

func TestMockClient_Reset(t *testing.T) {
	m := NewMockClient("x")
	_, _ = m.Complete(context.Background(), CompletionRequest{User: "hello"})

	m.Reset()
	if m.CallCount != 0 || m.LastRequest != nil {
		t.Error("Expected reset state")
	}
}
