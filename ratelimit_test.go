package mjtrans

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_TryAcquire(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 60,
		BurstSize:         2,
	})

	// Burst allows immediate acquisitions
	if !limiter.TryAcquire() {
		t.Error("First acquire should succeed")
	}
	if !limiter.TryAcquire() {
		t.Error("Second acquire should succeed within burst")
	}

	// Bucket exhausted
	if limiter.TryAcquire() {
		t.Error("Third acquire should fail with empty bucket")
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	// 600 RPM = 10 tokens/second
	limiter := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 600,
		BurstSize:         1,
	})

	if !limiter.TryAcquire() {
		t.Fatal("First acquire should succeed")
	}
	if limiter.TryAcquire() {
		t.Fatal("Bucket should be empty")
	}

	// Wait for a refill
	time.Sleep(150 * time.Millisecond)

	if !limiter.TryAcquire() {
		t.Error("Acquire should succeed after refill")
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{})

	if limiter.Available() != 60 {
		t.Errorf("Default burst should be 60, got %f", limiter.Available())
	}
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 1, // Very slow refill
		BurstSize:         1,
	})
	limiter.TryAcquire() // Drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	if err == nil {
		t.Error("Wait should fail when context expires before a token is available")
	}
}

func TestRateLimitedClient(t *testing.T) {
	inner := &mockClient{response: "translated"}
	client := NewRateLimitedClient(inner, RateLimitConfig{
		RequestsPerMinute: 600,
		BurstSize:         10,
	})

	result, err := client.Complete(context.Background(), CompletionRequest{
		System: "system",
		User:   "user",
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if result != "translated" {
		t.Errorf("Expected 'translated', got %q", result)
	}
	if inner.callCount != 1 {
		t.Errorf("Inner client should be called once, got %d", inner.callCount)
	}
}

func TestRateLimitedClient_CancelledWait(t *testing.T) {
	inner := &mockClient{response: "translated"}
	client := NewRateLimitedClient(inner, RateLimitConfig{
		RequestsPerMinute: 1,
		BurstSize:         1,
	})
	client.Limiter().TryAcquire() // Drain the bucket

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, CompletionRequest{User: "user"})
	if err == nil {
		t.Fatal("Expected error when rate limit wait is cancelled")
	}
	if CodeOf(err) != CodeRateLimited {
		t.Errorf("Expected rate_limited code, got %q", CodeOf(err))
	}
	if inner.callCount != 0 {
		t.Error("Inner client should not be called when wait is cancelled")
	}
}
