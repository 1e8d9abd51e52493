package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(&CircuitBreakerConfig{
		FailureThreshold: 3,
		RecoveryTimeout:  time.Hour,
		HalfOpenMaxCalls: 1,
		SuccessThreshold: 1,
	})

	failing := func() error { return errors.New("boom") }
	for i := 0; i < 3; i++ {
		_ = cb.Execute(failing)
	}

	if cb.State() != CircuitBreakerOpen {
		t.Errorf("expected the breaker to open after %d consecutive failures, got %v", 3, cb.State())
	}

	if err := cb.Execute(func() error { return nil }); err == nil {
		t.Error("expected Execute to reject calls while the breaker is open")
	}
}

func TestCircuitBreakerRecoversAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(&CircuitBreakerConfig{
		FailureThreshold: 1,
		RecoveryTimeout:  time.Millisecond,
		HalfOpenMaxCalls: 1,
		SuccessThreshold: 1,
	})

	_ = cb.Execute(func() error { return errors.New("boom") })
	if cb.State() != CircuitBreakerOpen {
		t.Fatalf("expected the breaker to open after one failure at threshold 1, got %v", cb.State())
	}

	time.Sleep(5 * time.Millisecond)

	if err := cb.Execute(func() error { return nil }); err != nil {
		t.Errorf("expected a successful call after the recovery timeout to close the breaker, got error: %v", err)
	}
	if cb.State() != CircuitBreakerClosed {
		t.Errorf("expected the breaker to close after a successful half-open call, got %v", cb.State())
	}
}

func TestCircuitBreakerStaysClosedOnIntermittentSuccess(t *testing.T) {
	cb := NewCircuitBreaker(&CircuitBreakerConfig{
		FailureThreshold: 3,
		RecoveryTimeout:  time.Hour,
		HalfOpenMaxCalls: 1,
		SuccessThreshold: 1,
	})

	_ = cb.Execute(func() error { return errors.New("boom") })
	_ = cb.Execute(func() error { return nil })
	_ = cb.Execute(func() error { return errors.New("boom") })

	if cb.State() != CircuitBreakerClosed {
		t.Errorf("expected the breaker to stay closed since failures never ran threshold consecutively, got %v", cb.State())
	}
}

func TestRetryHandlerStopsOnNonRetryableError(t *testing.T) {
	rh := NewRetryHandler(&RetryConfig{MaxRetries: 5, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1, Jitter: false})

	attempts := 0
	err := rh.Retry(context.Background(), func() error {
		attempts++
		return &ConnectionError{Simulator: SimulatorIRacing, Operation: "test", Cause: errors.New("fatal"), Retryable: false}
	})

	if err == nil {
		t.Fatal("expected an error to be returned")
	}
	if attempts != 1 {
		t.Errorf("expected exactly one attempt for a non-retryable error, got %d", attempts)
	}
}

func TestRetryHandlerRetriesUntilSuccess(t *testing.T) {
	rh := NewRetryHandler(&RetryConfig{MaxRetries: 5, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1, Jitter: false})

	attempts := 0
	err := rh.Retry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return &ConnectionError{Simulator: SimulatorACC, Operation: "test", Cause: errors.New("transient"), Retryable: true}
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected eventual success, got error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected exactly 3 attempts before success, got %d", attempts)
	}
}

func TestRetryHandlerRespectsContextCancellation(t *testing.T) {
	rh := NewRetryHandler(&RetryConfig{MaxRetries: 5, InitialDelay: 50 * time.Millisecond, MaxDelay: time.Second, BackoffFactor: 2, Jitter: false})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rh.Retry(ctx, func() error {
		return &ConnectionError{Simulator: SimulatorIRacing, Operation: "test", Cause: errors.New("transient"), Retryable: true}
	})

	if err == nil {
		t.Error("expected an error once the context is already cancelled")
	}
}
