package kafka

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHandleWithRetryRetriesUntilSuccess(t *testing.T) {
	attempts := 0
	handler := func(_ context.Context, _ []byte) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}

	var logged int
	err := handleWithRetry(context.Background(), handler, []byte("task"), time.Millisecond, func(attempt int, err error) {
		logged++
	})
	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if logged != 2 {
		t.Fatalf("expected 2 logged failures, got %d", logged)
	}
}

func TestHandleWithRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	handler := func(_ context.Context, _ []byte) error {
		cancel()
		return errors.New("permanent")
	}

	err := handleWithRetry(ctx, handler, []byte("task"), time.Hour, func(int, error) {})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHandleWithRetrySucceedsWithoutDelay(t *testing.T) {
	start := time.Now()
	err := handleWithRetry(context.Background(), func(_ context.Context, _ []byte) error {
		return nil
	}, nil, time.Hour, func(int, error) {})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("success path must not wait")
	}
}
