package swc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type countingTransport struct {
	calls int
}

func (c *countingTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	c.calls++
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func TestNewThrottle_InvalidArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rps   int
		burst int
	}{
		{"zero rps", 0, 1},
		{"zero burst", 1, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newThrottle(tt.rps, tt.burst, &NoopLogger{}, nil)

			if !errors.Is(err, ErrMustNotBeZero) {
				t.Errorf("expected ErrMustNotBeZero, got %v", err)
			}
		})
	}
}

func TestThrottle_BurstPassesThrough(t *testing.T) {
	t.Parallel()

	next := &countingTransport{}
	rt, err := newThrottle(1, 3, &NoopLogger{}, next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start := time.Now()
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "http://api.local/v0/leagues/", nil)
		if _, err := rt.RoundTrip(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("expected burst to pass without waiting, took %v", elapsed)
	}

	if next.calls != 3 {
		t.Errorf("expected 3 calls, got %d", next.calls)
	}
}

func TestThrottle_WaitCanceled(t *testing.T) {
	t.Parallel()

	next := &countingTransport{}
	rt, err := newThrottle(1, 1, &NoopLogger{}, next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "http://api.local/", nil)
	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = rt.RoundTrip(req.WithContext(ctx))

	if !errors.Is(err, ErrThrottle) {
		t.Errorf("expected ErrThrottle, got %v", err)
	}

	if next.calls != 1 {
		t.Errorf("expected the throttled request not to be sent, got %d calls", next.calls)
	}
}
