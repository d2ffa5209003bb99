package swc

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrMustNotBeZero is returned for a throttle rate or burst below one.
	ErrMustNotBeZero = errors.New("must be greater than zero")
	// ErrThrottle wraps the context error of a request that gave up waiting
	// for a throttle token.
	ErrThrottle = errors.New("throttle wait failed")
)

// throttle is an http.RoundTripper holding outbound API calls on a token
// bucket until a token is available or the request context ends.
type throttle struct {
	limiter *rate.Limiter
	rps     int
	burst   int
	logger  RequestLogger
	next    http.RoundTripper
}

func newThrottle(rps, burst int, logger RequestLogger, next http.RoundTripper) (http.RoundTripper, error) {
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, ErrMustNotBeZero)
	}

	if next == nil {
		next = http.DefaultTransport
	}

	return &throttle{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		rps:     rps,
		burst:   burst,
		logger:  logger,
		next:    next,
	}, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if !t.limiter.Allow() {
		t.logger.Debugf("throttle tokens exhausted, rate=%d burst=%d path=%s", t.rps, t.burst, r.URL.Path)

		start := time.Now()
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrThrottle, err)
		}

		t.logger.Debugf("throttle wait complete after %v", time.Since(start))
	}

	return t.next.RoundTrip(r)
}
