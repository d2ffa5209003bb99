package swc

import (
	"context"
	"errors"
	"net"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the retry condition used when backoff is enabled. It
// retries on transient connection errors and on every error status (>= 400),
// so a failing call is retried until the configured backoff max time runs
// out. It does not retry on context cancellation, deadline exceeded, or a
// host name the resolver reports as not found. Temporary DNS failures and
// lookup timeouts are retried like any other network error.
//
// Supply a custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false
		}

		return true
	}

	if r == nil {
		return false
	}

	return r.IsError()
}
