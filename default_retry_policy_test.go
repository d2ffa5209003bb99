package swc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
)

func TestDefaultRetryPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resp   *resty.Response
		err    error
		expect bool
	}{
		{"connection error", nil, errors.New("connection refused"), true},
		{"canceled", nil, context.Canceled, false},
		{"deadline exceeded", nil, fmt.Errorf("get: %w", context.DeadlineExceeded), false},
		{"dns not found", nil, &net.DNSError{Err: "no such host", Name: "api.invalid", IsNotFound: true}, false},
		{"dns timeout", nil, &net.DNSError{Err: "i/o timeout", Name: "api.local", IsTimeout: true}, true},
		{"dns temporary", nil, &net.DNSError{Err: "server misbehaving", Name: "api.local", IsTemporary: true}, true},
		{"wrapped dns timeout", nil, fmt.Errorf("dial: %w", &net.DNSError{Name: "api.local", IsTimeout: true}), true},
		{"nil response", nil, nil, false},
		{"200", responseWithStatus(http.StatusOK), nil, false},
		{"404", responseWithStatus(http.StatusNotFound), nil, true},
		{"429", responseWithStatus(http.StatusTooManyRequests), nil, true},
		{"500", responseWithStatus(http.StatusInternalServerError), nil, true},
		{"503", responseWithStatus(http.StatusServiceUnavailable), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DefaultRetryPolicy(tt.resp, tt.err); got != tt.expect {
				t.Errorf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func responseWithStatus(code int) *resty.Response {
	return &resty.Response{RawResponse: &http.Response{StatusCode: code}}
}
