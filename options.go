package swc

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Option func(*Options)

type Options struct {
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(*resty.Response, error) bool
	requestHeaders   map[string]string
	throttle         *throttleConfig
	tracerProvider   trace.TracerProvider
	bulkFileBaseURL  string
}

type throttleConfig struct {
	rps   int
	burst int
}

func newClientOptions() *Options {
	return &Options{
		retryCount:       100,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 3 * time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Accept": "application/json",
		},
		tracerProvider:  otel.GetTracerProvider(),
		bulkFileBaseURL: BulkFileBaseURL,
	}
}

// WithRetryCount caps the number of retries per call. The backoff max time
// from [Config] normally ends retrying well before this ceiling.
func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

// WithRetryWaitTime sets the initial backoff wait.
func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

// WithRetryMaxWaitTime caps a single backoff wait.
func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Accept") || strings.EqualFold(header, "X-Request-Id") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithThrottle limits API calls to rps requests per second with the given
// burst. Bulk downloads are not throttled.
func WithThrottle(rps, burst int) Option {
	return func(o *Options) {
		if rps > 0 && burst > 0 {
			o.throttle = &throttleConfig{rps: rps, burst: burst}
		}
	}
}

// WithTracerProvider sets the provider used to create spans. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// WithBulkFileBaseURL points bulk downloads at a mirror of the file host.
func WithBulkFileBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimSpace(baseURL)
		if baseURL == "" {
			return
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}

		o.bulkFileBaseURL = baseURL
	}
}

func (o *Options) Validate() error {
	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > 1000 {
		return errors.New("retryCount must not exceed 1000")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return errors.New("retryWaitTime must be at least 100ms")
	}

	if o.retryWaitTime > time.Minute {
		return fmt.Errorf("retryWaitTime must not exceed %v", time.Minute)
	}

	if o.retryMaxWaitTime < 100*time.Millisecond {
		return errors.New("retryMaxWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime > 5*time.Minute {
		return fmt.Errorf("retryMaxWaitTime must not exceed %v", 5*time.Minute)
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)", o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	if o.throttle != nil && (o.throttle.rps <= 0 || o.throttle.burst <= 0) {
		return fmt.Errorf("throttle rps[%d] and burst[%d] %w", o.throttle.rps, o.throttle.burst, ErrMustNotBeZero)
	}

	if o.tracerProvider == nil {
		return errors.New("tracerProvider must not be nil")
	}

	if o.bulkFileBaseURL == "" {
		return errors.New("bulkFileBaseURL must not be empty")
	}

	return nil
}
