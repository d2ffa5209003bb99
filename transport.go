package swc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Transport performs GET requests against the API base URL. A non-2xx answer
// is returned as a *StatusError alongside the response; a network failure as
// a *RequestError.
type Transport interface {
	Get(ctx context.Context, endpoint string, query url.Values) (*resty.Response, error)
}

// newTransport picks the plain or the retrying transport from cfg.
func newTransport(cfg *Config, opts *Options) (Transport, error) {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetLogger(opts.requestLogger).
		SetHeaders(opts.requestHeaders)

	if opts.throttle != nil {
		rt, err := newThrottle(opts.throttle.rps, opts.throttle.burst, opts.requestLogger, rc.GetClient().Transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		rc.SetTransport(rt)
	}

	direct := &directTransport{rc: rc, logger: opts.requestLogger}

	if !cfg.Backoff {
		return direct, nil
	}

	return newRetryTransport(direct, cfg.BackoffMaxTime, opts), nil
}

type directTransport struct {
	rc     *resty.Client
	logger RequestLogger
}

func (t *directTransport) Get(ctx context.Context, endpoint string, query url.Values) (*resty.Response, error) {
	return t.do(t.request(ctx, query), endpoint)
}

func (t *directTransport) request(ctx context.Context, query url.Values) *resty.Request {
	req := t.rc.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetHeader("X-Request-Id", uuid.NewString())

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return req
}

func (t *directTransport) do(req *resty.Request, endpoint string) (*resty.Response, error) {
	resp, err := req.Get(endpoint)
	if err != nil {
		t.logger.Errorf("request error occurred: GET %s: %v", endpoint, err)
		return resp, &RequestError{Method: http.MethodGet, Endpoint: endpoint, Err: err}
	}

	if !resp.IsSuccess() {
		t.logger.Errorf("HTTP status error occurred: %d %s", resp.StatusCode(), resp.String())
		return resp, newStatusError(http.MethodGet, endpoint, resp.StatusCode(), resp.Body())
	}

	return resp, nil
}

// retryTransport decorates directTransport with resty's exponential backoff.
// Retries stop once maxElapsed has passed since the first attempt, and the
// outcome of the last attempt is surfaced.
//
// The elapsed time is checked before each wait, so a call may overrun
// maxElapsed by at most one wait, min(retryMaxWaitTime, maxElapsed), plus the
// duration of the final attempt.
type retryTransport struct {
	*directTransport
	maxElapsed time.Duration
	policy     func(*resty.Response, error) bool
}

func newRetryTransport(next *directTransport, maxElapsed time.Duration, opts *Options) *retryTransport {
	maxWait := opts.retryMaxWaitTime
	if maxElapsed < maxWait {
		maxWait = maxElapsed
	}
	waitTime := opts.retryWaitTime
	if maxWait < waitTime {
		waitTime = maxWait
	}

	next.rc.
		SetRetryCount(opts.retryCount).
		SetRetryWaitTime(waitTime).
		SetRetryMaxWaitTime(maxWait).
		AddRetryHook(func(resp *resty.Response, err error) {
			if err != nil {
				next.logger.Warnf("retrying after request error: %v", err)
				return
			}
			if resp != nil && resp.Request != nil {
				next.logger.Warnf("retrying GET %s after status %d", resp.Request.URL, resp.StatusCode())
			}
		})

	return &retryTransport{
		directTransport: next,
		maxElapsed:      maxElapsed,
		policy:          opts.retryPolicy,
	}
}

func (t *retryTransport) Get(ctx context.Context, endpoint string, query url.Values) (*resty.Response, error) {
	start := time.Now()

	req := t.request(ctx, query).AddRetryCondition(func(resp *resty.Response, err error) bool {
		if time.Since(start) >= t.maxElapsed {
			return false
		}
		return t.policy(resp, err)
	})

	return t.do(req, endpoint)
}
