// Package swc provides a typed client for the SportsWorldCentral (SWC)
// fantasy football API.
//
// The client wraps [github.com/go-resty/resty/v2] with exponential backoff
// retries, validates every JSON response into typed records, and offers
// shortcuts for downloading the bulk data exports.
//
// # Basic Usage
//
//	cfg, err := swc.NewConfig(swc.WithBaseURL("http://localhost:8000"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := swc.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	leagues, err := c.ListLeagues(ctx, swc.ListLeaguesParams{
//	    Pagination: swc.Pagination{Limit: 10},
//	    LeagueName: "Pigskin Prodigal Fantasy League",
//	})
//
// # Configuration
//
// [NewConfig] resolves the base URL from [WithBaseURL], falling back to the
// SWC_API_BASE_URL environment variable; it fails with [ErrBaseURLRequired]
// when neither is set. Backoff is enabled by default with a 30 second
// ceiling on the total retry time, and bulk files default to CSV.
//
// Client behaviour is tuned with [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// resulting options are validated by [New].
//
// # Retry Behaviour
//
// With backoff enabled, [DefaultRetryPolicy] retries transient connection
// errors and error status responses with exponentially growing, jittered
// waits until the backoff max time has elapsed; the outcome of the last
// attempt is then returned. With backoff disabled the first failure is
// returned. Bulk downloads are never retried.
//
// # Errors
//
// Non-2xx answers are returned as [*StatusError], network failures as
// [*RequestError] and malformed payloads as [*ValidationError]. Bulk
// downloads return the body whatever the status.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger], or wrap a
// zerolog logger with [NewZerologLogger]. The default [NoopLogger] discards
// all log output.
package swc
