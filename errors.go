package swc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// maxErrBodySize caps how much of a response body is kept on a [StatusError].
const maxErrBodySize = 4 << 10

var (
	// ErrInvalidConfig is wrapped by every configuration error.
	ErrInvalidConfig = errors.New("swc: invalid configuration")
	// ErrBaseURLRequired is returned when neither an explicit base URL nor
	// the SWC_API_BASE_URL environment variable is set.
	ErrBaseURLRequired = errors.New("swc: Base URL is required")
	// ErrUnexpectedStatusCode is the sentinel wrapped by [StatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrValidation is the sentinel wrapped by [ValidationError].
	ErrValidation = errors.New("validation failed")
	// ErrUnknownBulkFile is returned for a [BulkFile] outside the known set.
	ErrUnknownBulkFile = errors.New("unknown bulk file")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method     string
	Endpoint   string
	StatusCode int
	// Body holds the raw response body, truncated to 4KB.
	Body string
	// Message is the "detail" field of a JSON error body, if present.
	Message string
}

func newStatusError(method, endpoint string, statusCode int, body []byte) *StatusError {
	if len(body) > maxErrBodySize {
		body = body[:maxErrBodySize]
	}

	return &StatusError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       string(body),
		Message:    errorDetail(body),
	}
}

func (e *StatusError) Error() string {
	text := e.Message
	if text == "" {
		text = strings.TrimSpace(e.Body)
	}
	if text == "" {
		text = "(empty error body)"
	}

	return fmt.Sprintf("%s %s: %v %d: %s", e.Method, e.Endpoint, ErrUnexpectedStatusCode, e.StatusCode, text)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatusCode
}

// IsNotFound reports whether the API answered 404.
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// errorDetail extracts the message from error bodies shaped like
// {"detail": "..."} or {"error": "..."}.
func errorDetail(body []byte) string {
	var payload struct {
		Detail any    `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	switch d := payload.Detail.(type) {
	case string:
		return d
	case nil:
		return payload.Error
	default:
		// Validation failures carry a list of objects.
		b, err := json.Marshal(d)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// RequestError wraps a network-level failure: connection refused, timeouts,
// TLS errors and the like.
type RequestError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ValidationError reports the first field of a payload that does not match
// the record schema.
type ValidationError struct {
	// Model is the record type being built, e.g. "League".
	Model string
	// Field is the dotted path of the offending field using wire names,
	// e.g. "teams[0].team_id". Empty when the payload itself is malformed.
	Field string
	// Expected is the JSON type the field must hold.
	Expected string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s: %s", ErrValidation, e.Model, e.Message)
	}

	sep := "."
	if strings.HasPrefix(e.Field, "[") {
		sep = ""
	}

	return fmt.Sprintf("%v: %s%s%s (expected %s): %s", ErrValidation, e.Model, sep, e.Field, e.Expected, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
