package swc

import (
	"errors"
	"strings"
	"testing"
)

func TestNewStatusError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantMessage string
		wantText    string
	}{
		{"detail string", `{"detail":"League not found"}`, "League not found", "League not found"},
		{"error field", `{"error":"boom"}`, "boom", "boom"},
		{"detail list", `{"detail":[{"loc":["query","limit"],"msg":"bad"}]}`, `[{"loc":["query","limit"],"msg":"bad"}]`, `"msg":"bad"`},
		{"plain text", "Internal Server Error", "", "Internal Server Error"},
		{"empty", "", "", "(empty error body)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := newStatusError("GET", "/v0/leagues/", 422, []byte(tt.body))

			if err.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, err.Message)
			}

			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("expected error to contain %q, got %q", tt.wantText, err.Error())
			}

			if !strings.HasPrefix(err.Error(), "GET /v0/leagues/: unexpected status code 422: ") {
				t.Errorf("unexpected error prefix: %q", err.Error())
			}

			if !errors.Is(err, ErrUnexpectedStatusCode) {
				t.Error("expected error to wrap ErrUnexpectedStatusCode")
			}
		})
	}
}

func TestNewStatusError_TruncatesBody(t *testing.T) {
	t.Parallel()

	err := newStatusError("GET", "/", 500, []byte(strings.Repeat("x", maxErrBodySize+100)))

	if len(err.Body) != maxErrBodySize {
		t.Errorf("expected body of %d bytes, got %d", maxErrBodySize, len(err.Body))
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	withField := &ValidationError{Model: "League", Field: "teams[0].team_id", Expected: "integer", Message: "team_id is a required field"}
	if got := withField.Error(); got != "validation failed: League.teams[0].team_id (expected integer): team_id is a required field" {
		t.Errorf("unexpected error text: %q", got)
	}

	listElement := &ValidationError{Model: "League", Field: "[0].teams[0].team_name", Expected: "string", Message: "team_name is a required field"}
	if got := listElement.Error(); got != "validation failed: League[0].teams[0].team_name (expected string): team_name is a required field" {
		t.Errorf("unexpected error text: %q", got)
	}

	withoutField := &ValidationError{Model: "Counts", Message: "malformed JSON"}
	if got := withoutField.Error(); got != "validation failed: Counts: malformed JSON" {
		t.Errorf("unexpected error text: %q", got)
	}

	if !errors.Is(withField, ErrValidation) {
		t.Error("expected error to wrap ErrValidation")
	}
}

func TestRequestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &RequestError{Method: "GET", Endpoint: "/v0/counts/", Err: cause}

	if err.Error() != "GET /v0/counts/: connection refused" {
		t.Errorf("unexpected error text: %q", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("expected error to unwrap to its cause")
	}
}
