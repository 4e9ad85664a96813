package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse is returned by Response.Text when the model produced
// no usable text.
var ErrEmptyResponse = errors.New("empty LLM response")

// classifyStatus maps an HTTP status reported by a vendor SDK to one of
// the package errors. Anything that is not a rate limit counts as the
// provider being unavailable.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// ErrMaxTokensExceeded indicates a structured response was cut off by
// the MaxTokens limit and cannot be parsed.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// checkStructured rejects a schema response that was truncated and then
// validates it against the schema. Plain text requests pass through.
func checkStructured(schema *Schema, stopReason string, content json.RawMessage) error {
	if schema == nil {
		return nil
	}
	if stopReason == "max_tokens" {
		return &ErrMaxTokensExceeded{Content: content}
	}
	return validateResponse(schema, content)
}
