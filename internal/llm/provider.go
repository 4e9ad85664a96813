package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Provider is the core abstraction for LLM interaction. The tutor calls
// Generate for free-text explanations and for schema-constrained answer
// grading.
type Provider interface {
	// Generate sends a prompt to the LLM. When the request carries a
	// Schema the provider uses its native structured output mode and the
	// returned Content is validated JSON; otherwise Content is raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Tutor calls are single-turn,
	// so this normally holds one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. Nil asks
	// for plain text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero leaves the provider default in place.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "answer-analysis".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the validated JSON object for schema requests and the
	// raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Text returns the trimmed text content, or ErrEmptyResponse when there
// is none.
func (r *Response) Text() (string, error) {
	if r == nil {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(string(r.Content))
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Decode unmarshals a schema response into v.
func (r *Response) Decode(v any) error {
	if r == nil || len(r.Content) == 0 {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ErrInvalidResponse{Content: r.Content, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
