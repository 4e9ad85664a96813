// Package tutor turns LLM calls into the short explanatory texts shown
// next to exercises. Every public call returns display text: failures
// and empty answers become fixed fallback messages.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/safetypro/internal/llm"
	"github.com/abhisek/safetypro/internal/logger"
)

// Fallback texts.
const (
	ExplainFailed  = "Error connecting to AI tutor."
	ExplainEmpty   = "Sorry, I couldn't explain this topic right now."
	AnalyzeFailed  = "Error analyzing answer."
	AnalyzeEmpty   = "Could not analyze answer."
	DeepDiveFailed = "Could not load details."
	DeepDiveEmpty  = "No additional details available."
)

// Purpose labels recorded with each LLM request.
const (
	PurposeExplain  = "explain"
	PurposeAnalyze  = "analyze"
	PurposeDeepDive = "deep-dive"
)

var errNoProvider = errors.New("no LLM provider configured")

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.4,
	}
}

// Service is the AI tutor. A nil provider is allowed; every call then
// returns its failure fallback.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// New creates a tutor Service.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// Explain returns a 2-3 sentence explanation of a safety topic.
func (s *Service) Explain(ctx context.Context, topic string) string {
	text, err := s.ExplainText(ctx, topic)
	return s.collapse(PurposeExplain, text, err, ExplainFailed, ExplainEmpty)
}

// Analyze grades a case study answer against its reference answer and
// returns "<rating>: <feedback>".
func (s *Service) Analyze(ctx context.Context, scenario, answer, ideal string) string {
	text, err := s.AnalyzeText(ctx, scenario, answer, ideal)
	return s.collapse(PurposeAnalyze, text, err, AnalyzeFailed, AnalyzeEmpty)
}

// DeepDive explains why correctAnswer is right for question.
func (s *Service) DeepDive(ctx context.Context, question, correctAnswer string) string {
	text, err := s.DeepDiveText(ctx, question, correctAnswer)
	return s.collapse(PurposeDeepDive, text, err, DeepDiveFailed, DeepDiveEmpty)
}

// ExplainText is Explain without the fallback.
func (s *Service) ExplainText(ctx context.Context, topic string) (string, error) {
	prompt, err := render(explainTemplate, struct{ Topic string }{topic})
	if err != nil {
		return "", fmt.Errorf("build explain prompt: %w", err)
	}
	resp, err := s.generate(llm.WithPurpose(ctx, PurposeExplain), prompt, nil)
	if err != nil {
		return "", err
	}
	return resp.Text()
}

// AnalyzeText is Analyze without the fallback.
func (s *Service) AnalyzeText(ctx context.Context, scenario, answer, ideal string) (string, error) {
	prompt, err := render(analyzeTemplate, struct{ Scenario, Answer, Ideal string }{scenario, answer, ideal})
	if err != nil {
		return "", fmt.Errorf("build analyze prompt: %w", err)
	}
	resp, err := s.generate(llm.WithPurpose(ctx, PurposeAnalyze), prompt, AnalysisSchema)
	if err != nil {
		return "", err
	}
	if _, err := resp.Text(); err != nil {
		return "", err
	}

	var out struct {
		Rating   string `json:"rating"`
		Feedback string `json:"feedback"`
	}
	if err := resp.Decode(&out); err != nil {
		return "", err
	}
	feedback := strings.TrimSpace(out.Feedback)
	if feedback == "" {
		return "", llm.ErrEmptyResponse
	}
	return out.Rating + ": " + feedback, nil
}

// DeepDiveText is DeepDive without the fallback.
func (s *Service) DeepDiveText(ctx context.Context, question, correctAnswer string) (string, error) {
	prompt, err := render(deepDiveTemplate, struct{ Question, Answer string }{question, correctAnswer})
	if err != nil {
		return "", fmt.Errorf("build deep-dive prompt: %w", err)
	}
	resp, err := s.generate(llm.WithPurpose(ctx, PurposeDeepDive), prompt, nil)
	if err != nil {
		return "", err
	}
	return resp.Text()
}

func (s *Service) generate(ctx context.Context, prompt string, schema *llm.Schema) (*llm.Response, error) {
	if !s.Available() {
		return nil, errNoProvider
	}
	req := llm.UserPrompt(instructorSystemPrompt, prompt)
	req.Schema = schema
	req.MaxTokens = s.cfg.MaxTokens
	req.Temperature = s.cfg.Temperature
	return s.provider.Generate(ctx, req)
}

// collapse maps an error to the matching fallback text.
func (s *Service) collapse(purpose, text string, err error, failed, empty string) string {
	switch {
	case err == nil:
		return text
	case errors.Is(err, llm.ErrEmptyResponse):
		return empty
	default:
		if s != nil {
			s.log.Warn("tutor call failed", "purpose", purpose, "error", err)
		}
		return failed
	}
}
