package llm

import (
	"fmt"
	"os"
)

// Config holds all LLM provider configuration. Requests carry no
// deadline and are never retried; a failed call surfaces immediately so
// the tutor can fall back to its canned text.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	Provider string

	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
	}
}

// ConfigFromEnv builds a Config from SAFETYPRO_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.Provider, "SAFETYPRO_LLM_PROVIDER")

	setFromEnv(&cfg.Gemini.APIKey, "SAFETYPRO_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "SAFETYPRO_GEMINI_MODEL")

	setFromEnv(&cfg.Anthropic.APIKey, "SAFETYPRO_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "SAFETYPRO_ANTHROPIC_MODEL")

	setFromEnv(&cfg.OpenAI.APIKey, "SAFETYPRO_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "SAFETYPRO_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "SAFETYPRO_OPENAI_BASE_URL")

	setFromEnv(&cfg.OpenRouter.APIKey, "SAFETYPRO_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "SAFETYPRO_OPENROUTER_MODEL")
	setFromEnv(&cfg.OpenRouter.BaseURL, "SAFETYPRO_OPENROUTER_BASE_URL")

	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' standard API key variables in
// priority order (Gemini → OpenAI → Anthropic → OpenRouter) and returns
// a Config for the first provider whose key is found. A bare API_KEY is
// taken as a Gemini key. Returns (Config{}, false) if none is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	for _, key := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if k := os.Getenv(key); k != "" {
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = k
			return cfg, true
		}
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// ResolveConfig prefers an explicit SAFETYPRO_* configuration and falls
// back to discovery when the selected provider has no key.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	} else if os.Getenv("SAFETYPRO_LLM_PROVIDER") != "" {
		return Config{}, err
	}

	if discovered, ok := DiscoverConfig(); ok {
		return discovered, nil
	}
	return Config{}, fmt.Errorf("no LLM API key found (set GEMINI_API_KEY or SAFETYPRO_LLM_PROVIDER)")
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("SAFETYPRO_GEMINI_API_KEY is required for the gemini provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("SAFETYPRO_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("SAFETYPRO_OPENAI_API_KEY is required for the openai provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("SAFETYPRO_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
