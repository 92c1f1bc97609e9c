package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGroq       = "groq"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// Config holds all LLM provider configuration. API keys are not part of
// it: the caller supplies the credential when a provider is built.
type Config struct {
	// Provider selects which backend serves completions.
	Provider string `mapstructure:"provider" validate:"oneof=groq openai anthropic gemini openrouter mock"`

	Groq       OpenAIConfig     `mapstructure:"groq"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Retry      RetryConfig      `mapstructure:"retry"`

	// Timeout bounds a single classification request, retries included.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`

	// Concurrency caps how many requests a batch keeps in flight.
	Concurrency int `mapstructure:"concurrency" validate:"gte=1,lte=32"`
}

// OpenAIConfig configures any OpenAI-compatible chat completions API.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"-"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string `mapstructure:"-"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string `mapstructure:"-"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `mapstructure:"-"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// RetryConfig configures retry behavior for transient failures.
// MaxAttempts of 1 means a single request with no retry.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"gte=1,lte=5"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier" validate:"gte=1"`
}

// DefaultConfig returns a Config pointed at Groq with a 10s bound.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGroq,
		Groq: OpenAIConfig{
			Model:   "llama-3.3-70b-versatile",
			BaseURL: defaultGroqBaseURL,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "meta-llama/llama-3.3-70b-instruct",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     2 * time.Second,
			Multiplier:  2.0,
		},
		Timeout:     10 * time.Second,
		Concurrency: 4,
	}
}

// Model returns the configured model for the selected provider.
func (c Config) Model() string {
	switch c.Provider {
	case ProviderGroq:
		return c.Groq.Model
	case ProviderOpenAI:
		return c.OpenAI.Model
	case ProviderAnthropic:
		return resolveModel(c.Anthropic.Model, anthropicModels)
	case ProviderGemini:
		return resolveModel(c.Gemini.Model, geminiModels)
	case ProviderOpenRouter:
		return c.OpenRouter.Model
	default:
		return c.Provider
	}
}

// WithAPIKey returns a copy of c with key set on the selected provider.
func (c Config) WithAPIKey(key string) Config {
	switch c.Provider {
	case ProviderGroq:
		c.Groq.APIKey = key
	case ProviderOpenAI:
		c.OpenAI.APIKey = key
	case ProviderAnthropic:
		c.Anthropic.APIKey = key
	case ProviderGemini:
		c.Gemini.APIKey = key
	case ProviderOpenRouter:
		c.OpenRouter.APIKey = key
	}
	return c
}

// EnvAPIKey probes the conventional environment variables for the selected
// provider and returns the first key found.
func (c Config) EnvAPIKey() (string, bool) {
	names := []string{"TASKSCORE_API_KEY"}
	switch c.Provider {
	case ProviderGroq:
		names = append(names, "GROQ_API_KEY")
	case ProviderOpenAI:
		names = append(names, "OPENAI_API_KEY")
	case ProviderAnthropic:
		names = append(names, "ANTHROPIC_API_KEY")
	case ProviderGemini:
		names = append(names, "GEMINI_API_KEY")
	case ProviderOpenRouter:
		names = append(names, "OPENROUTER_API_KEY")
	}
	for _, n := range names {
		if k := os.Getenv(n); k != "" {
			return k, true
		}
	}
	return "", false
}

// Validate checks that the selected provider is known and has a model.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGroq, ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderOpenRouter:
		if c.Model() == "" {
			return fmt.Errorf("a model is required for the %s provider", c.Provider)
		}
	case ProviderMock:
		// No model needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be >= 1")
	}
	return nil
}
