package llm

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderGroq {
		t.Fatalf("expected groq default, got %q", cfg.Provider)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Fatalf("expected a single attempt by default, got %d", cfg.Retry.MaxAttempts)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"mock", func(c *Config) { c.Provider = ProviderMock }, false},
		{"anthropic friendly model", func(c *Config) { c.Provider = ProviderAnthropic }, false},
		{"groq without model", func(c *Config) { c.Groq.Model = "" }, true},
		{"unknown provider", func(c *Config) { c.Provider = "unknown" }, true},
		{"zero attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_WithAPIKeyTargetsSelectedProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderAnthropic
	got := cfg.WithAPIKey("sk-ant")
	if got.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("expected anthropic key set, got %q", got.Anthropic.APIKey)
	}
	if got.Groq.APIKey != "" {
		t.Fatal("groq key should be untouched")
	}
	if cfg.Anthropic.APIKey != "" {
		t.Fatal("WithAPIKey must not mutate the receiver")
	}
}

func TestConfig_Model(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Model(); got != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected groq model %q", got)
	}
	cfg.Provider = ProviderAnthropic
	if got := cfg.Model(); got != "claude-haiku-4-5-20251001" {
		t.Fatalf("unexpected anthropic model %q", got)
	}
}

func TestConfig_EnvAPIKey(t *testing.T) {
	t.Setenv("TASKSCORE_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "gsk-env")

	key, ok := DefaultConfig().EnvAPIKey()
	if !ok || key != "gsk-env" {
		t.Fatalf("expected gsk-env from GROQ_API_KEY, got %q (%v)", key, ok)
	}

	t.Setenv("TASKSCORE_API_KEY", "generic")
	key, _ = DefaultConfig().EnvAPIKey()
	if key != "generic" {
		t.Fatalf("expected TASKSCORE_API_KEY to take priority, got %q", key)
	}
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, DefaultConfig(), "gsk-test", nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected model %q", p.ModelID())
	}
	if _, ok := p.(*TimeoutProvider); !ok {
		t.Fatalf("expected timeout to be the outermost decorator, got %T", p)
	}

	if _, err := NewProvider(ctx, DefaultConfig(), "", nil, zerolog.Nop()); err == nil {
		t.Fatal("expected error without an API key")
	}

	cfg := DefaultConfig()
	cfg.Provider = "bogus"
	if _, err := NewProvider(ctx, cfg, "k", nil, zerolog.Nop()); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
