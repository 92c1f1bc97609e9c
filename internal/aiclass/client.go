// Package aiclass classifies a task description into a difficulty tier by
// asking a chat-completion model and validating its JSON reply.
package aiclass

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abhisek/taskscore/internal/llm"
)

// Generation parameters for every classification request.
const (
	MaxTokens   = 200
	Temperature = 0.1
	TopP        = 0.9
)

// ProviderFactory builds a provider authenticated with apiKey.
type ProviderFactory func(ctx context.Context, apiKey string) (llm.Provider, error)

// Analysis is a validated, range-corrected classification.
type Analysis struct {
	Tier         Tier
	Points       int
	Confidence   *float64
	Reasoning    string
	TimeEstimate string
	Complexity   *float64
	Rationale    string
	Model        string
}

// Client sends a task to the remote model and turns the reply into an
// Analysis. Providers are cached per credential.
type Client struct {
	newProvider ProviderFactory
	diag        *Diagnostics
	logger      zerolog.Logger

	mu        sync.Mutex
	cachedKey string
	cached    llm.Provider
}

// NewClient creates a Client. diag must not be nil.
func NewClient(factory ProviderFactory, diag *Diagnostics, logger zerolog.Logger) *Client {
	return &Client{newProvider: factory, diag: diag, logger: logger}
}

// Diagnostics returns the counters the client updates.
func (c *Client) Diagnostics() *Diagnostics {
	return c.diag
}

// Classify makes exactly one provider request for text using credential.
func (c *Client) Classify(ctx context.Context, text, credential string) (*Analysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Reason: "task text is empty"}
	}
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, &ValidationError{Reason: "API key is empty"}
	}

	c.diag.RecordRequest()

	a, err := c.classify(ctx, text, credential)
	if err != nil {
		c.diag.RecordError(err)
		return nil, err
	}
	c.diag.ClearError()
	return a, nil
}

func (c *Client) classify(ctx context.Context, text, credential string) (*Analysis, error) {
	p, err := c.provider(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeClassification)
	resp, err := p.Generate(ctx, llm.UserPrompt(BuildPrompt(text), MaxTokens, Temperature, TopP))
	if err != nil {
		var empty *llm.ErrEmptyResponse
		if errors.As(err, &empty) {
			return nil, &ResponseParseError{Err: err}
		}
		return nil, err
	}

	c.logger.Debug().Str("model", resp.Model).Str("content", resp.Content).Msg("classification reply")

	content := stripFences(resp.Content)
	if content == "" {
		return nil, &ResponseParseError{Content: resp.Content, Err: errors.New("no content in response")}
	}

	raw, err := decodeAnalysis(content)
	if err != nil {
		return nil, err
	}

	info, ok := LookupTier(raw.Tier)
	if !ok {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown tier %q", raw.Tier)}
	}

	a := &Analysis{
		Tier:       info.Tier,
		Points:     info.Clamp(raw.Points),
		Confidence: clampPtr(raw.Confidence, 0, 100),
		Reasoning:  strings.TrimSpace(raw.Reasoning),
		Complexity: clampPtr(raw.Complexity, 0, 1),
		Model:      resp.Model,
	}
	if a.Model == "" {
		a.Model = p.ModelID()
	}
	if raw.TimeEstimate != nil {
		a.TimeEstimate = strings.TrimSpace(*raw.TimeEstimate)
	}
	if a.Points != int(raw.Points) {
		c.logger.Debug().Float64("points", raw.Points).Int("clamped", a.Points).Str("tier", string(a.Tier)).Msg("points corrected into tier range")
	}
	a.Rationale = fmt.Sprintf("%s %s: %s", info.Icon, info.Name, a.Reasoning)
	return a, nil
}

// provider returns the cached provider for credential, building a new one
// when the credential changes.
func (c *Client) provider(ctx context.Context, credential string) (llm.Provider, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached != nil && c.cachedKey == credential {
		return c.cached, nil
	}
	p, err := c.newProvider(ctx, credential)
	if err != nil {
		return nil, err
	}
	c.cached, c.cachedKey = p, credential
	return p, nil
}

// Reset drops the cached provider.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached, c.cachedKey = nil, ""
}

func clampPtr(v *float64, lo, hi float64) *float64 {
	if v == nil {
		return nil
	}
	x := min(max(*v, lo), hi)
	return &x
}
