package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider against any OpenAI-compatible chat
// completions endpoint. Groq, OpenAI and OpenRouter all go through it.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI-compatible provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &OpenAIProvider{
		client: newOpenAIClient(config),
		model:  cfg.Model,
	}, nil
}

// newOpenAIClient builds an SDK client whose transport keeps the raw body
// of non-success responses.
func newOpenAIClient(config openai.ClientConfig) *openai.Client {
	config.HTTPClient = &errorBodyRecorder{next: config.HTTPClient}
	return openai.NewClientWithConfig(config)
}

type rawBodyKey struct{}

// rawBody receives the error response body of one request.
type rawBody struct {
	data []byte
}

const maxErrorBody = 64 << 10

// errorBodyRecorder copies the body of a 4xx/5xx response into the rawBody
// attached to the request context, then hands the SDK an identical reader.
type errorBodyRecorder struct {
	next interface {
		Do(*http.Request) (*http.Response, error)
	}
}

func (r *errorBodyRecorder) Do(req *http.Request) (*http.Response, error) {
	resp, err := r.next.Do(req)
	if err != nil || resp.StatusCode < http.StatusBadRequest {
		return resp, err
	}
	holder, _ := req.Context().Value(rawBodyKey{}).(*rawBody)
	if holder == nil {
		return resp, nil
	}
	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if readErr == nil {
		holder.data = data
	}
	return resp, nil
}

// NewGroqProvider creates a provider for Groq's OpenAI-compatible API.
func NewGroqProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGroqBaseURL
	}
	return NewOpenAIProvider(cfg)
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    buildOpenAIMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
		TopP:        float32(req.TopP),
	}

	var raw rawBody
	resp, err := p.client.CreateChatCompletion(context.WithValue(ctx, rawBodyKey{}, &raw), chatReq)
	if err != nil {
		return nil, mapOpenAIError(err, raw.data)
	}

	if len(resp.Choices) == 0 {
		return nil, &ErrEmptyResponse{Model: p.model}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, &ErrEmptyResponse{Model: p.model}
	}

	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:      resp.Model,
		StopReason: mapOpenAIStopReason(resp.Choices[0].FinishReason),
	}, nil
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func buildOpenAIMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}

	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	return messages
}

func mapOpenAIStopReason(reason openai.FinishReason) string {
	if reason == openai.FinishReasonLength {
		return "max_tokens"
	}
	return "end"
}

// mapOpenAIError turns SDK errors into HTTPError for non-success statuses
// and ErrProviderUnavailable for transport failures. raw is the recorded
// response body; the SDK's parsed message is used only when it is missing.
func mapOpenAIError(err error, raw []byte) error {
	var httpErr *HTTPError

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		httpErr = &HTTPError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message, Err: err}
	case errors.As(err, &reqErr):
		httpErr = &HTTPError{StatusCode: reqErr.HTTPStatusCode, Body: string(reqErr.Body), Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
	if body := strings.TrimSpace(string(raw)); body != "" {
		httpErr.Body = body
	}

	if httpErr.StatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: httpErr}
	}
	return httpErr
}
