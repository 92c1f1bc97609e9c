package llm

import (
	"context"
)

// Provider sends a single completion request to a hosted language model.
// Implementations return the model's text reply untouched; callers own
// parsing and validation of whatever the model produced.
type Provider interface {
	// Generate issues one completion request and returns the reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is an optional system prompt.
	System string

	// Messages is the conversation. Task classification sends exactly one
	// user message holding the instructions and the task text.
	Messages []Message

	// MaxTokens bounds the reply length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// TopP is nucleus sampling. Zero leaves the provider default.
	TopP float64
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

// Response holds the model's output.
type Response struct {
	// Content is the reply text of the first choice.
	Content string

	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request around content.
func UserPrompt(content string, maxTokens int, temperature, topP float64) Request {
	return Request{
		Messages:    []Message{{Role: RoleUser, Content: content}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
	}
}
