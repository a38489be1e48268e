// Package llm talks to hosted language models. watcrack only uses it to
// generate fresh essay prompts; responses are never scored by a model.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt and returns the model output. When the
	// request carries a Schema the output is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Namer is implemented by providers that report their vendor name.
type Namer interface {
	Name() string
}

// ProviderName returns p's vendor name, or its model ID when it has none.
func ProviderName(p Provider) string {
	if n, ok := p.(Namer); ok {
		return n.Name()
	}
	return p.ModelID()
}

// Purpose labels why a request was made. It is recorded with every logged
// LLM event and is what `watcrack llm usage` groups by.
type Purpose string

const (
	// PurposeTopicGen is a request for new essay prompts.
	PurposeTopicGen Purpose = "topic-gen"

	// PurposeUntagged is recorded for requests that carry no purpose.
	PurposeUntagged Purpose = "untagged"
)

// Stop reasons reported in Response.StopReason.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Request describes what to send to the LLM.
type Request struct {
	// Purpose labels the request in the event log.
	Purpose Purpose

	// System is the system prompt. Providers append a JSON-only
	// instruction to it when Schema is set.
	System string

	// Messages is the conversation, usually a single user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil the
	// response Content is the raw text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0.
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

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema, kebab-case, e.g. "wat-topics".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the validated JSON object when a Schema was requested,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
