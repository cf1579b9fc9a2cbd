package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the rest of Intervue uses to talk to
// an LLM. The answer grader and the report generator both sit on top of it.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role, e.g. the strict-grader persona.
	System string

	// Messages is the conversation. Grading and reporting are single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, constrains the response to JSON conforming to it.
	// When nil the response Content is raw text.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero (the default) keeps grading repeatable.
	Temperature float64
}

// Message is a single conversation entry.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "answer-grade".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output plus accounting metadata.
type Response struct {
	// Content is the generated output: validated JSON when the request had
	// a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
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
