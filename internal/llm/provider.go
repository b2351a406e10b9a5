package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the rest of intervu uses to talk
// to an LLM. Callers describe the task with a Request and get back
// structured JSON.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its response.
	// When the request carries a Schema, the provider asks for (and
	// validates) JSON conforming to that schema; Content is then the
	// validated JSON object.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// System is the system prompt establishing the LLM's role.
	System string

	// Messages is the conversation. Every generation in intervu is
	// single-turn, so this holds one user message in practice.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must satisfy.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero value means
	// deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
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

// Schema declares the JSON structure expected from the LLM for one
// task. The interview package defines one Schema per generation task.
type Schema struct {
	// Name identifies the schema. Kebab-case, e.g. "coding-question".
	// Used as the tool/schema name where providers require one.
	Name string

	// Description tells the LLM what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. With a Schema in the request
	// this is the schema-validated JSON object; without one it is the
	// raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is why generation stopped, normalized to
	// "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
