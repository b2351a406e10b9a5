package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

func TestBuildOpenAIMessages_SystemFirst(t *testing.T) {
	req := Request{
		System: "You write interview questions.",
		Messages: []Message{
			{Role: RoleUser, Content: "Topic: heaps"},
			{Role: RoleAssistant, Content: "ok"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("expected system role first, got %q", msgs[0].Role)
	}
	if msgs[1].Role != openai.ChatMessageRoleUser || msgs[1].Content != "Topic: heaps" {
		t.Fatalf("unexpected user message: %+v", msgs[1])
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Fatalf("expected assistant role, got %q", msgs[2].Role)
	}
}

func TestBuildOpenAIMessages_NoSystem(t *testing.T) {
	msgs := buildOpenAIMessages(Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
}

func TestBuildAnthropicMessages_Roles(t *testing.T) {
	out := buildAnthropicMessages([]Message{
		{Role: RoleUser, Content: "a"},
		{Role: RoleAssistant, Content: "b"},
	})
	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
	if out[0].Role != "user" || out[1].Role != "assistant" {
		t.Fatalf("unexpected roles: %q %q", out[0].Role, out[1].Role)
	}
}

func TestBuildGeminiSchema_Conversion(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "A question",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"style": map[string]any{
				"type": "string",
				"enum": []any{"theoretical", "practical"},
			},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question"},
	}

	schema := buildGeminiSchema(def)
	if schema.Type != genai.TypeObject {
		t.Fatalf("expected object type, got %v", schema.Type)
	}
	if schema.Description != "A question" {
		t.Fatalf("unexpected description: %q", schema.Description)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["question"].Type != genai.TypeString {
		t.Fatal("question should be a string")
	}
	if len(schema.Properties["style"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["style"].Enum))
	}
	if schema.Properties["tags"].Items == nil || schema.Properties["tags"].Items.Type != genai.TypeString {
		t.Fatal("tags items should be strings")
	}
	if len(schema.Required) != 1 || schema.Required[0] != "question" {
		t.Fatalf("unexpected required: %v", schema.Required)
	}
}

func TestStopReasonMapping(t *testing.T) {
	if got := mapOpenAIStopReason(openai.FinishReasonStop); got != "end" {
		t.Fatalf("expected end, got %q", got)
	}
	if got := mapOpenAIStopReason(openai.FinishReasonLength); got != "max_tokens" {
		t.Fatalf("expected max_tokens, got %q", got)
	}
	if got := mapAnthropicStopReason("end_turn"); got != "end" {
		t.Fatalf("expected end, got %q", got)
	}
	if got := mapAnthropicStopReason("max_tokens"); got != "max_tokens" {
		t.Fatalf("expected max_tokens, got %q", got)
	}
}
