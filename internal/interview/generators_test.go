package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"intervu/internal/llm"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"reasoning": "A medium BST question should require tree traversal plus an invariant check.",
		"question": "Given the root of a binary tree, determine whether it is a valid binary search tree.",
		"explanation": "Tests understanding of BST invariants and recursive traversal with bounds."
	}`)
}

func validCodingJSON() json.RawMessage {
	return json.RawMessage(`{
		"reasoning": "Hard graph problems should combine traversal with an optimization criterion.",
		"question_title": "Minimum Cost Network",
		"question_description": "Connect all nodes with minimum total edge cost.",
		"input_format": "First line n and m, then m lines u v w.",
		"output_format": "A single integer: the minimum total cost.",
		"constraints": "1 <= n <= 10^5, expected O(m log m).",
		"example": "Input:\n3 3\n1 2 1\n2 3 2\n1 3 3\nOutput:\n3"
	}`)
}

func validMLJSON() json.RawMessage {
	return json.RawMessage(`{
		"reasoning": "Theoretical gradient descent questions should probe convergence behavior.",
		"question": "Why can a large learning rate prevent gradient descent from converging?",
		"key_concepts": "learning rate, convergence, loss curvature",
		"expected_depth": "Should discuss overshooting and divergence with reference to curvature."
	}`)
}

func validFollowUpJSON() json.RawMessage {
	return json.RawMessage(`{
		"reasoning": "Complexity and degenerate inputs are the natural probes.",
		"followup_questions": "1. What is the time complexity of your approach?\n2. How would you handle a skewed tree?"
	}`)
}

func validAssessmentJSON() json.RawMessage {
	return json.RawMessage(`{
		"assessed_difficulty": "medium",
		"reasoning": "Requires applying the BST invariant carefully but no advanced technique."
	}`)
}

func TestQuestionGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := NewQuestionGenerator(mock, DefaultConfig())

	result, err := gen.Generate(context.Background(), QuestionInput{
		Topic:      "binary search trees",
		Type:       TypeCoding,
		Difficulty: DifficultyMedium,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Question == "" {
		t.Error("expected non-empty question")
	}
	if result.Explanation == "" {
		t.Error("expected non-empty explanation")
	}
	if result.Reasoning == "" {
		t.Error("expected non-empty reasoning trace")
	}

	// The request must carry the task schema and the inputs.
	if mock.Calls[0].Schema.Name != QuestionSchema.Name {
		t.Errorf("expected schema %q, got %q", QuestionSchema.Name, mock.Calls[0].Schema.Name)
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"binary search trees", "coding", "medium"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestQuestionGenerator_MissingInputs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := NewQuestionGenerator(mock, DefaultConfig())

	tests := []struct {
		name  string
		input QuestionInput
		field string
	}{
		{"empty topic", QuestionInput{Type: TypeCoding, Difficulty: DifficultyEasy}, "topic"},
		{"empty type", QuestionInput{Topic: "heaps", Difficulty: DifficultyEasy}, "question_type"},
		{"empty difficulty", QuestionInput{Topic: "heaps", Type: TypeCoding}, "difficulty"},
		{"bad difficulty", QuestionInput{Topic: "heaps", Type: TypeCoding, Difficulty: "brutal"}, "difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Generate(context.Background(), tt.input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got: %v", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}

	// Validation failures must not reach the provider.
	if mock.CallCount() != 0 {
		t.Fatalf("expected 0 provider calls, got %d", mock.CallCount())
	}
}

func TestQuestionGenerator_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := NewQuestionGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), QuestionInput{
		Topic:      "hash maps",
		Type:       TypeCoding,
		Difficulty: DifficultyEasy,
	})
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got: %v", err)
	}
	if gerr.Stage != "question" {
		t.Fatalf("expected stage 'question', got %q", gerr.Stage)
	}
	// The underlying provider error stays reachable.
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatal("expected wrapped ErrProviderUnavailable")
	}
}

func TestCodingQuestionGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validCodingJSON()})
	gen := NewCodingQuestionGenerator(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), CodingInput{
		Topic:      "graph algorithms",
		Difficulty: DifficultyHard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Title != "Minimum Cost Network" {
		t.Errorf("unexpected title: %q", q.Title)
	}
	for name, v := range map[string]string{
		"description":   q.Description,
		"input format":  q.InputFormat,
		"output format": q.OutputFormat,
		"constraints":   q.Constraints,
		"example":       q.Example,
	} {
		if v == "" {
			t.Errorf("expected non-empty %s", name)
		}
	}
}

func TestMLQuestionGenerator_DefaultsToMixedStyle(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validMLJSON()})
	gen := NewMLQuestionGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), MLInput{
		Topic:      "gradient descent",
		Difficulty: DifficultyMedium,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Style: mixed") {
		t.Fatalf("expected mixed style in prompt:\n%s", mock.Calls[0].Messages[0].Content)
	}
}

func TestFollowUpGenerator_CountBounds(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"zero rejected", 0, true},
		{"negative rejected", -1, true},
		{"minimum allowed", 1, false},
		{"typical", 3, false},
		{"maximum allowed", 10, false},
		{"above maximum rejected", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: validFollowUpJSON()})
			gen := NewFollowUpGenerator(mock, DefaultConfig())

			_, err := gen.Generate(context.Background(), FollowUpInput{
				OriginalQuestion: "Explain B-tree splits.",
				Topic:            "databases",
				NumFollowUps:     tt.count,
			})
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got: %v", err)
				}
				if mock.CallCount() != 0 {
					t.Fatal("bound violation must not reach the provider")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDifficultyAssessor_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAssessmentJSON()})
	gen := NewDifficultyAssessor(mock, DefaultConfig())

	a, err := gen.Generate(context.Background(), AssessInput{
		Question: "Validate a binary search tree.",
		Topic:    "binary search trees",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Difficulty != DifficultyMedium {
		t.Errorf("expected medium, got %q", a.Difficulty)
	}
	if a.Reasoning == "" {
		t.Error("expected non-empty reasoning")
	}
}

func TestParseQuestionType(t *testing.T) {
	for _, valid := range []string{"coding", "ml_theory", "ml_practical"} {
		if _, err := ParseQuestionType(valid); err != nil {
			t.Errorf("expected %q to parse, got: %v", valid, err)
		}
	}

	_, err := ParseQuestionType("system_design")
	var uerr *UnsupportedTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnsupportedTypeError, got: %v", err)
	}
	if uerr.Type != "system_design" {
		t.Fatalf("error should name the invalid type, got %q", uerr.Type)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, valid := range []string{"easy", "medium", "hard"} {
		if _, err := ParseDifficulty(valid); err != nil {
			t.Errorf("expected %q to parse, got: %v", valid, err)
		}
	}
	if _, err := ParseDifficulty("extreme"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

