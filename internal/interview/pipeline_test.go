package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"intervu/internal/llm"
)

func TestInterviewPipeline_Generate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuestionJSON()},
		llm.MockResponse{Content: validFollowUpJSON()},
		llm.MockResponse{Content: validAssessmentJSON()},
	)
	pipe := NewInterviewPipeline(mock, DefaultConfig())

	result, err := pipe.Generate(context.Background(), PipelineInput{
		Topic:        "binary search trees",
		Type:         TypeCoding,
		Difficulty:   DifficultyHard,
		NumFollowUps: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 provider calls, got %d", mock.CallCount())
	}
	if result.Question == "" || result.Explanation == "" {
		t.Error("expected merged question and explanation")
	}
	if result.FollowUpQuestions == "" {
		t.Error("expected merged follow-up questions")
	}
	// The requested difficulty passes through untouched even when the
	// assessment disagrees.
	if result.RequestedDifficulty != DifficultyHard {
		t.Errorf("requested difficulty changed: %q", result.RequestedDifficulty)
	}
	if result.AssessedDifficulty != DifficultyMedium {
		t.Errorf("expected assessed medium, got %q", result.AssessedDifficulty)
	}
	if result.DifficultyReasoning == "" {
		t.Error("expected assessment reasoning")
	}
}

func TestInterviewPipeline_StageOrder(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuestionJSON()},
		llm.MockResponse{Content: validFollowUpJSON()},
		llm.MockResponse{Content: validAssessmentJSON()},
	)
	pipe := NewInterviewPipeline(mock, DefaultConfig())

	_, err := pipe.Generate(context.Background(), PipelineInput{
		Topic:        "hash maps",
		Type:         TypeCoding,
		Difficulty:   DifficultyEasy,
		NumFollowUps: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{QuestionSchema.Name, FollowUpSchema.Name, AssessmentSchema.Name}
	for i, name := range want {
		if mock.Calls[i].Schema.Name != name {
			t.Errorf("call %d: expected schema %q, got %q", i, name, mock.Calls[i].Schema.Name)
		}
	}
}

func TestInterviewPipeline_FailFast(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")},
	})
	pipe := NewInterviewPipeline(mock, DefaultConfig())

	_, err := pipe.Generate(context.Background(), PipelineInput{
		Topic:        "recursion",
		Type:         TypeCoding,
		Difficulty:   DifficultyEasy,
		NumFollowUps: 2,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	// Later stages must not run after the first failure.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestInterviewPipeline_CountValidatedBeforeGeneration(t *testing.T) {
	for _, count := range []int{0, -1, 11} {
		mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
		pipe := NewInterviewPipeline(mock, DefaultConfig())

		_, err := pipe.Generate(context.Background(), PipelineInput{
			Topic:        "dynamic programming",
			Type:         TypeCoding,
			Difficulty:   DifficultyMedium,
			NumFollowUps: count,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("count %d: expected ValidationError, got: %v", count, err)
		}
		// The bad count must be caught before the question stage spends
		// a provider call.
		if mock.CallCount() != 0 {
			t.Fatalf("count %d: expected 0 provider calls, got %d", count, mock.CallCount())
		}
	}
}

func TestCompleteInterviewGenerator_CountValidatedBeforeGeneration(t *testing.T) {
	for _, count := range []int{0, -1, 11} {
		mock := llm.NewMockProvider(llm.MockResponse{Content: validCodingJSON()})
		gen := NewCompleteInterviewGenerator(mock, DefaultConfig())

		_, err := gen.Generate(context.Background(), PipelineInput{
			Topic:        "dynamic programming",
			Type:         TypeCoding,
			Difficulty:   DifficultyMedium,
			NumFollowUps: count,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("count %d: expected ValidationError, got: %v", count, err)
		}
		if mock.CallCount() != 0 {
			t.Fatalf("count %d: expected 0 provider calls, got %d", count, mock.CallCount())
		}
	}
}

func TestCompleteInterviewGenerator_Coding(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validCodingJSON()},
		llm.MockResponse{Content: validFollowUpJSON()},
	)
	gen := NewCompleteInterviewGenerator(mock, DefaultConfig())

	set, err := gen.Generate(context.Background(), PipelineInput{
		Topic:        "graph algorithms",
		Type:         TypeCoding,
		Difficulty:   DifficultyHard,
		NumFollowUps: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Details.Coding == nil {
		t.Fatal("expected coding details")
	}
	if set.Details.ML != nil {
		t.Error("unexpected ML details on a coding set")
	}
	if set.Difficulty != DifficultyHard {
		t.Errorf("unexpected difficulty: %q", set.Difficulty)
	}

	// The main question is the rendered form of the structured fields,
	// and the follow-up stage received exactly that text.
	wantQuestion := RenderCodingQuestion(set.Details.Coding)
	if set.Question != wantQuestion {
		t.Errorf("main question mismatch:\n%s", set.Question)
	}
	if !strings.Contains(mock.Calls[1].Messages[0].Content, set.Details.Coding.Title) {
		t.Error("follow-up prompt should reference the main question")
	}
}

func TestRenderCodingQuestion(t *testing.T) {
	q := &CodingQuestion{
		Title:        "Two Sum",
		Description:  "Find indices of two numbers adding to target.",
		InputFormat:  "nums array and target integer",
		OutputFormat: "pair of indices",
		Constraints:  "2 <= len(nums) <= 10^4",
		Example:      "nums=[2,7,11,15], target=9 -> [0,1]",
	}

	got := RenderCodingQuestion(q)
	want := "Two Sum\n\nFind indices of two numbers adding to target.\n\n" +
		"Input: nums array and target integer\nOutput: pair of indices\n\n" +
		"Constraints: 2 <= len(nums) <= 10^4\n\n" +
		"Example:\nnums=[2,7,11,15], target=9 -> [0,1]"
	if got != want {
		t.Errorf("rendered question mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCompleteInterviewGenerator_MLTheory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validMLJSON()},
		llm.MockResponse{Content: validFollowUpJSON()},
	)
	gen := NewCompleteInterviewGenerator(mock, DefaultConfig())

	set, err := gen.Generate(context.Background(), PipelineInput{
		Topic:        "gradient descent",
		Type:         TypeMLTheory,
		Difficulty:   DifficultyMedium,
		NumFollowUps: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Details.ML == nil {
		t.Fatal("expected ML details")
	}
	if set.Question != set.Details.ML.Question {
		t.Error("main question should be the ML question verbatim")
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Style: theoretical") {
		t.Errorf("ml_theory must request the theoretical style:\n%s", mock.Calls[0].Messages[0].Content)
	}
}

func TestCompleteInterviewGenerator_MLPractical(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validMLJSON()},
		llm.MockResponse{Content: validFollowUpJSON()},
	)
	gen := NewCompleteInterviewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), PipelineInput{
		Topic:        "feature engineering",
		Type:         TypeMLPractical,
		Difficulty:   DifficultyMedium,
		NumFollowUps: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Style: practical") {
		t.Errorf("ml_practical must request the practical style:\n%s", mock.Calls[0].Messages[0].Content)
	}
}

func TestCompleteInterviewGenerator_UnsupportedType(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := NewCompleteInterviewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), PipelineInput{
		Topic:        "system design",
		Type:         QuestionType("system_design"),
		Difficulty:   DifficultyMedium,
		NumFollowUps: 2,
	})
	var uerr *UnsupportedTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnsupportedTypeError, got: %v", err)
	}
	// Dispatch happens before any generation.
	if mock.CallCount() != 0 {
		t.Fatalf("expected 0 provider calls, got %d", mock.CallCount())
	}
}

func TestCompleteInterviewGenerator_FollowUpFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validCodingJSON()},
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("truncated")}},
	)
	gen := NewCompleteInterviewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), PipelineInput{
		Topic:        "sorting",
		Type:         TypeCoding,
		Difficulty:   DifficultyEasy,
		NumFollowUps: 2,
	})
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got: %v", err)
	}
	if gerr.Stage != "follow-up" {
		t.Fatalf("expected follow-up stage, got %q", gerr.Stage)
	}
}
