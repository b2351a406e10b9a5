package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"intervu/internal/llm"
)

// Each generator binds one task schema to the LLM provider and exposes
// a single Generate operation. Inputs are validated before any call
// goes out; provider and parse failures wrap into GenerationError
// naming the stage.

// QuestionGenerator produces a general interview question.
type QuestionGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewQuestionGenerator creates a question generator.
func NewQuestionGenerator(provider llm.Provider, cfg Config) *QuestionGenerator {
	return &QuestionGenerator{provider: provider, cfg: cfg}
}

type questionOutput struct {
	Reasoning   string `json:"reasoning"`
	Question    string `json:"question"`
	Explanation string `json:"explanation"`
}

// Generate produces a question for the given topic, type and difficulty.
func (g *QuestionGenerator) Generate(ctx context.Context, input QuestionInput) (*QuestionResult, error) {
	if err := requireText("topic", input.Topic); err != nil {
		return nil, err
	}
	if err := requireText("question_type", string(input.Type)); err != nil {
		return nil, err
	}
	if err := requireDifficulty(input.Difficulty); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "question-gen")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionUserMessage(input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "question", Err: err}
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Stage: "question", Err: fmt.Errorf("parse response: %w", err)}
	}

	return &QuestionResult{
		Reasoning:   raw.Reasoning,
		Question:    raw.Question,
		Explanation: raw.Explanation,
	}, nil
}

// CodingQuestionGenerator produces structured coding problems.
type CodingQuestionGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewCodingQuestionGenerator creates a coding question generator.
func NewCodingQuestionGenerator(provider llm.Provider, cfg Config) *CodingQuestionGenerator {
	return &CodingQuestionGenerator{provider: provider, cfg: cfg}
}

type codingOutput struct {
	Reasoning           string `json:"reasoning"`
	QuestionTitle       string `json:"question_title"`
	QuestionDescription string `json:"question_description"`
	InputFormat         string `json:"input_format"`
	OutputFormat        string `json:"output_format"`
	Constraints         string `json:"constraints"`
	Example             string `json:"example"`
}

// Generate produces a coding problem for the given topic and difficulty.
func (g *CodingQuestionGenerator) Generate(ctx context.Context, input CodingInput) (*CodingQuestion, error) {
	if err := requireText("topic", input.Topic); err != nil {
		return nil, err
	}
	if err := requireDifficulty(input.Difficulty); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "coding-gen")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: codingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCodingUserMessage(input)},
		},
		Schema:      CodingQuestionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "coding question", Err: err}
	}

	var raw codingOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Stage: "coding question", Err: fmt.Errorf("parse response: %w", err)}
	}

	return &CodingQuestion{
		Reasoning:    raw.Reasoning,
		Title:        raw.QuestionTitle,
		Description:  raw.QuestionDescription,
		InputFormat:  raw.InputFormat,
		OutputFormat: raw.OutputFormat,
		Constraints:  raw.Constraints,
		Example:      raw.Example,
	}, nil
}

// MLQuestionGenerator produces machine-learning interview questions.
type MLQuestionGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewMLQuestionGenerator creates an ML question generator.
func NewMLQuestionGenerator(provider llm.Provider, cfg Config) *MLQuestionGenerator {
	return &MLQuestionGenerator{provider: provider, cfg: cfg}
}

type mlOutput struct {
	Reasoning     string `json:"reasoning"`
	Question      string `json:"question"`
	KeyConcepts   string `json:"key_concepts"`
	ExpectedDepth string `json:"expected_depth"`
}

// Generate produces an ML question. An empty style defaults to mixed.
func (g *MLQuestionGenerator) Generate(ctx context.Context, input MLInput) (*MLQuestion, error) {
	if err := requireText("topic", input.Topic); err != nil {
		return nil, err
	}
	if err := requireDifficulty(input.Difficulty); err != nil {
		return nil, err
	}
	if input.Style == "" {
		input.Style = StyleMixed
	}

	ctx = llm.WithPurpose(ctx, "ml-gen")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: mlSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildMLUserMessage(input)},
		},
		Schema:      MLQuestionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "ML question", Err: err}
	}

	var raw mlOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Stage: "ML question", Err: fmt.Errorf("parse response: %w", err)}
	}

	return &MLQuestion{
		Reasoning:     raw.Reasoning,
		Question:      raw.Question,
		KeyConcepts:   raw.KeyConcepts,
		ExpectedDepth: raw.ExpectedDepth,
	}, nil
}

// FollowUpGenerator produces follow-up questions for a main question.
type FollowUpGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewFollowUpGenerator creates a follow-up generator.
func NewFollowUpGenerator(provider llm.Provider, cfg Config) *FollowUpGenerator {
	return &FollowUpGenerator{provider: provider, cfg: cfg}
}

type followupOutput struct {
	Reasoning         string `json:"reasoning"`
	FollowUpQuestions string `json:"followup_questions"`
}

// Generate produces NumFollowUps follow-up questions. The count must
// be within [MinFollowUps, MaxFollowUps]; zero is rejected.
func (g *FollowUpGenerator) Generate(ctx context.Context, input FollowUpInput) (*FollowUpResult, error) {
	if err := requireText("original_question", input.OriginalQuestion); err != nil {
		return nil, err
	}
	if err := requireText("topic", input.Topic); err != nil {
		return nil, err
	}
	if err := requireFollowUpCount(input.NumFollowUps); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "followup-gen")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: followupSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFollowUpUserMessage(input)},
		},
		Schema:      FollowUpSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "follow-up", Err: err}
	}

	var raw followupOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Stage: "follow-up", Err: fmt.Errorf("parse response: %w", err)}
	}

	return &FollowUpResult{
		Reasoning: raw.Reasoning,
		Questions: raw.FollowUpQuestions,
	}, nil
}

// DifficultyAssessor judges how hard a question actually is.
type DifficultyAssessor struct {
	provider llm.Provider
	cfg      Config
}

// NewDifficultyAssessor creates a difficulty assessor.
func NewDifficultyAssessor(provider llm.Provider, cfg Config) *DifficultyAssessor {
	return &DifficultyAssessor{provider: provider, cfg: cfg}
}

type assessOutput struct {
	AssessedDifficulty string `json:"assessed_difficulty"`
	Reasoning          string `json:"reasoning"`
}

// Generate assesses the difficulty of a question.
func (g *DifficultyAssessor) Generate(ctx context.Context, input AssessInput) (*Assessment, error) {
	if err := requireText("question", input.Question); err != nil {
		return nil, err
	}
	if err := requireText("topic", input.Topic); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "difficulty-assess")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: assessSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAssessUserMessage(input)},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "difficulty assessment", Err: err}
	}

	var raw assessOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Stage: "difficulty assessment", Err: fmt.Errorf("parse response: %w", err)}
	}

	return &Assessment{
		Difficulty: Difficulty(raw.AssessedDifficulty),
		Reasoning:  raw.Reasoning,
	}, nil
}

func requireText(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}

func requireFollowUpCount(n int) error {
	if n < MinFollowUps || n > MaxFollowUps {
		return &ValidationError{
			Field:  "num_followups",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", MinFollowUps, MaxFollowUps, n),
		}
	}
	return nil
}

func requireDifficulty(d Difficulty) error {
	if d == "" {
		return &ValidationError{Field: "difficulty", Reason: "must not be empty"}
	}
	if !d.valid() {
		return &ValidationError{Field: "difficulty", Reason: "must be easy, medium or hard, got " + quoted(string(d))}
	}
	return nil
}
