package interview

import (
	"context"
	"fmt"

	"intervu/internal/llm"
)

// InterviewPipeline chains question generation, follow-up generation
// and difficulty assessment into one merged result. Stages run
// strictly in order and a stage failure aborts the pipeline; no
// partial result is returned.
type InterviewPipeline struct {
	question  *QuestionGenerator
	followups *FollowUpGenerator
	assessor  *DifficultyAssessor
}

// NewInterviewPipeline creates a pipeline backed by one provider.
func NewInterviewPipeline(provider llm.Provider, cfg Config) *InterviewPipeline {
	return &InterviewPipeline{
		question:  NewQuestionGenerator(provider, cfg),
		followups: NewFollowUpGenerator(provider, cfg),
		assessor:  NewDifficultyAssessor(provider, cfg),
	}
}

// Generate runs the three stages and merges their outputs. The
// follow-up and assessment stages both depend only on the generated
// question; they are still executed sequentially. Input validation
// happens before the first stage runs, so a bad follow-up count never
// costs a provider call.
func (p *InterviewPipeline) Generate(ctx context.Context, input PipelineInput) (*PipelineResult, error) {
	if err := requireFollowUpCount(input.NumFollowUps); err != nil {
		return nil, err
	}

	question, err := p.question.Generate(ctx, QuestionInput{
		Topic:      input.Topic,
		Type:       input.Type,
		Difficulty: input.Difficulty,
	})
	if err != nil {
		return nil, err
	}

	followups, err := p.followups.Generate(ctx, FollowUpInput{
		OriginalQuestion: question.Question,
		Topic:            input.Topic,
		NumFollowUps:     input.NumFollowUps,
	})
	if err != nil {
		return nil, err
	}

	assessment, err := p.assessor.Generate(ctx, AssessInput{
		Question: question.Question,
		Topic:    input.Topic,
	})
	if err != nil {
		return nil, err
	}

	return &PipelineResult{
		Question:            question.Question,
		Explanation:         question.Explanation,
		RequestedDifficulty: input.Difficulty,
		AssessedDifficulty:  assessment.Difficulty,
		DifficultyReasoning: assessment.Reasoning,
		FollowUpQuestions:   followups.Questions,
	}, nil
}

// CompleteInterviewGenerator dispatches to the specialized generator
// for the requested question type and then generates follow-ups for
// the resulting main question.
type CompleteInterviewGenerator struct {
	coding    *CodingQuestionGenerator
	ml        *MLQuestionGenerator
	followups *FollowUpGenerator
}

// NewCompleteInterviewGenerator creates the dispatching generator.
func NewCompleteInterviewGenerator(provider llm.Provider, cfg Config) *CompleteInterviewGenerator {
	return &CompleteInterviewGenerator{
		coding:    NewCodingQuestionGenerator(provider, cfg),
		ml:        NewMLQuestionGenerator(provider, cfg),
		followups: NewFollowUpGenerator(provider, cfg),
	}
}

// Generate produces a full interview set for the requested type.
// Unknown question types fail with UnsupportedTypeError and bad
// follow-up counts fail with ValidationError, both before any
// generator runs.
func (g *CompleteInterviewGenerator) Generate(ctx context.Context, input PipelineInput) (*InterviewSet, error) {
	if err := requireFollowUpCount(input.NumFollowUps); err != nil {
		return nil, err
	}

	var mainQuestion string
	var details Details

	switch input.Type {
	case TypeCoding:
		coding, err := g.coding.Generate(ctx, CodingInput{
			Topic:      input.Topic,
			Difficulty: input.Difficulty,
		})
		if err != nil {
			return nil, err
		}
		mainQuestion = RenderCodingQuestion(coding)
		details.Coding = coding

	case TypeMLTheory:
		ml, err := g.ml.Generate(ctx, MLInput{
			Topic:      input.Topic,
			Difficulty: input.Difficulty,
			Style:      StyleTheoretical,
		})
		if err != nil {
			return nil, err
		}
		mainQuestion = ml.Question
		details.ML = ml

	case TypeMLPractical:
		ml, err := g.ml.Generate(ctx, MLInput{
			Topic:      input.Topic,
			Difficulty: input.Difficulty,
			Style:      StylePractical,
		})
		if err != nil {
			return nil, err
		}
		mainQuestion = ml.Question
		details.ML = ml

	default:
		return nil, &UnsupportedTypeError{Type: string(input.Type)}
	}

	followups, err := g.followups.Generate(ctx, FollowUpInput{
		OriginalQuestion: mainQuestion,
		Topic:            input.Topic,
		NumFollowUps:     input.NumFollowUps,
	})
	if err != nil {
		return nil, err
	}

	return &InterviewSet{
		Question:          mainQuestion,
		Details:           details,
		Difficulty:        input.Difficulty,
		FollowUpQuestions: followups.Questions,
	}, nil
}

// RenderCodingQuestion flattens a structured coding problem into the
// display form used as the main question. The section order and
// separators are fixed.
func RenderCodingQuestion(c *CodingQuestion) string {
	return fmt.Sprintf("%s\n\n%s\n\nInput: %s\nOutput: %s\n\nConstraints: %s\n\nExample:\n%s",
		c.Title, c.Description, c.InputFormat, c.OutputFormat, c.Constraints, c.Example)
}
