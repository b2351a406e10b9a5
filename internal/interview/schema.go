package interview

import "intervu/internal/llm"

// Every schema leads with a "reasoning" field so the model works
// through the task before committing to an answer. All declared
// outputs are required and must be non-empty for a call to succeed.

// QuestionSchema is the response contract for general question generation.
var QuestionSchema = &llm.Schema{
	Name:        "interview-question",
	Description: "A technical interview question with an explanation of what it tests",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reasoning": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Step-by-step thinking about what makes a good question for this topic, type and difficulty",
			},
			"question": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The generated interview question",
			},
			"explanation": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Brief explanation of what this question tests",
			},
		},
		"required":             []any{"reasoning", "question", "explanation"},
		"additionalProperties": false,
	},
}

// CodingQuestionSchema is the response contract for structured coding problems.
var CodingQuestionSchema = &llm.Schema{
	Name:        "coding-question",
	Description: "A coding/algorithm problem with formats, constraints and a worked example",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reasoning": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Step-by-step thinking about the problem design",
			},
			"question_title": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Concise title for the coding problem",
			},
			"question_description": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Detailed problem description",
			},
			"input_format": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Description of the input format",
			},
			"output_format": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Description of the expected output",
			},
			"constraints": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Time/space complexity constraints",
			},
			"example": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Example input/output",
			},
		},
		"required": []any{
			"reasoning", "question_title", "question_description",
			"input_format", "output_format", "constraints", "example",
		},
		"additionalProperties": false,
	},
}

// MLQuestionSchema is the response contract for ML interview questions.
var MLQuestionSchema = &llm.Schema{
	Name:        "ml-question",
	Description: "A machine learning theory or practical interview question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reasoning": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Step-by-step thinking about concept coverage and depth",
			},
			"question": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The ML question",
			},
			"key_concepts": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Key concepts being tested",
			},
			"expected_depth": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Expected depth of answer for the difficulty level",
			},
		},
		"required":             []any{"reasoning", "question", "key_concepts", "expected_depth"},
		"additionalProperties": false,
	},
}

// FollowUpSchema is the response contract for follow-up generation.
// The follow-ups come back as one numbered-list string; callers treat
// it as display text.
var FollowUpSchema = &llm.Schema{
	Name:        "followup-questions",
	Description: "Follow-up questions probing deeper into the original question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reasoning": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Step-by-step thinking about which aspects deserve follow-up",
			},
			"followup_questions": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The follow-up questions as a numbered list",
			},
		},
		"required":             []any{"reasoning", "followup_questions"},
		"additionalProperties": false,
	},
}

// AssessmentSchema is the response contract for difficulty assessment.
var AssessmentSchema = &llm.Schema{
	Name:        "difficulty-assessment",
	Description: "An independent difficulty judgment of an interview question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"assessed_difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Assessed difficulty level",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Explanation for the difficulty assessment",
			},
		},
		"required":             []any{"assessed_difficulty", "reasoning"},
		"additionalProperties": false,
	},
}
