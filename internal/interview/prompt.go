package interview

import (
	"fmt"
	"strings"
)

const questionSystemPrompt = `You are a senior engineer preparing technical interview questions.

Rules:
- Generate a single interview question for the given topic, question type and difficulty.
- Work through your reasoning first: what should a question at this difficulty probe, and what distinguishes a strong answer.
- The question must be self-contained and answerable without external material.
- Calibrate to the difficulty: "easy" checks fundamentals, "medium" requires applying a concept, "hard" requires combining concepts or handling subtle edge cases.
- The explanation should state, in one or two sentences, what the question tests.`

const codingSystemPrompt = `You are a competitive-programming problem setter writing interview coding problems.

Rules:
- Generate one coding/algorithm problem for the given topic and difficulty.
- Work through your reasoning first: pick the core technique, then design a statement that requires it.
- The description must define the task precisely enough to implement without guessing.
- State input and output formats explicitly.
- Constraints should name realistic input bounds and the intended time/space complexity.
- The example must show concrete input and the matching output.`

const mlSystemPrompt = `You are a machine learning interviewer at a research-focused company.

Rules:
- Generate one ML interview question for the given topic, difficulty and style.
- "theoretical" style asks about principles, derivations and trade-offs; "practical" style asks about applying methods to real situations; "mixed" may combine both.
- Work through your reasoning first: which concepts matter at this difficulty and what depth of answer separates candidates.
- List the key concepts the question tests.
- Describe the expected depth of a good answer for the difficulty level.`

const followupSystemPrompt = `You are a technical interviewer preparing follow-up questions.

Rules:
- Given the original question, generate exactly the requested number of follow-up questions.
- Work through your reasoning first: which aspects of the original question deserve probing (edge cases, complexity, alternatives, scaling).
- Each follow-up must build on the original question, not introduce an unrelated topic.
- Return the follow-ups as a numbered list, one question per line.`

const assessSystemPrompt = `You are calibrating the difficulty of technical interview questions.

Rules:
- Judge the question on its own merits; ignore any difficulty label it may have been generated with.
- "easy": answerable from fundamentals in a few minutes. "medium": requires applying a concept with some care. "hard": requires combining concepts, non-obvious insight, or subtle edge-case handling.
- Explain the judgment in two or three sentences.`

func buildQuestionUserMessage(input QuestionInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Question type: %s\n", input.Type)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	return b.String()
}

func buildCodingUserMessage(input CodingInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	return b.String()
}

func buildMLUserMessage(input MLInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Style: %s\n", input.Style)
	return b.String()
}

func buildFollowUpUserMessage(input FollowUpInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Original question:\n%s\n\n", input.OriginalQuestion)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Number of follow-ups: %d\n", input.NumFollowUps)
	return b.String()
}

func buildAssessUserMessage(input AssessInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question:\n%s\n\n", input.Question)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	return b.String()
}
