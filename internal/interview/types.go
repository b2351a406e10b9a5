package interview

// Difficulty is the requested or assessed difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", &ValidationError{Field: "difficulty", Reason: "must be easy, medium or hard, got " + quoted(s)}
}

func (d Difficulty) valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuestionType selects which specialized generator handles a request.
type QuestionType string

const (
	TypeCoding      QuestionType = "coding"
	TypeMLTheory    QuestionType = "ml_theory"
	TypeMLPractical QuestionType = "ml_practical"
)

// ParseQuestionType validates a question type string. Unknown values
// fail with UnsupportedTypeError.
func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case TypeCoding, TypeMLTheory, TypeMLPractical:
		return QuestionType(s), nil
	}
	return "", &UnsupportedTypeError{Type: s}
}

// Label returns a human-readable name for the question type.
func (t QuestionType) Label() string {
	switch t {
	case TypeCoding:
		return "Coding/Algorithms"
	case TypeMLTheory:
		return "ML Theory"
	case TypeMLPractical:
		return "ML Practical"
	}
	return string(t)
}

// QuestionStyle steers ML question generation.
type QuestionStyle string

const (
	StyleTheoretical QuestionStyle = "theoretical"
	StylePractical   QuestionStyle = "practical"
	StyleMixed       QuestionStyle = "mixed"
)

// QuestionInput is the request for the general question generator.
type QuestionInput struct {
	Topic      string
	Type       QuestionType
	Difficulty Difficulty
}

// QuestionResult is a generated question with its rationale.
type QuestionResult struct {
	// Reasoning is the model's chain-of-thought trace. Kept for
	// inspection, not shown to candidates.
	Reasoning   string
	Question    string
	Explanation string
}

// CodingInput is the request for the coding question generator.
type CodingInput struct {
	Topic      string
	Difficulty Difficulty
}

// CodingQuestion is a fully structured coding problem.
type CodingQuestion struct {
	Reasoning    string
	Title        string
	Description  string
	InputFormat  string
	OutputFormat string
	Constraints  string
	Example      string
}

// MLInput is the request for the ML question generator.
type MLInput struct {
	Topic      string
	Difficulty Difficulty
	Style      QuestionStyle
}

// MLQuestion is a machine-learning interview question.
type MLQuestion struct {
	Reasoning     string
	Question      string
	KeyConcepts   string
	ExpectedDepth string
}

// FollowUpInput is the request for the follow-up generator.
type FollowUpInput struct {
	OriginalQuestion string
	Topic            string
	NumFollowUps     int
}

// FollowUpResult carries the generated follow-up questions as a single
// numbered-list string. The format is display-oriented, not structured.
type FollowUpResult struct {
	Reasoning string
	Questions string
}

// AssessInput is the request for the difficulty assessor.
type AssessInput struct {
	Question string
	Topic    string
}

// Assessment is an independent difficulty judgment of a question.
type Assessment struct {
	Difficulty Difficulty
	Reasoning  string
}

// PipelineInput drives both pipelines.
type PipelineInput struct {
	Topic        string
	Type         QuestionType
	Difficulty   Difficulty
	NumFollowUps int
}

// PipelineResult is the merged output of InterviewPipeline. The
// requested difficulty is carried through verbatim; the assessed one is
// produced independently and may differ.
type PipelineResult struct {
	Question            string
	Explanation         string
	RequestedDifficulty Difficulty
	AssessedDifficulty  Difficulty
	DifficultyReasoning string
	FollowUpQuestions   string
}

// InterviewSet is the output of CompleteInterviewGenerator.
type InterviewSet struct {
	// Question is the main question text. For coding questions this is
	// the rendered multi-section problem statement.
	Question string

	// Details holds the full structured result of the specialized
	// generator. Exactly one branch is set.
	Details Details

	Difficulty        Difficulty
	FollowUpQuestions string
}

// Details is a tagged union over the specialized generator results.
type Details struct {
	Coding *CodingQuestion
	ML     *MLQuestion
}

func quoted(s string) string {
	return "\"" + s + "\""
}
