package interview

import "fmt"

// ValidationError indicates a required input field is missing or out of
// range. Raised before any LLM call and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// UnsupportedTypeError indicates an unrecognized question type was
// requested. Surfaced before any generator runs.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported question type: %q", e.Type)
}

// GenerationError indicates the completion service failed to produce
// the declared outputs for one stage. A stage failure aborts the whole
// pipeline; no partial result is assembled.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
