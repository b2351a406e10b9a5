package store

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const runKey contextKey = "store_run_id"

// NewRunID returns a fresh identifier grouping the events of one
// pipeline invocation.
func NewRunID() string {
	return uuid.New().String()
}

// WithRun attaches a run ID to the context.
func WithRun(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runKey, runID)
}

// RunFrom extracts the run ID from the context, or "" if unset.
func RunFrom(ctx context.Context) string {
	if v, ok := ctx.Value(runKey).(string); ok {
		return v
	}
	return ""
}
