// Package jobctx carries analysis-job metadata on a context and bounds each
// job with a timeout.
package jobctx

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	keyJobID     contextKey = "job_id"
	keyStartTime contextKey = "job_start_time"
)

// Begin derives a context for one job execution. The timeout prevents a hung
// outbound call from pinning a worker goroutine forever.
func Begin(parent context.Context, jobID uuid.UUID, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	ctx = context.WithValue(ctx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx, cancel
}

// JobID extracts the job ID from the context.
func JobID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyJobID).(uuid.UUID)
	return id, ok
}

// StartTime extracts the job start time from the context.
func StartTime(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(keyStartTime).(time.Time)
	return t, ok
}

// Elapsed reports how long the job has been running.
func Elapsed(ctx context.Context) time.Duration {
	start, ok := StartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}
