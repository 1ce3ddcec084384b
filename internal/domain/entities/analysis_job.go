package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisJobStatus represents the status of an async analysis job.
type AnalysisJobStatus string

const (
	AnalysisJobStatusQueued    AnalysisJobStatus = "queued"
	AnalysisJobStatusRunning   AnalysisJobStatus = "running"
	AnalysisJobStatusCompleted AnalysisJobStatus = "completed"
	AnalysisJobStatusFailed    AnalysisJobStatus = "failed"
)

// AnalysisJob tracks one background analysis request through the
// queued -> running -> {completed, failed} transitions.
type AnalysisJob struct {
	ID           uuid.UUID         `json:"id"`
	VideoURL     string            `json:"video_url"`
	SummaryDepth string            `json:"summary_depth"`
	Status       AnalysisJobStatus `json:"status"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	LastError   *string    `json:"last_error,omitempty"`

	Result *VideoAnalysis `json:"result,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAnalysisJob creates a queued analysis job.
func NewAnalysisJob(videoURL, summaryDepth string) *AnalysisJob {
	now := time.Now()
	return &AnalysisJob{
		ID:           uuid.New(),
		VideoURL:     videoURL,
		SummaryDepth: summaryDepth,
		Status:       AnalysisJobStatusQueued,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsTerminal reports whether the job has finished, successfully or not.
func (j *AnalysisJob) IsTerminal() bool {
	return j.Status == AnalysisJobStatusCompleted || j.Status == AnalysisJobStatusFailed
}

// MarkRunning marks the job as picked up by a worker.
func (j *AnalysisJob) MarkRunning() {
	now := time.Now()
	j.Status = AnalysisJobStatusRunning
	j.StartedAt = &now
	j.UpdatedAt = now
}

// MarkCompleted records the finished result.
func (j *AnalysisJob) MarkCompleted(result *VideoAnalysis) {
	now := time.Now()
	j.Status = AnalysisJobStatusCompleted
	j.Result = result
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkFailed records the failure message.
func (j *AnalysisJob) MarkFailed(errMsg string) {
	now := time.Now()
	j.Status = AnalysisJobStatusFailed
	j.LastError = &errMsg
	j.CompletedAt = &now
	j.UpdatedAt = now
}
