package study

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aistudybuddy/study-buddy/errors"
	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
	"github.com/aistudybuddy/study-buddy/internal/infrastructure/jobstore"
	"github.com/aistudybuddy/study-buddy/pkg/jobctx"
)

// Analyzer is the synchronous pipeline a job runs. *Service satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, videoURL, summaryDepth string) (*entities.VideoAnalysis, error)
}

// JobManager runs analyses in the background and tracks them through the
// job store. One goroutine per job; the per-job timeout bounds how long a
// worker can be pinned.
type JobManager struct {
	analyzer Analyzer
	store    *jobstore.MemoryStore
	timeout  time.Duration
	logger   *zap.Logger
}

func NewJobManager(analyzer Analyzer, store *jobstore.MemoryStore, timeout time.Duration, logger *zap.Logger) *JobManager {
	return &JobManager{
		analyzer: analyzer,
		store:    store,
		timeout:  timeout,
		logger:   logger,
	}
}

// Submit enqueues an analysis and returns the queued job immediately.
func (m *JobManager) Submit(videoURL, summaryDepth string) *entities.AnalysisJob {
	job := entities.NewAnalysisJob(videoURL, summaryDepth)
	m.store.Put(job)

	m.logger.Info("analysis job queued",
		zap.String("job_id", job.ID.String()),
		zap.String("video_url", videoURL))

	// Copy before the worker starts; it mutates the job through its
	// transitions.
	snapshot := *job
	go m.run(job)

	return &snapshot
}

// Get returns the current state of a job.
func (m *JobManager) Get(id uuid.UUID) (*entities.AnalysisJob, error) {
	job, ok := m.store.Get(id)
	if !ok {
		return nil, errors.ErrJobNotFound(id.String())
	}
	return job, nil
}

func (m *JobManager) run(job *entities.AnalysisJob) {
	ctx, cancel := jobctx.Begin(context.Background(), job.ID, m.timeout)
	defer cancel()

	job.MarkRunning()
	m.store.Put(job)

	result, err := m.analyzer.Analyze(ctx, job.VideoURL, job.SummaryDepth)
	if err != nil {
		var appErr errors.AppError
		if !stdErrors.As(err, &appErr) {
			err = errors.ErrProcessingFailed(err)
		}
		job.MarkFailed(err.Error())
		m.store.Put(job)
		m.logger.Error("analysis job failed",
			zap.String("job_id", job.ID.String()),
			zap.Duration("elapsed", jobctx.Elapsed(ctx)),
			zap.Error(err))
		return
	}

	job.MarkCompleted(result)
	m.store.Put(job)
	m.logger.Info("analysis job completed",
		zap.String("job_id", job.ID.String()),
		zap.Duration("elapsed", jobctx.Elapsed(ctx)),
		zap.String("status", result.Status))
}
