package study

import (
	stdErrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aistudybuddy/study-buddy/errors"
	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
	"github.com/aistudybuddy/study-buddy/internal/infrastructure/jobstore"
)

func newTestManager(t *testing.T, model TextGenerator, transcripts TranscriptProvider) *JobManager {
	t.Helper()
	svc := NewService(model, transcripts, zap.NewNop())
	store := jobstore.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	return NewJobManager(svc, store, 30*time.Second, zap.NewNop())
}

func waitForTerminal(t *testing.T, m *JobManager, id uuid.UUID) *entities.AnalysisJob {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("job never reached a terminal state")
		case <-time.After(10 * time.Millisecond):
		}
		job, err := m.Get(id)
		require.NoError(t, err)
		if job.IsTerminal() {
			return job
		}
	}
}

func TestJobManager_SubmitAndComplete(t *testing.T) {
	m := newTestManager(t, &scriptedModel{}, &fakeTranscripts{transcript: testTranscript(10)})

	job := m.Submit("https://youtu.be/abc123", DepthMedium)
	assert.Equal(t, entities.AnalysisJobStatusQueued, job.Status)

	done := waitForTerminal(t, m, job.ID)
	require.Equal(t, entities.AnalysisJobStatusCompleted, done.Status)
	require.NotNil(t, done.Result)
	assert.Equal(t, "abc123", done.Result.VideoID)
	assert.NotNil(t, done.CompletedAt)
	assert.Nil(t, done.LastError)
}

// The job returned by Submit is copied before the worker goroutine starts,
// so it always reflects the queued state regardless of how fast the worker
// begins mutating the shared job.
func TestJobManager_SubmitReturnsQueuedSnapshot(t *testing.T) {
	m := newTestManager(t, &scriptedModel{}, &fakeTranscripts{transcript: testTranscript(10)})

	for i := 0; i < 50; i++ {
		job := m.Submit("https://youtu.be/abc123", DepthMedium)
		assert.Equal(t, entities.AnalysisJobStatusQueued, job.Status)
		assert.Nil(t, job.StartedAt)
		assert.Nil(t, job.CompletedAt)
	}
}

func TestJobManager_SubmitFailure(t *testing.T) {
	m := newTestManager(t, &scriptedModel{},
		&fakeTranscripts{err: errors.ErrTranscriptNotFound("abc123")})

	job := m.Submit("https://youtu.be/abc123", DepthMedium)

	done := waitForTerminal(t, m, job.ID)
	require.Equal(t, entities.AnalysisJobStatusFailed, done.Status)
	require.NotNil(t, done.LastError)
	assert.Contains(t, *done.LastError, "TRANSCRIPT_NOT_FOUND")
	assert.Nil(t, done.Result)
}

// Failures without an application code are wrapped before being recorded, so
// LastError always carries a coded message.
func TestJobManager_WrapsUncodedFailures(t *testing.T) {
	m := newTestManager(t, &scriptedModel{},
		&fakeTranscripts{err: stdErrors.New("connection reset")})

	job := m.Submit("https://youtu.be/abc123", DepthMedium)

	done := waitForTerminal(t, m, job.ID)
	require.Equal(t, entities.AnalysisJobStatusFailed, done.Status)
	require.NotNil(t, done.LastError)
	assert.Contains(t, *done.LastError, "PROCESSING_FAILED")
	assert.Contains(t, *done.LastError, "connection reset")
}

// A failed generator is not a failed job. The pipeline degrades to fallbacks
// and the job still completes.
func TestJobManager_ModelFailureStillCompletes(t *testing.T) {
	m := newTestManager(t, &scriptedModel{err: stdErrors.New("model down")},
		&fakeTranscripts{transcript: testTranscript(10)})

	job := m.Submit("https://youtu.be/abc123", DepthMedium)

	done := waitForTerminal(t, m, job.ID)
	require.Equal(t, entities.AnalysisJobStatusCompleted, done.Status)
	require.NotNil(t, done.Result)
	assert.True(t, done.Result.FallbackUsed)
}

func TestJobManager_GetUnknown(t *testing.T) {
	m := newTestManager(t, &scriptedModel{}, &fakeTranscripts{})

	_, err := m.Get(uuid.New())
	var appErr errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorCode_JOB_NOT_FOUND, appErr.Code)
}
