package jobstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
)

// MemoryStore keeps analysis jobs in memory. Terminal jobs are evicted once
// they have been finished for longer than the retention window; jobs still
// queued or running are never evicted.
type MemoryStore struct {
	mu        sync.RWMutex
	retention time.Duration
	jobs      map[uuid.UUID]*entities.AnalysisJob

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates a job store and starts its cleanup goroutine.
func NewMemoryStore(retention time.Duration) *MemoryStore {
	store := &MemoryStore{
		retention: retention,
		jobs:      make(map[uuid.UUID]*entities.AnalysisJob),
		stop:      make(chan struct{}),
	}

	go store.cleanupExpired()

	return store
}

// Close stops the cleanup goroutine. Stored jobs stay readable.
func (ms *MemoryStore) Close() {
	ms.stopOnce.Do(func() { close(ms.stop) })
}

// Put stores a snapshot of the job. Callers keep mutating their own copy
// between transitions, so the store copies on the way in and out.
func (ms *MemoryStore) Put(job *entities.AnalysisJob) {
	snapshot := *job

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.jobs[job.ID] = &snapshot
}

// Get retrieves a job snapshot by ID.
func (ms *MemoryStore) Get(id uuid.UUID) (*entities.AnalysisJob, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	job, exists := ms.jobs[id]
	if !exists {
		return nil, false
	}
	snapshot := *job
	return &snapshot, true
}

// Delete removes a job.
func (ms *MemoryStore) Delete(id uuid.UUID) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.jobs, id)
}

// cleanupExpired periodically evicts terminal jobs past retention.
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.evictExpired(time.Now())
		}
	}
}

// evictExpired drops terminal jobs whose completion is older than retention.
// Queued and running jobs are never evicted.
func (ms *MemoryStore) evictExpired(now time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for id, job := range ms.jobs {
		if !job.IsTerminal() || job.CompletedAt == nil {
			continue
		}
		if now.Sub(*job.CompletedAt) > ms.retention {
			delete(ms.jobs, id)
		}
	}
}
