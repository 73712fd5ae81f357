package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// JobStatus represents the state of a collection-processing job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the state of a single collection run.
type Job struct {
	mu sync.Mutex

	ID            string `json:"job_id"`
	CollectionDir string `json:"collection_dir"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Result *Output  `json:"result,omitempty"`
	Errors []string `json:"errors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewJob creates a queued job for a collection directory.
func NewJob(collectionDir string) *Job {
	now := time.Now()
	return &Job{
		ID:            newJobID(collectionDir, now),
		CollectionDir: collectionDir,
		Status:        StatusQueued,
		Phase:         "queued",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// SetResult stores the completed output.
func (j *Job) SetResult(out *Output) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Result = out
	j.UpdatedAt = time.Now()
}

// AddError records a processing error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Errors = append(j.Errors, err)
	j.UpdatedAt = time.Now()
}

// Snapshot returns a copy safe for serialization.
func (j *Job) Snapshot() Job {
	j.mu.Lock()
	defer j.mu.Unlock()
	return Job{
		ID:            j.ID,
		CollectionDir: j.CollectionDir,
		Status:        j.Status,
		Phase:         j.Phase,
		Result:        j.Result,
		Errors:        append([]string(nil), j.Errors...),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// ContentHashHex returns the SHA-256 hex digest of data.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func newJobID(collectionDir string, now time.Time) string {
	seed := collectionDir + "-" + now.Format(time.RFC3339Nano)
	return ContentHashHex([]byte(seed))[:20]
}
