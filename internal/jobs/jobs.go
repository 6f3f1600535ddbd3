package jobs

import (
    "context"
    "fmt"
    "sync"
    "time"
)

// Job statuses. A job is created as processing and mutated exactly once, to
// completed or failed.
const (
    StatusProcessing = "processing"
    StatusCompleted  = "completed"
    StatusFailed     = "failed"
)

// Job tracks one split request's lifecycle and outcome.
type Job struct {
    ID               string    `json:"id"`
    OriginalFilename string    `json:"originalFilename"`
    Instructions     string    `json:"instructions"`
    Status           string    `json:"status"`
    ResultFiles      []string  `json:"resultFiles,omitempty"`
    ErrorMessage     string    `json:"errorMessage,omitempty"`
    ResultURL        string    `json:"resultUrl,omitempty"`
    CreatedAt        time.Time `json:"createdAt"`
}

// Store is the job repository. Implementations: Memory (per-process map) and
// Redis (hash per job). There is no delete path; records age out via backend
// policy (Redis TTL) or process restart.
type Store interface {
    Create(ctx context.Context, job Job) error
    Get(ctx context.Context, id string) (Job, bool, error)
    Complete(ctx context.Context, id string, resultFiles []string, resultURL string) error
    Fail(ctx context.Context, id string, message string) error
}

// Memory is the in-process Store. Mutations are atomic under its mutex;
// cross-process consistency is out of scope.
type Memory struct {
    mu   sync.RWMutex
    jobs map[string]Job
}

func NewMemory() *Memory {
    return &Memory{jobs: make(map[string]Job)}
}

func (m *Memory) Create(ctx context.Context, job Job) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.jobs[job.ID] = job
    return nil
}

func (m *Memory) Get(ctx context.Context, id string) (Job, bool, error) {
    m.mu.RLock()
    defer m.mu.RUnlock()
    j, ok := m.jobs[id]
    return j, ok, nil
}

func (m *Memory) Complete(ctx context.Context, id string, resultFiles []string, resultURL string) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    j, ok := m.jobs[id]
    if !ok { return fmt.Errorf("job not found: %s", id) }
    j.Status = StatusCompleted
    j.ResultFiles = resultFiles
    j.ResultURL = resultURL
    m.jobs[id] = j
    return nil
}

func (m *Memory) Fail(ctx context.Context, id string, message string) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    j, ok := m.jobs[id]
    if !ok { return fmt.Errorf("job not found: %s", id) }
    j.Status = StatusFailed
    j.ErrorMessage = message
    m.jobs[id] = j
    return nil
}
