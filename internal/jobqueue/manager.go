package jobqueue

import (
	"context"
	"log/slog"
	"sync"
)

// Config configures a Manager. Zero values select defaults.
type Config struct {
	// Capacity is the number of Jobs queued before Submit blocks. Defaults to
	// DefaultCapacity.
	Capacity int

	// Workers is the number of workers started. Defaults to
	// DefaultWorkerCount().
	Workers int

	// Executors maps each Category to the Executor that runs its Jobs. Jobs of
	// a Category with no Executor fail with ErrorCodeUnsupported.
	Executors map[Category]Executor

	// Notifier receives the outcome of every executed Job. Defaults to
	// DiscardNotifier.
	Notifier Notifier

	Logger *slog.Logger

	// CheckIDCollisions makes Setup skip ids that are still queued after the
	// id counter wraps.
	CheckIDCollisions bool

	// MaxID is the value at which the id counter wraps. Defaults to
	// math.MaxInt32.
	MaxID int32
}

// Stats is a point-in-time summary of a Manager.
type Stats struct {
	Queued   int  `json:"queued"`
	Capacity int  `json:"capacity"`
	Workers  int  `json:"workers"`
	Stopping bool `json:"stopping"`
}

// Manager owns the id allocator, the queue and the worker pool, and provides
// the operations available to submitters and administrators.
type Manager struct {
	ids    *IDAllocator
	queue  *BoundedQueue
	pool   *WorkerPool
	logger *slog.Logger

	workers           int
	checkIDCollisions bool

	ctx      context.Context
	cancel   context.CancelFunc
	started  bool
	stopped  bool
	stopOnce sync.Once
	mu       sync.Mutex
}

// NewManager creates a Manager. Jobs can be submitted straight away but are
// not executed until Start is called.
func NewManager(cfg Config) *Manager {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = DefaultWorkerCount()
	}

	queue := NewBoundedQueue(cfg.Capacity)

	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		ids:               NewIDAllocatorWithMax(cfg.MaxID),
		queue:             queue,
		pool:              NewWorkerPool(queue, cfg.Executors, cfg.Notifier, logger),
		logger:            logger,
		workers:           workers,
		checkIDCollisions: cfg.CheckIDCollisions,
		ctx:               ctx,
		cancel:            cancel,
	}
}

// Start launches the workers. Calling Start more than once, or after
// Shutdown, has no effect.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started || m.stopped {
		return
	}

	m.started = true

	m.pool.Start(m.ctx, m.workers)

	m.logger.Info(
		"job manager started",
		"workers", m.workers,
		"capacity", m.queue.Cap(),
	)
}

// Shutdown stops accepting Jobs, releases every blocked producer and worker,
// waits for workers to finish the Jobs they hold, then discards any Jobs left
// in the queue without notifying their submitters. It's safe to call more
// than once and concurrently with Submit.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()

	m.stopOnce.Do(func() {
		m.queue.Stop()

		m.pool.Wait()
		m.cancel()

		dropped := m.queue.RemoveAll()

		m.logger.Info("job manager stopped", "dropped", len(dropped))
	})
}

// Setup reserves a new job id without touching the queue.
func (m *Manager) Setup() int32 {
	if m.checkIDCollisions {
		return m.ids.ReserveFunc(m.queue.Contains)
	}

	return m.ids.Reserve()
}

// Submit creates a Job with the given id and params and queues it, blocking
// while the queue is full. It returns the id once the Job is queued.
func (m *Manager) Submit(
	ctx context.Context,
	id int32,
	params Params,
) (int32, error) {
	job, err := NewJob(id, params)
	if err != nil {
		return 0, err
	}

	if err := m.queue.Enqueue(ctx, job); err != nil {
		return 0, err
	}

	m.logger.Debug(
		"job queued",
		"job_id", id,
		"submitter", params.Submitter,
		"category", params.Category,
	)

	return id, nil
}

// RemoveOne removes the queued Job with the given id. Its submitter is not
// notified. It returns ErrJobNotFound if the Job isn't queued, including when
// a worker has already claimed it.
func (m *Manager) RemoveOne(id int32) error {
	if id <= 0 {
		return invalidArgf("invalid job id %d", id)
	}

	if _, err := m.queue.RemoveByID(id); err != nil {
		return err
	}

	m.logger.Debug("job removed", "job_id", id)

	return nil
}

// RemoveAll removes every queued Job without notifying their submitters and
// returns how many were removed.
func (m *Manager) RemoveAll() int {
	n := len(m.queue.RemoveAll())

	m.logger.Debug("jobs removed", "count", n)

	return n
}

// List returns up to maxEntries queued Jobs in the order they will be
// claimed, and whether more are queued.
func (m *Manager) List(maxEntries int) ([]JobInfo, bool, error) {
	return m.queue.Snapshot(maxEntries)
}

// Stats returns a summary of the Manager's queue and workers.
func (m *Manager) Stats() Stats {
	return Stats{
		Queued:   m.queue.Len(),
		Capacity: m.queue.Cap(),
		Workers:  m.pool.Size(),
		Stopping: m.queue.Stopping(),
	}
}
