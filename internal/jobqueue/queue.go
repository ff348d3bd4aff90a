package jobqueue

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	// DefaultCapacity is the number of Jobs a queue holds before producers
	// block.
	DefaultCapacity = 5

	// MaxListedPathLen is the maximum length in bytes of an input path returned
	// by Snapshot. Longer paths are truncated.
	MaxListedPathLen = 255
)

type entry struct {
	job      *Job
	queuedAt time.Time
}

// BoundedQueue is a FIFO of Jobs with a fixed capacity. Enqueue blocks while
// the queue is full and Dequeue blocks while it's empty. Every operation takes
// the same lock; waiters release it while suspended.
//
// Each Enqueue or Dequeue wakes at most one waiter on the other side. Freeing
// many slots at once (RemoveAll) or stopping the queue wakes everyone.
type BoundedQueue struct {
	entries  []entry
	capacity int
	stopping bool

	mu       sync.Mutex
	notFull  sync.Cond
	notEmpty sync.Cond
}

// NewBoundedQueue creates a BoundedQueue holding at most capacity Jobs. A
// capacity below 1 uses DefaultCapacity.
func NewBoundedQueue(capacity int) *BoundedQueue {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	q := &BoundedQueue{
		entries:  make([]entry, 0, capacity),
		capacity: capacity,
	}

	q.notFull.L = &q.mu
	q.notEmpty.L = &q.mu

	return q
}

// Enqueue appends job to the tail of the queue, waiting while the queue is
// full, and moves it to JobStatePending.
//
// It returns ErrShuttingDown if the queue is already stopping, ErrBusy if the
// queue stops while waiting and the context's error if ctx is done while
// waiting. In all of these cases job is not queued.
func (q *BoundedQueue) Enqueue(ctx context.Context, job *Job) error {
	if job == nil {
		return invalidArgf("job is nil")
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopping {
		return ErrShuttingDown
	}

	if len(q.entries) >= q.capacity {
		stop := q.wakeWhenDone(ctx, &q.notFull)
		defer stop()

		for len(q.entries) >= q.capacity && !q.stopping && ctx.Err() == nil {
			q.notFull.Wait()
		}

		if q.stopping {
			return ErrBusy
		}

		if len(q.entries) >= q.capacity {
			return ctx.Err()
		}
	}

	if err := job.state.transition(JobStateNew, JobStatePending); err != nil {
		// The slot we were woken for is still free.
		q.notFull.Signal()
		return err
	}

	q.entries = append(q.entries, entry{job: job, queuedAt: time.Now()})

	q.notEmpty.Signal()

	return nil
}

// Dequeue removes and returns the Job at the head of the queue, waiting while
// the queue is empty. It returns ErrShuttingDown once the queue is stopping,
// even if Jobs remain queued, and the context's error if ctx is done while
// waiting.
func (q *BoundedQueue) Dequeue(ctx context.Context) (*Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) == 0 && !q.stopping {
		stop := q.wakeWhenDone(ctx, &q.notEmpty)
		defer stop()

		for len(q.entries) == 0 && !q.stopping && ctx.Err() == nil {
			q.notEmpty.Wait()
		}
	}

	if q.stopping {
		return nil, ErrShuttingDown
	}

	if len(q.entries) == 0 {
		return nil, ctx.Err()
	}

	head := q.entries[0]
	q.entries[0] = entry{}
	q.entries = q.entries[1:]

	if len(q.entries) < q.capacity {
		q.notFull.Signal()
	}

	return head.job, nil
}

// RemoveByID removes the first queued Job with the given id and returns it.
// It returns ErrJobNotFound if no such Job is queued.
func (q *BoundedQueue) RemoveByID(id int32) (*Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.job.id != id {
			continue
		}

		copy(q.entries[i:], q.entries[i+1:])
		q.entries[len(q.entries)-1] = entry{}
		q.entries = q.entries[:len(q.entries)-1]

		q.notFull.Signal()

		return e.job, nil
	}

	return nil, ErrJobNotFound
}

// RemoveAll removes every queued Job and returns them in FIFO order.
func (q *BoundedQueue) RemoveAll() []*Job {
	q.mu.Lock()
	defer q.mu.Unlock()

	jobs := make([]*Job, 0, len(q.entries))
	for _, e := range q.entries {
		jobs = append(jobs, e.job)
	}

	q.entries = make([]entry, 0, q.capacity)

	q.notFull.Broadcast()

	return jobs
}

// Snapshot returns up to limit queued Jobs in the order they will be claimed,
// without removing them, and whether more Jobs are queued beyond limit.
// Input paths longer than MaxListedPathLen are truncated.
func (q *BoundedQueue) Snapshot(limit int) ([]JobInfo, bool, error) {
	if limit <= 0 {
		return nil, false, invalidArgf("list limit must be positive: got %d", limit)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	n := min(limit, len(q.entries))

	infos := make([]JobInfo, 0, n)
	for _, e := range q.entries[:n] {
		infos = append(infos, JobInfo{
			ID:        e.job.id,
			Submitter: e.job.params.Submitter,
			Category:  e.job.params.Category,
			Algorithm: e.job.params.Algorithm,
			InputPath: truncatePath(e.job.params.InputPath),
			QueuedAt:  e.queuedAt,
		})
	}

	return infos, len(q.entries) > n, nil
}

// Contains returns whether a Job with the given id is queued.
func (q *BoundedQueue) Contains(id int32) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.entries {
		if e.job.id == id {
			return true
		}
	}

	return false
}

// Len returns the number of queued Jobs.
func (q *BoundedQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}

// Cap returns the capacity of the queue.
func (q *BoundedQueue) Cap() int {
	return q.capacity
}

// Stopping returns whether Stop has been called.
func (q *BoundedQueue) Stopping() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.stopping
}

// Stop marks the queue as stopping and wakes every waiting producer and
// consumer. Queued Jobs are left in place for the caller to RemoveAll.
func (q *BoundedQueue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopping = true

	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

// wakeWhenDone arranges for every waiter on cond to be woken when ctx is done,
// so waiters can observe ctx.Err(). The caller must hold q.mu and call the
// returned func before releasing it.
func (q *BoundedQueue) wakeWhenDone(ctx context.Context, cond *sync.Cond) func() {
	if ctx.Done() == nil {
		return func() {}
	}

	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		cond.Broadcast()
		q.mu.Unlock()
	})

	return func() { stop() }
}

func truncatePath(p string) string {
	if len(p) <= MaxListedPathLen {
		return p
	}

	n := MaxListedPathLen
	for n > 0 && !utf8.RuneStart(p[n]) {
		n--
	}

	return p[:n]
}
