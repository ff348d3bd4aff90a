package jobqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
)

// minWorkers keeps single CPU hosts running jobs concurrently.
const minWorkers = 2

// DefaultWorkerCount returns the number of available CPUs, with a floor of 2.
func DefaultWorkerCount() int {
	return max(runtime.NumCPU(), minWorkers)
}

// WorkerPool runs a fixed set of workers that claim Jobs from a BoundedQueue,
// execute them and notify their submitters. A failed Job is reported, never
// retried.
type WorkerPool struct {
	queue     *BoundedQueue
	executors map[Category]Executor
	notifier  Notifier
	logger    *slog.Logger

	size int
	wg   sync.WaitGroup
	mu   sync.Mutex
}

// NewWorkerPool creates a WorkerPool draining queue. Jobs are dispatched to
// the Executor registered for their Category.
func NewWorkerPool(
	queue *BoundedQueue,
	executors map[Category]Executor,
	notifier Notifier,
	logger *slog.Logger,
) *WorkerPool {
	if notifier == nil {
		notifier = DiscardNotifier
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &WorkerPool{
		queue:     queue,
		executors: executors,
		notifier:  notifier,
		logger:    logger,
	}
}

// Start launches n workers. Workers exit once the queue stops or ctx is done,
// finishing the Job they hold first. Cancelling ctx does not cancel a Job
// being executed.
func (p *WorkerPool) Start(ctx context.Context, n int) {
	if n < 1 {
		n = DefaultWorkerCount()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.wg.Add(n)
	for i := range n {
		go p.worker(ctx, p.size+i)
	}

	p.size += n
}

// Size returns the number of workers started.
func (p *WorkerPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.size
}

// Wait blocks until every worker has exited.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

func (p *WorkerPool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	logger := p.logger.With("worker", id)
	logger.Debug("worker started")

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrShuttingDown) || ctx.Err() != nil {
				logger.Debug("worker stopped", "reason", err)
				return
			}

			logger.Error("dequeue job", "err", err)
			continue
		}

		p.process(context.WithoutCancel(ctx), logger, job)
	}
}

func (p *WorkerPool) process(ctx context.Context, logger *slog.Logger, job *Job) {
	logger = logger.With("job_id", job.id)

	if err := job.state.transition(JobStatePending, JobStateProcessing); err != nil {
		logger.Warn("skip claimed job", "err", err)
		return
	}

	logger.Debug(
		"processing job",
		"category", job.params.Category,
		"algorithm", job.params.Algorithm,
		"input", job.params.InputPath,
	)

	err := p.execute(ctx, job)
	code := codeOf(err)

	if err != nil {
		job.state.Store(JobStateFailed)
		logger.Warn("job failed", "code", code, "err", err)
	} else {
		job.state.Store(JobStateSuccess)
		logger.Info("job completed")
	}

	p.notify(job, code, err)
}

func (p *WorkerPool) execute(ctx context.Context, job *Job) (err error) {
	executor, ok := p.executors[job.params.Category]
	if !ok || executor == nil {
		return NewExecutorError(
			ErrorCodeUnsupported,
			fmt.Errorf("no executor for category %s", job.params.Category),
		)
	}

	defer func() {
		if r := recover(); r != nil {
			err = NewExecutorError(ErrorCodeInternal, fmt.Errorf("executor panic: %v", r))
		}
	}()

	return executor.Execute(ctx, Task{
		JobID:      job.id,
		Algorithm:  job.params.Algorithm,
		InputPath:  job.params.InputPath,
		OutputPath: job.params.OutputPath,
		Flags:      job.params.Flags,
	})
}

// notify delivers the Job's Notification, at most once per Job.
func (p *WorkerPool) notify(job *Job, code ErrorCode, err error) {
	if !job.markNotified() {
		return
	}

	n := Notification{
		JobID:     job.id,
		Submitter: job.params.Submitter,
		Succeeded: err == nil,
		ErrorCode: code,
	}

	if err != nil {
		n.Message = err.Error()
	}

	p.notifier.Deliver(n)
}
