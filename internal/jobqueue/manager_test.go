package jobqueue_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nixpig/jobqueue/internal/checksum"
	"github.com/nixpig/jobqueue/internal/jobqueue"
)

const emptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"

// recordingNotifier collects Notifications for inspection by tests.
type recordingNotifier struct {
	notifications chan jobqueue.Notification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		notifications: make(chan jobqueue.Notification, 100),
	}
}

func (r *recordingNotifier) Deliver(n jobqueue.Notification) {
	r.notifications <- n
}

func (r *recordingNotifier) next(t *testing.T) jobqueue.Notification {
	t.Helper()

	select {
	case n := <-r.notifications:
		return n
	case <-time.After(5 * time.Second):
		t.Fatal("expected to receive notification")
		return jobqueue.Notification{}
	}
}

func (r *recordingNotifier) none(t *testing.T) {
	t.Helper()

	select {
	case n := <-r.notifications:
		t.Errorf("expected no notification: got '%+v'", n)
	case <-time.After(blockedFor):
	}
}

// digestStub records a fixed digest for every job it executes.
type digestStub struct {
	digest string

	mu      sync.Mutex
	digests map[int32]string
}

func (s *digestStub) Execute(ctx context.Context, task jobqueue.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.digests == nil {
		s.digests = make(map[int32]string)
	}

	s.digests[task.JobID] = s.digest

	return nil
}

func (s *digestStub) recorded(id int32) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.digests[id]
}

func newTestManager(
	t *testing.T,
	cfg jobqueue.Config,
) (*jobqueue.Manager, *recordingNotifier) {
	t.Helper()

	notifier := newRecordingNotifier()
	cfg.Notifier = notifier

	m := jobqueue.NewManager(cfg)
	t.Cleanup(m.Shutdown)

	return m, notifier
}

func submitTestJob(
	t *testing.T,
	m *jobqueue.Manager,
	params jobqueue.Params,
) int32 {
	t.Helper()

	id, err := m.Submit(t.Context(), m.Setup(), params)
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	return id
}

func TestJobManager(t *testing.T) {
	t.Parallel()

	t.Run("Test checksum of empty file with stub executor", func(t *testing.T) {
		t.Parallel()

		stub := &digestStub{digest: emptyMD5}

		m, notifier := newTestManager(t, jobqueue.Config{
			Workers: 2,
			Executors: map[jobqueue.Category]jobqueue.Executor{
				jobqueue.CategoryChecksum: stub,
			},
		})
		m.Start()

		params := validParams()
		params.InputPath = "/tmp/a"

		id := submitTestJob(t, m, params)

		n := notifier.next(t)

		if n.JobID != id {
			t.Errorf("expected job id: got '%d', want '%d'", n.JobID, id)
		}

		if !n.Succeeded {
			t.Errorf("expected job to succeed: got '%+v'", n)
		}

		if n.ErrorCode != jobqueue.ErrorCodeNone {
			t.Errorf("expected error code: got '%d', want '%d'", n.ErrorCode, 0)
		}

		if n.Submitter != params.Submitter {
			t.Errorf(
				"expected submitter: got '%s', want '%s'",
				n.Submitter,
				params.Submitter,
			)
		}

		if got := stub.recorded(id); got != emptyMD5 {
			t.Errorf("expected digest: got '%s', want '%s'", got, emptyMD5)
		}
	})

	t.Run("Test nonexistent input fails with input open code", func(t *testing.T) {
		t.Parallel()

		m, notifier := newTestManager(t, jobqueue.Config{
			Workers: 2,
			Executors: map[jobqueue.Category]jobqueue.Executor{
				jobqueue.CategoryChecksum: checksum.New(),
			},
		})
		m.Start()

		dir := t.TempDir()

		params := validParams()
		params.InputPath = filepath.Join(dir, "does-not-exist")
		params.OutputPath = filepath.Join(dir, "out")

		id := submitTestJob(t, m, params)

		n := notifier.next(t)

		if n.JobID != id {
			t.Errorf("expected job id: got '%d', want '%d'", n.JobID, id)
		}

		if n.Succeeded {
			t.Error("expected job to fail")
		}

		if n.ErrorCode != jobqueue.ErrorCodeInputOpen {
			t.Errorf(
				"expected error code: got '%d', want '%d'",
				n.ErrorCode,
				jobqueue.ErrorCodeInputOpen,
			)
		}

		if n.Message == "" {
			t.Error("expected failure message")
		}
	})

	t.Run("Test category without executor is unsupported", func(t *testing.T) {
		t.Parallel()

		m, notifier := newTestManager(t, jobqueue.Config{
			Workers: 1,
			Executors: map[jobqueue.Category]jobqueue.Executor{
				jobqueue.CategoryChecksum: &digestStub{},
			},
		})
		m.Start()

		params := validParams()
		params.Category = jobqueue.CategoryCompress

		submitTestJob(t, m, params)

		n := notifier.next(t)
		if n.Succeeded || n.ErrorCode != jobqueue.ErrorCodeUnsupported {
			t.Errorf("expected unsupported failure: got '%+v'", n)
		}
	})

	t.Run("Test executor panic is reported as failure", func(t *testing.T) {
		t.Parallel()

		m, notifier := newTestManager(t, jobqueue.Config{
			Workers: 1,
			Executors: map[jobqueue.Category]jobqueue.Executor{
				jobqueue.CategoryChecksum: jobqueue.ExecutorFunc(
					func(ctx context.Context, task jobqueue.Task) error {
						panic("boom")
					},
				),
			},
		})
		m.Start()

		submitTestJob(t, m, validParams())

		n := notifier.next(t)
		if n.Succeeded || n.ErrorCode != jobqueue.ErrorCodeInternal {
			t.Errorf("expected internal failure: got '%+v'", n)
		}
	})

	t.Run("Test each job notifies exactly once", func(t *testing.T) {
		t.Parallel()

		m, notifier := newTestManager(t, jobqueue.Config{
			Workers:  4,
			Capacity: 3,
			Executors: map[jobqueue.Category]jobqueue.Executor{
				jobqueue.CategoryChecksum: &digestStub{digest: emptyMD5},
			},
		})
		m.Start()

		const jobs = 30

		var wg sync.WaitGroup
		for range jobs {
			wg.Go(func() {
				if _, err := m.Submit(t.Context(), m.Setup(), validParams()); err != nil {
					t.Errorf("expected not to receive error: got '%v'", err)
				}
			})
		}

		wg.Wait()

		seen := make(map[int32]int)
		for range jobs {
			seen[notifier.next(t).JobID]++
		}

		notifier.none(t)

		for id, count := range seen {
			if count != 1 {
				t.Errorf("expected one notification for job %d: got '%d'", id, count)
			}
		}

		if len(seen) != jobs {
			t.Errorf("expected notified jobs: got '%d', want '%d'", len(seen), jobs)
		}
	})

	t.Run("Test administrative removal", func(t *testing.T) {
		t.Parallel()

		m, notifier := newTestManager(t, jobqueue.Config{
			Capacity: 5,
			Workers:  1,
			Executors: map[jobqueue.Category]jobqueue.Executor{
				jobqueue.CategoryChecksum: &digestStub{},
			},
		})

		// Not started, so jobs stay queued.
		ids := make([]int32, 0, 4)
		for range 4 {
			ids = append(ids, submitTestJob(t, m, validParams()))
		}

		infos, hasMore, err := m.List(3)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if len(infos) != 3 || !hasMore {
			t.Errorf(
				"expected 3 entries with more: got '%d' entries, has more '%t'",
				len(infos),
				hasMore,
			)
		}

		for i, info := range infos {
			if info.ID != ids[i] {
				t.Errorf("expected job id: got '%d', want '%d'", info.ID, ids[i])
			}
		}

		if err := m.RemoveOne(ids[1]); err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		if err := m.RemoveOne(ids[1]); !errors.Is(err, jobqueue.ErrJobNotFound) {
			t.Errorf("expected ErrJobNotFound: got '%v'", err)
		}

		if err := m.RemoveOne(0); !errors.Is(err, jobqueue.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument: got '%v'", err)
		}

		if n := m.RemoveAll(); n != 3 {
			t.Errorf("expected removed count: got '%d', want '%d'", n, 3)
		}

		if _, _, err := m.List(0); !errors.Is(err, jobqueue.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument: got '%v'", err)
		}

		m.Start()

		notifier.none(t)

		if stats := m.Stats(); stats.Queued != 0 {
			t.Errorf("expected empty queue: got '%d'", stats.Queued)
		}
	})

	t.Run("Test submit rejects invalid jobs", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestManager(t, jobqueue.Config{})

		params := validParams()
		params.Algorithm = jobqueue.AlgorithmUndefined

		if _, err := m.Submit(t.Context(), m.Setup(), params); !errors.Is(
			err,
			jobqueue.ErrInvalidArgument,
		) {
			t.Errorf("expected ErrInvalidArgument: got '%v'", err)
		}

		if _, err := m.Submit(t.Context(), 0, validParams()); !errors.Is(
			err,
			jobqueue.ErrInvalidArgument,
		) {
			t.Errorf("expected ErrInvalidArgument: got '%v'", err)
		}
	})

	t.Run("Test shutdown releases blocked submitter", func(t *testing.T) {
		t.Parallel()

		m, notifier := newTestManager(t, jobqueue.Config{
			Capacity: 1,
			Workers:  1,
		})

		submitTestJob(t, m, validParams())

		done := make(chan error, 1)
		go func() {
			_, err := m.Submit(t.Context(), m.Setup(), validParams())
			done <- err
		}()

		time.Sleep(blockedFor)

		m.Shutdown()

		select {
		case err := <-done:
			if !errors.Is(err, jobqueue.ErrBusy) {
				t.Errorf("expected ErrBusy: got '%v'", err)
			}
		case <-time.After(time.Second):
			t.Fatal("expected blocked submitter to be released")
		}

		if _, err := m.Submit(t.Context(), m.Setup(), validParams()); !errors.Is(
			err,
			jobqueue.ErrShuttingDown,
		) {
			t.Errorf("expected ErrShuttingDown: got '%v'", err)
		}

		stats := m.Stats()
		if stats.Queued != 0 || !stats.Stopping {
			t.Errorf("expected drained, stopping queue: got '%+v'", stats)
		}

		notifier.none(t)
	})

	t.Run("Test shutdown waits for job in progress", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		release := make(chan struct{})

		m, notifier := newTestManager(t, jobqueue.Config{
			Workers: 1,
			Executors: map[jobqueue.Category]jobqueue.Executor{
				jobqueue.CategoryChecksum: jobqueue.ExecutorFunc(
					func(ctx context.Context, task jobqueue.Task) error {
						close(started)
						<-release
						return ctx.Err()
					},
				),
			},
		})
		m.Start()

		id := submitTestJob(t, m, validParams())
		<-started

		stopped := make(chan struct{})
		go func() {
			m.Shutdown()
			close(stopped)
		}()

		select {
		case <-stopped:
			t.Fatal("expected shutdown to wait for the running job")
		case <-time.After(blockedFor):
		}

		close(release)

		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("expected shutdown to complete")
		}

		n := notifier.next(t)
		if n.JobID != id || !n.Succeeded {
			t.Errorf("expected job %d to succeed: got '%+v'", id, n)
		}
	})

	t.Run("Test setup skips queued ids after wrap", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestManager(t, jobqueue.Config{
			Capacity:          5,
			MaxID:             3,
			CheckIDCollisions: true,
		})

		first := submitTestJob(t, m, validParams())
		m.Setup()
		m.Setup()

		if got := m.Setup(); got == first {
			t.Errorf("expected queued id %d to be skipped", first)
		}
	})

	t.Run("Test default worker count", func(t *testing.T) {
		t.Parallel()

		if n := jobqueue.DefaultWorkerCount(); n < 2 {
			t.Errorf("expected at least 2 workers: got '%d'", n)
		}

		m, _ := newTestManager(t, jobqueue.Config{})
		m.Start()
		m.Start()

		if got := m.Stats().Workers; got != jobqueue.DefaultWorkerCount() {
			t.Errorf(
				"expected workers: got '%d', want '%d'",
				got,
				jobqueue.DefaultWorkerCount(),
			)
		}
	})
}
