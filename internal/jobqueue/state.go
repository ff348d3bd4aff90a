package jobqueue

import "sync/atomic"

type JobState int32

const (
	// JobStateUnknown is the zero value for functions that return a (possibly
	// absent) JobState.
	JobStateUnknown JobState = iota

	// JobStateNew indicates the job has been constructed and validated but has
	// not yet been accepted into the queue.
	JobStateNew

	// JobStatePending indicates the job is waiting in the queue to be claimed
	// by a worker. It can be removed administratively.
	JobStatePending

	// JobStateProcessing indicates a worker has claimed the job and handed it
	// to an Executor. It can no longer be removed.
	JobStateProcessing

	// JobStateSuccess indicates the Executor completed the job.
	JobStateSuccess

	// JobStateFailed indicates the Executor returned an error. The error code
	// is reported in the job's notification.
	JobStateFailed

	// JobStateAborted is reserved for jobs cancelled after being accepted. No
	// transition currently reaches it.
	JobStateAborted
)

// NOTE: This slice needs to be kept in sync with the JobState values.
var jobStates = []string{
	"Unknown",
	"New",
	"Pending",
	"Processing",
	"Success",
	"Failed",
	"Aborted",
}

// String returns a string representation of the JobState by using the int
// value to index into a slice.
func (s JobState) String() string {
	if int(s) < 0 || int(s) >= len(jobStates) {
		return jobStates[0]
	}

	return jobStates[s]
}

// Terminal returns whether no further transitions are possible from s.
func (s JobState) Terminal() bool {
	return s == JobStateSuccess || s == JobStateFailed || s == JobStateAborted
}

// AtomicJobState is a wrapper around an atomic.Int32 to provide atomic
// operations on a JobState, so transitions can be validated with
// CompareAndSwap without holding the queue lock.
type AtomicJobState struct {
	v atomic.Int32
}

// Load atomically loads the JobState value.
func (a *AtomicJobState) Load() JobState {
	return JobState(a.v.Load())
}

// Store atomically stores the JobState value.
func (a *AtomicJobState) Store(s JobState) {
	a.v.Store(int32(s))
}

// CompareAndSwap performs an atomic compare-and-swap operation with an old and
// new JobState.
func (a *AtomicJobState) CompareAndSwap(o, n JobState) bool {
	return a.v.CompareAndSwap(int32(o), int32(n))
}

// transition moves the state from o to n or returns an InvalidStateError
// describing the state actually observed.
func (a *AtomicJobState) transition(o, n JobState) error {
	if !a.CompareAndSwap(o, n) {
		return NewInvalidStateError(a.Load(), n)
	}

	return nil
}
