package jobqueue

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrJobNotFound       = errors.New("job not found")

	// ErrShuttingDown is returned when an operation is attempted after
	// shutdown has begun.
	ErrShuttingDown = errors.New("queue is shutting down")

	// ErrBusy is returned to a producer that was waiting for a free slot when
	// shutdown began.
	ErrBusy = errors.New("queue stopped while waiting for a free slot")
)

// InvalidStateError is returned when attempting an invalid Job state
// transition.
type InvalidStateError struct {
	from JobState
	to   JobState
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("cannot go from %s to %s", e.from, e.to)
}

func NewInvalidStateError(from, to JobState) InvalidStateError {
	return InvalidStateError{from, to}
}

// ExecutorError is returned by an Executor when a Job could not be completed.
// Code is reported to the submitter in the failure notification.
type ExecutorError struct {
	Code ErrorCode
	Err  error
}

func (e *ExecutorError) Error() string {
	if e.Err == nil {
		return e.Code.String()
	}

	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *ExecutorError) Unwrap() error {
	return e.Err
}

// NewExecutorError wraps err with the given code.
func NewExecutorError(code ErrorCode, err error) *ExecutorError {
	return &ExecutorError{Code: code, Err: err}
}

// invalidArgf returns an error wrapping ErrInvalidArgument.
func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
