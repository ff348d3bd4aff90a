package jobqueue

import (
	"context"
	"errors"
	"fmt"
)

// ErrorCode is the non-negative result code reported in a failure
// Notification. ErrorCodeNone is reported on success.
type ErrorCode int32

const (
	ErrorCodeNone ErrorCode = iota
	ErrorCodeInvalidAlgorithm
	ErrorCodeInputOpen
	ErrorCodeOutputOpen
	ErrorCodeOutputExists
	ErrorCodeIO
	ErrorCodeOutOfMemory
	ErrorCodeUnsupported
	ErrorCodeInternal
)

var errorCodes = []string{
	"ok",
	"invalid algorithm",
	"failed to open input",
	"failed to open output",
	"output already exists",
	"i/o error",
	"out of memory",
	"operation not supported",
	"internal error",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(errorCodes) {
		return fmt.Sprintf("error code %d", int32(c))
	}

	return errorCodes[c]
}

// Task is what an Executor is asked to perform for a claimed Job.
type Task struct {
	JobID      int32
	Algorithm  Algorithm
	InputPath  string
	OutputPath string
	Flags      OpenFlags
}

// Executor performs the work of a Job. A non-nil error should be an
// *ExecutorError; any other error is reported as ErrorCodeInternal.
type Executor interface {
	Execute(ctx context.Context, task Task) error
}

// ExecutorFunc adapts a function to an Executor.
type ExecutorFunc func(ctx context.Context, task Task) error

func (f ExecutorFunc) Execute(ctx context.Context, task Task) error {
	return f(ctx, task)
}

// codeOf returns the ErrorCode to report for an Executor's error.
func codeOf(err error) ErrorCode {
	if err == nil {
		return ErrorCodeNone
	}

	var execErr *ExecutorError
	if errors.As(err, &execErr) && execErr.Code > ErrorCodeNone {
		return execErr.Code
	}

	return ErrorCodeInternal
}
