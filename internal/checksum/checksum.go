// Package checksum implements the jobqueue.Executor for checksum jobs. It
// hashes the input file and writes the lowercase hex digest to the output
// file.
package checksum

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/nixpig/jobqueue/internal/jobqueue"
)

const (
	// readBufferSize is the size of the chunks the input is hashed in. 4KB
	// matches the page size on most hosts.
	readBufferSize = 4096

	outputPerm = 0644
)

// Executor computes file checksums. The zero value is ready to use.
type Executor struct{}

// New returns an Executor.
func New() *Executor {
	return &Executor{}
}

// Execute implements jobqueue.Executor. Errors are *jobqueue.ExecutorError.
func (e *Executor) Execute(ctx context.Context, task jobqueue.Task) error {
	h, err := newHash(task.Algorithm)
	if err != nil {
		return jobqueue.NewExecutorError(jobqueue.ErrorCodeInvalidAlgorithm, err)
	}

	src, err := os.Open(task.InputPath)
	if err != nil {
		return jobqueue.NewExecutorError(
			classify(err, jobqueue.ErrorCodeInputOpen),
			fmt.Errorf("open input: %w", err),
		)
	}
	defer src.Close()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if task.Flags.Exclusive() {
		flags |= os.O_EXCL
	}

	dst, err := os.OpenFile(task.OutputPath, flags, outputPerm)
	if err != nil {
		code := jobqueue.ErrorCodeOutputOpen
		if errors.Is(err, fs.ErrExist) {
			code = jobqueue.ErrorCodeOutputExists
		}

		return jobqueue.NewExecutorError(
			classify(err, code),
			fmt.Errorf("open output: %w", err),
		)
	}
	defer dst.Close()

	buf := make([]byte, readBufferSize)
	if _, err := io.CopyBuffer(h, &contextReader{ctx: ctx, r: src}, buf); err != nil {
		code := jobqueue.ErrorCodeIO
		if ctx.Err() != nil {
			code = jobqueue.ErrorCodeInternal
		}

		return jobqueue.NewExecutorError(
			classify(err, code),
			fmt.Errorf("read input: %w", err),
		)
	}

	digest := hex.EncodeToString(h.Sum(nil))

	n, err := io.WriteString(dst, digest)
	if err == nil && n != len(digest) {
		err = io.ErrShortWrite
	}

	if err == nil {
		err = dst.Close()
	}

	if err != nil {
		return jobqueue.NewExecutorError(
			classify(err, jobqueue.ErrorCodeIO),
			fmt.Errorf("write digest: %w", err),
		)
	}

	return nil
}

// Sum returns the lowercase hex digest of everything read from r.
func Sum(algorithm jobqueue.Algorithm, r io.Reader) (string, error) {
	h, err := newHash(algorithm)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// DigestLen returns the length of the hex digest produced for algorithm, or 0
// if it isn't supported.
func DigestLen(algorithm jobqueue.Algorithm) int {
	switch algorithm {
	case jobqueue.AlgorithmMD5:
		return md5.Size * 2
	case jobqueue.AlgorithmSHA1:
		return sha1.Size * 2
	default:
		return 0
	}
}

func newHash(algorithm jobqueue.Algorithm) (hash.Hash, error) {
	switch algorithm {
	case jobqueue.AlgorithmMD5:
		return md5.New(), nil
	case jobqueue.AlgorithmSHA1:
		return sha1.New(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
	}
}

// classify reports allocation failures as ErrorCodeOutOfMemory and anything
// else as fallback.
func classify(err error, fallback jobqueue.ErrorCode) jobqueue.ErrorCode {
	if errors.Is(err, syscall.ENOMEM) {
		return jobqueue.ErrorCodeOutOfMemory
	}

	return fallback
}

// contextReader stops reading once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}
