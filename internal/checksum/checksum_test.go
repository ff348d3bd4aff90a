package checksum_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nixpig/jobqueue/internal/checksum"
	"github.com/nixpig/jobqueue/internal/jobqueue"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write '%s': '%v'", path, err)
	}

	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read '%s': '%v'", path, err)
	}

	return string(data)
}

func testErrorCode(t *testing.T, err error, want jobqueue.ErrorCode) {
	t.Helper()

	var execErr *jobqueue.ExecutorError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecutorError: got '%v'", err)
	}

	if execErr.Code != want {
		t.Errorf("expected error code: got '%s', want '%s'", execErr.Code, want)
	}
}

func TestExecutor(t *testing.T) {
	t.Parallel()

	scenarios := map[string]struct {
		algorithm jobqueue.Algorithm
		content   string
		digest    string
	}{
		"Test md5 of empty file": {
			algorithm: jobqueue.AlgorithmMD5,
			content:   "",
			digest:    "d41d8cd98f00b204e9800998ecf8427e",
		},
		"Test sha1 of empty file": {
			algorithm: jobqueue.AlgorithmSHA1,
			content:   "",
			digest:    "da39a3ee5e6b4b0d3255bfef95601890afd80709",
		},
		"Test md5 of content": {
			algorithm: jobqueue.AlgorithmMD5,
			content:   "hello world",
			digest:    "5eb63bbbe01eeed093cb22bb8f5acdc3",
		},
		"Test sha1 of multi-chunk content": {
			algorithm: jobqueue.AlgorithmSHA1,
			content:   strings.Repeat("a", 10000),
			digest:    "a080cbda64850abb7b7f67ee875ba068074ff6fe",
		},
	}

	for scenario, config := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			in := writeTestFile(t, dir, "in", config.content)
			out := filepath.Join(dir, "out")

			if err := checksum.New().Execute(t.Context(), jobqueue.Task{
				JobID:      1,
				Algorithm:  config.algorithm,
				InputPath:  in,
				OutputPath: out,
				Flags:      jobqueue.OpenExclusive,
			}); err != nil {
				t.Fatalf("expected not to receive error: got '%v'", err)
			}

			if got := readTestFile(t, out); got != config.digest {
				t.Errorf("expected digest: got '%s', want '%s'", got, config.digest)
			}

			if len(config.digest) != checksum.DigestLen(config.algorithm) {
				t.Errorf(
					"expected digest length: got '%d', want '%d'",
					checksum.DigestLen(config.algorithm),
					len(config.digest),
				)
			}

			got, err := checksum.Sum(config.algorithm, strings.NewReader(config.content))
			if err != nil {
				t.Errorf("expected not to receive error: got '%v'", err)
			}

			if got != config.digest {
				t.Errorf("expected sum: got '%s', want '%s'", got, config.digest)
			}
		})
	}
}

func TestExecutorErrors(t *testing.T) {
	t.Parallel()

	t.Run("Test invalid algorithm", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		err := checksum.New().Execute(t.Context(), jobqueue.Task{
			Algorithm:  jobqueue.AlgorithmUndefined,
			InputPath:  writeTestFile(t, dir, "in", "x"),
			OutputPath: filepath.Join(dir, "out"),
		})

		testErrorCode(t, err, jobqueue.ErrorCodeInvalidAlgorithm)
	})

	t.Run("Test missing input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		err := checksum.New().Execute(t.Context(), jobqueue.Task{
			Algorithm:  jobqueue.AlgorithmMD5,
			InputPath:  filepath.Join(dir, "missing"),
			OutputPath: filepath.Join(dir, "out"),
		})

		testErrorCode(t, err, jobqueue.ErrorCodeInputOpen)

		if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
			t.Errorf("expected output not to be created: got '%v'", err)
		}
	})

	t.Run("Test existing output with exclusive flag", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out := writeTestFile(t, dir, "out", "keep")

		err := checksum.New().Execute(t.Context(), jobqueue.Task{
			Algorithm:  jobqueue.AlgorithmMD5,
			InputPath:  writeTestFile(t, dir, "in", ""),
			OutputPath: out,
			Flags:      jobqueue.OpenExclusive,
		})

		testErrorCode(t, err, jobqueue.ErrorCodeOutputExists)

		if got := readTestFile(t, out); got != "keep" {
			t.Errorf("expected output untouched: got '%s'", got)
		}
	})

	t.Run("Test existing output is overwritten", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out := writeTestFile(t, dir, "out", "previous contents that are longer")

		if err := checksum.New().Execute(t.Context(), jobqueue.Task{
			Algorithm:  jobqueue.AlgorithmMD5,
			InputPath:  writeTestFile(t, dir, "in", ""),
			OutputPath: out,
		}); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if got := readTestFile(t, out); got != "d41d8cd98f00b204e9800998ecf8427e" {
			t.Errorf("expected overwritten digest: got '%s'", got)
		}
	})

	t.Run("Test output in missing directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		err := checksum.New().Execute(t.Context(), jobqueue.Task{
			Algorithm:  jobqueue.AlgorithmSHA1,
			InputPath:  writeTestFile(t, dir, "in", ""),
			OutputPath: filepath.Join(dir, "missing", "out"),
		})

		testErrorCode(t, err, jobqueue.ErrorCodeOutputOpen)
	})

	t.Run("Test input is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		err := checksum.New().Execute(t.Context(), jobqueue.Task{
			Algorithm:  jobqueue.AlgorithmMD5,
			InputPath:  dir,
			OutputPath: filepath.Join(dir, "out"),
		})

		testErrorCode(t, err, jobqueue.ErrorCodeIO)
	})
}
