//go:build e2e

package e2e_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nixpig/jobqueue/certs"
)

type testEnv struct {
	binDir     string
	certDir    string
	serverCmd  *exec.Cmd
	cliPath    string
	serverPath string
}

// NOTE: Relative paths are used to determine the source locations to build
// the CLI and server binaries. Running this test from anywhere that breaks
// those relative paths will not work.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		binDir:  t.TempDir(),
		certDir: t.TempDir(),
	}

	env.serverPath = filepath.Join(env.binDir, "jobserver")

	buildServer := exec.Command(
		"go",
		"build",
		"-o",
		env.serverPath,
		"../cmd/jobserver",
	)

	if output, err := buildServer.CombinedOutput(); err != nil {
		t.Fatalf(
			"failed to build server binary: '%v' (output: '%s')",
			err,
			output,
		)
	}

	env.cliPath = filepath.Join(env.binDir, "jobctl")

	buildCLI := exec.Command("go", "build", "-o", env.cliPath, "../cmd/jobctl")

	if output, err := buildCLI.CombinedOutput(); err != nil {
		t.Fatalf("failed to build CLI binary: '%v' (output: '%s')", err, output)
	}

	certFiles := []string{
		"ca.crt",
		"server.crt",
		"server.key",
		"client-operator.crt",
		"client-operator.key",
	}

	for _, filename := range certFiles {
		data, err := certs.FS.ReadFile(filename)
		if err != nil {
			t.Fatalf("read cert %s: %v", filename, err)
		}

		path := filepath.Join(env.certDir, filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("save cert '%s': '%v'", filename, err)
		}
	}

	env.serverCmd = exec.Command(
		env.serverPath,
		"--port", "8443",
		"--cert-path", filepath.Join(env.certDir, "server.crt"),
		"--key-path", filepath.Join(env.certDir, "server.key"),
		"--ca-cert-path", filepath.Join(env.certDir, "ca.crt"),
		"--admin-addr", "",
	)

	if err := env.serverCmd.Start(); err != nil {
		t.Fatalf("failed to exec server command: '%v'", err)
	}

	t.Cleanup(func() {
		if env.serverCmd.Process != nil {
			env.serverCmd.Process.Kill()
			env.serverCmd.Wait()
		}
	})

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("failed to start server")
		case <-ticker.C:
			if _, _, err := env.runCLI(t, "list"); err == nil {
				return env
			}
		}
	}
}

func (env *testEnv) runCLI(
	t *testing.T,
	args ...string,
) (string, string, error) {
	t.Helper()

	cliArgs := []string{
		"--server-hostname", "localhost",
		"--server-port", "8443",
		"--cert-path", filepath.Join(env.certDir, "client-operator.crt"),
		"--key-path", filepath.Join(env.certDir, "client-operator.key"),
		"--ca-cert-path", filepath.Join(env.certDir, "ca.crt"),
	}

	cliArgs = append(cliArgs, args...)

	cmd := exec.Command(env.cliPath, cliArgs...)

	var stdout strings.Builder
	var stderr strings.Builder

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// TODO: For a production solution, we might consider a more comprehensive E2E
// test suite. For this prototype, a quick smoke test to verify CLI is able to
// communicate with the server and the available commands run should suffice.
func TestBasicE2E(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("Test job lifecycle", func(t *testing.T) {
		input := filepath.Join(t.TempDir(), "input.txt")
		if err := os.WriteFile(input, []byte("hello world"), 0644); err != nil {
			t.Fatalf("failed to write input: '%v'", err)
		}

		submitStdout, submitStderr, err := env.runCLI(
			t,
			"submit",
			"--algorithm", "md5",
			input,
		)
		if err != nil {
			t.Fatalf(
				"expected submit not to return error: got '%v' (stderr: '%s')",
				err,
				submitStderr,
			)
		}

		if !strings.Contains(submitStdout, input+".md5") {
			t.Errorf(
				"expected submit output path: got '%s', want '%s'",
				submitStdout,
				input+".md5",
			)
		}

		digest, err := os.ReadFile(input + ".md5")
		if err != nil {
			t.Fatalf("failed to read digest: '%v'", err)
		}

		want := "5eb63bbbe01eeed093cb22bb8f5acdc3"
		if got := strings.TrimSpace(string(digest)); got != want {
			t.Errorf("expected digest: got '%s', want '%s'", got, want)
		}

		// Output already exists and --overwrite isn't set.
		_, submitStderr, err = env.runCLI(t, "submit", "--algorithm", "md5", input)
		if err == nil {
			t.Error("expected second submit to return error")
		}

		if !strings.Contains(submitStderr, "output already exists") {
			t.Errorf("expected error message: got '%s'", submitStderr)
		}
	})

	t.Run("Test queue management", func(t *testing.T) {
		listStdout, _, err := env.runCLI(t, "list", "--max", "5")
		if err != nil {
			t.Fatalf("expected list not to return error: got '%v'", err)
		}

		if !strings.Contains(listStdout, "SUBMITTER") {
			t.Errorf("expected list headers: got '%s'", listStdout)
		}

		removeAllStdout, _, err := env.runCLI(t, "remove-all")
		if err != nil {
			t.Fatalf("expected remove-all not to return error: got '%v'", err)
		}

		if strings.TrimSpace(removeAllStdout) != "0" {
			t.Errorf("expected nothing removed: got '%s'", removeAllStdout)
		}

		_, removeStderr, err := env.runCLI(t, "remove", "1")
		if err == nil {
			t.Error("expected remove of finished job to return error")
		}

		if !strings.Contains(removeStderr, "Error: not found") {
			t.Errorf("expected error message: got '%s'", removeStderr)
		}
	})
}
