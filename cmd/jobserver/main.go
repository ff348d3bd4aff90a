// Command jobserver serves the job queue over gRPC with mutual TLS.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// TODO: Inject version at build time.
const version = "0.0.1"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		os.Interrupt,
	)
	defer cancel()

	return rootCmd().ExecuteContext(ctx)
}
