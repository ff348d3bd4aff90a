package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/nixpig/jobqueue/internal/jobqueue"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func rootCmd() *cobra.Command {
	cfg := &config{}

	c := &cobra.Command{
		Use:   "jobserver",
		Short: "gRPC server queueing checksum jobs on a shared worker pool",
		Example: "  jobserver --debug\n" +
			"  JOBSERVER_CAPACITY=10 jobserver --env-file .env",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd.Flags(), cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)

			return runServer(cmd.Context(), cfg, logger)
		},
	}

	bindFlags(c.Flags(), cfg)

	return c
}

func bindFlags(flags *pflag.FlagSet, cfg *config) {
	flags.StringVar(&cfg.Host, "host", "localhost", "gRPC server host to bind")
	flags.Uint16Var(&cfg.Port, "port", 8443, "gRPC server port")
	flags.BoolVar(&cfg.Debug, "debug", false, "Enable debug logs")

	flags.StringVar(
		&cfg.CertPath,
		"cert-path",
		"certs/server.crt",
		"Path to server TLS certificate",
	)

	flags.StringVar(
		&cfg.KeyPath,
		"key-path",
		"certs/server.key",
		"Path to server TLS private key",
	)

	flags.StringVar(
		&cfg.CACertPath,
		"ca-cert-path",
		"certs/ca.crt",
		"Path to CA certificate for mTLS",
	)

	flags.IntVar(
		&cfg.Capacity,
		"capacity",
		jobqueue.DefaultCapacity,
		"Number of queued jobs before submissions block",
	)

	flags.IntVar(
		&cfg.Workers,
		"workers",
		0,
		"Number of workers (0 uses the number of CPUs, minimum 2)",
	)

	flags.BoolVar(
		&cfg.CheckIDCollisions,
		"check-id-collisions",
		false,
		"Skip job ids that are still queued when the id counter wraps",
	)

	flags.IntVar(
		&cfg.MaxSessions,
		"max-sessions",
		0,
		"Maximum number of concurrently watched sessions (0 is unlimited)",
	)

	flags.StringVar(
		&cfg.AdminAddr,
		"admin-addr",
		"127.0.0.1:8081",
		"Admin HTTP address (empty disables). The admin API is unauthenticated "+
			"and can remove jobs, so bind it to loopback only",
	)

	flags.StringVar(
		&cfg.RedisURL,
		"redis-url",
		"",
		"Redis URL to also publish notifications to, e.g. redis://localhost:6379/0",
	)

	flags.StringVar(
		&cfg.EnvFile,
		"env-file",
		"",
		"Path to a file of JOBSERVER_* environment variables",
	)

	flags.DurationVar(
		&cfg.ShutdownTimeout,
		"shutdown-timeout",
		10*time.Second,
		"Time to wait for open calls before forcing shutdown",
	)
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
