package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	api "github.com/nixpig/jobqueue/api/v1"
	"github.com/nixpig/jobqueue/internal/jobqueue"
	"github.com/nixpig/jobqueue/internal/tlsconfig"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TODO: Inject version at build time.
const version = "0.0.1"

// defaultMaxEntries is the number of jobs listed when --max isn't given.
const defaultMaxEntries = 20

var apiCategories = map[jobqueue.Category]api.Category{
	jobqueue.CategoryChecksum: api.Category_CATEGORY_CHECKSUM,
	jobqueue.CategoryCompress: api.Category_CATEGORY_COMPRESS,
}

var apiAlgorithms = map[jobqueue.Algorithm]api.Algorithm{
	jobqueue.AlgorithmMD5:  api.Algorithm_ALGORITHM_MD5,
	jobqueue.AlgorithmSHA1: api.Algorithm_ALGORITHM_SHA1,
}

// TODO: Consider introducing config management like Viper.
type config struct {
	serverHostname string
	serverPort     string
	caCertPath     string
	certPath       string
	keyPath        string
}

type submitOptions struct {
	category  string
	algorithm string
	output    string
	overwrite bool
	noWait    bool
}

type cli struct {
	client api.JobServiceClient
	conn   *grpc.ClientConn
}

func newCLI() *cli {
	return &cli{}
}

func (c *cli) rootCmd() *cobra.Command {
	cfg := &config{}

	command := &cobra.Command{
		Use:          "jobctl",
		Short:        "CLI for submitting and managing jobs on a jobserver",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			creds, err := tlsconfig.Credentials(&tlsconfig.Config{
				CertPath:   cfg.certPath,
				KeyPath:    cfg.keyPath,
				CACertPath: cfg.caCertPath,
				ServerName: cfg.serverHostname,
			})
			if err != nil {
				return err
			}

			c.conn, err = grpc.NewClient(
				net.JoinHostPort(
					cfg.serverHostname,
					cfg.serverPort,
				),
				grpc.WithTransportCredentials(creds),
			)
			if err != nil {
				return err
			}

			c.client = api.NewJobServiceClient(c.conn)

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.conn == nil {
				return nil
			}

			// Connection needs to remain open for duration of any child commands.
			return c.conn.Close()
		},
	}

	command.AddCommand(
		c.submitCmd(),
		c.listCmd(),
		c.removeCmd(),
		c.removeAllCmd(),
	)

	command.CompletionOptions.HiddenDefaultCmd = true

	command.PersistentFlags().StringVar(
		&cfg.serverHostname,
		"server-hostname",
		"localhost",
		"Server hostname",
	)

	command.PersistentFlags().StringVar(
		&cfg.serverPort,
		"server-port",
		"8443",
		"Server port",
	)

	command.PersistentFlags().StringVar(
		&cfg.certPath,
		"cert-path",
		"certs/client-operator.crt",
		"Path to client TLS certificate",
	)

	command.PersistentFlags().StringVar(
		&cfg.keyPath,
		"key-path",
		"certs/client-operator.key",
		"Path to client TLS private key",
	)

	command.PersistentFlags().StringVar(
		&cfg.caCertPath,
		"ca-cert-path",
		"certs/ca.crt",
		"Path to CA certificate for mTLS",
	)

	return command
}

func (c *cli) submitCmd() *cobra.Command {
	opts := &submitOptions{}

	command := &cobra.Command{
		Use:   "submit [flags] INPUT",
		Short: "Submit a checksum job and wait for its result",
		Example: "  jobctl submit --algorithm sha1 server.log\n" +
			"  jobctl submit --output /tmp/log.md5 --overwrite --no-wait server.log",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := newSubmitRequest(args[0], opts)
			if err != nil {
				return err
			}

			return c.submit(cmd.Context(), cmd.OutOrStdout(), req, !opts.noWait)
		},
	}

	command.Flags().StringVar(
		&opts.category,
		"category",
		jobqueue.CategoryChecksum.String(),
		"Job category",
	)

	command.Flags().StringVar(
		&opts.algorithm,
		"algorithm",
		jobqueue.AlgorithmMD5.String(),
		"Checksum algorithm (md5 or sha1)",
	)

	command.Flags().StringVar(
		&opts.output,
		"output",
		"",
		"Path to write the digest to (default INPUT.ALGORITHM)",
	)

	command.Flags().BoolVar(
		&opts.overwrite,
		"overwrite",
		false,
		"Overwrite the output if it exists",
	)

	command.Flags().BoolVar(
		&opts.noWait,
		"no-wait",
		false,
		"Print the job id and return once the job is queued",
	)

	return command
}

// newSubmitRequest builds the request for input, resolving relative paths
// against the working directory. The id and session are set by submit.
func newSubmitRequest(
	input string,
	opts *submitOptions,
) (*api.SubmitJobRequest, error) {
	category, err := jobqueue.ParseCategory(opts.category)
	if err != nil {
		return nil, err
	}

	algorithm, err := jobqueue.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return nil, err
	}

	output := opts.output
	if output == "" {
		output = defaultOutputPath(input, algorithm)
	}

	inputPath, err := filepath.Abs(input)
	if err != nil {
		return nil, fmt.Errorf("resolve input path: %w", err)
	}

	outputPath, err := filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("resolve output path: %w", err)
	}

	return &api.SubmitJobRequest{
		Category:   apiCategories[category],
		Algorithm:  apiAlgorithms[algorithm],
		InputPath:  inputPath,
		OutputPath: outputPath,
		Overwrite:  opts.overwrite,
	}, nil
}

func defaultOutputPath(input string, algorithm jobqueue.Algorithm) string {
	return input + "." + algorithm.String()
}

func (c *cli) submit(
	ctx context.Context,
	w io.Writer,
	req *api.SubmitJobRequest,
	wait bool,
) error {
	req.Session = uuid.NewString()

	var stream api.JobService_WatchNotificationsClient

	if wait {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		var err error

		stream, err = c.client.WatchNotifications(
			watchCtx,
			&api.WatchNotificationsRequest{Session: req.Session},
		)
		if err != nil {
			return mapError(err)
		}

		// Headers are sent once the session is registered, after which the
		// job's notification can't be missed.
		if _, err := stream.Header(); err != nil {
			return mapError(err)
		}
	}

	setupResp, err := c.client.SetupJob(ctx, &api.SetupJobRequest{})
	if err != nil {
		return mapError(err)
	}

	req.Id = setupResp.Id

	submitResp, err := c.client.SubmitJob(ctx, req)
	if err != nil {
		return mapError(err)
	}

	if !wait {
		fmt.Fprintf(w, "%d\n", submitResp.Id)
		return nil
	}

	n, err := awaitNotification(stream, submitResp.Id)
	if err != nil {
		return err
	}

	if !n.Succeeded {
		return fmt.Errorf(
			"job %d failed: %s",
			n.JobId,
			jobqueue.ErrorCode(n.ErrorCode),
		)
	}

	fmt.Fprintf(w, "%d\t%s\n", n.JobId, req.OutputPath)

	return nil
}

// awaitNotification receives from stream until the notification for id
// arrives.
func awaitNotification(
	stream api.JobService_WatchNotificationsClient,
	id int32,
) (*api.Notification, error) {
	for {
		n, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				return nil, errors.New("server closed stream before job completed")
			}

			return nil, mapError(err)
		}

		if n.JobId == id {
			return n, nil
		}
	}
}

func (c *cli) listCmd() *cobra.Command {
	var maxEntries int32

	command := &cobra.Command{
		Use:     "list [flags]",
		Short:   "List queued jobs in the order they will be processed",
		Example: "  jobctl list --max 50",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.ListJobs(
				cmd.Context(),
				&api.ListJobsRequest{MaxEntries: maxEntries},
			)
			if err != nil {
				return mapError(err)
			}

			printJobs(cmd.OutOrStdout(), resp)

			return nil
		},
	}

	command.Flags().Int32Var(
		&maxEntries,
		"max",
		defaultMaxEntries,
		"Maximum number of jobs to list",
	)

	return command
}

func printJobs(w io.Writer, resp *api.ListJobsResponse) {
	// TODO: Only output headers if TTY. Or could add a flag like --plain or
	// --skip-headers to hide headers.
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "ID\tSUBMITTER\tCATEGORY\tALGORITHM\tQUEUED\tINPUT\t\n")

	for _, entry := range resp.Entries {
		fmt.Fprintf(
			tw,
			"%d\t%s\t%s\t%s\t%s\t%s\t\n",
			entry.Id,
			entry.Submitter,
			mapCategory(entry.Category),
			mapAlgorithm(entry.Algorithm),
			entry.QueuedAt.AsTime().Local().Format(time.DateTime),
			entry.InputPath,
		)
	}

	tw.Flush()

	if resp.HasMore {
		fmt.Fprintf(w, "more jobs queued, use --max to list more\n")
	}
}

func (c *cli) removeCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "remove [flags] JOB_ID",
		Short:   "Remove a queued job",
		Example: "  jobctl remove 42",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}

			if _, err := c.client.RemoveJob(
				cmd.Context(),
				&api.RemoveJobRequest{Id: id},
			); err != nil {
				return mapError(err)
			}

			return nil
		},
	}

	return command
}

func (c *cli) removeAllCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "remove-all",
		Short:   "Remove every queued job",
		Example: "  jobctl remove-all",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.RemoveAllJobs(
				cmd.Context(),
				&api.RemoveAllJobsRequest{},
			)
			if err != nil {
				return mapError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", resp.Removed)

			return nil
		},
	}

	return command
}

func parseJobID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid job id: '%s'", s)
	}

	return int32(id), nil
}

// mapError translates gRPC errors to human-readable messages.
func mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return errors.New("not found")
	case codes.PermissionDenied:
		return errors.New("permission denied")
	case codes.Unauthenticated:
		return errors.New("not authenticated")
	case codes.InvalidArgument:
		return fmt.Errorf("%s", st.Message())
	case codes.ResourceExhausted:
		return errors.New("server busy, try again later")
	case codes.Unavailable:
		return errors.New("server unavailable")
	case codes.Canceled:
		return errors.New("cancelled")
	default:
		return fmt.Errorf("%s", st.Message())
	}
}

// mapCategory translates gRPC Category enum values to human-readable strings.
func mapCategory(category api.Category) string {
	switch category {
	case api.Category_CATEGORY_UNSPECIFIED:
		return "Unspecified"
	case api.Category_CATEGORY_CHECKSUM:
		return "Checksum"
	case api.Category_CATEGORY_COMPRESS:
		return "Compress"
	default:
		return fmt.Sprintf("Unknown(%d)", category)
	}
}

// mapAlgorithm translates gRPC Algorithm enum values to human-readable
// strings.
func mapAlgorithm(algorithm api.Algorithm) string {
	switch algorithm {
	case api.Algorithm_ALGORITHM_UNSPECIFIED:
		return "Unspecified"
	case api.Algorithm_ALGORITHM_MD5:
		return "MD5"
	case api.Algorithm_ALGORITHM_SHA1:
		return "SHA1"
	default:
		return fmt.Sprintf("Unknown(%d)", algorithm)
	}
}
