package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	api "github.com/nixpig/jobqueue/api/v1"
	"github.com/nixpig/jobqueue/internal/auth"
	"github.com/nixpig/jobqueue/internal/checksum"
	"github.com/nixpig/jobqueue/internal/jobqueue"
	"github.com/nixpig/jobqueue/internal/jobqueue/notify"
	"github.com/nixpig/jobqueue/internal/tlsconfig"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// redisPingTimeout bounds the connectivity check made at startup.
const redisPingTimeout = 5 * time.Second

var categories = map[api.Category]jobqueue.Category{
	api.Category_CATEGORY_CHECKSUM: jobqueue.CategoryChecksum,
	api.Category_CATEGORY_COMPRESS: jobqueue.CategoryCompress,
}

var algorithms = map[api.Algorithm]jobqueue.Algorithm{
	api.Algorithm_ALGORITHM_MD5:  jobqueue.AlgorithmMD5,
	api.Algorithm_ALGORITHM_SHA1: jobqueue.AlgorithmSHA1,
}

type server struct {
	api.UnimplementedJobServiceServer

	manager    *jobqueue.Manager
	registry   *notify.Registry
	logger     *slog.Logger
	grpcServer *grpc.Server
}

func newServer(
	manager *jobqueue.Manager,
	registry *notify.Registry,
	logger *slog.Logger,
	cfg *config,
) (*server, error) {
	tlsCreds, err := tlsconfig.Credentials(&tlsconfig.Config{
		CertPath:   cfg.CertPath,
		KeyPath:    cfg.KeyPath,
		CACertPath: cfg.CACertPath,
		Server:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("load TLS credentials: %w", err)
	}

	s := &server{manager: manager, registry: registry, logger: logger}

	s.grpcServer = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			contextCheckUnaryInterceptor,
			authUnaryInterceptor(logger),
		),
		grpc.StreamInterceptor(authStreamInterceptor(logger)),
		grpc.Creds(tlsCreds),
	)

	api.RegisterJobServiceServer(s.grpcServer, s)

	return s, nil
}

func (s *server) start(listener net.Listener) error {
	return s.grpcServer.Serve(listener)
}

// shutdown waits for open calls to finish until ctx is done, then closes any
// that remain.
func (s *server) shutdown(ctx context.Context) {
	done := make(chan struct{})

	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("forcing server stop", "err", ctx.Err())
		s.grpcServer.Stop()
		<-done
	}
}

func (s *server) SetupJob(
	ctx context.Context,
	req *api.SetupJobRequest,
) (*api.SetupJobResponse, error) {
	return &api.SetupJobResponse{Id: s.manager.Setup()}, nil
}

func (s *server) SubmitJob(
	ctx context.Context,
	req *api.SubmitJobRequest,
) (*api.SubmitJobResponse, error) {
	submitter, err := submitterFor(ctx, req.Session)
	if err != nil {
		return nil, err
	}

	category, ok := categories[req.Category]
	if !ok {
		return nil, status.Errorf(
			codes.InvalidArgument,
			"invalid category: %s",
			req.Category,
		)
	}

	algorithm, ok := algorithms[req.Algorithm]
	if !ok {
		return nil, status.Errorf(
			codes.InvalidArgument,
			"invalid algorithm: %s",
			req.Algorithm,
		)
	}

	if !filepath.IsAbs(req.InputPath) || !filepath.IsAbs(req.OutputPath) {
		return nil, status.Error(
			codes.InvalidArgument,
			"input and output paths must be absolute",
		)
	}

	var flags jobqueue.OpenFlags
	if !req.Overwrite {
		flags |= jobqueue.OpenExclusive
	}

	id, err := s.manager.Submit(ctx, req.Id, jobqueue.Params{
		Submitter:  submitter,
		Category:   category,
		Algorithm:  algorithm,
		InputPath:  filepath.Clean(req.InputPath),
		OutputPath: filepath.Clean(req.OutputPath),
		Flags:      flags,
	})
	if err != nil {
		return nil, s.mapError("submit job", err)
	}

	return &api.SubmitJobResponse{Id: id}, nil
}

func (s *server) RemoveJob(
	ctx context.Context,
	req *api.RemoveJobRequest,
) (*api.RemoveJobResponse, error) {
	if err := s.manager.RemoveOne(req.Id); err != nil {
		return nil, s.mapError("remove job", err)
	}

	return &api.RemoveJobResponse{}, nil
}

func (s *server) RemoveAllJobs(
	ctx context.Context,
	req *api.RemoveAllJobsRequest,
) (*api.RemoveAllJobsResponse, error) {
	return &api.RemoveAllJobsResponse{
		Removed: int32(s.manager.RemoveAll()),
	}, nil
}

func (s *server) ListJobs(
	ctx context.Context,
	req *api.ListJobsRequest,
) (*api.ListJobsResponse, error) {
	infos, hasMore, err := s.manager.List(int(req.MaxEntries))
	if err != nil {
		return nil, s.mapError("list jobs", err)
	}

	entries := make([]*api.JobEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, &api.JobEntry{
			Id:        info.ID,
			Submitter: info.Submitter,
			Category:  api.Category(info.Category),
			Algorithm: api.Algorithm(info.Algorithm),
			InputPath: info.InputPath,
			QueuedAt:  timestamppb.New(info.QueuedAt),
		})
	}

	return &api.ListJobsResponse{Entries: entries, HasMore: hasMore}, nil
}

// WatchNotifications streams the notifications for the client's session. The
// session is registered before headers are sent, so once a client has
// received headers it won't miss a notification.
func (s *server) WatchNotifications(
	req *api.WatchNotificationsRequest,
	stream api.JobService_WatchNotificationsServer,
) error {
	ctx := stream.Context()

	if ctx.Err() != nil {
		return status.FromContextError(ctx.Err()).Err()
	}

	submitter, err := submitterFor(ctx, req.Session)
	if err != nil {
		return err
	}

	mailbox, err := s.registry.Open(submitter)
	if err != nil {
		return s.mapError("open mailbox", err)
	}
	defer s.registry.Close(submitter)

	reader := mailbox.Subscribe()
	defer reader.Close()

	if err := stream.SendHeader(metadata.MD{}); err != nil {
		s.logger.Warn("send stream header", "submitter", submitter, "err", err)
		return status.Error(codes.Unavailable, "failed to open stream")
	}

	s.logger.Debug("watching notifications", "submitter", submitter)

	for {
		n, err := reader.Next(ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}

			return status.FromContextError(err).Err()
		}

		if err := stream.Send(&api.Notification{
			JobId:     n.JobID,
			Succeeded: n.Succeeded,
			ErrorCode: int32(n.ErrorCode),
			Message:   n.Message,
		}); err != nil {
			s.logger.Warn(
				"send notification",
				"submitter", submitter,
				"job_id", n.JobID,
				"err", err,
			)

			return status.Error(codes.DataLoss, "failed to send notification")
		}
	}
}

// submitterFor returns the submitter identity for the client in ctx and the
// given session.
func submitterFor(ctx context.Context, session string) (string, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "not authenticated")
	}

	if _, err := uuid.Parse(session); err != nil {
		return "", status.Error(codes.InvalidArgument, "session must be a UUID")
	}

	return id.CN + "/" + session, nil
}

// mapError translates jobqueue errors to gRPC errors.
func (s *server) mapError(logMsg string, err error) error {
	switch {
	case errors.Is(err, jobqueue.ErrInvalidArgument):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, jobqueue.ErrJobNotFound):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, jobqueue.ErrShuttingDown),
		errors.Is(err, jobqueue.ErrBusy):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.Unavailable, err.Error())

	case errors.Is(err, jobqueue.ErrResourceExhausted):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.ResourceExhausted, err.Error())

	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		s.logger.Debug(logMsg, "err", err)
		return status.FromContextError(err).Err()

	case errors.As(err, new(jobqueue.InvalidStateError)):
		s.logger.Warn(logMsg, "err", err)
		return status.Error(codes.FailedPrecondition, err.Error())

	default:
		s.logger.Error(logMsg, "err", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

// newNotifier returns the Notifier jobs report to: the session registry and,
// if a Redis URL is configured, Redis pub/sub. The returned func releases the
// Redis connection.
func newNotifier(
	ctx context.Context,
	cfg *config,
	registry *notify.Registry,
	logger *slog.Logger,
) (jobqueue.Notifier, func(), error) {
	if cfg.RedisURL == "" {
		return registry, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	publisher := notify.NewRedis(client, notify.RedisOptions{}, logger)

	closeFn := func() {
		publisher.Close()

		if err := client.Close(); err != nil {
			logger.Warn("close redis client", "err", err)
		}
	}

	return notify.Multi{registry, publisher}, closeFn, nil
}

func runServer(ctx context.Context, cfg *config, logger *slog.Logger) error {
	registry := notify.NewRegistry(cfg.MaxSessions, logger)

	notifier, closeNotifier, err := newNotifier(ctx, cfg, registry, logger)
	if err != nil {
		return err
	}
	defer closeNotifier()

	manager := jobqueue.NewManager(jobqueue.Config{
		Capacity: cfg.Capacity,
		Workers:  cfg.Workers,
		Executors: map[jobqueue.Category]jobqueue.Executor{
			jobqueue.CategoryChecksum: checksum.New(),
		},
		Notifier:          notifier,
		Logger:            logger,
		CheckIDCollisions: cfg.CheckIDCollisions,
	})

	s, err := newServer(manager, registry, logger, cfg)
	if err != nil {
		return err
	}

	listener, err := net.Listen(
		"tcp",
		net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port))),
	)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	manager.Start()

	errCh := make(chan error, 2)

	go func() {
		if err := s.start(listener); err != nil {
			errCh <- fmt.Errorf("serve gRPC: %w", err)
		}
	}()

	var admin *http.Server
	if cfg.AdminAddr != "" {
		if !isLoopbackAddr(cfg.AdminAddr) {
			logger.Warn(
				"admin API is unauthenticated and reachable beyond loopback",
				"admin_addr", cfg.AdminAddr,
			)
		}

		admin = newAdminServer(cfg.AdminAddr, newAdminRouter(manager, logger))

		go func() {
			if err := admin.ListenAndServe(); err != nil &&
				!errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("serve admin: %w", err)
			}
		}()
	}

	logger.Info(
		"server started",
		"addr", listener.Addr().String(),
		"admin_addr", cfg.AdminAddr,
		"redis", cfg.RedisURL != "",
	)

	var runErr error

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case runErr = <-errCh:
		logger.Error("server failed", "err", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.ShutdownTimeout,
	)
	defer cancel()

	if admin != nil {
		if err := admin.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown admin server", "err", err)
		}
	}

	// Jobs already being processed finish and notify before sessions are
	// closed.
	manager.Shutdown()
	registry.CloseAll()
	s.shutdown(shutdownCtx)

	return runErr
}
