package main

import (
	"context"
	"log/slog"

	"github.com/nixpig/jobqueue/internal/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// authorise checks the client may call method and returns ctx carrying its
// identity.
func authorise(
	ctx context.Context,
	method string,
	logger *slog.Logger,
) (context.Context, error) {
	id, err := auth.Authorise(ctx, method)
	if err != nil {
		if id.CN == "" {
			logger.Warn("failed to authenticate client", "method", method, "err", err)
			return nil, status.Error(codes.Unauthenticated, "not authenticated")
		}

		logger.Warn(
			"failed to authorise client",
			"cn", id.CN,
			"role", id.Role,
			"method", method,
			"err", err,
		)

		return nil, status.Error(codes.PermissionDenied, "not authorised")
	}

	logger.Debug(
		"authorised client request",
		"cn", id.CN,
		"role", id.Role,
		"method", method,
	)

	return auth.WithIdentity(ctx, id), nil
}

// contextCheckUnaryInterceptor rejects requests with a cancelled context.
func contextCheckUnaryInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	if ctx.Err() != nil {
		return nil, status.FromContextError(ctx.Err()).Err()
	}

	return handler(ctx, req)
}

func authUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		ctx, err := authorise(ctx, info.FullMethod, logger)
		if err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

func authStreamInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		ctx, err := authorise(ss.Context(), info.FullMethod, logger)
		if err != nil {
			return err
		}

		return handler(srv, &identityStream{ServerStream: ss, ctx: ctx})
	}
}

// identityStream overrides the context of a grpc.ServerStream with one that
// carries the client's identity.
type identityStream struct {
	grpc.ServerStream

	ctx context.Context
}

func (s *identityStream) Context() context.Context {
	return s.ctx
}
