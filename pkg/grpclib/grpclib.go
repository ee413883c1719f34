package grpclib

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// CallerMetadataKey carries the authenticated caller address
const CallerMetadataKey = "x-caller-id"

// WithCaller attaches the caller to an outgoing context
func WithCaller(ctx context.Context, caller string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, CallerMetadataKey, caller)
}

// CallerFromContext returns Unauthenticated when the caller is missing
func CallerFromContext(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing metadata")
	}
	values := md.Get(CallerMetadataKey)
	if len(values) == 0 || values[0] == "" {
		return "", status.Errorf(codes.Unauthenticated, "missing %s", CallerMetadataKey)
	}
	return values[0], nil
}

// RecoveryHandlerFunc ...
func RecoveryHandlerFunc(p interface{}) error {
	return status.Error(codes.Internal, fmt.Sprint(p))
}
