package otellib

import (
	"context"
	"testing"

	"github.com/QuangTung97/crowdfund-ledger/pkg/grpclib"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestExtract_Without_Logger(t *testing.T) {
	logger := Extract(context.Background())
	assert.NotNil(t, logger)
	logger.Info("dropped")
}

func TestToContext_And_Extract(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := ToContext(context.Background(), zap.New(core))

	Extract(ctx).Info("campaign launched", zap.Int64("campaign.id", 3))

	entries := logs.All()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "campaign launched", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(3), fields["campaign.id"])
	assert.Contains(t, fields, traceIDField)
	assert.Contains(t, fields, spanIDField)
}

func TestWrapError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := ToContext(context.Background(), zap.New(core))

	WrapError(ctx, assert.AnError)

	entries := logs.All()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "WrapError", entries[0].Message)
	assert.Equal(t, assert.AnError.Error(), entries[0].ContextMap()["error"])
}

func TestSetTraceInfoInterceptor(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	interceptor := SetTraceInfoInterceptor(zap.New(core))

	ctx := grpc_ctxtags.SetInContext(context.Background(), grpc_ctxtags.NewTags())
	resp, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			Extract(ctx).Info("handled")
			return "response", nil
		},
	)
	assert.Equal(t, nil, err)
	assert.Equal(t, "response", resp)
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, true, grpc_ctxtags.Extract(ctx).Has(traceIDField))
	assert.Equal(t, false, grpc_ctxtags.Extract(ctx).Has(callerField))
}

func TestSetTraceInfoInterceptor_With_Caller(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	interceptor := SetTraceInfoInterceptor(zap.New(core))

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(grpclib.CallerMetadataKey, "user01"))
	ctx = grpc_ctxtags.SetInContext(ctx, grpc_ctxtags.NewTags())

	_, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			Extract(ctx).Info("pledged")
			return nil, nil
		},
	)
	assert.Equal(t, nil, err)
	assert.Equal(t, "user01", grpc_ctxtags.Extract(ctx).Values()[callerField])

	entries := logs.All()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "user01", entries[0].ContextMap()[callerField])
}
