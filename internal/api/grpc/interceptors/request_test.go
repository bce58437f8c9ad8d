package interceptors

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(codes.OK))
	assert.Equal(t, slog.LevelInfo, levelFor(codes.InvalidArgument))
	assert.Equal(t, slog.LevelWarn, levelFor(codes.Unavailable))
	assert.Equal(t, slog.LevelError, levelFor(codes.Internal))
}

func TestLoggingUnaryInterceptor_PassesThrough(t *testing.T) {
	interceptor := LoggingUnaryInterceptor(slog.New(slog.NewTextHandler(io.Discard, nil)))
	info := &grpc.UnaryServerInfo{FullMethod: "/arweavecost.v1.EstimatorService/Calculate"}

	resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "resp", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "resp", resp)

	_, err = interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.Unavailable, "upstream failure")
	})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}
