package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/Ajauregui69/livo-backend/internal/common"
)

func callThrough(t *testing.T, ctx context.Context) string {
	t.Helper()
	interceptor := RequestIDUnaryInterceptor(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seen string
	_, err := interceptor(ctx, nil,
		&grpc.UnaryServerInfo{FullMethod: "/documents.v1.DocumentsService/GetDocument"},
		func(ctx context.Context, _ any) (any, error) {
			seen = common.RequestIDFromContext(ctx)
			return nil, nil
		})
	require.NoError(t, err)
	return seen
}

func TestInterceptorGeneratesRequestID(t *testing.T) {
	seen := callThrough(t, context.Background())
	assert.NotEmpty(t, seen)
}

func TestInterceptorHonorsIncomingRequestID(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(requestIDHeader, "req-42"))
	seen := callThrough(t, ctx)
	assert.Equal(t, "req-42", seen)
}
