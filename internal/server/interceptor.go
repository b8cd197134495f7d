package server

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/Ajauregui69/livo-backend/internal/common"
)

const requestIDHeader = "x-request-id"

// RequestIDUnaryInterceptor tags every call with a request id (incoming
// x-request-id metadata when the caller sent one, a fresh uuid otherwise)
// and logs the call outcome. Downstream code reads the id back through
// common.RequestIDFromContext.
func RequestIDUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(requestIDHeader); len(vals) > 0 {
				requestID = vals[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod, "request_id", requestID,
				"duration_ms", time.Since(start).Milliseconds(), "error", err)
		} else {
			logger.Info("rpc ok",
				"method", info.FullMethod, "request_id", requestID,
				"duration_ms", time.Since(start).Milliseconds())
		}
		return resp, err
	}
}
