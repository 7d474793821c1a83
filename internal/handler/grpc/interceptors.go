package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-fhevm/internal/utils"
)

// UnaryLoggingInterceptor attaches a request logger with a fresh trace id
// and logs the outcome of every unary call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := uuid.NewString()

	ctx, l := h.logger.WithTrace(ctx, traceID)
	ctx = utils.WithTraceID(ctx, traceID)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Stringer("code", status.Code(err)).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
