package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/logger"
)

type fakeSource struct {
	fn        fhevm.StatusFunc
	cancelled bool
}

func (f *fakeSource) Subscribe(fn fhevm.StatusFunc) func() {
	f.fn = fn
	fn(fhevm.StatusInitializing, nil)
	return func() { f.cancelled = true }
}

func check(t *testing.T, h *Handler, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_FollowsClientStatus(t *testing.T) {
	src := &fakeSource{}
	h := NewHandler(src, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ServiceName))

	src.fn(fhevm.StatusReady, nil)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ServiceName))

	src.fn(fhevm.StatusError, errors.New("rpc down"))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ServiceName))
}

func TestHandler_WithRealClient(t *testing.T) {
	client := fhevm.New(fhevm.Config{Network: fhevm.NetworkLocalhost})
	h := NewHandler(client, logger.Nop())
	defer h.Close()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ServiceName))
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(&fakeSource{}, logger.Nop())

	_, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "other"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHandler_Close(t *testing.T) {
	src := &fakeSource{}
	h := NewHandler(src, logger.Nop())

	h.Close()
	h.Close()
	assert.True(t, src.cancelled)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
}

func TestServingStatus(t *testing.T) {
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(fhevm.StatusReady))
	for _, s := range []fhevm.Status{fhevm.StatusIdle, fhevm.StatusInitializing, fhevm.StatusError} {
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(s), s.String())
	}
}

func TestUnaryLoggingInterceptor(t *testing.T) {
	h := NewHandler(&fakeSource{}, logger.Nop())
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := h.UnaryLoggingInterceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return req.(string) + "-ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req-ok", resp)

	_, err = h.UnaryLoggingInterceptor(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Unavailable, "down")
	})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}
