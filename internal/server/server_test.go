package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/handler"
	myGRPC "github.com/MKhiriev/go-fhevm/internal/handler/grpc"
	"github.com/MKhiriev/go-fhevm/internal/logger"
)

func TestNewServer_NoTransports(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoTransports)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	h := myGRPC.NewHandler(fhevm.New(fhevm.Config{}), logger.Nop())
	defer h.Close()

	_, err := NewServer(&handler.Handlers{GRPC: h}, config.Server{GRPCAddress: "256.0.0.1:bad"}, logger.Nop())
	assert.Error(t, err)
}

func TestRun_NoTransports(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoTransports)
}

func TestRun_ServesHealthUntilCancelled(t *testing.T) {
	h := myGRPC.NewHandler(fhevm.New(fhevm.Config{}), logger.Nop())
	gs, err := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	s := &server{transports: []Server{gs}, logger: logger.Nop()}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	conn, err := grpc.NewClient(gs.gRPCNetListener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()
	resp, err := healthpb.NewHealthClient(conn).Check(callCtx, &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName}, grpc.WaitForReady(true))
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	hs := newHTTPServer(slow, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 20 * time.Millisecond}, logger.Nop())
	assert.Equal(t, readHeaderTimeout, hs.server.ReadHeaderTimeout)

	rec := httptest.NewRecorder()
	hs.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
