// Package grpc exposes the FHEVM server over gRPC. Only the standard
// grpc.health.v1 service is served; its status follows the client
// lifecycle so that orchestrators can gate traffic on initialization.
package grpc

import (
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// ServiceName is the health service name reported next to the overall
// ("") status.
const ServiceName = "fhevm"

// StatusSource pushes client status transitions. *fhevm.Client implements
// it.
type StatusSource interface {
	Subscribe(fn fhevm.StatusFunc) (cancel func())
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server

	closeOnce   sync.Once
	unsubscribe func()

	logger *logger.Logger
}

// NewHandler subscribes to source and mirrors every transition into the
// health server: ready is SERVING, any other status NOT_SERVING.
func NewHandler(source StatusSource, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(fhevm.StatusIdle, nil)
	h.unsubscribe = source.Subscribe(h.setStatus)

	logger.Debug().Msg("gRPC handler created")
	return h
}

func (h *Handler) setStatus(status fhevm.Status, err error) {
	serving := servingStatus(status)
	h.health.SetServingStatus("", serving)
	h.health.SetServingStatus(ServiceName, serving)

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.Stringer("status", status).Stringer("serving", serving).Msg("health status updated")
}

// Register installs the health service on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Close stops following the client and reports NOT_SERVING to watchers
// for the rest of the process lifetime.
func (h *Handler) Close() {
	h.closeOnce.Do(func() {
		if h.unsubscribe != nil {
			h.unsubscribe()
		}
		h.health.Shutdown()
	})
}

func servingStatus(status fhevm.Status) healthpb.HealthCheckResponse_ServingStatus {
	if status == fhevm.StatusReady {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}
