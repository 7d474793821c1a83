package handler

import (
	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/handler/grpc"
	"github.com/MKhiriev/go-fhevm/internal/handler/http"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/security"
	"github.com/MKhiriev/go-fhevm/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler per configured transport. The gRPC health
// handler follows source; the HTTP handler rate limits through limiter.
func NewHandlers(services *service.Services, source grpc.StatusSource, limiter *security.RateLimiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" && cfg.GRPCAddress == "" {
		return nil, errNoListenAddress
	}

	h := &Handlers{}
	if cfg.HTTPAddress != "" {
		h.HTTP = http.NewHandler(services, limiter, logger)
	}
	if cfg.GRPCAddress != "" {
		h.GRPC = grpc.NewHandler(source, logger)
	}
	logger.Info().Bool("http", h.HTTP != nil).Bool("grpc", h.GRPC != nil).Msg("handlers created")

	return h, nil
}
