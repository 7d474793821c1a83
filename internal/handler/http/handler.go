package http

import (
	"net/http"

	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/security"
	"github.com/MKhiriev/go-fhevm/internal/service"
	"github.com/MKhiriev/go-fhevm/internal/validators"
)

type Handler struct {
	services  *service.Services
	rateLimit func(http.Handler) http.Handler

	// validator checks the fields the /api/fhevm routes require on top of
	// the service-level validation.
	validator validators.Validator

	logger *logger.Logger
}

// NewHandler builds the REST handler. A nil limiter disables rate limiting.
func NewHandler(services *service.Services, limiter *security.RateLimiter, logger *logger.Logger) *Handler {
	h := &Handler{
		services:  services,
		validator: validators.NewFHERequestValidator(),
		logger:    logger,
	}
	if limiter != nil {
		h.rateLimit = limiter.Middleware(rateLimited)
		logger.Info().Int("limit", limiter.Limit()).Dur("window", limiter.Window()).Msg("rate limiting enabled")
	}
	logger.Info().Msg("http handler created")
	return h
}
