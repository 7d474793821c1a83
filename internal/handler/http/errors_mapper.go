package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/service"
	"github.com/MKhiriev/go-fhevm/internal/utils"
	"github.com/MKhiriev/go-fhevm/internal/validators"
)

const (
	msgInitializing     = "FHEVM client is still initializing. Please try again."
	msgInitFailed       = "FHEVM client initialization failed"
	msgInternal         = "Internal server error"
	msgInvalidJSON      = "Invalid JSON was passed"
	msgUnauthenticated  = "token is expired or invalid"
	msgMalformedPayload = "Encrypted data is malformed"
)

// badRequestErrors are client mistakes detected below the validation layer.
var badRequestErrors = []error{
	validators.ErrValidation,
	fhevm.ErrUnknownEncryptionType,
	fhevm.ErrValueOutOfTypeRange,
	fhevm.ErrMalformedCiphertext,
	fhevm.ErrInvalidSignature,
	ErrInvalidJSON,
	ErrUnknownOperation,
	ErrInvalidLimit,
}

// statusFromError maps a service error to its HTTP status.
func statusFromError(err error) int {
	// a failed client also wraps the init cause; check it first
	if errors.Is(err, fhevm.ErrClientFailed) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, fhevm.ErrNotInitialized) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		return http.StatusUnauthorized
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Validation
// failures expose their own text, internal failures a generic one.
func messageFromError(err error, status int) string {
	var vErr *validators.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, fhevm.ErrClientFailed):
		return msgInitFailed
	case status == http.StatusServiceUnavailable:
		return msgInitializing
	case status == http.StatusUnauthorized:
		return msgUnauthenticated
	case errors.Is(err, ErrInvalidJSON):
		return msgInvalidJSON
	case errors.Is(err, fhevm.ErrMalformedCiphertext):
		return msgMalformedPayload
	case status == http.StatusBadRequest:
		return err.Error()
	default:
		return msgInternal
	}
}

// writeServiceError logs err and writes the mapped {error, message} body.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteError(w, status, messageFromError(err, status))
}
