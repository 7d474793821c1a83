package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// serverVersion answers with the bare version string.
func (h *Handler) serverVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
