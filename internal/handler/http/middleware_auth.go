package http

import (
	"net/http"

	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/utils"
)

// auth requires a valid bearer JWT when a token sign key is configured and
// stores its subject as the request actor. With authentication disabled
// every request runs as the anonymous actor.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := h.services.AuthService
		if !auth.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := bearerToken(r)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("request rejected")
			utils.WriteError(w, http.StatusUnauthorized, err.Error())
			return
		}

		token, err := auth.ParseToken(r.Context(), raw)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("request rejected")
			utils.WriteError(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithActor(r.Context(), token.Actor)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
