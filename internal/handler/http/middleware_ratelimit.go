// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/utils"
)

// withRateLimit admits a fixed number of requests per window and client IP.
// Rejected requests get 429 with a Retry-After header.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.rateLimit == nil {
		return next
	}
	return h.rateLimit(next)
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().Str("client", clientIP(r)).Msg("rate limit exceeded")
	utils.WriteError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
}

// clientIP returns the host part of RemoteAddr, which RealIP has already
// replaced with the forwarded address when one was sent.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
