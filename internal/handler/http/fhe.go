// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/utils"
	"github.com/MKhiriev/go-fhevm/models"
)

// decodeJSON reads the request body into v. Numbers are kept as
// json.Number so that values beyond 2^53 survive decoding.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, data any) {
	if err := utils.WriteJSON(w, http.StatusOK, models.Envelope{Success: true, Data: data}); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	var req models.EncryptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.encrypt", err)
		return
	}

	res, err := h.services.FHEService.Encrypt(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.encrypt", err)
		return
	}

	writeEnvelope(w, r, res)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	var req models.DecryptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.decrypt", err)
		return
	}

	res, err := h.services.FHEService.Decrypt(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.decrypt", err)
		return
	}

	writeEnvelope(w, r, res)
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request) {
	var req models.ComputeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.compute", err)
		return
	}

	res, err := h.services.FHEService.Compute(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.compute", err)
		return
	}

	writeEnvelope(w, r, res)
}

// fheOperation serves the combined endpoint: {operation: "encrypt", value,
// type?} or {operation: "status"}.
func (h *Handler) fheOperation(w http.ResponseWriter, r *http.Request) {
	var req models.OperationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.fheOperation", err)
		return
	}

	switch op := strings.TrimSpace(req.Operation); op {
	case "encrypt":
		res, err := h.services.FHEService.Encrypt(r.Context(), models.EncryptRequest{Value: req.Value, Type: req.Type})
		if err != nil {
			writeServiceError(w, r, "*Handler.fheOperation", err)
			return
		}
		writeEnvelope(w, r, res)
	case "status":
		writeEnvelope(w, r, h.services.FHEService.Status(r.Context()))
	default:
		logger.FromRequest(r).Warn().Err(ErrUnknownOperation).Str("operation", op).Send()
		utils.WriteError(w, http.StatusBadRequest, "Unknown operation: "+op)
	}
}

func (h *Handler) fheStatus(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, h.services.FHEService.Status(r.Context()))
}

func (h *Handler) keys(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.FHEService.Keys(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.keys", err)
		return
	}

	writeEnvelope(w, r, res)
}
