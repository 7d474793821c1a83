package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/utils"
	"github.com/MKhiriev/go-fhevm/internal/validators"
	"github.com/MKhiriev/go-fhevm/models"
)

// fhevmDecryptRequest is the body of POST /api/fhevm/decrypt.
type fhevmDecryptRequest struct {
	EncryptedData fhevm.Ciphertext `json:"encryptedData"`
	Signature     string           `json:"signature"`
	IsPublic      bool             `json:"isPublic"`
}

func writeResult(w http.ResponseWriter, r *http.Request, data any) {
	if err := utils.WriteJSON(w, http.StatusOK, data); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.services.FHEService.Status(r.Context()))
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.services.FHEService.Info(r.Context()))
}

func (h *Handler) fhevmEncrypt(w http.ResponseWriter, r *http.Request) {
	var req models.EncryptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.fhevmEncrypt", err)
		return
	}

	res, err := h.services.FHEService.Encrypt(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.fhevmEncrypt", err)
		return
	}

	writeResult(w, r, res)
}

func (h *Handler) fhevmDecrypt(w http.ResponseWriter, r *http.Request) {
	var body fhevmDecryptRequest
	if err := decodeJSON(r, &body); err != nil {
		writeServiceError(w, r, "*Handler.fhevmDecrypt", err)
		return
	}

	req := models.DecryptRequest{Public: body.IsPublic}
	if len(body.EncryptedData) > 0 {
		req.Encrypted = &fhevm.EncryptedValue{Data: body.EncryptedData, Signature: body.Signature}
	}
	// both halves are required here, unlike /api/fhe/decrypt
	if err := h.validator.Validate(r.Context(), req, validators.FieldSignature); err != nil {
		writeServiceError(w, r, "*Handler.fhevmDecrypt", err)
		return
	}

	res, err := h.services.FHEService.Decrypt(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.fhevmDecrypt", err)
		return
	}

	writeResult(w, r, res)
}

func (h *Handler) batchEncrypt(w http.ResponseWriter, r *http.Request) {
	var req models.BatchEncryptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.batchEncrypt", err)
		return
	}

	res, err := h.services.FHEService.BatchEncrypt(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.batchEncrypt", err)
		return
	}

	writeResult(w, r, res)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.verify", err)
		return
	}

	res, err := h.services.FHEService.Verify(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.verify", err)
		return
	}

	writeResult(w, r, res)
}

// operations lists journal entries. Query: limit, kind, actor.
func (h *Handler) operations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.OperationFilter{
		Kind:  models.OperationKind(query.Get("kind")),
		Actor: query.Get("actor"),
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			utils.WriteError(w, http.StatusBadRequest, ErrInvalidLimit.Error()+": "+raw)
			return
		}
		filter.Limit = limit
	}

	ops, err := h.services.OperationService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, "*Handler.operations", err)
		return
	}
	if ops == nil {
		ops = []models.Operation{}
	}

	writeResult(w, r, models.OperationsResponse{Operations: ops, Length: len(ops)})
}
