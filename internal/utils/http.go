package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fhevm/models"
)

// WriteJSON encodes v and writes it with the given status. Nothing but a
// plain 500 reaches the client when v cannot be encoded.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// WriteError writes {"error": <status text>, "message": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	_ = WriteJSON(w, status, models.ErrorResponse{Error: http.StatusText(status), Message: message})
}
