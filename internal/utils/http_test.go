package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		status int
		value  any
		body   string
	}{
		{name: "object", status: http.StatusOK, value: map[string]string{"status": "ready"}, body: `{"status":"ready"}`},
		{name: "created", status: http.StatusCreated, value: struct {
			Count int `json:"count"`
		}{3}, body: `{"count":3}`},
		{name: "nil", status: http.StatusOK, value: nil, body: `null`},
		{name: "slice", status: http.StatusAccepted, value: []uint64{1, 2}, body: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			require.NoError(t, WriteJSON(rec, tt.status, tt.value))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWriteJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(rec, http.StatusOK, make(chan int))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, http.StatusServiceUnavailable, "client is still initializing")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Service Unavailable","message":"client is still initializing"}`, rec.Body.String())
}
