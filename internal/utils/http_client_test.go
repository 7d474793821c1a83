package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fhevm/internal/logger"
)

func TestNewRESTClient_Defaults(t *testing.T) {
	var gotAccept, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL, time.Second, nil)
	resp, err := c.R().Get("/ping")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "fhevm-cli", gotAgent)
	assert.Equal(t, time.Second, c.GetClient().Timeout)
}

func TestNewRESTClient_LogsResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	c := NewRESTClient(srv.URL, time.Second, logger.NewClientLogger("test", &buf, true))
	_, err := c.R().SetAuthToken("tok").Get("/status")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "server responded")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "authorized=true")
}

func TestNewRESTClient_Independent(t *testing.T) {
	a := NewRESTClient("http://a", time.Second, nil)
	b := NewRESTClient("http://b", time.Second, nil)

	assert.NotSame(t, a, b)
	assert.Equal(t, "http://a", a.BaseURL)
	assert.Equal(t, "http://b", b.BaseURL)
}
