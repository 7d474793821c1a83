package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/utils"
	"github.com/MKhiriev/go-fhevm/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL is taken from cfg.HTTPAddress ("http://" is
// assumed when no scheme is given) and cfg.Token, if set, becomes the
// initial bearer token.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	a := &httpServerAdapter{client: utils.NewRESTClient(baseURL, cfg.RequestTimeout, log)}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Status(ctx context.Context) (models.ClientStatus, error) {
	resp, err := h.request(ctx).Get("/api/fhevm/status")
	if err != nil {
		return models.ClientStatus{}, fmt.Errorf("status request: %w", err)
	}
	return decode[models.ClientStatus](resp, "status")
}

func (h *httpServerAdapter) Info(ctx context.Context) (models.ClientInfo, error) {
	resp, err := h.request(ctx).Get("/api/fhevm/info")
	if err != nil {
		return models.ClientInfo{}, fmt.Errorf("info request: %w", err)
	}
	return decode[models.ClientInfo](resp, "info")
}

func (h *httpServerAdapter) Keys(ctx context.Context) (models.KeysInfo, error) {
	resp, err := h.request(ctx).Get("/api/keys")
	if err != nil {
		return models.KeysInfo{}, fmt.Errorf("keys request: %w", err)
	}
	return decodeEnvelope[models.KeysInfo](resp, "keys")
}

func (h *httpServerAdapter) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/fhevm/encrypt")
	if err != nil {
		return models.EncryptResult{}, fmt.Errorf("encrypt request: %w", err)
	}
	return decode[models.EncryptResult](resp, "encrypt")
}

func (h *httpServerAdapter) Decrypt(ctx context.Context, ev fhevm.EncryptedValue, public bool) (models.DecryptResult, error) {
	body := map[string]any{
		"encryptedData": ev.Data,
		"signature":     ev.Signature,
		"isPublic":      public,
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/fhevm/decrypt")
	if err != nil {
		return models.DecryptResult{}, fmt.Errorf("decrypt request: %w", err)
	}
	return decode[models.DecryptResult](resp, "decrypt")
}

func (h *httpServerAdapter) BatchEncrypt(ctx context.Context, values []uint64) (models.BatchEncryptResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BatchEncryptRequest{Values: values}).
		Post("/api/fhevm/batch-encrypt")
	if err != nil {
		return models.BatchEncryptResult{}, fmt.Errorf("batch encrypt request: %w", err)
	}
	return decode[models.BatchEncryptResult](resp, "batch encrypt")
}

func (h *httpServerAdapter) Compute(ctx context.Context, req models.ComputeRequest) (models.ComputeResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/fhe/compute")
	if err != nil {
		return models.ComputeResult{}, fmt.Errorf("compute request: %w", err)
	}
	return decodeEnvelope[models.ComputeResult](resp, "compute")
}

func (h *httpServerAdapter) Verify(ctx context.Context, req models.VerifyRequest) (models.VerifyResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/fhevm/verify")
	if err != nil {
		return models.VerifyResult{}, fmt.Errorf("verify request: %w", err)
	}
	return decode[models.VerifyResult](resp, "verify")
}

func (h *httpServerAdapter) Operations(ctx context.Context, filter models.OperationFilter) (models.OperationsResponse, error) {
	req := h.request(ctx)
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Kind != "" {
		req.SetQueryParam("kind", string(filter.Kind))
	}
	if filter.Actor != "" {
		req.SetQueryParam("actor", filter.Actor)
	}

	resp, err := req.Get("/api/fhevm/operations")
	if err != nil {
		return models.OperationsResponse{}, fmt.Errorf("operations request: %w", err)
	}
	return decode[models.OperationsResponse](resp, "operations")
}

// request starts a request carrying the bearer token, if one is set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decode[T any](resp *resty.Response, what string) (T, error) {
	var out T
	if err := mapHTTPError(resp); err != nil {
		return out, err
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", what, err)
	}
	return out, nil
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func decodeEnvelope[T any](resp *resty.Response, what string) (T, error) {
	env, err := decode[envelope[T]](resp, what)
	if err != nil {
		return env.Data, err
	}
	if !env.Success {
		return env.Data, fmt.Errorf("%s: server reported failure", what)
	}
	return env.Data, nil
}
