package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout. A pre-issued bearer token from the
// config, if any, is installed via SetToken.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	a := &httpServerAdapter{client: client, logger: logger}
	if adapterCfg.AuthToken != "" {
		a.SetToken(adapterCfg.AuthToken)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Push implements [ServerAdapter]. It POSTs the batch to
// POST /api/sync/push with the idempotency key in the X-Idempotency-Key
// header. Request-level failures (connection refused, timeout) are wrapped
// in [ErrTransientTransport]; non-2xx statuses go through mapHTTPError.
func (h *httpServerAdapter) Push(ctx context.Context, key string, req models.PushRequest) (models.PushResponse, error) {
	req.Length = req.CountEntities()

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(models.IdempotencyKeyHeader, key).
		SetBody(req).
		Post("/api/sync/push")
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: push request: %w", ErrTransientTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var pushResp models.PushResponse
	if err = json.Unmarshal(resp.Body(), &pushResp); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w", err)
	}

	return pushResp, nil
}

// Pull implements [ServerAdapter]. It POSTs the checkpoint and continuation
// token to POST /api/sync/pull and decodes one page of changed entities.
func (h *httpServerAdapter) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/pull")
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("%w: pull request: %w", ErrTransientTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var pullResp models.PullResponse
	if err = json.Unmarshal(resp.Body(), &pullResp); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w", err)
	}

	return pullResp, nil
}

// Version implements [ServerAdapter]. The server answers GET /api/version/
// with the plain-text version string.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrTransientTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
