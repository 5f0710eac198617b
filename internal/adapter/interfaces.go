// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

// Package adapter provides transport-layer abstractions for communicating
// with the scoresync server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// sync engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). Retryable failures are
// recognised with [IsTransient].
package adapter

import (
	"context"

	"github.com/akulikov/scoresync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the scoresync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Push uploads one batch of locally changed entities. The key is the
	// deterministic idempotency key covering the batch; it is sent in the
	// X-Idempotency-Key header so the server can deduplicate replays.
	// Returns the per-entity outcomes, or an error if the request fails.
	Push(ctx context.Context, key string, req models.PushRequest) (models.PushResponse, error)

	// Pull requests one page of entities changed since the client's
	// checkpoint. Pagination is driven by the continuation token inside
	// the request and response.
	Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error)

	// Version fetches the server's application version string, used for
	// connectivity checks and diagnostics.
	Version(ctx context.Context) (string, error)
}
