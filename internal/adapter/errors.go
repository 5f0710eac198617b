package adapter

import "errors"

// Sentinel transport errors mapped from HTTP status codes by mapHTTPError.
// Callers match them with [errors.Is] without knowing the wire protocol.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrTransientTransport wraps failures worth retrying with backoff:
	// network errors before any response arrived, throttling, and 5xx
	// statuses. Use [IsTransient] instead of matching it directly.
	ErrTransientTransport = errors.New("transient transport failure")
)

// IsTransient reports whether err is a transport failure the sync engine
// should retry rather than surface.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientTransport)
}
