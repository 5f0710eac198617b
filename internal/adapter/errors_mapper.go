package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError translates a non-2xx response into one of the package
// sentinel errors, keeping the server's plain-text body as context.
// Throttling and 5xx statuses are additionally wrapped in
// [ErrTransientTransport] so callers can decide to retry with a single
// [IsTransient] check.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrTransientTransport, ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrTransientTransport, ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrTransientTransport, ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %w: %s", ErrTransientTransport, ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: http %d: %s", ErrTransientTransport, resp.StatusCode(), body)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
