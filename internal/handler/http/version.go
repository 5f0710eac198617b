package http

import (
	"net/http"
)

// getServerVersion reports the running server version as plain text. The
// client adapter calls it on startup as a cheap reachability and
// compatibility probe before the first sync cycle.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
