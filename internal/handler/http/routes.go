package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
	})

	// sync protocol, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/sync/push", h.pushChanges)
		r.Post("/api/sync/pull", h.pullChanges)
	})

	return router
}
