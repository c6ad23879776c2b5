package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	router.Get("/models/*", h.serveModel)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
