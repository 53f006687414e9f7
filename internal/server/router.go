package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abhisek/educator/internal/educate"
)

// NewRouter wires the API routes with the standard middleware stack.
func NewRouter(svc *educate.Service, logger *slog.Logger, templateFallback bool) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(traceMiddleware)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	h := NewHandler(svc, logger, templateFallback)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.Generate)
		r.Get("/health", h.Health)
		r.Get("/content-types", h.ContentTypes)
	})

	return r
}
