// Package server exposes the educator generation service over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/abhisek/educator/internal/config"
	"github.com/abhisek/educator/internal/educate"
)

// Server is the educator HTTP API server.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

// New builds a Server from configuration.
func New(cfg config.ServerConfig, svc *educate.Service, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      NewRouter(svc, logger, cfg.TemplateFallback),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger,
	}
}

// ListenAndServe starts serving. It blocks until the listener fails or
// Shutdown is called; a clean shutdown returns nil.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.http.Shutdown(ctx)
}
