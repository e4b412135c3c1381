// Package api serves the catalog over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	apimiddleware "github.com/helixml/catalog/infrastructure/api/middleware"
)

// Server represents the HTTP API server.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	logger     *slog.Logger
	addr       string
}

// NewServer creates a new API Server. corsOrigins lists the origins browsers
// may call from; an empty list disables CORS headers.
func NewServer(addr string, logger *slog.Logger, corsOrigins []string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := chi.NewRouter()

	// No Timeout here: it wraps the ResponseWriter and breaks the MCP stream.
	// The /api/v1 group applies its own.
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(apimiddleware.Correlation)
	router.Use(apimiddleware.Logging(logger))
	router.Use(chimiddleware.Recoverer)
	if len(corsOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", apimiddleware.APIKeyHeader, apimiddleware.CorrelationHeader},
			ExposedHeaders: []string{apimiddleware.CorrelationHeader},
			MaxAge:         300,
		}))
	}

	return &Server{
		router: router,
		addr:   addr,
		logger: logger,
	}
}

// Router returns the chi router for registering routes.
func (s *Server) Router() chi.Router {
	return s.router
}

// Start listens on the server address and blocks until Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("starting HTTP server", slog.String("addr", s.addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the server address.
func (s *Server) Addr() string {
	return s.addr
}
