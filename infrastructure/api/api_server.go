package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"

	"github.com/helixml/catalog"
	"github.com/helixml/catalog/infrastructure/api/jsonapi"
	apimiddleware "github.com/helixml/catalog/infrastructure/api/middleware"
	v1 "github.com/helixml/catalog/infrastructure/api/v1"
	"github.com/helixml/catalog/internal/config"
	mcpinternal "github.com/helixml/catalog/internal/mcp"
)

// APIServer exposes a catalog Client over HTTP: the JSON:API routes under
// /api/v1, health checks, and the MCP streamable endpoint at /mcp.
type APIServer struct {
	client         *catalog.Client
	apiKeys        []string
	corsOrigins    []string
	requestTimeout time.Duration
	version        string
	server         *Server
	logger         *slog.Logger
}

// APIServerOption configures an APIServer.
type APIServerOption func(*APIServer)

// WithAPIKeys requires one of keys on mutating /api/v1 requests.
func WithAPIKeys(keys []string) APIServerOption {
	return func(a *APIServer) { a.apiKeys = keys }
}

// WithCORSAllowedOrigins enables CORS for the given origins.
func WithCORSAllowedOrigins(origins []string) APIServerOption {
	return func(a *APIServer) { a.corsOrigins = origins }
}

// WithRequestTimeout bounds /api/v1 request handling.
func WithRequestTimeout(d time.Duration) APIServerOption {
	return func(a *APIServer) {
		if d > 0 {
			a.requestTimeout = d
		}
	}
}

// WithVersion sets the version reported by health checks and MCP.
func WithVersion(version string) APIServerOption {
	return func(a *APIServer) { a.version = version }
}

// NewAPIServer creates a new APIServer wired to the given catalog Client.
func NewAPIServer(client *catalog.Client, opts ...APIServerOption) *APIServer {
	a := &APIServer{
		client:         client,
		requestTimeout: config.DefaultRequestTimeout,
		version:        "dev",
		logger:         client.Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *APIServer) mountRoutes(router chi.Router) {
	c := a.client

	router.Get("/health", a.health)
	router.Get("/healthz", a.health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(a.requestTimeout))
		r.Use(apimiddleware.WriteProtect(apimiddleware.NewAuthConfigWithKeys(a.apiKeys)))

		r.Mount("/attributes", v1.NewAttributesRouter(c).Routes())
		r.Mount("/entities", v1.NewEntitiesRouter(c).Routes())
	})

	mcpSrv := mcpinternal.NewServer(c, a.version, a.logger)
	router.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv.MCPServer()))
}

func (a *APIServer) health(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 5*time.Second)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
		apimiddleware.WriteJSON(w, http.StatusServiceUnavailable, jsonapi.Meta{"status": "unavailable", "version": a.version})
		return
	}
	apimiddleware.WriteJSON(w, http.StatusOK, jsonapi.Meta{"status": "ok", "version": a.version})
}

// ListenAndServe starts the HTTP server on addr and blocks until Shutdown.
func (a *APIServer) ListenAndServe(addr string) error {
	a.server = NewServer(addr, a.logger, a.corsOrigins)
	a.mountRoutes(a.server.Router())
	return a.server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the full route tree as an http.Handler.
func (a *APIServer) Handler() http.Handler {
	s := NewServer("", a.logger, a.corsOrigins)
	a.mountRoutes(s.Router())
	return s.Router()
}
