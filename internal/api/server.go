// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires the HTTP router, the middleware chain and the domain
handlers into a runnable [http.Server].

Only this package and cmd/api touch net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ptd0409/portfolio/internal/auth"
	"github.com/ptd0409/portfolio/internal/core/item"
	"github.com/ptd0409/portfolio/internal/core/language"
	"github.com/ptd0409/portfolio/internal/core/media"
	"github.com/ptd0409/portfolio/internal/core/tag"
	"github.com/ptd0409/portfolio/internal/platform/config"
	"github.com/ptd0409/portfolio/internal/platform/constants"
	"github.com/ptd0409/portfolio/internal/platform/metrics"
	"github.com/ptd0409/portfolio/internal/platform/middleware"
)

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups the route handlers mounted by [NewServer].
type Handlers struct {
	// Liveness answers /health while the process is up.
	Liveness http.HandlerFunc

	// Readiness answers /ready once Postgres and Redis respond.
	Readiness http.HandlerFunc

	Auth      *auth.Handler
	Items     *item.Handler
	Tags      *tag.Handler
	Languages *language.Handler
	Media     *media.Handler

	// Uploads serves stored media under [media.PublicPrefix].
	Uploads http.Handler
}

// NewServer builds the router with the full middleware chain and mounts every route group.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Middleware)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(chimw.CleanPath)
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	if h.Uploads != nil {
		r.Handle(media.PublicPrefix+"*", http.StripPrefix(media.PublicPrefix, h.Uploads))
	}

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Auth.RegisterRoutes)
		api.Route("/items", h.Items.RegisterRoutes)
		api.Route("/tags", h.Tags.RegisterRoutes)
		api.Route("/languages", h.Languages.RegisterRoutes)
		api.Route("/admin/media", h.Media.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until the server is closed or fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
