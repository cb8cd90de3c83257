// Package api provides the HTTP surface: the chart render/preview/export
// endpoints and the embedded browser UI.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arvidh/chartstudio/internal/config"
	"github.com/arvidh/chartstudio/internal/render"
	"github.com/arvidh/chartstudio/web"
)

// Server is the HTTP server.
type Server struct {
	defaults config.ChartDefaults
	renderer *render.Renderer
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(addr string, defaults config.ChartDefaults, renderer *render.Renderer) (*Server, error) {
	s := &Server{
		defaults: defaults,
		renderer: renderer,
		router:   chi.NewRouter(),
	}

	// Middleware
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/defaults", s.handleDefaults)
		r.Post("/charts/render", s.handleRenderChart)
		r.Post("/charts/preview", s.handlePreviewChart)
	})
	s.router.Get("/health", s.handleHealth)

	// Serve the embedded UI, with index.html fallback.
	staticFS, err := web.NewStaticFileSystem()
	if err != nil {
		return nil, err
	}
	fileServer := http.FileServer(staticFS)
	s.router.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if staticFS.Exists(r.URL.Path) {
			fileServer.ServeHTTP(w, r)
			return
		}
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})

	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	return s, nil
}

// Router returns the route handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// respondJSON writes a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{
		"error": message,
	})
}
