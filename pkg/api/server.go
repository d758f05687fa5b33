// Package api exposes a read-only HTTP surface over a built feature
// index: point lookups by feature ID and ID listing by prefix.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the API server state
type Server struct {
	index   FeatureLookup
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server. metrics may be nil, in which case
// no instrumentation is recorded.
func NewServer(index FeatureLookup, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		index:   index,
		config:  config,
		metrics: metrics,
	}
}

// Handler returns the HTTP handler with all routes configured.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	// Prometheus metrics endpoint (for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.instrument("GET", "/api/v1/health", s.handleHealth))
		r.Get("/features", s.instrument("GET", "/api/v1/features", s.handleListFeatures))
		r.Get("/features/{id}", s.instrument("GET", "/api/v1/features/{id}", s.handleGetFeature))
	})

	return r
}

func (s *Server) instrument(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	if s.metrics == nil {
		return handler
	}
	return s.metrics.InstrumentHandler(method, endpoint, handler)
}

// StartServer starts the HTTP server with all routes configured
func StartServer(index FeatureLookup, config ServerConfig) error {
	server := NewServer(index, config, NewMetrics())
	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	return http.ListenAndServe(addr, server.Handler())
}
