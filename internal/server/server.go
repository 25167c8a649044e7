package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"putturbus/internal/catalog"
	"putturbus/internal/config"
	"putturbus/internal/handler"
	"putturbus/internal/match"
	"putturbus/internal/metrics"
	"putturbus/internal/timetable"
)

// Server is the HTTP host for the schedule engine.
type Server struct {
	mux     *http.ServeMux
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Collector
}

// New creates a Server with all routes registered.
func New(cfg *config.Config, engine *timetable.Engine, index *timetable.Index,
	resolver *match.Resolver, cat *catalog.Catalog, m *metrics.Collector,
	logger *slog.Logger) *Server {

	mux := http.NewServeMux()
	h := handler.New(engine, index, resolver, cat, m, logger)

	mux.HandleFunc("GET /api/resolve", h.Resolve)
	mux.HandleFunc("GET /api/destinations", h.Destinations)
	mux.HandleFunc("GET /api/routes/{slug}", h.Route)
	mux.HandleFunc("GET /api/routes/{slug}/summary", h.Summary)

	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("GET /metrics", m.Handler())

	return &Server{mux: mux, cfg: cfg, logger: logger, metrics: m}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("server starting", "addr", addr)
	return http.ListenAndServe(addr, withMiddleware(s.mux, s.logger, s.metrics))
}
