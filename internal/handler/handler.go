// Package handler implements the JSON API over the schedule engine. The
// handlers add no schedule semantics of their own: they resolve, query,
// serialize.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"putturbus/internal/catalog"
	"putturbus/internal/match"
	"putturbus/internal/metrics"
	"putturbus/internal/timetable"
)

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	engine   *timetable.Engine
	index    *timetable.Index
	resolver *match.Resolver
	cat      *catalog.Catalog
	metrics  *metrics.Collector
	logger   *slog.Logger
}

// New creates a Handler.
func New(engine *timetable.Engine, index *timetable.Index, resolver *match.Resolver,
	cat *catalog.Catalog, m *metrics.Collector, logger *slog.Logger) *Handler {
	return &Handler{
		engine:   engine,
		index:    index,
		resolver: resolver,
		cat:      cat,
		metrics:  m,
		logger:   logger,
	}
}

// slugFor builds the canonical URL slug for a destination,
// e.g. "BC Road" -> "puttur-to-bc-road".
func (h *Handler) slugFor(dest string) string {
	return h.cat.SlugPrefix() + strings.ReplaceAll(strings.ToLower(dest), " ", "-")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encoding response", "error", err)
	}
}

// errorBody is the uniform shape for non-200 responses.
type errorBody struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}
