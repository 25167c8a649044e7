package handler

import "net/http"

// Health reports liveness and basic dataset stats.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, struct {
		Status       string `json:"status"`
		Destinations int    `json:"destinations"`
	}{"ok", len(h.index.Destinations())})
}
