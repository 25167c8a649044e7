package handler

import "net/http"

type resolveResponse struct {
	Query       string `json:"query"`
	Matched     bool   `json:"matched"`
	Destination string `json:"destination,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Intercity   bool   `json:"intercity"`
}

// Resolve maps a free-text query to its canonical destination.
// An unmatched query is a valid outcome, not an error: always 200.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	dest, ok := h.resolver.Resolve(query)
	h.metrics.ObserveResolve(ok)

	resp := resolveResponse{Query: query, Matched: ok}
	if ok {
		resp.Destination = dest
		resp.Slug = h.slugFor(dest)
		resp.Intercity = h.resolver.IsIntercity(dest)
	}

	h.writeJSON(w, http.StatusOK, resp)
}
