package handler

import "net/http"

type destinationInfo struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Intercity bool   `json:"intercity"`
	Trips     int    `json:"trips"`
}

// Destinations lists every canonical destination with its service category
// and daily trip count.
func (h *Handler) Destinations(w http.ResponseWriter, r *http.Request) {
	names := h.index.Destinations()

	out := make([]destinationInfo, 0, len(names))
	for _, name := range names {
		out = append(out, destinationInfo{
			Name:      name,
			Slug:      h.slugFor(name),
			Intercity: h.resolver.IsIntercity(name),
			Trips:     h.index.Summarize(name).DailyFrequency,
		})
	}

	h.writeJSON(w, http.StatusOK, out)
}
