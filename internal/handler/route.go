package handler

import (
	"math"
	"net/http"

	"putturbus/internal/clock"
	"putturbus/internal/geo"
	"putturbus/internal/timetable"
)

type tripJSON struct {
	Time         string   `json:"time"`
	Time12       string   `json:"time12"`
	ServiceClass string   `json:"serviceClass"`
	Via          []string `json:"via,omitempty"`
	Operator     string   `json:"operator,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	DurationMin  int      `json:"durationMin"`
	MinutesUntil int      `json:"minutesUntil"`
	Arrival      string   `json:"arrival"`
	Status       string   `json:"status,omitempty"`
}

type routeResponse struct {
	Query       string `json:"query"`
	Destination string `json:"destination"`
	Intercity   bool   `json:"intercity"`
	Outcome     string `json:"outcome"`

	CurrentMinutes int    `json:"currentMinutes"`
	CurrentTime    string `json:"currentTime"`

	DistanceKm   float64 `json:"distanceKm"`
	DurationMin  int     `json:"durationMin"`
	DurationText string  `json:"durationText"`

	From *geo.Point `json:"from,omitempty"`
	To   *geo.Point `json:"to,omitempty"`
	// StraightLineKm is the great-circle distance between the endpoints,
	// for map scaling. DistanceKm stays the curated road distance.
	StraightLineKm float64 `json:"straightLineKm,omitempty"`

	Next             *tripJSON  `json:"next,omitempty"`
	MinutesUntilNext int        `json:"minutesUntilNext"`
	EstimatedArrival string     `json:"estimatedArrival,omitempty"`
	Progress         float64    `json:"progress"`
	Upcoming         []tripJSON `json:"upcoming"`

	Summary timetable.Summary `json:"summary"`
}

// Route serves the live board for one destination slug.
func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	snap := h.engine.LiveView(slug)
	h.metrics.ObserveLive(string(snap.Outcome))

	switch snap.Outcome {
	case timetable.OutcomeUnknownDestination:
		h.writeJSON(w, http.StatusNotFound, errorBody{
			Outcome: string(snap.Outcome),
			Message: "we don't recognize this place",
		})
		return
	case timetable.OutcomeNoService:
		h.writeJSON(w, http.StatusNotFound, errorBody{
			Outcome: string(snap.Outcome),
			Message: "no service on this route",
		})
		return
	}

	resp := routeResponse{
		Query:          slug,
		Destination:    snap.Destination,
		Intercity:      snap.Intercity,
		Outcome:        string(snap.Outcome),
		CurrentMinutes: snap.CurrentMinutes,
		CurrentTime:    clock.FromMinutes(snap.CurrentMinutes),
		DistanceKm:     snap.DistanceKm,
		DurationMin:    snap.DurationMin,
		DurationText:   clock.FormatDuration(snap.DurationMin),
		Upcoming:       make([]tripJSON, 0, len(snap.Upcoming)),
		Summary:        h.index.Summarize(snap.Destination),
	}

	if p, ok := geo.Lookup(h.cat.Hub); ok {
		resp.From = &p
	}
	if p, ok := geo.Lookup(snap.Destination); ok {
		resp.To = &p
	}
	if resp.From != nil && resp.To != nil {
		resp.StraightLineKm = math.Round(geo.Haversine(*resp.From, *resp.To)*10) / 10
	}

	for _, u := range snap.Upcoming {
		resp.Upcoming = append(resp.Upcoming, toTripJSON(u))
	}
	if snap.Next != nil {
		next := toTripJSON(*snap.Next)
		resp.Next = &next
		resp.MinutesUntilNext = snap.MinutesUntilNext
		resp.EstimatedArrival = snap.EstimatedArrival
		resp.Progress = snap.Progress
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Summary serves the day summary for one destination slug, departed buses
// included.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	dest, ok := h.resolver.Resolve(slug)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorBody{
			Outcome: string(timetable.OutcomeUnknownDestination),
			Message: "we don't recognize this place",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, struct {
		Destination string `json:"destination"`
		Intercity   bool   `json:"intercity"`
		timetable.Summary
	}{dest, h.resolver.IsIntercity(dest), h.index.Summarize(dest)})
}

func toTripJSON(u timetable.UpcomingTrip) tripJSON {
	return tripJSON{
		Time:         u.DepartureTime,
		Time12:       clock.Format12h(u.DepartureTime),
		ServiceClass: u.ServiceClass,
		Via:          u.Via,
		Operator:     u.Operator,
		Duration:     u.Duration,
		DurationMin:  u.DurationMin,
		MinutesUntil: u.MinutesUntil,
		Arrival:      u.Arrival,
		Status:       u.Status,
	}
}
