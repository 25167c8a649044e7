// Package timetable answers schedule queries for one hub: which trips serve
// a destination, when service starts and ends, and what the live board looks
// like right now. Every query is a pure computation over the immutable trip
// dataset; the only time-varying input is the sampled clock value.
package timetable

import (
	"sort"
	"strings"

	"putturbus/internal/clock"
	"putturbus/internal/dataset"
	"putturbus/internal/match"
)

// Index groups the trip dataset by canonical destination. Build once, read
// forever; safe for concurrent use.
type Index struct {
	byDest map[string][]dataset.Trip
	hub    string
}

// NewIndex buckets trips by resolving each trip's own destination field.
// Raw spellings that alias to the same canonical name end up in the same
// bucket. Trips not departing from the hub, and trips whose destination
// cannot be resolved at all, are skipped.
func NewIndex(trips []dataset.Trip, resolver *match.Resolver, hub string) *Index {
	ix := &Index{byDest: make(map[string][]dataset.Trip), hub: hub}

	resolved := make(map[string]string) // raw destination -> canonical
	for _, t := range trips {
		if !strings.EqualFold(t.Origin, hub) {
			continue
		}
		canonical, ok := resolved[t.Destination]
		if !ok {
			canonical, ok = resolver.Resolve(t.Destination)
			if !ok {
				continue
			}
			resolved[t.Destination] = canonical
		}
		ix.byDest[canonical] = append(ix.byDest[canonical], t)
	}

	return ix
}

// Destinations returns the canonical destinations that actually have trips,
// sorted for display.
func (ix *Index) Destinations() []string {
	out := make([]string, 0, len(ix.byDest))
	for dest := range ix.byDest {
		out = append(out, dest)
	}
	sort.Strings(out)
	return out
}

// TripsFor returns every trip serving the canonical destination, local and
// intercity alike, in dataset order. The result is a copy; callers may sort
// it freely.
func (ix *Index) TripsFor(canonical string) []dataset.Trip {
	trips := ix.byDest[canonical]
	out := make([]dataset.Trip, len(trips))
	copy(out, trips)
	return out
}

// Summary describes a full day of service on one route.
type Summary struct {
	// FirstDeparture and LastDeparture carry the raw timetable text of the
	// extremes, empty when there is no service.
	FirstDeparture string `json:"firstDeparture"`
	LastDeparture  string `json:"lastDeparture"`
	// Headway is the average gap, e.g. "Every ~30 mins", or "Variable".
	Headway string `json:"headway"`
	// DailyFrequency is the total trip count, 0 for no service.
	DailyFrequency int `json:"dailyFrequency"`
}

// Summarize computes the day summary over the full unfiltered trip set, so
// the last bus stays correct even after it has departed. A destination with
// no trips gets a zero-valued summary, never an error.
func (ix *Index) Summarize(canonical string) Summary {
	trips := ix.TripsFor(canonical)
	if len(trips) == 0 {
		return Summary{Headway: "Variable"}
	}

	sort.SliceStable(trips, func(i, j int) bool {
		return clock.ToMinutes(trips[i].DepartureTime) < clock.ToMinutes(trips[j].DepartureTime)
	})

	times := make([]string, len(trips))
	for i, t := range trips {
		times[i] = t.DepartureTime
	}

	return Summary{
		FirstDeparture: trips[0].DepartureTime,
		LastDeparture:  trips[len(trips)-1].DepartureTime,
		Headway:        clock.Headway(times),
		DailyFrequency: len(trips),
	}
}
