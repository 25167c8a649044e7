package timetable

import (
	"fmt"
	"sort"

	"putturbus/internal/clock"
	"putturbus/internal/dataset"
	"putturbus/internal/match"
	"putturbus/internal/physics"
)

// Outcome classifies a live query so the caller can render the right
// message. The three no-bus cases are deliberately distinct: an unmatched
// place, a route the timetable has never had, and a normal end of service.
type Outcome string

const (
	OutcomeOK                 Outcome = "ok"
	OutcomeUnknownDestination Outcome = "unknown_destination"
	OutcomeNoService          Outcome = "no_service"
	OutcomeServiceEnded       Outcome = "service_ended"
)

// UpcomingTrip is a trip annotated with live timing for the board.
type UpcomingTrip struct {
	dataset.Trip

	// Minute is the departure as minutes from midnight.
	Minute int
	// MinutesUntil may be <= 0 inside the grace window: departing, not missed.
	MinutesUntil int
	// DurationMin is the estimated minutes en route for this trip. It is the
	// destination profile's duration, or a speed-table estimate when the
	// record carries its own distance and no curated profile exists.
	DurationMin int
	// Arrival is the estimated arrival in display form.
	Arrival string
	// Status is the board label ("Departing Now", "Boarding Soon",
	// "in N min"), empty for a plain future trip.
	Status string
}

// Snapshot is one evaluation of the live board. It is recomputed on every
// query and owned by the caller; nothing here is shared or persisted.
type Snapshot struct {
	Query          string
	Destination    string
	Intercity      bool
	Outcome        Outcome
	CurrentMinutes int

	Upcoming []UpcomingTrip
	Next     *UpcomingTrip

	// MinutesUntilNext is meaningful only when Next is set.
	MinutesUntilNext int
	// EstimatedArrival / EstimatedArrivalMinutes are zero when Next is nil;
	// with a next trip they are always populated from that trip's
	// DurationMin, so an unprofiled destination still gets a distance-based
	// estimate before degrading to the generic fallback.
	EstimatedArrival        string
	EstimatedArrivalMinutes int

	// Progress is the en-route fraction of the next bus, 0 until departure,
	// clamped to 1. A constant-speed model for map animation, not a
	// position feed.
	Progress float64

	DistanceKm  float64
	DurationMin int
}

// Engine composes the resolver, the schedule index and the physics store
// into live views.
type Engine struct {
	index    *Index
	resolver *match.Resolver
	physics  *physics.Store
	grace    int
	now      func() int
}

// NewEngine creates an Engine. grace is the minutes a just-departed bus
// stays on the board.
func NewEngine(index *Index, resolver *match.Resolver, phys *physics.Store, grace int) *Engine {
	return &Engine{
		index:    index,
		resolver: resolver,
		physics:  phys,
		grace:    grace,
		now:      clock.NowMinutes,
	}
}

// WithClock overrides the wall-clock source. Tests and replay tooling use
// this; production keeps the default.
func (e *Engine) WithClock(now func() int) *Engine {
	e.now = now
	return e
}

// LiveView evaluates a query against the current wall clock.
func (e *Engine) LiveView(query string) Snapshot {
	return e.LiveViewAt(query, e.now())
}

// LiveViewAt evaluates a query at an explicit clock value. Callers deriving
// several facts from one board must use this with a single sampled value so
// the clock cannot tick over mid-computation.
func (e *Engine) LiveViewAt(query string, nowMinutes int) Snapshot {
	snap := Snapshot{Query: query, CurrentMinutes: nowMinutes}

	dest, ok := e.resolver.Resolve(query)
	if !ok {
		snap.Outcome = OutcomeUnknownDestination
		return snap
	}
	snap.Destination = dest
	snap.Intercity = e.resolver.IsIntercity(dest)

	profile := e.physics.Profile(dest)
	snap.DistanceKm = profile.DistanceKm
	snap.DurationMin = profile.DurationMin

	trips := e.index.TripsFor(dest)
	if len(trips) == 0 {
		snap.Outcome = OutcomeNoService
		return snap
	}

	snap.Upcoming = e.upcoming(dest, trips, nowMinutes, profile.DurationMin)
	if len(snap.Upcoming) == 0 {
		snap.Outcome = OutcomeServiceEnded
		return snap
	}

	snap.Outcome = OutcomeOK
	snap.Next = &snap.Upcoming[0]
	snap.MinutesUntilNext = snap.Next.MinutesUntil
	snap.EstimatedArrivalMinutes = snap.Next.Minute + snap.Next.DurationMin
	snap.EstimatedArrival = clock.FromMinutes(snap.EstimatedArrivalMinutes)
	snap.Progress = progress(nowMinutes, snap.Next.Minute, snap.Next.DurationMin)

	return snap
}

// upcoming filters to trips at or after now minus the grace window, sorted
// by minute of day. Equal departure minutes keep dataset order.
func (e *Engine) upcoming(dest string, trips []dataset.Trip, nowMinutes, profileDur int) []UpcomingTrip {
	hasProfile := e.physics.HasProfile(dest)

	var out []UpcomingTrip
	for _, t := range trips {
		minute := clock.ToMinutes(t.DepartureTime)
		if minute < nowMinutes-e.grace {
			continue
		}
		delta := minute - nowMinutes

		// Intercity records carry their own distance, which beats the
		// generic fallback when the destination has no curated profile.
		dur := profileDur
		if !hasProfile && t.DistanceKm > 0 {
			dur = e.physics.TravelTime(t.DistanceKm, t.ServiceClass)
		}

		out = append(out, UpcomingTrip{
			Trip:         t,
			Minute:       minute,
			MinutesUntil: delta,
			DurationMin:  dur,
			Arrival:      clock.FromMinutes(minute + dur),
			Status:       statusLabel(delta),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Minute < out[j].Minute })
	return out
}

// statusLabel gives the board annotation for a departure delta.
func statusLabel(delta int) string {
	switch {
	case delta <= 5 && delta > -10:
		return "Departing Now"
	case delta > 5 && delta <= 15:
		return "Boarding Soon"
	case delta > 15 && delta <= 60:
		return fmt.Sprintf("in %d min", delta)
	default:
		return ""
	}
}

func progress(nowMinutes, departureMinute, durationMin int) float64 {
	if nowMinutes < departureMinute || durationMin <= 0 {
		return 0
	}
	p := float64(nowMinutes-departureMinute) / float64(durationMin)
	if p > 1 {
		return 1
	}
	return p
}
