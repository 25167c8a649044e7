// Package physics estimates the physical reality of a route: how far it is
// and how long a bus takes to cover it. Estimates are static and curated;
// lookups never fail, they degrade to a generic profile.
package physics

import (
	"math"
	"strings"

	"putturbus/internal/catalog"
)

// Store answers distance/duration lookups for canonical destinations.
type Store struct {
	profiles     map[string]catalog.Profile
	fallback     catalog.Profile
	speedsKmh    map[string]float64
	defaultSpeed float64
}

// NewStore builds a Store from the deployment catalog.
func NewStore(cat *catalog.Catalog) *Store {
	profiles := make(map[string]catalog.Profile, len(cat.Profiles))
	for dest, p := range cat.Profiles {
		profiles[normalizeKey(dest)] = p
	}
	return &Store{
		profiles:     profiles,
		fallback:     cat.Fallback,
		speedsKmh:    cat.SpeedsKmh,
		defaultSpeed: cat.DefaultSpeedKmh,
	}
}

// Profile returns the physical estimate for a destination. Coverage is
// necessarily incomplete relative to the timetable, so unknown destinations
// get the generic fallback rather than an error.
func (s *Store) Profile(dest string) catalog.Profile {
	if p, ok := s.profiles[normalizeKey(dest)]; ok {
		return p
	}
	return s.fallback
}

// HasProfile reports whether a destination has its own curated entry.
func (s *Store) HasProfile(dest string) bool {
	_, ok := s.profiles[normalizeKey(dest)]
	return ok
}

// TravelTime estimates minutes to cover distanceKm for a service class,
// using the class's average speed plus a 10% traffic buffer.
func (s *Store) TravelTime(distanceKm float64, serviceClass string) int {
	speed := s.speedsKmh[serviceClass]
	if speed <= 0 {
		speed = s.defaultSpeed
	}
	hours := distanceKm / speed
	return int(math.Ceil(hours * 60 * 1.1))
}

func normalizeKey(dest string) string {
	return strings.ToLower(strings.TrimSpace(dest))
}
