// Package geo carries the curated waypoint coordinates of the Puttur
// network and straight-line distance math. It exists so API responses can
// hand a map client its endpoints; it does no route geometry.
package geo

import (
	"math"
	"sort"
	"strings"
)

const earthRadiusKm = 6371

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance in kilometers between two points.
func Haversine(from, to Point) float64 {
	dLat := toRad(to.Lat - from.Lat)
	dLon := toRad(to.Lng - from.Lng)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(from.Lat))*math.Cos(toRad(to.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// waypoints holds high-precision coordinates for the KSRTC Puttur network.
// Hand-maintained alongside the catalog.
var waypoints = map[string]Point{
	// Hubs
	"puttur":            {Lat: 12.7686, Lng: 75.2034},
	"bundar":            {Lat: 12.8631, Lng: 74.8367}, // Statebank old name
	"statebank":         {Lat: 12.8631, Lng: 74.8367},
	"mangalore":         {Lat: 12.9141, Lng: 74.8560},
	"mangaluru":         {Lat: 12.9141, Lng: 74.8560},
	"mysuru":            {Lat: 12.2958, Lng: 76.6394},
	"bengaluru":         {Lat: 12.9716, Lng: 77.5946},
	"kasaragodu":        {Lat: 12.5102, Lng: 74.9852},
	"dharmastala":       {Lat: 12.9463, Lng: 75.3789},
	"subrahmanya":       {Lat: 12.6668, Lng: 75.6174},
	"kukke subrahmanya": {Lat: 12.6668, Lng: 75.6174},
	"sulya":             {Lat: 12.5658, Lng: 75.3929},

	// Intermediate stops, Puttur -> Mangalore side
	"kombettu":    {Lat: 12.7720, Lng: 75.2100},
	"bolwar":      {Lat: 12.7600, Lng: 75.2000},
	"kabaka":      {Lat: 12.7836, Lng: 75.1842},
	"mani":        {Lat: 12.8596, Lng: 75.0699},
	"kalladka":    {Lat: 12.8600, Lng: 75.0500},
	"bc road":     {Lat: 12.8698, Lng: 75.0392},
	"farangipete": {Lat: 12.8700, Lng: 74.9800},
	"adyar":       {Lat: 12.8800, Lng: 74.9200},
	"pumpwell":    {Lat: 12.8800, Lng: 74.8700},
	"jyothi":      {Lat: 12.8750, Lng: 74.8450},

	// Puttur -> Uppinangady side
	"uppinangady": {Lat: 12.8398, Lng: 75.2492},
	"nelyadi":     {Lat: 12.8800, Lng: 75.3500},

	// Misc
	"vitla":   {Lat: 12.7668, Lng: 75.0934},
	"kadaba":  {Lat: 12.7214, Lng: 75.4678},
	"bellare": {Lat: 12.6300, Lng: 75.4000},
}

// Lookup finds the coordinates for a place name, case-insensitively, with a
// substring fallback for compound names ("Statebank Stand"). Returns ok ==
// false for unknown places.
func Lookup(place string) (Point, bool) {
	normalized := strings.ToLower(strings.TrimSpace(place))
	if normalized == "" {
		return Point{}, false
	}

	if p, ok := waypoints[normalized]; ok {
		return p, true
	}

	// Sorted scan keeps the substring fallback deterministic.
	for _, key := range waypointKeys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return waypoints[key], true
		}
	}

	return Point{}, false
}

var waypointKeys = func() []string {
	keys := make([]string, 0, len(waypoints))
	for k := range waypoints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()
