package geo

import (
	"math"
	"testing"
)

func TestHaversine_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		from, to  Point
		wantKm    float64
		tolerance float64 // allowed error in km
	}{
		{
			name:      "Puttur to Statebank (~40 km straight line)",
			from:      Point{Lat: 12.7686, Lng: 75.2034},
			to:        Point{Lat: 12.8631, Lng: 74.8367},
			wantKm:    41.2,
			tolerance: 1,
		},
		{
			name:      "same point returns zero",
			from:      Point{Lat: 12.7686, Lng: 75.2034},
			to:        Point{Lat: 12.7686, Lng: 75.2034},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "equator quarter circumference",
			from:      Point{Lat: 0, Lng: 0},
			to:        Point{Lat: 0, Lng: 90},
			wantKm:    math.Pi / 2 * earthRadiusKm,
			tolerance: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.from, tt.to)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("Haversine() = %.2f km, want %.2f km (±%.2f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		place  string
		wantOK bool
	}{
		{"exact", "puttur", true},
		{"case insensitive", "STATEBANK", true},
		{"padded", "  Sulya ", true},
		{"compound name substring", "statebank stand", true},
		{"old name", "bundar", true},
		{"unknown", "timbuktu", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Lookup(tt.place); ok != tt.wantOK {
				t.Errorf("Lookup(%q) ok = %v, want %v", tt.place, ok, tt.wantOK)
			}
		})
	}
}

func TestLookup_AliasesShareCoordinates(t *testing.T) {
	a, ok1 := Lookup("statebank")
	b, ok2 := Lookup("bundar")
	if !ok1 || !ok2 {
		t.Fatal("both spellings should resolve")
	}
	if a != b {
		t.Errorf("statebank %v and bundar %v should be the same point", a, b)
	}
}

func TestLookup_Deterministic(t *testing.T) {
	// The substring fallback scans multiple candidate keys; the result must
	// not depend on map iteration order.
	first, _ := Lookup("manga") // prefix of both mangalore and mangaluru
	for i := 0; i < 20; i++ {
		if got, _ := Lookup("manga"); got != first {
			t.Fatalf("Lookup not deterministic: %v vs %v", got, first)
		}
	}
}
