package dataset

import (
	"strings"
	"testing"
)

const localJSON = `[
	{"id": 1, "from": "Puttur", "to": "Statebank", "via": "Kabaka, BC Road, Pumpwell", "type": "Express", "time": "6:15"},
	{"id": 2, "from": "Puttur", "to": "Sulya", "via": "", "type": "Ordinary", "time": "14:30"},
	{"id": 3, "from": "Puttur", "to": "Statebank", "via": " Uppinangady ", "type": "Express", "time": "6:15"}
]`

const intercityJSON = `[
	{"id": "ic-1", "from": "Puttur", "to": "Bengaluru", "departureTime": "9:30 PM",
	 "serviceType": "Sleeper", "via": ["BC Road", "", "Hassan"], "distanceKm": 310,
	 "duration": "7h", "operator": "KSRTC"}
]`

func TestReadLocal(t *testing.T) {
	trips, err := ReadLocal(strings.NewReader(localJSON), 0)
	if err != nil {
		t.Fatalf("ReadLocal: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("got %d trips, want 3", len(trips))
	}

	first := trips[0]
	if first.Origin != "Puttur" || first.Destination != "Statebank" {
		t.Errorf("wrong endpoints: %q -> %q", first.Origin, first.Destination)
	}
	if len(first.Via) != 3 || first.Via[1] != "BC Road" {
		t.Errorf("via not comma-split: %v", first.Via)
	}
	if len(trips[1].Via) != 0 {
		t.Errorf("empty via should stay empty, got %v", trips[1].Via)
	}
	if trips[2].Via[0] != "Uppinangady" {
		t.Errorf("via not trimmed: %v", trips[2].Via)
	}

	// Identity is positional: identical fields, distinct trips.
	if trips[0].Index == trips[2].Index {
		t.Error("duplicate records must keep distinct indices")
	}
}

func TestReadIntercity(t *testing.T) {
	trips, err := ReadIntercity(strings.NewReader(intercityJSON), 3)
	if err != nil {
		t.Fatalf("ReadIntercity: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("got %d trips, want 1", len(trips))
	}

	trip := trips[0]
	if trip.Index != 3 {
		t.Errorf("index should continue from offset, got %d", trip.Index)
	}
	if trip.ServiceClass != "Sleeper" || trip.DepartureTime != "9:30 PM" {
		t.Errorf("service fields wrong: %+v", trip)
	}
	if len(trip.Via) != 2 {
		t.Errorf("blank via entries should be dropped: %v", trip.Via)
	}
	if trip.Operator != "KSRTC" || trip.DistanceKm != 310 {
		t.Errorf("intercity extras wrong: %+v", trip)
	}
}

func TestReadLocal_Malformed(t *testing.T) {
	if _, err := ReadLocal(strings.NewReader(`{"not":"an array"}`), 0); err == nil {
		t.Error("expected error for non-array input")
	}
}

func TestDestinations_FirstSeenOrder(t *testing.T) {
	trips := []Trip{
		{Destination: "Statebank"},
		{Destination: "Sulya"},
		{Destination: "Statebank"},
		{Destination: "Bengaluru"},
	}
	got := Destinations(trips)
	want := []string{"Statebank", "Sulya", "Bengaluru"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
