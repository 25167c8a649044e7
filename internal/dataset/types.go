// Package dataset loads the static trip fixtures and normalizes them into a
// single Trip model. The data is append-only and read-only: it is loaded once
// at startup and shared by every query without locking.
package dataset

// Trip is one scheduled departure. Identity is positional: Index is assigned
// at load time and two trips with identical fields are distinct entries.
type Trip struct {
	Index         int
	Origin        string
	Destination   string   // raw, as authored; resolve before comparing
	Via           []string // ordered intermediate stops
	ServiceClass  string   // "Express", "Ordinary", "Limited Stop", ...
	DepartureTime string   // textual, 24h or 12h, not consistent across records

	// Present only on intercity records.
	Operator   string
	DistanceKm float64
	Duration   string
}

// localRecord is the shape produced by the bus-stand timetable conversion:
// via stops are one comma-delimited string.
type localRecord struct {
	ID   int    `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Via  string `json:"via"`
	Type string `json:"type"`
	Time string `json:"time"`
}

// intercityRecord is the shape of the long-distance dataset.
type intercityRecord struct {
	ID            string   `json:"id"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	DepartureTime string   `json:"departureTime"`
	ServiceType   string   `json:"serviceType"`
	Via           []string `json:"via"`
	DistanceKm    float64  `json:"distanceKm"`
	Duration      string   `json:"duration"`
	Operator      string   `json:"operator"`
}
