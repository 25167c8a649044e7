package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLocal decodes local timetable records and appends them as Trips,
// assigning indices starting at next. Via stops are comma-split and trimmed.
func ReadLocal(r io.Reader, next int) ([]Trip, error) {
	var records []localRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode local records: %w", err)
	}

	trips := make([]Trip, 0, len(records))
	for _, rec := range records {
		trips = append(trips, Trip{
			Index:         next,
			Origin:        strings.TrimSpace(rec.From),
			Destination:   strings.TrimSpace(rec.To),
			Via:           splitVia(rec.Via),
			ServiceClass:  strings.TrimSpace(rec.Type),
			DepartureTime: strings.TrimSpace(rec.Time),
		})
		next++
	}
	return trips, nil
}

// ReadIntercity decodes long-distance records and appends them as Trips.
func ReadIntercity(r io.Reader, next int) ([]Trip, error) {
	var records []intercityRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode intercity records: %w", err)
	}

	trips := make([]Trip, 0, len(records))
	for _, rec := range records {
		via := make([]string, 0, len(rec.Via))
		for _, v := range rec.Via {
			if v = strings.TrimSpace(v); v != "" {
				via = append(via, v)
			}
		}
		trips = append(trips, Trip{
			Index:         next,
			Origin:        strings.TrimSpace(rec.From),
			Destination:   strings.TrimSpace(rec.To),
			Via:           via,
			ServiceClass:  strings.TrimSpace(rec.ServiceType),
			DepartureTime: strings.TrimSpace(rec.DepartureTime),
			Operator:      strings.TrimSpace(rec.Operator),
			DistanceKm:    rec.DistanceKm,
			Duration:      strings.TrimSpace(rec.Duration),
		})
		next++
	}
	return trips, nil
}

// LoadFiles loads the local and intercity fixture files into one trip list.
// The intercity path may be empty; the local path is required. Indices run
// across both files in load order.
func LoadFiles(localPath, intercityPath string) ([]Trip, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open local dataset: %w", err)
	}
	defer f.Close()

	trips, err := ReadLocal(f, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", localPath, err)
	}

	if intercityPath != "" {
		g, err := os.Open(intercityPath)
		if err != nil {
			return nil, fmt.Errorf("open intercity dataset: %w", err)
		}
		defer g.Close()

		more, err := ReadIntercity(g, len(trips))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", intercityPath, err)
		}
		trips = append(trips, more...)
	}

	return trips, nil
}

// Destinations returns the distinct raw destination values in first-seen
// order. This order is load-bearing: the fuzzy matcher breaks score ties by
// it.
func Destinations(trips []Trip) []string {
	seen := make(map[string]bool, len(trips))
	var out []string
	for _, t := range trips {
		if !seen[t.Destination] {
			seen[t.Destination] = true
			out = append(out, t.Destination)
		}
	}
	return out
}

func splitVia(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
