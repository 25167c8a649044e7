// Package catalog holds the curated per-deployment route knowledge: the hub
// name, the alias table, the intercity destination set, and the physical
// route profiles. None of this is derivable from the trip data; it is a
// versioned configuration artifact loaded once at startup. An embedded
// default ships with the binary and a deployment can override it with its
// own file.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

// Profile is the static physical estimate for one route.
type Profile struct {
	DistanceKm  float64 `yaml:"distance_km" validate:"gt=0"`
	DurationMin int     `yaml:"duration_min" validate:"gt=0"`
}

// Catalog is the full curated route table for one deployment.
type Catalog struct {
	// Hub is the single fixed origin all trips depart from.
	Hub string `yaml:"hub" validate:"required"`

	// GraceMinutes keeps a just-departed bus on the board this long.
	GraceMinutes int `yaml:"grace_minutes" validate:"gte=0,lte=60"`

	// FuzzyThreshold rejects fuzzy matches scoring above it (0 exact, 1 anything).
	FuzzyThreshold float64 `yaml:"fuzzy_threshold" validate:"gt=0,lte=1"`

	// Aliases maps normalized alternate spellings to canonical destinations.
	Aliases map[string]string `yaml:"aliases"`

	// Intercity lists the canonical destinations served by long-distance
	// routes. Everything else is local.
	Intercity []string `yaml:"intercity"`

	// Profiles maps lowercased canonical destinations to physical estimates.
	Profiles map[string]Profile `yaml:"profiles"`

	// Fallback is used for destinations with no profile entry.
	Fallback Profile `yaml:"fallback" validate:"required"`

	// SpeedsKmh estimates average speed per service class, stops included.
	SpeedsKmh map[string]float64 `yaml:"speeds_kmh"`

	// DefaultSpeedKmh applies to unlisted service classes.
	DefaultSpeedKmh float64 `yaml:"default_speed_kmh" validate:"gt=0"`
}

// Load reads and validates a catalog file. An empty path loads the embedded
// default.
func Load(path string) (*Catalog, error) {
	data := defaultYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	v := validator.New()
	if err := v.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	for dest, p := range c.Profiles {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("validate profile %q: %w", dest, err)
		}
	}

	// Alias keys are matched against normalized queries; normalize them here
	// so a hand-edited file with stray case or spacing still works.
	aliases := make(map[string]string, len(c.Aliases))
	for k, val := range c.Aliases {
		aliases[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(val)
	}
	c.Aliases = aliases

	return &c, nil
}

// SlugPrefix is the routing prefix stripped from incoming slugs,
// e.g. "puttur-to-" for hub "Puttur".
func (c *Catalog) SlugPrefix() string {
	return strings.ToLower(c.Hub) + "-to-"
}
