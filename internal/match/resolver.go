// Package match resolves free-text destination queries to the canonical
// spelling used by the trip dataset. Matching runs in strict precedence
// order: alias table, exact case-insensitive match, then fuzzy match.
package match

import (
	"sort"
	"strings"
)

// Resolver maps user queries onto canonical destinations. Build one at
// startup with the dataset's destination set and the deployment catalog;
// it is immutable afterwards and safe for concurrent use.
type Resolver struct {
	canonical  []string // dataset order, drives fuzzy tie-breaking
	normalized map[string]string
	aliases    map[string]string
	intercity  map[string]bool
	slugPrefix string
	threshold  float64
}

// Config is the curated part of a Resolver.
type Config struct {
	// SlugPrefix is stripped from incoming slugs, e.g. "puttur-to-".
	SlugPrefix string
	// Aliases maps normalized alternate spellings to canonical names.
	Aliases map[string]string
	// Intercity lists the long-distance canonical destinations.
	Intercity []string
	// FuzzyThreshold rejects fuzzy candidates scoring above it.
	FuzzyThreshold float64
}

// New builds a Resolver over the given destination set. The set must be in
// dataset order; ties between equally good fuzzy candidates go to the
// first-seen entry.
func New(destinations []string, cfg Config) *Resolver {
	r := &Resolver{
		canonical:  destinations,
		normalized: make(map[string]string, len(destinations)),
		aliases:    cfg.Aliases,
		intercity:  make(map[string]bool, len(cfg.Intercity)),
		slugPrefix: cfg.SlugPrefix,
		threshold:  cfg.FuzzyThreshold,
	}
	if r.aliases == nil {
		r.aliases = map[string]string{}
	}
	for _, d := range destinations {
		r.normalized[strings.ToLower(d)] = d
	}
	for _, d := range cfg.Intercity {
		r.intercity[d] = true
	}
	return r
}

// NormalizeSlug strips the routing prefix and converts a URL slug to a
// plain lowercase query: "puttur-to-bc-road" -> "bc road".
func (r *Resolver) NormalizeSlug(slug string) string {
	s := strings.ToLower(strings.TrimSpace(slug))
	s = strings.TrimPrefix(s, r.slugPrefix)
	s = strings.ReplaceAll(s, "-", " ")
	return strings.TrimSpace(s)
}

// Resolve finds the canonical destination for a slug or free-text query.
// It is total over arbitrary input: unknown or empty queries return
// ok == false, never a panic. Identical input always gives identical output.
func (r *Resolver) Resolve(query string) (dest string, ok bool) {
	term := r.NormalizeSlug(query)
	if term == "" {
		return "", false
	}

	if dest, ok := r.aliases[term]; ok {
		return dest, true
	}

	if dest, ok := r.normalized[term]; ok {
		return dest, true
	}

	return r.fuzzy(term)
}

// IsIntercity reports whether a canonical destination is served by
// long-distance routes. Anything not in the curated list is local.
func (r *Resolver) IsIntercity(dest string) bool {
	return r.intercity[dest]
}

// Destinations returns the canonical destination set, sorted for display.
func (r *Resolver) Destinations() []string {
	out := make([]string, len(r.canonical))
	copy(out, r.canonical)
	sort.Strings(out)
	return out
}
