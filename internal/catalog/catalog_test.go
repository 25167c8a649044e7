package catalog

import "testing"

func TestLoadEmbeddedDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load embedded default: %v", err)
	}

	if c.Hub != "Puttur" {
		t.Errorf("hub = %q, want Puttur", c.Hub)
	}
	if c.GraceMinutes != 5 {
		t.Errorf("grace = %d, want 5", c.GraceMinutes)
	}
	if c.FuzzyThreshold != 0.4 {
		t.Errorf("threshold = %v, want 0.4", c.FuzzyThreshold)
	}
	if c.SlugPrefix() != "puttur-to-" {
		t.Errorf("slug prefix = %q", c.SlugPrefix())
	}
	if c.Aliases["mangalore"] != "Statebank" {
		t.Errorf("mangalore alias = %q, want Statebank", c.Aliases["mangalore"])
	}
	if c.Fallback.DistanceKm != 40 || c.Fallback.DurationMin != 60 {
		t.Errorf("fallback = %+v", c.Fallback)
	}
	if c.Profiles["bengaluru"].DurationMin != 420 {
		t.Errorf("bengaluru profile = %+v", c.Profiles["bengaluru"])
	}
}

func TestParse_AliasKeyNormalization(t *testing.T) {
	c, err := Parse([]byte(`
hub: Puttur
grace_minutes: 5
fuzzy_threshold: 0.4
aliases:
  "  Mangalore ": Statebank
fallback: { distance_km: 40, duration_min: 60 }
default_speed_kmh: 35
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Aliases["mangalore"] != "Statebank" {
		t.Errorf("alias keys should be lowercased and trimmed: %v", c.Aliases)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing hub", "grace_minutes: 5\nfuzzy_threshold: 0.4\nfallback: {distance_km: 40, duration_min: 60}\ndefault_speed_kmh: 35"},
		{"threshold out of range", "hub: Puttur\nfuzzy_threshold: 1.5\nfallback: {distance_km: 40, duration_min: 60}\ndefault_speed_kmh: 35"},
		{"zero duration profile", "hub: Puttur\nfuzzy_threshold: 0.4\nprofiles:\n  sulya: {distance_km: 31, duration_min: 0}\nfallback: {distance_km: 40, duration_min: 60}\ndefault_speed_kmh: 35"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
