package clock

import "testing"

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"24h afternoon", "14:30", 870},
		{"24h morning", "6:15", 375}, // no meridiem: taken as 06:15, not evening
		{"24h midnight", "0:00", 0},
		{"12h pm", "2:30 PM", 870},
		{"12h am", "6:15 am", 375},
		{"noon", "12:00 PM", 720},
		{"midnight 12h", "12:00 AM", 0},
		{"12h pm lowercase glued", "2:30pm", 870},
		{"meridiem before digits", "PM 2:30", 870},
		{"padded", "  09:05  ", 545},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"garbage", "half past nine", 0},
		{"missing minutes", "14", 0},
		{"non-numeric hour", "xx:30", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMinutes(tt.input); got != tt.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{"midnight", 0, "12:00 AM"},
		{"morning", 375, "6:15 AM"},
		{"noon", 720, "12:00 PM"},
		{"afternoon", 870, "2:30 PM"},
		{"last minute of day", 1439, "11:59 PM"},
		{"rollover next day", 1500, "1:00 AM"},  // 25:00
		{"rollover two days", 2880, "12:00 AM"}, // exactly 48h
		{"negative wraps back", -60, "11:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMinutes(tt.input); got != tt.want {
				t.Errorf("FromMinutes(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Every minute of the day must survive a format/parse round trip.
func TestRoundTrip_AllMinutes(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		if got := ToMinutes(FromMinutes(m)); got != m {
			t.Fatalf("ToMinutes(FromMinutes(%d)) = %d", m, got)
		}
	}
}

// Re-normalizing an already-canonical 12-hour string is a no-op.
func TestFormat12h_Stable(t *testing.T) {
	inputs := []string{"6:15", "14:30", "2:30 PM", "12:00 am", "23:59"}
	for _, s := range inputs {
		once := Format12h(s)
		if twice := Format12h(once); twice != once {
			t.Errorf("Format12h not stable for %q: %q -> %q", s, once, twice)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		base  string
		delta int
		want  string
	}{
		{"22:30", 95, "12:05 AM"}, // crosses midnight
		{"6:15", 45, "7:00 AM"},
		{"12:00 PM", -30, "11:30 AM"},
		{"0:30", -60, "11:30 PM"}, // backwards past midnight
	}

	for _, tt := range tests {
		if got := AddMinutes(tt.base, tt.delta); got != tt.want {
			t.Errorf("AddMinutes(%q, %d) = %q, want %q", tt.base, tt.delta, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45 mins"},
		{60, "1 hr"},
		{135, "2h 15m"},
		{0, "0 mins"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestHeadway(t *testing.T) {
	tests := []struct {
		name  string
		times []string
		want  string
	}{
		{"regular service", []string{"6:00", "6:30", "7:00", "7:30"}, "Every ~30 mins"},
		{"unsorted input", []string{"7:30", "6:00", "7:00", "6:30"}, "Every ~30 mins"},
		{"single departure", []string{"6:00"}, "Variable"},
		{"empty", nil, "Variable"},
		{"all duplicates", []string{"6:00", "6:00", "6:00"}, "Variable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Headway(tt.times); got != tt.want {
				t.Errorf("Headway(%v) = %q, want %q", tt.times, got, tt.want)
			}
		})
	}
}
