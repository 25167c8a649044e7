// Package clock normalizes timetable times. All internal arithmetic is done
// in minutes from midnight; all display output is strict 12-hour AM/PM.
// The single source of truth for "now" is the local system clock.
package clock

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the size of the minutes-from-midnight space.
const MinutesPerDay = 24 * 60

// NowMinutes returns the current local time as minutes from midnight (0-1439).
// Live computations must sample this once and pass the value through rather
// than re-reading it mid-computation.
func NowMinutes() int {
	now := time.Now()
	return now.Hour()*60 + now.Minute()
}

// ToMinutes converts a timetable time string to minutes from midnight.
// Accepts "14:30" (24h) and "2:30 PM" (12h, meridiem anywhere, any case).
// "6:15" without a meridiem is 06:15, never inferred as evening.
// Malformed or empty input returns 0; source data is messy and a wrong time
// renders better than a failed query.
func ToMinutes(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	isPM := strings.Contains(s, "pm")
	isAM := strings.Contains(s, "am")
	s = strings.TrimSpace(strings.NewReplacer("pm", "", "am", "").Replace(s))

	h, m, ok := splitHourMinute(s)
	if !ok {
		return 0
	}

	if isPM && h < 12 {
		h += 12
	}
	if isAM && h == 12 {
		h = 0
	}

	return h*60 + m
}

func splitHourMinute(s string) (h, m int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// FromMinutes formats minutes from midnight as a strict 12-hour string,
// e.g. "7:15 PM". Values outside [0, 1440) wrap to the previous or next
// day, so adding travel time past midnight still renders a valid time.
func FromMinutes(total int) string {
	total %= MinutesPerDay
	if total < 0 {
		total += MinutesPerDay
	}

	h := total / 60
	m := total % 60

	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

// Format12h re-renders any accepted time string in canonical 12-hour form.
func Format12h(s string) string {
	return FromMinutes(ToMinutes(s))
}

// AddMinutes adds delta minutes to a time string and formats the result.
func AddMinutes(base string, delta int) string {
	return FromMinutes(ToMinutes(base) + delta)
}

// FormatDuration renders a minute count as "2h 15m", "45 mins" or "3 hr".
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%d mins", m)
	case m == 0:
		return fmt.Sprintf("%d hr", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Headway summarizes the average gap between departures as "Every ~N mins".
// Fewer than two departures, or no positive gaps, yields "Variable".
func Headway(times []string) string {
	if len(times) < 2 {
		return "Variable"
	}

	minutes := make([]int, len(times))
	for i, t := range times {
		minutes[i] = ToMinutes(t)
	}
	sort.Ints(minutes)

	totalGap, gaps := 0, 0
	for i := 1; i < len(minutes); i++ {
		if gap := minutes[i] - minutes[i-1]; gap > 0 {
			totalGap += gap
			gaps++
		}
	}
	if gaps == 0 {
		return "Variable"
	}

	avg := (totalGap + gaps/2) / gaps
	return fmt.Sprintf("Every ~%d mins", avg)
}
