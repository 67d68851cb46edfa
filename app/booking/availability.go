// Package booking computes public consultation-booking availability
// from an academy's weekly open hours and blocked dates. Everything in
// this package is a pure function of its inputs; the handlers fetch
// the configuration and call in.
package booking

import (
	"fmt"
	"strings"
	"time"
)

// weekday keys as stored in academy settings, indexed by time.Weekday.
var weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// WeekdayKey returns the settings key ("mon".."sun") for a date.
func WeekdayKey(date time.Time) string {
	return weekdayKeys[date.Weekday()]
}

// HasAnyHours reports whether any weekday has at least one range
// configured. When nothing is configured the booking form falls back
// to a permissive policy: every non-blocked date is available.
func HasAnyHours(weeklyHours map[string][]string) bool {
	for _, ranges := range weeklyHours {
		if len(ranges) > 0 {
			return true
		}
	}
	return false
}

// IsBlocked reports whether the date appears in the blocked set. Only
// the date portion of a blocked slot is consulted; a block removes the
// whole day regardless of its start/end time fields.
func IsBlocked(date string, blockedDates []string) bool {
	for _, d := range blockedDates {
		if d == date {
			return true
		}
	}
	return false
}

// IsDateAvailable reports whether a candidate date is bookable. The
// date string is "YYYY-MM-DD"; its weekday is resolved in the local
// zone of the caller-parsed time.
func IsDateAvailable(date time.Time, weeklyHours map[string][]string, blockedDates []string) bool {
	if IsBlocked(date.Format("2006-01-02"), blockedDates) {
		return false
	}
	if !HasAnyHours(weeklyHours) {
		return true
	}
	return len(weeklyHours[WeekdayKey(date)]) > 0
}

// SlotsForDate generates the ordered start times available on a date.
// Each "HH:MM-HH:MM" range is walked independently, left to right in
// stored order, emitting a start every durationMinutes from the range
// start while start+duration still fits inside the range. Ranges are
// not merged or sorted, so overlapping ranges yield overlapping slots.
// Malformed ranges are skipped. A blocked or closed date yields nil.
func SlotsForDate(date time.Time, weeklyHours map[string][]string, durationMinutes int, blockedDates []string) []string {
	if durationMinutes <= 0 {
		return nil
	}
	if !IsDateAvailable(date, weeklyHours, blockedDates) {
		return nil
	}

	ranges := weeklyHours[WeekdayKey(date)]
	if len(ranges) == 0 && HasAnyHours(weeklyHours) {
		return nil
	}

	var slots []string
	for _, r := range ranges {
		start, end, ok := parseRange(r)
		if !ok {
			continue
		}
		for t := start; t+durationMinutes <= end; t += durationMinutes {
			slots = append(slots, formatMinutes(t))
		}
	}
	return slots
}

// MinBookableDate is the earliest selectable booking date: today in
// the given location. Past-date bookings are rejected against this.
func MinBookableDate(loc *time.Location) string {
	return time.Now().In(loc).Format("2006-01-02")
}

// parseRange parses "HH:MM-HH:MM" into minutes since midnight. The
// third return is false for anything malformed; callers skip such
// ranges rather than fail.
func parseRange(r string) (int, int, bool) {
	parts := strings.SplitN(r, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok := parseHHMM(strings.TrimSpace(parts[0]))
	if !ok {
		return 0, 0, false
	}
	end, ok := parseHHMM(strings.TrimSpace(parts[1]))
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parseHHMM(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, ok := parseDigits(parts[0])
	if !ok || h > 23 {
		return 0, false
	}
	m, ok := parseDigits(parts[1])
	if !ok || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func parseDigits(s string) (int, bool) {
	if len(s) == 0 || len(s) > 2 {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func formatMinutes(t int) string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}
