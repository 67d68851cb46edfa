package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-09-01 is a Monday.
var monday = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func TestIsDateAvailable(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		date    time.Time
		hours   map[string][]string
		blocked []string
		want    bool
	}{
		{
			name:  "open weekday",
			date:  monday,
			hours: map[string][]string{"mon": {"09:00-12:00"}},
			want:  true,
		},
		{
			name:  "weekday absent from hours",
			date:  tuesday,
			hours: map[string][]string{"mon": {"09:00-12:00"}},
			want:  false,
		},
		{
			name:  "weekday mapped to empty list",
			date:  tuesday,
			hours: map[string][]string{"mon": {"09:00-12:00"}, "tue": {}},
			want:  false,
		},
		{
			name:  "empty hours is permissive",
			date:  tuesday,
			hours: map[string][]string{},
			want:  true,
		},
		{
			name:  "all-empty hours is permissive",
			date:  tuesday,
			hours: map[string][]string{"mon": {}, "tue": {}},
			want:  true,
		},
		{
			name:    "blocked date loses regardless of hours",
			date:    monday,
			hours:   map[string][]string{"mon": {"09:00-12:00"}},
			blocked: []string{"2025-09-01"},
			want:    false,
		},
		{
			name:    "blocked date under permissive policy",
			date:    tuesday,
			hours:   map[string][]string{},
			blocked: []string{"2025-09-02"},
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDateAvailable(tt.date, tt.hours, tt.blocked)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotsForDate(t *testing.T) {
	tests := []struct {
		name     string
		hours    map[string][]string
		duration int
		blocked  []string
		want     []string
	}{
		{
			name:     "exact fit emits all slots",
			hours:    map[string][]string{"mon": {"09:00-10:00"}},
			duration: 30,
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "final partial slot never emitted",
			hours:    map[string][]string{"mon": {"09:00-09:40"}},
			duration: 30,
			want:     []string{"09:00"},
		},
		{
			name:     "ranges walked independently in order",
			hours:    map[string][]string{"mon": {"14:00-15:00", "09:00-10:00"}},
			duration: 30,
			want:     []string{"14:00", "14:30", "09:00", "09:30"},
		},
		{
			name:     "overlapping ranges yield overlapping slots",
			hours:    map[string][]string{"mon": {"09:00-10:00", "09:30-10:30"}},
			duration: 30,
			want:     []string{"09:00", "09:30", "09:30", "10:00"},
		},
		{
			name:     "malformed range skipped silently",
			hours:    map[string][]string{"mon": {"0900", "xx:yy-10:00", "09:00-10:00"}},
			duration: 30,
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "blocked date yields nothing",
			hours:    map[string][]string{"mon": {"09:00-10:00"}},
			duration: 30,
			blocked:  []string{"2025-09-01"},
			want:     nil,
		},
		{
			name:     "duration longer than range",
			hours:    map[string][]string{"mon": {"09:00-09:20"}},
			duration: 30,
			want:     nil,
		},
		{
			name:     "zero duration yields nothing",
			hours:    map[string][]string{"mon": {"09:00-10:00"}},
			duration: 0,
			want:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlotsForDate(monday, tt.hours, tt.duration, tt.blocked)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotsForDateDeterministic(t *testing.T) {
	hours := map[string][]string{"mon": {"09:00-12:00", "14:00-18:00"}}
	first := SlotsForDate(monday, hours, 40, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SlotsForDate(monday, hours, 40, nil))
	}
}

func TestSlotsNeverExceedRangeEnd(t *testing.T) {
	hours := map[string][]string{"mon": {"09:00-11:10", "13:05-13:50"}}
	ends := map[string]int{"09:00-11:10": 11*60 + 10, "13:05-13:50": 13*60 + 50}

	for _, duration := range []int{15, 20, 45, 60} {
		slots := SlotsForDate(monday, hours, duration, nil)
		for _, s := range slots {
			start, ok := parseHHMM(s)
			assert.True(t, ok)
			within := false
			for r, end := range ends {
				rs, _, _ := parseRange(r)
				if start >= rs && start+duration <= end {
					within = true
				}
			}
			assert.True(t, within, "slot %s duration %d escapes its range", s, duration)
		}
	}
}

func TestWeekdayKey(t *testing.T) {
	assert.Equal(t, "mon", WeekdayKey(monday))
	assert.Equal(t, "sun", WeekdayKey(monday.AddDate(0, 0, 6)))
}
