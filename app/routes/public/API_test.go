package public

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

func TestCheckBookingDate(t *testing.T) {
	minDate := "2025-09-01"

	date, reject := checkBookingDate("2025-09-01", minDate)
	assert.Empty(t, reject)
	assert.Equal(t, "2025-09-01", date.Format("2006-01-02"))

	_, reject = checkBookingDate("2025-08-31", minDate)
	assert.Equal(t, "Date is in the past", reject)

	// Malformed input reads as malformed, even when it would sort
	// before the minimum date as a raw string.
	for _, bad := range []string{"", "9999", "2025-13-01", "not-a-date", "2025/09/01"} {
		_, reject = checkBookingDate(bad, minDate)
		assert.Equal(t, "Invalid date", reject, bad)
	}
}

func TestBookingConfigPayloadCarriesBlockedDates(t *testing.T) {
	academy := &models.Academy{Name: "Gangnam", Slug: "gangnam"}
	settings := &models.AcademySettings{
		WeeklyHours:         map[string][]string{"mon": {"09:00-12:00"}},
		SlotDurationMinutes: 30,
		BlockedSlots: []models.BlockedSlot{
			{Date: "2025-09-15", Reason: "holiday"},
			{Date: "2025-09-16"},
		},
	}

	payload := bookingConfigPayload(academy, settings, "2025-09-01")
	assert.Equal(t, []string{"2025-09-15", "2025-09-16"}, payload["blocked_dates"])
	assert.Equal(t, "2025-09-01", payload["min_date"])
	assert.Equal(t, 30, payload["slot_duration_minutes"])
}

func TestSlotsPayloadAvailability(t *testing.T) {
	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	// Permissive policy: no hours configured anywhere. The day is
	// available even though no slots can be generated.
	empty := &models.AcademySettings{WeeklyHours: map[string][]string{}, SlotDurationMinutes: 30}
	payload := slotsPayload("2025-09-01", monday, empty)
	assert.Equal(t, true, payload["available"])
	assert.Equal(t, []string{}, payload["slots"])

	// Blocked date: unavailable, no slots.
	blocked := &models.AcademySettings{
		WeeklyHours:         map[string][]string{"mon": {"09:00-12:00"}},
		SlotDurationMinutes: 60,
		BlockedSlots:        []models.BlockedSlot{{Date: "2025-09-01"}},
	}
	payload = slotsPayload("2025-09-01", monday, blocked)
	assert.Equal(t, false, payload["available"])
	assert.Equal(t, []string{}, payload["slots"])

	// Configured open day: available with slots.
	open := &models.AcademySettings{
		WeeklyHours:         map[string][]string{"mon": {"09:00-12:00"}},
		SlotDurationMinutes: 60,
	}
	payload = slotsPayload("2025-09-01", monday, open)
	assert.Equal(t, true, payload["available"])
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, payload["slots"])
}
