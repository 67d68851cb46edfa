package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWeeklyHours(t *testing.T) {
	assert.Nil(t, validateWeeklyHours(nil))
	assert.Nil(t, validateWeeklyHours(map[string][]string{}))
	assert.Nil(t, validateWeeklyHours(map[string][]string{
		"mon": {"09:00-12:00", "14:00-18:00"},
		"sun": {},
	}))

	fields := validateWeeklyHours(map[string][]string{"monday": {"09:00-12:00"}})
	assert.Contains(t, fields, "monday")

	fields = validateWeeklyHours(map[string][]string{"tue": {"12:00-09:00"}})
	assert.Contains(t, fields, "tue")

	fields = validateWeeklyHours(map[string][]string{"wed": {"09:00"}})
	assert.Contains(t, fields, "wed")

	fields = validateWeeklyHours(map[string][]string{"thu": {"9:00-10:00"}})
	assert.Contains(t, fields, "thu")
}

func TestValidHHMM(t *testing.T) {
	assert.True(t, validHHMM("00:00"))
	assert.True(t, validHHMM("23:59"))
	assert.False(t, validHHMM("24:00"))
	assert.False(t, validHHMM("09:60"))
	assert.False(t, validHHMM("9:30"))
	assert.False(t, validHHMM("ab:cd"))
}
