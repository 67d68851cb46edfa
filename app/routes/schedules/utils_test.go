package schedules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"", "9:30", "09:3", "24:00", "09:60", "ab:cd", "09-30", "09:30:00"}

	for _, s := range valid {
		assert.True(t, ValidateTimeFormat(s), s)
	}
	for _, s := range invalid {
		assert.False(t, ValidateTimeFormat(s), s)
	}
}

func TestValidateTimeRange(t *testing.T) {
	assert.True(t, ValidateTimeRange("09:00", "10:00"))
	assert.False(t, ValidateTimeRange("10:00", "09:00"))
	assert.False(t, ValidateTimeRange("09:00", "09:00"))
	assert.False(t, ValidateTimeRange("9:00", "10:00"))
}
