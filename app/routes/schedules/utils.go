package schedules

import "strings"

// ValidateTimeFormat validates time format (HH:MM).
func ValidateTimeFormat(timeStr string) bool {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	for _, p := range parts {
		for _, ch := range p {
			if ch < '0' || ch > '9' {
				return false
			}
		}
	}
	h := int(parts[0][0]-'0')*10 + int(parts[0][1]-'0')
	m := int(parts[1][0]-'0')*10 + int(parts[1][1]-'0')
	return h < 24 && m < 60
}

// ValidateTimeRange checks both endpoints and that start precedes end.
// HH:MM strings compare correctly as text.
func ValidateTimeRange(startTime, endTime string) bool {
	if !ValidateTimeFormat(startTime) || !ValidateTimeFormat(endTime) {
		return false
	}
	return startTime < endTime
}
