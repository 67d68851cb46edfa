package models

import "time"

// Attendance represents a student's attendance on a date.
type Attendance struct {
	ID         string           `json:"id"`
	AcademyID  string           `json:"academy_id"`
	StudentID  string           `json:"student_id" validate:"required,uuid"`
	ScheduleID *string          `json:"schedule_id,omitempty"`
	Date       string           `json:"date" validate:"required,datetime=2006-01-02"`
	Status     AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
	MarkedBy   *string          `json:"marked_by,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Student    *Student         `json:"student,omitempty"`
}

// AttendanceSummary aggregates a student's attendance over a range.
// Present and late count as attended; excused days are excluded from
// the denominator.
type AttendanceSummary struct {
	StudentID string  `json:"student_id"`
	Present   int     `json:"present"`
	Absent    int     `json:"absent"`
	Late      int     `json:"late"`
	Excused   int     `json:"excused"`
	Rate      float64 `json:"rate"`
}

// ComputeRate fills Rate from the counters.
func (s *AttendanceSummary) ComputeRate() {
	denom := s.Present + s.Absent + s.Late
	if denom == 0 {
		s.Rate = 0
		return
	}
	s.Rate = float64(s.Present+s.Late) / float64(denom) * 100
}
