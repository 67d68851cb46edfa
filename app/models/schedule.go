package models

import "time"

// Schedule represents one weekly class schedule entry.
type Schedule struct {
	ID           string     `json:"id"`
	AcademyID    string     `json:"academy_id"`
	Title        string     `json:"title" validate:"required"`
	DayOfWeek    string     `json:"day_of_week" validate:"required,oneof=mon tue wed thu fri sat sun"`
	TimeSlot     TimeSlot   `json:"time_slot" validate:"required,oneof=morning afternoon evening"`
	StartTime    string     `json:"start_time" validate:"required"`
	EndTime      string     `json:"end_time" validate:"required"`
	InstructorID *string    `json:"instructor_id,omitempty"`
	SeasonID     *string    `json:"season_id,omitempty"`
	Capacity     int        `json:"capacity"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	Instructor   *Instructor `json:"instructor,omitempty"`
}
