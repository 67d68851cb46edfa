package models

import "time"

// Student represents an enrolled student record.
type Student struct {
	ID          string     `json:"id"`
	AcademyID   string     `json:"academy_id"`
	Name        string     `json:"name" validate:"required"`
	Phone       string     `json:"phone,omitempty"`
	ParentPhone string     `json:"parent_phone,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Gender      *Gender    `json:"gender,omitempty"`
	School      string     `json:"school,omitempty"`
	GradeLevel  string     `json:"grade_level,omitempty"`
	Memo        string     `json:"memo,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Enrollment links a student to a season.
type Enrollment struct {
	ID         string     `json:"id"`
	StudentID  string     `json:"student_id" validate:"required,uuid"`
	SeasonID   string     `json:"season_id" validate:"required,uuid"`
	EnrolledAt time.Time  `json:"enrolled_at"`
	WithdrawnAt *time.Time `json:"withdrawn_at,omitempty"`
	Student    *Student   `json:"student,omitempty"`
	Season     *Season    `json:"season,omitempty"`
}
