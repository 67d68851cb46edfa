package models

import "time"

// TrainingRecord is one training session result for a student.
type TrainingRecord struct {
	ID        string    `json:"id"`
	AcademyID string    `json:"academy_id"`
	StudentID string    `json:"student_id" validate:"required,uuid"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot  TimeSlot  `json:"time_slot" validate:"required,oneof=morning afternoon evening"`
	Exercise  string    `json:"exercise" validate:"required"`
	Score     float64   `json:"score"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Student   *Student  `json:"student,omitempty"`
}

// MonthlyTest is a scheduled test whose scores feed the scoreboard.
type MonthlyTest struct {
	ID        string     `json:"id"`
	AcademyID string     `json:"academy_id"`
	Title     string     `json:"title" validate:"required"`
	Month     string     `json:"month" validate:"required"` // YYYY-MM
	IsPublic  bool       `json:"is_public"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// TestScore is one student's score on a monthly test.
type TestScore struct {
	ID          string    `json:"id"`
	TestID      string    `json:"test_id" validate:"required,uuid"`
	StudentID   string    `json:"student_id" validate:"required,uuid"`
	Score       float64   `json:"score"`
	RecordedAt  time.Time `json:"recorded_at"`
	StudentName string    `json:"student_name,omitempty"`
}

// RankedScore is a scoreboard row: a test score with its computed
// competition rank (ties share a rank, the next rank skips).
type RankedScore struct {
	Rank        int     `json:"rank"`
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	Score       float64 `json:"score"`
}
