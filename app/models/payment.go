package models

import "time"

// Payment represents one tuition payment by a student.
type Payment struct {
	ID        string        `json:"id"`
	AcademyID string        `json:"academy_id"`
	StudentID string        `json:"student_id" validate:"required,uuid"`
	SeasonID  *string       `json:"season_id,omitempty"`
	Amount    int64         `json:"amount" validate:"required,gt=0"`
	Method    PaymentMethod `json:"method" validate:"required,oneof=cash card transfer"`
	Status    PaymentStatus `json:"status"`
	PaidAt    time.Time     `json:"paid_at"`
	Memo      string        `json:"memo,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	DeletedAt *time.Time    `json:"deleted_at,omitempty"`
	Student   *Student      `json:"student,omitempty"`
}

// MonthlyRevenue is one row of the monthly payment summary.
type MonthlyRevenue struct {
	Month  string `json:"month"` // YYYY-MM
	Total  int64  `json:"total"`
	Count  int    `json:"count"`
	Refund int64  `json:"refund"`
}
