package models

import "time"

// Instructor represents a teaching staff member of an academy.
type Instructor struct {
	ID        string     `json:"id"`
	AcademyID string     `json:"academy_id"`
	Name      string     `json:"name" validate:"required"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty" validate:"omitempty,email"`
	Subject   string     `json:"subject,omitempty"`
	HiredAt   *time.Time `json:"hired_at,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
