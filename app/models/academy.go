package models

import "time"

// Academy represents a tenant organization. Multi-branch accounts own
// several academies; every authenticated request is scoped to one.
type Academy struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" validate:"required"`
	Slug      string     `json:"slug" validate:"required,lowercase"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// AcademySettings holds the per-academy configuration consumed by the
// public booking form and the console settings page.
type AcademySettings struct {
	AcademyID string `json:"academy_id"`
	// WeeklyHours maps weekday keys ("mon".."sun") to ordered
	// "HH:MM-HH:MM" range strings. A missing key or empty list means
	// no availability that weekday.
	WeeklyHours         map[string][]string `json:"weekly_hours"`
	SlotDurationMinutes int                 `json:"slot_duration_minutes"`
	BlockedSlots        []BlockedSlot       `json:"blocked_slots"`
	ScoreboardPublic    bool                `json:"scoreboard_public"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// BlockedSlot marks a calendar date as unavailable for booking. The
// start/end time fields are accepted in the data shape but only the
// date is consulted by the availability check; a block removes the
// whole day.
type BlockedSlot struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
