package models

import "time"

// User is a console staff account.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"-"`
	Name      string     `json:"name" validate:"required"`
	Phone     string     `json:"phone,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	Roles     []*Role    `json:"roles,omitempty"`
	// Academies the user may act on. The first grant is the default
	// branch when no X-Branch-Id header is sent.
	Academies []*Academy `json:"academies,omitempty"`
}

// Role groups permission keys. The "admin" role implies every
// permission.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// HasPermission reports whether any of the user's roles grants the
// permission key. Admins pass every check.
func (u *User) HasPermission(key string) bool {
	for _, r := range u.Roles {
		if r.Name == "admin" {
			return true
		}
		for _, p := range r.Permissions {
			if p == key {
				return true
			}
		}
	}
	return false
}

// HasAcademy reports whether the user is granted access to the academy.
func (u *User) HasAcademy(academyID string) bool {
	for _, a := range u.Academies {
		if a.ID == academyID {
			return true
		}
	}
	return false
}
