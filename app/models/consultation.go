package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Consultation is an inbound inquiry/booking record. Public bookings
// arrive through the slug-addressed form; staff can also create them
// directly from the console.
type Consultation struct {
	ID            string             `json:"id"`
	AcademyID     string             `json:"academy_id"`
	ReservationNo string             `json:"reservation_no"`
	Name          string             `json:"name" validate:"required"`
	Phone         string             `json:"phone" validate:"required"`
	StudentGrade  string             `json:"student_grade,omitempty"`
	Date          string             `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string             `json:"start_time" validate:"required"`
	Status        ConsultationStatus `json:"status"`
	AssignedTo    *string            `json:"assigned_to,omitempty"`
	Memo          string             `json:"memo,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     *time.Time         `json:"deleted_at,omitempty"`
}

// NewReservationNo builds a reservation number: "R" + YYMMDD + six
// uppercase characters derived from a fresh UUID.
func NewReservationNo(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return "R" + now.Format("060102") + suffix
}

// CanTransition reports whether a consultation may move from its
// current status to the target status.
func (c *Consultation) CanTransition(to ConsultationStatus) bool {
	switch c.Status {
	case ConsultationPending:
		return to == ConsultationInProgress || to == ConsultationCancelled
	case ConsultationInProgress:
		return to == ConsultationCompleted || to == ConsultationCancelled
	default:
		return false
	}
}
