package models

// ConsultationStatus defines the lifecycle states of a consultation.
type ConsultationStatus string

const (
	ConsultationPending    ConsultationStatus = "pending"
	ConsultationInProgress ConsultationStatus = "in_progress"
	ConsultationCompleted  ConsultationStatus = "completed"
	ConsultationCancelled  ConsultationStatus = "cancelled"
)

// TimeSlot is the coarse scheduling bucket used for classes and
// training assignments.
type TimeSlot string

const (
	Morning   TimeSlot = "morning"
	Afternoon TimeSlot = "afternoon"
	Evening   TimeSlot = "evening"
)

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// PaymentStatus defines the status of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// PaymentMethod defines how a payment was made.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// SalaryPeriod defines the period for an instructor's base salary.
type SalaryPeriod string

const (
	SalaryDay   SalaryPeriod = "day"
	SalaryMonth SalaryPeriod = "month"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// WeekdayKeys lists the keys used in weekly open-hours maps, in
// calendar order starting from Monday.
var WeekdayKeys = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// IsWeekdayKey reports whether day is one of the WeekdayKeys.
func IsWeekdayKey(day string) bool {
	for _, k := range WeekdayKeys {
		if k == day {
			return true
		}
	}
	return false
}
