package models

import "time"

// Salary is an instructor's salary configuration. The latest record
// per instructor is the active one.
type Salary struct {
	ID              string       `json:"id"`
	InstructorID    string       `json:"instructor_id" validate:"required,uuid"`
	Amount          int64        `json:"amount" validate:"required,gte=0"`
	Period          SalaryPeriod `json:"period" validate:"required,oneof=day month"`
	HasAllowance    bool         `json:"has_allowance"`
	Allowance       int64        `json:"allowance"`
	AllowancePeriod SalaryPeriod `json:"allowance_period,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	DeletedAt       *time.Time   `json:"deleted_at,omitempty"`
}

// Payout is a computed salary payout for a period. It is derived from
// the salary configuration and duty days, never stored as entered.
type Payout struct {
	InstructorID string    `json:"instructor_id"`
	PeriodStart  time.Time `json:"period_start"`
	PeriodEnd    time.Time `json:"period_end"`
	DutyDays     int       `json:"duty_days"`
	BasePay      int64     `json:"base_pay"`
	AllowancePay int64     `json:"allowance_pay"`
	TotalPay     int64     `json:"total_pay"`
}
