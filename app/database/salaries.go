package database

import (
	"database/sql"
	"time"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

// GetInstructorSalary returns the active salary configuration for an
// instructor (the most recent record).
func GetInstructorSalary(db *sql.DB, instructorID string) (*models.Salary, error) {
	s := &models.Salary{}
	query := `SELECT id, instructor_id, amount, period, has_allowance, allowance, allowance_period, created_at, updated_at
			  FROM salaries
			  WHERE instructor_id = $1 AND deleted_at IS NULL
			  ORDER BY created_at DESC LIMIT 1`
	err := db.QueryRow(query, instructorID).Scan(
		&s.ID, &s.InstructorID, &s.Amount, &s.Period, &s.HasAllowance,
		&s.Allowance, &s.AllowancePeriod, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// SetInstructorSalary records a new salary configuration; history is
// kept, the latest record wins.
func SetInstructorSalary(db *sql.DB, s *models.Salary) error {
	query := `INSERT INTO salaries (instructor_id, amount, period, has_allowance, allowance, allowance_period)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.InstructorID, s.Amount, s.Period,
		s.HasAllowance, s.Allowance, s.AllowancePeriod).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// GetInstructorDutyDays counts distinct dates on which the instructor
// had at least one schedule with a marked attendance in the range.
func GetInstructorDutyDays(db *sql.DB, instructorID string, startDate, endDate time.Time) (int, error) {
	query := `SELECT COUNT(DISTINCT a.date)
			  FROM attendances a
			  JOIN schedules s ON s.id = a.schedule_id
			  WHERE s.instructor_id = $1 AND a.date >= $2 AND a.date <= $3`

	var count int
	err := db.QueryRow(query, instructorID, startDate.Format("2006-01-02"), endDate.Format("2006-01-02")).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CalculatePayout computes the payout breakdown for a salary config
// over a period. Daily salaries multiply by duty days; monthly ones
// are fixed. The allowance follows its own period: per day, or fixed
// per month.
func CalculatePayout(salary *models.Salary, dutyDays int) (base, allowance, total int64) {
	if salary == nil {
		return 0, 0, 0
	}

	base = salary.Amount
	if salary.Period == models.SalaryDay {
		base = salary.Amount * int64(dutyDays)
	}

	if salary.HasAllowance {
		switch salary.AllowancePeriod {
		case models.SalaryDay:
			allowance = salary.Allowance * int64(dutyDays)
		default:
			allowance = salary.Allowance
		}
	}

	return base, allowance, base + allowance
}

// GetProposedPayout assembles the computed payout for an instructor
// over a period.
func GetProposedPayout(db *sql.DB, instructorID string, startDate, endDate time.Time) (*models.Payout, error) {
	salary, err := GetInstructorSalary(db, instructorID)
	if err != nil {
		return nil, err
	}

	dutyDays, err := GetInstructorDutyDays(db, instructorID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	base, allowance, total := CalculatePayout(salary, dutyDays)
	return &models.Payout{
		InstructorID: instructorID,
		PeriodStart:  startDate,
		PeriodEnd:    endDate,
		DutyDays:     dutyDays,
		BasePay:      base,
		AllowancePay: allowance,
		TotalPay:     total,
	}, nil
}
