package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

func GetPayments(db *sql.DB, academyID string, studentID, status, month string) ([]*models.Payment, error) {
	var conds []string
	var args []interface{}

	conds = append(conds, "p.academy_id = $1", "p.deleted_at IS NULL")
	args = append(args, academyID)

	if studentID != "" {
		args = append(args, studentID)
		conds = append(conds, fmt.Sprintf("p.student_id = $%d", len(args)))
	}
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if month != "" { // YYYY-MM
		args = append(args, month)
		conds = append(conds, fmt.Sprintf("to_char(p.paid_at, 'YYYY-MM') = $%d", len(args)))
	}

	query := `SELECT p.id, p.academy_id, p.student_id, p.season_id, p.amount, p.method, p.status,
			  p.paid_at, p.memo, p.created_at, p.updated_at, s.name
			  FROM payments p
			  JOIN students s ON s.id = p.student_id
			  WHERE ` + strings.Join(conds, " AND ") + `
			  ORDER BY p.paid_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{Student: &models.Student{}}
		err := rows.Scan(&p.ID, &p.AcademyID, &p.StudentID, &p.SeasonID, &p.Amount,
			&p.Method, &p.Status, &p.PaidAt, &p.Memo, &p.CreatedAt, &p.UpdatedAt,
			&p.Student.Name)
		if err != nil {
			return nil, err
		}
		p.Student.ID = p.StudentID
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func GetPaymentByID(db *sql.DB, academyID, paymentID string) (*models.Payment, error) {
	p := &models.Payment{}
	query := `SELECT id, academy_id, student_id, season_id, amount, method, status, paid_at, memo, created_at, updated_at
			  FROM payments WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`
	err := db.QueryRow(query, paymentID, academyID).Scan(
		&p.ID, &p.AcademyID, &p.StudentID, &p.SeasonID, &p.Amount,
		&p.Method, &p.Status, &p.PaidAt, &p.Memo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func CreatePayment(db *sql.DB, p *models.Payment) error {
	query := `INSERT INTO payments (academy_id, student_id, season_id, amount, method, status, paid_at, memo)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, p.AcademyID, p.StudentID, p.SeasonID, p.Amount,
		p.Method, p.Status, p.PaidAt, p.Memo).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func UpdatePayment(db *sql.DB, p *models.Payment) error {
	query := `UPDATE payments SET student_id = $1, season_id = $2, amount = $3, method = $4,
			  status = $5, paid_at = $6, memo = $7, updated_at = NOW()
			  WHERE id = $8 AND academy_id = $9 AND deleted_at IS NULL`
	res, err := db.Exec(query, p.StudentID, p.SeasonID, p.Amount, p.Method,
		p.Status, p.PaidAt, p.Memo, p.ID, p.AcademyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeletePayment(db *sql.DB, academyID, paymentID string) error {
	res, err := db.Exec(`UPDATE payments SET deleted_at = NOW()
						 WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`, paymentID, academyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetMonthlyRevenue summarizes completed payments per month over the
// trailing months window.
func GetMonthlyRevenue(db *sql.DB, academyID string, months int) ([]*models.MonthlyRevenue, error) {
	query := `SELECT to_char(paid_at, 'YYYY-MM') AS month,
			  COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0),
			  COUNT(*) FILTER (WHERE status = 'completed'),
			  COALESCE(SUM(amount) FILTER (WHERE status = 'refunded'), 0)
			  FROM payments
			  WHERE academy_id = $1 AND deleted_at IS NULL
			  AND paid_at >= date_trunc('month', CURRENT_DATE) - ($2 || ' months')::interval
			  GROUP BY month ORDER BY month DESC`

	rows, err := db.Query(query, academyID, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenue []*models.MonthlyRevenue
	for rows.Next() {
		r := &models.MonthlyRevenue{}
		if err := rows.Scan(&r.Month, &r.Total, &r.Count, &r.Refund); err != nil {
			return nil, err
		}
		revenue = append(revenue, r)
	}
	return revenue, rows.Err()
}
