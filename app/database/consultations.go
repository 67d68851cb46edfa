package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

const consultationColumns = `id, academy_id, reservation_no, name, phone, student_grade,
	date, start_time, status, assigned_to, memo, created_at, updated_at`

func scanConsultation(row interface{ Scan(...interface{}) error }) (*models.Consultation, error) {
	c := &models.Consultation{}
	err := row.Scan(
		&c.ID, &c.AcademyID, &c.ReservationNo, &c.Name, &c.Phone, &c.StudentGrade,
		&c.Date, &c.StartTime, &c.Status, &c.AssignedTo, &c.Memo,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func GetConsultations(db *sql.DB, academyID, status, date string) ([]*models.Consultation, error) {
	var conds []string
	var args []interface{}

	conds = append(conds, "academy_id = $1", "deleted_at IS NULL")
	args = append(args, academyID)

	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if date != "" {
		args = append(args, date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM consultations WHERE %s ORDER BY date DESC, start_time`,
		consultationColumns, strings.Join(conds, " AND "))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consultations []*models.Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		consultations = append(consultations, c)
	}
	return consultations, rows.Err()
}

func GetConsultationByID(db *sql.DB, academyID, consultationID string) (*models.Consultation, error) {
	query := fmt.Sprintf(`SELECT %s FROM consultations WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`,
		consultationColumns)
	c, err := scanConsultation(db.QueryRow(query, consultationID, academyID))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// GetConsultationByReservationNo serves the public reservation lookup;
// it is not academy-scoped since reservation numbers carry no tenant.
func GetConsultationByReservationNo(db *sql.DB, reservationNo string) (*models.Consultation, error) {
	query := fmt.Sprintf(`SELECT %s FROM consultations WHERE reservation_no = $1 AND deleted_at IS NULL`,
		consultationColumns)
	c, err := scanConsultation(db.QueryRow(query, reservationNo))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func CreateConsultation(db *sql.DB, c *models.Consultation) error {
	query := `INSERT INTO consultations (academy_id, reservation_no, name, phone, student_grade, date, start_time, status, assigned_to, memo)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, c.AcademyID, c.ReservationNo, c.Name, c.Phone,
		c.StudentGrade, c.Date, c.StartTime, c.Status, c.AssignedTo, c.Memo).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func UpdateConsultation(db *sql.DB, c *models.Consultation) error {
	query := `UPDATE consultations SET name = $1, phone = $2, student_grade = $3, date = $4,
			  start_time = $5, status = $6, assigned_to = $7, memo = $8, updated_at = NOW()
			  WHERE id = $9 AND academy_id = $10 AND deleted_at IS NULL`
	res, err := db.Exec(query, c.Name, c.Phone, c.StudentGrade, c.Date,
		c.StartTime, c.Status, c.AssignedTo, c.Memo, c.ID, c.AcademyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteConsultation(db *sql.DB, academyID, consultationID string) error {
	res, err := db.Exec(`UPDATE consultations SET deleted_at = NOW()
						 WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`, consultationID, academyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func CountPendingConsultations(db *sql.DB, academyID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM consultations
						WHERE academy_id = $1 AND status = 'pending' AND deleted_at IS NULL`, academyID).Scan(&count)
	return count, err
}
