package database

import (
	"database/sql"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

func GetInstructors(db *sql.DB, academyID string) ([]*models.Instructor, error) {
	query := `SELECT id, academy_id, name, phone, email, subject, hired_at, is_active, created_at, updated_at
			  FROM instructors WHERE academy_id = $1 AND deleted_at IS NULL ORDER BY name`

	rows, err := db.Query(query, academyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		i := &models.Instructor{}
		err := rows.Scan(&i.ID, &i.AcademyID, &i.Name, &i.Phone, &i.Email,
			&i.Subject, &i.HiredAt, &i.IsActive, &i.CreatedAt, &i.UpdatedAt)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, i)
	}
	return instructors, rows.Err()
}

func GetInstructorByID(db *sql.DB, academyID, instructorID string) (*models.Instructor, error) {
	i := &models.Instructor{}
	query := `SELECT id, academy_id, name, phone, email, subject, hired_at, is_active, created_at, updated_at
			  FROM instructors WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`

	err := db.QueryRow(query, instructorID, academyID).Scan(
		&i.ID, &i.AcademyID, &i.Name, &i.Phone, &i.Email,
		&i.Subject, &i.HiredAt, &i.IsActive, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return i, nil
}

func CreateInstructor(db *sql.DB, i *models.Instructor) error {
	query := `INSERT INTO instructors (academy_id, name, phone, email, subject, hired_at, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, i.AcademyID, i.Name, i.Phone, i.Email, i.Subject, i.HiredAt).
		Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

func UpdateInstructor(db *sql.DB, i *models.Instructor) error {
	query := `UPDATE instructors SET name = $1, phone = $2, email = $3, subject = $4,
			  hired_at = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7 AND academy_id = $8 AND deleted_at IS NULL`
	res, err := db.Exec(query, i.Name, i.Phone, i.Email, i.Subject, i.HiredAt, i.IsActive, i.ID, i.AcademyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteInstructor(db *sql.DB, academyID, instructorID string) error {
	res, err := db.Exec(`UPDATE instructors SET deleted_at = NOW(), is_active = false
						 WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`, instructorID, academyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
