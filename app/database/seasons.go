package database

import (
	"database/sql"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

func GetSeasons(db *sql.DB, academyID string) ([]*models.Season, error) {
	query := `SELECT id, academy_id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM seasons WHERE academy_id = $1 AND deleted_at IS NULL ORDER BY start_date DESC`

	rows, err := db.Query(query, academyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []*models.Season
	for rows.Next() {
		s := &models.Season{}
		err := rows.Scan(&s.ID, &s.AcademyID, &s.Name, &s.StartDate, &s.EndDate,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, s)
	}
	return seasons, rows.Err()
}

func GetSeasonByID(db *sql.DB, academyID, seasonID string) (*models.Season, error) {
	s := &models.Season{}
	query := `SELECT id, academy_id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM seasons WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`
	err := db.QueryRow(query, seasonID, academyID).Scan(
		&s.ID, &s.AcademyID, &s.Name, &s.StartDate, &s.EndDate,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// GetActiveSeason returns the season covering today, preferring the
// most recently started.
func GetActiveSeason(db *sql.DB, academyID string) (*models.Season, error) {
	s := &models.Season{}
	query := `SELECT id, academy_id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM seasons
			  WHERE academy_id = $1 AND deleted_at IS NULL AND is_active = true
			  AND start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE
			  ORDER BY start_date DESC LIMIT 1`
	err := db.QueryRow(query, academyID).Scan(
		&s.ID, &s.AcademyID, &s.Name, &s.StartDate, &s.EndDate,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func CreateSeason(db *sql.DB, s *models.Season) error {
	query := `INSERT INTO seasons (academy_id, name, start_date, end_date, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.AcademyID, s.Name, s.StartDate, s.EndDate).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateSeason(db *sql.DB, s *models.Season) error {
	query := `UPDATE seasons SET name = $1, start_date = $2, end_date = $3, is_active = $4, updated_at = NOW()
			  WHERE id = $5 AND academy_id = $6 AND deleted_at IS NULL`
	res, err := db.Exec(query, s.Name, s.StartDate, s.EndDate, s.IsActive, s.ID, s.AcademyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteSeason(db *sql.DB, academyID, seasonID string) error {
	res, err := db.Exec(`UPDATE seasons SET deleted_at = NOW(), is_active = false
						 WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`, seasonID, academyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// EnrollStudent registers a student into a season. Re-enrolling after
// a withdrawal creates a fresh record.
func EnrollStudent(db *sql.DB, e *models.Enrollment) error {
	query := `INSERT INTO enrollments (student_id, season_id, enrolled_at)
			  VALUES ($1, $2, NOW())
			  RETURNING id, enrolled_at`
	return db.QueryRow(query, e.StudentID, e.SeasonID).Scan(&e.ID, &e.EnrolledAt)
}

func WithdrawStudent(db *sql.DB, seasonID, studentID string) error {
	res, err := db.Exec(`UPDATE enrollments SET withdrawn_at = NOW()
						 WHERE season_id = $1 AND student_id = $2 AND withdrawn_at IS NULL`,
		seasonID, studentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func GetSeasonEnrollments(db *sql.DB, seasonID string) ([]*models.Enrollment, error) {
	query := `SELECT e.id, e.student_id, e.season_id, e.enrolled_at, e.withdrawn_at, s.name
			  FROM enrollments e
			  JOIN students s ON s.id = e.student_id
			  WHERE e.season_id = $1
			  ORDER BY e.enrolled_at`

	rows, err := db.Query(query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e := &models.Enrollment{Student: &models.Student{}}
		err := rows.Scan(&e.ID, &e.StudentID, &e.SeasonID, &e.EnrolledAt, &e.WithdrawnAt, &e.Student.Name)
		if err != nil {
			return nil, err
		}
		e.Student.ID = e.StudentID
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
