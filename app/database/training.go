package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

func GetTrainingRecords(db *sql.DB, academyID, studentID, date string) ([]*models.TrainingRecord, error) {
	var conds []string
	var args []interface{}

	conds = append(conds, "t.academy_id = $1")
	args = append(args, academyID)

	if studentID != "" {
		args = append(args, studentID)
		conds = append(conds, fmt.Sprintf("t.student_id = $%d", len(args)))
	}
	if date != "" {
		args = append(args, date)
		conds = append(conds, fmt.Sprintf("t.date = $%d", len(args)))
	}

	query := `SELECT t.id, t.academy_id, t.student_id, t.date, t.time_slot, t.exercise, t.score, t.memo,
			  t.created_at, t.updated_at, s.name
			  FROM training_records t
			  JOIN students s ON s.id = t.student_id
			  WHERE ` + strings.Join(conds, " AND ") + `
			  ORDER BY t.date DESC, t.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.TrainingRecord
	for rows.Next() {
		r := &models.TrainingRecord{Student: &models.Student{}}
		err := rows.Scan(&r.ID, &r.AcademyID, &r.StudentID, &r.Date, &r.TimeSlot,
			&r.Exercise, &r.Score, &r.Memo, &r.CreatedAt, &r.UpdatedAt, &r.Student.Name)
		if err != nil {
			return nil, err
		}
		r.Student.ID = r.StudentID
		records = append(records, r)
	}
	return records, rows.Err()
}

func CreateTrainingRecord(db *sql.DB, r *models.TrainingRecord) error {
	query := `INSERT INTO training_records (academy_id, student_id, date, time_slot, exercise, score, memo)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, r.AcademyID, r.StudentID, r.Date, r.TimeSlot,
		r.Exercise, r.Score, r.Memo).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func UpdateTrainingRecord(db *sql.DB, r *models.TrainingRecord) error {
	query := `UPDATE training_records SET date = $1, time_slot = $2, exercise = $3, score = $4, memo = $5, updated_at = NOW()
			  WHERE id = $6 AND academy_id = $7`
	res, err := db.Exec(query, r.Date, r.TimeSlot, r.Exercise, r.Score, r.Memo, r.ID, r.AcademyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTrainingRecord(db *sql.DB, academyID, recordID string) error {
	res, err := db.Exec(`DELETE FROM training_records WHERE id = $1 AND academy_id = $2`, recordID, academyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func GetMonthlyTests(db *sql.DB, academyID string) ([]*models.MonthlyTest, error) {
	query := `SELECT id, academy_id, title, month, is_public, created_at, updated_at
			  FROM monthly_tests WHERE academy_id = $1 AND deleted_at IS NULL ORDER BY month DESC`

	rows, err := db.Query(query, academyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []*models.MonthlyTest
	for rows.Next() {
		t := &models.MonthlyTest{}
		err := rows.Scan(&t.ID, &t.AcademyID, &t.Title, &t.Month, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

// GetPublicMonthlyTests lists the tests an academy has opted into
// showing on its public scoreboard page.
func GetPublicMonthlyTests(db *sql.DB, academyID string) ([]*models.MonthlyTest, error) {
	query := `SELECT id, academy_id, title, month, is_public, created_at, updated_at
			  FROM monthly_tests
			  WHERE academy_id = $1 AND is_public = true AND deleted_at IS NULL
			  ORDER BY month DESC`

	rows, err := db.Query(query, academyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []*models.MonthlyTest
	for rows.Next() {
		t := &models.MonthlyTest{}
		err := rows.Scan(&t.ID, &t.AcademyID, &t.Title, &t.Month, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

func GetMonthlyTestByID(db *sql.DB, academyID, testID string) (*models.MonthlyTest, error) {
	t := &models.MonthlyTest{}
	query := `SELECT id, academy_id, title, month, is_public, created_at, updated_at
			  FROM monthly_tests WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`
	err := db.QueryRow(query, testID, academyID).Scan(
		&t.ID, &t.AcademyID, &t.Title, &t.Month, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func CreateMonthlyTest(db *sql.DB, t *models.MonthlyTest) error {
	query := `INSERT INTO monthly_tests (academy_id, title, month, is_public)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, t.AcademyID, t.Title, t.Month, t.IsPublic).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func UpdateMonthlyTest(db *sql.DB, t *models.MonthlyTest) error {
	query := `UPDATE monthly_tests SET title = $1, month = $2, is_public = $3, updated_at = NOW()
			  WHERE id = $4 AND academy_id = $5 AND deleted_at IS NULL`
	res, err := db.Exec(query, t.Title, t.Month, t.IsPublic, t.ID, t.AcademyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertTestScore records or replaces a student's score on a test.
func UpsertTestScore(db *sql.DB, s *models.TestScore) error {
	query := `INSERT INTO test_scores (test_id, student_id, score, recorded_at)
			  VALUES ($1, $2, $3, NOW())
			  ON CONFLICT (test_id, student_id) DO UPDATE SET score = EXCLUDED.score, recorded_at = NOW()
			  RETURNING id, recorded_at`
	return db.QueryRow(query, s.TestID, s.StudentID, s.Score).Scan(&s.ID, &s.RecordedAt)
}

// GetTestScores returns all scores for a test, highest first.
func GetTestScores(db *sql.DB, testID string) ([]*models.TestScore, error) {
	query := `SELECT ts.id, ts.test_id, ts.student_id, ts.score, ts.recorded_at, s.name
			  FROM test_scores ts
			  JOIN students s ON s.id = ts.student_id
			  WHERE ts.test_id = $1
			  ORDER BY ts.score DESC, s.name`

	rows, err := db.Query(query, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []*models.TestScore
	for rows.Next() {
		s := &models.TestScore{}
		err := rows.Scan(&s.ID, &s.TestID, &s.StudentID, &s.Score, &s.RecordedAt, &s.StudentName)
		if err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
