package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

const studentColumns = `id, academy_id, name, phone, parent_phone, birth_date, gender,
	school, grade_level, memo, is_active, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.AcademyID, &s.Name, &s.Phone, &s.ParentPhone, &s.BirthDate,
		&s.Gender, &s.School, &s.GradeLevel, &s.Memo, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetStudents(db *sql.DB, academyID string, filters models.StudentFilters) ([]*models.Student, int, error) {
	var conds []string
	var args []interface{}

	conds = append(conds, "academy_id = $1", "deleted_at IS NULL")
	args = append(args, academyID)

	if filters.Search != "" {
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		conds = append(conds, fmt.Sprintf("(LOWER(name) LIKE $%d OR phone LIKE $%d)", len(args), len(args)))
	}
	if filters.Status == "active" {
		conds = append(conds, "is_active = true")
	} else if filters.Status == "inactive" {
		conds = append(conds, "is_active = false")
	}
	if filters.Gender != "" {
		args = append(args, filters.Gender)
		conds = append(conds, fmt.Sprintf("gender = $%d", len(args)))
	}
	if filters.SeasonID != "" {
		args = append(args, filters.SeasonID)
		conds = append(conds, fmt.Sprintf(
			"id IN (SELECT student_id FROM enrollments WHERE season_id = $%d AND withdrawn_at IS NULL)", len(args)))
	}

	where := strings.Join(conds, " AND ")

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM students WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	switch filters.SortBy {
	case "name", "school", "grade_level", "created_at":
		sortBy = filters.SortBy
	}
	order := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		order = "DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM students WHERE %s ORDER BY %s %s", studentColumns, where, sortBy, order)
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

func GetStudentByID(db *sql.DB, academyID, studentID string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`, studentColumns)
	s, err := scanStudent(db.QueryRow(query, studentID, academyID))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (academy_id, name, phone, parent_phone, birth_date, gender, school, grade_level, memo, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.AcademyID, s.Name, s.Phone, s.ParentPhone,
		s.BirthDate, s.Gender, s.School, s.GradeLevel, s.Memo).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET name = $1, phone = $2, parent_phone = $3, birth_date = $4,
			  gender = $5, school = $6, grade_level = $7, memo = $8, is_active = $9, updated_at = NOW()
			  WHERE id = $10 AND academy_id = $11 AND deleted_at IS NULL`
	res, err := db.Exec(query, s.Name, s.Phone, s.ParentPhone, s.BirthDate,
		s.Gender, s.School, s.GradeLevel, s.Memo, s.IsActive, s.ID, s.AcademyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteStudent(db *sql.DB, academyID, studentID string) error {
	res, err := db.Exec(`UPDATE students SET deleted_at = NOW(), is_active = false
						 WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`, studentID, academyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetStudentStats returns the counters shown above the student table.
func GetStudentStats(db *sql.DB, academyID string) (map[string]int, error) {
	query := `SELECT
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE NOT is_active),
			COUNT(*)
		FROM students WHERE academy_id = $1 AND deleted_at IS NULL`

	var active, inactive, total int
	if err := db.QueryRow(query, academyID).Scan(&active, &inactive, &total); err != nil {
		return nil, err
	}
	return map[string]int{"active": active, "inactive": inactive, "total": total}, nil
}
