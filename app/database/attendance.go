package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

func GetAttendances(db *sql.DB, academyID, date, studentID string) ([]*models.Attendance, error) {
	var conds []string
	var args []interface{}

	conds = append(conds, "a.academy_id = $1")
	args = append(args, academyID)

	if date != "" {
		args = append(args, date)
		conds = append(conds, fmt.Sprintf("a.date = $%d", len(args)))
	}
	if studentID != "" {
		args = append(args, studentID)
		conds = append(conds, fmt.Sprintf("a.student_id = $%d", len(args)))
	}

	query := `SELECT a.id, a.academy_id, a.student_id, a.schedule_id, a.date, a.status, a.marked_by,
			  a.created_at, a.updated_at, s.name
			  FROM attendances a
			  JOIN students s ON s.id = a.student_id
			  WHERE ` + strings.Join(conds, " AND ") + `
			  ORDER BY a.date DESC, s.name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendances []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{Student: &models.Student{}}
		err := rows.Scan(&a.ID, &a.AcademyID, &a.StudentID, &a.ScheduleID, &a.Date,
			&a.Status, &a.MarkedBy, &a.CreatedAt, &a.UpdatedAt, &a.Student.Name)
		if err != nil {
			return nil, err
		}
		a.Student.ID = a.StudentID
		attendances = append(attendances, a)
	}
	return attendances, rows.Err()
}

// MarkAttendance records or replaces a student's status for a date.
func MarkAttendance(db *sql.DB, a *models.Attendance) error {
	query := `INSERT INTO attendances (academy_id, student_id, schedule_id, date, status, marked_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (student_id, date) DO UPDATE SET
				  status = EXCLUDED.status, marked_by = EXCLUDED.marked_by, updated_at = NOW()
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, a.AcademyID, a.StudentID, a.ScheduleID, a.Date, a.Status, a.MarkedBy).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetAttendanceSummary aggregates one student's attendance over a
// date range.
func GetAttendanceSummary(db *sql.DB, academyID, studentID, from, to string) (*models.AttendanceSummary, error) {
	query := `SELECT
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'absent'),
			COUNT(*) FILTER (WHERE status = 'late'),
			COUNT(*) FILTER (WHERE status = 'excused')
		FROM attendances
		WHERE academy_id = $1 AND student_id = $2 AND date >= $3 AND date <= $4`

	s := &models.AttendanceSummary{StudentID: studentID}
	err := db.QueryRow(query, academyID, studentID, from, to).
		Scan(&s.Present, &s.Absent, &s.Late, &s.Excused)
	if err != nil {
		return nil, err
	}
	s.ComputeRate()
	return s, nil
}

// GetAcademyAttendanceRate computes the academy-wide attendance rate
// for the trailing 30 days, for the dashboard.
func GetAcademyAttendanceRate(db *sql.DB, academyID string) (float64, error) {
	query := `SELECT
			COUNT(*) FILTER (WHERE status IN ('present', 'late')),
			COUNT(*) FILTER (WHERE status != 'excused')
		FROM attendances
		WHERE academy_id = $1 AND date >= CURRENT_DATE - 30`

	var attended, total int
	if err := db.QueryRow(query, academyID).Scan(&attended, &total); err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return float64(attended) / float64(total) * 100, nil
}
