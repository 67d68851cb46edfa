package database

import (
	"database/sql"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

// GetDashboardStats assembles the console landing-page numbers.
// Individual failures degrade to zero values rather than failing the
// whole dashboard.
func GetDashboardStats(db *sql.DB, academyID string) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM students
						WHERE academy_id = $1 AND is_active = true AND deleted_at IS NULL`, academyID).
		Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM instructors
					   WHERE academy_id = $1 AND is_active = true AND deleted_at IS NULL`, academyID).
		Scan(&stats.TotalInstructors)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM schedules
					   WHERE academy_id = $1 AND is_active = true AND deleted_at IS NULL`, academyID).
		Scan(&stats.ActiveSchedules)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments
					   WHERE academy_id = $1 AND status = 'completed' AND deleted_at IS NULL
					   AND paid_at >= date_trunc('month', CURRENT_DATE)`, academyID).
		Scan(&stats.MonthlyRevenue)
	if err != nil {
		return nil, err
	}

	if rate, err := GetAcademyAttendanceRate(db, academyID); err == nil {
		stats.StudentAttendance = rate
	}
	if pending, err := CountPendingConsultations(db, academyID); err == nil {
		stats.PendingConsultations = pending
	}

	return stats, nil
}
