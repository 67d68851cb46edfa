package database

import (
	"database/sql"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

const scheduleColumns = `s.id, s.academy_id, s.title, s.day_of_week, s.time_slot, s.start_time, s.end_time,
	s.instructor_id, s.season_id, s.capacity, s.is_active, s.created_at, s.updated_at`

func GetSchedules(db *sql.DB, academyID string, dayOfWeek string) ([]*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + `
			  FROM schedules s
			  WHERE s.academy_id = $1 AND s.deleted_at IS NULL`
	args := []interface{}{academyID}
	if dayOfWeek != "" {
		query += ` AND s.day_of_week = $2`
		args = append(args, dayOfWeek)
	}
	query += ` ORDER BY s.day_of_week, s.start_time`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		s := &models.Schedule{}
		err := rows.Scan(&s.ID, &s.AcademyID, &s.Title, &s.DayOfWeek, &s.TimeSlot,
			&s.StartTime, &s.EndTime, &s.InstructorID, &s.SeasonID,
			&s.Capacity, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func GetScheduleByID(db *sql.DB, academyID, scheduleID string) (*models.Schedule, error) {
	s := &models.Schedule{}
	query := `SELECT ` + scheduleColumns + ` FROM schedules s
			  WHERE s.id = $1 AND s.academy_id = $2 AND s.deleted_at IS NULL`
	err := db.QueryRow(query, scheduleID, academyID).Scan(
		&s.ID, &s.AcademyID, &s.Title, &s.DayOfWeek, &s.TimeSlot,
		&s.StartTime, &s.EndTime, &s.InstructorID, &s.SeasonID,
		&s.Capacity, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func CreateSchedule(db *sql.DB, s *models.Schedule) error {
	query := `INSERT INTO schedules (academy_id, title, day_of_week, time_slot, start_time, end_time,
			  instructor_id, season_id, capacity, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.AcademyID, s.Title, s.DayOfWeek, s.TimeSlot,
		s.StartTime, s.EndTime, s.InstructorID, s.SeasonID, s.Capacity).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateSchedule(db *sql.DB, s *models.Schedule) error {
	query := `UPDATE schedules SET title = $1, day_of_week = $2, time_slot = $3, start_time = $4,
			  end_time = $5, instructor_id = $6, season_id = $7, capacity = $8, is_active = $9, updated_at = NOW()
			  WHERE id = $10 AND academy_id = $11 AND deleted_at IS NULL`
	res, err := db.Exec(query, s.Title, s.DayOfWeek, s.TimeSlot, s.StartTime, s.EndTime,
		s.InstructorID, s.SeasonID, s.Capacity, s.IsActive, s.ID, s.AcademyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteSchedule(db *sql.DB, academyID, scheduleID string) error {
	res, err := db.Exec(`UPDATE schedules SET deleted_at = NOW(), is_active = false
						 WHERE id = $1 AND academy_id = $2 AND deleted_at IS NULL`, scheduleID, academyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CheckScheduleConflict reports whether another active schedule of the
// same instructor overlaps the given day and time range.
func CheckScheduleConflict(db *sql.DB, academyID, instructorID, dayOfWeek, startTime, endTime, excludeID string) (bool, error) {
	if instructorID == "" {
		return false, nil
	}
	query := `SELECT COUNT(*) FROM schedules
			  WHERE academy_id = $1 AND instructor_id = $2 AND day_of_week = $3
			  AND is_active = true AND deleted_at IS NULL
			  AND (
				  (start_time <= $4 AND end_time > $4) OR
				  (start_time < $5 AND end_time >= $5) OR
				  (start_time >= $4 AND end_time <= $5)
			  )`
	args := []interface{}{academyID, instructorID, dayOfWeek, startTime, endTime}

	if excludeID != "" {
		query += " AND id != $6"
		args = append(args, excludeID)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
