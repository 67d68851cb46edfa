package database

import (
	"database/sql"
	"encoding/json"

	"github.com/seanyjeong/academy-web-sub001/app/models"
)

func GetAcademyByID(db *sql.DB, academyID string) (*models.Academy, error) {
	a := &models.Academy{}
	query := `SELECT id, name, slug, phone, address, is_active, created_at, updated_at
			  FROM academies WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, academyID).Scan(
		&a.ID, &a.Name, &a.Slug, &a.Phone, &a.Address,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// GetAcademyBySlug resolves the public slug used by the booking form
// and scoreboard. Inactive academies are invisible publicly.
func GetAcademyBySlug(db *sql.DB, slug string) (*models.Academy, error) {
	a := &models.Academy{}
	query := `SELECT id, name, slug, phone, address, is_active, created_at, updated_at
			  FROM academies WHERE slug = $1 AND is_active = true AND deleted_at IS NULL`
	err := db.QueryRow(query, slug).Scan(
		&a.ID, &a.Name, &a.Slug, &a.Phone, &a.Address,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func UpdateAcademy(db *sql.DB, a *models.Academy) error {
	query := `UPDATE academies SET name = $1, slug = $2, phone = $3, address = $4, updated_at = NOW()
			  WHERE id = $5 AND deleted_at IS NULL`
	res, err := db.Exec(query, a.Name, a.Slug, a.Phone, a.Address, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAcademySettings loads the booking configuration. Weekly hours and
// blocked slots are stored as jsonb columns; an academy with no
// settings row yet gets permissive defaults.
func GetAcademySettings(db *sql.DB, academyID string) (*models.AcademySettings, error) {
	s := &models.AcademySettings{AcademyID: academyID}
	var hoursJSON, blockedJSON []byte

	query := `SELECT weekly_hours, slot_duration_minutes, blocked_slots, scoreboard_public, updated_at
			  FROM academy_settings WHERE academy_id = $1`
	err := db.QueryRow(query, academyID).Scan(
		&hoursJSON, &s.SlotDurationMinutes, &blockedJSON, &s.ScoreboardPublic, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		s.WeeklyHours = map[string][]string{}
		s.SlotDurationMinutes = 30
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(hoursJSON, &s.WeeklyHours); err != nil {
		s.WeeklyHours = map[string][]string{}
	}
	if err := json.Unmarshal(blockedJSON, &s.BlockedSlots); err != nil {
		s.BlockedSlots = nil
	}
	return s, nil
}

func SaveAcademySettings(db *sql.DB, s *models.AcademySettings) error {
	hoursJSON, err := json.Marshal(s.WeeklyHours)
	if err != nil {
		return err
	}
	blockedJSON, err := json.Marshal(s.BlockedSlots)
	if err != nil {
		return err
	}

	query := `INSERT INTO academy_settings (academy_id, weekly_hours, slot_duration_minutes, blocked_slots, scoreboard_public, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  ON CONFLICT (academy_id) DO UPDATE SET
				  weekly_hours = EXCLUDED.weekly_hours,
				  slot_duration_minutes = EXCLUDED.slot_duration_minutes,
				  blocked_slots = EXCLUDED.blocked_slots,
				  scoreboard_public = EXCLUDED.scoreboard_public,
				  updated_at = NOW()`
	_, err = db.Exec(query, s.AcademyID, hoursJSON, s.SlotDurationMinutes, blockedJSON, s.ScoreboardPublic)
	return err
}

// BlockedDates extracts just the date strings, the only field the
// availability check consults.
func BlockedDates(slots []models.BlockedSlot) []string {
	dates := make([]string, 0, len(slots))
	for _, b := range slots {
		dates = append(dates, b.Date)
	}
	return dates
}
