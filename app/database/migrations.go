package database

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// RunMigrations applies the schema. Every statement is idempotent so
// the server can run this at every boot.
func RunMigrations(db *sql.DB) error {
	log.Info().Msg("running database migrations")

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	if err := addScoreboardPublicColumn(db); err != nil {
		return err
	}
	if err := seedDefaultRoles(db); err != nil {
		return err
	}

	log.Info().Msg("database migrations completed")
	return nil
}

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS academies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS academy_settings (
		academy_id UUID PRIMARY KEY REFERENCES academies(id),
		weekly_hours JSONB NOT NULL DEFAULT '{}',
		slot_duration_minutes INT NOT NULL DEFAULT 30,
		blocked_slots JSONB NOT NULL DEFAULT '[]',
		scoreboard_public BOOLEAN NOT NULL DEFAULT false,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS roles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL UNIQUE,
		permissions TEXT[] NOT NULL DEFAULT '{}'
	)`,

	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id UUID NOT NULL REFERENCES users(id),
		role_id UUID NOT NULL REFERENCES roles(id),
		PRIMARY KEY (user_id, role_id)
	)`,

	`CREATE TABLE IF NOT EXISTS user_academies (
		user_id UUID NOT NULL REFERENCES users(id),
		academy_id UUID NOT NULL REFERENCES academies(id),
		is_default BOOLEAN NOT NULL DEFAULT false,
		PRIMARY KEY (user_id, academy_id)
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academy_id UUID NOT NULL REFERENCES academies(id),
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		parent_phone TEXT NOT NULL DEFAULT '',
		birth_date DATE,
		gender TEXT,
		school TEXT NOT NULL DEFAULT '',
		grade_level TEXT NOT NULL DEFAULT '',
		memo TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_students_academy ON students (academy_id)`,

	`CREATE TABLE IF NOT EXISTS instructors (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academy_id UUID NOT NULL REFERENCES academies(id),
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL DEFAULT '',
		hired_at DATE,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS seasons (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academy_id UUID NOT NULL REFERENCES academies(id),
		name TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS enrollments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES students(id),
		season_id UUID NOT NULL REFERENCES seasons(id),
		enrolled_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		withdrawn_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_season ON enrollments (season_id)`,

	`CREATE TABLE IF NOT EXISTS schedules (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academy_id UUID NOT NULL REFERENCES academies(id),
		title TEXT NOT NULL,
		day_of_week TEXT NOT NULL,
		time_slot TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		instructor_id UUID REFERENCES instructors(id),
		season_id UUID REFERENCES seasons(id),
		capacity INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academy_id UUID NOT NULL REFERENCES academies(id),
		student_id UUID NOT NULL REFERENCES students(id),
		season_id UUID REFERENCES seasons(id),
		amount BIGINT NOT NULL,
		method TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'completed',
		paid_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		memo TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_academy_paid ON payments (academy_id, paid_at)`,

	`CREATE TABLE IF NOT EXISTS salaries (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		instructor_id UUID NOT NULL REFERENCES instructors(id),
		amount BIGINT NOT NULL DEFAULT 0,
		period TEXT NOT NULL DEFAULT 'month',
		has_allowance BOOLEAN NOT NULL DEFAULT false,
		allowance BIGINT NOT NULL DEFAULT 0,
		allowance_period TEXT NOT NULL DEFAULT 'month',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS consultations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academy_id UUID NOT NULL REFERENCES academies(id),
		reservation_no TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		student_grade TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		assigned_to UUID REFERENCES users(id),
		memo TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_consultations_academy_date ON consultations (academy_id, date)`,

	`CREATE TABLE IF NOT EXISTS attendances (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academy_id UUID NOT NULL REFERENCES academies(id),
		student_id UUID NOT NULL REFERENCES students(id),
		schedule_id UUID REFERENCES schedules(id),
		date DATE NOT NULL,
		status TEXT NOT NULL,
		marked_by UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (student_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS training_records (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academy_id UUID NOT NULL REFERENCES academies(id),
		student_id UUID NOT NULL REFERENCES students(id),
		date TEXT NOT NULL,
		time_slot TEXT NOT NULL,
		exercise TEXT NOT NULL,
		score DOUBLE PRECISION NOT NULL DEFAULT 0,
		memo TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS monthly_tests (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		academy_id UUID NOT NULL REFERENCES academies(id),
		title TEXT NOT NULL,
		month TEXT NOT NULL,
		is_public BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS test_scores (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		test_id UUID NOT NULL REFERENCES monthly_tests(id),
		student_id UUID NOT NULL REFERENCES students(id),
		score DOUBLE PRECISION NOT NULL DEFAULT 0,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (test_id, student_id)
	)`,
}

// seedDefaultRoles inserts the built-in roles on first boot. Existing
// rows are left alone so console edits to the permission matrix stick.
func seedDefaultRoles(db *sql.DB) error {
	defaults := []struct {
		name        string
		permissions []string
	}{
		// admin carries no explicit keys; it implies every permission.
		{"admin", []string{}},
		{"manager", []string{
			"dashboard:read",
			"students:read", "students:write",
			"instructors:read", "instructors:write",
			"schedules:read", "schedules:write",
			"seasons:read", "seasons:write",
			"attendance:read", "attendance:write",
			"payments:read", "payments:write",
			"salaries:read", "salaries:write",
			"consultations:read", "consultations:write",
			"training:read", "training:write",
			"settings:read", "settings:write",
		}},
		{"instructor", []string{
			"dashboard:read",
			"students:read",
			"schedules:read",
			"attendance:read", "attendance:write",
			"consultations:read",
			"training:read", "training:write",
		}},
	}

	for _, r := range defaults {
		_, err := db.Exec(`INSERT INTO roles (name, permissions) VALUES ($1, $2)
						   ON CONFLICT (name) DO NOTHING`, r.name, pq.Array(r.permissions))
		if err != nil {
			return err
		}
	}
	return nil
}

func addScoreboardPublicColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'academy_settings'
				AND column_name = 'scoreboard_public'
			) THEN
				ALTER TABLE academy_settings ADD COLUMN scoreboard_public BOOLEAN NOT NULL DEFAULT false;
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	return err
}
