package database

import (
	"database/sql"

	"github.com/seanyjeong/academy-web-sub001/app/models"

	"github.com/lib/pq"
)

func GetAllStaff(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, email, name, phone, is_active, created_at, updated_at
			  FROM users WHERE deleted_at IS NULL ORDER BY created_at`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []*models.User
	for rows.Next() {
		u := &models.User{}
		err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Phone,
			&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, err
		}
		staff = append(staff, u)
	}
	return staff, rows.Err()
}

func CreateUser(db *sql.DB, u *models.User) error {
	query := `INSERT INTO users (email, password, name, phone, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, u.Email, u.Password, u.Name, u.Phone).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func UpdateUser(db *sql.DB, u *models.User) error {
	query := `UPDATE users SET email = $1, name = $2, phone = $3, is_active = $4, updated_at = NOW()
			  WHERE id = $5 AND deleted_at IS NULL`
	res, err := db.Exec(query, u.Email, u.Name, u.Phone, u.IsActive, u.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteUser(db *sql.DB, userID string) error {
	res, err := db.Exec(`UPDATE users SET deleted_at = NOW(), is_active = false WHERE id = $1 AND deleted_at IS NULL`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetUserRoles replaces the user's role assignments.
func SetUserRoles(db *sql.DB, userID string, roleIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, roleID := range roleIDs {
		if _, err := tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, userID, roleID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SetUserAcademies replaces the user's branch grants. The first id in
// the list becomes the default branch.
func SetUserAcademies(db *sql.DB, userID string, academyIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM user_academies WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for i, academyID := range academyIDs {
		_, err := tx.Exec(`INSERT INTO user_academies (user_id, academy_id, is_default) VALUES ($1, $2, $3)`,
			userID, academyID, i == 0)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func GetAllRoles(db *sql.DB) ([]*models.Role, error) {
	rows, err := db.Query(`SELECT id, name, permissions FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name, pq.Array(&role.Permissions)); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// UpdateRolePermissions rewrites the permission keys of a role, as
// edited in the console's permission matrix.
func UpdateRolePermissions(db *sql.DB, roleID string, permissions []string) error {
	res, err := db.Exec(`UPDATE roles SET permissions = $1 WHERE id = $2`, pq.Array(permissions), roleID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
