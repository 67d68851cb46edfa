package database

import (
	"database/sql"

	"github.com/seanyjeong/academy-web-sub001/app/models"

	"github.com/lib/pq"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, phone, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true AND deleted_at IS NULL`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name,
		&user.Phone, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, phone, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true AND deleted_at IS NULL`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name,
		&user.Phone, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name, r.permissions
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
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

// GetUserAcademies returns the branches the user may act on, default
// branch first.
func GetUserAcademies(db *sql.DB, userID string) ([]*models.Academy, error) {
	query := `
		SELECT a.id, a.name, a.slug, a.phone, a.address, a.is_active, a.created_at, a.updated_at
		FROM academies a
		JOIN user_academies ua ON a.id = ua.academy_id
		WHERE ua.user_id = $1 AND a.deleted_at IS NULL
		ORDER BY ua.is_default DESC, a.created_at
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var academies []*models.Academy
	for rows.Next() {
		a := &models.Academy{}
		err := rows.Scan(&a.ID, &a.Name, &a.Slug, &a.Phone, &a.Address,
			&a.IsActive, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		academies = append(academies, a)
	}
	return academies, rows.Err()
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, userID)
	return err
}

// LoadUserContext fetches the user with roles and academy grants, as
// needed by the auth middleware on every request.
func LoadUserContext(db *sql.DB, userID string) (*models.User, error) {
	user, err := GetUserByID(db, userID)
	if err != nil {
		return nil, err
	}
	if user.Roles, err = GetUserRoles(db, userID); err != nil {
		return nil, err
	}
	if user.Academies, err = GetUserAcademies(db, userID); err != nil {
		return nil, err
	}
	return user, nil
}
