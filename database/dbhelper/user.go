package dbhelper

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/savoria/savoria/database"
	"github.com/savoria/savoria/models"
)

func CreateUser(tx *sqlx.Tx, name, email, hashedPassword string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(`INSERT INTO users (name, email, password, created_by) VALUES ($1, $2, $3, $4) RETURNING id`,
		name, email, hashedPassword, uuid.Nil).Scan(&id)
	return id, err
}

func IsUserExists(email string) (bool, error) {
	var count int
	err := database.Savoria.Get(&count, `SELECT COUNT(*) FROM users WHERE LOWER(email) = LOWER($1) AND archived_at IS NULL`, email)
	return count > 0, err
}

func AssignRole(tx *sqlx.Tx, userID uuid.UUID, role models.Role) error {
	_, err := tx.Exec(`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`, userID, role)
	return err
}

func GetUserByPassword(email, password string) (uuid.UUID, string, error) {
	var row struct {
		ID       uuid.UUID `db:"id"`
		Name     string    `db:"name"`
		Password string    `db:"password"`
	}
	err := database.Savoria.Get(&row, `
		SELECT id, name, password FROM users
		WHERE LOWER(email) = LOWER($1) AND archived_at IS NULL`, email)
	if err != nil {
		return uuid.Nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(row.Password), []byte(password)) != nil {
		return uuid.Nil, "", sql.ErrNoRows
	}
	return row.ID, row.Name, nil
}

func GetUserRolesByUserID(userID uuid.UUID) ([]string, error) {
	var roles []string
	err := database.Savoria.Select(&roles, `
		SELECT role FROM user_roles
		WHERE user_id = $1 AND archived_at IS NULL`, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch roles: %w", err)
	}
	return roles, nil
}
