package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mokshlabs/moksh-api/internal/models"
)

const adminColumns = `id, email, password_hash, name, created_at, updated_at`

func scanAdmin(row interface{ Scan(...interface{}) error }) (*models.Admin, error) {
	var a models.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) GetAdminByEmail(email string) (*models.Admin, error) {
	row := s.db.QueryRow(`SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
	admin, err := scanAdmin(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return admin, err
}

func (s *Store) GetAdminByID(id string) (*models.Admin, error) {
	row := s.db.QueryRow(`SELECT `+adminColumns+` FROM admins WHERE id::text = $1`, id)
	admin, err := scanAdmin(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return admin, err
}

// CreateAdmin inserts a new admin. A duplicate email comes back as
// ErrEmailTaken via the unique constraint.
func (s *Store) CreateAdmin(email, passwordHash, name string) (*models.Admin, error) {
	now := time.Now()
	admin := &models.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `INSERT INTO admins (id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := s.db.Exec(query, admin.ID, admin.Email, admin.PasswordHash, admin.Name, admin.CreatedAt, admin.UpdatedAt); err != nil {
		return nil, translatePQ(err)
	}
	return admin, nil
}
