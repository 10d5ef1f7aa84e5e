package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mokshlabs/moksh-api/internal/models"
)

const mediaColumns = `id, url, public_id, filename, mime_type, size, uploaded_by_id, created_at`

func scanMedia(row interface{ Scan(...interface{}) error }) (*models.Media, error) {
	var m models.Media
	if err := row.Scan(
		&m.ID,
		&m.URL,
		&m.PublicID,
		&m.Filename,
		&m.MimeType,
		&m.Size,
		&m.UploadedByID,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMedia returns a page of assets, newest first, plus the full count.
func (s *Store) ListMedia(page, limit int) ([]models.Media, int, error) {
	page, limit = NormalizePageLimit(page, limit)

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM media`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(
		`SELECT `+mediaColumns+` FROM media ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, (page-1)*limit,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []models.Media{}
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *m)
	}
	return items, total, rows.Err()
}

func (s *Store) GetMedia(id string) (*models.Media, error) {
	row := s.db.QueryRow(`SELECT `+mediaColumns+` FROM media WHERE id::text = $1`, id)
	m, err := scanMedia(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return m, err
}

type CreateMediaParams struct {
	URL          string
	PublicID     *string
	Filename     string
	MimeType     string
	Size         int64
	UploadedByID string
}

func (s *Store) CreateMedia(params CreateMediaParams) (*models.Media, error) {
	m := &models.Media{
		ID:           uuid.NewString(),
		URL:          params.URL,
		PublicID:     params.PublicID,
		Filename:     params.Filename,
		MimeType:     params.MimeType,
		Size:         params.Size,
		UploadedByID: &params.UploadedByID,
		CreatedAt:    time.Now(),
	}

	query := `INSERT INTO media (id, url, public_id, filename, mime_type, size, uploaded_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.Exec(query, m.ID, m.URL, m.PublicID, m.Filename, m.MimeType, m.Size, m.UploadedByID, m.CreatedAt)
	if err != nil {
		return nil, translatePQ(err)
	}
	return m, nil
}

func (s *Store) DeleteMedia(id string) error {
	result, err := s.db.Exec(`DELETE FROM media WHERE id::text = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
