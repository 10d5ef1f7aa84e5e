package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/mokshlabs/moksh-api/internal/models"
)

const categoryColumns = `id, name, slug, description, "order", created_at, updated_at`

func scanCategory(row interface{ Scan(...interface{}) error }) (*models.Category, error) {
	var cat models.Category
	if err := row.Scan(
		&cat.ID,
		&cat.Name,
		&cat.Slug,
		&cat.Description,
		&cat.Order,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListCategories returns every category ordered by the explicit sort key,
// name as tie-break. The category list is small; no pagination.
func (s *Store) ListCategories() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM categories ORDER BY "order" ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *cat)
	}
	return categories, rows.Err()
}

func (s *Store) GetCategory(id string) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id::text = $1`, id)
	cat, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return cat, err
}

// ResolveCategoryID accepts either a category id or a slug and returns
// the id. Returns ErrNotFound when neither matches.
func (s *Store) ResolveCategoryID(idOrSlug string) (string, error) {
	var id string
	err := s.db.QueryRow(`SELECT id FROM categories WHERE id::text = $1 OR slug = $1`, idOrSlug).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return id, err
}

// CreateCategory derives the slug from the name; slugs are never accepted
// from the caller.
func (s *Store) CreateCategory(name string, description *string, order int) (*models.Category, error) {
	now := time.Now()
	cat := &models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `INSERT INTO categories (id, name, slug, description, "order", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := s.db.Exec(query, cat.ID, cat.Name, cat.Slug, cat.Description, cat.Order, cat.CreatedAt, cat.UpdatedAt); err != nil {
		return nil, translatePQ(err)
	}
	return cat, nil
}

type UpdateCategoryParams struct {
	Name        *string
	Description *string
	Order       *int
}

// UpdateCategory applies only the provided fields. Renaming recomputes
// the slug in the same statement; the two never change independently.
func (s *Store) UpdateCategory(id string, params UpdateCategoryParams) (*models.Category, error) {
	set := "updated_at = $1"
	args := []interface{}{time.Now()}

	if params.Name != nil {
		args = append(args, *params.Name)
		set += fmt.Sprintf(", name = $%d", len(args))
		args = append(args, slug.Make(*params.Name))
		set += fmt.Sprintf(", slug = $%d", len(args))
	}
	if params.Description != nil {
		args = append(args, *params.Description)
		set += fmt.Sprintf(", description = $%d", len(args))
	}
	if params.Order != nil {
		args = append(args, *params.Order)
		set += fmt.Sprintf(`, "order" = $%d`, len(args))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE categories SET %s WHERE id::text = $%d RETURNING %s",
		set, len(args), categoryColumns)

	cat, err := scanCategory(s.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, translatePQ(err)
	}
	return cat, nil
}

// DeleteCategory refuses to delete while any product still references the
// category; the caller gets the referencing count back.
func (s *Store) DeleteCategory(id string) error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM products WHERE category_id::text = $1`, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return &CategoryInUseError{Count: count}
	}

	result, err := s.db.Exec(`DELETE FROM categories WHERE id::text = $1`, id)
	if err != nil {
		return translatePQ(err)
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

func (s *Store) CountCategories() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count)
	return count, err
}

// Slugify is the canonical name-to-slug transform.
func Slugify(name string) string {
	return slug.Make(name)
}
