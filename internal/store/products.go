package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mokshlabs/moksh-api/internal/rowmap"
)

// Pagination bounds shared by the listing endpoints.
const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// NormalizePageLimit floors page at 1 and clamps limit into [1, MaxLimit],
// defaulting limit to DefaultLimit when unset.
func NormalizePageLimit(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// ListProductsParams are the supported listing filters. Category takes a
// category id or slug; IsActive is tri-state (nil means no filter).
type ListProductsParams struct {
	Search   string
	Category string
	IsActive *bool
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Limit    int
}

// buildProductFilter composes the WHERE clause for a product listing.
// categoryID is the already-resolved category id ("" for no filter).
func buildProductFilter(params ListProductsParams, categoryID string) (string, []interface{}) {
	var where strings.Builder
	var args []interface{}

	where.WriteString("WHERE 1=1")

	if categoryID != "" {
		args = append(args, categoryID)
		where.WriteString(fmt.Sprintf(" AND p.category_id = $%d", len(args)))
	}
	if params.IsActive != nil {
		args = append(args, *params.IsActive)
		where.WriteString(fmt.Sprintf(" AND p.is_active = $%d", len(args)))
	}
	// A price bound excludes products with no price at all.
	if params.MinPrice != nil {
		args = append(args, params.MinPrice.String())
		where.WriteString(fmt.Sprintf(" AND p.price >= $%d", len(args)))
	}
	if params.MaxPrice != nil {
		args = append(args, params.MaxPrice.String())
		where.WriteString(fmt.Sprintf(" AND p.price <= $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		where.WriteString(fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", n, n))
	}

	return where.String(), args
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.category_id,
	       p.images, p.whatsapp_number, p.is_active, p.created_at, p.updated_at,
	       c.name, c.slug
	FROM products p
	JOIN categories c ON c.id = p.category_id
`

// scanProductRecord builds the storage-shaped record for one product row,
// with the joined category as a nested record. The rowmap layer renames
// the keys for the API.
func scanProductRecord(row interface{ Scan(...interface{}) error }) (rowmap.Record, error) {
	var (
		id, name, categoryID string
		description          sql.NullString
		price                sql.NullString
		imagesRaw            []byte
		whatsappNumber       sql.NullString
		isActive             bool
		createdAt, updatedAt time.Time
		catName, catSlug     string
	)

	if err := row.Scan(
		&id, &name, &description, &price, &categoryID,
		&imagesRaw, &whatsappNumber, &isActive, &createdAt, &updatedAt,
		&catName, &catSlug,
	); err != nil {
		return nil, err
	}

	images := []string{}
	if len(imagesRaw) > 0 {
		_ = json.Unmarshal(imagesRaw, &images)
	}

	rec := rowmap.Record{
		"id":              id,
		"name":            name,
		"description":     nil,
		"price":           nil,
		"category_id":     categoryID,
		"images":          images,
		"whatsapp_number": nil,
		"is_active":       isActive,
		"created_at":      createdAt,
		"updated_at":      updatedAt,
		"category": rowmap.Record{
			"id":   categoryID,
			"name": catName,
			"slug": catSlug,
		},
	}
	if description.Valid {
		rec["description"] = description.String
	}
	if whatsappNumber.Valid {
		rec["whatsapp_number"] = whatsappNumber.String
	}
	if price.Valid {
		if dec, err := decimal.NewFromString(price.String); err == nil {
			rec["price"] = dec.InexactFloat64()
		}
	}
	return rec, nil
}

// ListProducts returns the filtered page and the full matching count.
// An unresolvable category filter yields an empty page, not an error.
func (s *Store) ListProducts(params ListProductsParams) ([]rowmap.Record, int, error) {
	page, limit := NormalizePageLimit(params.Page, params.Limit)

	categoryID := ""
	if params.Category != "" {
		resolved, err := s.ResolveCategoryID(params.Category)
		if err == ErrNotFound {
			return []rowmap.Record{}, 0, nil
		}
		if err != nil {
			return nil, 0, err
		}
		categoryID = resolved
	}

	where, args := buildProductFilter(params, categoryID)

	var total int
	countQuery := "SELECT COUNT(*) FROM products p " + where
	if err := s.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit)
	limitArg := len(args)
	args = append(args, (page-1)*limit)
	offsetArg := len(args)
	listQuery := fmt.Sprintf("%s %s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d",
		productSelect, where, limitArg, offsetArg)

	rows, err := s.db.Query(listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []rowmap.Record{}
	for rows.Next() {
		rec, err := scanProductRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, rows.Err()
}

func (s *Store) GetProduct(id string) (rowmap.Record, error) {
	row := s.db.QueryRow(productSelect+" WHERE p.id::text = $1", id)
	rec, err := scanProductRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return rec, err
}

// LatestProduct returns the most recently created active product, or nil
// when the catalogue is empty.
func (s *Store) LatestProduct() (rowmap.Record, error) {
	row := s.db.QueryRow(productSelect + " WHERE p.is_active ORDER BY p.created_at DESC LIMIT 1")
	rec, err := scanProductRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// RecentProducts returns the newest products regardless of visibility,
// for the admin dashboard.
func (s *Store) RecentProducts(limit int) ([]rowmap.Record, error) {
	rows, err := s.db.Query(productSelect+" ORDER BY p.created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []rowmap.Record{}
	for rows.Next() {
		rec, err := scanProductRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

type CreateProductParams struct {
	Name           string
	Description    *string
	Price          *decimal.Decimal
	CategoryID     string
	Images         []string
	WhatsappNumber *string
	IsActive       bool
}

func (s *Store) CreateProduct(params CreateProductParams) (rowmap.Record, error) {
	id := uuid.NewString()
	now := time.Now()

	images := params.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}

	var price interface{}
	if params.Price != nil {
		price = params.Price.String()
	}

	query := `INSERT INTO products
		(id, name, description, price, category_id, images, whatsapp_number, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = s.db.Exec(query,
		id, params.Name, params.Description, price, params.CategoryID,
		string(imagesJSON), params.WhatsappNumber, params.IsActive, now, now,
	)
	if err != nil {
		return nil, translatePQ(err)
	}
	return s.GetProduct(id)
}

type UpdateProductParams struct {
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	CategoryID     *string
	Images         []string
	WhatsappNumber *string
	IsActive       *bool
}

func (s *Store) UpdateProduct(id string, params UpdateProductParams) (rowmap.Record, error) {
	set := "updated_at = $1"
	args := []interface{}{time.Now()}

	if params.Name != nil {
		args = append(args, *params.Name)
		set += fmt.Sprintf(", name = $%d", len(args))
	}
	if params.Description != nil {
		args = append(args, *params.Description)
		set += fmt.Sprintf(", description = $%d", len(args))
	}
	if params.Price != nil {
		args = append(args, params.Price.String())
		set += fmt.Sprintf(", price = $%d", len(args))
	}
	if params.CategoryID != nil {
		args = append(args, *params.CategoryID)
		set += fmt.Sprintf(", category_id = $%d", len(args))
	}
	if params.Images != nil {
		imagesJSON, err := json.Marshal(params.Images)
		if err != nil {
			return nil, err
		}
		args = append(args, string(imagesJSON))
		set += fmt.Sprintf(", images = $%d", len(args))
	}
	if params.WhatsappNumber != nil {
		args = append(args, *params.WhatsappNumber)
		set += fmt.Sprintf(", whatsapp_number = $%d", len(args))
	}
	if params.IsActive != nil {
		args = append(args, *params.IsActive)
		set += fmt.Sprintf(", is_active = $%d", len(args))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id::text = $%d", set, len(args))

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, translatePQ(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.GetProduct(id)
}

func (s *Store) DeleteProduct(id string) error {
	result, err := s.db.Exec(`DELETE FROM products WHERE id::text = $1`, id)
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

// ToggleProductVisibility flips is_active in a single statement, so two
// concurrent toggles cannot read the same starting value.
func (s *Store) ToggleProductVisibility(id string) (rowmap.Record, error) {
	result, err := s.db.Exec(
		`UPDATE products SET is_active = NOT is_active, updated_at = $1 WHERE id::text = $2`,
		time.Now(), id,
	)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.GetProduct(id)
}

func (s *Store) CountProducts() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}
