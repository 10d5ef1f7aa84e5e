package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mokshlabs/moksh-api/internal/models"
)

// CreateLead appends one contact-click event. Leads are never updated or
// deleted. A productId pointing at a missing product surfaces as
// ErrInvalidReference via the foreign key.
func (s *Store) CreateLead(productID *string, metadata map[string]interface{}) (*models.Lead, error) {
	lead := &models.Lead{
		ID:        uuid.NewString(),
		ProductID: productID,
		Metadata:  metadata,
		ClickedAt: time.Now(),
	}

	var metadataJSON interface{}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, err
		}
		metadataJSON = string(raw)
	}

	query := `INSERT INTO leads (id, product_id, metadata, clicked_at) VALUES ($1, $2, $3, $4)`
	if _, err := s.db.Exec(query, lead.ID, lead.ProductID, metadataJSON, lead.ClickedAt); err != nil {
		return nil, translatePQ(err)
	}
	return lead, nil
}

func (s *Store) CountLeads() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, err
}

// RecentLead is a dashboard row: the click plus the product name when the
// lead was recorded against a product that still exists.
type RecentLead struct {
	ID          string    `json:"id"`
	ProductID   *string   `json:"productId,omitempty"`
	ProductName *string   `json:"productName,omitempty"`
	ClickedAt   time.Time `json:"clickedAt"`
}

func (s *Store) RecentLeads(limit int) ([]RecentLead, error) {
	rows, err := s.db.Query(`
		SELECT l.id, l.product_id, p.name, l.clicked_at
		FROM leads l
		LEFT JOIN products p ON p.id = l.product_id
		ORDER BY l.clicked_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []RecentLead{}
	for rows.Next() {
		var lead RecentLead
		if err := rows.Scan(&lead.ID, &lead.ProductID, &lead.ProductName, &lead.ClickedAt); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
