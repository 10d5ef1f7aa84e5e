package models

import "time"

// Lead records a single "contact the seller" click. Append-only:
// leads are never updated or deleted.
type Lead struct {
	ID        string                 `json:"id" db:"id"`
	ProductID *string                `json:"productId,omitempty" db:"product_id"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
	ClickedAt time.Time              `json:"clickedAt" db:"clicked_at"`
}
