package models

import "time"

// Media is the model for the 'media' table (uploaded image assets).
// PublicID is the external object key when an object store is configured.
type Media struct {
	ID           string    `json:"id" db:"id"`
	URL          string    `json:"url" db:"url"`
	PublicID     *string   `json:"publicId,omitempty" db:"public_id"`
	Filename     string    `json:"filename" db:"filename"`
	MimeType     string    `json:"mimeType" db:"mime_type"`
	Size         int64     `json:"size" db:"size"`
	UploadedByID *string   `json:"uploadedById,omitempty" db:"uploaded_by_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
