package models

import "time"

// DefaultWhatsappTemplate is used when the settings row is created lazily.
// {productName} is substituted by the storefront before opening WhatsApp.
const DefaultWhatsappTemplate = "Hi, I'm interested in {productName}"

// Settings is a singleton row: the first read creates it if missing.
type Settings struct {
	ID                      string    `json:"id" db:"id"`
	DefaultWhatsappNumber   string    `json:"defaultWhatsappNumber" db:"default_whatsapp_number"`
	WhatsappMessageTemplate string    `json:"whatsappMessageTemplate" db:"whatsapp_message_template"`
	UpdatedAt               time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicSettings is the unauthenticated view of Settings.
type PublicSettings struct {
	DefaultWhatsappNumber   string `json:"defaultWhatsappNumber"`
	WhatsappMessageTemplate string `json:"whatsappMessageTemplate"`
}
