package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mokshlabs/moksh-api/internal/models"
)

const settingsColumns = `id, default_whatsapp_number, whatsapp_message_template, updated_at`

func scanSettings(row interface{ Scan(...interface{}) error }) (*models.Settings, error) {
	var s models.Settings
	if err := row.Scan(&s.ID, &s.DefaultWhatsappNumber, &s.WhatsappMessageTemplate, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSettings returns the singleton row, creating it with defaults on the
// first read.
func (s *Store) GetSettings() (*models.Settings, error) {
	row := s.db.QueryRow(`SELECT ` + settingsColumns + ` FROM settings LIMIT 1`)
	settings, err := scanSettings(row)
	if err == sql.ErrNoRows {
		return s.createDefaultSettings()
	}
	return settings, err
}

func (s *Store) createDefaultSettings() (*models.Settings, error) {
	settings := &models.Settings{
		ID:                      uuid.NewString(),
		DefaultWhatsappNumber:   "",
		WhatsappMessageTemplate: models.DefaultWhatsappTemplate,
		UpdatedAt:               time.Now(),
	}
	query := `INSERT INTO settings (id, default_whatsapp_number, whatsapp_message_template, updated_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := s.db.Exec(query, settings.ID, settings.DefaultWhatsappNumber, settings.WhatsappMessageTemplate, settings.UpdatedAt); err != nil {
		return nil, err
	}
	return settings, nil
}

type UpdateSettingsParams struct {
	DefaultWhatsappNumber   *string
	WhatsappMessageTemplate *string
}

// UpdateSettings applies a partial update, creating the row first if the
// singleton does not exist yet.
func (s *Store) UpdateSettings(params UpdateSettingsParams) (*models.Settings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	set := "updated_at = $1"
	args := []interface{}{time.Now()}

	if params.DefaultWhatsappNumber != nil {
		args = append(args, *params.DefaultWhatsappNumber)
		set += fmt.Sprintf(", default_whatsapp_number = $%d", len(args))
	}
	if params.WhatsappMessageTemplate != nil {
		args = append(args, *params.WhatsappMessageTemplate)
		set += fmt.Sprintf(", whatsapp_message_template = $%d", len(args))
	}

	args = append(args, settings.ID)
	query := fmt.Sprintf("UPDATE settings SET %s WHERE id = $%d RETURNING %s", set, len(args), settingsColumns)

	return scanSettings(s.db.QueryRow(query, args...))
}
