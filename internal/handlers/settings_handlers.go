package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mokshlabs/moksh-api/internal/models"
	"github.com/mokshlabs/moksh-api/internal/store"
)

type UpdateSettingsInput struct {
	DefaultWhatsappNumber   *string `json:"defaultWhatsappNumber"`
	WhatsappMessageTemplate *string `json:"whatsappMessageTemplate"`
}

// GetPublicSettings exposes only what the storefront needs to build
// WhatsApp links. The settings row is created lazily on first read.
func (h *Handlers) GetPublicSettings(c *gin.Context) {
	settings, err := h.Settings.GetSettings()
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, models.PublicSettings{
		DefaultWhatsappNumber:   settings.DefaultWhatsappNumber,
		WhatsappMessageTemplate: settings.WhatsappMessageTemplate,
	})
}

func (h *Handlers) GetSettings(c *gin.Context) {
	settings, err := h.Settings.GetSettings()
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, settings)
}

func (h *Handlers) UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return
	}

	settings, err := h.Settings.UpdateSettings(store.UpdateSettingsParams{
		DefaultWhatsappNumber:   input.DefaultWhatsappNumber,
		WhatsappMessageTemplate: input.WhatsappMessageTemplate,
	})
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, settings)
}
