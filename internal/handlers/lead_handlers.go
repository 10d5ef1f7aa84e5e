package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mokshlabs/moksh-api/internal/store"
)

type CreateLeadInput struct {
	ProductID *string                `json:"productId"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// CreateLead records one contact-click event from the storefront.
// Public: the click happens before any authentication exists.
func (h *Handlers) CreateLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return
	}

	lead, err := h.Leads.CreateLead(input.ProductID, input.Metadata)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			respondError(c, http.StatusBadRequest, "Unknown product", "VALIDATION_ERROR")
			return
		}
		h.respondStoreError(c, err, "")
		return
	}

	respondData(c, http.StatusCreated, gin.H{"id": lead.ID})
}
