package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mokshlabs/moksh-api/internal/store"
)

type CreateCategoryInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Order       *int    `json:"order" binding:"omitempty,gte=0"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Order       *int    `json:"order" binding:"omitempty,gte=0"`
}

// ListCategories is public; the storefront renders the nav from it.
func (h *Handlers) ListCategories(c *gin.Context) {
	categories, err := h.Categories.ListCategories()
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, categories)
}

func (h *Handlers) GetCategory(c *gin.Context) {
	category, err := h.Categories.GetCategory(c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err, "Category not found")
		return
	}
	respondData(c, http.StatusOK, category)
}

func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	}

	category, err := h.Categories.CreateCategory(input.Name, input.Description, order)
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	respondData(c, http.StatusCreated, category)
}

func (h *Handlers) UpdateCategory(c *gin.Context) {
	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return
	}

	category, err := h.Categories.UpdateCategory(c.Param("id"), store.UpdateCategoryParams{
		Name:        input.Name,
		Description: input.Description,
		Order:       input.Order,
	})
	if err != nil {
		h.respondStoreError(c, err, "Category not found")
		return
	}
	respondData(c, http.StatusOK, category)
}

func (h *Handlers) DeleteCategory(c *gin.Context) {
	if err := h.Categories.DeleteCategory(c.Param("id")); err != nil {
		h.respondStoreError(c, err, "Category not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
