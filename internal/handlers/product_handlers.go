package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mokshlabs/moksh-api/internal/rowmap"
	"github.com/mokshlabs/moksh-api/internal/store"
)

type CreateProductInput struct {
	Name           string   `json:"name" binding:"required"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	CategoryID     string   `json:"categoryId" binding:"required"`
	Images         []string `json:"images"`
	WhatsappNumber *string  `json:"whatsappNumber"`
	IsActive       *bool    `json:"isActive"`
}

type UpdateProductInput struct {
	Name           *string  `json:"name" binding:"omitempty,min=1"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	CategoryID     *string  `json:"categoryId" binding:"omitempty,min=1"`
	Images         []string `json:"images"`
	WhatsappNumber *string  `json:"whatsappNumber"`
	IsActive       *bool    `json:"isActive"`
}

// parseListProductsParams converts the raw query string into listing
// params. Unparseable numeric filters are ignored, not rejected.
func parseListProductsParams(c *gin.Context) store.ListProductsParams {
	params := store.ListProductsParams{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: c.Query("category"),
	}

	if v := c.Query("isActive"); v == "true" || v == "false" {
		active := v == "true"
		params.IsActive = &active
	}
	if v := c.Query("minPrice"); v != "" {
		if dec, err := decimal.NewFromString(v); err == nil {
			params.MinPrice = &dec
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if dec, err := decimal.NewFromString(v); err == nil {
			params.MaxPrice = &dec
		}
	}
	params.Page, _ = strconv.Atoi(c.Query("page"))
	params.Limit, _ = strconv.Atoi(c.Query("limit"))

	return params
}

// ListProducts is the public catalogue listing: filterable by search,
// category (id or slug), visibility and price range, paginated.
func (h *Handlers) ListProducts(c *gin.Context) {
	params := parseListProductsParams(c)

	items, total, err := h.Products.ListProducts(params)
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}

	page, limit := store.NormalizePageLimit(params.Page, params.Limit)
	respondData(c, http.StatusOK, gin.H{
		"items": rowmap.SliceToCamel(items),
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// LatestProduct serves the storefront hero section: the most recently
// created active product, or null for an empty catalogue.
func (h *Handlers) LatestProduct(c *gin.Context) {
	item, err := h.Products.LatestProduct()
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	if item == nil {
		respondData(c, http.StatusOK, nil)
		return
	}
	respondData(c, http.StatusOK, rowmap.ToCamel(item))
}

func (h *Handlers) GetProduct(c *gin.Context) {
	item, err := h.Products.GetProduct(c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err, "Product not found")
		return
	}
	respondData(c, http.StatusOK, rowmap.ToCamel(item))
}

func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return
	}

	// The category must exist before the insert is attempted.
	if _, err := h.Categories.GetCategory(input.CategoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusBadRequest, "Category does not exist", "VALIDATION_ERROR")
			return
		}
		h.respondStoreError(c, err, "")
		return
	}

	params := store.CreateProductParams{
		Name:           input.Name,
		Description:    input.Description,
		CategoryID:     input.CategoryID,
		Images:         input.Images,
		WhatsappNumber: input.WhatsappNumber,
		IsActive:       input.IsActive == nil || *input.IsActive,
	}
	if input.Price != nil {
		dec := decimal.NewFromFloat(*input.Price)
		params.Price = &dec
	}

	item, err := h.Products.CreateProduct(params)
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	respondData(c, http.StatusCreated, rowmap.ToCamel(item))
}

func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return
	}

	if input.CategoryID != nil {
		if _, err := h.Categories.GetCategory(*input.CategoryID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(c, http.StatusBadRequest, "Category does not exist", "VALIDATION_ERROR")
				return
			}
			h.respondStoreError(c, err, "")
			return
		}
	}

	params := store.UpdateProductParams{
		Name:           input.Name,
		Description:    input.Description,
		CategoryID:     input.CategoryID,
		Images:         input.Images,
		WhatsappNumber: input.WhatsappNumber,
		IsActive:       input.IsActive,
	}
	if input.Price != nil {
		dec := decimal.NewFromFloat(*input.Price)
		params.Price = &dec
	}

	item, err := h.Products.UpdateProduct(c.Param("id"), params)
	if err != nil {
		h.respondStoreError(c, err, "Product not found")
		return
	}
	respondData(c, http.StatusOK, rowmap.ToCamel(item))
}

func (h *Handlers) DeleteProduct(c *gin.Context) {
	if err := h.Products.DeleteProduct(c.Param("id")); err != nil {
		h.respondStoreError(c, err, "Product not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

// ToggleProductVisibility flips isActive between its two states.
func (h *Handlers) ToggleProductVisibility(c *gin.Context) {
	item, err := h.Products.ToggleProductVisibility(c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err, "Product not found")
		return
	}
	respondData(c, http.StatusOK, rowmap.ToCamel(item))
}
