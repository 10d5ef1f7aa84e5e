package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mokshlabs/moksh-api/internal/rowmap"
)

// GetStats powers the admin dashboard: entity totals plus the latest
// leads and products.
func (h *Handlers) GetStats(c *gin.Context) {
	totalProducts, err := h.Dashboard.CountProducts()
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	totalCategories, err := h.Dashboard.CountCategories()
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	totalLeads, err := h.Dashboard.CountLeads()
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	recentLeads, err := h.Dashboard.RecentLeads(10)
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	recentProducts, err := h.Dashboard.RecentProducts(5)
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"totalProducts":   totalProducts,
		"totalCategories": totalCategories,
		"totalLeads":      totalLeads,
		"recentActivity": gin.H{
			"leads":    recentLeads,
			"products": rowmap.SliceToCamel(recentProducts),
		},
	})
}
