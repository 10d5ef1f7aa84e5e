package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mokshlabs/moksh-api/internal/store"
)

// Every response uses the same envelope:
// {success: true, data} or {success: false, error: {message, code?}}.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message, code string) {
	errBody := gin.H{"message": message}
	if code != "" {
		errBody["code"] = code
	}
	c.JSON(status, gin.H{"success": false, "error": errBody})
}

// respondStoreError maps the store's tagged error kinds onto statuses.
// notFoundMessage names the resource for the 404 case.
func (h *Handlers) respondStoreError(c *gin.Context, err error, notFoundMessage string) {
	var inUse *store.CategoryInUseError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMessage, "NOT_FOUND")
	case errors.As(err, &inUse):
		respondError(c, http.StatusBadRequest, inUse.Error(), "CATEGORY_IN_USE")
	case errors.Is(err, store.ErrInvalidReference):
		respondError(c, http.StatusBadRequest, "Referenced record does not exist", "INVALID_REFERENCE")
	case errors.Is(err, store.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, "Email already registered", "EMAIL_TAKEN")
	default:
		log.Printf("internal error: %v", err)
		message := err.Error()
		if h.Cfg.IsProduction() {
			message = "Internal server error"
		}
		respondError(c, http.StatusInternalServerError, message, "INTERNAL_ERROR")
	}
}
