package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mokshlabs/moksh-api/internal/auth"
	"github.com/mokshlabs/moksh-api/internal/models"
	"github.com/mokshlabs/moksh-api/internal/store"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type adminView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login exchanges email+password for a bearer token. Unknown email and
// wrong password produce the same message on purpose.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return
	}

	admin, err := h.Admins.GetAdminByEmail(input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password", "UNAUTHORIZED")
			return
		}
		h.respondStoreError(c, err, "Admin not found")
		return
	}

	password := models.Password{Hash: admin.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}
	if !match {
		respondError(c, http.StatusUnauthorized, "Invalid email or password", "UNAUTHORIZED")
		return
	}

	token, err := auth.GenerateToken(h.Cfg.JWTSecret, admin.ID)
	if err != nil {
		h.respondStoreError(c, err, "")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"token": token,
		"admin": adminView{ID: admin.ID, Email: admin.Email, Name: admin.Name},
	})
}

// Me resolves the authenticated admin from the bearer token.
func (h *Handlers) Me(c *gin.Context) {
	adminRaw, exists := c.Get("admin")
	if !exists {
		respondError(c, http.StatusUnauthorized, "Not authenticated", "UNAUTHORIZED")
		return
	}
	admin := adminRaw.(*models.Admin)
	respondData(c, http.StatusOK, adminView{ID: admin.ID, Email: admin.Email, Name: admin.Name})
}
