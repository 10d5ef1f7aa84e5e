package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mokshlabs/moksh-api/internal/auth"
	"github.com/mokshlabs/moksh-api/internal/models"
)

// AdminLoader resolves the admin a token was issued for.
type AdminLoader interface {
	GetAdminByID(id string) (*models.Admin, error)
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"message": message, "code": "UNAUTHORIZED"},
	})
	c.Abort()
}

// Auth guards admin routes. It validates the bearer token and loads the
// admin row into the context under "admin" / "adminID".
func Auth(secret string, admins AdminLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "Missing or invalid authorization header")
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Missing or invalid authorization header")
			return
		}

		adminID, err := auth.ValidateToken(secret, parts[1])
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		admin, err := admins.GetAdminByID(adminID)
		if err != nil {
			unauthorized(c, "Admin not found")
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("admin", admin)
		c.Next()
	}
}
