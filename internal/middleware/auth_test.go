package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokshlabs/moksh-api/internal/auth"
	"github.com/mokshlabs/moksh-api/internal/models"
	"github.com/mokshlabs/moksh-api/internal/store"
)

const testSecret = "test-secret"

type staticAdminLoader struct {
	admin *models.Admin
}

func (s *staticAdminLoader) GetAdminByID(id string) (*models.Admin, error) {
	if s.admin != nil && s.admin.ID == id {
		return s.admin, nil
	}
	return nil, store.ErrNotFound
}

func protectedRouter(loader AdminLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(testSecret, loader), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminID": c.GetString("adminID")})
	})
	return router
}

func request(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthAllowsValidToken(t *testing.T) {
	loader := &staticAdminLoader{admin: &models.Admin{ID: "admin-1", Email: "admin@moksh.com"}}
	router := protectedRouter(loader)

	token, err := auth.GenerateToken(testSecret, "admin-1")
	require.NoError(t, err)

	w := request(t, router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin-1", body["adminID"])
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	router := protectedRouter(&staticAdminLoader{})

	w := request(t, router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	router := protectedRouter(&staticAdminLoader{})

	for _, header := range []string{"Bearer", "Basic abc", "token-without-scheme"} {
		w := request(t, router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthRejectsTokenSignedWithOtherSecret(t *testing.T) {
	loader := &staticAdminLoader{admin: &models.Admin{ID: "admin-1"}}
	router := protectedRouter(loader)

	token, err := auth.GenerateToken("other-secret", "admin-1")
	require.NoError(t, err)

	w := request(t, router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsDeletedAdmin(t *testing.T) {
	router := protectedRouter(&staticAdminLoader{})

	token, err := auth.GenerateToken(testSecret, "gone")
	require.NoError(t, err)

	w := request(t, router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
