package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mokshlabs/moksh-api/internal/handlers"
	"github.com/mokshlabs/moksh-api/internal/middleware"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     h.Cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Locally stored uploads are served straight from disk.
	router.Static("/uploads", h.Cfg.UploadDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "service": "moksh-api"})
	})

	requireAuth := middleware.Auth(h.Cfg.JWTSecret, h.Admins)

	// --- Auth ---
	router.POST("/auth/login", h.Login)
	router.GET("/auth/me", requireAuth, h.Me)

	// --- Categories (public reads, admin writes) ---
	router.GET("/categories", h.ListCategories)
	router.GET("/categories/:id", h.GetCategory)
	router.POST("/categories", requireAuth, h.CreateCategory)
	router.PUT("/categories/:id", requireAuth, h.UpdateCategory)
	router.DELETE("/categories/:id", requireAuth, h.DeleteCategory)

	// --- Products (public reads, admin writes) ---
	router.GET("/products", h.ListProducts)
	router.GET("/products/latest", h.LatestProduct)
	router.GET("/products/:id", h.GetProduct)
	router.POST("/products", requireAuth, h.CreateProduct)
	router.PUT("/products/:id", requireAuth, h.UpdateProduct)
	router.DELETE("/products/:id", requireAuth, h.DeleteProduct)
	router.PATCH("/products/:id/visibility", requireAuth, h.ToggleProductVisibility)

	// --- Media (admin only) ---
	media := router.Group("/media")
	media.Use(requireAuth)
	{
		media.GET("", h.ListMedia)
		media.POST("", h.UploadMedia)
		media.DELETE("/:id", h.DeleteMedia)
	}

	// --- Settings ---
	router.GET("/settings/public", h.GetPublicSettings)
	router.GET("/settings", requireAuth, h.GetSettings)
	router.PUT("/settings", requireAuth, h.UpdateSettings)

	// --- Leads (public append-only) ---
	router.POST("/leads", h.CreateLead)

	// --- Dashboard (admin only) ---
	router.GET("/dashboard/stats", requireAuth, h.GetStats)

	return router
}
