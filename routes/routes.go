package routes

import (
	"net/http"
	"time"

	"hostiva/config"
	"hostiva/handlers"
	"hostiva/middleware"
	"hostiva/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterInvoiceRoutes registers the public invoice verification endpoint.
// It is intentionally unauthenticated (self-service fraud check) but sits
// behind its own tighter per-IP rate limiter.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.GET("/verify", middleware.RateLimitMiddleware(config.AppConfig.VerifyRequestsPerMin), hb.VerifyInvoiceHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLoginHandler)

		// Protected routes (Require admin Authentication)
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.POST("/logout", hb.AdminLogoutHandler)
		adminGroup.GET("/invoices", hb.ListInvoicesHandler)
		adminGroup.GET("/invoices/:id/pdf", hb.DownloadInvoicePDFHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterInvoiceRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
