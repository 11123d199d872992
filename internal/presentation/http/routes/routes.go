package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tewodrosk/gibir-api/internal/config"
	domainRepo "github.com/tewodrosk/gibir-api/internal/domain/repository"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/handler"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/middleware"
	"github.com/tewodrosk/gibir-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Receipt   *handler.ReceiptHandler
	VATReport *handler.VATReportHandler
	Document  *handler.DocumentHandler
	Dashboard *handler.DashboardHandler
	RefData   *handler.RefDataHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Receipt routes; capture is guarded against form retries
	receipts := protected.Group("/receipts")
	{
		receipts.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Receipt.Create)
		receipts.GET("", h.Receipt.List)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.PUT("/:id", h.Receipt.Update)
		receipts.DELETE("/:id", h.Receipt.Delete)
	}

	// VAT declaration routes
	reports := protected.Group("/reports")
	{
		reports.GET("/vat-summary", h.VATReport.MonthlySummary)
		reports.PUT("/vat-filing", h.VATReport.SaveFiling)
		reports.GET("/vat-filings", h.VATReport.ListFilings)
		reports.POST("/withholding", h.VATReport.Withholding)
	}

	// Document routes
	documents := protected.Group("/documents")
	{
		documents.POST("", h.Document.Upload)
		documents.GET("", h.Document.List)
		documents.GET("/:id", h.Document.Get)
		documents.GET("/:id/download", h.Document.Download)
		documents.DELETE("/:id", h.Document.Delete)
	}

	// Admin routes
	admin := protected.Group("/admin")
	{
		review := admin.Group("/documents")
		review.Use(middleware.RequirePermission("review-documents"))
		{
			review.GET("", h.Document.ReviewQueue)
			review.POST("/:id/review", h.Document.Review)
		}

		users := admin.Group("/users")
		users.Use(middleware.RequirePermission("manage-users"))
		{
			users.GET("", h.User.List)
			users.GET("/:id", h.User.Get)
			users.DELETE("/:id", h.User.Delete)
			users.POST("/:id/roles", h.User.AssignRole)
		}
	}

	// Reference data for capture forms
	reference := protected.Group("/reference")
	{
		reference.GET("/banks", h.RefData.Banks)
		reference.GET("/payment-methods", h.RefData.PaymentMethods)
		reference.GET("/nature-codes", h.RefData.NatureCodes)
	}

	// Dashboard
	protected.GET("/dashboard/stats", h.Dashboard.Stats)
}
