package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tewodrosk/gibir-api/internal/application/service"
	"github.com/tewodrosk/gibir-api/internal/config"
	"github.com/tewodrosk/gibir-api/internal/infrastructure/database"
	"github.com/tewodrosk/gibir-api/internal/infrastructure/repository"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/handler"
	"github.com/tewodrosk/gibir-api/internal/presentation/http/routes"
	"github.com/tewodrosk/gibir-api/pkg/storage"
	"github.com/tewodrosk/gibir-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize file storage for uploaded documents
	store, err := storage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	lineItemRepo := repository.NewReceiptLineItemRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	filingRepo := repository.NewVATFilingRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	receiptService := service.NewReceiptService(receiptRepo, lineItemRepo)
	reportService := service.NewVATReportService(receiptRepo, filingRepo)
	documentService := service.NewDocumentService(documentRepo, receiptRepo, store)
	dashboardService := service.NewDashboardService(receiptRepo, documentRepo, filingRepo)
	userService := service.NewUserService(userRepo, roleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Receipt:   handler.NewReceiptHandler(receiptService),
		VATReport: handler.NewVATReportHandler(reportService),
		Document:  handler.NewDocumentHandler(documentService, cfg.Storage.UploadMaxSize),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		RefData:   handler.NewRefDataHandler(),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
