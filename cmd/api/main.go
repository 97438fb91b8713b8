package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nestegg/internal/config"
	"nestegg/internal/database"
	"nestegg/internal/handlers"
	"nestegg/internal/logger"
	"nestegg/internal/middleware"
	"nestegg/internal/scheduler"
	"nestegg/internal/services"
	"nestegg/internal/validator"

	_ "nestegg/internal/docs" // Import swagger docs
)

// @title           Nestegg API
// @version         1.0
// @description     Nestegg is a personal net-worth tracker: asset inventory, target allocation comparison with rebalancing actions, dividends, expenses, and FIRE projections.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	assetService := services.NewAssetService(db)
	targetService := services.NewTargetService(db)
	allocationService := services.NewAllocationService(assetService, targetService)
	dividendService := services.NewDividendService(db)
	expenseService := services.NewExpenseService(db)
	snapshotService := services.NewSnapshotService(db)
	projectionService := services.NewProjectionService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	assetHandler := handlers.NewAssetHandler(assetService, auditService)
	targetHandler := handlers.NewTargetHandler(targetService, auditService)
	allocationHandler := handlers.NewAllocationHandler(allocationService)
	dividendHandler := handlers.NewDividendHandler(dividendService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)

	// Start the nightly snapshot scheduler
	sched := scheduler.New(snapshotService)
	if err := sched.Start(appConfig.SnapshotSchedule); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/auth/profile", authHandler.GetProfile)
	protected.PUT("/auth/profile", authHandler.UpdateProfile)

	// Asset routes
	assets := protected.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.GetAssets)
	assets.GET("/export", assetHandler.ExportAssets)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	// Target allocation routes
	targets := protected.Group("/targets")
	targets.GET("", targetHandler.GetTargets)
	targets.PUT("", targetHandler.ReplaceTargets)
	targets.GET("/auto", targetHandler.AutoCalculate)

	// Allocation comparison
	protected.GET("/allocation", allocationHandler.GetAllocation)

	// Dividend routes
	dividends := protected.Group("/dividends")
	dividends.POST("", dividendHandler.CreateDividend)
	dividends.GET("", dividendHandler.GetDividends)
	dividends.GET("/summary", dividendHandler.GetDividendSummary)
	dividends.DELETE("/:id", dividendHandler.DeleteDividend)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/summary", expenseHandler.GetMonthlySummary)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Snapshot routes
	snapshots := protected.Group("/snapshots")
	snapshots.GET("", snapshotHandler.GetSnapshots)
	snapshots.POST("", snapshotHandler.RecordSnapshot)

	// FIRE projection
	protected.POST("/projections", projectionHandler.GetProjection)

	// Start server
	addr := ":" + appConfig.Port
	logger.Get().Infow("starting server", "addr", addr)
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
