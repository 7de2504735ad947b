// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fgomes/stockroom-backend/internal/config"
	"github.com/fgomes/stockroom-backend/internal/handlers"
	"github.com/fgomes/stockroom-backend/internal/middleware"
	"github.com/fgomes/stockroom-backend/internal/models"
	"github.com/fgomes/stockroom-backend/internal/services"
	"github.com/fgomes/stockroom-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	purchaseService := services.NewPurchaseService(db)
	saleService := services.NewSaleService(db)
	reportService := services.NewReportService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, reportService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	saleHandler := handlers.NewSaleHandler(saleService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", middleware.AuthRequired(), middleware.AdminRequired(), authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Product catalog
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.ListProducts)
			products.GET("/available", catalogHandler.AvailableProducts)
			products.POST("", middleware.AuthRequired(), middleware.AdminRequired(), catalogHandler.CreateProduct)
			products.GET("/low-stock", middleware.AuthRequired(), middleware.AdminRequired(), catalogHandler.LowStockProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		// Purchase ledger
		purchases := v1.Group("/purchases")
		purchases.Use(middleware.AuthRequired())
		{
			purchases.POST("", middleware.RoleRequired(models.RoleAdmin, models.RoleSupplier), purchaseHandler.RecordPurchase)
			purchases.GET("", middleware.AdminRequired(), purchaseHandler.ListPurchases)
		}

		// Sale ledger
		sales := v1.Group("/sales")
		sales.Use(middleware.AuthRequired())
		{
			sales.POST("", middleware.RoleRequired(models.RoleStaff), saleHandler.RecordSale)
			sales.GET("", middleware.AdminRequired(), saleHandler.ListSales)
		}

		// Reports
		reports := v1.Group("/reports")
		reports.Use(middleware.AuthRequired())
		{
			reports.GET("/purchases-by-product", middleware.RoleRequired(models.RoleAdmin, models.RoleSupplier), reportHandler.PurchasesByProduct)
			reports.GET("/sales-by-product", middleware.RoleRequired(models.RoleAdmin, models.RoleStaff), reportHandler.SalesByProduct)
			reports.GET("/financial-summary", middleware.AdminRequired(), reportHandler.FinancialSummary)
		}
	}

	return r
}
