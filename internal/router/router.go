package router

import (
	"time"

	"github.com/criissj/gestion-de-inventario/internal/config"
	"github.com/criissj/gestion-de-inventario/internal/handler"
	"github.com/criissj/gestion-de-inventario/internal/middleware"
	"github.com/criissj/gestion-de-inventario/internal/repository"
	"github.com/criissj/gestion-de-inventario/internal/service"
	"github.com/criissj/gestion-de-inventario/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(200, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	logRepo := repository.NewProductLogRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	cache := service.NewCatalogCache(rdb)
	dispatcher := worker.NewDispatcher(rdb)

	productSvc := service.NewProductService(productRepo, logRepo, cache)
	saleSvc := service.NewSaleService(saleRepo, productRepo, logRepo, cache, dispatcher, cfg.LowStockThreshold)
	dashboardSvc := service.NewDashboardService(dashboardRepo, productRepo, cfg.LowStockThreshold)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	productLogsH := handler.NewProductLogsHandler(logRepo)
	salesH := handler.NewSalesHandler(saleSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		api.GET("/products", productsH.List)
		api.POST("/products", productsH.Create)
		api.GET("/products/:id", productsH.GetByID)
		api.PUT("/products/:id", productsH.Update)
		api.DELETE("/products/:id", productsH.Deactivate)
		api.GET("/products/:id/logs", productLogsH.ListByProduct)

		api.POST("/sales", salesH.Checkout)
		api.GET("/sales", salesH.List)
		api.GET("/sales/trends", dashboardH.Trends)

		api.GET("/dashboard", dashboardH.Summary)
	}

	return r
}
