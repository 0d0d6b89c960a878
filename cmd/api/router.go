package main

import (
	"context"
	"net/http"
	"time"

	"maventoys-backend/internal/shared/middleware"
	"maventoys-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupStoreRoutes(v1, c)
		setupEmployeeRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupSaleRoutes(v1, c)
	}

	return router
}

// ========================================
// STORE ROUTES
// ========================================
func setupStoreRoutes(v1 *gin.RouterGroup, c *container.Container) {
	stores := v1.Group("/stores")
	{
		stores.GET("", c.StoreHandler.List)
		stores.POST("", c.StoreHandler.Create)
		stores.GET("/paged", c.StoreHandler.Paged)
		stores.GET("/sales", c.StoreHandler.TopSellers)
		stores.GET("/:id", c.StoreHandler.GetByID)
		stores.PATCH("/:id", c.StoreHandler.Update)
		stores.PUT("/:id", c.StoreHandler.Update)
		stores.GET("/:id/employees", c.StoreHandler.Employees)
		stores.GET("/:id/sales", c.StoreHandler.Sales)
		stores.GET("/:id/totalSales", c.StoreHandler.TotalSales)
	}
}

// ========================================
// EMPLOYEE ROUTES
// ========================================
func setupEmployeeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	employees := v1.Group("/employees")
	{
		employees.GET("", c.EmployeeHandler.List)
		employees.POST("", c.EmployeeHandler.Create)
		employees.GET("/paged", c.EmployeeHandler.Paged)
		employees.GET("/top-sellers", c.EmployeeHandler.TopSellers)
		employees.GET("/:id", c.EmployeeHandler.GetByID)
		employees.PATCH("/:id", c.EmployeeHandler.Update)
		employees.PUT("/:id", c.EmployeeHandler.Update)
		employees.GET("/:id/sales", c.EmployeeHandler.Sales)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.POST("", c.CategoryHandler.Create)
		categories.GET("/paged", c.CategoryHandler.Paged)
		categories.GET("/sales", c.CategoryHandler.Sales)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.PATCH("/:id", c.CategoryHandler.Update)
		categories.PUT("/:id", c.CategoryHandler.Update)
		categories.GET("/:id/products", c.CategoryHandler.Products)
	}
}

// ========================================
// PRODUCT ROUTES
// ========================================
func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		products.GET("", c.ProductHandler.List)
		products.POST("", c.ProductHandler.Create)
		products.GET("/paged", c.ProductHandler.Paged)
		products.GET("/category/best-sellers", c.ProductHandler.BestSellers)
		products.GET("/:id", c.ProductHandler.GetByID)
		products.PATCH("/:id", c.ProductHandler.Update)
		products.PUT("/:id", c.ProductHandler.Update)
		products.GET("/:id/stock", c.ProductHandler.Stock)
		products.GET("/:id/sales", c.ProductHandler.Sales)
		products.GET("/:id/price-history", c.ProductHandler.PriceHistory)
	}
}

// ========================================
// SALE ROUTES
// ========================================
func setupSaleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	sales := v1.Group("/sales")
	{
		sales.GET("", c.SaleHandler.List)
		sales.POST("", c.SaleHandler.Create)
		sales.GET("/paged", c.SaleHandler.Paged)
		sales.GET("/byDateRange", c.SaleHandler.ByDateRange)
		sales.GET("/:id", c.SaleHandler.GetByID)
		sales.PATCH("/:id", c.SaleHandler.Update)
		sales.PUT("/:id", c.SaleHandler.Update)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := "healthy"
		code := http.StatusOK

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		ctx.JSON(code, gin.H{
			"status":      status,
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}
