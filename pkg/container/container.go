package container

import (
	"context"
	"fmt"

	"maventoys-backend/internal/config"
	infraCache "maventoys-backend/internal/infrastructure/cache"
	"maventoys-backend/internal/infrastructure/database"
	"maventoys-backend/pkg/cache"
	"maventoys-backend/pkg/logger"

	"maventoys-backend/internal/domains/category"
	categoryHandler "maventoys-backend/internal/domains/category/handler"
	categoryRepo "maventoys-backend/internal/domains/category/repository"
	categoryService "maventoys-backend/internal/domains/category/service"
	"maventoys-backend/internal/domains/employee"
	employeeHandler "maventoys-backend/internal/domains/employee/handler"
	employeeRepo "maventoys-backend/internal/domains/employee/repository"
	employeeService "maventoys-backend/internal/domains/employee/service"
	"maventoys-backend/internal/domains/product"
	productHandler "maventoys-backend/internal/domains/product/handler"
	productRepo "maventoys-backend/internal/domains/product/repository"
	productService "maventoys-backend/internal/domains/product/service"
	"maventoys-backend/internal/domains/sale"
	saleHandler "maventoys-backend/internal/domains/sale/handler"
	saleRepo "maventoys-backend/internal/domains/sale/repository"
	saleService "maventoys-backend/internal/domains/sale/service"
	"maventoys-backend/internal/domains/store"
	storeHandler "maventoys-backend/internal/domains/store/handler"
	storeRepo "maventoys-backend/internal/domains/store/repository"
	storeService "maventoys-backend/internal/domains/store/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	StoreRepo    store.StoreRepository
	EmployeeRepo employee.EmployeeRepository
	CategoryRepo category.CategoryRepository
	ProductRepo  product.ProductRepository
	SaleRepo     sale.SaleRepository

	StoreService    store.StoreService
	EmployeeService employee.EmployeeService
	CategoryService category.CategoryService
	ProductService  product.ProductService
	SaleService     sale.SaleService

	StoreHandler    *storeHandler.StoreHandler
	EmployeeHandler *employeeHandler.EmployeeHandler
	CategoryHandler *categoryHandler.CategoryHandler
	ProductHandler  *productHandler.ProductHandler
	SaleHandler     *saleHandler.SaleHandler
}

// NewContainer wires the application bottom-up: infrastructure first, then
// repositories, services and handlers.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// ========================================
	// INFRASTRUCTURE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	c.DB = db

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = redisClient

	// ========================================
	// REPOSITORIES
	// ========================================
	c.StoreRepo = storeRepo.NewPostgresRepository(db.Pool)
	c.EmployeeRepo = employeeRepo.NewPostgresRepository(db.Pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(db.Pool)
	c.ProductRepo = productRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.SaleRepo = saleRepo.NewPostgresRepository(db.Pool)

	// ========================================
	// SERVICES
	// ========================================
	c.StoreService = storeService.NewStoreService(c.StoreRepo, c.EmployeeRepo, c.SaleRepo)
	c.EmployeeService = employeeService.NewEmployeeService(c.EmployeeRepo, c.StoreRepo, c.SaleRepo)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.ProductRepo)
	c.ProductService = productService.NewProductService(c.ProductRepo, c.CategoryRepo, c.SaleRepo)
	c.SaleService = saleService.NewSaleService(c.SaleRepo, c.StoreRepo, c.EmployeeRepo, c.ProductRepo)

	// ========================================
	// HANDLERS
	// ========================================
	c.StoreHandler = storeHandler.NewStoreHandler(c.StoreService)
	c.EmployeeHandler = employeeHandler.NewEmployeeHandler(c.EmployeeService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.SaleHandler = saleHandler.NewSaleHandler(c.SaleService)

	return c, nil
}

// Cleanup releases the infrastructure connections in reverse wiring order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if closer, ok := c.Cache.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				logger.Warn("cleanup: redis close failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
