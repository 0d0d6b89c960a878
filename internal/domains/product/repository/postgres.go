package repository

import (
	"context"
	"fmt"
	"time"

	"maventoys-backend/internal/domains/product"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/pkg/cache"
	"maventoys-backend/pkg/database"
	"maventoys-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	productCacheTTL = 10 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) product.ProductRepository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const productColumns = "id, name, cost, price, category_id, creation_date, active"

func productCacheKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

func scanProduct(row pgx.Row, entity *product.Product) error {
	return row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Cost,
		&entity.Price,
		&entity.CategoryID,
		&entity.CreationDate,
		&entity.Active,
	)
}

// Create inserts the product and seeds its inventory row in one transaction
// so a product can never exist without stock tracking.
func (r *postgresRepository) Create(ctx context.Context, entity *product.Product, stockOnHand int) (*product.Product, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*product.Product, error) {
		const insertProduct = `
			INSERT INTO products (name, cost, price, category_id, creation_date, active)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING ` + productColumns

		row := tx.QueryRow(ctx, insertProduct,
			entity.Name,
			entity.Cost,
			entity.Price,
			entity.CategoryID,
			entity.CreationDate,
			entity.Active,
		)

		created := &product.Product{}
		if err := scanProduct(row, created); err != nil {
			logger.Error("Create: database error", err)
			return nil, fmt.Errorf("failed to create product: %w", err)
		}

		const insertInventory = `
			INSERT INTO inventory (product_id, stock_on_hand)
			VALUES ($1, $2)
		`
		if _, err := tx.Exec(ctx, insertInventory, created.ID, stockOnHand); err != nil {
			logger.Error("Create: inventory insert error", err)
			return nil, fmt.Errorf("failed to create inventory: %w", err)
		}

		return created, nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*product.Product, error) {
	cached := &product.Product{}
	if hit, err := r.cache.Get(ctx, productCacheKey(id), cached); err == nil && hit {
		return cached, nil
	}

	const query = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	entity := &product.Product{}
	if err := scanProduct(r.pool.QueryRow(ctx, query, id), entity); err != nil {
		return nil, err
	}

	// Cache failures only cost the next read a database round trip.
	if err := r.cache.Set(ctx, productCacheKey(id), entity, productCacheTTL); err != nil {
		logger.Warn("GetByID: cache set failed", map[string]interface{}{"error": err.Error()})
	}

	return entity, nil
}

func (r *postgresRepository) GetActive(ctx context.Context) ([]product.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE active = true ORDER BY id`

	return r.queryMany(ctx, query)
}

func (r *postgresRepository) Update(ctx context.Context, entity *product.Product) (*product.Product, error) {
	const query = `
		UPDATE products
		SET name = $2, cost = $3, price = $4, category_id = $5, active = $6
		WHERE id = $1
		RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Cost,
		entity.Price,
		entity.CategoryID,
		entity.Active,
	)

	updated := &product.Product{}
	if err := scanProduct(row, updated); err != nil {
		logger.Error("Update: database error", err)
		return nil, err
	}

	if err := r.cache.Delete(ctx, productCacheKey(updated.ID)); err != nil {
		logger.Warn("Update: cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}

	return updated, nil
}

func (r *postgresRepository) GetByCategoryID(ctx context.Context, categoryID int) ([]product.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY id`

	return r.queryMany(ctx, query, categoryID)
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) ([]product.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE name = $1 ORDER BY creation_date DESC`

	return r.queryMany(ctx, query, name)
}

func (r *postgresRepository) GetStock(ctx context.Context, productID int) (int, error) {
	const query = `SELECT stock_on_hand FROM inventory WHERE product_id = $1`

	var stock int
	if err := r.pool.QueryRow(ctx, query, productID).Scan(&stock); err != nil {
		return 0, err
	}

	return stock, nil
}

func (r *postgresRepository) FindPaged(
	ctx context.Context,
	filters product.PagedFilters,
	params pagination.Params,
) (pagination.Page[product.Product], error) {
	spec := pagination.NewSpec(
		pagination.Equals("id", filters.ID),
		pagination.Contains("name", filters.Name),
	)
	where, args := spec.Where(1)

	var total int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total)
	if err != nil {
		logger.Error("FindPaged: count error", err)
		return pagination.Page[product.Product]{}, fmt.Errorf("failed to count products: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT "+productColumns+" FROM products%s ORDER BY id LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	products, err := r.queryMany(ctx, query, args...)
	if err != nil {
		return pagination.Page[product.Product]{}, err
	}

	return pagination.NewPage(products, params, total), nil
}

func (r *postgresRepository) FindBestSellersByCategory(ctx context.Context, categoryID int) ([]product.BestSeller, error) {
	const query = `
		SELECT p.id, p.name, SUM(i.quantity) AS total_quantity
		FROM products p
		JOIN invoices i ON i.product_id = p.id
		WHERE p.category_id = $1
		GROUP BY p.id, p.name
		ORDER BY total_quantity DESC
		LIMIT 5
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		logger.Error("FindBestSellersByCategory: database error", err)
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	defer rows.Close()

	var best []product.BestSeller
	for rows.Next() {
		var row product.BestSeller
		if err := rows.Scan(&row.ID, &row.Name, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan product ranking: %w", err)
		}
		best = append(best, row)
	}

	return best, rows.Err()
}

func (r *postgresRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]product.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("queryMany: database error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var entity product.Product
		if err := scanProduct(rows, &entity); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, entity)
	}

	return products, rows.Err()
}
