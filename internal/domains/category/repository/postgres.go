package repository

import (
	"context"
	"fmt"

	"maventoys-backend/internal/domains/category"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.CategoryRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *category.Category) (*category.Category, error) {
	const query = `
		INSERT INTO categories (name, active)
		VALUES ($1, $2)
		RETURNING id, name, active
	`

	created := &category.Category{}
	err := r.pool.QueryRow(ctx, query, entity.Name, entity.Active).
		Scan(&created.ID, &created.Name, &created.Active)
	if err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*category.Category, error) {
	const query = `SELECT id, name, active FROM categories WHERE id = $1`

	entity := &category.Category{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&entity.ID, &entity.Name, &entity.Active)
	if err != nil {
		return nil, err
	}

	return entity, nil
}

func (r *postgresRepository) GetActive(ctx context.Context) ([]category.Category, error) {
	const query = `SELECT id, name, active FROM categories WHERE active = true ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("GetActive: database error", err)
		return nil, fmt.Errorf("failed to list active categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var entity category.Category
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Active); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, entity)
	}

	return categories, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, entity *category.Category) (*category.Category, error) {
	const query = `
		UPDATE categories
		SET name = $2, active = $3
		WHERE id = $1
		RETURNING id, name, active
	`

	updated := &category.Category{}
	err := r.pool.QueryRow(ctx, query, entity.ID, entity.Name, entity.Active).
		Scan(&updated.ID, &updated.Name, &updated.Active)
	if err != nil {
		logger.Error("Update: database error", err)
		return nil, err
	}

	return updated, nil
}

func (r *postgresRepository) FindPaged(
	ctx context.Context,
	filters category.PagedFilters,
	params pagination.Params,
) (pagination.Page[category.Category], error) {
	spec := pagination.NewSpec(
		pagination.Equals("id", filters.ID),
		pagination.Contains("name", filters.Name),
	)
	where, args := spec.Where(1)

	var total int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories"+where, args...).Scan(&total)
	if err != nil {
		logger.Error("FindPaged: count error", err)
		return pagination.Page[category.Category]{}, fmt.Errorf("failed to count categories: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT id, name, active FROM categories%s ORDER BY id LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("FindPaged: database error", err)
		return pagination.Page[category.Category]{}, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var entity category.Category
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Active); err != nil {
			return pagination.Page[category.Category]{}, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, entity)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[category.Category]{}, err
	}

	return pagination.NewPage(categories, params, total), nil
}

func (r *postgresRepository) FindSalesTotals(ctx context.Context) ([]category.CategorySales, error) {
	const query = `
		SELECT c.id, c.name, COALESCE(SUM(i.subtotal), 0) AS total_sales
		FROM categories c
		JOIN products p ON p.category_id = c.id
		JOIN invoices i ON i.product_id = p.id
		WHERE c.active = true
		GROUP BY c.id, c.name
		ORDER BY total_sales DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("FindSalesTotals: database error", err)
		return nil, fmt.Errorf("failed to aggregate category sales: %w", err)
	}
	defer rows.Close()

	var totals []category.CategorySales
	for rows.Next() {
		var row category.CategorySales
		if err := rows.Scan(&row.ID, &row.Name, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("failed to scan category sales: %w", err)
		}
		totals = append(totals, row)
	}

	return totals, rows.Err()
}
