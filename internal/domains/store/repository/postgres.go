package repository

import (
	"context"
	"fmt"

	"maventoys-backend/internal/domains/store"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) store.StoreRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *store.Store) (*store.Store, error) {
	const query = `
		INSERT INTO stores (name, city, location, open_date, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, city, location, open_date, active
	`

	row := r.pool.QueryRow(ctx, query,
		entity.Name,
		entity.City,
		entity.Location,
		entity.OpenDate,
		entity.Active,
	)

	created := &store.Store{}
	err := row.Scan(
		&created.ID,
		&created.Name,
		&created.City,
		&created.Location,
		&created.OpenDate,
		&created.Active,
	)
	if err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*store.Store, error) {
	const query = `
		SELECT id, name, city, location, open_date, active
		FROM stores
		WHERE id = $1
	`

	entity := &store.Store{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entity.ID,
		&entity.Name,
		&entity.City,
		&entity.Location,
		&entity.OpenDate,
		&entity.Active,
	)
	if err != nil {
		return nil, err
	}

	return entity, nil
}

func (r *postgresRepository) GetActive(ctx context.Context) ([]store.Store, error) {
	const query = `
		SELECT id, name, city, location, open_date, active
		FROM stores
		WHERE active = true
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("GetActive: database error", err)
		return nil, fmt.Errorf("failed to list active stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var entity store.Store
		err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.City,
			&entity.Location,
			&entity.OpenDate,
			&entity.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, entity)
	}

	return stores, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, entity *store.Store) (*store.Store, error) {
	const query = `
		UPDATE stores
		SET name = $2, city = $3, location = $4, active = $5
		WHERE id = $1
		RETURNING id, name, city, location, open_date, active
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.City,
		entity.Location,
		entity.Active,
	)

	updated := &store.Store{}
	err := row.Scan(
		&updated.ID,
		&updated.Name,
		&updated.City,
		&updated.Location,
		&updated.OpenDate,
		&updated.Active,
	)
	if err != nil {
		logger.Error("Update: database error", err)
		return nil, err
	}

	return updated, nil
}

func (r *postgresRepository) FindPaged(
	ctx context.Context,
	filters store.PagedFilters,
	params pagination.Params,
) (pagination.Page[store.Store], error) {
	spec := pagination.NewSpec(
		pagination.Equals("id", filters.ID),
		pagination.Contains("name", filters.Name),
		pagination.Contains("location", filters.Location),
	)
	where, args := spec.Where(1)

	var total int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM stores"+where, args...).Scan(&total)
	if err != nil {
		logger.Error("FindPaged: count error", err)
		return pagination.Page[store.Store]{}, fmt.Errorf("failed to count stores: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, city, location, open_date, active
		FROM stores%s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit(), params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("FindPaged: database error", err)
		return pagination.Page[store.Store]{}, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var entity store.Store
		err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.City,
			&entity.Location,
			&entity.OpenDate,
			&entity.Active,
		)
		if err != nil {
			return pagination.Page[store.Store]{}, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, entity)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[store.Store]{}, err
	}

	return pagination.NewPage(stores, params, total), nil
}

func (r *postgresRepository) FindTopSellers(ctx context.Context) ([]store.TopSellingStore, error) {
	const query = `
		SELECT st.id, st.name, SUM(sa.total) AS total_sales
		FROM stores st
		JOIN sales sa ON sa.store_id = st.id
		GROUP BY st.id, st.name
		ORDER BY total_sales DESC
		LIMIT 5
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("FindTopSellers: database error", err)
		return nil, fmt.Errorf("failed to rank stores: %w", err)
	}
	defer rows.Close()

	var top []store.TopSellingStore
	for rows.Next() {
		var row store.TopSellingStore
		if err := rows.Scan(&row.ID, &row.Name, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("failed to scan store ranking: %w", err)
		}
		top = append(top, row)
	}

	return top, rows.Err()
}
