package repository

import (
	"context"
	"fmt"
	"time"

	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/pkg/database"
	"maventoys-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) sale.SaleRepository {
	return &postgresRepository{pool: pool}
}

const saleColumns = "id, store_id, employee_id, total, date"

func scanSale(row pgx.Row, entity *sale.Sale) error {
	return row.Scan(
		&entity.ID,
		&entity.StoreID,
		&entity.EmployeeID,
		&entity.Total,
		&entity.Date,
	)
}

// Create writes the sale header and every invoice line in one transaction.
// Either all rows land or none do.
func (r *postgresRepository) Create(ctx context.Context, entity *sale.Sale) (*sale.Sale, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*sale.Sale, error) {
		const insertSale = `
			INSERT INTO sales (store_id, employee_id, total, date)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + saleColumns

		created := &sale.Sale{}
		row := tx.QueryRow(ctx, insertSale,
			entity.StoreID,
			entity.EmployeeID,
			entity.Total,
			entity.Date,
		)
		if err := scanSale(row, created); err != nil {
			logger.Error("Create: database error", err)
			return nil, fmt.Errorf("failed to create sale: %w", err)
		}

		const insertInvoice = `
			INSERT INTO invoices (sales_id, product_id, quantity, subtotal, discount, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		for _, inv := range entity.Invoices {
			line := inv
			line.SaleID = created.ID
			err := tx.QueryRow(ctx, insertInvoice,
				line.SaleID,
				line.ProductID,
				line.Quantity,
				line.Subtotal,
				line.Discount,
				line.Status,
			).Scan(&line.ID)
			if err != nil {
				logger.Error("Create: invoice insert error", err)
				return nil, fmt.Errorf("failed to create invoice: %w", err)
			}
			created.Invoices = append(created.Invoices, line)
		}

		return created, nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*sale.Sale, error) {
	const query = `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`

	entity := &sale.Sale{}
	if err := scanSale(r.pool.QueryRow(ctx, query, id), entity); err != nil {
		return nil, err
	}

	invoices, err := r.invoicesBySale(ctx, entity.ID)
	if err != nil {
		return nil, err
	}
	entity.Invoices = invoices

	return entity, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *sale.Sale) (*sale.Sale, error) {
	const query = `
		UPDATE sales
		SET store_id = $2, employee_id = $3, total = $4, date = $5
		WHERE id = $1
		RETURNING ` + saleColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.StoreID,
		entity.EmployeeID,
		entity.Total,
		entity.Date,
	)

	updated := &sale.Sale{}
	if err := scanSale(row, updated); err != nil {
		logger.Error("Update: database error", err)
		return nil, err
	}

	return updated, nil
}

func (r *postgresRepository) GetByStoreID(ctx context.Context, storeID int) ([]sale.Sale, error) {
	const query = `SELECT ` + saleColumns + ` FROM sales WHERE store_id = $1 ORDER BY id`

	return r.queryMany(ctx, query, storeID)
}

func (r *postgresRepository) GetByEmployeeID(ctx context.Context, employeeID int) ([]sale.Sale, error) {
	const query = `SELECT ` + saleColumns + ` FROM sales WHERE employee_id = $1 ORDER BY id`

	return r.queryMany(ctx, query, employeeID)
}

func (r *postgresRepository) GetByProductID(ctx context.Context, productID int) ([]sale.Sale, error) {
	const query = `
		SELECT DISTINCT s.id, s.store_id, s.employee_id, s.total, s.date
		FROM sales s
		JOIN invoices i ON i.sales_id = s.id
		WHERE i.product_id = $1
		ORDER BY s.id
	`

	return r.queryMany(ctx, query, productID)
}

func (r *postgresRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]sale.Sale, error) {
	const query = `SELECT ` + saleColumns + ` FROM sales WHERE date BETWEEN $1 AND $2 ORDER BY date`

	return r.queryMany(ctx, query, start, end)
}

func (r *postgresRepository) SumTotalByStore(ctx context.Context, storeID int) (float64, error) {
	const query = `SELECT COALESCE(SUM(total), 0) FROM sales WHERE store_id = $1`

	var total float64
	if err := r.pool.QueryRow(ctx, query, storeID).Scan(&total); err != nil {
		logger.Error("SumTotalByStore: database error", err)
		return 0, fmt.Errorf("failed to sum sales: %w", err)
	}

	return total, nil
}

func (r *postgresRepository) FindPaged(
	ctx context.Context,
	filters sale.PagedFilters,
	params pagination.Params,
) (pagination.Page[sale.Sale], error) {
	spec := pagination.NewSpec(
		pagination.Equals("id", filters.ID),
		pagination.Equals("store_id", filters.StoreID),
		pagination.Equals("employee_id", filters.EmployeeID),
	)
	where, args := spec.Where(1)

	var total int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM sales"+where, args...).Scan(&total)
	if err != nil {
		logger.Error("FindPaged: count error", err)
		return pagination.Page[sale.Sale]{}, fmt.Errorf("failed to count sales: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT "+saleColumns+" FROM sales%s ORDER BY id LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	sales, err := r.queryMany(ctx, query, args...)
	if err != nil {
		return pagination.Page[sale.Sale]{}, err
	}

	return pagination.NewPage(sales, params, total), nil
}

func (r *postgresRepository) invoicesBySale(ctx context.Context, saleID int) ([]sale.Invoice, error) {
	const query = `
		SELECT id, sales_id, product_id, quantity, subtotal, discount, status
		FROM invoices
		WHERE sales_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, saleID)
	if err != nil {
		logger.Error("invoicesBySale: database error", err)
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []sale.Invoice
	for rows.Next() {
		var inv sale.Invoice
		err := rows.Scan(&inv.ID, &inv.SaleID, &inv.ProductID, &inv.Quantity, &inv.Subtotal, &inv.Discount, &inv.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (r *postgresRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]sale.Sale, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("queryMany: database error", err)
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []sale.Sale
	for rows.Next() {
		var entity sale.Sale
		if err := scanSale(rows, &entity); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, entity)
	}

	return sales, rows.Err()
}
