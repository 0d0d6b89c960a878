package sale

import (
	"context"
	"time"

	"maventoys-backend/internal/shared/pagination"
)

// SaleRepository is the data access contract for sales and their invoice
// lines. Lookups that match no row return pgx.ErrNoRows.
type SaleRepository interface {
	// Create inserts the sale header and all invoice lines in one
	// transaction and returns the entity with generated ids filled in.
	Create(ctx context.Context, entity *Sale) (*Sale, error)
	GetByID(ctx context.Context, id int) (*Sale, error)
	Update(ctx context.Context, entity *Sale) (*Sale, error)
	GetByStoreID(ctx context.Context, storeID int) ([]Sale, error)
	GetByEmployeeID(ctx context.Context, employeeID int) ([]Sale, error)
	GetByProductID(ctx context.Context, productID int) ([]Sale, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]Sale, error)
	SumTotalByStore(ctx context.Context, storeID int) (float64, error)
	FindPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[Sale], error)
}
