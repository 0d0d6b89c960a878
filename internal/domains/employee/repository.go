package employee

import (
	"context"

	"maventoys-backend/internal/shared/pagination"
)

// EmployeeRepository is the data access contract for employees. Lookups that
// match no row return pgx.ErrNoRows.
type EmployeeRepository interface {
	Create(ctx context.Context, entity *Employee) (*Employee, error)
	GetByID(ctx context.Context, id int) (*Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, entity *Employee) (*Employee, error)
	GetByStoreID(ctx context.Context, storeID int) ([]Employee, error)
	FindPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[Employee], error)
	FindTopSellers(ctx context.Context) ([]TopSellingEmployee, error)
}
