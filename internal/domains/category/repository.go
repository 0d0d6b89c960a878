package category

import (
	"context"

	"maventoys-backend/internal/shared/pagination"
)

// CategoryRepository is the data access contract for categories. Lookups
// that match no row return pgx.ErrNoRows.
type CategoryRepository interface {
	Create(ctx context.Context, entity *Category) (*Category, error)
	GetByID(ctx context.Context, id int) (*Category, error)
	GetActive(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, entity *Category) (*Category, error)
	FindPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[Category], error)
	// FindSalesTotals sums sale totals per active category, highest first.
	FindSalesTotals(ctx context.Context) ([]CategorySales, error)
}
