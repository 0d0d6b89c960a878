package product

import (
	"context"

	"maventoys-backend/internal/shared/pagination"
)

// ProductRepository is the data access contract for products and their
// inventory rows. Lookups that match no row return pgx.ErrNoRows.
type ProductRepository interface {
	// Create inserts the product and its inventory row in one transaction.
	Create(ctx context.Context, entity *Product, stockOnHand int) (*Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	GetActive(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, entity *Product) (*Product, error)
	GetByCategoryID(ctx context.Context, categoryID int) ([]Product, error)
	// GetByName returns every product sharing the name, newest first.
	GetByName(ctx context.Context, name string) ([]Product, error)
	GetStock(ctx context.Context, productID int) (int, error)
	FindPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[Product], error)
	FindBestSellersByCategory(ctx context.Context, categoryID int) ([]BestSeller, error)
}
