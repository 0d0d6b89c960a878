package store

import (
	"context"

	"maventoys-backend/internal/shared/pagination"
)

// StoreRepository is the data access contract for stores. Lookups that match
// no row return pgx.ErrNoRows; the service layer owns the client-facing
// messages.
type StoreRepository interface {
	Create(ctx context.Context, entity *Store) (*Store, error)
	GetByID(ctx context.Context, id int) (*Store, error)
	GetActive(ctx context.Context) ([]Store, error)
	Update(ctx context.Context, entity *Store) (*Store, error)
	FindPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[Store], error)
	FindTopSellers(ctx context.Context) ([]TopSellingStore, error)
}
