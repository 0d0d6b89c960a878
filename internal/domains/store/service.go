package store

import (
	"context"

	"maventoys-backend/internal/domains/employee"
	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/shared/pagination"
)

// StoreService covers store CRUD plus the cross-entity queries hanging off
// the store resource.
type StoreService interface {
	GetStores(ctx context.Context) ([]*StoreResp, error)
	GetStoreByID(ctx context.Context, id int) (*StoreResp, error)
	CreateStore(ctx context.Context, req *CreateStoreReq) (*StoreResp, error)
	UpdateStore(ctx context.Context, id int, req *UpdateStoreReq) (*StoreResp, error)
	GetEmployeesByStore(ctx context.Context, storeID int) ([]*employee.EmployeeResp, error)
	GetSalesByStore(ctx context.Context, storeID int) ([]*sale.SaleResp, error)
	GetTotalSalesByStore(ctx context.Context, storeID int) (float64, error)
	GetStoresPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[*StoreResp], error)
	GetTopSellingStores(ctx context.Context) ([]*TopSellerResp, error)
}
