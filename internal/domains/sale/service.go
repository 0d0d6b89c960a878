package sale

import (
	"context"
	"time"

	"maventoys-backend/internal/shared/pagination"
)

// SaleService covers sale reads, the sale creation workflow and header
// updates.
type SaleService interface {
	GetSales(ctx context.Context, params pagination.Params) (pagination.Page[*SaleResp], error)
	GetSaleByID(ctx context.Context, id int) (*SaleResp, error)
	CreateSale(ctx context.Context, req *CreateSaleReq) (*SaleResp, error)
	UpdateSale(ctx context.Context, id int, req *UpdateSaleReq) (*SaleResp, error)
	GetSalesByDateRange(ctx context.Context, start, end time.Time) ([]*SaleResp, error)
	GetSalesPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[*SaleResp], error)
}
