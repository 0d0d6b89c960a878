package product

import (
	"context"

	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/shared/pagination"
)

// ProductService covers product CRUD, stock, price history and the sales
// queries hanging off the product resource.
type ProductService interface {
	GetProducts(ctx context.Context) ([]*ProductResp, error)
	GetProductByID(ctx context.Context, id int) (*ProductResp, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductResp, error)
	UpdateProduct(ctx context.Context, id int, req *UpdateProductReq) (*ProductResp, error)
	GetStock(ctx context.Context, productID int) (*StockResp, error)
	GetSalesByProduct(ctx context.Context, productID int) ([]*sale.SaleResp, error)
	GetPriceHistory(ctx context.Context, productID int) ([]*PriceHistoryResp, error)
	GetProductsPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[*ProductResp], error)
	GetBestSellersByCategory(ctx context.Context, categoryID int) ([]*BestSellerResp, error)
}
