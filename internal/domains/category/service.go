package category

import (
	"context"

	"maventoys-backend/internal/domains/product"
	"maventoys-backend/internal/shared/pagination"
)

// CategoryService covers category CRUD plus the product and sales queries
// hanging off the category resource.
type CategoryService interface {
	GetCategories(ctx context.Context) ([]*CategoryResp, error)
	GetCategoryByID(ctx context.Context, id int) (*CategoryResp, error)
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*CategoryResp, error)
	UpdateCategory(ctx context.Context, id int, req *UpdateCategoryReq) (*CategoryResp, error)
	GetProductsByCategory(ctx context.Context, categoryID int) ([]*product.ProductResp, error)
	GetCategoriesPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[*CategoryResp], error)
	GetSalesByCategory(ctx context.Context) ([]*CategorySalesResp, error)
}
