package service

import (
	"context"
	"errors"
	"time"

	"maventoys-backend/internal/domains/category"
	"maventoys-backend/internal/domains/product"
	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/shared/apperror"
	"maventoys-backend/internal/shared/pagination"

	"github.com/jackc/pgx/v5"
)

// CategoryFinder resolves category references when a product is created or
// recategorized.
type CategoryFinder interface {
	GetByID(ctx context.Context, id int) (*category.Category, error)
}

// SaleFinder is the slice of the sale repository the product service needs.
type SaleFinder interface {
	GetByProductID(ctx context.Context, productID int) ([]sale.Sale, error)
}

const defaultStockOnHand = 1

type productService struct {
	repo       product.ProductRepository
	categories CategoryFinder
	sales      SaleFinder
}

func NewProductService(repo product.ProductRepository, categories CategoryFinder, sales SaleFinder) product.ProductService {
	return &productService{
		repo:       repo,
		categories: categories,
		sales:      sales,
	}
}

func (s *productService) GetProducts(ctx context.Context) ([]*product.ProductResp, error) {
	products, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, apperror.General("Error fetching all active products", err)
	}

	resp := make([]*product.ProductResp, 0, len(products))
	for i := range products {
		resp = append(resp, product.ToResp(&products[i]))
	}
	return resp, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int) (*product.ProductResp, error) {
	entity, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, apperror.Classify(err, "Error fetching product")
	}
	return product.ToResp(entity), nil
}

func (s *productService) CreateProduct(ctx context.Context, req *product.CreateProductReq) (*product.ProductResp, error) {
	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Category not found with ID: %d", req.CategoryID)
		}
		return nil, apperror.General("Error creating product", err)
	}

	entity := &product.Product{
		Name:         req.Name,
		Cost:         req.Cost,
		Price:        req.Price,
		CategoryID:   req.CategoryID,
		CreationDate: time.Now(),
		Active:       true,
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}

	stock := defaultStockOnHand
	if req.StockOnHand != nil {
		stock = *req.StockOnHand
	}

	created, err := s.repo.Create(ctx, entity, stock)
	if err != nil {
		return nil, apperror.General("Error creating product", err)
	}
	return product.ToResp(created), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int, req *product.UpdateProductReq) (*product.ProductResp, error) {
	entity, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, apperror.Classify(err, "Error updating product")
	}

	req.ApplyTo(entity)

	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperror.NotFound("Category not found with ID: %d", *req.CategoryID)
			}
			return nil, apperror.General("Error updating product", err)
		}
		entity.CategoryID = *req.CategoryID
	}

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, apperror.General("Error updating product", err)
	}
	return product.ToResp(updated), nil
}

func (s *productService) GetStock(ctx context.Context, productID int) (*product.StockResp, error) {
	stock, err := s.repo.GetStock(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Product not found with ID: %d", productID)
		}
		return nil, apperror.General("Error fetching stock", err)
	}
	return &product.StockResp{Stock: stock}, nil
}

func (s *productService) GetSalesByProduct(ctx context.Context, productID int) ([]*sale.SaleResp, error) {
	sales, err := s.sales.GetByProductID(ctx, productID)
	if err != nil {
		return nil, apperror.General("Error finding sales", err)
	}
	if len(sales) == 0 {
		return nil, apperror.NotFound("No sales found for product ID: %d", productID)
	}

	resp := make([]*sale.SaleResp, 0, len(sales))
	for i := range sales {
		resp = append(resp, sale.ToResp(&sales[i]))
	}
	return resp, nil
}

// GetPriceHistory returns every product row sharing the given product's
// name, newest first. Re-listing a product under the same name is how a
// price change is recorded.
func (s *productService) GetPriceHistory(ctx context.Context, productID int) ([]*product.PriceHistoryResp, error) {
	entity, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, apperror.Classify(err, "Error fetching price history")
	}

	history, err := s.repo.GetByName(ctx, entity.Name)
	if err != nil {
		return nil, apperror.General("Error fetching price history", err)
	}

	resp := make([]*product.PriceHistoryResp, 0, len(history))
	for i := range history {
		resp = append(resp, &product.PriceHistoryResp{
			ID:           history[i].ID,
			Price:        history[i].Price,
			CreationDate: history[i].CreationDate,
		})
	}
	return resp, nil
}

func (s *productService) GetProductsPaged(
	ctx context.Context,
	filters product.PagedFilters,
	params pagination.Params,
) (pagination.Page[*product.ProductResp], error) {
	page, err := s.repo.FindPaged(ctx, filters, params)
	if err != nil {
		return pagination.Page[*product.ProductResp]{}, apperror.General("Error finding filtered products", err)
	}

	return pagination.Map(page, func(entity product.Product) *product.ProductResp {
		return product.ToResp(&entity)
	}), nil
}

// GetBestSellersByCategory does not verify the category id; an unknown
// category produces an empty list.
func (s *productService) GetBestSellersByCategory(ctx context.Context, categoryID int) ([]*product.BestSellerResp, error) {
	best, err := s.repo.FindBestSellersByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperror.General("Error finding best sellers", err)
	}

	resp := make([]*product.BestSellerResp, 0, len(best))
	for _, row := range best {
		resp = append(resp, &product.BestSellerResp{
			ID:            row.ID,
			Name:          row.Name,
			TotalQuantity: row.TotalQuantity,
		})
	}
	return resp, nil
}

func (s *productService) findProduct(ctx context.Context, id int) (*product.Product, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Product not found with ID: %d", id)
		}
		return nil, err
	}
	return entity, nil
}
