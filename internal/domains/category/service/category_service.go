package service

import (
	"context"
	"errors"

	"maventoys-backend/internal/domains/category"
	"maventoys-backend/internal/domains/product"
	"maventoys-backend/internal/shared/apperror"
	"maventoys-backend/internal/shared/pagination"

	"github.com/jackc/pgx/v5"
)

// ProductFinder is the slice of the product repository the category service
// needs.
type ProductFinder interface {
	GetByCategoryID(ctx context.Context, categoryID int) ([]product.Product, error)
}

type categoryService struct {
	repo     category.CategoryRepository
	products ProductFinder
}

func NewCategoryService(repo category.CategoryRepository, products ProductFinder) category.CategoryService {
	return &categoryService{
		repo:     repo,
		products: products,
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*category.CategoryResp, error) {
	categories, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, apperror.General("Error fetching all active categories", err)
	}

	resp := make([]*category.CategoryResp, 0, len(categories))
	for i := range categories {
		resp = append(resp, category.ToResp(&categories[i]))
	}
	return resp, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int) (*category.CategoryResp, error) {
	entity, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, apperror.Classify(err, "Error fetching category")
	}
	return category.ToResp(entity), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *category.CreateCategoryReq) (*category.CategoryResp, error) {
	entity := &category.Category{
		Name:   req.Name,
		Active: true,
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, apperror.General("Error creating category", err)
	}
	return category.ToResp(created), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int, req *category.UpdateCategoryReq) (*category.CategoryResp, error) {
	entity, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, apperror.Classify(err, "Error updating category")
	}

	req.ApplyTo(entity)

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, apperror.General("Error updating category", err)
	}
	return category.ToResp(updated), nil
}

func (s *categoryService) GetProductsByCategory(ctx context.Context, categoryID int) ([]*product.ProductResp, error) {
	products, err := s.products.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, apperror.General("Error finding products", err)
	}
	if len(products) == 0 {
		return nil, apperror.NotFound("No products found for category ID: %d", categoryID)
	}

	resp := make([]*product.ProductResp, 0, len(products))
	for i := range products {
		resp = append(resp, product.ToResp(&products[i]))
	}
	return resp, nil
}

func (s *categoryService) GetCategoriesPaged(
	ctx context.Context,
	filters category.PagedFilters,
	params pagination.Params,
) (pagination.Page[*category.CategoryResp], error) {
	page, err := s.repo.FindPaged(ctx, filters, params)
	if err != nil {
		return pagination.Page[*category.CategoryResp]{}, apperror.General("Error finding filtered categories", err)
	}

	return pagination.Map(page, func(entity category.Category) *category.CategoryResp {
		return category.ToResp(&entity)
	}), nil
}

func (s *categoryService) GetSalesByCategory(ctx context.Context) ([]*category.CategorySalesResp, error) {
	totals, err := s.repo.FindSalesTotals(ctx)
	if err != nil {
		return nil, apperror.General("Error aggregating category sales", err)
	}

	resp := make([]*category.CategorySalesResp, 0, len(totals))
	for _, row := range totals {
		resp = append(resp, &category.CategorySalesResp{
			ID:         row.ID,
			Name:       row.Name,
			TotalSales: row.TotalSales,
		})
	}
	return resp, nil
}

func (s *categoryService) findCategory(ctx context.Context, id int) (*category.Category, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Category not found with the ID: %d", id)
		}
		return nil, err
	}
	return entity, nil
}
