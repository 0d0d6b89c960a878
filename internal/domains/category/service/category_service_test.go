package service

import (
	"context"
	"testing"

	"maventoys-backend/internal/domains/category"
	"maventoys-backend/internal/domains/product"
	"maventoys-backend/internal/shared/apperror"
	"maventoys-backend/internal/shared/pagination"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	categories map[int]category.Category
	nextID     int
	salesRows  []category.CategorySales
}

func newFakeCategoryRepo(categories ...category.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[int]category.Category), nextID: 1}
	for _, c := range categories {
		r.categories[c.ID] = c
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *fakeCategoryRepo) Create(_ context.Context, entity *category.Category) (*category.Category, error) {
	created := *entity
	created.ID = r.nextID
	r.nextID++
	r.categories[created.ID] = created
	return &created, nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int) (*category.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (r *fakeCategoryRepo) GetActive(_ context.Context) ([]category.Category, error) {
	var active []category.Category
	for _, c := range r.categories {
		if c.Active {
			active = append(active, c)
		}
	}
	return active, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, entity *category.Category) (*category.Category, error) {
	if _, ok := r.categories[entity.ID]; !ok {
		return nil, pgx.ErrNoRows
	}
	r.categories[entity.ID] = *entity
	updated := *entity
	return &updated, nil
}

func (r *fakeCategoryRepo) FindPaged(
	_ context.Context,
	_ category.PagedFilters,
	params pagination.Params,
) (pagination.Page[category.Category], error) {
	all, _ := r.GetActive(context.Background())
	return pagination.NewPage(all, params, int64(len(all))), nil
}

func (r *fakeCategoryRepo) FindSalesTotals(_ context.Context) ([]category.CategorySales, error) {
	return r.salesRows, nil
}

type fakeProductFinder struct{ byCategory map[int][]product.Product }

func (f *fakeProductFinder) GetByCategoryID(_ context.Context, categoryID int) ([]product.Product, error) {
	return f.byCategory[categoryID], nil
}

func newTestService(repo *fakeCategoryRepo) category.CategoryService {
	return NewCategoryService(repo, &fakeProductFinder{byCategory: map[int][]product.Product{}})
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	svc := newTestService(newFakeCategoryRepo())

	_, err := svc.GetCategoryByID(context.Background(), 6)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Category not found with the ID: 6", err.Error())
}

func TestUpdateCategoryPartial(t *testing.T) {
	repo := newFakeCategoryRepo(category.Category{ID: 1, Name: "Toys", Active: true})
	svc := newTestService(repo)

	active := false
	resp, err := svc.UpdateCategory(context.Background(), 1, &category.UpdateCategoryReq{Active: &active})

	require.NoError(t, err)
	assert.Equal(t, "Toys", resp.Name)
	assert.False(t, resp.Active)
}

func TestGetProductsByCategoryEmptyIsNotFound(t *testing.T) {
	repo := newFakeCategoryRepo(category.Category{ID: 1, Name: "Toys", Active: true})
	svc := newTestService(repo)

	_, err := svc.GetProductsByCategory(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "No products found for category ID: 1", err.Error())
}

func TestGetSalesByCategoryMapsRows(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.salesRows = []category.CategorySales{
		{ID: 2, Name: "Plush", TotalSales: 500.25},
		{ID: 1, Name: "Games", TotalSales: 100},
	}
	svc := newTestService(repo)

	resp, err := svc.GetSalesByCategory(context.Background())

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Plush", resp[0].Name)
	assert.Equal(t, 500.25, resp[0].TotalSales)
}

func TestCreateCategoryDefaultsActive(t *testing.T) {
	svc := newTestService(newFakeCategoryRepo())

	resp, err := svc.CreateCategory(context.Background(), &category.CreateCategoryReq{Name: "Electronics"})

	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.NotZero(t, resp.ID)
}
