package service

import (
	"context"
	"testing"
	"time"

	"maventoys-backend/internal/domains/category"
	"maventoys-backend/internal/domains/product"
	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/shared/apperror"
	"maventoys-backend/internal/shared/pagination"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products  map[int]product.Product
	stocks    map[int]int
	nextID    int
	lastStock int
}

func newFakeProductRepo(products ...product.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products: make(map[int]product.Product),
		stocks:   make(map[int]int),
		nextID:   1,
	}
	for _, p := range products {
		r.products[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, entity *product.Product, stockOnHand int) (*product.Product, error) {
	created := *entity
	created.ID = r.nextID
	r.nextID++
	r.products[created.ID] = created
	r.stocks[created.ID] = stockOnHand
	r.lastStock = stockOnHand
	return &created, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (r *fakeProductRepo) GetActive(_ context.Context) ([]product.Product, error) {
	var active []product.Product
	for _, p := range r.products {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

func (r *fakeProductRepo) Update(_ context.Context, entity *product.Product) (*product.Product, error) {
	if _, ok := r.products[entity.ID]; !ok {
		return nil, pgx.ErrNoRows
	}
	r.products[entity.ID] = *entity
	updated := *entity
	return &updated, nil
}

func (r *fakeProductRepo) GetByCategoryID(_ context.Context, categoryID int) ([]product.Product, error) {
	var out []product.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) ([]product.Product, error) {
	var out []product.Product
	for _, p := range r.products {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetStock(_ context.Context, productID int) (int, error) {
	stock, ok := r.stocks[productID]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	return stock, nil
}

func (r *fakeProductRepo) FindPaged(
	_ context.Context,
	_ product.PagedFilters,
	params pagination.Params,
) (pagination.Page[product.Product], error) {
	all, _ := r.GetActive(context.Background())
	return pagination.NewPage(all, params, int64(len(all))), nil
}

func (r *fakeProductRepo) FindBestSellersByCategory(_ context.Context, _ int) ([]product.BestSeller, error) {
	return nil, nil
}

type fakeCategoryFinder struct{ ids map[int]bool }

func (f *fakeCategoryFinder) GetByID(_ context.Context, id int) (*category.Category, error) {
	if !f.ids[id] {
		return nil, pgx.ErrNoRows
	}
	return &category.Category{ID: id, Name: "Toys", Active: true}, nil
}

type fakeSaleFinder struct{ byProduct map[int][]sale.Sale }

func (f *fakeSaleFinder) GetByProductID(_ context.Context, productID int) ([]sale.Sale, error) {
	return f.byProduct[productID], nil
}

func newTestService(repo *fakeProductRepo) product.ProductService {
	return NewProductService(
		repo,
		&fakeCategoryFinder{ids: map[int]bool{1: true}},
		&fakeSaleFinder{byProduct: map[int][]sale.Sale{}},
	)
}

func TestCreateProductDefaultsStockToOne(t *testing.T) {
	repo := newFakeProductRepo()
	svc := newTestService(repo)

	resp, err := svc.CreateProduct(context.Background(), &product.CreateProductReq{
		Name:       "Plush Bear",
		Cost:       4.5,
		Price:      9.99,
		CategoryID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastStock)
	assert.True(t, resp.Active)
	assert.WithinDuration(t, time.Now(), resp.CreationDate, time.Minute)
}

func TestCreateProductSeedsRequestedStock(t *testing.T) {
	repo := newFakeProductRepo()
	svc := newTestService(repo)

	stock := 40
	_, err := svc.CreateProduct(context.Background(), &product.CreateProductReq{
		Name:        "Toy Car",
		Price:       4.0,
		CategoryID:  1,
		StockOnHand: &stock,
	})

	require.NoError(t, err)
	assert.Equal(t, 40, repo.lastStock)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc := newTestService(newFakeProductRepo())

	_, err := svc.CreateProduct(context.Background(), &product.CreateProductReq{
		Name:       "Kite",
		Price:      3.0,
		CategoryID: 3,
	})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Category not found with ID: 3", err.Error())
}

func TestUpdateProductPartialKeepsCreationDate(t *testing.T) {
	created := time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)
	repo := newFakeProductRepo(product.Product{
		ID: 1, Name: "Plush Bear", Cost: 4.5, Price: 9.99,
		CategoryID: 1, CreationDate: created, Active: true,
	})
	svc := newTestService(repo)

	price := 12.99
	resp, err := svc.UpdateProduct(context.Background(), 1, &product.UpdateProductReq{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, 12.99, resp.Price)
	assert.Equal(t, "Plush Bear", resp.Name)
	assert.Equal(t, created, resp.CreationDate)
}

func TestUpdateProductUnknownCategory(t *testing.T) {
	repo := newFakeProductRepo(product.Product{ID: 1, Name: "Plush Bear", CategoryID: 1})
	svc := newTestService(repo)

	categoryID := 77
	_, err := svc.UpdateProduct(context.Background(), 1, &product.UpdateProductReq{CategoryID: &categoryID})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Category not found with ID: 77", err.Error())
}

func TestGetStockNotFound(t *testing.T) {
	svc := newTestService(newFakeProductRepo())

	_, err := svc.GetStock(context.Background(), 12)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Product not found with ID: 12", err.Error())
}

func TestGetSalesByProductEmptyIsNotFound(t *testing.T) {
	repo := newFakeProductRepo(product.Product{ID: 1, Name: "Plush Bear"})
	svc := newTestService(repo)

	_, err := svc.GetSalesByProduct(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "No sales found for product ID: 1", err.Error())
}

func TestGetPriceHistoryByName(t *testing.T) {
	repo := newFakeProductRepo(
		product.Product{ID: 1, Name: "Plush Bear", Price: 9.99, CreationDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		product.Product{ID: 2, Name: "Plush Bear", Price: 12.99, CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		product.Product{ID: 3, Name: "Toy Car", Price: 4.0},
	)
	svc := newTestService(repo)

	resp, err := svc.GetPriceHistory(context.Background(), 1)

	require.NoError(t, err)
	// Every listing sharing the name is part of the history; the unrelated
	// product is not.
	assert.Len(t, resp, 2)
}

func TestGetBestSellersUnknownCategoryIsEmptySuccess(t *testing.T) {
	svc := newTestService(newFakeProductRepo())

	resp, err := svc.GetBestSellersByCategory(context.Background(), 8)

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}
