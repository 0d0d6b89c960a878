package service

import (
	"context"
	"errors"
	"time"

	"maventoys-backend/internal/domains/employee"
	"maventoys-backend/internal/domains/product"
	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/domains/store"
	"maventoys-backend/internal/shared/apperror"
	"maventoys-backend/internal/shared/pagination"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// StoreFinder, EmployeeFinder and ProductFinder are the slices of the
// sibling repositories the sale workflow needs to resolve references.
type StoreFinder interface {
	GetByID(ctx context.Context, id int) (*store.Store, error)
}

type EmployeeFinder interface {
	GetByID(ctx context.Context, id int) (*employee.Employee, error)
}

type ProductFinder interface {
	GetByID(ctx context.Context, id int) (*product.Product, error)
}

type saleService struct {
	repo      sale.SaleRepository
	stores    StoreFinder
	employees EmployeeFinder
	products  ProductFinder
}

func NewSaleService(
	repo sale.SaleRepository,
	stores StoreFinder,
	employees EmployeeFinder,
	products ProductFinder,
) sale.SaleService {
	return &saleService{
		repo:      repo,
		stores:    stores,
		employees: employees,
		products:  products,
	}
}

// GetSales is the unfiltered paged listing. Sales grow without bound, so
// there is no unpaged variant.
func (s *saleService) GetSales(ctx context.Context, params pagination.Params) (pagination.Page[*sale.SaleResp], error) {
	page, err := s.repo.FindPaged(ctx, sale.PagedFilters{}, params)
	if err != nil {
		return pagination.Page[*sale.SaleResp]{}, apperror.General("Error fetching all sales", err)
	}

	return pagination.Map(page, func(entity sale.Sale) *sale.SaleResp {
		return sale.ToResp(&entity)
	}), nil
}

func (s *saleService) GetSaleByID(ctx context.Context, id int) (*sale.SaleResp, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Sale with ID %d not found.", id)
		}
		return nil, apperror.General("Error fetching sale", err)
	}
	return sale.ToResp(entity), nil
}

// CreateSale resolves every product line, prices it and persists the sale
// header together with its invoices in a single transaction. The total is
// computed server side: subtotal = quantity * price, each line then
// contributes subtotal - subtotal * discount / 100.
func (s *saleService) CreateSale(ctx context.Context, req *sale.CreateSaleReq) (*sale.SaleResp, error) {
	if err := s.resolveStore(ctx, req.StoreID); err != nil {
		return nil, apperror.Classify(err, "Error creating sale")
	}
	if err := s.resolveEmployee(ctx, req.EmployeeID); err != nil {
		return nil, apperror.Classify(err, "Error creating sale")
	}

	total := decimal.Zero
	invoices := make([]sale.Invoice, 0, len(req.Products))
	for _, line := range req.Products {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperror.NotFound("Product not found with ID: %d", line.ProductID)
			}
			return nil, apperror.General("Error creating sale", err)
		}

		subtotal := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		discounted := subtotal.Sub(subtotal.Mul(decimal.NewFromInt(int64(line.Discount))).Div(decimal.NewFromInt(100)))
		total = total.Add(discounted)

		invoices = append(invoices, sale.Invoice{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Discount:  line.Discount,
			Subtotal:  subtotal.InexactFloat64(),
		})
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	entity := &sale.Sale{
		StoreID:    req.StoreID,
		EmployeeID: req.EmployeeID,
		Total:      total.InexactFloat64(),
		Date:       date,
		Invoices:   invoices,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, apperror.General("Error creating sale", err)
	}
	return sale.ToResp(created), nil
}

func (s *saleService) UpdateSale(ctx context.Context, id int, req *sale.UpdateSaleReq) (*sale.SaleResp, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Sale not found with ID: %d", id)
		}
		return nil, apperror.General("Error updating sale", err)
	}

	if req.StoreID != nil {
		if err := s.resolveStore(ctx, *req.StoreID); err != nil {
			return nil, apperror.Classify(err, "Error updating sale")
		}
		entity.StoreID = *req.StoreID
	}
	if req.EmployeeID != nil {
		if err := s.resolveEmployee(ctx, *req.EmployeeID); err != nil {
			return nil, apperror.Classify(err, "Error updating sale")
		}
		entity.EmployeeID = *req.EmployeeID
	}
	if req.Date != nil {
		entity.Date = *req.Date
	}

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, apperror.General("Error updating sale", err)
	}
	return sale.ToResp(updated), nil
}

func (s *saleService) GetSalesByDateRange(ctx context.Context, start, end time.Time) ([]*sale.SaleResp, error) {
	sales, err := s.repo.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, apperror.General("Error fetching sales by date range", err)
	}

	resp := make([]*sale.SaleResp, 0, len(sales))
	for i := range sales {
		resp = append(resp, sale.ToResp(&sales[i]))
	}
	return resp, nil
}

func (s *saleService) GetSalesPaged(
	ctx context.Context,
	filters sale.PagedFilters,
	params pagination.Params,
) (pagination.Page[*sale.SaleResp], error) {
	page, err := s.repo.FindPaged(ctx, filters, params)
	if err != nil {
		return pagination.Page[*sale.SaleResp]{}, apperror.General("Error finding filtered sales", err)
	}

	return pagination.Map(page, func(entity sale.Sale) *sale.SaleResp {
		return sale.ToResp(&entity)
	}), nil
}

func (s *saleService) resolveStore(ctx context.Context, storeID int) error {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("Store not found with ID: %d", storeID)
		}
		return err
	}
	return nil
}

func (s *saleService) resolveEmployee(ctx context.Context, employeeID int) error {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("Employee not found with ID: %d", employeeID)
		}
		return err
	}
	return nil
}
