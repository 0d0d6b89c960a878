package service

import (
	"context"
	"errors"
	"time"

	"maventoys-backend/internal/domains/employee"
	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/domains/store"
	"maventoys-backend/internal/shared/apperror"
	"maventoys-backend/internal/shared/pagination"

	"github.com/jackc/pgx/v5"
)

// EmployeeFinder is the slice of the employee repository the store service
// needs.
type EmployeeFinder interface {
	GetByStoreID(ctx context.Context, storeID int) ([]employee.Employee, error)
}

// SaleFinder is the slice of the sale repository the store service needs.
type SaleFinder interface {
	GetByStoreID(ctx context.Context, storeID int) ([]sale.Sale, error)
	SumTotalByStore(ctx context.Context, storeID int) (float64, error)
}

type storeService struct {
	repo      store.StoreRepository
	employees EmployeeFinder
	sales     SaleFinder
}

func NewStoreService(repo store.StoreRepository, employees EmployeeFinder, sales SaleFinder) store.StoreService {
	return &storeService{
		repo:      repo,
		employees: employees,
		sales:     sales,
	}
}

func (s *storeService) GetStores(ctx context.Context) ([]*store.StoreResp, error) {
	stores, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, apperror.General("Error fetching all active stores", err)
	}

	resp := make([]*store.StoreResp, 0, len(stores))
	for i := range stores {
		resp = append(resp, store.ToResp(&stores[i]))
	}
	return resp, nil
}

func (s *storeService) GetStoreByID(ctx context.Context, id int) (*store.StoreResp, error) {
	entity, err := s.findStore(ctx, id)
	if err != nil {
		return nil, apperror.Classify(err, "Error fetching store")
	}
	return store.ToResp(entity), nil
}

func (s *storeService) CreateStore(ctx context.Context, req *store.CreateStoreReq) (*store.StoreResp, error) {
	entity := &store.Store{
		Name:     req.Name,
		City:     req.City,
		Location: req.Location,
		OpenDate: req.OpenDate,
		Active:   true,
	}
	if entity.OpenDate == nil {
		now := time.Now()
		entity.OpenDate = &now
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, apperror.General("Error creating store", err)
	}
	return store.ToResp(created), nil
}

func (s *storeService) UpdateStore(ctx context.Context, id int, req *store.UpdateStoreReq) (*store.StoreResp, error) {
	entity, err := s.findStore(ctx, id)
	if err != nil {
		return nil, apperror.Classify(err, "Error updating store")
	}

	req.ApplyTo(entity)

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, apperror.General("Error updating store", err)
	}
	return store.ToResp(updated), nil
}

// GetEmployeesByStore runs the query without verifying the store id; an
// unknown store simply yields an empty list.
func (s *storeService) GetEmployeesByStore(ctx context.Context, storeID int) ([]*employee.EmployeeResp, error) {
	employees, err := s.employees.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, apperror.General("Error finding employees", err)
	}

	resp := make([]*employee.EmployeeResp, 0, len(employees))
	for i := range employees {
		resp = append(resp, employee.ToResp(&employees[i]))
	}
	return resp, nil
}

func (s *storeService) GetSalesByStore(ctx context.Context, storeID int) ([]*sale.SaleResp, error) {
	sales, err := s.sales.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, apperror.General("Error finding sales", err)
	}
	if len(sales) == 0 {
		return nil, apperror.NotFound("No sales found for store ID: %d", storeID)
	}

	resp := make([]*sale.SaleResp, 0, len(sales))
	for i := range sales {
		resp = append(resp, sale.ToResp(&sales[i]))
	}
	return resp, nil
}

// GetTotalSalesByStore sums without looking the store up first. A store
// with no sales, or an id with no store row at all, totals 0.0.
func (s *storeService) GetTotalSalesByStore(ctx context.Context, storeID int) (float64, error) {
	total, err := s.sales.SumTotalByStore(ctx, storeID)
	if err != nil {
		return 0, apperror.General("Error calculating total sales", err)
	}
	return total, nil
}

func (s *storeService) GetStoresPaged(
	ctx context.Context,
	filters store.PagedFilters,
	params pagination.Params,
) (pagination.Page[*store.StoreResp], error) {
	page, err := s.repo.FindPaged(ctx, filters, params)
	if err != nil {
		return pagination.Page[*store.StoreResp]{}, apperror.General("Error finding filtered stores", err)
	}

	return pagination.Map(page, func(entity store.Store) *store.StoreResp {
		return store.ToResp(&entity)
	}), nil
}

func (s *storeService) GetTopSellingStores(ctx context.Context) ([]*store.TopSellerResp, error) {
	top, err := s.repo.FindTopSellers(ctx)
	if err != nil {
		return nil, apperror.General("Error finding top selling stores", err)
	}

	resp := make([]*store.TopSellerResp, 0, len(top))
	for _, row := range top {
		resp = append(resp, &store.TopSellerResp{
			ID:         row.ID,
			Name:       row.Name,
			TotalSales: row.TotalSales,
		})
	}
	return resp, nil
}

func (s *storeService) findStore(ctx context.Context, id int) (*store.Store, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Store not found with ID: %d", id)
		}
		return nil, err
	}
	return entity, nil
}
