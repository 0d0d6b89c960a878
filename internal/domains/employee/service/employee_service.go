package service

import (
	"context"
	"errors"

	"maventoys-backend/internal/domains/employee"
	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/domains/store"
	"maventoys-backend/internal/shared/apperror"
	"maventoys-backend/internal/shared/pagination"

	"github.com/jackc/pgx/v5"
)

// StoreFinder resolves store references when an employee is created or
// reassigned.
type StoreFinder interface {
	GetByID(ctx context.Context, id int) (*store.Store, error)
}

// SaleFinder is the slice of the sale repository the employee service needs.
type SaleFinder interface {
	GetByEmployeeID(ctx context.Context, employeeID int) ([]sale.Sale, error)
}

type employeeService struct {
	repo   employee.EmployeeRepository
	stores StoreFinder
	sales  SaleFinder
}

func NewEmployeeService(repo employee.EmployeeRepository, stores StoreFinder, sales SaleFinder) employee.EmployeeService {
	return &employeeService{
		repo:   repo,
		stores: stores,
		sales:  sales,
	}
}

func (s *employeeService) GetEmployees(ctx context.Context) ([]*employee.EmployeeResp, error) {
	employees, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, apperror.General("Error fetching all active employees", err)
	}

	resp := make([]*employee.EmployeeResp, 0, len(employees))
	for i := range employees {
		resp = append(resp, employee.ToResp(&employees[i]))
	}
	return resp, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, id int) (*employee.EmployeeResp, error) {
	entity, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, apperror.Classify(err, "Error fetching employee")
	}
	return employee.ToResp(entity), nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req *employee.CreateEmployeeReq) (*employee.EmployeeResp, error) {
	entity := &employee.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		HireDate:  req.HireDate,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
		Active:    true,
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}

	if req.StoreID != nil {
		if err := s.resolveStore(ctx, *req.StoreID); err != nil {
			return nil, apperror.Classify(err, "Error creating employee")
		}
		entity.StoreID = req.StoreID
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, apperror.General("Error creating employee", err)
	}
	return employee.ToResp(created), nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id int, req *employee.UpdateEmployeeReq) (*employee.EmployeeResp, error) {
	entity, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, apperror.Classify(err, "Error updating employee")
	}

	req.ApplyTo(entity)

	if req.StoreID != nil {
		if err := s.resolveStore(ctx, *req.StoreID); err != nil {
			return nil, apperror.Classify(err, "Error updating employee")
		}
		entity.StoreID = req.StoreID
	}

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, apperror.General("Error updating employee", err)
	}
	return employee.ToResp(updated), nil
}

func (s *employeeService) GetSalesByEmployee(ctx context.Context, employeeID int) ([]*sale.SaleResp, error) {
	sales, err := s.sales.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, apperror.General("Error finding sales", err)
	}
	if len(sales) == 0 {
		return nil, apperror.NotFound("No sales found for employee ID %d", employeeID)
	}

	resp := make([]*sale.SaleResp, 0, len(sales))
	for i := range sales {
		resp = append(resp, sale.ToResp(&sales[i]))
	}
	return resp, nil
}

func (s *employeeService) GetEmployeesPaged(
	ctx context.Context,
	filters employee.PagedFilters,
	params pagination.Params,
) (pagination.Page[*employee.EmployeeResp], error) {
	page, err := s.repo.FindPaged(ctx, filters, params)
	if err != nil {
		return pagination.Page[*employee.EmployeeResp]{}, apperror.General("Error finding filtered employees", err)
	}

	return pagination.Map(page, func(entity employee.Employee) *employee.EmployeeResp {
		return employee.ToResp(&entity)
	}), nil
}

func (s *employeeService) GetTopSellers(ctx context.Context) ([]*employee.TopSellerResp, error) {
	top, err := s.repo.FindTopSellers(ctx)
	if err != nil {
		return nil, apperror.General("Error finding top selling employees", err)
	}

	resp := make([]*employee.TopSellerResp, 0, len(top))
	for _, row := range top {
		resp = append(resp, &employee.TopSellerResp{
			ID:            row.ID,
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			StoreID:       row.StoreID,
			NumberOfSales: row.NumberOfSales,
		})
	}
	return resp, nil
}

func (s *employeeService) findEmployee(ctx context.Context, id int) (*employee.Employee, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Employee not found with ID: %d", id)
		}
		return nil, err
	}
	return entity, nil
}

func (s *employeeService) resolveStore(ctx context.Context, storeID int) error {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("Store not found with ID: %d", storeID)
		}
		return err
	}
	return nil
}
