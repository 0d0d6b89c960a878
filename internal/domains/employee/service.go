package employee

import (
	"context"

	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/shared/pagination"
)

// EmployeeService covers employee CRUD plus the sales queries hanging off
// the employee resource.
type EmployeeService interface {
	GetEmployees(ctx context.Context) ([]*EmployeeResp, error)
	GetEmployeeByID(ctx context.Context, id int) (*EmployeeResp, error)
	CreateEmployee(ctx context.Context, req *CreateEmployeeReq) (*EmployeeResp, error)
	UpdateEmployee(ctx context.Context, id int, req *UpdateEmployeeReq) (*EmployeeResp, error)
	GetSalesByEmployee(ctx context.Context, employeeID int) ([]*sale.SaleResp, error)
	GetEmployeesPaged(ctx context.Context, filters PagedFilters, params pagination.Params) (pagination.Page[*EmployeeResp], error)
	GetTopSellers(ctx context.Context) ([]*TopSellerResp, error)
}
