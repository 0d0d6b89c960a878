package sale

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SaleLineReq is one product line of a sale creation request.
type SaleLineReq struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
	Discount  int `json:"discount"`
}

func (r SaleLineReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&r.Discount, validation.Min(0), validation.Max(100)),
	)
}

// CreateSaleReq is the request body for POST /v1/sales. Date defaults to
// the server time when omitted.
type CreateSaleReq struct {
	StoreID    int           `json:"storeId"`
	EmployeeID int           `json:"employeeId"`
	Date       *time.Time    `json:"date"`
	Products   []SaleLineReq `json:"products"`
}

func (r CreateSaleReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StoreID, validation.Required),
		validation.Field(&r.EmployeeID, validation.Required),
		validation.Field(&r.Products, validation.Required, validation.Length(1, 0)),
	)
}

// UpdateSaleReq carries a partial update of the sale header: nil fields are
// left untouched. Invoice lines are immutable once written.
type UpdateSaleReq struct {
	StoreID    *int       `json:"storeId"`
	EmployeeID *int       `json:"employeeId"`
	Date       *time.Time `json:"date"`
}

// InvoiceResp is one invoice line in a sale response.
type InvoiceResp struct {
	ID        int64   `json:"id"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Discount  int     `json:"discount"`
	Subtotal  float64 `json:"subtotal"`
}

// SaleResp is the outbound representation of a sale.
type SaleResp struct {
	ID         int           `json:"id"`
	StoreID    int           `json:"storeId"`
	EmployeeID int           `json:"employeeId"`
	Total      float64       `json:"total"`
	Date       time.Time     `json:"date"`
	Products   []InvoiceResp `json:"products,omitempty"`
}

func ToResp(s *Sale) *SaleResp {
	resp := &SaleResp{
		ID:         s.ID,
		StoreID:    s.StoreID,
		EmployeeID: s.EmployeeID,
		Total:      s.Total,
		Date:       s.Date,
	}
	for _, inv := range s.Invoices {
		resp.Products = append(resp.Products, InvoiceResp{
			ID:        inv.ID,
			ProductID: inv.ProductID,
			Quantity:  inv.Quantity,
			Discount:  inv.Discount,
			Subtotal:  inv.Subtotal,
		})
	}
	return resp
}

// PagedFilters are the optional filter inputs for GET /v1/sales/paged.
type PagedFilters struct {
	ID         *int
	StoreID    *int
	EmployeeID *int
}
