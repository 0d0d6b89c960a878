package employee

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateEmployeeReq is the request body for POST /v1/employees.
type CreateEmployeeReq struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	HireDate  *time.Time `json:"hireDate"`
	Gender    string     `json:"gender"`
	BirthDate *time.Time `json:"birthDate"`
	StoreID   *int       `json:"storeId"`
	Active    *bool      `json:"active"`
}

func (r CreateEmployeeReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 50)),
	)
}

// UpdateEmployeeReq carries a partial update: nil fields are left untouched.
type UpdateEmployeeReq struct {
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	HireDate  *time.Time `json:"hireDate"`
	Gender    *string    `json:"gender"`
	BirthDate *time.Time `json:"birthDate"`
	StoreID   *int       `json:"storeId"`
	Active    *bool      `json:"active"`
}

func (r UpdateEmployeeReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.LastName, validation.NilOrNotEmpty, validation.Length(1, 50)),
	)
}

// ApplyTo copies the non-nil fields onto the entity. StoreID is handled by
// the service because it needs the referenced store to exist.
func (r UpdateEmployeeReq) ApplyTo(e *Employee) {
	if r.FirstName != nil {
		e.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		e.LastName = *r.LastName
	}
	if r.HireDate != nil {
		e.HireDate = r.HireDate
	}
	if r.Gender != nil {
		e.Gender = *r.Gender
	}
	if r.BirthDate != nil {
		e.BirthDate = r.BirthDate
	}
	if r.Active != nil {
		e.Active = *r.Active
	}
}

// EmployeeResp is the outbound representation of an employee.
type EmployeeResp struct {
	ID        int        `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	HireDate  *time.Time `json:"hireDate,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	StoreID   *int       `json:"storeId,omitempty"`
	Active    bool       `json:"active"`
}

func ToResp(e *Employee) *EmployeeResp {
	return &EmployeeResp{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		HireDate:  e.HireDate,
		Gender:    e.Gender,
		BirthDate: e.BirthDate,
		StoreID:   e.StoreID,
		Active:    e.Active,
	}
}

// PagedFilters are the optional filter inputs for GET /v1/employees/paged.
type PagedFilters struct {
	ID        *int
	FirstName *string
	LastName  *string
}

// TopSellingEmployee is one row of the top-5-employees aggregation, ranked
// by number of sales handled.
type TopSellingEmployee struct {
	ID            int
	FirstName     string
	LastName      string
	StoreID       *int
	NumberOfSales int64
}

// TopSellerResp is the outbound shape of a top-selling employee.
type TopSellerResp struct {
	ID            int    `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	StoreID       *int   `json:"storeId,omitempty"`
	NumberOfSales int64  `json:"numberOfSales"`
}
