package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCategoryReq is the request body for POST /v1/categories.
type CreateCategoryReq struct {
	Name   string `json:"name"`
	Active *bool  `json:"active"`
}

func (r CreateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

// UpdateCategoryReq carries a partial update: nil fields are left untouched.
type UpdateCategoryReq struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

func (r UpdateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

// ApplyTo copies the non-nil fields onto the entity.
func (r UpdateCategoryReq) ApplyTo(c *Category) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
}

// CategoryResp is the outbound representation of a category.
type CategoryResp struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func ToResp(c *Category) *CategoryResp {
	return &CategoryResp{
		ID:     c.ID,
		Name:   c.Name,
		Active: c.Active,
	}
}

// PagedFilters are the optional filter inputs for GET /v1/categories/paged.
type PagedFilters struct {
	ID   *int
	Name *string
}

// CategorySales is one row of the sales-per-category aggregation.
type CategorySales struct {
	ID         int
	Name       string
	TotalSales float64
}

// CategorySalesResp is the outbound shape of a per-category sales total.
type CategorySalesResp struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	TotalSales float64 `json:"totalSales"`
}
