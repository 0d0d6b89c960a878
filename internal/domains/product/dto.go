package product

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateProductReq is the request body for POST /v1/products. StockOnHand
// seeds the inventory row; when omitted it defaults to 1.
type CreateProductReq struct {
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"categoryId"`
	Active      *bool   `json:"active"`
	StockOnHand *int    `json:"stockOnHand"`
}

func (r CreateProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Cost, validation.Min(0.0)),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.CategoryID, validation.Required),
		validation.Field(&r.StockOnHand, validation.Min(0)),
	)
}

// UpdateProductReq carries a partial update: nil fields are left untouched.
// ID and CreationDate are immutable and have no counterpart here. CategoryID
// is resolved by the service before being applied.
type UpdateProductReq struct {
	Name       *string  `json:"name"`
	Cost       *float64 `json:"cost"`
	Price      *float64 `json:"price"`
	CategoryID *int     `json:"categoryId"`
	Active     *bool    `json:"active"`
}

func (r UpdateProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Cost, validation.Min(0.0)),
		validation.Field(&r.Price, validation.Min(0.0)),
	)
}

// ApplyTo copies the non-nil fields onto the entity, except CategoryID.
func (r UpdateProductReq) ApplyTo(p *Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Cost != nil {
		p.Cost = *r.Cost
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
}

// ProductResp is the outbound representation of a product.
type ProductResp struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Cost         float64   `json:"cost"`
	Price        float64   `json:"price"`
	CategoryID   int       `json:"categoryId"`
	CreationDate time.Time `json:"creationDate"`
	Active       bool      `json:"active"`
}

func ToResp(p *Product) *ProductResp {
	return &ProductResp{
		ID:           p.ID,
		Name:         p.Name,
		Cost:         p.Cost,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		CreationDate: p.CreationDate,
		Active:       p.Active,
	}
}

// StockResp is the body of GET /v1/products/:id/stock.
type StockResp struct {
	Stock int `json:"stock"`
}

// PriceHistoryResp is one entry of the price history for a product name.
type PriceHistoryResp struct {
	ID           int       `json:"id"`
	Price        float64   `json:"price"`
	CreationDate time.Time `json:"creationDate"`
}

// PagedFilters are the optional filter inputs for GET /v1/products/paged.
type PagedFilters struct {
	ID   *int
	Name *string
}

// BestSeller is one row of the best-sellers-per-category aggregation,
// ranked by total units sold.
type BestSeller struct {
	ID            int
	Name          string
	TotalQuantity int64
}

// BestSellerResp is the outbound shape of a best-selling product.
type BestSellerResp struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	TotalQuantity int64  `json:"totalQuantity"`
}
