package store

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateStoreReq is the request body for POST /v1/stores.
type CreateStoreReq struct {
	Name     string     `json:"name"`
	City     string     `json:"city"`
	Location string     `json:"location"`
	OpenDate *time.Time `json:"openDate"`
	Active   *bool      `json:"active"`
}

func (r CreateStoreReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.City, validation.Required),
		validation.Field(&r.Location, validation.Required),
	)
}

// UpdateStoreReq carries a partial update: nil fields are left untouched.
// ID and OpenDate are immutable and have no counterpart here.
type UpdateStoreReq struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Location *string `json:"location"`
	Active   *bool   `json:"active"`
}

func (r UpdateStoreReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

// ApplyTo copies the non-nil fields onto the entity.
func (r UpdateStoreReq) ApplyTo(s *Store) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.City != nil {
		s.City = *r.City
	}
	if r.Location != nil {
		s.Location = *r.Location
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
}

// StoreResp is the outbound representation of a store.
type StoreResp struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	City     string     `json:"city,omitempty"`
	Location string     `json:"location,omitempty"`
	OpenDate *time.Time `json:"openDate,omitempty"`
	Active   bool       `json:"active"`
}

func ToResp(s *Store) *StoreResp {
	return &StoreResp{
		ID:       s.ID,
		Name:     s.Name,
		City:     s.City,
		Location: s.Location,
		OpenDate: s.OpenDate,
		Active:   s.Active,
	}
}

// PagedFilters are the optional filter inputs for GET /v1/stores/paged.
type PagedFilters struct {
	ID       *int
	Name     *string
	Location *string
}

// TopSellingStore is one row of the top-5-stores aggregation.
type TopSellingStore struct {
	ID         int
	Name       string
	TotalSales float64
}

// TopSellerResp is the outbound shape of a top-selling store.
type TopSellerResp struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	TotalSales float64 `json:"totalSales"`
}
