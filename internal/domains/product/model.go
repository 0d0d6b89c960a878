package product

import "time"

// Product is a catalog item. Cost and Price are stored as numeric columns;
// monetary arithmetic on them goes through shopspring/decimal at the point
// of use.
type Product struct {
	ID           int
	Name         string
	Cost         float64
	Price        float64
	CategoryID   int
	CreationDate time.Time
	Active       bool
}

// Inventory tracks the stock on hand for one product. Exactly one row
// exists per product, created together with it.
type Inventory struct {
	ID          int
	ProductID   int
	StockOnHand int
}
