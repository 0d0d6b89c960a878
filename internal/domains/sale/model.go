package sale

import "time"

// Sale is one checkout: a header row plus one invoice line per product.
// Total is the discounted sum of the line subtotals and is computed by the
// service, never taken from the client.
type Sale struct {
	ID         int
	StoreID    int
	EmployeeID int
	Total      float64
	Date       time.Time
	Invoices   []Invoice
}

// Invoice is one line of a sale. Discount is a whole-number percentage
// applied to Subtotal when the sale total is computed; Subtotal itself is
// stored undiscounted.
type Invoice struct {
	ID        int64
	SaleID    int
	ProductID int
	Quantity  int
	Discount  int
	Subtotal  float64
	Status    bool
}
