package category

// Category groups products. Deactivating a category does not cascade to its
// products.
type Category struct {
	ID     int
	Name   string
	Active bool
}
