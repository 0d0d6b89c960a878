package employee

import "time"

// Employee is a member of staff. StoreID is nullable because an employee can
// be created before being assigned to a store.
type Employee struct {
	ID        int
	FirstName string
	LastName  string
	HireDate  *time.Time
	Gender    string
	BirthDate *time.Time
	StoreID   *int
	Active    bool
}
