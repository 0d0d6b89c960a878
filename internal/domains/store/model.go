package store

import "time"

// Store is a physical store location. Sales reference it; it is never
// hard-deleted, only deactivated via Active.
type Store struct {
	ID       int
	Name     string
	City     string
	Location string
	OpenDate *time.Time
	Active   bool
}
