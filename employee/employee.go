package employee

import (
	"context"
)

// Employee is a single directory entry.
type Employee struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Repository stores employees.
type Repository interface {
	// FindByID returns the employee with the given ID. The boolean is
	// false when no such employee exists.
	FindByID(ctx context.Context, id int64) (Employee, bool, error)
	// Insert stores a new employee. The boolean is false when an
	// employee with the same ID already exists, in which case nothing
	// is stored.
	Insert(ctx context.Context, e Employee) (bool, error)
}
