package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/apierror"
)

// Service implements the directory operations on top of a Repository.
type Service struct {
	Repository Repository
}

// Get returns the employee with the given ID or an apierror.NotFoundError.
func (s *Service) Get(ctx context.Context, id int64) (Employee, error) {
	e, ok, err := s.Repository.FindByID(ctx, id)
	if err != nil {
		return Employee{}, fmt.Errorf("finding employee %d: %w", id, err)
	}
	if !ok {
		return Employee{}, apierror.NewNotFoundError(fmt.Sprintf("Employee not found with id %d", id))
	}
	return e, nil
}

// Create stores a new employee. Invalid input results in an
// apierror.ValidationError listing every problem and a duplicate ID results
// in an apierror.ConflictError.
func (s *Service) Create(ctx context.Context, e Employee) (Employee, error) {
	if violations := validate(e); len(violations) > 0 {
		return Employee{}, apierror.NewValidationError("Employee is invalid", violations...)
	}
	ok, err := s.Repository.Insert(ctx, e)
	if err != nil {
		return Employee{}, fmt.Errorf("inserting employee %d: %w", e.ID, err)
	}
	if !ok {
		return Employee{}, apierror.NewConflictError(fmt.Sprintf("Employee already exists with id %d", e.ID))
	}
	return e, nil
}

func validate(e Employee) []string {
	var violations []string
	if e.ID <= 0 {
		violations = append(violations, "id must be a positive integer")
	}
	if strings.TrimSpace(e.Name) == "" {
		violations = append(violations, "name must not be empty")
	}
	if !strings.Contains(e.Email, "@") {
		violations = append(violations, "email must be a valid address")
	}
	return violations
}
