package employee

import (
	"context"

	"github.com/asecurityteam/apierror"
)

// GetInput is the payload of the get function.
type GetInput struct {
	ID int64 `json:"id"`
}

// GetFunction exposes Get as a function for the invoke API.
func (s *Service) GetFunction() apierror.Function {
	return apierror.NewFunction(func(ctx context.Context, in GetInput) (Employee, error) {
		return s.Get(ctx, in.ID)
	})
}

// CreateFunction exposes Create as a function for the invoke API.
func (s *Service) CreateFunction() apierror.Function {
	return apierror.NewFunction(s.Create)
}
