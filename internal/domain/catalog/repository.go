package catalog

import (
	"context"

	"github.com/pawsitiveapps/pet-scheduler/internal/models"
)

// Business error codes returned by Repository implementations.
const (
	ErrCodeValidation = "validation_error"
	ErrCodeNotFound   = "service_not_found"
)

type CreateServiceInput struct {
	Name            string
	DurationMinutes int
}

// UpdateServiceInput applies only the fields that were present in the
// payload; everything else keeps its stored value. An explicit null is a
// validation error, no service field is clearable.
type UpdateServiceInput struct {
	Name            Optional[string]
	DurationMinutes Optional[int]
	IsActive        Optional[bool]
}

type Repository interface {
	// ListActive returns active services ordered by name, for the public
	// catalog.
	ListActive(ctx context.Context) ([]models.Service, error)

	// ListAll returns every service ordered by name, active or not.
	ListAll(ctx context.Context) ([]models.Service, error)

	Create(ctx context.Context, in CreateServiceInput) (*models.Service, error)

	Update(ctx context.Context, id string, in UpdateServiceInput) (*models.Service, error)

	Delete(ctx context.Context, id string) error
}
