package interfaces

import (
	"context"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
)

// VolunteerRepository defines the interface for Volunteer data access
type VolunteerRepository interface {
	// Create stores a new volunteer under its pre-assigned ID.
	// Returns model.ErrAlreadyExists if the ID is taken.
	Create(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error)

	// Get retrieves a volunteer by ID. Returns model.ErrNotFound if absent.
	Get(ctx context.Context, id model.VolunteerID) (*model.Volunteer, error)

	// GetByPhone retrieves a volunteer by phone number.
	// Returns nil, nil if no volunteer has the phone.
	GetByPhone(ctx context.Context, phone string) (*model.Volunteer, error)

	// List retrieves all volunteers in registration order
	List(ctx context.Context) ([]*model.Volunteer, error)

	// Update replaces an existing volunteer. Returns model.ErrNotFound if absent.
	Update(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error)
}
