package interfaces

import (
	"context"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
)

// RequestRepository defines the interface for Request data access
type RequestRepository interface {
	// Create stores a new request under its pre-assigned ID.
	// Returns model.ErrAlreadyExists if the ID is taken.
	Create(ctx context.Context, req *model.Request) (*model.Request, error)

	// Get retrieves a request by ID. Returns model.ErrNotFound if absent.
	Get(ctx context.Context, id model.RequestID) (*model.Request, error)

	// List retrieves all requests in creation order
	List(ctx context.Context) ([]*model.Request, error)

	// Update replaces an existing request. Returns model.ErrNotFound if absent.
	Update(ctx context.Context, req *model.Request) (*model.Request, error)
}
