package interfaces

import (
	"context"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
)

// SafeZoneRepository defines the interface for SafeZone data access
type SafeZoneRepository interface {
	// Put creates or replaces a safe zone (used for configuration seeding)
	Put(ctx context.Context, zone *model.SafeZone) error
	Get(ctx context.Context, id model.SafeZoneID) (*model.SafeZone, error)
	List(ctx context.Context) ([]*model.SafeZone, error)

	// Update replaces an existing safe zone. Returns model.ErrNotFound if absent.
	Update(ctx context.Context, zone *model.SafeZone) (*model.SafeZone, error)
}
