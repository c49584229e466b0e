package usecase

import (
	"context"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type SafeZoneUseCase struct {
	core *core
}

// UpdateSafeZoneInput merges into an existing safe zone. Nil fields are left unchanged.
type UpdateSafeZoneInput struct {
	Name      *string   `json:"name"`
	Capacity  *int      `json:"capacity" validate:"omitnil,gte=0"`
	Occupancy *int      `json:"currentOccupancy" validate:"omitnil,gte=0"`
	Resources *[]string `json:"resources"`
	Status    *string   `json:"status"`
}

// Seed stores the configured safe zones, replacing any zone with the same id
func (uc *SafeZoneUseCase) Seed(ctx context.Context, zones []*model.SafeZone) error {
	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timestamp()
	for _, zone := range zones {
		seeded := *zone
		if seeded.UpdatedAt.IsZero() {
			seeded.UpdatedAt = now
		}
		if err := c.repo.SafeZone().Put(ctx, &seeded); err != nil {
			return goerr.Wrap(err, "failed to seed safe zone", goerr.V(model.SafeZoneIDKey, zone.ID))
		}
	}
	return nil
}

func (uc *SafeZoneUseCase) List(ctx context.Context) ([]*model.SafeZone, error) {
	zones, err := uc.core.repo.SafeZone().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list safe zones")
	}
	return zones, nil
}

// Update merges input into a safe zone and publishes safeZoneUpdated
func (uc *SafeZoneUseCase) Update(ctx context.Context, id model.SafeZoneID, input UpdateSafeZoneInput) (*model.SafeZone, error) {
	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	zone, err := c.repo.SafeZone().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get safe zone", goerr.V(model.SafeZoneIDKey, id))
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, goerr.Wrap(ErrMissingField, "safe zone name cannot be empty", goerr.V(FieldKey, "name"))
		}
		zone.Name = *input.Name
	}
	if input.Capacity != nil {
		if *input.Capacity < 0 {
			return nil, goerr.Wrap(ErrInvalidField, "capacity cannot be negative", goerr.V(FieldKey, "capacity"))
		}
		zone.Capacity = *input.Capacity
	}
	if input.Occupancy != nil {
		if *input.Occupancy < 0 {
			return nil, goerr.Wrap(ErrInvalidField, "occupancy cannot be negative", goerr.V(FieldKey, "currentOccupancy"))
		}
		zone.Occupancy = *input.Occupancy
	}
	if input.Resources != nil {
		zone.Resources = *input.Resources
	}
	if input.Status != nil {
		zone.Status = *input.Status
	}
	zone.UpdatedAt = c.timestamp()

	updated, err := c.repo.SafeZone().Update(ctx, zone)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update safe zone", goerr.V(model.SafeZoneIDKey, id))
	}

	c.publish(ctx, types.EventSafeZoneUpdated, updated)
	return updated, nil
}
