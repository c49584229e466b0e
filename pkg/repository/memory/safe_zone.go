package memory

import (
	"context"
	"sync"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type safeZoneRepository struct {
	mu    sync.RWMutex
	zones map[model.SafeZoneID]*model.SafeZone
	order []model.SafeZoneID
}

func newSafeZoneRepository() *safeZoneRepository {
	return &safeZoneRepository{
		zones: make(map[model.SafeZoneID]*model.SafeZone),
	}
}

func (r *safeZoneRepository) Put(ctx context.Context, zone *model.SafeZone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if zone.ID == "" {
		return goerr.New("safe zone ID is required")
	}
	if _, exists := r.zones[zone.ID]; !exists {
		r.order = append(r.order, zone.ID)
	}
	r.zones[zone.ID] = copySafeZone(zone)
	return nil
}

func (r *safeZoneRepository) Get(ctx context.Context, id model.SafeZoneID) (*model.SafeZone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	zone, exists := r.zones[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "safe zone not found", goerr.V(model.SafeZoneIDKey, id))
	}
	return copySafeZone(zone), nil
}

func (r *safeZoneRepository) List(ctx context.Context) ([]*model.SafeZone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	zones := make([]*model.SafeZone, 0, len(r.order))
	for _, id := range r.order {
		zones = append(zones, copySafeZone(r.zones[id]))
	}
	return zones, nil
}

func (r *safeZoneRepository) Update(ctx context.Context, zone *model.SafeZone) (*model.SafeZone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.zones[zone.ID]; !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "safe zone not found", goerr.V(model.SafeZoneIDKey, zone.ID))
	}
	r.zones[zone.ID] = copySafeZone(zone)
	return copySafeZone(zone), nil
}
