package repository_test

import (
	"context"
	"testing"

	"github.com/MohitGedela/GeoShield/pkg/domain/interfaces"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func runSafeZoneRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put seeds and Update replaces", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		zone := &model.SafeZone{
			ID:        "zone-a",
			Name:      "Central Gym",
			Location:  model.Location{Lat: 35.0, Lng: 139.0},
			Capacity:  200,
			Resources: []string{"water", "blankets"},
			Status:    "open",
			UpdatedAt: testTime(),
		}
		gt.NoError(t, repo.SafeZone().Put(ctx, zone)).Required()

		zone.Occupancy = 42
		_, err := repo.SafeZone().Update(ctx, zone)
		gt.NoError(t, err).Required()

		got, err := repo.SafeZone().Get(ctx, "zone-a")
		gt.NoError(t, err).Required()
		gt.Value(t, got.Occupancy).Equal(42)
		gt.A(t, got.Resources).Length(2)

		list, err := repo.SafeZone().List(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, list).Length(1)
	})

	t.Run("Update returns ErrNotFound for unknown zone", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.SafeZone().Update(context.Background(), &model.SafeZone{ID: "nowhere"})
		gt.Error(t, err).Is(model.ErrNotFound)
	})
}

func TestMemorySafeZoneRepository(t *testing.T) {
	runSafeZoneRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreSafeZoneRepository(t *testing.T) {
	runSafeZoneRepositoryTest(t, newFirestoreRepository)
}
