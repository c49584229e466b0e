package usecase_test

import (
	"context"
	"testing"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestSafeZone_SeedAndUpdate(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	gt.NoError(t, f.uc.SafeZone.Seed(ctx, []*model.SafeZone{
		{ID: "sz-1", Name: "Central High School", Capacity: 500, Status: "open"},
		{ID: "sz-2", Name: "Community Center", Capacity: 200, Status: "open"},
	})).Required()

	zones, err := f.uc.SafeZone.List(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, zones).Length(2).Required()
	gt.Value(t, zones[0].ID).Equal(model.SafeZoneID("sz-1"))
	gt.A(t, f.rec.Types()).Length(0)

	occupancy := 120
	updated, err := f.uc.SafeZone.Update(ctx, "sz-1", usecase.UpdateSafeZoneInput{Occupancy: &occupancy})
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Occupancy).Equal(120)
	gt.Value(t, updated.Capacity).Equal(500)
	gt.Value(t, f.rec.Types()).Equal([]types.EventType{types.EventSafeZoneUpdated})
}

func TestSafeZone_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	gt.NoError(t, f.uc.SafeZone.Seed(ctx, []*model.SafeZone{{ID: "sz-1", Name: "Gym"}})).Required()

	negative := -1
	_, err := f.uc.SafeZone.Update(ctx, "sz-1", usecase.UpdateSafeZoneInput{Capacity: &negative})
	gt.Error(t, err).Is(usecase.ErrInvalidField)

	empty := ""
	_, err = f.uc.SafeZone.Update(ctx, "sz-1", usecase.UpdateSafeZoneInput{Name: &empty})
	gt.Error(t, err).Is(usecase.ErrMissingField)

	_, err = f.uc.SafeZone.Update(ctx, "missing", usecase.UpdateSafeZoneInput{Capacity: &negative})
	gt.Error(t, err).Is(model.ErrNotFound)
}
