package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type safeZoneRepository struct {
	client     *firestore.Client
	collection collection
}

func newSafeZoneRepository(client *firestore.Client) *safeZoneRepository {
	return &safeZoneRepository{
		client:     client,
		collection: collection{name: CollectionSafeZones},
	}
}

func (r *safeZoneRepository) Put(ctx context.Context, zone *model.SafeZone) error {
	if zone.ID == "" {
		return goerr.New("safe zone ID is required")
	}
	if _, err := r.collection.ref(r.client).Doc(zone.ID.String()).Set(ctx, zone); err != nil {
		return goerr.Wrap(err, "failed to put safe zone", goerr.V(model.SafeZoneIDKey, zone.ID))
	}
	return nil
}

func (r *safeZoneRepository) Get(ctx context.Context, id model.SafeZoneID) (*model.SafeZone, error) {
	docSnap, err := r.collection.ref(r.client).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "safe zone not found", goerr.V(model.SafeZoneIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get safe zone", goerr.V(model.SafeZoneIDKey, id))
	}

	var zone model.SafeZone
	if err := docSnap.DataTo(&zone); err != nil {
		return nil, goerr.Wrap(err, "failed to decode safe zone", goerr.V(model.SafeZoneIDKey, id))
	}
	return &zone, nil
}

// List orders by document ID; seeded zones carry configured IDs, not creation times
func (r *safeZoneRepository) List(ctx context.Context) ([]*model.SafeZone, error) {
	iter := r.collection.ref(r.client).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	return decodeAll[model.SafeZone](iter, "safe zones")
}

func (r *safeZoneRepository) Update(ctx context.Context, zone *model.SafeZone) (*model.SafeZone, error) {
	if _, err := r.Get(ctx, zone.ID); err != nil {
		return nil, err
	}
	if err := r.Put(ctx, zone); err != nil {
		return nil, err
	}
	updated := *zone
	return &updated, nil
}
