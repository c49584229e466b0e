package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type volunteerRepository struct {
	client     *firestore.Client
	collection collection
}

func newVolunteerRepository(client *firestore.Client) *volunteerRepository {
	return &volunteerRepository{
		client:     client,
		collection: collection{name: CollectionVolunteers},
	}
}

func (r *volunteerRepository) Create(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	if v.ID == "" {
		return nil, goerr.New("volunteer ID is required")
	}

	_, err := r.collection.ref(r.client).Doc(v.ID.String()).Create(ctx, v)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(model.ErrAlreadyExists, "volunteer already exists", goerr.V(model.VolunteerIDKey, v.ID))
		}
		return nil, goerr.Wrap(err, "failed to create volunteer", goerr.V(model.VolunteerIDKey, v.ID))
	}

	created := *v
	return &created, nil
}

func (r *volunteerRepository) Get(ctx context.Context, id model.VolunteerID) (*model.Volunteer, error) {
	docSnap, err := r.collection.ref(r.client).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "volunteer not found", goerr.V(model.VolunteerIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get volunteer", goerr.V(model.VolunteerIDKey, id))
	}

	var v model.Volunteer
	if err := docSnap.DataTo(&v); err != nil {
		return nil, goerr.Wrap(err, "failed to decode volunteer", goerr.V(model.VolunteerIDKey, id))
	}
	return &v, nil
}

func (r *volunteerRepository) GetByPhone(ctx context.Context, phone string) (*model.Volunteer, error) {
	q := r.collection.ref(r.client).Where("phone", "==", phone)
	v, err := first[model.Volunteer](ctx, q, "volunteers")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get volunteer by phone", goerr.V(model.PhoneKey, phone))
	}
	return v, nil
}

func (r *volunteerRepository) List(ctx context.Context) ([]*model.Volunteer, error) {
	iter := r.collection.ref(r.client).OrderBy("created_at", firestore.Asc).Documents(ctx)
	return decodeAll[model.Volunteer](iter, "volunteers")
}

func (r *volunteerRepository) Update(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	existing, err := r.Get(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	updated := *v
	updated.CreatedAt = existing.CreatedAt
	if _, err := r.collection.ref(r.client).Doc(v.ID.String()).Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update volunteer", goerr.V(model.VolunteerIDKey, v.ID))
	}
	return &updated, nil
}
