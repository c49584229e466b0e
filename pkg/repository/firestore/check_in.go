package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type checkInRepository struct {
	client     *firestore.Client
	collection collection
}

func newCheckInRepository(client *firestore.Client) *checkInRepository {
	return &checkInRepository{
		client:     client,
		collection: collection{name: CollectionCheckIns},
	}
}

func (r *checkInRepository) Create(ctx context.Context, c *model.CheckIn) (*model.CheckIn, error) {
	if c.ID == "" {
		return nil, goerr.New("check-in ID is required")
	}

	_, err := r.collection.ref(r.client).Doc(c.ID.String()).Create(ctx, c)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(model.ErrAlreadyExists, "check-in already exists", goerr.V("check_in_id", c.ID))
		}
		return nil, goerr.Wrap(err, "failed to create check-in", goerr.V("check_in_id", c.ID))
	}

	created := *c
	return &created, nil
}

func (r *checkInRepository) List(ctx context.Context) ([]*model.CheckIn, error) {
	iter := r.collection.ref(r.client).OrderBy("timestamp", firestore.Asc).Documents(ctx)
	return decodeAll[model.CheckIn](iter, "check-ins")
}
