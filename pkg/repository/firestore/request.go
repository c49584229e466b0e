package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type requestRepository struct {
	client     *firestore.Client
	collection collection
}

func newRequestRepository(client *firestore.Client) *requestRepository {
	return &requestRepository{
		client:     client,
		collection: collection{name: CollectionRequests},
	}
}

func (r *requestRepository) Create(ctx context.Context, req *model.Request) (*model.Request, error) {
	if req.ID == "" {
		return nil, goerr.New("request ID is required")
	}

	_, err := r.collection.ref(r.client).Doc(req.ID.String()).Create(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(model.ErrAlreadyExists, "request already exists", goerr.V(model.RequestIDKey, req.ID))
		}
		return nil, goerr.Wrap(err, "failed to create request", goerr.V(model.RequestIDKey, req.ID))
	}

	created := *req
	return &created, nil
}

func (r *requestRepository) Get(ctx context.Context, id model.RequestID) (*model.Request, error) {
	docSnap, err := r.collection.ref(r.client).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "request not found", goerr.V(model.RequestIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get request", goerr.V(model.RequestIDKey, id))
	}

	var req model.Request
	if err := docSnap.DataTo(&req); err != nil {
		return nil, goerr.Wrap(err, "failed to decode request", goerr.V(model.RequestIDKey, id))
	}
	return &req, nil
}

func (r *requestRepository) List(ctx context.Context) ([]*model.Request, error) {
	iter := r.collection.ref(r.client).OrderBy("created_at", firestore.Asc).Documents(ctx)
	return decodeAll[model.Request](iter, "requests")
}

func (r *requestRepository) Update(ctx context.Context, req *model.Request) (*model.Request, error) {
	docRef := r.collection.ref(r.client).Doc(req.ID.String())

	// Check if document exists
	existing, err := r.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *req
	updated.CreatedAt = existing.CreatedAt
	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update request", goerr.V(model.RequestIDKey, req.ID))
	}
	return &updated, nil
}
