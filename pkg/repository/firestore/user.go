package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client     *firestore.Client
	collection collection
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{
		client:     client,
		collection: collection{name: CollectionUsers},
	}
}

func (r *userRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if u.ID == "" {
		return nil, goerr.New("user ID is required")
	}

	_, err := r.collection.ref(r.client).Doc(u.ID.String()).Create(ctx, u)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(model.ErrAlreadyExists, "user already exists", goerr.V(model.UserIDKey, u.ID))
		}
		return nil, goerr.Wrap(err, "failed to create user", goerr.V(model.UserIDKey, u.ID))
	}

	created := *u
	return &created, nil
}

func (r *userRepository) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	docSnap, err := r.collection.ref(r.client).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "user not found", goerr.V(model.UserIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V(model.UserIDKey, id))
	}

	var u model.User
	if err := docSnap.DataTo(&u); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V(model.UserIDKey, id))
	}
	return &u, nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	q := r.collection.ref(r.client).Where("phone", "==", phone)
	u, err := first[model.User](ctx, q, "users")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user by phone", goerr.V(model.PhoneKey, phone))
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context, role types.UserRole) ([]*model.User, error) {
	iter := r.collection.ref(r.client).
		Where("role", "==", role.String()).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	return decodeAll[model.User](iter, "users")
}
