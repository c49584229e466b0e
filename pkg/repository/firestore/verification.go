package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// verificationRepository keys both collections by phone number
type verificationRepository struct {
	client   *firestore.Client
	pending  collection
	verified collection
}

func newVerificationRepository(client *firestore.Client) *verificationRepository {
	return &verificationRepository{
		client:   client,
		pending:  collection{name: CollectionVerifications},
		verified: collection{name: CollectionVerifiedPhone},
	}
}

func (r *verificationRepository) Put(ctx context.Context, v *model.Verification) error {
	if v.Phone == "" {
		return goerr.New("verification phone is required")
	}
	if _, err := r.pending.ref(r.client).Doc(v.Phone).Set(ctx, v); err != nil {
		return goerr.Wrap(err, "failed to put verification", goerr.V(model.PhoneKey, v.Phone))
	}
	return nil
}

func (r *verificationRepository) Get(ctx context.Context, phone string) (*model.Verification, error) {
	docSnap, err := r.pending.ref(r.client).Doc(phone).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "verification not found", goerr.V(model.PhoneKey, phone))
		}
		return nil, goerr.Wrap(err, "failed to get verification", goerr.V(model.PhoneKey, phone))
	}

	var v model.Verification
	if err := docSnap.DataTo(&v); err != nil {
		return nil, goerr.Wrap(err, "failed to decode verification", goerr.V(model.PhoneKey, phone))
	}
	return &v, nil
}

func (r *verificationRepository) Delete(ctx context.Context, phone string) error {
	if _, err := r.pending.ref(r.client).Doc(phone).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return goerr.Wrap(err, "failed to delete verification", goerr.V(model.PhoneKey, phone))
	}
	return nil
}

func (r *verificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	iter := r.pending.ref(r.client).Where("expires_at", "<=", now).Documents(ctx)
	expired, err := decodeAll[model.Verification](iter, "verifications")
	if err != nil {
		return 0, err
	}

	for _, v := range expired {
		if err := r.Delete(ctx, v.Phone); err != nil {
			return 0, err
		}
	}
	return len(expired), nil
}

func (r *verificationRepository) PutVerified(ctx context.Context, v *model.VerifiedPhone) error {
	if v.Phone == "" {
		return goerr.New("verified phone is required")
	}
	if _, err := r.verified.ref(r.client).Doc(v.Phone).Set(ctx, v); err != nil {
		return goerr.Wrap(err, "failed to put verified phone", goerr.V(model.PhoneKey, v.Phone))
	}
	return nil
}

func (r *verificationRepository) GetVerified(ctx context.Context, phone string) (*model.VerifiedPhone, error) {
	docSnap, err := r.verified.ref(r.client).Doc(phone).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get verified phone", goerr.V(model.PhoneKey, phone))
	}

	var v model.VerifiedPhone
	if err := docSnap.DataTo(&v); err != nil {
		return nil, goerr.Wrap(err, "failed to decode verified phone", goerr.V(model.PhoneKey, phone))
	}
	return &v, nil
}
