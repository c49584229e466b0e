package memory

import (
	"context"
	"sync"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type verificationRepository struct {
	mu       sync.RWMutex
	pending  map[string]*model.Verification
	verified map[string]*model.VerifiedPhone
}

func newVerificationRepository() *verificationRepository {
	return &verificationRepository{
		pending:  make(map[string]*model.Verification),
		verified: make(map[string]*model.VerifiedPhone),
	}
}

func (r *verificationRepository) Put(ctx context.Context, v *model.Verification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.Phone == "" {
		return goerr.New("verification phone is required")
	}
	copied := *v
	r.pending[v.Phone] = &copied
	return nil
}

func (r *verificationRepository) Get(ctx context.Context, phone string) (*model.Verification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.pending[phone]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "verification not found", goerr.V(model.PhoneKey, phone))
	}
	copied := *v
	return &copied, nil
}

func (r *verificationRepository) Delete(ctx context.Context, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pending, phone)
	return nil
}

func (r *verificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for phone, v := range r.pending {
		if v.IsExpired(now) {
			delete(r.pending, phone)
			deleted++
		}
	}
	return deleted, nil
}

func (r *verificationRepository) PutVerified(ctx context.Context, v *model.VerifiedPhone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.Phone == "" {
		return goerr.New("verified phone is required")
	}
	copied := *v
	r.verified[v.Phone] = &copied
	return nil
}

func (r *verificationRepository) GetVerified(ctx context.Context, phone string) (*model.VerifiedPhone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.verified[phone]
	if !exists {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}
