package interfaces

import (
	"context"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
)

// VerificationRepository stores pending verification codes keyed by phone, and the
// phones that completed verification
type VerificationRepository interface {
	// Put stores a verification, replacing any pending code for the same phone
	Put(ctx context.Context, v *model.Verification) error

	// Get returns model.ErrNotFound if no code is pending for phone
	Get(ctx context.Context, phone string) (*model.Verification, error)

	// Delete removes the pending code for phone. Deleting an absent phone is not an error.
	Delete(ctx context.Context, phone string) error

	// DeleteExpired removes every code whose expiry is at or before now and returns the count
	DeleteExpired(ctx context.Context, now time.Time) (int, error)

	PutVerified(ctx context.Context, v *model.VerifiedPhone) error

	// GetVerified returns nil, nil if the phone never completed verification
	GetVerified(ctx context.Context, phone string) (*model.VerifiedPhone, error)
}
