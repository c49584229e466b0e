package interfaces

import (
	"context"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
)

// UserRepository defines the interface for survivor and coordinator data access
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, id model.UserID) (*model.User, error)

	// GetByPhone returns nil, nil if no user has the phone
	GetByPhone(ctx context.Context, phone string) (*model.User, error)

	// List retrieves users of the given role in registration order
	List(ctx context.Context, role types.UserRole) ([]*model.User, error)
}
