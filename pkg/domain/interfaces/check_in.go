package interfaces

import (
	"context"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
)

// CheckInRepository is an append-only log of check-ins
type CheckInRepository interface {
	Create(ctx context.Context, c *model.CheckIn) (*model.CheckIn, error)
	List(ctx context.Context) ([]*model.CheckIn, error)
}
