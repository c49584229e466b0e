package memory

import (
	"context"
	"sync"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type checkInRepository struct {
	mu       sync.RWMutex
	checkIns []*model.CheckIn
}

func newCheckInRepository() *checkInRepository {
	return &checkInRepository{}
}

func (r *checkInRepository) Create(ctx context.Context, c *model.CheckIn) (*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return nil, goerr.New("check-in ID is required")
	}
	for _, existing := range r.checkIns {
		if existing.ID == c.ID {
			return nil, goerr.Wrap(model.ErrAlreadyExists, "check-in already exists", goerr.V("check_in_id", c.ID))
		}
	}

	r.checkIns = append(r.checkIns, copyCheckIn(c))
	return copyCheckIn(c), nil
}

func (r *checkInRepository) List(ctx context.Context) ([]*model.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checkIns := make([]*model.CheckIn, len(r.checkIns))
	for i, c := range r.checkIns {
		checkIns[i] = copyCheckIn(c)
	}
	return checkIns, nil
}
