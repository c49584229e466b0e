package memory

import (
	"context"
	"sync"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type volunteerRepository struct {
	mu         sync.RWMutex
	volunteers map[model.VolunteerID]*model.Volunteer
	order      []model.VolunteerID
}

func newVolunteerRepository() *volunteerRepository {
	return &volunteerRepository{
		volunteers: make(map[model.VolunteerID]*model.Volunteer),
	}
}

func (r *volunteerRepository) Create(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.ID == "" {
		return nil, goerr.New("volunteer ID is required")
	}
	if _, exists := r.volunteers[v.ID]; exists {
		return nil, goerr.Wrap(model.ErrAlreadyExists, "volunteer already exists", goerr.V(model.VolunteerIDKey, v.ID))
	}

	created := copyVolunteer(v)
	r.volunteers[created.ID] = created
	r.order = append(r.order, created.ID)
	return copyVolunteer(created), nil
}

func (r *volunteerRepository) Get(ctx context.Context, id model.VolunteerID) (*model.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.volunteers[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "volunteer not found", goerr.V(model.VolunteerIDKey, id))
	}
	return copyVolunteer(v), nil
}

func (r *volunteerRepository) GetByPhone(ctx context.Context, phone string) (*model.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.volunteers {
		if v.Phone == phone {
			return copyVolunteer(v), nil
		}
	}
	return nil, nil
}

func (r *volunteerRepository) List(ctx context.Context) ([]*model.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	volunteers := make([]*model.Volunteer, 0, len(r.order))
	for _, id := range r.order {
		volunteers = append(volunteers, copyVolunteer(r.volunteers[id]))
	}
	return volunteers, nil
}

func (r *volunteerRepository) Update(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.volunteers[v.ID]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "volunteer not found", goerr.V(model.VolunteerIDKey, v.ID))
	}

	updated := copyVolunteer(v)
	updated.CreatedAt = existing.CreatedAt
	r.volunteers[updated.ID] = updated
	return copyVolunteer(updated), nil
}
