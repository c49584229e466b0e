package memory

import (
	"context"
	"sync"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type requestRepository struct {
	mu       sync.RWMutex
	requests map[model.RequestID]*model.Request
	order    []model.RequestID
}

func newRequestRepository() *requestRepository {
	return &requestRepository{
		requests: make(map[model.RequestID]*model.Request),
	}
}

func (r *requestRepository) Create(ctx context.Context, req *model.Request) (*model.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		return nil, goerr.New("request ID is required")
	}
	if _, exists := r.requests[req.ID]; exists {
		return nil, goerr.Wrap(model.ErrAlreadyExists, "request already exists", goerr.V(model.RequestIDKey, req.ID))
	}

	created := copyRequest(req)
	r.requests[created.ID] = created
	r.order = append(r.order, created.ID)
	return copyRequest(created), nil
}

func (r *requestRepository) Get(ctx context.Context, id model.RequestID) (*model.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, exists := r.requests[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "request not found", goerr.V(model.RequestIDKey, id))
	}
	return copyRequest(req), nil
}

func (r *requestRepository) List(ctx context.Context) ([]*model.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]*model.Request, 0, len(r.order))
	for _, id := range r.order {
		requests = append(requests, copyRequest(r.requests[id]))
	}
	return requests, nil
}

func (r *requestRepository) Update(ctx context.Context, req *model.Request) (*model.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.requests[req.ID]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "request not found", goerr.V(model.RequestIDKey, req.ID))
	}

	updated := copyRequest(req)
	updated.CreatedAt = existing.CreatedAt
	r.requests[updated.ID] = updated
	return copyRequest(updated), nil
}
