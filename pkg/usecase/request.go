package usecase

import (
	"context"
	"errors"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/utils/async"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type RequestUseCase struct {
	core *core
}

// CreateRequestInput carries the survivor-supplied fields of a new request
type CreateRequestInput struct {
	Type         string         `json:"type" validate:"required"`
	Description  string         `json:"description"`
	Urgency      types.Urgency  `json:"urgency"`
	Location     model.Location `json:"location"`
	PeopleCount  int            `json:"peopleCount" validate:"gte=0"`
	SurvivorID   model.UserID   `json:"survivorId"`
	SurvivorName string         `json:"survivorName"`
	ContactPhone string         `json:"contactPhone"`
}

// UpdateRequestInput merges descriptive fields into a request. Nil fields are left
// unchanged. Status and assignment are owned by AssignmentUseCase.
type UpdateRequestInput struct {
	Type        *string         `json:"type"`
	Description *string         `json:"description"`
	Urgency     *types.Urgency  `json:"urgency"`
	Location    *model.Location `json:"location"`
	PeopleCount *int            `json:"peopleCount" validate:"omitnil,gte=0"`
}

// Create stores a new Pending request and publishes newRequest
func (uc *RequestUseCase) Create(ctx context.Context, input CreateRequestInput) (*model.Request, error) {
	if input.Type == "" {
		return nil, goerr.Wrap(ErrMissingField, "request type is required", goerr.V(FieldKey, "type"))
	}
	urgency, err := types.ParseUrgency(input.Urgency.String())
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidField, "invalid urgency", goerr.V(FieldKey, "urgency"), goerr.V(ValueKey, input.Urgency))
	}

	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timestamp()
	req := &model.Request{
		Type:         input.Type,
		Description:  input.Description,
		Urgency:      urgency,
		Location:     input.Location,
		PeopleCount:  input.PeopleCount,
		SurvivorID:   input.SurvivorID,
		SurvivorName: input.SurvivorName,
		ContactPhone: input.ContactPhone,
		Status:       types.RequestStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created *model.Request
	for attempt := range maxIDAttempts {
		req.ID = model.NewRequestID()
		created, err = c.repo.Request().Create(ctx, req)
		if err == nil {
			break
		}
		if !errors.Is(err, model.ErrAlreadyExists) || attempt == maxIDAttempts-1 {
			return nil, goerr.Wrap(err, "failed to create request")
		}
	}

	c.publish(ctx, types.EventNewRequest, created)
	logging.From(ctx).Info("request created",
		"request_id", created.ID,
		"type", created.Type,
		"urgency", created.Urgency)

	if created.Urgency == types.UrgencyUrgent && c.notifier != nil {
		notified := *created
		async.Dispatch(ctx, func(ctx context.Context) error {
			return c.notifier.NotifyUrgentRequest(ctx, &notified)
		})
	}

	return created, nil
}

// Update merges input into an existing request and publishes requestUpdated
func (uc *RequestUseCase) Update(ctx context.Context, id model.RequestID, input UpdateRequestInput) (*model.Request, error) {
	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	req, err := c.repo.Request().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get request", goerr.V(model.RequestIDKey, id))
	}

	if input.Type != nil {
		if *input.Type == "" {
			return nil, goerr.Wrap(ErrMissingField, "request type cannot be empty", goerr.V(FieldKey, "type"))
		}
		req.Type = *input.Type
	}
	if input.Description != nil {
		req.Description = *input.Description
	}
	if input.Urgency != nil {
		urgency, err := types.ParseUrgency(input.Urgency.String())
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidField, "invalid urgency", goerr.V(FieldKey, "urgency"), goerr.V(ValueKey, *input.Urgency))
		}
		req.Urgency = urgency
	}
	if input.Location != nil {
		req.Location = *input.Location
	}
	if input.PeopleCount != nil {
		req.PeopleCount = *input.PeopleCount
	}
	req.UpdatedAt = c.timestamp()

	updated, err := c.repo.Request().Update(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update request", goerr.V(model.RequestIDKey, id))
	}

	c.publish(ctx, types.EventRequestUpdated, updated)
	return updated, nil
}

func (uc *RequestUseCase) Get(ctx context.Context, id model.RequestID) (*model.Request, error) {
	req, err := uc.core.repo.Request().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get request", goerr.V(model.RequestIDKey, id))
	}
	return req, nil
}

func (uc *RequestUseCase) List(ctx context.Context) ([]*model.Request, error) {
	requests, err := uc.core.repo.Request().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list requests")
	}
	return requests, nil
}
