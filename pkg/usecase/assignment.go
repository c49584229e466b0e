package usecase

import (
	"context"
	"errors"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// AssignmentUseCase is the request state machine: Pending -> Assigned -> Fulfilled.
// It is the only writer of Request.status, the assignee fields, and volunteer missions.
type AssignmentUseCase struct {
	core *core
}

// AcceptInput is the payload of an acceptRequest command
type AcceptInput struct {
	RequestID     model.RequestID   `json:"requestId" validate:"required"`
	VolunteerID   model.VolunteerID `json:"volunteerId" validate:"required"`
	VolunteerName string            `json:"volunteerName"`
}

// CompleteInput is the payload of a completeRequest command
type CompleteInput struct {
	RequestID   model.RequestID   `json:"requestId" validate:"required"`
	VolunteerID model.VolunteerID `json:"volunteerId" validate:"required"`
}

// TransitionResult reports what a state machine command did. A rejected command
// changed nothing and published nothing; Reason says why.
type TransitionResult struct {
	Outcome types.Outcome      `json:"outcome"`
	Reason  types.RejectReason `json:"reason,omitempty"`

	Request *model.Request `json:"request,omitempty"`
	// Volunteers holds every volunteer record the command changed
	Volunteers []*model.Volunteer `json:"volunteers,omitempty"`
}

// Updated reports whether the command changed state
func (r *TransitionResult) Updated() bool {
	return r.Outcome == types.OutcomeUpdated
}

func rejected(reason types.RejectReason) *TransitionResult {
	return &TransitionResult{Outcome: types.OutcomeRejected, Reason: reason}
}

// Accept assigns a Pending request to a volunteer. The first accept wins; any later
// accept for the same request is rejected with not_pending. A missing volunteer record
// does not block the assignment.
func (uc *AssignmentUseCase) Accept(ctx context.Context, input AcceptInput) (*TransitionResult, error) {
	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := logging.From(ctx).With(
		"request_id", input.RequestID,
		"volunteer_id", input.VolunteerID)

	req, err := c.repo.Request().Get(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Debug("accept ignored: request not found")
			return rejected(types.RejectRequestNotFound), nil
		}
		return nil, goerr.Wrap(err, "failed to get request", goerr.V(model.RequestIDKey, input.RequestID))
	}

	vol, err := uc.findVolunteer(ctx, input.VolunteerID)
	if err != nil {
		return nil, err
	}

	name := input.VolunteerName
	if name == "" && vol != nil {
		name = vol.Name
	}

	now := c.timestamp()
	if !req.Assign(input.VolunteerID, name, now) {
		logger.Info("accept ignored: request is not pending", "status", req.Status)
		return rejected(types.RejectNotPending), nil
	}

	result := &TransitionResult{Outcome: types.OutcomeUpdated}
	if result.Request, err = c.repo.Request().Update(ctx, req); err != nil {
		return nil, goerr.Wrap(err, "failed to update request", goerr.V(model.RequestIDKey, req.ID))
	}

	if vol != nil {
		vol.AddMission(req.ID, now)
		updated, err := c.repo.Volunteer().Update(ctx, vol)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to update volunteer", goerr.V(model.VolunteerIDKey, vol.ID))
		}
		result.Volunteers = append(result.Volunteers, updated)
	} else {
		logger.Warn("request assigned to unregistered volunteer")
	}

	uc.publish(ctx, result)
	logger.Info("request assigned")
	return result, nil
}

// Complete moves a request to Fulfilled. Completion is accepted from Pending as well as
// Assigned, and from any volunteer; Fulfilled is terminal, so completing twice is rejected
// with already_fulfilled and the volunteer is not credited again.
func (uc *AssignmentUseCase) Complete(ctx context.Context, input CompleteInput) (*TransitionResult, error) {
	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := logging.From(ctx).With(
		"request_id", input.RequestID,
		"volunteer_id", input.VolunteerID)

	req, err := c.repo.Request().Get(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Debug("complete ignored: request not found")
			return rejected(types.RejectRequestNotFound), nil
		}
		return nil, goerr.Wrap(err, "failed to get request", goerr.V(model.RequestIDKey, input.RequestID))
	}

	completer, err := uc.findVolunteer(ctx, input.VolunteerID)
	if err != nil {
		return nil, err
	}

	var completerName string
	if completer != nil {
		completerName = completer.Name
	}

	previousAssignee := req.AssignedVolunteerID
	now := c.timestamp()
	if !req.Fulfill(input.VolunteerID, completerName, now) {
		logger.Info("complete ignored: request already fulfilled")
		return rejected(types.RejectAlreadyFulfilled), nil
	}

	result := &TransitionResult{Outcome: types.OutcomeUpdated}
	if result.Request, err = c.repo.Request().Update(ctx, req); err != nil {
		return nil, goerr.Wrap(err, "failed to update request", goerr.V(model.RequestIDKey, req.ID))
	}

	// A volunteer may close a mission held by someone else. The holder's missions
	// are released so the request id is never left dangling in activeMissions.
	if previousAssignee != "" && previousAssignee != input.VolunteerID {
		logger.Warn("request completed by a volunteer other than its assignee",
			"assigned_volunteer_id", previousAssignee)

		holder, err := uc.findVolunteer(ctx, previousAssignee)
		if err != nil {
			return nil, err
		}
		if holder != nil {
			holder.ReleaseMission(req.ID, now)
			updated, err := c.repo.Volunteer().Update(ctx, holder)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to update volunteer", goerr.V(model.VolunteerIDKey, holder.ID))
			}
			result.Volunteers = append(result.Volunteers, updated)
		}
	}

	if completer != nil {
		completer.CompleteMission(req.ID, now)
		updated, err := c.repo.Volunteer().Update(ctx, completer)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to update volunteer", goerr.V(model.VolunteerIDKey, completer.ID))
		}
		result.Volunteers = append(result.Volunteers, updated)
	}

	uc.publish(ctx, result)
	logger.Info("request fulfilled")
	return result, nil
}

// findVolunteer returns nil, nil when the volunteer is not registered
func (uc *AssignmentUseCase) findVolunteer(ctx context.Context, id model.VolunteerID) (*model.Volunteer, error) {
	vol, err := uc.core.repo.Volunteer().Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get volunteer", goerr.V(model.VolunteerIDKey, id))
	}
	return vol, nil
}

func (uc *AssignmentUseCase) publish(ctx context.Context, result *TransitionResult) {
	uc.core.publish(ctx, types.EventRequestUpdated, result.Request)
	for _, v := range result.Volunteers {
		uc.core.publish(ctx, types.EventVolunteerUpdated, v)
	}
}
