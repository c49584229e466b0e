package usecase

import (
	"context"
	"fmt"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Violation describes one broken consistency rule between stored records
type Violation struct {
	RequestID   model.RequestID
	VolunteerID model.VolunteerID
	Message     string
}

func (v Violation) String() string {
	switch {
	case v.RequestID != "" && v.VolunteerID != "":
		return fmt.Sprintf("request %s / volunteer %s: %s", v.RequestID, v.VolunteerID, v.Message)
	case v.RequestID != "":
		return fmt.Sprintf("request %s: %s", v.RequestID, v.Message)
	default:
		return fmt.Sprintf("volunteer %s: %s", v.VolunteerID, v.Message)
	}
}

// ValidateStore checks every request and volunteer against the assignment rules:
// each record's own invariants, and agreement between Request.assignedVolunteerId
// and Volunteer.activeMissions. It holds the command lock so it sees a consistent
// snapshot.
func (uc *AssignmentUseCase) ValidateStore(ctx context.Context) ([]Violation, error) {
	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	requests, err := c.repo.Request().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list requests")
	}
	volunteers, err := c.repo.Volunteer().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list volunteers")
	}

	requestByID := make(map[model.RequestID]*model.Request, len(requests))
	for _, req := range requests {
		requestByID[req.ID] = req
	}
	volunteerByID := make(map[model.VolunteerID]*model.Volunteer, len(volunteers))
	for _, vol := range volunteers {
		volunteerByID[vol.ID] = vol
	}

	var violations []Violation

	for _, req := range requests {
		if err := req.Validate(); err != nil {
			violations = append(violations, Violation{RequestID: req.ID, Message: err.Error()})
			continue
		}
		if req.Status != types.RequestStatusAssigned {
			continue
		}
		vol, ok := volunteerByID[req.AssignedVolunteerID]
		if !ok {
			// assignment to an unregistered volunteer is allowed
			continue
		}
		if !vol.HasMission(req.ID) {
			violations = append(violations, Violation{
				RequestID:   req.ID,
				VolunteerID: vol.ID,
				Message:     "assigned request is missing from volunteer's active missions",
			})
		}
	}

	for _, vol := range volunteers {
		if err := vol.Validate(); err != nil {
			violations = append(violations, Violation{VolunteerID: vol.ID, Message: err.Error()})
		}
		for _, reqID := range vol.ActiveMissions {
			req, ok := requestByID[reqID]
			switch {
			case !ok:
				violations = append(violations, Violation{RequestID: reqID, VolunteerID: vol.ID, Message: "active mission refers to an unknown request"})
			case req.Status != types.RequestStatusAssigned:
				violations = append(violations, Violation{RequestID: reqID, VolunteerID: vol.ID, Message: "active mission is not in Assigned state"})
			case req.AssignedVolunteerID != vol.ID:
				violations = append(violations, Violation{RequestID: reqID, VolunteerID: vol.ID, Message: "active mission is assigned to another volunteer"})
			}
		}
	}

	return violations, nil
}
