package usecase

import (
	"context"
	"strings"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type CheckInUseCase struct {
	core *core
}

type CheckInInput struct {
	UserID     model.UserID        `json:"userId"`
	Name       string              `json:"name" validate:"required"`
	Status     types.CheckInStatus `json:"status"`
	Location   *model.Location     `json:"location"`
	SafeZoneID model.SafeZoneID    `json:"safeZoneId"`
	Note       string              `json:"note"`
}

// CheckIn appends a check-in with a generated id and timestamp, and publishes checkIn
func (uc *CheckInUseCase) CheckIn(ctx context.Context, input CheckInInput) (*model.CheckIn, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, goerr.Wrap(ErrMissingField, "name is required", goerr.V(FieldKey, "name"))
	}
	status, err := types.ParseCheckInStatus(input.Status.String())
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidField, "invalid check-in status", goerr.V(FieldKey, "status"), goerr.V(ValueKey, input.Status))
	}

	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	checkIn := &model.CheckIn{
		ID:         model.NewCheckInID(),
		UserID:     input.UserID,
		Name:       name,
		Status:     status,
		Location:   input.Location,
		SafeZoneID: input.SafeZoneID,
		Note:       input.Note,
		Timestamp:  c.timestamp(),
	}

	created, err := c.repo.CheckIn().Create(ctx, checkIn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create check-in")
	}

	c.publish(ctx, types.EventCheckIn, created)
	return created, nil
}

func (uc *CheckInUseCase) List(ctx context.Context) ([]*model.CheckIn, error) {
	checkIns, err := uc.core.repo.CheckIn().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list check-ins")
	}
	return checkIns, nil
}
