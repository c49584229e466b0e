package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type RegistrationUseCase struct {
	core *core
}

type RegisterVolunteerInput struct {
	Name         string   `json:"name" validate:"required"`
	Phone        string   `json:"phone" validate:"required"`
	Skills       []string `json:"skills"`
	Resources    []string `json:"resources"`
	Availability string   `json:"availability"`
}

// RegisterUserInput registers a survivor or a coordinator
type RegisterUserInput struct {
	Name         string          `json:"name" validate:"required"`
	Phone        string          `json:"phone" validate:"required"`
	Location     *model.Location `json:"location"`
	Organization string          `json:"organization"`
}

// RegisterVolunteer stores an Available volunteer with no missions and publishes
// volunteerRegistered. A phone already used by any participant is rejected.
func (uc *RegistrationUseCase) RegisterVolunteer(ctx context.Context, input RegisterVolunteerInput) (*model.Volunteer, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" {
		return nil, goerr.Wrap(ErrMissingField, "volunteer name is required", goerr.V(FieldKey, "name"))
	}
	if phone == "" {
		return nil, goerr.Wrap(ErrMissingField, "volunteer phone is required", goerr.V(FieldKey, "phone"))
	}

	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := uc.ensurePhoneAvailable(ctx, phone); err != nil {
		return nil, err
	}

	now := c.timestamp()
	vol := &model.Volunteer{
		Name:           name,
		Phone:          phone,
		Skills:         input.Skills,
		Resources:      input.Resources,
		Availability:   input.Availability,
		Status:         types.VolunteerStatusAvailable,
		ActiveMissions: []model.RequestID{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	vol.NormalizeSets()

	var created *model.Volunteer
	var err error
	for attempt := range maxIDAttempts {
		vol.ID = model.NewVolunteerID()
		created, err = c.repo.Volunteer().Create(ctx, vol)
		if err == nil {
			break
		}
		if !errors.Is(err, model.ErrAlreadyExists) || attempt == maxIDAttempts-1 {
			return nil, goerr.Wrap(err, "failed to create volunteer")
		}
	}

	c.publish(ctx, types.EventVolunteerRegistered, created)
	logging.From(ctx).Info("volunteer registered", "volunteer_id", created.ID)
	return created, nil
}

// RegisterSurvivor stores a survivor whose phone completed verification
func (uc *RegistrationUseCase) RegisterSurvivor(ctx context.Context, input RegisterUserInput) (*model.User, error) {
	return uc.registerUser(ctx, types.UserRoleSurvivor, input)
}

// RegisterCoordinator stores a coordinator whose phone completed verification
func (uc *RegistrationUseCase) RegisterCoordinator(ctx context.Context, input RegisterUserInput) (*model.User, error) {
	return uc.registerUser(ctx, types.UserRoleCoordinator, input)
}

func (uc *RegistrationUseCase) registerUser(ctx context.Context, role types.UserRole, input RegisterUserInput) (*model.User, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" {
		return nil, goerr.Wrap(ErrMissingField, "name is required", goerr.V(FieldKey, "name"))
	}
	if phone == "" {
		return nil, goerr.Wrap(ErrMissingField, "phone is required", goerr.V(FieldKey, "phone"))
	}

	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	verified, err := c.repo.Verification().GetVerified(ctx, phone)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up verified phone", goerr.V(model.PhoneKey, phone))
	}
	if verified == nil {
		return nil, goerr.Wrap(ErrUnverifiedPhone, "phone must be verified before registration",
			goerr.V(model.PhoneKey, phone), goerr.V("role", role))
	}

	if err := uc.ensurePhoneAvailable(ctx, phone); err != nil {
		return nil, err
	}

	user := &model.User{
		Role:         role,
		Name:         name,
		Phone:        phone,
		Verified:     true,
		Location:     input.Location,
		Organization: input.Organization,
		CreatedAt:    c.timestamp(),
	}

	var created *model.User
	for attempt := range maxIDAttempts {
		user.ID = model.NewUserID()
		created, err = c.repo.User().Create(ctx, user)
		if err == nil {
			break
		}
		if !errors.Is(err, model.ErrAlreadyExists) || attempt == maxIDAttempts-1 {
			return nil, goerr.Wrap(err, "failed to create user", goerr.V("role", role))
		}
	}

	logging.From(ctx).Info("user registered", "user_id", created.ID, "role", role)
	return created, nil
}

// ensurePhoneAvailable rejects a phone registered under any role. Must hold the command lock.
func (uc *RegistrationUseCase) ensurePhoneAvailable(ctx context.Context, phone string) error {
	vol, err := uc.core.repo.Volunteer().GetByPhone(ctx, phone)
	if err != nil {
		return goerr.Wrap(err, "failed to look up volunteer by phone")
	}
	if vol != nil {
		return goerr.Wrap(ErrDuplicatePhone, "phone belongs to a volunteer", goerr.V(model.PhoneKey, phone))
	}

	user, err := uc.core.repo.User().GetByPhone(ctx, phone)
	if err != nil {
		return goerr.Wrap(err, "failed to look up user by phone")
	}
	if user != nil {
		return goerr.Wrap(ErrDuplicatePhone, "phone belongs to a registered user",
			goerr.V(model.PhoneKey, phone), goerr.V("role", user.Role))
	}
	return nil
}

func (uc *RegistrationUseCase) ListVolunteers(ctx context.Context) ([]*model.Volunteer, error) {
	volunteers, err := uc.core.repo.Volunteer().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list volunteers")
	}
	return volunteers, nil
}

// ListUsers returns every registered participant grouped by role
func (uc *RegistrationUseCase) ListUsers(ctx context.Context) (*model.UserDirectory, error) {
	volunteers, err := uc.ListVolunteers(ctx)
	if err != nil {
		return nil, err
	}
	survivors, err := uc.core.repo.User().List(ctx, types.UserRoleSurvivor)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list survivors")
	}
	coordinators, err := uc.core.repo.User().List(ctx, types.UserRoleCoordinator)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list coordinators")
	}

	return &model.UserDirectory{
		Volunteers:   volunteers,
		Survivors:    survivors,
		Coordinators: coordinators,
	}, nil
}
