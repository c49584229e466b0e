package usecase_test

import (
	"context"
	"testing"

	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func verifyPhone(t *testing.T, f *fixture, phone string, role types.UserRole) {
	t.Helper()
	ctx := context.Background()
	sent, err := f.uc.Verification.SendCode(ctx, usecase.SendCodeInput{Phone: phone, UserType: role})
	gt.NoError(t, err).Required()
	_, err = f.uc.Verification.VerifyCode(ctx, usecase.VerifyCodeInput{Phone: phone, Code: sent.Code})
	gt.NoError(t, err).Required()
}

func TestRegistration_RegisterVolunteer(t *testing.T) {
	f := setup(t)
	vol, err := f.uc.Registration.RegisterVolunteer(context.Background(), usecase.RegisterVolunteerInput{
		Name:      "  Aiko ",
		Phone:     "555-0001",
		Skills:    []string{"first aid", "first aid", ""},
		Resources: []string{"truck"},
	})
	gt.NoError(t, err).Required()
	gt.Value(t, vol.Name).Equal("Aiko")
	gt.Value(t, vol.Status).Equal(types.VolunteerStatusAvailable)
	gt.A(t, vol.ActiveMissions).Length(0)
	gt.Value(t, vol.CompletedMissions).Equal(0)
	gt.Value(t, vol.Skills).Equal([]string{"first aid"})
	gt.Value(t, f.rec.Types()).Equal([]types.EventType{types.EventVolunteerRegistered})
}

func TestRegistration_DuplicatePhone(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.registerVolunteer(t, "Aiko", "555-0001")
	f.rec.Reset()

	_, err := f.uc.Registration.RegisterVolunteer(ctx, usecase.RegisterVolunteerInput{Name: "Other", Phone: "555-0001"})
	gt.Error(t, err).Is(usecase.ErrDuplicatePhone)
	gt.Error(t, err).Is(usecase.ErrValidation)
	gt.A(t, f.rec.Types()).Length(0)

	volunteers, err := f.uc.Registration.ListVolunteers(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, volunteers).Length(1)

	// the phone is taken for every role
	verifyPhone(t, f, "555-0001", types.UserRoleSurvivor)
	_, err = f.uc.Registration.RegisterSurvivor(ctx, usecase.RegisterUserInput{Name: "Sam", Phone: "555-0001"})
	gt.Error(t, err).Is(usecase.ErrDuplicatePhone)

	users, err := f.uc.Registration.ListUsers(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, users.Survivors).Length(0)
	gt.A(t, users.Volunteers).Length(1)
}

func TestRegistration_MissingFields(t *testing.T) {
	f := setup(t)
	_, err := f.uc.Registration.RegisterVolunteer(context.Background(), usecase.RegisterVolunteerInput{Phone: "555-0001"})
	gt.Error(t, err).Is(usecase.ErrMissingField)

	_, err = f.uc.Registration.RegisterVolunteer(context.Background(), usecase.RegisterVolunteerInput{Name: "Aiko", Phone: "  "})
	gt.Error(t, err).Is(usecase.ErrMissingField)
}

func TestRegistration_SurvivorRequiresVerifiedPhone(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.uc.Registration.RegisterSurvivor(ctx, usecase.RegisterUserInput{Name: "Sam", Phone: "555-0200"})
	gt.Error(t, err).Is(usecase.ErrUnverifiedPhone)

	verifyPhone(t, f, "555-0200", types.UserRoleSurvivor)
	user, err := f.uc.Registration.RegisterSurvivor(ctx, usecase.RegisterUserInput{Name: "Sam", Phone: "555-0200"})
	gt.NoError(t, err).Required()
	gt.Value(t, user.Role).Equal(types.UserRoleSurvivor)
	gt.Bool(t, user.Verified).True()
	gt.A(t, f.rec.Types()).Length(0)
}

func TestRegistration_ListUsers(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.registerVolunteer(t, "Aiko", "555-0001")

	verifyPhone(t, f, "555-0200", types.UserRoleSurvivor)
	_, err := f.uc.Registration.RegisterSurvivor(ctx, usecase.RegisterUserInput{Name: "Sam", Phone: "555-0200"})
	gt.NoError(t, err).Required()

	verifyPhone(t, f, "555-0300", types.UserRoleCoordinator)
	_, err = f.uc.Registration.RegisterCoordinator(ctx, usecase.RegisterUserInput{
		Name:         "Cora",
		Phone:        "555-0300",
		Organization: "Red Cross",
	})
	gt.NoError(t, err).Required()

	dir, err := f.uc.Registration.ListUsers(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, dir.Volunteers).Length(1)
	gt.A(t, dir.Survivors).Length(1)
	gt.A(t, dir.Coordinators).Length(1).Required()
	gt.Value(t, dir.Coordinators[0].Organization).Equal("Red Cross")
}
