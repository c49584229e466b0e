package http

import (
	"context"
	"net/http"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
)

func listVolunteersHandler(uc *usecase.RegistrationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		volunteers, err := uc.ListVolunteers(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, orEmpty(volunteers))
	}
}

func registerVolunteerHandler(uc *usecase.RegistrationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.RegisterVolunteerInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		vol, err := uc.RegisterVolunteer(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, vol)
	}
}

// registerUserHandler serves survivor and coordinator registration, which differ only in role
func registerUserHandler(register func(context.Context, usecase.RegisterUserInput) (*model.User, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.RegisterUserInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		user, err := register(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, user)
	}
}

func listUsersHandler(uc *usecase.RegistrationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir, err := uc.ListUsers(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		dir.Volunteers = orEmpty(dir.Volunteers)
		dir.Survivors = orEmpty(dir.Survivors)
		dir.Coordinators = orEmpty(dir.Coordinators)
		writeJSON(w, r, http.StatusOK, dir)
	}
}
