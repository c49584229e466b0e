package http

import (
	"net/http"

	"github.com/MohitGedela/GeoShield/pkg/usecase"
)

func checkInHandler(uc *usecase.CheckInUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.CheckInInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		checkIn, err := uc.CheckIn(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, checkIn)
	}
}

func listCheckInsHandler(uc *usecase.CheckInUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checkIns, err := uc.List(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, orEmpty(checkIns))
	}
}
