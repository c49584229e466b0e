package http

import (
	"net/http"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/go-chi/chi/v5"
)

func listSafeZonesHandler(uc *usecase.SafeZoneUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zones, err := uc.List(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, orEmpty(zones))
	}
}

func updateSafeZoneHandler(uc *usecase.SafeZoneUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.UpdateSafeZoneInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		zone, err := uc.Update(r.Context(), model.SafeZoneID(chi.URLParam(r, "id")), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, zone)
	}
}
