package http

import (
	"net/http"

	"github.com/MohitGedela/GeoShield/pkg/usecase"
)

func sendCodeHandler(uc *usecase.VerificationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.SendCodeInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.SendCode(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, result)
	}
}

func verifyCodeHandler(uc *usecase.VerificationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.VerifyCodeInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.VerifyCode(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, result)
	}
}
