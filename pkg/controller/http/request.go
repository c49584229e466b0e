package http

import (
	"net/http"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/go-chi/chi/v5"
)

func listRequestsHandler(uc *usecase.RequestUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := uc.List(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, orEmpty(requests))
	}
}

func getRequestHandler(uc *usecase.RequestUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := uc.Get(r.Context(), model.RequestID(chi.URLParam(r, "id")))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, req)
	}
}

func createRequestHandler(uc *usecase.RequestUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.CreateRequestInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		req, err := uc.Create(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, req)
	}
}

func updateRequestHandler(uc *usecase.RequestUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.UpdateRequestInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		req, err := uc.Update(r.Context(), model.RequestID(chi.URLParam(r, "id")), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, req)
	}
}

func acceptRequestHandler(uc *usecase.AssignmentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.AcceptInput
		if err := decodeJSON(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}
		input.RequestID = model.RequestID(chi.URLParam(r, "id"))
		if err := validateInput(input); err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.Accept(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, transitionStatus(result), result)
	}
}

func completeRequestHandler(uc *usecase.AssignmentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.CompleteInput
		if err := decodeJSON(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}
		input.RequestID = model.RequestID(chi.URLParam(r, "id"))
		if err := validateInput(input); err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.Complete(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, transitionStatus(result), result)
	}
}

// transitionStatus reports a rejected transition as 404 or 409. The body always
// carries the result so the client can read the reason.
func transitionStatus(result *usecase.TransitionResult) int {
	switch {
	case result.Updated():
		return http.StatusOK
	case result.Reason == types.RejectRequestNotFound:
		return http.StatusNotFound
	default:
		return http.StatusConflict
	}
}
