package http

import (
	"net/http"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/go-chi/chi/v5"
)

func listMessagesHandler(uc *usecase.MessagingUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := uc.ListMessages(r.Context(), r.URL.Query().Get("userId"))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, orEmpty(messages))
	}
}

func sendMessageHandler(uc *usecase.MessagingUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.SendMessageInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		msg, err := uc.SendMessage(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, msg)
	}
}

func markReadHandler(uc *usecase.MessagingUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, err := uc.MarkRead(r.Context(), model.MessageID(chi.URLParam(r, "id")))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, msg)
	}
}

func forwardAlertHandler(uc *usecase.MessagingUseCase) http.HandlerFunc {
	type response struct {
		Success bool           `json:"success"`
		Alerts  []*model.Alert `json:"alerts"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.ForwardAlertInput
		if err := bind(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}

		alerts, err := uc.ForwardAlert(r.Context(), input)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, response{Success: true, Alerts: alerts})
	}
}
