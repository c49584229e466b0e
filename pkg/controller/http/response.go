package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/MohitGedela/GeoShield/pkg/utils/errutil"
	"github.com/MohitGedela/GeoShield/pkg/utils/safe"
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
)

// maxBodyBytes bounds every JSON request body
const maxBodyBytes = 1 << 20

var (
	errInvalidBody = goerr.New("invalid request body")

	validate = validator.New()
)

// decodeJSON reads the request body into dst without validating it
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return goerr.Wrap(errInvalidBody, err.Error())
	}
	return nil
}

// validateInput checks the struct tags of a decoded payload
func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return goerr.Wrap(errInvalidBody, err.Error())
	}
	return nil
}

// bind decodes and validates the request body
func bind(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := decodeJSON(w, r, dst); err != nil {
		return err
	}
	return validateInput(dst)
}

// statusOf maps an error to its HTTP status: missing records are 404, bad input is 400
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, errInvalidBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

// orEmpty keeps list responses as [] instead of null
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
