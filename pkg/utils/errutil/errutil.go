package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs the error with a message and reports it to Sentry when a client is
// configured. It returns err unchanged.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logging.From(ctx).Error(msg, errorAttrs(err)...)
	report(ctx, err)
	return err
}

// ErrorResponse is the JSON body of every failed gateway call
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleHTTP writes {"error": message} with statusCode. Server errors are logged with
// their goerr context and reported to Sentry; the client only sees a generic message.
// Client errors are logged at warn level and echo the error text.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	if err == nil {
		return
	}

	message := err.Error()
	if statusCode >= http.StatusInternalServerError {
		attrs := append([]any{"status", statusCode}, errorAttrs(err)...)
		logging.From(ctx).Error("HTTP error", attrs...)
		report(ctx, err)
		message = http.StatusText(statusCode)
	} else {
		logging.From(ctx).Warn("HTTP client error", "status", statusCode, "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); encErr != nil {
		logging.From(ctx).Error("failed to write error response", "error", encErr.Error())
	}
}

func errorAttrs(err error) []any {
	var ge *goerr.Error
	if errors.As(err, &ge) {
		return []any{
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		}
	}
	return []any{"error", err.Error()}
}

func report(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		var ge *goerr.Error
		if errors.As(err, &ge) {
			for k, v := range ge.Values() {
				scope.SetExtra(k, v)
			}
		}
		if eventID := hub.CaptureException(err); eventID != nil {
			logging.From(ctx).Debug("error reported to sentry", slog.String("event_id", string(*eventID)))
		}
	})
}
