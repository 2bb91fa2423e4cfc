package errorhandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/response"
)

// HandleError logs the failure with the request id and writes the error envelope.
func HandleError(ctx context.Context, w http.ResponseWriter, status int, code, message string, err error) {
	event := logger.FromContext(ctx).Error().
		Str("error_code", code).
		Int("status_code", status)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(message)

	response.Error(w, status, code, message)
}

// HandleStorageError translates an unclassified persistence failure.
// Connectivity problems become 503 so callers can retry, everything else is a 500.
func HandleStorageError(ctx context.Context, w http.ResponseWriter, message string, err error) {
	if errors.Is(err, database.ErrConnectivity) {
		HandleError(ctx, w, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database temporarily unavailable", err)
		return
	}
	HandleError(ctx, w, http.StatusInternalServerError, "INTERNAL_ERROR", message, err)
}

// LogValidationError logs validation errors with details
func LogValidationError(ctx context.Context, fieldErrors map[string]string) {
	logger.FromContext(ctx).Warn().
		Interface("validation_errors", fieldErrors).
		Msg("Validation error")
}
