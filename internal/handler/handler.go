package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"stock-admin/internal/middleware"
	"stock-admin/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response carrying the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("request_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps err onto a status code. Domain errors keep their
// code and message; anything else is reported as an internal error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected service error")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	writeError(w, r, statusFor(domainErr), domainErr.Code, domainErr.Message, logger)
}

// statusFor returns the HTTP status for a domain error.
func statusFor(err *model.DomainError) int {
	switch err {
	case model.ErrInvalidName, model.ErrInvalidID, model.ErrInvalidQuantity:
		return http.StatusBadRequest
	case model.ErrCategoryNotFound, model.ErrProductNotFound:
		return http.StatusNotFound
	case model.ErrCategoryInUse, model.ErrDuplicateName:
		return http.StatusConflict
	case model.ErrInvalidCredentials, model.ErrMissingToken:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// decodeJSON reads the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// pathID parses the {id} path value as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.ErrInvalidID
	}
	return id, nil
}
