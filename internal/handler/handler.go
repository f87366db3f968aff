package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mosfood/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto the storefront's HTTP
// vocabulary. Domain errors carry their own corrective message;
// anything else is an upstream failure and is reported as such without
// leaking transport detail.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeInvalidCombination:
			status = http.StatusUnprocessableEntity
		case model.ErrCodeKeyRequired, model.ErrCodeUnauthorised:
			status = http.StatusUnauthorized
		case model.ErrCodeOrderLimit:
			status = http.StatusConflict
		case model.ErrCodeOrderNotFound:
			status = http.StatusNotFound
		}
		logger.Warn().Str("code", domainErr.Code).Int("status", status).Msg(domainErr.Message)
		writeJSON(w, status, model.ErrorResponse{Error: domainErr.Code, Message: domainErr.Message})
		return
	}

	logger.Error().Err(err).Msg("upstream failure")
	writeJSON(w, http.StatusBadGateway, model.ErrorResponse{
		Error:   model.ErrCodeUpstreamError,
		Message: "The order service is temporarily unavailable",
	})
}
