package handler

import (
	"encoding/json"
	"net/http"

	"mosfood/internal/upstream"

	"github.com/rs/zerolog"
)

// KeyHandler manages the upstream API key.
type KeyHandler struct {
	keys   *upstream.KeyStore
	logger zerolog.Logger
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler(keys *upstream.KeyStore, logger zerolog.Logger) *KeyHandler {
	return &KeyHandler{
		keys:   keys,
		logger: logger.With().Str("handler", "key").Logger(),
	}
}

type setKeyRequest struct {
	APIKey string `json:"api_key"`
}

type setKeyResponse struct {
	StudentID int `json:"student_id"`
}

// Set handles POST /api/key requests. A malformed key is rejected
// locally; nothing is sent upstream.
func (h *KeyHandler) Set(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req setKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.keys.Set(req.APIKey); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, setKeyResponse{StudentID: h.keys.StudentID()})
}
