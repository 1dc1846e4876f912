package handler

import (
	"net/http"

	"stock-admin/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles the bulk data actions.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// RefillMocks handles POST /admin/refill-mocks requests.
func (h *AdminHandler) RefillMocks(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RefillMockData(r.Context()); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearData handles DELETE /admin/clear-data requests.
func (h *AdminHandler) ClearData(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAllData(r.Context()); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
