package snapshot

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashikrreddy06/Split-Wise/pkg/response"
)

// Handler handles HTTP requests for snapshot operations
type Handler struct {
	service *Service
}

// NewHandler creates a new snapshot handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for snapshot endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Export)
	r.Post("/", h.Import)

	return r
}

// Export handles GET /snapshot
// @Summary      Export all data
// @Description  Download a portable snapshot of persons, groups, entries and settings
// @Tags         snapshot
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Snapshot}
// @Failure      500 {object} response.APIResponse
// @Router       /snapshot [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Export(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to export snapshot")
		return
	}

	response.JSON(w, http.StatusOK, snap)
}

// Import handles POST /snapshot
// @Summary      Import a snapshot
// @Description  Replace all current data with the uploaded snapshot
// @Tags         snapshot
// @Accept       json
// @Produce      json
// @Param        request body Snapshot true "Snapshot to restore"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /snapshot [post]
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	var snap Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.Import(r.Context(), &snap); err != nil {
		if errors.Is(err, ErrUnsupportedVersion) || errors.Is(err, ErrUnknownPersonRef) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to import snapshot")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
