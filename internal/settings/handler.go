package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashikrreddy06/Split-Wise/pkg/response"
)

// Handler handles HTTP requests for settings operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settings handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settings endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Put("/", h.Update)

	return r
}

// Get handles GET /settings
// @Summary      Get app settings
// @Tags         settings
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Settings}
// @Failure      500 {object} response.APIResponse
// @Router       /settings [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch settings")
		return
	}

	response.JSON(w, http.StatusOK, settings)
}

// Update handles PUT /settings
// @Summary      Update app settings
// @Description  Set the display currency symbol
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body Settings true "New settings"
// @Success      200 {object} response.APIResponse{data=Settings}
// @Failure      400 {object} response.APIResponse
// @Router       /settings [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	settings, err := h.service.Update(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrSymbolRequired) || errors.Is(err, ErrSymbolTooLong) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update settings")
		return
	}

	response.JSON(w, http.StatusOK, settings)
}
