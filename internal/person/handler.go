package person

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashikrreddy06/Split-Wise/pkg/response"
)

// Handler handles HTTP requests for person operations
type Handler struct {
	service *Service
}

// NewHandler creates a new person handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for person endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /persons
// @Summary      Create a new person
// @Description  Create a person; marking them primary clears the flag on everyone else
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        request body CreatePersonRequest true "Person creation request"
// @Success      201 {object} response.APIResponse{data=Person}
// @Failure      400 {object} response.APIResponse
// @Router       /persons [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	person, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create person")
		return
	}

	response.JSON(w, http.StatusCreated, person)
}

// List handles GET /persons
// @Summary      List all persons
// @Tags         persons
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Person}
// @Router       /persons [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	persons, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list persons")
		return
	}

	response.JSON(w, http.StatusOK, persons)
}

// GetByID handles GET /persons/{id}
// @Summary      Get person by ID
// @Tags         persons
// @Produce      json
// @Param        id path string true "Person ID"
// @Success      200 {object} response.APIResponse{data=Person}
// @Failure      404 {object} response.APIResponse
// @Router       /persons/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	person, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get person")
		return
	}

	response.JSON(w, http.StatusOK, person)
}

// Update handles PUT /persons/{id}
// @Summary      Update a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        id path string true "Person ID"
// @Param        request body UpdatePersonRequest true "Person update request"
// @Success      200 {object} response.APIResponse{data=Person}
// @Failure      404 {object} response.APIResponse
// @Router       /persons/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	person, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrNameRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update person")
		return
	}

	response.JSON(w, http.StatusOK, person)
}

// Delete handles DELETE /persons/{id}
// @Summary      Delete a person
// @Description  Remove a person; their historical entries remain and keep aggregating
// @Tags         persons
// @Produce      json
// @Param        id path string true "Person ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /persons/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete person")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Person deleted successfully"})
}
