package entry

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ashikrreddy06/Split-Wise/pkg/middleware"
	"github.com/Ashikrreddy06/Split-Wise/pkg/response"
)

// Handler handles HTTP requests for ledger entry operations
type Handler struct {
	service *Service
}

// NewHandler creates a new entry handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for entry endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Replace)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /entries
// @Summary      Create a ledger entry
// @Description  Record an expense or settlement; splits are resolved with the EQUAL, EXACT, PERCENT, or SHARES strategy
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        request body CreateEntryRequest true "Entry creation request"
// @Success      201 {object} response.APIResponse{data=EntryResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /entries [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	applyDefaultPayer(r, &req)

	e, err := h.service.Create(r.Context(), &req)
	if err != nil {
		// Validation and split calculator errors are all recoverable
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, e.ToResponse())
}

// List handles GET /entries
// @Summary      List ledger entries
// @Description  List entries newest-first, optionally filtered by group
// @Tags         entries
// @Produce      json
// @Param        group_id query string false "Group ID filter"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]EntryResponse}
// @Router       /entries [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var groupID *string
	if g := r.URL.Query().Get("group_id"); g != "" {
		groupID = &g
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	entries, total, err := h.service.List(r.Context(), groupID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list entries")
		return
	}

	responses := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = e.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, responses, meta)
}

// GetByID handles GET /entries/{id}
// @Summary      Get entry by ID
// @Tags         entries
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} response.APIResponse{data=EntryResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /entries/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get entry")
		return
	}

	response.JSON(w, http.StatusOK, e.ToResponse())
}

// Replace handles PUT /entries/{id}
// @Summary      Replace an entry
// @Description  Replace-in-place edit by id; the record and its splits are rebuilt from the request
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        id path string true "Entry ID"
// @Param        request body CreateEntryRequest true "Full replacement entry"
// @Success      200 {object} response.APIResponse{data=EntryResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /entries/{id} [put]
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	applyDefaultPayer(r, &req)

	e, err := h.service.Replace(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, e.ToResponse())
}

// Delete handles DELETE /entries/{id}
// @Summary      Delete an entry
// @Description  Remove the entry from the set fed to the aggregator; balances recompute on the next read
// @Tags         entries
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /entries/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete entry")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Entry deleted successfully"})
}

// applyDefaultPayer fills the payer from the acting person header when the
// request leaves it empty
func applyDefaultPayer(r *http.Request, req *CreateEntryRequest) {
	if req.PayerID != "" {
		return
	}
	if actorID, ok := middleware.GetPersonID(r.Context()); ok {
		req.PayerID = actorID
	}
}
