package balance

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashikrreddy06/Split-Wise/pkg/response"
)

// Handler handles HTTP requests for balance operations
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for balance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.NetBalances)
	r.Get("/suggested", h.SuggestedTransfers)
	r.Post("/settle", h.Settle)

	return r
}

// NetBalances handles GET /balances
// @Summary      Net balances
// @Description  Per-person net position recomputed from the full entry log; positive means owed money
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]PersonBalance}
// @Router       /balances [get]
func (h *Handler) NetBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.service.NetBalances(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// SuggestedTransfers handles GET /balances/suggested
// @Summary      Suggested transfers
// @Description  Greedy settlement plan that resolves all balances; not guaranteed minimal
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]TransferResponse}
// @Router       /balances/suggested [get]
func (h *Handler) SuggestedTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.service.SuggestedTransfers(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to compute suggested transfers")
		return
	}

	response.JSON(w, http.StatusOK, transfers)
}

// Settle handles POST /balances/settle
// @Summary      Record a transfer as paid
// @Description  Inserts a settlement-kind entry for the transfer and returns the recomputed balances
// @Tags         balances
// @Accept       json
// @Produce      json
// @Param        request body SettleRequest true "Transfer to record"
// @Success      201 {object} response.APIResponse{data=SettleResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /balances/settle [post]
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	var req SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Settle(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrSettleSelf) || errors.Is(err, ErrAmountNotPositive) || errors.Is(err, ErrPartyRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to record settlement")
		return
	}

	response.JSON(w, http.StatusCreated, result)
}
