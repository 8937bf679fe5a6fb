package settlement

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adhamel/tripsplit/pkg/middleware"
	"github.com/adhamel/tripsplit/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)

	// Trip-level views
	r.Get("/trip/{tripId}", h.ListByTrip)
	r.Get("/trip/{tripId}/balances", h.TripBalances)
	r.Get("/trip/{tripId}/settle-up", h.SettleUp)

	return r
}

// Create handles POST /settlements
// @Summary      Record a settlement
// @Description  Record that the acting participant paid another trip member, reducing their debt
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body CreateSettlementRequest true "Settlement creation request"
// @Success      201 {object} response.APIResponse{data=SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /settlements [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	fromID, ok := middleware.GetParticipantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Participant context required")
		return
	}

	var req CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	settled, err := h.service.Create(r.Context(), fromID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrCannotSettleSelf):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotMember):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "Failed to record settlement")
		}
		return
	}

	response.JSON(w, http.StatusCreated, settled.ToResponse())
}

// ListByTrip handles GET /settlements/trip/{tripId}
// @Summary      List settlements by trip
// @Tags         settlements
// @Produce      json
// @Param        tripId path int true "Trip ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Router       /settlements/trip/{tripId} [get]
func (h *Handler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "tripId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	settlements, total, err := h.service.ListByTrip(r.Context(), tripID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list settlements")
		return
	}

	resp := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		resp[i] = s.ToResponse()
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	response.JSONWithMeta(w, http.StatusOK, resp, &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	})
}

// TripBalances handles GET /settlements/trip/{tripId}/balances
// @Summary      Get trip balances
// @Description  Net position per member plus the netted pairwise debts, derived from all expenses and settlements
// @Tags         settlements
// @Produce      json
// @Param        tripId path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=TripBalancesResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /settlements/trip/{tripId}/balances [get]
func (h *Handler) TripBalances(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "tripId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	balances, err := h.service.TripBalances(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrUnbalanced):
			// Stored shares reference someone outside the trip: a data
			// integrity problem, not a bad request.
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to compute balances")
		}
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// SettleUp handles GET /settlements/trip/{tripId}/settle-up
// @Summary      Get settle-up instructions
// @Description  The minimal set of payments that would zero every member's balance
// @Tags         settlements
// @Produce      json
// @Param        tripId path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=SettleUpResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /settlements/trip/{tripId}/settle-up [get]
func (h *Handler) SettleUp(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "tripId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	result, err := h.service.SettleUp(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrUnbalanced):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to compute settle-up instructions")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}
