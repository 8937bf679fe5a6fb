package trip

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adhamel/tripsplit/pkg/middleware"
	"github.com/adhamel/tripsplit/pkg/response"
)

// Handler handles HTTP requests for trip operations
type Handler struct {
	service *Service
}

// NewHandler creates a new trip handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for trip endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListMine)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/members", h.AddMember)
	r.Delete("/{id}/members/{participantId}", h.RemoveMember)

	return r
}

// Create handles POST /trips
// @Summary      Create a trip
// @Description  Create a trip with a single currency; the creator becomes its first member
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body CreateTripRequest true "Trip creation request"
// @Success      201 {object} response.APIResponse{data=TripResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /trips [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := middleware.GetParticipantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Participant context required")
		return
	}

	var req CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "name is required")
		return
	}
	if len(req.CurrencyCode) != 3 {
		response.BadRequest(w, "currency_code must be a 3-letter code")
		return
	}

	t, err := h.service.Create(r.Context(), creatorID, &req)
	if err != nil {
		response.InternalError(w, "Failed to create trip")
		return
	}

	response.JSON(w, http.StatusCreated, t.ToResponse())
}

// GetByID handles GET /trips/{id}
// @Summary      Get trip by ID
// @Description  Get a trip with its member list
// @Tags         trips
// @Produce      json
// @Param        id path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=TripResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	t, members, err := h.service.GetByIDWithMembers(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get trip")
		return
	}

	resp := t.ToResponse()
	resp.Members = make([]*TripMemberResponse, len(members))
	for i, m := range members {
		resp.Members[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// ListMine handles GET /trips
// @Summary      List the acting participant's trips
// @Tags         trips
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]TripResponse}
// @Router       /trips [get]
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	participantID, ok := middleware.GetParticipantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Participant context required")
		return
	}

	trips, err := h.service.ListForParticipant(r.Context(), participantID)
	if err != nil {
		response.InternalError(w, "Failed to list trips")
		return
	}

	resp := make([]*TripResponse, len(trips))
	for i, t := range trips {
		resp[i] = t.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// AddMember handles POST /trips/{id}/members
// @Summary      Add a member to a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id path int true "Trip ID"
// @Param        request body AddMemberRequest true "Member to add"
// @Success      201 {object} response.APIResponse{data=TripMemberResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /trips/{id}/members [post]
func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.AddMember(r.Context(), tripID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrMemberAlreadyExists):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to add member")
		}
		return
	}

	response.JSON(w, http.StatusCreated, m.ToResponse())
}

// RemoveMember handles DELETE /trips/{id}/members/{participantId}
// @Summary      Remove a member from a trip
// @Tags         trips
// @Param        id path int true "Trip ID"
// @Param        participantId path int true "Participant ID"
// @Success      204
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/members/{participantId} [delete]
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}
	participantID, err := strconv.ParseInt(chi.URLParam(r, "participantId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	if err := h.service.RemoveMember(r.Context(), tripID, participantID); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to remove member")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
