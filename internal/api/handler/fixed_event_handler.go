package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/auratyme/dayplan/internal/api/validation"
	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/service"
	"github.com/auratyme/dayplan/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type FixedEventHandler struct {
	service service.FixedEventService
}

func NewFixedEventHandler(service service.FixedEventService) *FixedEventHandler {
	return &FixedEventHandler{service: service}
}

// Create handles POST /v1/users/{userId}/fixed-events
// @Summary Create a fixed event
// @Description Register a non-movable block the scheduler must route tasks around
// @Tags fixed-events
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreateFixedEventRequest true "Fixed event creation request"
// @Success 201 {object} domain.FixedEventResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/fixed-events [post]
func (h *FixedEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateFixedEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	event, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create fixed event").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event.ToResponse())
}

// List handles GET /v1/users/{userId}/fixed-events
// @Summary List fixed events
// @Tags fixed-events
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} []domain.FixedEventResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/fixed-events [get]
func (h *FixedEventHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	events, err := h.service.List(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list fixed events").Write(w)
		return
	}

	responses := make([]domain.FixedEventResponse, len(events))
	for i := range events {
		responses[i] = events[i].ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// Delete handles DELETE /v1/users/{userId}/fixed-events/{eventId}
// @Summary Delete a fixed event
// @Tags fixed-events
// @Param userId path string true "User ID" format(uuid)
// @Param eventId path string true "Fixed event ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/fixed-events/{eventId} [delete]
func (h *FixedEventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	eventID, err := uuid.Parse(chi.URLParam(r, "eventId"))
	if err != nil {
		problem.BadRequest("Invalid fixed event ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Fixed event not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete fixed event").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
