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

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Upsert handles PUT /v1/users/{userId}/profile
// @Summary Create or update a scheduling profile
// @Description Set the age, MEQ score, and sleep-need inputs used by the chronotype classifier
// @Tags profile
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.UpsertUserProfileRequest true "Profile upsert request"
// @Success 200 {object} domain.UserProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/profile [put]
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.UpsertUserProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to update profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// Get handles GET /v1/users/{userId}/profile
// @Summary Get the scheduling profile
// @Tags profile
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.UserProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to get profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}
