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

type PresetHandler struct {
	service service.PresetService
}

func NewPresetHandler(service service.PresetService) *PresetHandler {
	return &PresetHandler{service: service}
}

// Create handles POST /v1/users/{userId}/presets
// @Summary Save a preference preset
// @Tags presets
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreatePresetRequest true "Preset creation request"
// @Success 201 {object} domain.SchedulePresetResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/presets [post]
func (h *PresetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreatePresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	preset, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to save preset").Write(w)
		return
	}

	resp, err := preset.ToResponse()
	if err != nil {
		problem.InternalError("Failed to encode preset").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// List handles GET /v1/users/{userId}/presets
// @Summary List saved presets
// @Tags presets
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} []domain.SchedulePresetResponse
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/presets [get]
func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	presets, err := h.service.List(r.Context(), userID)
	if err != nil {
		problem.InternalError("Failed to list presets").Write(w)
		return
	}

	responses := make([]domain.SchedulePresetResponse, 0, len(presets))
	for i := range presets {
		resp, err := presets[i].ToResponse()
		if err != nil {
			problem.InternalError("Failed to encode preset").Write(w)
			return
		}
		responses = append(responses, resp)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// Delete handles DELETE /v1/users/{userId}/presets/{presetId}
// @Summary Delete a saved preset
// @Tags presets
// @Param userId path string true "User ID" format(uuid)
// @Param presetId path string true "Preset ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/presets/{presetId} [delete]
func (h *PresetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	presetID, err := uuid.Parse(chi.URLParam(r, "presetId"))
	if err != nil {
		problem.BadRequest("Invalid preset ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, presetID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Preset not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete preset").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
