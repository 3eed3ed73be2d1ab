package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/schedule"
	"github.com/auratyme/dayplan/internal/service"
	"github.com/auratyme/dayplan/pkg/pagination"
	"github.com/auratyme/dayplan/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	defaultWakeSuggestionMinCycles    = 4
	defaultWakeSuggestionMaxCycles    = 6
	defaultWakeSuggestionCycleMinutes = 90
)

type ScheduleHandler struct {
	service service.ScheduleService
}

func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Generate handles POST /v1/users/{userId}/schedule
// @Summary Generate a daily schedule
// @Description Run the scheduling pipeline for a target date using the user's tasks, fixed events, and profile
// @Tags schedule
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.GenerateScheduleRequest true "Schedule generation request"
// @Success 201 {object} domain.ScheduleResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/schedule [post]
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	record, err := h.service.Generate(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.BadRequest("Unable to generate a schedule for the given inputs: " + err.Error()).Write(w)
		return
	}

	core, err := record.ToCore()
	if err != nil {
		problem.InternalError("Failed to decode generated schedule").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domain.ToScheduleResponse(core))
}

// Get handles GET /v1/users/{userId}/schedule?date=YYYY-MM-DD
// @Summary Get a previously generated schedule
// @Tags schedule
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date query string true "Target date" format(date)
// @Success 200 {object} domain.ScheduleResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Schedule not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/schedule [get]
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	dateStr := r.URL.Query().Get("date")
	targetDate, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		problem.BadRequest("date query parameter must be YYYY-MM-DD").Write(w)
		return
	}

	record, err := h.service.Get(r.Context(), userID, targetDate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No schedule found for that date").Write(w)
			return
		}
		problem.InternalError("Failed to get schedule").Write(w)
		return
	}

	core, err := record.ToCore()
	if err != nil {
		problem.InternalError("Failed to decode generated schedule").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.ToScheduleResponse(core))
}

// WakeTimeSuggestions handles GET /v1/users/{userId}/schedule/wake-time-suggestions
// @Summary Suggest wake times aligned to whole sleep cycles
// @Description Informational only; does not affect the deterministic schedule pipeline.
// @Tags schedule
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param bedtime query string true "Bedtime" format(HH:MM)
// @Param cycle_minutes query int false "Minutes per sleep cycle" default(90)
// @Param min_cycles query int false "Minimum cycle count" default(4)
// @Param max_cycles query int false "Maximum cycle count" default(6)
// @Success 200 {object} []string
// @Failure 400 {object} problem.Problem
// @Router /users/{userId}/schedule/wake-time-suggestions [get]
func (h *ScheduleHandler) WakeTimeSuggestions(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	bedtime, err := time.Parse("15:04", r.URL.Query().Get("bedtime"))
	if err != nil {
		problem.BadRequest("bedtime query parameter must be HH:MM").Write(w)
		return
	}
	bedtimeMin := bedtime.Hour()*60 + bedtime.Minute()

	cycleMinutes := intQuery(r, "cycle_minutes", defaultWakeSuggestionCycleMinutes)
	minCycles := intQuery(r, "min_cycles", defaultWakeSuggestionMinCycles)
	maxCycles := intQuery(r, "max_cycles", defaultWakeSuggestionMaxCycles)

	suggestions := schedule.SuggestWakeTimes(bedtimeMin, minCycles, maxCycles, cycleMinutes)
	clockStrings := make([]string, 0, len(suggestions))
	for _, m := range suggestions {
		clockStrings = append(clockStrings, domain.FormatClock(m))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clockStrings)
}

// ListHistory handles GET /v1/users/{userId}/schedule/history?cursor=...&limit=...
// @Summary List past generated schedules
// @Description Paginated, newest-first list of a user's previously generated schedules
// @Tags schedule
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param cursor query string false "Opaque pagination cursor from a previous response"
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} domain.ScheduleHistoryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/schedule/history [get]
func (h *ScheduleHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	limit := intQuery(r, "limit", pagination.DefaultLimit)
	records, nextCursor, err := h.service.ListHistory(r.Context(), userID, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("cursor query parameter is malformed").Write(w)
			return
		}
		problem.InternalError("Failed to list schedule history").Write(w)
		return
	}

	items := make([]domain.ScheduleResponse, 0, len(records))
	for i := range records {
		core, err := records[i].ToCore()
		if err != nil {
			problem.InternalError("Failed to decode generated schedule").Write(w)
			return
		}
		items = append(items, domain.ToScheduleResponse(core))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.ScheduleHistoryResponse{
		Schedules:  items,
		NextCursor: nextCursor,
	})
}

func intQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
