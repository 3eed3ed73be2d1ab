package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/langfuse"
	"github.com/auratyme/dayplan/internal/llm"
	"github.com/auratyme/dayplan/internal/service"
	"github.com/auratyme/dayplan/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// RefinementHandler handles schedule refinement endpoints.
type RefinementHandler struct {
	refinementService service.RefinementService
	langfuseClient    langfuse.Client
}

func NewRefinementHandler(refinementService service.RefinementService, langfuseClient langfuse.Client) *RefinementHandler {
	return &RefinementHandler{refinementService: refinementService, langfuseClient: langfuseClient}
}

// Get handles GET /v1/users/{userId}/schedule/refinement?date=YYYY-MM-DD
// @Summary Get LLM-powered suggestions for a generated schedule
// @Description Ask the configured LLM for optional, non-binding phrasing/ordering suggestions on an already generated schedule.
// @Tags refinement
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date query string true "Target date" format(date)
// @Success 200 {object} domain.RefinementSuggestion
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Schedule not found"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/schedule/refinement [get]
func (h *RefinementHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	targetDate, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		problem.BadRequest("date query parameter must be YYYY-MM-DD").Write(w)
		return
	}

	result, err := h.refinementService.Generate(r.Context(), userID, targetDate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No schedule found for that date").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate refinement suggestions from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate refinement suggestions").Write(w)
		return
	}

	// Attach the OTEL trace ID, if present, so feedback can reference this run.
	span := trace.SpanFromContext(r.Context())
	resp := struct {
		domain.RefinementSuggestion
		TraceID string `json:"trace_id,omitempty"`
	}{RefinementSuggestion: *result}
	if span.SpanContext().IsValid() {
		resp.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// FeedbackRequest is the request body for refinement feedback.
// @Description Request body for submitting feedback on refinement suggestions.
type FeedbackRequest struct {
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Score   int    `json:"score" example:"4" minimum:"1" maximum:"5"`
	Comment string `json:"comment,omitempty" example:"The suggestions were helpful!"`
}

// PostFeedback handles POST /v1/users/{userId}/schedule/refinement/feedback
// @Summary Submit feedback on refinement suggestions
// @Tags refinement
// @Accept json
// @Param userId path string true "User ID" format(uuid)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem
// @Router /users/{userId}/schedule/refinement/feedback [post]
func (h *RefinementHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}
	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}
