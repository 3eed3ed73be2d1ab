package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/langfuse"
	"github.com/auratyme/dayplan/internal/llm"
	"github.com/google/uuid"
)

type MockRefinementService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, targetDate time.Time) (*domain.RefinementSuggestion, error)
}

func (m *MockRefinementService) Generate(ctx context.Context, userID uuid.UUID, targetDate time.Time) (*domain.RefinementSuggestion, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, targetDate)
	}
	return nil, domain.ErrNotFound
}

type fakeLangfuseClient struct {
	createScoreFunc func(ctx context.Context, in langfuse.ScoreInput) error
}

func (f *fakeLangfuseClient) IsEnabled() bool { return true }

func (f *fakeLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "trace-id", nil
}

func (f *fakeLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if f.createScoreFunc != nil {
		return f.createScoreFunc(ctx, in)
	}
	return nil
}

func TestRefinementHandler_Get(t *testing.T) {
	userID := uuid.New()

	handler := NewRefinementHandler(&MockRefinementService{
		generateFunc: func(ctx context.Context, uID uuid.UUID, targetDate time.Time) (*domain.RefinementSuggestion, error) {
			return &domain.RefinementSuggestion{Summary: "Looks balanced"}, nil
		},
	}, &fakeLangfuseClient{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/schedule/refinement?date=2026-08-03", nil)
	req = withURLParams(req, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Get() status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRefinementHandler_Get_NotFound(t *testing.T) {
	userID := uuid.New()

	handler := NewRefinementHandler(&MockRefinementService{
		generateFunc: func(ctx context.Context, uID uuid.UUID, targetDate time.Time) (*domain.RefinementSuggestion, error) {
			return nil, domain.ErrNotFound
		},
	}, &fakeLangfuseClient{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/schedule/refinement?date=2026-08-03", nil)
	req = withURLParams(req, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Get() status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRefinementHandler_Get_LLMUnavailable(t *testing.T) {
	userID := uuid.New()

	handler := NewRefinementHandler(&MockRefinementService{
		generateFunc: func(ctx context.Context, uID uuid.UUID, targetDate time.Time) (*domain.RefinementSuggestion, error) {
			return nil, llm.ErrOpenAIUnavailable
		},
	}, &fakeLangfuseClient{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/schedule/refinement?date=2026-08-03", nil)
	req = withURLParams(req, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Get() status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestRefinementHandler_PostFeedback(t *testing.T) {
	userID := uuid.New()
	var scored langfuse.ScoreInput

	handler := NewRefinementHandler(&MockRefinementService{}, &fakeLangfuseClient{
		createScoreFunc: func(ctx context.Context, in langfuse.ScoreInput) error {
			scored = in
			return nil
		},
	})

	body := `{"trace_id":"abc123","score":4,"comment":"nice"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/schedule/refinement/feedback", bytes.NewBufferString(body))
	req = withURLParams(req, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.PostFeedback(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("PostFeedback() status = %d, want %d, body: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}
	if scored.TraceID != "abc123" || scored.Value != 4 {
		t.Errorf("CreateScore called with %+v", scored)
	}
}

func TestRefinementHandler_PostFeedback_InvalidScore(t *testing.T) {
	userID := uuid.New()

	handler := NewRefinementHandler(&MockRefinementService{}, &fakeLangfuseClient{})

	body := `{"trace_id":"abc123","score":9}`
	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/schedule/refinement/feedback", bytes.NewBufferString(body))
	req = withURLParams(req, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.PostFeedback(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("PostFeedback() status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
