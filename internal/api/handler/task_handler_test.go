package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MockTaskService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateTaskRequest) (*domain.Task, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Task, error)
	deleteFunc func(ctx context.Context, userID, taskID uuid.UUID) error
}

func (m *MockTaskService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateTaskRequest) (*domain.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Task{ID: uuid.New(), UserID: userID, Title: req.Title}, nil
}

func (m *MockTaskService) List(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, includeCompleted)
	}
	return nil, nil
}

func (m *MockTaskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, taskID)
	}
	return nil
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestTaskHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		body           string
		mockService    *MockTaskService
		wantStatusCode int
	}{
		{
			name:           "valid request",
			userID:         userID.String(),
			body:           `{"title":"Write report","duration_minutes":60,"priority":"HIGH","energy_level":"MEDIUM"}`,
			mockService:    &MockTaskService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid user id",
			userID:         "not-a-uuid",
			body:           `{}`,
			mockService:    &MockTaskService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			userID:         userID.String(),
			body:           `{bad}`,
			mockService:    &MockTaskService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing required fields",
			userID:         userID.String(),
			body:           `{}`,
			mockService:    &MockTaskService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			userID: userID.String(),
			body:   `{"title":"Write report","duration_minutes":60,"priority":"HIGH","energy_level":"MEDIUM"}`,
			mockService: &MockTaskService{
				createFunc: func(ctx context.Context, userID uuid.UUID, req *domain.CreateTaskRequest) (*domain.Task, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTaskHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+tt.userID+"/tasks", bytes.NewBufferString(tt.body))
			req = withURLParams(req, map[string]string{"userId": tt.userID})
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestTaskHandler_List(t *testing.T) {
	userID := uuid.New()

	handler := NewTaskHandler(&MockTaskService{
		listFunc: func(ctx context.Context, id uuid.UUID, includeCompleted bool) ([]domain.Task, error) {
			if includeCompleted {
				return []domain.Task{{ID: uuid.New()}, {ID: uuid.New()}}, nil
			}
			return []domain.Task{{ID: uuid.New()}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/tasks", nil)
	req = withURLParams(req, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("List() status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	handler := NewTaskHandler(&MockTaskService{
		deleteFunc: func(ctx context.Context, uID, tID uuid.UUID) error {
			return domain.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/"+userID.String()+"/tasks/"+taskID.String(), nil)
	req = withURLParams(req, map[string]string{"userId": userID.String(), "taskId": taskID.String()})
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Delete() status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
