package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/auratyme/dayplan/internal/api/validation"
	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/service"
	"github.com/auratyme/dayplan/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(service service.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /v1/users/{userId}/tasks
// @Summary Create a task
// @Description Register a task for the scheduler to place on a future day
// @Tags tasks
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreateTaskRequest true "Task creation request"
// @Success 201 {object} domain.TaskResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/tasks [post]
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	task, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create task").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task.ToResponse())
}

// List handles GET /v1/users/{userId}/tasks
// @Summary List tasks
// @Description List a user's tasks, excluding completed ones by default
// @Tags tasks
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param include_completed query bool false "Include completed tasks"
// @Success 200 {object} []domain.TaskResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/tasks [get]
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	includeCompleted, _ := strconv.ParseBool(r.URL.Query().Get("include_completed"))

	tasks, err := h.service.List(r.Context(), userID, includeCompleted)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list tasks").Write(w)
		return
	}

	responses := make([]domain.TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = tasks[i].ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// Delete handles DELETE /v1/users/{userId}/tasks/{taskId}
// @Summary Delete a task
// @Tags tasks
// @Param userId path string true "User ID" format(uuid)
// @Param taskId path string true "Task ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/tasks/{taskId} [delete]
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	taskID, err := uuid.Parse(chi.URLParam(r, "taskId"))
	if err != nil {
		problem.BadRequest("Invalid task ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Task not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete task").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
