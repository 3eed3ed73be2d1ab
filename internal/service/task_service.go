package service

import (
	"context"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/repository"
	"github.com/google/uuid"
)

// TaskService manages the tasks a user wants placed on their schedule.
type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateTaskRequest) (*domain.Task, error)
	List(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Task, error)
	Delete(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) error
}

type taskService struct {
	repo     repository.TaskRepository
	userRepo repository.UserRepository
}

func NewTaskService(repo repository.TaskRepository, userRepo repository.UserRepository) TaskService {
	return &taskService{repo: repo, userRepo: userRepo}
}

func (s *taskService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateTaskRequest) (*domain.Task, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	task := &domain.Task{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         req.Title,
		DurationMin:   req.DurationMin,
		Priority:      req.Priority,
		Energy:        req.Energy,
		Deadline:      req.Deadline,
		EarliestStart: req.EarliestStart,
		Dependencies:  domain.StringSlice(req.Dependencies),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Task, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.repo.ListByUser(ctx, userID, includeCompleted)
}

func (s *taskService) Delete(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) error {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.UserID != userID {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, taskID)
}
