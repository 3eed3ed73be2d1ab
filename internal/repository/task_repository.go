package repository

import (
	"context"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Task, error)
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Task, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeCompleted {
		query = query.Where("completed = ?", false)
	}

	var tasks []domain.Task
	if err := query.Order("created_at ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}
