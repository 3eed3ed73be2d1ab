package repository

import (
	"context"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FixedEventRepository interface {
	Create(ctx context.Context, event *domain.FixedEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FixedEvent, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FixedEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fixedEventRepository struct {
	db *gorm.DB
}

func NewFixedEventRepository(db *gorm.DB) FixedEventRepository {
	return &fixedEventRepository{db: db}
}

func (r *fixedEventRepository) Create(ctx context.Context, event *domain.FixedEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *fixedEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FixedEvent, error) {
	var event domain.FixedEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *fixedEventRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FixedEvent, error) {
	var events []domain.FixedEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_min ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *fixedEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.FixedEvent{}, "id = ?", id).Error
}
