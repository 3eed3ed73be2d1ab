package repository

import (
	"context"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PresetRepository interface {
	Create(ctx context.Context, preset *domain.SchedulePreset) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SchedulePreset, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SchedulePreset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type presetRepository struct {
	db *gorm.DB
}

func NewPresetRepository(db *gorm.DB) PresetRepository {
	return &presetRepository{db: db}
}

func (r *presetRepository) Create(ctx context.Context, preset *domain.SchedulePreset) error {
	return r.db.WithContext(ctx).Create(preset).Error
}

func (r *presetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SchedulePreset, error) {
	var preset domain.SchedulePreset
	err := r.db.WithContext(ctx).First(&preset, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &preset, nil
}

func (r *presetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SchedulePreset, error) {
	var presets []domain.SchedulePreset
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&presets).Error
	if err != nil {
		return nil, err
	}
	return presets, nil
}

func (r *presetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.SchedulePreset{}, "id = ?", id).Error
}
