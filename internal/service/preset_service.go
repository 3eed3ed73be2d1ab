package service

import (
	"context"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/repository"
	"github.com/google/uuid"
)

// PresetService manages named, reusable preference bundles.
type PresetService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreatePresetRequest) (*domain.SchedulePreset, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.SchedulePreset, error)
	Get(ctx context.Context, userID uuid.UUID, presetID uuid.UUID) (*domain.SchedulePreset, error)
	Delete(ctx context.Context, userID uuid.UUID, presetID uuid.UUID) error
}

type presetService struct {
	repo     repository.PresetRepository
	userRepo repository.UserRepository
}

func NewPresetService(repo repository.PresetRepository, userRepo repository.UserRepository) PresetService {
	return &presetService{repo: repo, userRepo: userRepo}
}

func (s *presetService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreatePresetRequest) (*domain.SchedulePreset, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	preset, err := domain.NewSchedulePreset(userID, req.Name, req.Preferences)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, preset); err != nil {
		return nil, err
	}
	return preset, nil
}

func (s *presetService) List(ctx context.Context, userID uuid.UUID) ([]domain.SchedulePreset, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *presetService) Get(ctx context.Context, userID uuid.UUID, presetID uuid.UUID) (*domain.SchedulePreset, error) {
	preset, err := s.repo.GetByID(ctx, presetID)
	if err != nil {
		return nil, err
	}
	if preset.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return preset, nil
}

func (s *presetService) Delete(ctx context.Context, userID uuid.UUID, presetID uuid.UUID) error {
	preset, err := s.repo.GetByID(ctx, presetID)
	if err != nil {
		return err
	}
	if preset.UserID != userID {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, presetID)
}
