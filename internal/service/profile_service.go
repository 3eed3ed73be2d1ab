package service

import (
	"context"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/repository"
	"github.com/google/uuid"
)

// ProfileService manages the biographical inputs the chronotype classifier
// and sleep calculator need.
type ProfileService interface {
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertUserProfileRequest) (*domain.UserProfile, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

type profileService struct {
	repo     repository.ProfileRepository
	userRepo repository.UserRepository
}

func NewProfileService(repo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{repo: repo, userRepo: userRepo}
}

func (s *profileService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertUserProfileRequest) (*domain.UserProfile, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	profile := &domain.UserProfile{
		UserID:    userID,
		Age:       req.Age,
		MEQScore:  req.MEQScore,
		SleepNeed: req.SleepNeed,
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return s.repo.GetByUserID(ctx, userID)
}
