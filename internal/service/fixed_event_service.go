package service

import (
	"context"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/repository"
	"github.com/google/uuid"
)

// FixedEventService manages the non-movable blocks the scheduler must route
// tasks around.
type FixedEventService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateFixedEventRequest) (*domain.FixedEvent, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.FixedEvent, error)
	Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error
}

type fixedEventService struct {
	repo     repository.FixedEventRepository
	userRepo repository.UserRepository
}

func NewFixedEventService(repo repository.FixedEventRepository, userRepo repository.UserRepository) FixedEventService {
	return &fixedEventService{repo: repo, userRepo: userRepo}
}

func (s *fixedEventService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateFixedEventRequest) (*domain.FixedEvent, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	event := &domain.FixedEvent{
		ID:          uuid.New(),
		UserID:      userID,
		StartMin:    req.StartMin,
		EndMin:      req.EndMin,
		Type:        "fixed_event",
		SourceLabel: req.SourceLabel,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *fixedEventService) List(ctx context.Context, userID uuid.UUID) ([]domain.FixedEvent, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *fixedEventService) Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.UserID != userID {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, eventID)
}
