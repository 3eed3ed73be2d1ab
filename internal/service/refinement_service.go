package service

import (
	"context"
	"time"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/llm"
	"github.com/auratyme/dayplan/internal/repository"
	"github.com/google/uuid"
)

// RefinementService generates optional LLM suggestions for an already
// generated schedule. The deterministic pipeline never depends on this.
type RefinementService interface {
	Generate(ctx context.Context, userID uuid.UUID, targetDate time.Time) (*domain.RefinementSuggestion, error)
}

type refinementService struct {
	scheduleRepo repository.ScheduleRepository
	llmClient    llm.RefinementLLM
}

func NewRefinementService(scheduleRepo repository.ScheduleRepository, llmClient llm.RefinementLLM) RefinementService {
	return &refinementService{scheduleRepo: scheduleRepo, llmClient: llmClient}
}

func (s *refinementService) Generate(ctx context.Context, userID uuid.UUID, targetDate time.Time) (*domain.RefinementSuggestion, error) {
	record, err := s.scheduleRepo.GetByUserAndDate(ctx, userID, targetDate)
	if err != nil {
		return nil, err
	}

	gs, err := record.ToCore()
	if err != nil {
		return nil, err
	}

	return s.llmClient.Refine(ctx, &gs)
}
