package service

import (
	"context"
	"time"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/repository"
	"github.com/auratyme/dayplan/internal/schedule"
	"github.com/auratyme/dayplan/pkg/pagination"
	"github.com/google/uuid"
)

// ScheduleService loads a user's tasks, fixed events, and profile, runs the
// generation pipeline, and persists the result.
type ScheduleService interface {
	Generate(ctx context.Context, userID uuid.UUID, req *domain.GenerateScheduleRequest) (*domain.GeneratedScheduleRecord, error)
	Get(ctx context.Context, userID uuid.UUID, targetDate time.Time) (*domain.GeneratedScheduleRecord, error)
	ListHistory(ctx context.Context, userID uuid.UUID, cursor string, limit int) ([]domain.GeneratedScheduleRecord, string, error)
}

type scheduleService struct {
	pipeline    schedule.Pipeline
	scheduleRepo repository.ScheduleRepository
	taskRepo    repository.TaskRepository
	eventRepo   repository.FixedEventRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	taskRepo repository.TaskRepository,
	eventRepo repository.FixedEventRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	solverTimeBudget time.Duration,
) ScheduleService {
	pipeline := schedule.NewPipeline()
	if solverTimeBudget > 0 {
		pipeline.SolverTimeLimit = solverTimeBudget
	}

	return &scheduleService{
		pipeline:     pipeline,
		scheduleRepo: scheduleRepo,
		taskRepo:     taskRepo,
		eventRepo:    eventRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
	}
}

func (s *scheduleService) Generate(ctx context.Context, userID uuid.UUID, req *domain.GenerateScheduleRequest) (*domain.GeneratedScheduleRecord, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	tasks, err := s.taskRepo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil && err != domain.ErrNotFound {
		return nil, err
	}

	coreTasks := make([]schedule.Task, 0, len(tasks))
	for i := range tasks {
		coreTasks = append(coreTasks, tasks[i].ToCore())
	}
	coreEvents := make([]schedule.FixedEvent, 0, len(events))
	for i := range events {
		coreEvents = append(coreEvents, events[i].ToCore())
	}

	var coreProfile schedule.UserProfile
	if profile != nil {
		coreProfile = profile.ToCore()
	}

	result, err := s.pipeline.Generate(schedule.Request{
		UserID:      userID,
		TargetDate:  req.TargetDate,
		Tasks:       coreTasks,
		FixedEvents: coreEvents,
		Preferences: toCorePreferences(req.Preferences),
		Profile:     coreProfile,
	})
	if err != nil {
		return nil, err
	}

	record, err := domain.NewGeneratedScheduleRecord(result)
	if err != nil {
		return nil, err
	}
	if err := s.scheduleRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *scheduleService) Get(ctx context.Context, userID uuid.UUID, targetDate time.Time) (*domain.GeneratedScheduleRecord, error) {
	return s.scheduleRepo.GetByUserAndDate(ctx, userID, targetDate)
}

// ListHistory returns a page of a user's past generated schedules, newest
// first, along with the cursor to pass back for the next page. An empty
// nextCursor means there is nothing more to fetch.
func (s *scheduleService) ListHistory(ctx context.Context, userID uuid.UUID, cursorStr string, limit int) ([]domain.GeneratedScheduleRecord, string, error) {
	cursor, err := pagination.DecodeCursor(cursorStr)
	if err != nil {
		return nil, "", domain.ErrInvalidInput
	}

	records, err := s.scheduleRepo.ListByUser(ctx, userID, cursor, limit)
	if err != nil {
		return nil, "", err
	}

	if len(records) == 0 || len(records) < pagination.NormalizeLimit(limit) {
		return records, "", nil
	}

	last := records[len(records)-1]
	next := pagination.Cursor{ID: last.ID, StartAt: last.GeneratedAt}
	return records, next.Encode(), nil
}

// toCorePreferences translates the wire-format "HH:MM" preference strings
// into the core pipeline's minute-resolution Preferences. A clock string
// that fails to parse is treated as unset, matching the pipeline's own
// empty-string-means-unset convention.
func toCorePreferences(p domain.SchedulePreferences) schedule.Preferences {
	core := schedule.Preferences{
		PreferredWakeTime: p.PreferredWakeTime,
		Work: schedule.WorkPreferences{
			StartTime:      p.Work.StartTime,
			EndTime:        p.Work.EndTime,
			CommuteMinutes: p.Work.CommuteMinutes,
		},
		Routines: schedule.RoutinePreferences{
			MorningRoutineMin: p.Routines.MorningDurationMin,
			EveningRoutineMin: p.Routines.EveningDurationMin,
		},
		SleepNeedScale: p.SleepNeedScale,
	}

	meals := schedule.DefaultMealPreferences()
	if m, ok := clockToMinutes(p.Meals.BreakfastTime); ok {
		meals.BreakfastMin = m
	}
	if m, ok := clockToMinutes(p.Meals.LunchTime); ok {
		meals.LunchMin = m
	}
	if m, ok := clockToMinutes(p.Meals.DinnerTime); ok {
		meals.DinnerMin = m
	}
	if p.Meals.BreakfastEnabled != nil {
		meals.BreakfastEnabled = *p.Meals.BreakfastEnabled
	}
	if p.Meals.LunchEnabled != nil {
		meals.LunchEnabled = *p.Meals.LunchEnabled
	}
	if p.Meals.DinnerEnabled != nil {
		meals.DinnerEnabled = *p.Meals.DinnerEnabled
	}
	core.Meals = meals

	core.Activity = schedule.ActivityPreferences{DurationMin: p.Activity.DurationMin}
	if m, ok := clockToMinutes(p.Activity.PreferredTime); ok {
		core.Activity.PreferredMin = &m
	}

	return core
}

func clockToMinutes(clock string) (int, bool) {
	if clock == "" {
		return 0, false
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
