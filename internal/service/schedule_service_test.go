package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/pkg/pagination"
	"github.com/google/uuid"
)

type mockScheduleRepository struct {
	records map[string]*domain.GeneratedScheduleRecord
}

func newMockScheduleRepository() *mockScheduleRepository {
	return &mockScheduleRepository{records: make(map[string]*domain.GeneratedScheduleRecord)}
}

func scheduleKey(userID uuid.UUID, targetDate time.Time) string {
	return userID.String() + "|" + targetDate.Format("2006-01-02")
}

func (m *mockScheduleRepository) Upsert(ctx context.Context, record *domain.GeneratedScheduleRecord) error {
	m.records[scheduleKey(record.UserID, record.TargetDate)] = record
	return nil
}

func (m *mockScheduleRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, targetDate time.Time) (*domain.GeneratedScheduleRecord, error) {
	record, ok := m.records[scheduleKey(userID, targetDate)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *mockScheduleRepository) ListByUser(ctx context.Context, userID uuid.UUID, cursor *pagination.Cursor, limit int) ([]domain.GeneratedScheduleRecord, error) {
	var matches []domain.GeneratedScheduleRecord
	for _, record := range m.records {
		if record.UserID != userID {
			continue
		}
		if cursor != nil && !record.GeneratedAt.Before(cursor.StartAt) {
			continue
		}
		matches = append(matches, *record)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].GeneratedAt.After(matches[j].GeneratedAt) })

	limit = pagination.NormalizeLimit(limit)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func TestScheduleService_Generate(t *testing.T) {
	userID := uuid.New()
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{userID: true}}
	taskRepo := newMockTaskRepository()
	eventRepo := newMockFixedEventRepository()
	profileRepo := newMockProfileRepository()
	scheduleRepo := newMockScheduleRepository()

	svc := NewScheduleService(scheduleRepo, taskRepo, eventRepo, profileRepo, userRepo, 0)

	targetDate := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	record, err := svc.Generate(context.Background(), userID, &domain.GenerateScheduleRequest{TargetDate: targetDate})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if record.UserID != userID {
		t.Errorf("Generate() user_id = %v, want %v", record.UserID, userID)
	}

	gs, err := record.ToCore()
	if err != nil {
		t.Fatalf("ToCore() unexpected error: %v", err)
	}
	if len(gs.Blocks) == 0 {
		t.Fatal("Generate() produced no blocks")
	}

	got, err := svc.Get(context.Background(), userID, targetDate)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.UserID != userID {
		t.Errorf("Get() user_id = %v, want %v", got.UserID, userID)
	}
}

func TestScheduleService_Generate_UnknownUser(t *testing.T) {
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{}}
	svc := NewScheduleService(newMockScheduleRepository(), newMockTaskRepository(), newMockFixedEventRepository(), newMockProfileRepository(), userRepo, 0)

	_, err := svc.Generate(context.Background(), uuid.New(), &domain.GenerateScheduleRequest{TargetDate: time.Now()})
	if err != domain.ErrNotFound {
		t.Fatalf("Generate() error = %v, want ErrNotFound", err)
	}
}

func TestScheduleService_ListHistory(t *testing.T) {
	userID := uuid.New()
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{userID: true}}
	svc := NewScheduleService(newMockScheduleRepository(), newMockTaskRepository(), newMockFixedEventRepository(), newMockProfileRepository(), userRepo, 0)

	for i := 0; i < 3; i++ {
		targetDate := time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC)
		if _, err := svc.Generate(context.Background(), userID, &domain.GenerateScheduleRequest{TargetDate: targetDate}); err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
	}

	records, nextCursor, err := svc.ListHistory(context.Background(), userID, "", 10)
	if err != nil {
		t.Fatalf("ListHistory() unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("ListHistory() returned %d records, want 3", len(records))
	}
	if nextCursor != "" {
		t.Errorf("ListHistory() nextCursor = %q, want empty (page smaller than limit)", nextCursor)
	}
}

func TestScheduleService_ListHistory_BadCursor(t *testing.T) {
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{}}
	svc := NewScheduleService(newMockScheduleRepository(), newMockTaskRepository(), newMockFixedEventRepository(), newMockProfileRepository(), userRepo, 0)

	_, _, err := svc.ListHistory(context.Background(), uuid.New(), "not-base64!!", 10)
	if err != domain.ErrInvalidInput {
		t.Fatalf("ListHistory() error = %v, want ErrInvalidInput", err)
	}
}

func TestScheduleService_Get_NotFound(t *testing.T) {
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{}}
	svc := NewScheduleService(newMockScheduleRepository(), newMockTaskRepository(), newMockFixedEventRepository(), newMockProfileRepository(), userRepo, 0)

	_, err := svc.Get(context.Background(), uuid.New(), time.Now())
	if err != domain.ErrNotFound {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}
