package service

import (
	"context"
	"testing"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/google/uuid"
)

type mockFixedEventRepository struct {
	events map[uuid.UUID]*domain.FixedEvent
}

func newMockFixedEventRepository() *mockFixedEventRepository {
	return &mockFixedEventRepository{events: make(map[uuid.UUID]*domain.FixedEvent)}
}

func (m *mockFixedEventRepository) Create(ctx context.Context, event *domain.FixedEvent) error {
	m.events[event.ID] = event
	return nil
}

func (m *mockFixedEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FixedEvent, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (m *mockFixedEventRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FixedEvent, error) {
	var out []domain.FixedEvent
	for _, e := range m.events {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockFixedEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.events, id)
	return nil
}

func TestFixedEventService_Create(t *testing.T) {
	userID := uuid.New()
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{userID: true}}
	repo := newMockFixedEventRepository()
	svc := NewFixedEventService(repo, userRepo)

	event, err := svc.Create(context.Background(), userID, &domain.CreateFixedEventRequest{
		StartMin:    9 * 60,
		EndMin:      9*60 + 30,
		SourceLabel: "Standup",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if event.Type != "fixed_event" {
		t.Errorf("Create() type = %q, want fixed_event", event.Type)
	}
}

func TestFixedEventService_Delete_WrongUser(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{owner: true, other: true}}
	repo := newMockFixedEventRepository()
	svc := NewFixedEventService(repo, userRepo)

	event, err := svc.Create(context.Background(), owner, &domain.CreateFixedEventRequest{
		StartMin: 60, EndMin: 90, SourceLabel: "Dentist",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), other, event.ID); err != domain.ErrNotFound {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestFixedEventService_List_UnknownUser(t *testing.T) {
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{}}
	repo := newMockFixedEventRepository()
	svc := NewFixedEventService(repo, userRepo)

	_, err := svc.List(context.Background(), uuid.New())
	if err != domain.ErrNotFound {
		t.Fatalf("List() error = %v, want ErrNotFound", err)
	}
}
