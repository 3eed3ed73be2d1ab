package service

import (
	"context"
	"testing"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/schedule"
	"github.com/google/uuid"
)

type mockTaskRepository struct {
	tasks map[uuid.UUID]*domain.Task
	err   error
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (m *mockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.err != nil {
		return m.err
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	task, ok := m.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

func (m *mockTaskRepository) ListByUser(ctx context.Context, userID uuid.UUID, includeCompleted bool) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range m.tasks {
		if t.UserID != userID {
			continue
		}
		if !includeCompleted && t.Completed {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTaskRepository) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Task, error) {
	var out []domain.Task
	for _, id := range ids {
		if t, ok := m.tasks[id]; ok && t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.err != nil {
		return m.err
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.tasks, id)
	return nil
}

type mockUserRepositoryForTasks struct {
	existing map[uuid.UUID]bool
}

func (m *mockUserRepositoryForTasks) Create(ctx context.Context, user *domain.User) error { return nil }

func (m *mockUserRepositoryForTasks) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if !m.existing[id] {
		return nil, domain.ErrNotFound
	}
	return &domain.User{ID: id}, nil
}

func (m *mockUserRepositoryForTasks) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existing[id], nil
}

func TestTaskService_Create(t *testing.T) {
	userID := uuid.New()
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{userID: true}}
	repo := newMockTaskRepository()
	svc := NewTaskService(repo, userRepo)

	req := &domain.CreateTaskRequest{
		Title:       "Write report",
		DurationMin: 60,
		Priority:    schedule.PriorityHigh,
		Energy:      schedule.EnergyHigh,
	}

	task, err := svc.Create(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if task.UserID != userID {
		t.Errorf("Create() user_id = %v, want %v", task.UserID, userID)
	}
	if task.Title != req.Title {
		t.Errorf("Create() title = %v, want %v", task.Title, req.Title)
	}
}

func TestTaskService_Create_UnknownUser(t *testing.T) {
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{}}
	repo := newMockTaskRepository()
	svc := NewTaskService(repo, userRepo)

	_, err := svc.Create(context.Background(), uuid.New(), &domain.CreateTaskRequest{Title: "x", DurationMin: 30})
	if err != domain.ErrNotFound {
		t.Fatalf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestTaskService_Delete_WrongUser(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{owner: true, other: true}}
	repo := newMockTaskRepository()
	svc := NewTaskService(repo, userRepo)

	task, err := svc.Create(context.Background(), owner, &domain.CreateTaskRequest{Title: "x", DurationMin: 30})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), other, task.ID); err != domain.ErrNotFound {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestTaskService_List_ExcludesCompletedByDefault(t *testing.T) {
	userID := uuid.New()
	userRepo := &mockUserRepositoryForTasks{existing: map[uuid.UUID]bool{userID: true}}
	repo := newMockTaskRepository()
	svc := NewTaskService(repo, userRepo)

	active, err := svc.Create(context.Background(), userID, &domain.CreateTaskRequest{Title: "active", DurationMin: 30})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	done, err := svc.Create(context.Background(), userID, &domain.CreateTaskRequest{Title: "done", DurationMin: 30})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	done.Completed = true
	repo.tasks[done.ID] = done

	tasks, err := svc.List(context.Background(), userID, false)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != active.ID {
		t.Fatalf("List() = %+v, want only %v", tasks, active.ID)
	}
}
