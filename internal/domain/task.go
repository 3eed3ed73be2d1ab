package domain

import (
	"time"

	"github.com/auratyme/dayplan/internal/schedule"
	"github.com/google/uuid"
)

// Task is a unit of work the scheduling core may place on a given day.
// @Description A schedulable task with priority, energy demand, and optional deadline.
type Task struct {
	ID            uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID            `gorm:"type:uuid;not null;index:idx_tasks_user" json:"user_id"`
	Title         string               `gorm:"type:varchar(255);not null" json:"title"`
	DurationMin   int                  `gorm:"not null" json:"duration_minutes"`
	Priority      schedule.Priority    `gorm:"type:varchar(16);not null;default:'MEDIUM'" json:"priority"`
	Energy        schedule.EnergyLevel `gorm:"type:varchar(16);not null;default:'MEDIUM'" json:"energy_level"`
	Deadline      *time.Time           `json:"deadline,omitempty"`
	EarliestStart *int                 `json:"earliest_start,omitempty"`
	Dependencies  StringSlice          `gorm:"type:text" json:"dependencies,omitempty"`
	Completed     bool                 `gorm:"not null;default:false" json:"completed"`
	CreatedAt     time.Time            `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}

// CreateTaskRequest is the request body for creating a task.
// @Description Request payload for scheduling a new task.
type CreateTaskRequest struct {
	Title         string                `json:"title" validate:"required,max=255"`
	DurationMin   int                   `json:"duration_minutes" validate:"required,min=1,max=1440"`
	Priority      schedule.Priority     `json:"priority" validate:"required,oneof=CRITICAL HIGH MEDIUM LOW BACKLOG"`
	Energy        schedule.EnergyLevel  `json:"energy_level" validate:"required,oneof=HIGH MEDIUM LOW"`
	Deadline      *time.Time            `json:"deadline,omitempty"`
	EarliestStart *int                  `json:"earliest_start,omitempty" validate:"omitempty,min=0,max=1440"`
	Dependencies  []string              `json:"dependencies,omitempty"`
}

// TaskResponse is the response body for task endpoints.
// @Description Task record as returned by the API.
type TaskResponse struct {
	ID            uuid.UUID            `json:"id"`
	UserID        uuid.UUID            `json:"user_id"`
	Title         string               `json:"title"`
	DurationMin   int                  `json:"duration_minutes"`
	Priority      schedule.Priority    `json:"priority"`
	Energy        schedule.EnergyLevel `json:"energy_level"`
	Deadline      *time.Time           `json:"deadline,omitempty"`
	EarliestStart *int                 `json:"earliest_start,omitempty"`
	Dependencies  []string             `json:"dependencies,omitempty"`
	Completed     bool                 `json:"completed"`
	CreatedAt     time.Time            `json:"created_at"`
}

func (t *Task) ToResponse() TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		Title:         t.Title,
		DurationMin:   t.DurationMin,
		Priority:      t.Priority,
		Energy:        t.Energy,
		Deadline:      t.Deadline,
		EarliestStart: t.EarliestStart,
		Dependencies:  []string(t.Dependencies),
		Completed:     t.Completed,
		CreatedAt:     t.CreatedAt,
	}
}

// ToCore converts the persisted task into the core pipeline's input shape.
func (t *Task) ToCore() schedule.Task {
	return schedule.Task{
		ID:            t.ID.String(),
		Title:         t.Title,
		DurationMin:   t.DurationMin,
		Priority:      t.Priority,
		Energy:        t.Energy,
		Deadline:      t.Deadline,
		EarliestStart: t.EarliestStart,
		Dependencies:  []string(t.Dependencies),
		Completed:     t.Completed,
	}
}
