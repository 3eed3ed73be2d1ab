package domain

import (
	"time"

	"github.com/auratyme/dayplan/internal/schedule"
	"github.com/google/uuid"
)

// FixedEvent is a non-movable block on the user's day: a meeting, an
// appointment, anything the scheduler must route tasks around.
// @Description A fixed, non-movable calendar block.
type FixedEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_fixed_events_user" json:"user_id"`
	StartMin    int       `gorm:"not null" json:"start_minutes"`
	EndMin      int       `gorm:"not null" json:"end_minutes"`
	Type        string    `gorm:"type:varchar(32);not null;default:'fixed_event'" json:"type"`
	SourceLabel string    `gorm:"type:varchar(255);not null" json:"source_label"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FixedEvent) TableName() string {
	return "fixed_events"
}

// CreateFixedEventRequest is the request body for registering a fixed event.
// @Description Request payload for a non-movable calendar block.
type CreateFixedEventRequest struct {
	StartMin    int    `json:"start_minutes" validate:"required,min=0,max=1439"`
	EndMin      int    `json:"end_minutes" validate:"required,min=1,max=1440,gtfield=StartMin"`
	SourceLabel string `json:"source_label" validate:"required,max=255"`
}

// FixedEventResponse is the response body for fixed-event endpoints.
// @Description Fixed event record as returned by the API.
type FixedEventResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	StartMin    int       `json:"start_minutes"`
	EndMin      int       `json:"end_minutes"`
	Type        string    `json:"type"`
	SourceLabel string    `json:"source_label"`
	CreatedAt   time.Time `json:"created_at"`
}

func (f *FixedEvent) ToResponse() FixedEventResponse {
	return FixedEventResponse{
		ID:          f.ID,
		UserID:      f.UserID,
		StartMin:    f.StartMin,
		EndMin:      f.EndMin,
		Type:        f.Type,
		SourceLabel: f.SourceLabel,
		CreatedAt:   f.CreatedAt,
	}
}

// ToCore converts the persisted fixed event into the core pipeline's input
// shape.
func (f *FixedEvent) ToCore() schedule.FixedEvent {
	return schedule.FixedEvent{
		ID:          f.ID.String(),
		StartMin:    f.StartMin,
		EndMin:      f.EndMin,
		Type:        f.Type,
		SourceLabel: f.SourceLabel,
	}
}
