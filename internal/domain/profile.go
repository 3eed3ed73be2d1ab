package domain

import (
	"time"

	"github.com/auratyme/dayplan/internal/schedule"
	"github.com/google/uuid"
)

// UserProfile carries the inputs the chronotype classifier and sleep
// calculator need: age, an optional MEQ score, and an optional sleep-need
// override.
// @Description Biographical and chronotype inputs for schedule generation.
type UserProfile struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Age       int       `gorm:"not null" json:"age"`
	MEQScore  *int      `json:"meq_score,omitempty"`
	SleepNeed *string   `gorm:"type:varchar(16)" json:"sleep_need,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// UpsertUserProfileRequest is the request body for creating or updating a
// profile.
// @Description Request payload for the scheduling profile.
type UpsertUserProfileRequest struct {
	Age       int     `json:"age" validate:"required,min=0,max=120"`
	MEQScore  *int    `json:"meq_score,omitempty" validate:"omitempty,min=16,max=86"`
	SleepNeed *string `json:"sleep_need,omitempty" validate:"omitempty,oneof=low medium high"`
}

// UserProfileResponse is the response body for profile endpoints.
// @Description Scheduling profile as returned by the API.
type UserProfileResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Age       int       `json:"age"`
	MEQScore  *int      `json:"meq_score,omitempty"`
	SleepNeed *string   `json:"sleep_need,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *UserProfile) ToResponse() UserProfileResponse {
	return UserProfileResponse{
		UserID:    p.UserID,
		Age:       p.Age,
		MEQScore:  p.MEQScore,
		SleepNeed: p.SleepNeed,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToCore resolves the persisted profile into the core pipeline's
// UserProfile, translating the lowercase wire-format sleep-need string into
// the core's SleepNeed enum.
func (p *UserProfile) ToCore() schedule.UserProfile {
	core := schedule.UserProfile{Age: p.Age, MEQScore: p.MEQScore}
	if p.SleepNeed != nil {
		need := parseSleepNeed(*p.SleepNeed)
		core.SleepNeed = &need
	}
	return core
}

func parseSleepNeed(s string) schedule.SleepNeed {
	switch s {
	case "low":
		return schedule.SleepNeedLow
	case "high":
		return schedule.SleepNeedHigh
	default:
		return schedule.SleepNeedMedium
	}
}
