package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SchedulePreset is a named, reusable bundle of schedule preferences a user
// can save and re-apply instead of resubmitting the same preferences every
// generation request.
// @Description A named, reusable bundle of schedule preferences.
type SchedulePreset struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_presets_user" json:"user_id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	PreferencesRaw string    `gorm:"column:preferences_json;type:text;not null" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SchedulePreset) TableName() string {
	return "schedule_presets"
}

// CreatePresetRequest is the request body for saving a preset.
// @Description Request payload for saving a named preference bundle.
type CreatePresetRequest struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Preferences SchedulePreferences `json:"preferences"`
}

// SchedulePresetResponse is the response body for preset endpoints.
// @Description Saved preference bundle as returned by the API.
type SchedulePresetResponse struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"user_id"`
	Name        string              `json:"name"`
	Preferences SchedulePreferences `json:"preferences"`
	CreatedAt   time.Time           `json:"created_at"`
}

// NewSchedulePreset serializes preferences into a storable preset.
func NewSchedulePreset(userID uuid.UUID, name string, prefs SchedulePreferences) (*SchedulePreset, error) {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return nil, err
	}
	return &SchedulePreset{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		PreferencesRaw: string(raw),
	}, nil
}

// Preferences deserializes the stored preference bundle.
func (p *SchedulePreset) Preferences() (SchedulePreferences, error) {
	var prefs SchedulePreferences
	if err := json.Unmarshal([]byte(p.PreferencesRaw), &prefs); err != nil {
		return SchedulePreferences{}, err
	}
	return prefs, nil
}

func (p *SchedulePreset) ToResponse() (SchedulePresetResponse, error) {
	prefs, err := p.Preferences()
	if err != nil {
		return SchedulePresetResponse{}, err
	}
	return SchedulePresetResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Preferences: prefs,
		CreatedAt:   p.CreatedAt,
	}, nil
}
