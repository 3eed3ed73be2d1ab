package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/auratyme/dayplan/internal/schedule"
	"github.com/google/uuid"
)

// GeneratedScheduleRecord is the persisted form of a schedule.GeneratedSchedule.
// Blocks, metrics, and warnings are stored as JSON text, the same
// json-encode-then-store idiom pkg/pagination/cursor.go uses for opaque
// cursors; a generated schedule is written once and read back whole, so a
// normalized per-block table buys nothing the core doesn't already give
// us as a value type.
type GeneratedScheduleRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_schedules_user_date" json:"user_id"`
	TargetDate      time.Time `gorm:"type:date;not null;index:idx_schedules_user_date" json:"target_date"`
	BlocksJSON      string    `gorm:"type:text;not null" json:"-"`
	MetricsJSON     string    `gorm:"type:text;not null" json:"-"`
	WarningsJSON    string    `gorm:"type:text;not null;default:'[]'" json:"-"`
	UnscheduledJSON string    `gorm:"type:text;not null;default:'[]'" json:"-"`
	GeneratedAt     time.Time `gorm:"not null" json:"generated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (GeneratedScheduleRecord) TableName() string {
	return "generated_schedules"
}

// NewGeneratedScheduleRecord serializes a core pipeline result for storage.
func NewGeneratedScheduleRecord(gs schedule.GeneratedSchedule) (*GeneratedScheduleRecord, error) {
	blocksJSON, err := json.Marshal(gs.Blocks)
	if err != nil {
		return nil, err
	}
	metricsJSON, err := json.Marshal(gs.Metrics)
	if err != nil {
		return nil, err
	}
	warningsJSON, err := json.Marshal(gs.Warnings)
	if err != nil {
		return nil, err
	}
	unscheduledJSON, err := json.Marshal(gs.UnscheduledTaskIDs)
	if err != nil {
		return nil, err
	}

	return &GeneratedScheduleRecord{
		ID:              gs.ScheduleID,
		UserID:          gs.UserID,
		TargetDate:      gs.TargetDate,
		BlocksJSON:      string(blocksJSON),
		MetricsJSON:     string(metricsJSON),
		WarningsJSON:    string(warningsJSON),
		UnscheduledJSON: string(unscheduledJSON),
		GeneratedAt:     gs.GenerationTime,
	}, nil
}

// ToCore reconstructs the in-memory schedule.GeneratedSchedule from its
// persisted JSON columns.
func (r *GeneratedScheduleRecord) ToCore() (schedule.GeneratedSchedule, error) {
	var gs schedule.GeneratedSchedule
	gs.ScheduleID = r.ID
	gs.UserID = r.UserID
	gs.TargetDate = r.TargetDate
	gs.GenerationTime = r.GeneratedAt

	if err := json.Unmarshal([]byte(r.BlocksJSON), &gs.Blocks); err != nil {
		return schedule.GeneratedSchedule{}, err
	}
	if err := json.Unmarshal([]byte(r.MetricsJSON), &gs.Metrics); err != nil {
		return schedule.GeneratedSchedule{}, err
	}
	if err := json.Unmarshal([]byte(r.WarningsJSON), &gs.Warnings); err != nil {
		return schedule.GeneratedSchedule{}, err
	}
	if err := json.Unmarshal([]byte(r.UnscheduledJSON), &gs.UnscheduledTaskIDs); err != nil {
		return schedule.GeneratedSchedule{}, err
	}
	return gs, nil
}

// GenerateScheduleRequest is the request body for generating a day's
// schedule.
// @Description Request payload for generating a daily schedule.
type GenerateScheduleRequest struct {
	TargetDate  time.Time           `json:"target_date" validate:"required"`
	Preferences SchedulePreferences `json:"preferences"`
}

// SchedulePreferences mirrors the recognized preference keys.
// @Description Tunable preferences for schedule generation.
type SchedulePreferences struct {
	PreferredWakeTime string              `json:"preferred_wake_time,omitempty" validate:"omitempty,len=5"`
	Work              WorkPreferences     `json:"work,omitempty"`
	Meals             MealPreferences     `json:"meals,omitempty"`
	Routines          RoutinePreferences  `json:"routines,omitempty"`
	Activity          ActivityPreferences `json:"activity,omitempty"`
	SleepNeedScale    *int                `json:"sleep_need_scale,omitempty" validate:"omitempty,min=0,max=100"`
}

// WorkPreferences bounds the day around the user's job.
type WorkPreferences struct {
	StartTime      string `json:"start_time,omitempty" validate:"omitempty,len=5"`
	EndTime        string `json:"end_time,omitempty" validate:"omitempty,len=5"`
	CommuteMinutes int    `json:"commute_minutes,omitempty" validate:"omitempty,min=0,max=300"`
}

// MealPreferences overrides meal timing and enablement.
type MealPreferences struct {
	BreakfastTime    string `json:"breakfast_time,omitempty" validate:"omitempty,len=5"`
	LunchTime        string `json:"lunch_time,omitempty" validate:"omitempty,len=5"`
	DinnerTime       string `json:"dinner_time,omitempty" validate:"omitempty,len=5"`
	BreakfastEnabled *bool  `json:"breakfast_enabled,omitempty"`
	LunchEnabled     *bool  `json:"lunch_enabled,omitempty"`
	DinnerEnabled    *bool  `json:"dinner_enabled,omitempty"`
}

// RoutinePreferences configures optional morning/evening routine blocks.
type RoutinePreferences struct {
	MorningDurationMin int `json:"morning_duration_minutes,omitempty" validate:"omitempty,min=0,max=180"`
	EveningDurationMin int `json:"evening_duration_minutes,omitempty" validate:"omitempty,min=0,max=180"`
}

// ActivityPreferences configures an optional physical-activity block.
type ActivityPreferences struct {
	DurationMin  int    `json:"duration_minutes,omitempty" validate:"omitempty,min=0,max=300"`
	PreferredTime string `json:"preferred_time,omitempty" validate:"omitempty,len=5"`
}

// ScheduleBlockResponse is the wire format for a single schedule block: all
// times are "HH:MM" 24-hour, matching the external contract.
// @Description A single typed block in a generated schedule.
type ScheduleBlockResponse struct {
	Type        schedule.BlockType `json:"type"`
	Name        string             `json:"name"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	DurationMin int                `json:"duration_minutes"`
	NextDay     bool               `json:"next_day,omitempty"`
	TaskID      string             `json:"task_id,omitempty"`
	EventID     string             `json:"event_id,omitempty"`
}

// ScheduleResponse is the response body for schedule generation.
// @Description A complete generated daily schedule.
type ScheduleResponse struct {
	ScheduleID         uuid.UUID               `json:"schedule_id"`
	UserID             uuid.UUID               `json:"user_id"`
	TargetDate         string                  `json:"target_date"`
	Blocks             []ScheduleBlockResponse `json:"blocks"`
	Metrics            map[string]float64      `json:"metrics"`
	Warnings           []string                `json:"warnings"`
	UnscheduledTaskIDs []string                `json:"unscheduled_task_ids,omitempty"`
	GenerationTime     time.Time               `json:"generation_timestamp"`
}

// ToScheduleResponse renders the core pipeline's result in the external
// wire format: minute offsets become "HH:MM" strings and metrics
// flatten to a numeric map.
func ToScheduleResponse(gs schedule.GeneratedSchedule) ScheduleResponse {
	blocks := make([]ScheduleBlockResponse, 0, len(gs.Blocks))
	for _, b := range gs.Blocks {
		blocks = append(blocks, ScheduleBlockResponse{
			Type:        b.Type,
			Name:        b.Name,
			StartTime:   FormatClock(b.StartMin),
			EndTime:     FormatClock(b.EndMin % schedule.MinutesPerDay),
			DurationMin: b.DurationMin(),
			NextDay:     b.NextDay,
			TaskID:      b.TaskID,
			EventID:     b.EventID,
		})
	}

	return ScheduleResponse{
		ScheduleID: gs.ScheduleID,
		UserID:     gs.UserID,
		TargetDate: gs.TargetDate.Format("2006-01-02"),
		Blocks:     blocks,
		Metrics: map[string]float64{
			"task_minutes":        float64(gs.Metrics.TaskMinutes),
			"break_minutes":       float64(gs.Metrics.BreakMinutes),
			"fixed_minutes":       float64(gs.Metrics.FixedMinutes),
			"sleep_minutes":       float64(gs.Metrics.SleepMinutes),
			"meal_minutes":        float64(gs.Metrics.MealMinutes),
			"routine_minutes":     float64(gs.Metrics.RoutineMinutes),
			"activity_minutes":    float64(gs.Metrics.ActivityMinutes),
			"task_completion_pct":  gs.Metrics.TaskCompletionPct,
			"work_life_ratio":      gs.Metrics.WorkLifeRatio,
			"sleep_quality_score":  gs.Metrics.SleepQualityScore,
			"energy_peak_hours":     float64(gs.EnergySummary.PeakHours),
			"energy_good_hours":     float64(gs.EnergySummary.GoodHours),
			"energy_moderate_hours": float64(gs.EnergySummary.ModerateHours),
			"energy_low_hours":      float64(gs.EnergySummary.LowHours),
		},
		Warnings:           gs.Warnings,
		UnscheduledTaskIDs: gs.UnscheduledTaskIDs,
		GenerationTime:     gs.GenerationTime,
	}
}

// ScheduleHistoryResponse is the response body for paginated schedule
// history.
// @Description A page of a user's previously generated schedules.
type ScheduleHistoryResponse struct {
	Schedules  []ScheduleResponse `json:"schedules"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

// FormatClock renders minutes-from-midnight as "HH:MM", normalizing
// negative or >=1440 values into a single day.
func FormatClock(minutes int) string {
	m := ((minutes % schedule.MinutesPerDay) + schedule.MinutesPerDay) % schedule.MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
