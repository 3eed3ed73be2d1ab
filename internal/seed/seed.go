package seed

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/schedule"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var sampleTitles = []string{
	"Write quarterly report",
	"Review pull requests",
	"Plan sprint backlog",
	"Prepare client presentation",
	"Reply to outstanding emails",
	"Exercise",
	"Read industry newsletter",
	"Refactor the ingestion pipeline",
}

var samplePriorities = []schedule.Priority{
	schedule.PriorityCritical, schedule.PriorityHigh, schedule.PriorityMedium, schedule.PriorityLow,
}

var sampleEnergyLevels = []schedule.EnergyLevel{
	schedule.EnergyHigh, schedule.EnergyMedium, schedule.EnergyLow,
}

// Run seeds the database with sample users, profiles, tasks, and fixed
// events. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.UserProfile{},
		&domain.Task{},
		&domain.FixedEvent{},
		&domain.GeneratedScheduleRecord{},
		&domain.SchedulePreset{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(1))
	for _, user := range users {
		if err := seedProfileForUser(db, user, rng); err != nil {
			return err
		}
		if err := seedTasksForUser(db, user, rng); err != nil {
			return err
		}
		if err := seedFixedEventsForUser(db, user); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedProfileForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	meq := 40 + rng.Intn(47)
	profile := domain.UserProfile{
		UserID:   user.ID,
		Age:      25 + rng.Intn(40),
		MEQScore: &meq,
	}
	return db.Where("user_id = ?", user.ID).FirstOrCreate(&profile).Error
}

func seedTasksForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	for i, title := range sampleTitles {
		task := domain.Task{
			UserID:      user.ID,
			Title:       title,
			DurationMin: 30 + rng.Intn(4)*30,
			Priority:    samplePriorities[rng.Intn(len(samplePriorities))],
			Energy:      sampleEnergyLevels[rng.Intn(len(sampleEnergyLevels))],
		}
		if err := db.Where("user_id = ? AND title = ?", user.ID, title).FirstOrCreate(&task).Error; err != nil {
			return fmt.Errorf("failed to create task %d for user %s: %w", i, user.ID, err)
		}
	}
	return nil
}

func seedFixedEventsForUser(db *gorm.DB, user domain.User) error {
	standup := domain.FixedEvent{
		UserID:      user.ID,
		StartMin:    9*60 + 30,
		EndMin:      9*60 + 45,
		Type:        "fixed_event",
		SourceLabel: "Daily standup",
	}
	lunchMeeting := domain.FixedEvent{
		UserID:      user.ID,
		StartMin:    12 * 60,
		EndMin:      13 * 60,
		Type:        "fixed_event",
		SourceLabel: "Team lunch",
	}

	for _, event := range []domain.FixedEvent{standup, lunchMeeting} {
		if err := db.Where("user_id = ? AND source_label = ?", event.UserID, event.SourceLabel).FirstOrCreate(&event).Error; err != nil {
			return fmt.Errorf("failed to create fixed event for user %s: %w", user.ID, err)
		}
	}
	return nil
}
