package repository

import (
	"context"
	"time"

	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleRepository interface {
	Upsert(ctx context.Context, record *domain.GeneratedScheduleRecord) error
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, targetDate time.Time) (*domain.GeneratedScheduleRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *pagination.Cursor, limit int) ([]domain.GeneratedScheduleRecord, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Upsert replaces any schedule already generated for the user/day: a
// regeneration request supersedes the prior result rather than accumulating
// history.
func (r *scheduleRepository) Upsert(ctx context.Context, record *domain.GeneratedScheduleRecord) error {
	existing, err := r.GetByUserAndDate(ctx, record.UserID, record.TargetDate)
	if err != nil && err != domain.ErrNotFound {
		return err
	}
	if existing != nil {
		record.ID = existing.ID
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"blocks_json", "metrics_json", "warnings_json", "unscheduled_json", "generated_at",
			}),
		}).
		Create(record).Error
}

func (r *scheduleRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, targetDate time.Time) (*domain.GeneratedScheduleRecord, error) {
	var record domain.GeneratedScheduleRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_date = ?", userID, targetDate.Format("2006-01-02")).
		Order("generated_at DESC").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListByUser returns a page of a user's generated schedules, newest first.
// cursor nil starts from the most recent; passing back the last row's cursor
// continues from there. Orders by generated_at, then id, both descending, so
// the keyset comparison stays well-defined when two schedules share a
// timestamp.
func (r *scheduleRepository) ListByUser(ctx context.Context, userID uuid.UUID, cursor *pagination.Cursor, limit int) ([]domain.GeneratedScheduleRecord, error) {
	limit = pagination.NormalizeLimit(limit)

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if cursor != nil {
		q = q.Where("(generated_at, id) < (?, ?)", cursor.StartAt, cursor.ID)
	}

	var records []domain.GeneratedScheduleRecord
	err := q.Order("generated_at DESC, id DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
