// file: internals/features/classroom/duty/repo/duty_repo.go
package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "classboard_backend/internals/features/classroom/duty/model"
)

// ErrDuplicateDate is returned when a create/update collides with the
// one-schedule-per-date constraint.
var ErrDuplicateDate = errors.New("duty schedule date already exists")

type DutyRepo interface {
	// List returns all schedules ordered by date ascending.
	List(ctx context.Context) ([]m.DutyScheduleModel, error)
	Create(ctx context.Context, row *m.DutyScheduleModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*m.DutyScheduleModel, error)
	Update(ctx context.Context, row *m.DutyScheduleModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormDutyRepo struct {
	db *gorm.DB
}

func NewDutyRepo(db *gorm.DB) DutyRepo {
	return &gormDutyRepo{db: db}
}

// --- PG error mapping ---
// 23505 = unique_violation; the only unique key here is the date.

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return ErrDuplicateDate
	}
	return err
}

func (r *gormDutyRepo) List(ctx context.Context) ([]m.DutyScheduleModel, error) {
	var rows []m.DutyScheduleModel
	err := r.db.WithContext(ctx).
		Order("duty_schedule_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *gormDutyRepo) Create(ctx context.Context, row *m.DutyScheduleModel) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return mapPGError(err)
	}
	return nil
}

func (r *gormDutyRepo) GetByID(ctx context.Context, id uuid.UUID) (*m.DutyScheduleModel, error) {
	var row m.DutyScheduleModel
	if err := r.db.WithContext(ctx).
		Where("duty_schedule_id = ?", id).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *gormDutyRepo) Update(ctx context.Context, row *m.DutyScheduleModel) error {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return mapPGError(err)
	}
	return nil
}

func (r *gormDutyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("duty_schedule_id = ?", id).
		Delete(&m.DutyScheduleModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
