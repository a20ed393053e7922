// file: internals/features/classroom/timetable/repo/timetable_repo.go
package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "classboard_backend/internals/features/classroom/timetable/model"
)

// TimetableRepo is the storage seam for the weekly grid. Controllers only
// see this interface; tests swap in an in-memory fake.
type TimetableRepo interface {
	// List returns all slots ordered by (day, lessonNumber) ascending.
	List(ctx context.Context) ([]m.TimetableSlotModel, error)
	// Upsert creates or overwrites the (day, lessonNumber) cell and fills
	// row with the persisted state.
	Upsert(ctx context.Context, row *m.TimetableSlotModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*m.TimetableSlotModel, error)
	Update(ctx context.Context, row *m.TimetableSlotModel) error
	// Delete removes by id; gorm.ErrRecordNotFound when nothing matched.
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormTimetableRepo struct {
	db *gorm.DB
}

func NewTimetableRepo(db *gorm.DB) TimetableRepo {
	return &gormTimetableRepo{db: db}
}

// dayOrder keeps MONDAY..FRIDAY in school-week order; alphabetical sorting
// would put FRIDAY first.
const dayOrder = `CASE timetable_slot_day
	WHEN 'MONDAY' THEN 1
	WHEN 'TUESDAY' THEN 2
	WHEN 'WEDNESDAY' THEN 3
	WHEN 'THURSDAY' THEN 4
	WHEN 'FRIDAY' THEN 5
	END`

func (r *gormTimetableRepo) List(ctx context.Context) ([]m.TimetableSlotModel, error) {
	var rows []m.TimetableSlotModel
	err := r.db.WithContext(ctx).
		Order(dayOrder).
		Order("timetable_slot_lesson_number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *gormTimetableRepo) Upsert(ctx context.Context, row *m.TimetableSlotModel) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "timetable_slot_day"},
			{Name: "timetable_slot_lesson_number"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"timetable_slot_subject"}),
	}).Create(row).Error; err != nil {
		return err
	}
	// On the conflict path Create leaves the generated fields of the
	// existing row behind; re-read so callers get id/createdAt.
	return r.db.WithContext(ctx).
		Where("timetable_slot_day = ? AND timetable_slot_lesson_number = ?",
			row.TimetableSlotDay, row.TimetableSlotLessonNumber).
		First(row).Error
}

func (r *gormTimetableRepo) GetByID(ctx context.Context, id uuid.UUID) (*m.TimetableSlotModel, error) {
	var row m.TimetableSlotModel
	if err := r.db.WithContext(ctx).
		Where("timetable_slot_id = ?", id).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *gormTimetableRepo) Update(ctx context.Context, row *m.TimetableSlotModel) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *gormTimetableRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("timetable_slot_id = ?", id).
		Delete(&m.TimetableSlotModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
