// file: internals/features/classroom/homework/repo/homework_repo.go
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "classboard_backend/internals/features/classroom/homework/model"
)

// ListFilter narrows the homework list; zero values mean "no filter".
type ListFilter struct {
	Subject string
	// Half-open range on the stored date, [From, To).
	From *time.Time
	To   *time.Time
}

type HomeworkRepo interface {
	// List returns matching items ordered by date descending.
	List(ctx context.Context, f ListFilter) ([]m.HomeworkItemModel, error)
	Create(ctx context.Context, row *m.HomeworkItemModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*m.HomeworkItemModel, error)
	Update(ctx context.Context, row *m.HomeworkItemModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormHomeworkRepo struct {
	db *gorm.DB
}

func NewHomeworkRepo(db *gorm.DB) HomeworkRepo {
	return &gormHomeworkRepo{db: db}
}

func (r *gormHomeworkRepo) List(ctx context.Context, f ListFilter) ([]m.HomeworkItemModel, error) {
	db := r.db.WithContext(ctx).Model(&m.HomeworkItemModel{})

	if f.Subject != "" {
		db = db.Where("homework_item_subject = ?", f.Subject)
	}
	if f.From != nil && f.To != nil {
		db = db.Where("homework_item_date >= ? AND homework_item_date < ?", *f.From, *f.To)
	}

	var rows []m.HomeworkItemModel
	err := db.Order("homework_item_date DESC").Find(&rows).Error
	return rows, err
}

func (r *gormHomeworkRepo) Create(ctx context.Context, row *m.HomeworkItemModel) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *gormHomeworkRepo) GetByID(ctx context.Context, id uuid.UUID) (*m.HomeworkItemModel, error) {
	var row m.HomeworkItemModel
	if err := r.db.WithContext(ctx).
		Where("homework_item_id = ?", id).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *gormHomeworkRepo) Update(ctx context.Context, row *m.HomeworkItemModel) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *gormHomeworkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("homework_item_id = ?", id).
		Delete(&m.HomeworkItemModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
