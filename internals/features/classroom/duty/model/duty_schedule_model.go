// file: internals/features/classroom/duty/model/duty_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DutyNamesCount is fixed: the roster always lists five students per day.
const DutyNamesCount = 5

/* =======================================================
   DutyScheduleModel — who is on classroom duty on a date.
   One schedule per calendar date; the date is a UTC midnight instant.
   ======================================================= */

type DutyScheduleModel struct {
	DutyScheduleID uuid.UUID `gorm:"type:uuid;primaryKey;column:duty_schedule_id;default:gen_random_uuid()"`

	DutyScheduleDate  time.Time      `gorm:"column:duty_schedule_date;not null;uniqueIndex:uq_duty_schedule_date"`
	DutyScheduleNames pq.StringArray `gorm:"type:text[];not null;column:duty_schedule_names"`
	DutyScheduleNotes *string        `gorm:"type:text;column:duty_schedule_notes"`

	DutyScheduleCreatedAt time.Time `gorm:"column:duty_schedule_created_at;not null;autoCreateTime"`
	DutyScheduleUpdatedAt time.Time `gorm:"column:duty_schedule_updated_at;not null;autoUpdateTime"`
}

func (DutyScheduleModel) TableName() string {
	return "duty_schedules"
}
