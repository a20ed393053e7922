// file: internals/features/classroom/timetable/model/timetable_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Day enum — school week only (MONDAY..FRIDAY)
   ======================================================= */

type Day string

const (
	DayMonday    Day = "MONDAY"
	DayTuesday   Day = "TUESDAY"
	DayWednesday Day = "WEDNESDAY"
	DayThursday  Day = "THURSDAY"
	DayFriday    Day = "FRIDAY"
)

// DaysOrder is the display order of the school week.
var DaysOrder = []Day{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday}

// DayLabels are the UI labels (the app is Mongolian-language).
var DayLabels = map[Day]string{
	DayMonday:    "Даваа",
	DayTuesday:   "Мягмар",
	DayWednesday: "Лхагва",
	DayThursday:  "Пүрэв",
	DayFriday:    "Баасан",
}

func (d Day) Valid() bool {
	switch d {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday:
		return true
	}
	return false
}

func (d Day) Label() string {
	return DayLabels[d]
}

// Lesson numbers live in [1, MaxLessonNumber].
const MaxLessonNumber = 12

/* =======================================================
   TimetableSlotModel — one (day, lesson) cell of the weekly grid.
   (day, lesson_number) is unique: saving the same cell again
   overwrites the subject in place.
   ======================================================= */

type TimetableSlotModel struct {
	TimetableSlotID uuid.UUID `gorm:"type:uuid;primaryKey;column:timetable_slot_id;default:gen_random_uuid()"`

	TimetableSlotDay          Day    `gorm:"type:varchar(12);not null;column:timetable_slot_day;uniqueIndex:uq_timetable_day_lesson"`
	TimetableSlotLessonNumber int    `gorm:"not null;column:timetable_slot_lesson_number;uniqueIndex:uq_timetable_day_lesson"`
	TimetableSlotSubject      string `gorm:"type:text;not null;column:timetable_slot_subject"`

	TimetableSlotCreatedAt time.Time `gorm:"column:timetable_slot_created_at;not null;autoCreateTime"`
}

func (TimetableSlotModel) TableName() string {
	return "timetable_slots"
}
