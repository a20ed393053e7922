// file: internals/features/classroom/timetable/dto/timetable_slot_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "classboard_backend/internals/features/classroom/timetable/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type UpsertTimetableSlotRequest struct {
	Day          string `json:"day"          validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY"`
	LessonNumber int    `json:"lessonNumber" validate:"required,min=1,max=12"`
	Subject      string `json:"subject"      validate:"required"`
}

type PatchTimetableSlotRequest struct {
	Day          *string `json:"day,omitempty"          validate:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY"`
	LessonNumber *int    `json:"lessonNumber,omitempty" validate:"omitempty,min=1,max=12"`
	Subject      *string `json:"subject,omitempty"`
}

func (r *UpsertTimetableSlotRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *PatchTimetableSlotRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

// IsEmpty reports a patch body with no fields at all. The old API answered
// those with 400 instead of a silent no-op.
func (r *PatchTimetableSlotRequest) IsEmpty() bool {
	return r.Day == nil && r.LessonNumber == nil && r.Subject == nil
}

/* =======================================================
   Convert & Apply
   ======================================================= */

func (r *UpsertTimetableSlotRequest) ApplyToModel(dst *m.TimetableSlotModel) error {
	day := m.Day(r.Day)
	if !day.Valid() {
		return errors.New("invalid day")
	}
	if r.LessonNumber < 1 || r.LessonNumber > m.MaxLessonNumber {
		return errors.New("lessonNumber must be 1..12")
	}
	subject := strings.TrimSpace(r.Subject)
	if subject == "" {
		return errors.New("subject required")
	}

	dst.TimetableSlotDay = day
	dst.TimetableSlotLessonNumber = r.LessonNumber
	dst.TimetableSlotSubject = subject
	return nil
}

func (r *PatchTimetableSlotRequest) ApplyPatch(dst *m.TimetableSlotModel) error {
	if r.Day != nil {
		day := m.Day(*r.Day)
		if !day.Valid() {
			return errors.New("invalid day")
		}
		dst.TimetableSlotDay = day
	}
	if r.LessonNumber != nil {
		if *r.LessonNumber < 1 || *r.LessonNumber > m.MaxLessonNumber {
			return errors.New("lessonNumber must be 1..12")
		}
		dst.TimetableSlotLessonNumber = *r.LessonNumber
	}
	if r.Subject != nil {
		subject := strings.TrimSpace(*r.Subject)
		if subject == "" {
			return errors.New("subject required")
		}
		dst.TimetableSlotSubject = subject
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type TimetableSlotResponse struct {
	ID           uuid.UUID `json:"id"`
	Day          m.Day     `json:"day"`
	LessonNumber int       `json:"lessonNumber"`
	Subject      string    `json:"subject"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewTimetableSlotResponse(src *m.TimetableSlotModel) TimetableSlotResponse {
	return TimetableSlotResponse{
		ID:           src.TimetableSlotID,
		Day:          src.TimetableSlotDay,
		LessonNumber: src.TimetableSlotLessonNumber,
		Subject:      src.TimetableSlotSubject,
		CreatedAt:    src.TimetableSlotCreatedAt,
	}
}
