// file: internals/features/classroom/duty/dto/duty_schedule_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "classboard_backend/internals/features/classroom/duty/model"
	helper "classboard_backend/internals/helpers"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateDutyScheduleRequest struct {
	Date  string   `json:"date"  validate:"required"` // YYYY-MM-DD
	Names []string `json:"names" validate:"required,len=5"`
	Notes *string  `json:"notes,omitempty"`
}

type PatchDutyScheduleRequest struct {
	Date  *string   `json:"date,omitempty"`
	Names *[]string `json:"names,omitempty"`
	Notes *string   `json:"notes,omitempty"`
}

func (r *CreateDutyScheduleRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

// cleanNames enforces the fixed roster size: exactly 5 names, each
// non-empty after trimming.
func cleanNames(names []string) ([]string, error) {
	if len(names) != m.DutyNamesCount {
		return nil, errors.New("names must be an array of exactly 5 non-empty strings")
	}
	out := make([]string, 0, m.DutyNamesCount)
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, errors.New("names must be an array of exactly 5 non-empty strings")
		}
		out = append(out, n)
	}
	return out, nil
}

/* =======================================================
   Convert & Apply
   ======================================================= */

func (r *CreateDutyScheduleRequest) ApplyToModel(dst *m.DutyScheduleModel) error {
	if strings.TrimSpace(r.Date) == "" {
		return errors.New("date is required (YYYY-MM-DD)")
	}
	date, err := helper.ParseDayUTC(r.Date)
	if err != nil {
		return errors.New("Invalid date")
	}

	names, err := cleanNames(r.Names)
	if err != nil {
		return err
	}

	dst.DutyScheduleDate = date
	dst.DutyScheduleNames = names
	dst.DutyScheduleNotes = notesOrNil(r.Notes)
	return nil
}

func (p *PatchDutyScheduleRequest) ApplyPatch(dst *m.DutyScheduleModel) error {
	if p.Date != nil {
		if strings.TrimSpace(*p.Date) == "" {
			return errors.New("date must be YYYY-MM-DD")
		}
		date, err := helper.ParseDayUTC(*p.Date)
		if err != nil {
			return errors.New("Invalid date")
		}
		dst.DutyScheduleDate = date
	}

	if p.Names != nil {
		names, err := cleanNames(*p.Names)
		if err != nil {
			return err
		}
		dst.DutyScheduleNames = names
	}

	if p.Notes != nil {
		dst.DutyScheduleNotes = notesOrNil(p.Notes)
	}

	return nil
}

func notesOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* =======================================================
   Response DTO
   ======================================================= */

type DutyScheduleResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Names     []string  `json:"names"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewDutyScheduleResponse(src *m.DutyScheduleModel) DutyScheduleResponse {
	return DutyScheduleResponse{
		ID:        src.DutyScheduleID,
		Date:      src.DutyScheduleDate,
		Names:     src.DutyScheduleNames,
		Notes:     src.DutyScheduleNotes,
		CreatedAt: src.DutyScheduleCreatedAt,
		UpdatedAt: src.DutyScheduleUpdatedAt,
	}
}
