// file: internals/features/classroom/timetable/controller/timetable_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "classboard_backend/internals/features/classroom/timetable/dto"
	m "classboard_backend/internals/features/classroom/timetable/model"
	r "classboard_backend/internals/features/classroom/timetable/repo"
	helper "classboard_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableController struct {
	Repo     r.TimetableRepo
	Validate *validator.Validate
}

func New(repo r.TimetableRepo, v *validator.Validate) *TimetableController {
	return &TimetableController{Repo: repo, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List
   ========================= */

func (ctl *TimetableController) List(c *fiber.Ctx) error {
	rows, err := ctl.Repo.List(c.UserContext())
	if err != nil {
		log.Printf("[Timetable.List] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	out := make([]d.TimetableSlotResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewTimetableSlotResponse(&rows[i]))
	}
	return helper.JsonOK(c, out)
}

/* =========================
   Upsert (POST)
   ========================= */

func (ctl *TimetableController) Upsert(c *fiber.Ctx) error {
	var req d.UpsertTimetableSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}

	var row m.TimetableSlotModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Upsert(c.UserContext(), &row); err != nil {
		log.Printf("[Timetable.Upsert] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}

	return helper.JsonCreated(c, d.NewTimetableSlotResponse(&row))
}

/* =========================
   GetByID
   ========================= */

func (ctl *TimetableController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := ctl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Not found")
		}
		log.Printf("[Timetable.GetByID] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, d.NewTimetableSlotResponse(row))
}

/* =========================
   Patch
   ========================= */

func (ctl *TimetableController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchTimetableSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}
	if req.IsEmpty() {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}

	row, err := ctl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Not found")
		}
		log.Printf("[Timetable.Patch] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}

	if err := req.ApplyPatch(row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Update(c.UserContext(), row); err != nil {
		log.Printf("[Timetable.Patch] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, d.NewTimetableSlotResponse(row))
}

/* =========================
   Delete
   ========================= */

func (ctl *TimetableController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Not found")
		}
		log.Printf("[Timetable.Delete] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonDeleted(c)
}
