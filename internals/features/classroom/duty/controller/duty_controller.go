// file: internals/features/classroom/duty/controller/duty_controller.go
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

	d "classboard_backend/internals/features/classroom/duty/dto"
	m "classboard_backend/internals/features/classroom/duty/model"
	r "classboard_backend/internals/features/classroom/duty/repo"
	helper "classboard_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type DutyController struct {
	Repo     r.DutyRepo
	Validate *validator.Validate
}

func New(repo r.DutyRepo, v *validator.Validate) *DutyController {
	return &DutyController{Repo: repo, Validate: v}
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

func (ctl *DutyController) List(c *fiber.Ctx) error {
	rows, err := ctl.Repo.List(c.UserContext())
	if err != nil {
		log.Printf("[Duty.List] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	out := make([]d.DutyScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewDutyScheduleResponse(&rows[i]))
	}
	return helper.JsonOK(c, out)
}

/* =========================
   Create
   ========================= */

func (ctl *DutyController) Create(c *fiber.Ctx) error {
	var req d.CreateDutyScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest,
			"names must be an array of exactly 5 non-empty strings")
	}

	var row m.DutyScheduleModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		if errors.Is(err, r.ErrDuplicateDate) {
			return helper.JsonError(c, http.StatusConflict, "This date already exists")
		}
		log.Printf("[Duty.Create] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonCreated(c, d.NewDutyScheduleResponse(&row))
}

/* =========================
   GetByID
   ========================= */

func (ctl *DutyController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := ctl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Not found")
		}
		log.Printf("[Duty.GetByID] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, d.NewDutyScheduleResponse(row))
}

/* =========================
   Patch
   ========================= */

func (ctl *DutyController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchDutyScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}

	row, err := ctl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Not found")
		}
		log.Printf("[Duty.Patch] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}

	if err := req.ApplyPatch(row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Update(c.UserContext(), row); err != nil {
		if errors.Is(err, r.ErrDuplicateDate) {
			return helper.JsonError(c, http.StatusConflict, "This date already exists")
		}
		log.Printf("[Duty.Patch] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, d.NewDutyScheduleResponse(row))
}

/* =========================
   Delete
   ========================= */

func (ctl *DutyController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Not found")
		}
		log.Printf("[Duty.Delete] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonDeleted(c)
}
