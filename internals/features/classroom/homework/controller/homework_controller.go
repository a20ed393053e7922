// file: internals/features/classroom/homework/controller/homework_controller.go
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

	d "classboard_backend/internals/features/classroom/homework/dto"
	m "classboard_backend/internals/features/classroom/homework/model"
	r "classboard_backend/internals/features/classroom/homework/repo"
	helper "classboard_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type HomeworkController struct {
	Repo     r.HomeworkRepo
	Validate *validator.Validate
}

func New(repo r.HomeworkRepo, v *validator.Validate) *HomeworkController {
	return &HomeworkController{Repo: repo, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List (?subject=&date=YYYY-MM-DD)
   ========================= */

func (ctl *HomeworkController) List(c *fiber.Ctx) error {
	var f r.ListFilter

	if s := strings.TrimSpace(c.Query("subject")); s != "" {
		f.Subject = s
	}
	if ds := strings.TrimSpace(c.Query("date")); ds != "" {
		from, to, err := helper.DayRangeUTC(ds)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid date")
		}
		f.From, f.To = &from, &to
	}

	rows, err := ctl.Repo.List(c.UserContext(), f)
	if err != nil {
		log.Printf("[Homework.List] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	out := make([]d.HomeworkItemResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewHomeworkItemResponse(&rows[i]))
	}
	return helper.JsonOK(c, out)
}

/* =========================
   Create
   ========================= */

func (ctl *HomeworkController) Create(c *fiber.Ctx) error {
	var req d.CreateHomeworkItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}

	var row m.HomeworkItemModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		log.Printf("[Homework.Create] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonCreated(c, d.NewHomeworkItemResponse(&row))
}

/* =========================
   GetByID
   ========================= */

func (ctl *HomeworkController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := ctl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Not found")
		}
		log.Printf("[Homework.GetByID] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, d.NewHomeworkItemResponse(row))
}

/* =========================
   Patch
   ========================= */

func (ctl *HomeworkController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchHomeworkItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid body")
	}

	row, err := ctl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Not found")
		}
		log.Printf("[Homework.Patch] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}

	if err := req.ApplyPatch(row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Update(c.UserContext(), row); err != nil {
		log.Printf("[Homework.Patch] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, d.NewHomeworkItemResponse(row))
}

/* =========================
   Delete
   ========================= */

func (ctl *HomeworkController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Not found")
		}
		log.Printf("[Homework.Delete] %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Server error")
	}
	return helper.JsonDeleted(c)
}
