// file: internals/features/classroom/timetable/route/timetable_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classboard_backend/internals/features/classroom/timetable/controller"
	"classboard_backend/internals/features/classroom/timetable/repo"
)

func TimetableRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	controller := ctl.New(repo.NewTimetableRepo(db), v)

	g := api.Group("/timetable")
	g.Get("/", controller.List)
	g.Post("/", controller.Upsert)
	g.Get("/:id", controller.GetByID)
	g.Patch("/:id", controller.Patch)
	g.Delete("/:id", controller.Delete)
}
