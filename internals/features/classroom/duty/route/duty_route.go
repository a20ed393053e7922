// file: internals/features/classroom/duty/route/duty_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "classboard_backend/internals/features/classroom/duty/controller"
	"classboard_backend/internals/features/classroom/duty/repo"
)

func DutyRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	controller := ctl.New(repo.NewDutyRepo(db), v)

	g := api.Group("/duty")
	g.Get("/", controller.List)
	g.Post("/", controller.Create)
	g.Get("/:id", controller.GetByID)
	g.Patch("/:id", controller.Patch)
	g.Delete("/:id", controller.Delete)
}
